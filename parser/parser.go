package parser

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

var EmptyOrNilPdu = errors.New("nil/empty pdu")

// https://www.bluetooth.org/en-us/specification/assigned-numbers/generic-access-profile
var types = struct {
	flags       byte
	uuid16inc   byte
	uuid16comp  byte
	uuid32inc   byte
	uuid32comp  byte
	uuid128inc  byte
	uuid128comp byte
	sol16       byte
	sol32       byte
	sol128      byte
	svc16       byte
	svc32       byte
	svc128      byte
	nameshort   byte
	namecomp    byte
	txpwr       byte
	mfgdata     byte
}{
	flags:       0x01,
	uuid16inc:   0x02,
	uuid16comp:  0x03,
	uuid32inc:   0x04,
	uuid32comp:  0x05,
	uuid128inc:  0x06,
	uuid128comp: 0x07,
	sol16:       0x14,
	sol32:       0x1f,
	sol128:      0x15,
	svc16:       0x16,
	svc32:       0x20,
	svc128:      0x21,
	nameshort:   0x08,
	namecomp:    0x09,
	txpwr:       0x0a,
	mfgdata:     0xff,
}

// UUID is a service UUID in advertising data byte order (little endian).
type UUID []byte

// String prints the UUID most significant byte first.
func (u UUID) String() string {
	b := make([]byte, len(u))
	for i := range u {
		b[len(u)-1-i] = u[i]
	}
	return hex.EncodeToString(b)
}

// Fields is the decoded content of advertising or scan response data.
type Fields struct {
	Flags            byte
	LocalName        string
	ShortName        bool
	Services         []UUID
	Solicited        []UUID
	ServiceData      map[string][][]byte
	TxPower          int8
	HasTxPower       bool
	ManufacturerData []byte
}

type pduRecord struct {
	arrayElementSz int
	minSz          int
	svcDataUUIDSz  int
}

var pduDecodeMap = map[byte]pduRecord{
	types.uuid16inc:   {2, 2, 0},
	types.uuid16comp:  {2, 2, 0},
	types.uuid32inc:   {4, 4, 0},
	types.uuid32comp:  {4, 4, 0},
	types.uuid128inc:  {16, 16, 0},
	types.uuid128comp: {16, 16, 0},
	types.sol16:       {2, 2, 0},
	types.sol32:       {4, 4, 0},
	types.sol128:      {16, 16, 0},
	types.svc16:       {0, 2, 2},
	types.svc32:       {0, 4, 4},
	types.svc128:      {0, 16, 16},
	types.namecomp:    {0, 1, 0},
	types.nameshort:   {0, 1, 0},
	types.txpwr:       {0, 1, 0},
	types.mfgdata:     {0, 1, 0},
	types.flags:       {0, 1, 0},
}

func getArray(size int, bytes []byte) ([]UUID, error) {
	//bytes empty/nil?
	if len(bytes) == 0 {
		return nil, errors.New("nil/empty bytes")
	}

	//any remainder?
	count := len(bytes) / size
	rem := len(bytes) % size
	if rem != 0 || count == 0 {
		return nil, errors.New("incorrect size")
	}

	arr := make([]UUID, 0, count)
	for j := 0; j < len(bytes); j += size {
		arr = append(arr, UUID(bytes[j:(j+size)]))
	}

	return arr, nil
}

// Parse decodes the AD structures of pdu. Unknown types are skipped, so
// are zero length structures used as padding.
func Parse(pdu []byte) (Fields, error) {
	var f Fields
	if len(pdu) == 0 {
		return f, EmptyOrNilPdu
	}

	for i := 0; i < len(pdu); {
		//length @ offset 0
		//type @ offset 1
		//data @ 2 - length
		length := int(pdu[i])
		if length == 0 {
			i++
			continue
		}

		//do we have all the bytes for the payload?
		if (i + length) >= len(pdu) {
			return f, errors.Errorf("buffer overflow: want %v, have %v, idx %v", i+length+1, len(pdu), i)
		}

		typ := pdu[i+1]
		start := i + 2
		end := start + length - 1
		bytes := make([]byte, end-start)
		copy(bytes, pdu[start:end])
		i = end

		dec, ok := pduDecodeMap[typ]
		if !ok || len(bytes) == 0 {
			continue
		}

		//have min length?
		if dec.minSz > len(bytes) {
			return f, errors.Errorf("adv type %v: min length %v, have %v, idx %v", typ, dec.minSz, len(bytes), start-2)
		}

		switch {
		case dec.arrayElementSz > 0:
			arr, err := getArray(dec.arrayElementSz, bytes)
			if err != nil {
				return f, errors.Wrapf(err, "adv type %v, idx %v", typ, start-2)
			}
			if typ == types.sol16 || typ == types.sol32 || typ == types.sol128 {
				f.Solicited = append(f.Solicited, arr...)
			} else {
				f.Services = append(f.Services, arr...)
			}

		case dec.svcDataUUIDSz > 0:
			if f.ServiceData == nil {
				f.ServiceData = map[string][][]byte{}
			}
			su := UUID(bytes[:dec.svcDataUUIDSz]).String()
			f.ServiceData[su] = append(f.ServiceData[su], bytes[dec.svcDataUUIDSz:])

		case typ == types.namecomp || typ == types.nameshort:
			f.LocalName = string(bytes)
			f.ShortName = typ == types.nameshort

		case typ == types.txpwr:
			f.TxPower = int8(bytes[0])
			f.HasTxPower = true

		case typ == types.flags:
			f.Flags = bytes[0]

		case typ == types.mfgdata:
			f.ManufacturerData = append(f.ManufacturerData, bytes...)
		}
	}

	return f, nil
}
