package link

import (
	"fmt"

	"github.com/rigado/rootcanal"
)

// Type is the link layer packet discriminant.
type Type uint8

const (
	TypeAcl                         Type = 0x01
	TypeDisconnect                  Type = 0x02
	TypeInquiry                     Type = 0x06
	TypeInquiryResponse             Type = 0x07
	TypeLeAdvertisement             Type = 0x0b
	TypeLeConnect                   Type = 0x0c
	TypeLeConnectComplete           Type = 0x0d
	TypeLeScan                      Type = 0x0e
	TypeLeScanResponse              Type = 0x0f
	TypePage                        Type = 0x10
	TypePageResponse                Type = 0x11
	TypePageReject                  Type = 0x12
	TypeLeConnectionParameterUpdate Type = 0x13
	TypeLeEncryptConnection         Type = 0x15
	TypeLeEncryptConnectionResponse Type = 0x16
	TypePingRequest                 Type = 0x20
	TypePingResponse                Type = 0x21
)

var typeNames = map[Type]string{
	TypeAcl:                         "ACL",
	TypeDisconnect:                  "DISCONNECT",
	TypeInquiry:                     "INQUIRY",
	TypeInquiryResponse:             "INQUIRY_RESPONSE",
	TypeLeAdvertisement:             "LE_ADVERTISEMENT",
	TypeLeConnect:                   "LE_CONNECT",
	TypeLeConnectComplete:           "LE_CONNECT_COMPLETE",
	TypeLeScan:                      "LE_SCAN",
	TypeLeScanResponse:              "LE_SCAN_RESPONSE",
	TypePage:                        "PAGE",
	TypePageResponse:                "PAGE_RESPONSE",
	TypePageReject:                  "PAGE_REJECT",
	TypeLeConnectionParameterUpdate: "LE_CONNECTION_PARAMETER_UPDATE",
	TypeLeEncryptConnection:         "LE_ENCRYPT_CONNECTION",
	TypeLeEncryptConnectionResponse: "LE_ENCRYPT_CONNECTION_RESPONSE",
	TypePingRequest:                 "PING_REQUEST",
	TypePingResponse:                "PING_RESPONSE",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(t))
}

// payload sizes per type, variable sized types give their minimum
var payloadLen = map[Type]struct {
	n        int
	variable bool
}{
	TypeAcl:                         {1, true},
	TypeDisconnect:                  {1, false},
	TypeInquiry:                     {1, false},
	TypeInquiryResponse:             {7, false},
	TypeLeAdvertisement:             {2, true},
	TypeLeConnect:                   {9, false},
	TypeLeConnectComplete:           {7, false},
	TypeLeScan:                      {1, false},
	TypeLeScanResponse:              {2, true},
	TypePage:                        {4, false},
	TypePageResponse:                {1, false},
	TypePageReject:                  {1, false},
	TypeLeConnectionParameterUpdate: {7, false},
	TypeLeEncryptConnection:         {26, false},
	TypeLeEncryptConnectionResponse: {26, false},
	TypePingRequest:                 {0, false},
	TypePingResponse:                {0, false},
}

const (
	offsetType    = 0
	offsetSource  = 1
	offsetDest    = 7
	offsetPayload = 13

	// HeaderLen is the size of the envelope in front of the payload.
	HeaderLen = offsetPayload
)

// Packet is a link layer packet exchanged between simulated controllers.
//
//	Type(1) | Source(6) | Destination(6) | Payload
//
// Addresses are in storage order.
type Packet []byte

func (p Packet) Type() Type { return Type(p[offsetType]) }

func (p Packet) Source() rootcanal.Address {
	return rootcanal.NewAddress(p[offsetSource:offsetDest]...)
}

func (p Packet) Destination() rootcanal.Address {
	return rootcanal.NewAddress(p[offsetDest:offsetPayload]...)
}

func (p Packet) Payload() []byte { return p[offsetPayload:] }

func (p Packet) String() string {
	if len(p) < HeaderLen {
		return fmt.Sprintf("malformed [% x]", []byte(p))
	}
	return fmt.Sprintf("%v %v->%v (%d bytes)", p.Type(), p.Source().RedactedString(), p.Destination().RedactedString(), len(p.Payload()))
}

// ValidateEnvelope only checks the header.
func (p Packet) ValidateEnvelope() error {
	if len(p) < HeaderLen {
		return fmt.Errorf("packet too short: %d", len(p))
	}
	return nil
}

// Validate checks the header and the payload size of a known type.
func (p Packet) Validate() error {
	if err := p.ValidateEnvelope(); err != nil {
		return err
	}

	pl, ok := payloadLen[p.Type()]
	if !ok {
		return fmt.Errorf("unknown packet type %v", p.Type())
	}

	n := len(p.Payload())
	switch {
	case !pl.variable && n != pl.n:
		return fmt.Errorf("%v: payload %d, want %d", p.Type(), n, pl.n)
	case pl.variable && n < pl.n:
		return fmt.Errorf("%v: payload %d, want at least %d", p.Type(), n, pl.n)
	}
	return nil
}

// Builder produces a serialized packet.
type Builder interface {
	Serialize() []byte
}

func envelope(t Type, src, dst rootcanal.Address, payloadSize int) []byte {
	b := make([]byte, HeaderLen, HeaderLen+payloadSize)
	b[offsetType] = uint8(t)
	copy(b[offsetSource:], src[:])
	copy(b[offsetDest:], dst[:])
	return b
}
