package rootcanal

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rigado/rootcanal/sliceops"
)

// Address is a 6-byte Bluetooth device address.
// Byte 0 holds the least significant byte, which matches the order used
// over the air and on HCI.
type Address [6]byte

var (
	// AddressEmpty is the all-zero address.
	AddressEmpty = Address{}
	// AddressAny is the broadcast address.
	AddressAny = Address{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

// ErrInvalidAddress is returned for strings that are not aa:bb:cc:dd:ee:ff.
var ErrInvalidAddress = errors.New("invalid address format")

const addressStringLen = 17

// NewAddress builds an address from up to 6 bytes in storage order.
// Missing trailing bytes are left zero.
func NewAddress(b ...byte) Address {
	var a Address
	copy(a[:], b)
	return a
}

// AddressFromBytes requires exactly 6 bytes in storage order.
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != len(Address{}) {
		return AddressEmpty, errors.Wrapf(ErrInvalidAddress, "need 6 bytes, got %d", len(b))
	}
	return NewAddress(b...), nil
}

// ParseAddress parses the colon separated form, most significant byte first.
func ParseAddress(s string) (Address, error) {
	if len(s) != addressStringLen {
		return AddressEmpty, errors.Wrapf(ErrInvalidAddress, "%q: bad length %d", s, len(s))
	}

	tokens := strings.Split(s, ":")
	if len(tokens) != len(Address{}) {
		return AddressEmpty, errors.Wrapf(ErrInvalidAddress, "%q: %d segments", s, len(tokens))
	}

	var a Address
	for i, tok := range tokens {
		if len(tok) != 2 {
			return AddressEmpty, errors.Wrapf(ErrInvalidAddress, "%q: segment %d", s, i)
		}
		b, err := hex.DecodeString(tok)
		if err != nil {
			return AddressEmpty, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
		}
		a[len(a)-1-i] = b[0]
	}

	return a, nil
}

// IsValidAddress reports whether s parses as an address.
func IsValidAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}

// Bytes returns a copy in display order (most significant byte first).
func (a Address) Bytes() []byte {
	return sliceops.SwapBuf(a[:])
}

func (a Address) String() string {
	b := a.Bytes()
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", b[0], b[1], b[2], b[3], b[4], b[5])
}

// RedactedString masks the 4 most significant bytes. Use it for logging.
func (a Address) RedactedString() string {
	return fmt.Sprintf("xx:xx:xx:xx:%02x:%02x", a[1], a[0])
}

// Compare orders addresses by numeric value.
func (a Address) Compare(b Address) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func (a Address) Less(b Address) bool { return a.Compare(b) < 0 }

func (a Address) IsEmpty() bool { return a == AddressEmpty }

// RandomKind is the sub-type of a random device address, taken from the two
// most significant bits [Vol 6, Part B, 1.3.2].
type RandomKind uint8

const (
	RandomNonResolvable RandomKind = 0x0
	RandomResolvable    RandomKind = 0x1
	RandomReserved      RandomKind = 0x2
	RandomStatic        RandomKind = 0x3
)

func (a Address) RandomKind() RandomKind { return RandomKind(a[5] >> 6) }

func (a Address) IsRpa() bool          { return a.RandomKind() == RandomResolvable }
func (a Address) IsStaticRandom() bool { return a.RandomKind() == RandomStatic }

// AddressType is the HCI address type tag.
type AddressType uint8

const (
	AddressTypePublic         AddressType = 0x00
	AddressTypeRandom         AddressType = 0x01
	AddressTypePublicIdentity AddressType = 0x02
	AddressTypeRandomIdentity AddressType = 0x03
	// used for advertising without an identity
	AddressTypeAnonymous AddressType = 0xff
)

func (t AddressType) String() string {
	switch t {
	case AddressTypePublic:
		return "public"
	case AddressTypeRandom:
		return "random"
	case AddressTypePublicIdentity:
		return "public-identity"
	case AddressTypeRandomIdentity:
		return "random-identity"
	case AddressTypeAnonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("type-0x%02x", uint8(t))
	}
}

// AddressWithType pairs an address with its type.
type AddressWithType struct {
	Address Address
	Type    AddressType
}

func NewAddressWithType(a Address, t AddressType) AddressWithType {
	return AddressWithType{Address: a, Type: t}
}

func (a AddressWithType) String() string {
	return fmt.Sprintf("%s[%s]", a.Address, a.Type)
}

func (a AddressWithType) RedactedString() string {
	return fmt.Sprintf("%s[%s]", a.Address.RedactedString(), a.Type)
}

func (a AddressWithType) IsEmpty() bool { return a.Address.IsEmpty() }

// IsRpa is true only for random addresses carrying the resolvable bits.
func (a AddressWithType) IsRpa() bool {
	return a.Type == AddressTypeRandom && a.Address.IsRpa()
}

// Identity maps a resolved identity type back to the device address type.
func (a AddressWithType) Identity() AddressWithType {
	switch a.Type {
	case AddressTypePublicIdentity:
		return AddressWithType{Address: a.Address, Type: AddressTypePublic}
	case AddressTypeRandomIdentity:
		return AddressWithType{Address: a.Address, Type: AddressTypeRandom}
	}
	return a
}
