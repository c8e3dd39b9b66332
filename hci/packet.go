package hci

import (
	"encoding/binary"
	"fmt"
)

// CommandPacket is an HCI Command packet without the H4 type byte
// [Vol 2, Part E, 5.4.1].
type CommandPacket []byte

func (c CommandPacket) OpCode() int    { return int(binary.LittleEndian.Uint16(c[0:2])) }
func (c CommandPacket) ParamLen() int  { return int(c[2]) }
func (c CommandPacket) Params() []byte { return c[CommandHeaderLen:] }
func (c CommandPacket) String() string { return fmt.Sprintf("cmd 0x%04x [% x]", c.OpCode(), c.Params()) }

// Validate checks the header and the declared parameter length.
func (c CommandPacket) Validate() error {
	if len(c) < CommandHeaderLen {
		return fmt.Errorf("command too short: %d", len(c))
	}
	if len(c) != CommandHeaderLen+c.ParamLen() {
		return fmt.Errorf("command 0x%04x: length %d, declared %d", c.OpCode(), len(c)-CommandHeaderLen, c.ParamLen())
	}
	return nil
}

// NewCommandPacket serializes an opcode and its parameters.
func NewCommandPacket(op int, params []byte) CommandPacket {
	b := make([]byte, CommandHeaderLen, CommandHeaderLen+len(params))
	binary.LittleEndian.PutUint16(b, uint16(op))
	b[2] = uint8(len(params))
	return CommandPacket(append(b, params...))
}

// AclPacket implements HCI ACL Data Packet [Vol 2, Part E, 5.4.2]
// Packet boundary flags , bit[5:6] of handle field's MSB
// Broadcast flags. bit[7:8] of handle field's MSB
type AclPacket []byte

func (a AclPacket) Handle() uint16 { return uint16(a[0]) | (uint16(a[1]&0x0f) << 8) }
func (a AclPacket) Pbf() int       { return (int(a[1]) >> 4) & 0x3 }
func (a AclPacket) Bcf() int       { return (int(a[1]) >> 6) & 0x3 }
func (a AclPacket) Dlen() int      { return int(a[2]) | (int(a[3]) << 8) }
func (a AclPacket) Data() []byte   { return a[AclHeaderLen:] }

func (a AclPacket) Validate() error {
	if len(a) < AclHeaderLen {
		return fmt.Errorf("acl too short: %d", len(a))
	}
	if len(a) != AclHeaderLen+a.Dlen() {
		return fmt.Errorf("acl handle 0x%04x: length %d, declared %d", a.Handle(), len(a)-AclHeaderLen, a.Dlen())
	}
	return nil
}

// NewAclPacket builds an ACL packet for handle with the given flags.
func NewAclPacket(handle uint16, pbf, bcf int, data []byte) AclPacket {
	b := make([]byte, AclHeaderLen, AclHeaderLen+len(data))
	b[0] = uint8(handle)
	b[1] = uint8(handle>>8)&0x0f | uint8(pbf&0x3)<<4 | uint8(bcf&0x3)<<6
	binary.LittleEndian.PutUint16(b[2:], uint16(len(data)))
	return AclPacket(append(b, data...))
}
