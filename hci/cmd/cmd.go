package cmd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rigado/rootcanal/hci"
)

type command interface {
	OpCode() int
	Len() int
	Marshal([]byte) error
}

type commandRP interface {
	Unmarshal(b []byte) error
}

// Command is an HCI command as seen by the controller.
type Command interface {
	command
	Unmarshal(b []byte) error
}

// ReturnParameters is the payload of a Command Complete event.
type ReturnParameters interface {
	Len() int
	Marshal([]byte) error
}

func marshal(c interface{}, b []byte) error {
	buf := bytes.NewBuffer(b)
	buf.Reset()
	if l, ok := c.(interface{ Len() int }); ok && buf.Cap() < l.Len() {
		return io.ErrShortBuffer
	}
	return binary.Write(buf, binary.LittleEndian, c)
}

func unmarshal(c commandRP, b []byte) error {
	buf := bytes.NewBuffer(b)
	return binary.Read(buf, binary.LittleEndian, c)
}

// unmarshalExact rejects parameter blocks that are not exactly n bytes.
func unmarshalExact(c commandRP, n int, b []byte) error {
	if len(b) != n {
		return fmt.Errorf("parameter length %d, want %d", len(b), n)
	}
	return binary.Read(bytes.NewReader(b), binary.LittleEndian, c)
}

// Build serializes c into an HCI command packet.
func Build(c command) (hci.CommandPacket, error) {
	b := make([]byte, c.Len())
	if err := c.Marshal(b); err != nil {
		return nil, err
	}
	return hci.NewCommandPacket(c.OpCode(), b), nil
}

// Encode serializes return parameters.
func Encode(rp ReturnParameters) []byte {
	b := make([]byte, rp.Len())
	if err := rp.Marshal(b); err != nil {
		// fixed size structs only
		panic(err)
	}
	return b
}

// Status is the return parameter of commands that only report a status.
type Status struct {
	Status uint8
}

func (c *Status) Len() int               { return 1 }
func (c *Status) Marshal(b []byte) error { return marshal(c, b) }
