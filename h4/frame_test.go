package h4

import (
	"bytes"
	"testing"
)

var (
	reset     = []byte{0x01, 0x03, 0x0c, 0x00}
	readAddr  = []byte{0x01, 0x09, 0x10, 0x00}
	aclData   = []byte{0x02, 0x40, 0x20, 0x03, 0x00, 0xaa, 0xbb, 0xcc}
	cmdParams = []byte{0x01, 0x01, 0x0c, 0x08, 1, 2, 3, 4, 5, 6, 7, 8}
)

type collector struct{ frames []Frame }

func (c *collector) add(f Frame) { c.frames = append(c.frames, f) }

func newCollector() (*collector, *Assembler) {
	c := &collector{}
	return c, NewAssembler(c.add, CommandPacket, AclPacket)
}

func join(bb ...[]byte) []byte {
	return bytes.Join(bb, nil)
}

func check(t *testing.T, got []Frame, want ...[]byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%d frames, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Type != w[0] || !bytes.Equal(got[i].Packet, w[1:]) {
			t.Fatalf("frame %d: %x [% x], want [% x]", i, got[i].Type, got[i].Packet, w)
		}
	}
}

func TestAssembleCoalesced(t *testing.T) {
	c, a := newCollector()
	a.Assemble(join(reset, aclData, cmdParams, readAddr))
	check(t, c.frames, reset, aclData, cmdParams, readAddr)
	if a.Pending() != 0 {
		t.Fatalf("%d bytes pending", a.Pending())
	}
}

func TestAssembleByteByByte(t *testing.T) {
	c, a := newCollector()
	for _, v := range join(cmdParams, aclData) {
		a.Assemble([]byte{v})
	}
	check(t, c.frames, cmdParams, aclData)
}

func TestAssembleSplit(t *testing.T) {
	c, a := newCollector()
	s := join(reset, aclData)

	a.Assemble(s[:2])
	a.Assemble(s[2:6])
	if len(c.frames) != 1 || a.Pending() != 2 {
		t.Fatalf("%d frames, %d pending", len(c.frames), a.Pending())
	}
	a.Assemble(s[6:])
	check(t, c.frames, reset, aclData)
}

func TestAssembleSkipsGarbage(t *testing.T) {
	c, a := newCollector()
	a.Assemble(join([]byte{0x00, 0xff, 0x04}, reset))
	check(t, c.frames, reset)
	if a.Dropped != 3 {
		t.Fatalf("%d bytes dropped", a.Dropped)
	}
}

func TestEncode(t *testing.T) {
	if b := Encode(EventPacket, []byte{0x0e, 0x00}); !bytes.Equal(b, []byte{0x04, 0x0e, 0x00}) {
		t.Fatalf("% x", b)
	}
}
