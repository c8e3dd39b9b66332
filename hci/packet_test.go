package hci

import (
	"bytes"
	"testing"
)

func TestCommandPacket(t *testing.T) {
	c := NewCommandPacket(0x0c03, nil)
	if !bytes.Equal(c, []byte{0x03, 0x0c, 0x00}) {
		t.Fatalf("% x", []byte(c))
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	for _, b := range [][]byte{
		{0x03, 0x0c},
		{0x03, 0x0c, 0x01},
		{0x03, 0x0c, 0x00, 0xff},
	} {
		if err := CommandPacket(b).Validate(); err == nil {
			t.Fatalf("[% x] accepted", b)
		}
	}
}

func TestAclPacket(t *testing.T) {
	a := NewAclPacket(0x0abc, 2, 1, []byte{1, 2, 3})
	if err := a.Validate(); err != nil {
		t.Fatal(err)
	}
	switch {
	case a.Handle() != 0x0abc:
		t.Fatalf("handle 0x%04x", a.Handle())
	case a.Pbf() != 2 || a.Bcf() != 1:
		t.Fatalf("flags %d %d", a.Pbf(), a.Bcf())
	case !bytes.Equal(a.Data(), []byte{1, 2, 3}):
		t.Fatalf("data % x", a.Data())
	}

	if err := AclPacket(a[:5]).Validate(); err == nil {
		t.Fatal("truncated acl accepted")
	}
}
