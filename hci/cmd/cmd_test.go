package cmd

import (
	"testing"
)

func TestBuildAndUnmarshal(t *testing.T) {
	in := LECreateConnection{
		LEScanInterval:     0x0060,
		LEScanWindow:       0x0030,
		PeerAddressType:    1,
		PeerAddress:        [6]byte{1, 2, 3, 4, 5, 0xc6},
		ConnIntervalMin:    0x18,
		ConnIntervalMax:    0x28,
		SupervisionTimeout: 0x48,
	}

	p, err := Build(&in)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if p.OpCode() != LECreateConnectionOpCode {
		t.Fatalf("opcode 0x%04x", p.OpCode())
	}

	var out LECreateConnection
	if err := out.Unmarshal(p.Params()); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("mismatch %+v != %+v", out, in)
	}
}

func TestUnmarshalWrongLength(t *testing.T) {
	var d Disconnect
	if err := d.Unmarshal([]byte{1, 0}); err == nil {
		t.Fatal("no error on short params")
	}
	if err := d.Unmarshal([]byte{1, 0, 0x13, 0}); err == nil {
		t.Fatal("no error on long params")
	}
}

func TestEncode(t *testing.T) {
	b := Encode(&ReadBDADDRRP{Status: 0, BDADDR: [6]byte{1, 2, 3, 4, 5, 6}})
	if len(b) != 7 || b[1] != 1 || b[6] != 6 {
		t.Fatalf("unexpected %v", b)
	}

	var rp ReadBDADDRRP
	if err := rp.Unmarshal(b); err != nil {
		t.Fatal(err)
	}
	if rp.BDADDR[5] != 6 {
		t.Fatalf("unexpected %v", rp.BDADDR)
	}
}

func TestEncodeStatus(t *testing.T) {
	b := Encode(&Status{Status: 0x12})
	if len(b) != 1 || b[0] != 0x12 {
		t.Fatalf("unexpected %v", b)
	}
}
