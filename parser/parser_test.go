package parser

import (
	"bytes"
	"testing"
)

type testPdu struct {
	b []byte
}

func (t *testPdu) addBad(recTyp byte, badRecLen byte, recBytes []byte) {
	t.b = append(t.b, badRecLen, recTyp)
	t.b = append(t.b, recBytes...)
}

func (t *testPdu) add(recTyp byte, recBytes []byte) {
	lb := byte(len(recBytes) + 1)
	t.b = append(t.b, lb, recTyp)
	t.b = append(t.b, recBytes...)
}

func (t *testPdu) bytes() []byte {
	return t.b
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(nil); err != EmptyOrNilPdu {
		t.Fatalf("err %v", err)
	}
}

func TestParseFields(t *testing.T) {
	p := testPdu{}
	p.add(types.flags, []byte{0x06})
	p.add(types.namecomp, []byte("rootcanal"))
	p.add(types.uuid16comp, []byte{0x0d, 0x18, 0x0f, 0x18})
	p.add(types.sol16, []byte{0x00, 0x18})
	p.add(types.svc16, []byte{0x0f, 0x18, 0x64})
	p.add(types.svc16, []byte{0x0f, 0x18, 0x32})
	p.add(types.txpwr, []byte{0xf4})
	p.add(types.mfgdata, []byte{0xe0, 0x00, 0x01})
	p.add(0x3d, []byte{0xaa}) // unknown

	f, err := Parse(p.bytes())
	if err != nil {
		t.Fatal(err)
	}

	switch {
	case f.Flags != 0x06:
		t.Fatalf("flags 0x%02x", f.Flags)
	case f.LocalName != "rootcanal" || f.ShortName:
		t.Fatalf("name %q short %v", f.LocalName, f.ShortName)
	case len(f.Services) != 2 || f.Services[0].String() != "180d" || f.Services[1].String() != "180f":
		t.Fatalf("services %v", f.Services)
	case len(f.Solicited) != 1 || f.Solicited[0].String() != "1800":
		t.Fatalf("solicited %v", f.Solicited)
	case len(f.ServiceData["180f"]) != 2 || f.ServiceData["180f"][1][0] != 0x32:
		t.Fatalf("service data %v", f.ServiceData)
	case !f.HasTxPower || f.TxPower != -12:
		t.Fatalf("tx power %v", f.TxPower)
	case !bytes.Equal(f.ManufacturerData, []byte{0xe0, 0x00, 0x01}):
		t.Fatalf("mfg % x", f.ManufacturerData)
	}
}

func TestParsePadding(t *testing.T) {
	p := testPdu{}
	p.add(types.nameshort, []byte("rc"))
	p.b = append(p.b, 0x00, 0x00, 0x00)

	f, err := Parse(p.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if f.LocalName != "rc" || !f.ShortName {
		t.Fatalf("name %q short %v", f.LocalName, f.ShortName)
	}
}

func TestParseBad(t *testing.T) {
	for i, build := range []func(p *testPdu){
		// record runs past the buffer
		func(p *testPdu) { p.addBad(types.namecomp, 10, []byte("abc")) },
		// uuid list not a multiple of the element size
		func(p *testPdu) { p.add(types.uuid16comp, []byte{0x0d, 0x18, 0x0f}) },
		func(p *testPdu) { p.add(types.uuid128inc, make([]byte, 15)) },
		// service data shorter than its uuid
		func(p *testPdu) { p.add(types.svc32, []byte{0x01, 0x02, 0x03}) },
	} {
		p := testPdu{}
		p.add(types.flags, []byte{0x06})
		build(&p)
		if _, err := Parse(p.bytes()); err == nil {
			t.Fatalf("case %d: no decode error", i)
		}
	}
}
