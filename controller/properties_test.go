package controller

import (
	"testing"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
)

func TestDefaultProperties(t *testing.T) {
	if err := DefaultProperties().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadProperties(t *testing.T) {
	p, err := LoadProperties("testdata/properties.json")
	if err != nil {
		t.Fatal(err)
	}

	def := DefaultProperties()
	switch {
	case p.ClassOfDevice != 0x240404:
		t.Fatalf("class of device 0x%06x", p.ClassOfDevice)
	case p.AclDataPacketLength != 512:
		t.Fatalf("acl length %d", p.AclDataPacketLength)
	case p.MaxAclConnections != 4:
		t.Fatalf("max connections %d", p.MaxAclConnections)
	case !p.LinkKeepAlive:
		t.Fatal("keepalive not set")
	case p.PageTimeout != def.PageTimeout:
		t.Fatalf("page timeout %d, want the default", p.PageTimeout)
	}

	if cod := p.classOfDevice(); cod != [3]byte{0x04, 0x04, 0x24} {
		t.Fatalf("class of device bytes % x", cod)
	}
}

func TestLoadPropertiesErrors(t *testing.T) {
	for _, f := range []string{
		"testdata/missing.json",
		"testdata/malformed.json",
		"testdata/bad_properties.json",
	} {
		if _, err := LoadProperties(f); err == nil {
			t.Fatalf("%v: no error", f)
		}
	}
}

func TestPropertiesOption(t *testing.T) {
	d, err := NewDualModeController(1, rootcanal.OptPropertiesFile("testdata/properties.json"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Properties().MaxAclConnections != 4 {
		t.Fatal("properties not applied")
	}

	var got []byte
	d.RegisterEventChannel(func(b []byte) { got = b })
	p, _ := cmd.Build(&cmd.ReadBufferSize{})
	d.HandleCommand(p)

	rp := cmd.ReadBufferSizeRP{}
	if err := rp.Unmarshal(got[5:]); err != nil {
		t.Fatal(err)
	}
	if rp.Status != hci.ErrSuccess.Status() || rp.HCACLDataPacketLength != 512 {
		t.Fatalf("read buffer size %+v", rp)
	}

	if _, err := NewDualModeController(1, rootcanal.OptPropertiesFile("testdata/bad_properties.json")); err == nil {
		t.Fatal("invalid properties accepted")
	}
	if _, err := NewDualModeController(1, rootcanal.OptTickPeriod(0)); err == nil {
		t.Fatal("zero tick period accepted")
	}
	if _, err := NewDualModeController(1, rootcanal.OptAclConnectionLimit(0)); err == nil {
		t.Fatal("zero connection limit accepted")
	}
}
