package controller

import (
	"testing"

	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
)

func TestValidateScanParams(t *testing.T) {
	ok := defaultScanParams()
	if err := ValidateScanParams(ok); err != nil {
		t.Fatal(err)
	}

	for i, mod := range []func(p *cmd.LESetScanParameters){
		func(p *cmd.LESetScanParameters) { p.LEScanType = 2 },
		func(p *cmd.LESetScanParameters) { p.LEScanInterval = 0x0003 },
		func(p *cmd.LESetScanParameters) { p.LEScanWindow = 0x4001 },
		func(p *cmd.LESetScanParameters) { p.LEScanWindow = p.LEScanInterval + 1 },
		func(p *cmd.LESetScanParameters) { p.OwnAddressType = 4 },
		func(p *cmd.LESetScanParameters) { p.ScanningFilterPolicy = 2 },
	} {
		p := ok
		mod(&p)
		err := ValidateScanParams(p)
		if hci.StatusOf(err) != hci.ErrInvalidParams {
			t.Fatalf("case %d: %v", i, err)
		}
	}
}

func TestValidateConnParams(t *testing.T) {
	ok := *connParams(addr(2))
	if err := ValidateConnParams(ok); err != nil {
		t.Fatal(err)
	}

	for i, mod := range []func(p *cmd.LECreateConnection){
		func(p *cmd.LECreateConnection) { p.ConnIntervalMin = 0x0005 },
		func(p *cmd.LECreateConnection) { p.ConnIntervalMax = 0x0c81 },
		func(p *cmd.LECreateConnection) { p.ConnIntervalMin = p.ConnIntervalMax + 1 },
		func(p *cmd.LECreateConnection) { p.ConnLatency = 0x01f4 },
		func(p *cmd.LECreateConnection) { p.SupervisionTimeout = 0x0c81 },
		// (1 + 3) * 50ms * 2 = 400ms
		func(p *cmd.LECreateConnection) { p.ConnLatency = 3; p.SupervisionTimeout = 0x0028 },
		func(p *cmd.LECreateConnection) { p.MinimumCELength = 2; p.MaximumCELength = 1 },
		func(p *cmd.LECreateConnection) { p.InitiatorFilterPolicy = 2 },
		func(p *cmd.LECreateConnection) { p.PeerAddressType = 4 },
	} {
		p := ok
		mod(&p)
		if err := ValidateConnParams(p); hci.StatusOf(err) != hci.ErrInvalidParams {
			t.Fatalf("case %d: %v", i, err)
		}
	}

	// the peer address is ignored with the accept list
	p := ok
	p.InitiatorFilterPolicy = FilterPolicyAcceptAcceptList
	p.PeerAddressType = 4
	if err := ValidateConnParams(p); err != nil {
		t.Fatal(err)
	}
}

func TestValidateAdvParamsDirectedHigh(t *testing.T) {
	p := defaultAdvParams()
	p.AdvertisingType = AdvTypeDirectIndHigh
	p.AdvertisingIntervalMin = 0
	p.AdvertisingIntervalMax = 0
	if err := ValidateAdvParams(p); err != nil {
		t.Fatal(err)
	}

	var a LeAdvertiser
	a.setParameters(p)
	if a.params.AdvertisingIntervalMin != AdvIntervalDirectedHigh || a.interval != directedHighInterval {
		t.Fatalf("interval 0x%x / %v", a.params.AdvertisingIntervalMin, a.interval)
	}

	p.DirectAddressType = 2
	if hci.StatusOf(ValidateAdvParams(p)) != hci.ErrInvalidParams {
		t.Fatal("bad direct address type accepted")
	}
}
