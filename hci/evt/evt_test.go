package evt

import (
	"bytes"
	"testing"
)

func TestCommandComplete(t *testing.T) {
	e := NewCommandComplete(0x200d, []byte{0x12})
	if e.Code() != CommandCompleteCode {
		t.Fatalf("code %x", e.Code())
	}

	cc := CommandComplete(e.Params())
	if cc.CommandOpcode() != 0x200d {
		t.Fatalf("opcode %x", cc.CommandOpcode())
	}
	if cc.Status() != 0x12 {
		t.Fatalf("status %x", cc.Status())
	}
}

func TestEventLengthMismatch(t *testing.T) {
	e := Event{CommandStatusCode, 5, 0, 1, 0x0d, 0x20}
	if _, err := e.ParamsWErr(); err == nil {
		t.Fatal("no error on truncated event")
	}
}

func TestLEConnectionComplete(t *testing.T) {
	addr := [6]byte{1, 2, 3, 4, 5, 6}
	e := NewLEConnectionComplete(LEConnectionCompleteParams{
		Status:             0,
		ConnectionHandle:   0x0041,
		Role:               1,
		PeerAddressType:    1,
		PeerAddress:        addr,
		ConnInterval:       0x18,
		ConnLatency:        2,
		SupervisionTimeout: 0x48,
	})

	if e.SubeventCode() != LEConnectionCompleteSubCode {
		t.Fatalf("subevent %x", e.SubeventCode())
	}
	v := LEConnectionComplete(e.Params())
	switch {
	case v.ConnectionHandle() != 0x0041:
		t.Fatalf("handle %x", v.ConnectionHandle())
	case v.Role() != 1:
		t.Fatalf("role %x", v.Role())
	case v.PeerAddress() != addr:
		t.Fatalf("addr %v", v.PeerAddress())
	case v.SupervisionTimeout() != 0x48:
		t.Fatalf("timeout %x", v.SupervisionTimeout())
	}

	if _, err := LEConnectionComplete(e.Params()[:10]).SupervisionTimeoutWErr(); err == nil {
		t.Fatal("no index error on short view")
	}
}

func TestLEAdvertisingReport(t *testing.T) {
	data := []byte{2, 1, 6}
	e := NewLEAdvertisingReport(0, 1, [6]byte{6, 5, 4, 3, 2, 1}, data, -42)
	r := LEAdvertisingReport(e.Params())

	if r.NumReports() != 1 {
		t.Fatalf("reports %v", r.NumReports())
	}
	if !bytes.Equal(r.Data(0), data) {
		t.Fatalf("data %v", r.Data(0))
	}
	if r.RSSI(0) != -42 {
		t.Fatalf("rssi %v", r.RSSI(0))
	}
	if r.AddressType(0) != 1 {
		t.Fatalf("addr type %v", r.AddressType(0))
	}
}

func TestLELongTermKeyRequest(t *testing.T) {
	e := NewLELongTermKeyRequest(3, 0x0102030405060708, 0xbeef)
	v := LELongTermKeyRequest(e.Params())
	if v.ConnectionHandle() != 3 || v.RandomNumber() != 0x0102030405060708 || v.EncryptedDiversifier() != 0xbeef {
		t.Fatalf("unexpected %x %x %x", v.ConnectionHandle(), v.RandomNumber(), v.EncryptedDiversifier())
	}
}

func TestInquiryResult(t *testing.T) {
	addr := [6]byte{1, 2, 3, 4, 5, 6}
	e := NewInquiryResult(addr, 1, [3]byte{0x0c, 0x02, 0x5a}, 0x1234)
	if e.Code() != InquiryResultCode {
		t.Fatalf("code %x", e.Code())
	}
	if _, err := e.ParamsWErr(); err != nil {
		t.Fatal(err)
	}

	r := InquiryResult(e.Params())
	switch {
	case r.NumResponses() != 1:
		t.Fatalf("responses %d", r.NumResponses())
	case r.BDADDR() != addr:
		t.Fatalf("addr %v", r.BDADDR())
	case r.PageScanRepetitionMode() != 1:
		t.Fatalf("psrm %x", r.PageScanRepetitionMode())
	case !bytes.Equal(r.ClassOfDevice(), []byte{0x0c, 0x02, 0x5a}):
		t.Fatalf("class % x", r.ClassOfDevice())
	case r.ClockOffset() != 0x1234:
		t.Fatalf("clock offset %x", r.ClockOffset())
	}

	c := NewInquiryComplete(0x0c)
	if c.Code() != InquiryCompleteCode || InquiryComplete(c.Params()).Status() != 0x0c {
		t.Fatalf("unexpected %v", c)
	}
}
