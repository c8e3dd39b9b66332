package model

import (
	"net"
	"testing"
	"time"

	"github.com/rigado/rootcanal/h4"
	"github.com/rigado/rootcanal/hci/cmd"
	"github.com/rigado/rootcanal/hci/evt"
	"github.com/rigado/rootcanal/phy"
)

// hostConn is the host end of an H4 stream.
type hostConn struct {
	t      *testing.T
	c      net.Conn
	a      *h4.Assembler
	events []evt.Event
}

func newHostConn(t *testing.T, c net.Conn) *hostConn {
	h := &hostConn{t: t, c: c}
	h.a = h4.NewAssembler(func(f h4.Frame) { h.events = append(h.events, evt.Event(f.Packet)) }, h4.EventPacket)
	return h
}

func (h *hostConn) send(c cmd.Command) {
	h.t.Helper()
	p, err := cmd.Build(c)
	if err != nil {
		h.t.Fatal(err)
	}
	if _, err := h.c.Write(h4.Encode(h4.CommandPacket, p)); err != nil {
		h.t.Fatal(err)
	}
}

// next waits for the next event from the controller.
func (h *hostConn) next() evt.Event {
	h.t.Helper()
	b := make([]byte, 256)
	h.c.SetReadDeadline(time.Now().Add(5 * time.Second))
	for len(h.events) == 0 {
		n, err := h.c.Read(b)
		if err != nil {
			h.t.Fatal(err)
		}
		h.a.Assemble(b[:n])
	}
	e := h.events[0]
	h.events = h.events[1:]
	return e
}

func TestHciSocketDevice(t *testing.T) {
	m := NewTestModel()
	le := m.AddPhy(phy.LowEnergy)
	m.AddPhy(phy.BrEdr)

	host, remote := net.Pipe()
	d, err := m.AddHciConnection(remote)
	if err != nil {
		t.Fatal(err)
	}
	if d.Address() != DeviceAddress(1) || d.Layer(phy.LowEnergy) == nil || d.Layer(phy.BrEdr) == nil {
		t.Fatal("device not attached to the model's phys")
	}
	if m.Phy(le).Len() != 1 {
		t.Fatal("le phy empty")
	}

	h := newHostConn(t, host)
	h.send(&cmd.Reset{})
	e := h.next()
	if e.Code() != evt.CommandCompleteCode {
		t.Fatalf("event 0x%02x", e.Code())
	}
	cc := evt.CommandComplete(e.Params())
	if int(cc.CommandOpcode()) != cmd.ResetOpCode || cc.Status() != 0 {
		t.Fatalf("opcode 0x%04x status 0x%02x", cc.CommandOpcode(), cc.Status())
	}

	h.send(&cmd.ReadBDADDR{})
	cc = evt.CommandComplete(h.next().Params())
	rp := cmd.ReadBDADDRRP{}
	if err := rp.Unmarshal(cc.ReturnParameters()); err != nil {
		t.Fatal(err)
	}
	if rp.BDADDR != [6]byte(DeviceAddress(1)) {
		t.Fatalf("address %v", rp.BDADDR)
	}

	host.Close()
	select {
	case <-d.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("device still running")
	}
	if d.Err() != nil {
		t.Fatal(d.Err())
	}
	if len(m.Devices()) != 0 || m.Phy(le).Len() != 0 {
		t.Fatal("device not removed")
	}
}

func TestHciSocketDeviceIds(t *testing.T) {
	m := NewTestModel()
	for i := uint32(1); i <= 3; i++ {
		_, remote := net.Pipe()
		d, err := m.AddHciConnection(remote)
		if err != nil {
			t.Fatal(err)
		}
		if d.ID() != i {
			t.Fatalf("id %d, want %d", d.ID(), i)
		}
		defer d.Close()
	}
}

func TestHciSocketDeviceStalledHost(t *testing.T) {
	m := NewTestModel()
	host, remote := net.Pipe()
	defer host.Close()
	d, err := m.AddHciConnection(remote)
	if err != nil {
		t.Fatal(err)
	}

	// the host sends but never reads its events
	h := newHostConn(t, host)
	h.send(&cmd.Reset{})
	h.send(&cmd.ReadBDADDR{})

	ticked := make(chan struct{})
	go func() {
		m.Tick()
		close(ticked)
	}()
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("tick blocked by a host that does not read")
	}

	p, err := cmd.Build(&cmd.ReadBDADDR{})
	if err != nil {
		t.Fatal(err)
	}
	frame := h4.Encode(h4.CommandPacket, p)
	for i := 0; i < 2*WriteQueueSize; i++ {
		if _, err := host.Write(frame); err != nil {
			break
		}
	}

	select {
	case <-d.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("stream of a stalled host not dropped")
	}
	if d.Err() == nil {
		t.Fatal("no error for a dropped stream")
	}
	if len(m.Devices()) != 0 {
		t.Fatal("device not removed")
	}
}
