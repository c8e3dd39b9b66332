package controller

import (
	"bytes"
	"testing"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
	"github.com/rigado/rootcanal/hci/evt"
	"github.com/rigado/rootcanal/phy"
)

// host stands in for the host stack of one device and records everything
// its controller emits.
type host struct {
	t      *testing.T
	d      *DualModeController
	events []evt.Event
	acl    []hci.AclPacket
}

func (h *host) send(c cmd.Command) {
	h.t.Helper()
	p, err := cmd.Build(c)
	if err != nil {
		h.t.Fatal(err)
	}
	if err := h.d.HandleCommand(p); err != nil {
		h.t.Fatal(err)
	}
}

func (h *host) take() []evt.Event {
	e := h.events
	h.events = nil
	return e
}

// status returns the status of the response to op, or fails.
func (h *host) status(op int) uint8 {
	h.t.Helper()
	for _, e := range h.events {
		switch e.Code() {
		case evt.CommandCompleteCode:
			cc := evt.CommandComplete(e.Params())
			if int(cc.CommandOpcode()) == op {
				return cc.Status()
			}
		case evt.CommandStatusCode:
			cs := evt.CommandStatus(e.Params())
			if int(cs.CommandOpcode()) == op {
				return cs.Status()
			}
		}
	}
	h.t.Fatalf("device %d: no response to 0x%04x in %d events", h.d.ID(), op, len(h.events))
	return 0
}

func (h *host) expect(op int, want hci.ErrCommand) {
	h.t.Helper()
	if s := h.status(op); s != want.Status() {
		h.t.Fatalf("device %d: 0x%04x status 0x%02x, want 0x%02x", h.d.ID(), op, s, want.Status())
	}
}

func (h *host) withCode(code uint8) []evt.Event {
	var out []evt.Event
	for _, e := range h.events {
		if e.Code() == code {
			out = append(out, e)
		}
	}
	return out
}

func (h *host) withSubevent(sub uint8) []evt.Event {
	var out []evt.Event
	for _, e := range h.events {
		if e.SubeventCode() == sub {
			out = append(out, e)
		}
	}
	return out
}

func (h *host) leConnectionComplete() evt.LEConnectionComplete {
	h.t.Helper()
	ev := h.withSubevent(evt.LEConnectionCompleteSubCode)
	if len(ev) != 1 {
		h.t.Fatalf("device %d: %d le connection complete events, want 1", h.d.ID(), len(ev))
	}
	return evt.LEConnectionComplete(ev[0].Params())
}

func (h *host) disconnectionComplete() evt.DisconnectionComplete {
	h.t.Helper()
	ev := h.withCode(evt.DisconnectionCompleteCode)
	if len(ev) != 1 {
		h.t.Fatalf("device %d: %d disconnection complete events, want 1", h.d.ID(), len(ev))
	}
	return evt.DisconnectionComplete(ev[0].Params())
}

type topology struct {
	le      *phy.Factory
	classic *phy.Factory
	hosts   []*host
}

func addr(n byte) rootcanal.Address {
	return rootcanal.NewAddress(n, 0x00, 0x00, 0xda, 0x1b, 0x00)
}

func newTopology(t *testing.T, n int, opts ...rootcanal.Option) *topology {
	tp := &topology{
		le:      phy.NewFactory(phy.LowEnergy),
		classic: phy.NewFactory(phy.BrEdr),
	}
	for i := 0; i < n; i++ {
		o := append([]rootcanal.Option{rootcanal.OptAddress(addr(byte(i + 1)))}, opts...)
		d, err := NewDualModeController(uint32(i+1), o...)
		if err != nil {
			t.Fatal(err)
		}
		h := &host{t: t, d: d}
		d.RegisterEventChannel(func(b []byte) { h.events = append(h.events, evt.Event(b)) })
		d.RegisterAclChannel(func(b []byte) { h.acl = append(h.acl, hci.AclPacket(b)) })

		if _, err := d.AttachPhy(tp.le); err != nil {
			t.Fatal(err)
		}
		if _, err := d.AttachPhy(tp.classic); err != nil {
			t.Fatal(err)
		}

		h.send(&cmd.SetEventMask{EventMask: ^uint64(0)})
		h.send(&cmd.LESetEventMask{LEEventMask: ^uint64(0)})
		h.take()
		tp.hosts = append(tp.hosts, h)
	}
	return tp
}

func (tp *topology) tick(n int) {
	for i := 0; i < n; i++ {
		for _, h := range tp.hosts {
			h.d.TimerTick()
		}
	}
}

func connParams(peer rootcanal.Address) *cmd.LECreateConnection {
	return &cmd.LECreateConnection{
		LEScanInterval:     0x0010,
		LEScanWindow:       0x0010,
		PeerAddress:        peer,
		ConnIntervalMin:    0x0018,
		ConnIntervalMax:    0x0028,
		SupervisionTimeout: 0x0064,
	}
}

// connectLe links central to peripheral and returns both handles.
func (tp *topology) connectLe(t *testing.T, central, peripheral *host) (uint16, uint16) {
	t.Helper()
	central.send(connParams(peripheral.d.Address()))
	central.expect(cmd.LECreateConnectionOpCode, hci.ErrSuccess)
	peripheral.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	peripheral.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrSuccess)
	central.take()
	peripheral.take()

	tp.tick(1)

	c := central.leConnectionComplete()
	p := peripheral.leConnectionComplete()
	if c.Status() != 0 || p.Status() != 0 {
		t.Fatalf("connect status 0x%02x/0x%02x", c.Status(), p.Status())
	}
	central.take()
	peripheral.take()
	return c.ConnectionHandle(), p.ConnectionHandle()
}

func TestLeConnect(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]

	b.send(connParams(a.d.Address()))
	b.expect(cmd.LECreateConnectionOpCode, hci.ErrSuccess)
	if !b.d.State().Initiating {
		t.Fatal("not initiating")
	}
	a.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	a.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrSuccess)

	tp.tick(1)

	p := a.leConnectionComplete()
	switch {
	case p.Status() != 0:
		t.Fatalf("peripheral status 0x%02x", p.Status())
	case p.Role() != hci.RolePeripheral:
		t.Fatalf("peripheral role %d", p.Role())
	case p.PeerAddress() != b.d.Address():
		t.Fatalf("peripheral peer %v", rootcanal.Address(p.PeerAddress()))
	case p.ConnInterval() != 0x20:
		t.Fatalf("interval 0x%x, want midpoint 0x20", p.ConnInterval())
	case p.SupervisionTimeout() != 0x64:
		t.Fatalf("supervision timeout 0x%x", p.SupervisionTimeout())
	}

	c := b.leConnectionComplete()
	switch {
	case c.Status() != 0:
		t.Fatalf("central status 0x%02x", c.Status())
	case c.Role() != hci.RoleCentral:
		t.Fatalf("central role %d", c.Role())
	case c.PeerAddress() != a.d.Address():
		t.Fatalf("central peer %v", rootcanal.Address(c.PeerAddress()))
	}

	if a.d.State().Advertising {
		t.Fatal("peripheral still advertising")
	}
	if s := b.d.State(); s.Initiating || len(s.Connections) != 1 {
		t.Fatalf("central state %+v", s)
	}
}

func TestLeDisconnect(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]
	hb, _ := tp.connectLe(t, b, a)

	b.send(&cmd.Disconnect{ConnectionHandle: hb, Reason: 0x11})
	b.expect(cmd.DisconnectOpCode, hci.ErrInvalidParams)
	b.take()

	b.send(&cmd.Disconnect{ConnectionHandle: hb, Reason: hci.ErrRemoteUser.Status()})
	if b.events[0].Code() != evt.CommandStatusCode {
		t.Fatalf("first event 0x%02x, want command status", b.events[0].Code())
	}
	b.expect(cmd.DisconnectOpCode, hci.ErrSuccess)
	if r := b.disconnectionComplete().Reason(); r != hci.ErrLocalHost.Status() {
		t.Fatalf("local reason 0x%02x", r)
	}
	if r := a.disconnectionComplete().Reason(); r != hci.ErrRemoteUser.Status() {
		t.Fatalf("remote reason 0x%02x", r)
	}
	if len(a.d.Connections().Handles()) != 0 || len(b.d.Connections().Handles()) != 0 {
		t.Fatal("connections left")
	}

	b.take()
	b.send(&cmd.Disconnect{ConnectionHandle: hb, Reason: hci.ErrRemoteUser.Status()})
	b.expect(cmd.DisconnectOpCode, hci.ErrConnID)
}

func TestSupervisionTimeout(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]
	tp.connectLe(t, b, a)

	// 0x64 * 10ms
	tp.tick(95)
	if len(a.withCode(evt.DisconnectionCompleteCode)) != 0 {
		t.Fatal("disconnected early")
	}
	tp.tick(10)

	for _, h := range tp.hosts {
		if r := h.disconnectionComplete().Reason(); r != hci.ErrConnTimeout.Status() {
			t.Fatalf("device %d: reason 0x%02x", h.d.ID(), r)
		}
	}
}

func TestLinkKeepAlive(t *testing.T) {
	tp := newTopology(t, 2, rootcanal.OptLinkKeepAlive(true))
	a, b := tp.hosts[0], tp.hosts[1]
	tp.connectLe(t, b, a)

	tp.tick(500)
	for _, h := range tp.hosts {
		if n := len(h.withCode(evt.DisconnectionCompleteCode)); n != 0 {
			t.Fatalf("device %d: link dropped", h.d.ID())
		}
		if len(h.d.Connections().Handles()) != 1 {
			t.Fatalf("device %d: no connection", h.d.ID())
		}
	}
}

func TestLeCreateConnectionCancel(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	h.send(connParams(addr(9)))
	h.expect(cmd.LECreateConnectionOpCode, hci.ErrSuccess)
	h.take()

	h.send(&cmd.LECreateConnectionCancel{})
	if len(h.events) != 2 || h.events[0].Code() != evt.CommandCompleteCode {
		t.Fatalf("%d events after cancel", len(h.events))
	}
	h.expect(cmd.LECreateConnectionCancelOpCode, hci.ErrSuccess)
	if s := h.leConnectionComplete().Status(); s != hci.ErrConnID.Status() {
		t.Fatalf("cancel status 0x%02x", s)
	}
	h.take()

	h.send(&cmd.LECreateConnectionCancel{})
	h.expect(cmd.LECreateConnectionCancelOpCode, hci.ErrSuccess)
	if len(h.events) != 1 {
		t.Fatalf("second cancel produced %d events", len(h.events))
	}
	if h.d.State().Initiating {
		t.Fatal("still initiating")
	}
}

func TestLeConnectionEstablishmentTimeout(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	h.send(connParams(addr(9)))
	h.take()

	tp.tick(299)
	if len(h.withSubevent(evt.LEConnectionCompleteSubCode)) != 0 {
		t.Fatal("timed out early")
	}
	tp.tick(5)
	if s := h.leConnectionComplete().Status(); s != hci.ErrConnAcceptTimeout.Status() {
		t.Fatalf("status 0x%02x", s)
	}
	if h.d.State().Initiating {
		t.Fatal("still initiating")
	}
}

func TestInitiatingSuspendsScanning(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	h.send(&cmd.LESetScanEnable{LEScanEnable: 1})
	h.send(connParams(addr(9)))
	if h.d.State().Scanning {
		t.Fatal("scanning while initiating")
	}
	h.send(&cmd.LECreateConnectionCancel{})
	if !h.d.State().Scanning {
		t.Fatal("scanning not resumed")
	}
}

func TestInvalidParameters(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	for _, c := range []struct {
		p    cmd.LESetAdvertisingParameters
		want hci.ErrCommand
	}{
		{cmd.LESetAdvertisingParameters{AdvertisingIntervalMin: 0x10, AdvertisingIntervalMax: 0x800, AdvertisingChannelMap: 7}, hci.ErrUnsupportedParams},
		{cmd.LESetAdvertisingParameters{AdvertisingIntervalMin: 0x900, AdvertisingIntervalMax: 0x800, AdvertisingChannelMap: 7}, hci.ErrInvalidParams},
		{cmd.LESetAdvertisingParameters{AdvertisingIntervalMin: 0x800, AdvertisingIntervalMax: 0x800}, hci.ErrInvalidParams},
		{cmd.LESetAdvertisingParameters{AdvertisingIntervalMin: 0x800, AdvertisingIntervalMax: 0x800, AdvertisingChannelMap: 7, AdvertisingType: 5}, hci.ErrInvalidParams},
		{cmd.LESetAdvertisingParameters{AdvertisingType: AdvTypeDirectIndHigh, AdvertisingChannelMap: 7}, hci.ErrSuccess},
	} {
		p := c.p
		h.send(&p)
		h.expect(cmd.LESetAdvertisingParametersOpCode, c.want)
		h.take()
	}

	h.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 2})
	h.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrInvalidParams)
	h.take()

	bad := connParams(addr(9))
	bad.SupervisionTimeout = 0x000a
	h.send(bad)
	h.expect(cmd.LECreateConnectionOpCode, hci.ErrInvalidParams)
	h.take()

	// wrong parameter length
	if err := h.d.HandleCommand(hci.NewCommandPacket(cmd.LESetAdvertiseEnableOpCode, []byte{1, 0})); err != nil {
		t.Fatal(err)
	}
	h.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrInvalidParams)
	h.take()

	if err := h.d.HandleCommand(hci.NewCommandPacket(0xfc01, nil)); err != nil {
		t.Fatal(err)
	}
	h.expect(0xfc01, hci.ErrUnknownCommand)
	h.take()

	if err := h.d.HandleCommand([]byte{0x03, 0x0c, 0x04}); err == nil {
		t.Fatal("no error on truncated packet")
	}
	if len(h.events) != 0 {
		t.Fatal("truncated packet answered")
	}
}

func TestReadCommands(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	h.send(&cmd.ReadBDADDR{})
	h.expect(cmd.ReadBDADDROpCode, hci.ErrSuccess)
	rp := evt.CommandComplete(h.events[0].Params()).ReturnParameters()
	want := addr(1)
	if !bytes.Equal(rp[1:], want[:]) {
		t.Fatalf("bdaddr % x", rp[1:])
	}
	h.take()

	h.send(&cmd.LEReadFilterAcceptListSize{})
	rp = evt.CommandComplete(h.events[0].Params()).ReturnParameters()
	if rp[1] != uint8(DefaultProperties().FilterAcceptListSize) {
		t.Fatalf("accept list size %d", rp[1])
	}
	h.take()

	h.send(&cmd.LEReadResolvingListSize{})
	rp = evt.CommandComplete(h.events[0].Params()).ReturnParameters()
	if rp[1] != uint8(DefaultProperties().ResolvingListSize) {
		t.Fatalf("resolving list size %d", rp[1])
	}
}

func TestEventMask(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]

	a.send(&cmd.Reset{})
	a.expect(cmd.ResetOpCode, hci.ErrSuccess)
	a.take()

	tp.connectLeMasked(t, b, a)
	if len(a.withCode(evt.LEMetaCode)) != 0 {
		t.Fatal("le meta event delivered with the default mask")
	}
}

// connectLeMasked is connectLe without expecting events on the peripheral.
func (tp *topology) connectLeMasked(t *testing.T, central, peripheral *host) {
	t.Helper()
	central.send(connParams(peripheral.d.Address()))
	peripheral.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	peripheral.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrSuccess)
	peripheral.take()
	tp.tick(1)
	if central.leConnectionComplete().Status() != 0 {
		t.Fatal("central failed to connect")
	}
}

func TestAclForwarding(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]
	hb, ha := tp.connectLe(t, b, a)

	data := []byte{0x05, 0x00, 0x04, 0x00, 0x0a, 0x01, 0x00, 0x03, 0x00}
	if err := b.d.HandleAcl(hci.NewAclPacket(hb, hci.PbfHostToControllerStart, 0, data)); err != nil {
		t.Fatal(err)
	}

	if len(a.acl) != 1 {
		t.Fatalf("%d acl packets delivered", len(a.acl))
	}
	got := a.acl[0]
	switch {
	case got.Handle() != ha:
		t.Fatalf("handle 0x%04x, want 0x%04x", got.Handle(), ha)
	case got.Pbf() != hci.PbfControllerToHostStart:
		t.Fatalf("pbf %d", got.Pbf())
	case !bytes.Equal(got.Data(), data):
		t.Fatalf("data % x", got.Data())
	}

	nocp := b.withCode(evt.NumberOfCompletedPacketsCode)
	if len(nocp) != 1 || evt.NumberOfCompletedPackets(nocp[0].Params()).ConnectionHandle(0) != hb {
		t.Fatal("no completed packets event")
	}

	// unknown handle is dropped
	if err := b.d.HandleAcl(hci.NewAclPacket(0x0123, 0, 0, data)); err != nil {
		t.Fatal(err)
	}
	if len(a.acl) != 1 {
		t.Fatal("acl for unknown handle delivered")
	}
}

func TestLeConnectionUpdate(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]
	hb, ha := tp.connectLe(t, b, a)

	b.send(&cmd.LEConnectionUpdate{
		ConnectionHandle:   hb,
		ConnIntervalMin:    0x0030,
		ConnIntervalMax:    0x0030,
		SupervisionTimeout: 0x00c8,
	})
	b.expect(cmd.LEConnectionUpdateOpCode, hci.ErrSuccess)
	if b.events[0].Code() != evt.CommandStatusCode {
		t.Fatal("update complete before command status")
	}

	for _, c := range []struct {
		h      *host
		handle uint16
	}{{a, ha}, {b, hb}} {
		ev := c.h.withSubevent(evt.LEConnectionUpdateCompleteSubCode)
		if len(ev) != 1 {
			t.Fatalf("device %d: %d update events", c.h.d.ID(), len(ev))
		}
		u := evt.LEConnectionUpdateComplete(ev[0].Params())
		if u.ConnectionHandle() != c.handle || u.ConnInterval() != 0x30 || u.SupervisionTimeout() != 0xc8 {
			t.Fatalf("device %d: update %x/%x/%x", c.h.d.ID(), u.ConnectionHandle(), u.ConnInterval(), u.SupervisionTimeout())
		}
	}

	b.take()
	b.send(&cmd.LEConnectionUpdate{ConnectionHandle: 0x0abc, ConnIntervalMin: 0x30, ConnIntervalMax: 0x30, SupervisionTimeout: 0xc8})
	b.expect(cmd.LEConnectionUpdateOpCode, hci.ErrConnID)
}

func TestActiveScan(t *testing.T) {
	tp := newTopology(t, 2)
	a, b := tp.hosts[0], tp.hosts[1]

	adv := cmd.LESetAdvertisingData{AdvertisingDataLength: 3}
	copy(adv.AdvertisingData[:], []byte{0x02, 0x01, 0x06})
	a.send(&adv)
	sr := cmd.LESetScanResponseData{ScanResponseDataLength: 4}
	copy(sr.ScanResponseData[:], []byte{0x03, 0x09, 'r', 'c'})
	a.send(&sr)
	a.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	a.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrSuccess)

	b.send(&cmd.LESetScanParameters{
		LEScanType:     LEScanTypeActive,
		LEScanInterval: 0x0010,
		LEScanWindow:   0x0010,
	})
	b.expect(cmd.LESetScanParametersOpCode, hci.ErrSuccess)
	b.send(&cmd.LESetScanEnable{LEScanEnable: 1, FilterDuplicates: 1})
	b.expect(cmd.LESetScanEnableOpCode, hci.ErrSuccess)
	b.take()

	// three advertising events
	tp.tick(300)

	reports := b.withSubevent(evt.LEAdvertisingReportSubCode)
	if len(reports) != 2 {
		t.Fatalf("%d reports, want advertisement and scan response once each", len(reports))
	}
	r0 := evt.LEAdvertisingReport(reports[0].Params())
	r1 := evt.LEAdvertisingReport(reports[1].Params())
	switch {
	case r0.EventType(0) != 0x00 || !bytes.Equal(r0.Data(0), adv.AdvertisingData[:3]):
		t.Fatalf("advertisement report type %d data % x", r0.EventType(0), r0.Data(0))
	case r1.EventType(0) != 0x04 || !bytes.Equal(r1.Data(0), sr.ScanResponseData[:4]):
		t.Fatalf("scan response report type %d data % x", r1.EventType(0), r1.Data(0))
	case r0.Address(0) != a.d.Address():
		t.Fatalf("report address %v", rootcanal.Address(r0.Address(0)))
	}

	b.take()
	b.send(&cmd.LESetScanParameters{LEScanInterval: 0x10, LEScanWindow: 0x10})
	b.expect(cmd.LESetScanParametersOpCode, hci.ErrDisallowed)
}

func TestDirectedAdvertisingTimeout(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	h.send(&cmd.LESetAdvertisingParameters{
		AdvertisingType:       AdvTypeDirectIndHigh,
		DirectAddress:         addr(9),
		AdvertisingChannelMap: 0x07,
	})
	h.expect(cmd.LESetAdvertisingParametersOpCode, hci.ErrSuccess)
	h.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	h.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrSuccess)
	h.take()

	tp.tick(127)
	if len(h.withSubevent(evt.LEConnectionCompleteSubCode)) != 0 {
		t.Fatal("timed out early")
	}
	tp.tick(10)

	e := h.leConnectionComplete()
	if e.Status() != hci.ErrDirAdvTimeout.Status() || e.Role() != hci.RolePeripheral {
		t.Fatalf("status 0x%02x role %d", e.Status(), e.Role())
	}
	if h.d.State().Advertising {
		t.Fatal("still advertising")
	}
}

func TestConnectionLimit(t *testing.T) {
	tp := newTopology(t, 3, rootcanal.OptAclConnectionLimit(1))
	a, b, c := tp.hosts[0], tp.hosts[1], tp.hosts[2]
	tp.connectLe(t, b, a)

	a.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	a.expect(cmd.LESetAdvertiseEnableOpCode, hci.ErrConnLimit)

	b.send(connParams(c.d.Address()))
	b.expect(cmd.LECreateConnectionOpCode, hci.ErrConnLimit)
}

func TestReset(t *testing.T) {
	tp := newTopology(t, 1)
	h := tp.hosts[0]

	h.send(&cmd.LESetRandomAddress{RandomAddress: rootcanal.NewAddress(1, 2, 3, 4, 5, 0xc6)})
	h.send(&cmd.LESetAdvertiseEnable{AdvertisingEnable: 1})
	h.send(&cmd.LEAddDeviceToFilterAcceptList{Address: addr(4)})
	h.take()

	h.send(&cmd.Reset{})
	h.expect(cmd.ResetOpCode, hci.ErrSuccess)
	if h.d.State().Advertising {
		t.Fatal("advertising after reset")
	}
	if len(h.d.acceptList) != 0 || !h.d.random.IsEmpty() {
		t.Fatal("lists or random address survived reset")
	}
	if h.d.Address() != addr(1) {
		t.Fatal("public address lost")
	}
}
