package controller

import (
	"testing"
	"time"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/phy"
)

func leConn(h *AclConnectionHandler, peer byte) uint16 {
	return h.CreateLeConnection(
		rootcanal.NewAddressWithType(addr(peer), rootcanal.AddressTypePublic),
		rootcanal.AddressWithType{},
		rootcanal.NewAddressWithType(addr(1), rootcanal.AddressTypePublic),
		hci.RolePeripheral, 0x20, 0, 0x64, 0)
}

func TestHandleAllocation(t *testing.T) {
	h := NewAclConnectionHandler(2)

	if a, b := leConn(h, 2), leConn(h, 3); a != hci.HandleMin || b != hci.HandleMin+1 {
		t.Fatalf("handles 0x%04x 0x%04x", a, b)
	}
	if x := leConn(h, 4); x != hci.ReservedHandle {
		t.Fatalf("handle 0x%04x past the limit", x)
	}

	h.Disconnect(hci.HandleMin)
	if x := leConn(h, 4); x != hci.HandleMin+2 {
		t.Fatalf("handle 0x%04x, want the next unused one", x)
	}
}

func TestHandleWrap(t *testing.T) {
	h := NewAclConnectionHandler(2)
	h.lastHandle = hci.HandleMax - 1

	if x := leConn(h, 2); x != hci.HandleMax {
		t.Fatalf("handle 0x%04x", x)
	}
	if x := leConn(h, 3); x != hci.HandleMin {
		t.Fatalf("handle 0x%04x after wrap", x)
	}
}

func TestDuplicateHandlePanics(t *testing.T) {
	h := NewAclConnectionHandler(4)
	c := newAclConnection(0x0010, rootcanal.AddressWithType{}, rootcanal.AddressWithType{}, rootcanal.AddressWithType{}, phy.LowEnergy, hci.RoleCentral, time.Second)
	h.insert(c)

	defer func() {
		if recover() == nil {
			t.Fatal("no panic on duplicate handle")
		}
	}()
	h.insert(c)
}

func TestPendingConnections(t *testing.T) {
	h := NewAclConnectionHandler(4)

	if !h.CreatePendingConnection(addr(2), true, 0) || h.CreatePendingConnection(addr(2), false, 0) {
		t.Fatal("duplicate pending connection accepted")
	}
	h.CreatePendingConnection(addr(3), false, time.Second)

	switch {
	case !h.HasPendingOutgoing(addr(2)) || h.HasPendingIncoming(addr(2)):
		t.Fatal("outgoing page")
	case !h.HasPendingIncoming(addr(3)):
		t.Fatal("incoming page")
	case !h.HasOutgoingPage():
		t.Fatal("no outgoing page")
	}

	if out, in := h.ExpiredPages(2*time.Second, 5*time.Second); len(out) != 0 || len(in) != 0 {
		t.Fatalf("expired %v %v", out, in)
	}
	out, in := h.ExpiredPages(5500*time.Millisecond, 5*time.Second)
	if len(out) != 1 || out[0] != addr(2) || len(in) != 0 {
		t.Fatalf("expired %v %v", out, in)
	}
	if h.HasPendingConnection(addr(2)) || !h.HasPendingConnection(addr(3)) {
		t.Fatal("wrong page expired")
	}

	handle := h.CreateConnection(addr(3), addr(1), hci.RolePeripheral, time.Second, 0)
	if handle == hci.ReservedHandle || h.HasPendingConnection(addr(3)) {
		t.Fatal("pending page not consumed")
	}
	if c := h.Find(addr(3), phy.BrEdr); c == nil || c.Handle() != handle {
		t.Fatal("connection not found")
	}
	if h.Find(addr(3), phy.LowEnergy) != nil {
		t.Fatal("found on the wrong phy")
	}
	if h.CreateConnection(addr(4), addr(1), hci.RoleCentral, time.Second, 0) != hci.ReservedHandle {
		t.Fatal("connection created without a page")
	}
}

func TestExpiredIncomingPage(t *testing.T) {
	h := NewAclConnectionHandler(4)
	h.CreatePendingConnection(addr(3), false, 0)

	out, in := h.ExpiredPages(5*time.Second, 5*time.Second)
	if len(out) != 0 || len(in) != 1 || in[0] != addr(3) {
		t.Fatalf("expired %v %v", out, in)
	}
	if h.HasPendingIncoming(addr(3)) {
		t.Fatal("incoming page still pending")
	}
	if !h.CreatePendingConnection(addr(3), false, 6*time.Second) {
		t.Fatal("new page from the same peer refused")
	}
}

func TestPendingLeConnection(t *testing.T) {
	h := NewAclConnectionHandler(4)
	peer := rootcanal.NewAddressWithType(addr(2), rootcanal.AddressTypePublic)
	own := rootcanal.NewAddressWithType(addr(1), rootcanal.AddressTypePublic)

	if !h.CreatePendingLeConnection(peer, rootcanal.AddressWithType{}, own) {
		t.Fatal("pending le connection refused")
	}
	if h.CreatePendingLeConnection(peer, rootcanal.AddressWithType{}, own) {
		t.Fatal("second pending le connection accepted")
	}
	if !h.HasPendingLeConnection(addr(2)) || h.HasPendingLeConnection(addr(3)) {
		t.Fatal("wrong pending peer")
	}
	if !h.CancelPendingLeConnection() || h.HasPendingLeConnection(addr(2)) {
		t.Fatal("pending le connection not cancelled")
	}
}

func TestFindLink(t *testing.T) {
	h := NewAclConnectionHandler(4)
	handle := leConn(h, 2)

	if c := h.FindLink(addr(1), addr(2), phy.LowEnergy); c == nil || c.Handle() != handle {
		t.Fatal("link not found")
	}
	if h.FindLink(addr(2), addr(1), phy.LowEnergy) != nil {
		t.Fatal("reversed link found")
	}
}

func TestLinkTimer(t *testing.T) {
	c := newAclConnection(1, rootcanal.AddressWithType{}, rootcanal.AddressWithType{}, rootcanal.AddressWithType{}, phy.LowEnergy, hci.RoleCentral, 0)
	c.setParameters(0x20, 0, 0x64)
	c.ResetLinkTimer(time.Second)

	switch {
	case c.TimeUntilLinkExpired(time.Second) != time.Second:
		t.Fatalf("%v until expiry", c.TimeUntilLinkExpired(time.Second))
	case c.IsLinkNearExpiring(1400 * time.Millisecond):
		t.Fatal("near expiring too soon")
	case !c.IsLinkNearExpiring(1500 * time.Millisecond):
		t.Fatal("not near expiring at half the timeout")
	case c.HasLinkExpired(1990 * time.Millisecond):
		t.Fatal("expired early")
	case !c.HasLinkExpired(2 * time.Second):
		t.Fatal("not expired")
	}
}

func TestConnectionAddresses(t *testing.T) {
	peer := rootcanal.NewAddressWithType(addr(2), rootcanal.AddressTypeRandom)
	c := newAclConnection(1, peer, rootcanal.AddressWithType{}, rootcanal.AddressWithType{}, phy.LowEnergy, hci.RoleCentral, 0)

	if err := c.SetAddress(rootcanal.NewAddressWithType(addr(3), rootcanal.AddressTypePublic)); err == nil {
		t.Fatal("address type changed")
	}
	if err := c.SetAddress(rootcanal.NewAddressWithType(addr(3), rootcanal.AddressTypeRandom)); err != nil {
		t.Fatal(err)
	}
	if err := c.SetOwnAddress(rootcanal.AddressWithType{}); err == nil {
		t.Fatal("empty own address accepted")
	}
}
