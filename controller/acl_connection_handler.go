package controller

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/phy"
)

type pendingClassic struct {
	address  rootcanal.Address
	outgoing bool
	started  time.Duration
}

type pendingLe struct {
	peer     rootcanal.AddressWithType
	resolved rootcanal.AddressWithType
	own      rootcanal.AddressWithType
}

// AclConnectionHandler owns the connection table of one controller.
type AclConnectionHandler struct {
	limit      int
	lastHandle uint16

	connections map[uint16]*AclConnection
	classic     []pendingClassic
	le          *pendingLe
}

func NewAclConnectionHandler(limit int) *AclConnectionHandler {
	return &AclConnectionHandler{
		limit:       limit,
		lastHandle:  hci.HandleMax,
		connections: map[uint16]*AclConnection{},
	}
}

func (h *AclConnectionHandler) Len() int { return len(h.connections) }

// Full reports whether the connection limit has been reached.
func (h *AclConnectionHandler) Full() bool { return len(h.connections) >= h.limit }

func (h *AclConnectionHandler) SetLimit(n int) { h.limit = n }

// Reset drops every connection and pending attempt without notification.
func (h *AclConnectionHandler) Reset() {
	h.connections = map[uint16]*AclConnection{}
	h.classic = nil
	h.le = nil
	h.lastHandle = hci.HandleMax
}

func (h *AclConnectionHandler) pendingIndex(a rootcanal.Address) int {
	for i, p := range h.classic {
		if p.address == a {
			return i
		}
	}
	return -1
}

// CreatePendingConnection records a page to or from a. It fails when a is
// already pending.
func (h *AclConnectionHandler) CreatePendingConnection(a rootcanal.Address, outgoing bool, now time.Duration) bool {
	if h.pendingIndex(a) >= 0 {
		return false
	}
	h.classic = append(h.classic, pendingClassic{address: a, outgoing: outgoing, started: now})
	return true
}

func (h *AclConnectionHandler) HasPendingConnection(a rootcanal.Address) bool {
	return h.pendingIndex(a) >= 0
}

// HasPendingOutgoing reports whether this side paged a.
func (h *AclConnectionHandler) HasPendingOutgoing(a rootcanal.Address) bool {
	i := h.pendingIndex(a)
	return i >= 0 && h.classic[i].outgoing
}

// HasPendingIncoming reports whether a paged this side.
func (h *AclConnectionHandler) HasPendingIncoming(a rootcanal.Address) bool {
	i := h.pendingIndex(a)
	return i >= 0 && !h.classic[i].outgoing
}

// HasOutgoingPage reports whether any page from this side is in progress.
func (h *AclConnectionHandler) HasOutgoingPage() bool {
	for _, p := range h.classic {
		if p.outgoing {
			return true
		}
	}
	return false
}

func (h *AclConnectionHandler) CancelPendingConnection(a rootcanal.Address) bool {
	i := h.pendingIndex(a)
	if i < 0 {
		return false
	}
	h.classic = append(h.classic[:i:i], h.classic[i+1:]...)
	return true
}

// ExpiredPages removes the pages older than timeout. Outgoing pages and
// incoming pages the host never answered are returned apart.
func (h *AclConnectionHandler) ExpiredPages(now, timeout time.Duration) (outgoing, incoming []rootcanal.Address) {
	kept := h.classic[:0]
	for _, p := range h.classic {
		switch {
		case now-p.started < timeout:
			kept = append(kept, p)
		case p.outgoing:
			outgoing = append(outgoing, p.address)
		default:
			incoming = append(incoming, p.address)
		}
	}
	h.classic = kept
	return outgoing, incoming
}

func (h *AclConnectionHandler) CreatePendingLeConnection(peer, resolved, own rootcanal.AddressWithType) bool {
	if h.le != nil {
		return false
	}
	h.le = &pendingLe{peer: peer, resolved: resolved, own: own}
	return true
}

// HasPendingLeConnection reports whether a connect request to peer is
// outstanding.
func (h *AclConnectionHandler) HasPendingLeConnection(peer rootcanal.Address) bool {
	return h.le != nil && h.le.peer.Address == peer
}

func (h *AclConnectionHandler) pendingLeConnection() *pendingLe { return h.le }

func (h *AclConnectionHandler) CancelPendingLeConnection() bool {
	if h.le == nil {
		return false
	}
	h.le = nil
	return true
}

// nextHandle returns the first free handle after the last one handed out,
// or ReservedHandle when the table is full.
func (h *AclConnectionHandler) nextHandle() uint16 {
	if h.Full() {
		return hci.ReservedHandle
	}
	n := h.lastHandle
	for i := hci.HandleMin; i <= hci.HandleMax; i++ {
		n++
		if n > hci.HandleMax {
			n = hci.HandleMin
		}
		if _, used := h.connections[n]; !used {
			h.lastHandle = n
			return n
		}
	}
	return hci.ReservedHandle
}

func (h *AclConnectionHandler) insert(c *AclConnection) {
	if _, dup := h.connections[c.handle]; dup {
		panic(errors.Errorf("connection handle 0x%04x already in use", c.handle))
	}
	h.connections[c.handle] = c
}

// CreateConnection promotes a pending page into a BR/EDR connection.
func (h *AclConnectionHandler) CreateConnection(peer, own rootcanal.Address, role uint8, timeout, now time.Duration) uint16 {
	if !h.CancelPendingConnection(peer) {
		return hci.ReservedHandle
	}
	handle := h.nextHandle()
	if handle == hci.ReservedHandle {
		return handle
	}

	c := newAclConnection(handle,
		rootcanal.NewAddressWithType(peer, rootcanal.AddressTypePublic),
		rootcanal.NewAddressWithType(own, rootcanal.AddressTypePublic),
		rootcanal.AddressWithType{},
		phy.BrEdr, role, timeout)
	c.ResetLinkTimer(now)
	h.insert(c)
	return handle
}

// CreateLeConnection records an LE link. The initiator's pending attempt,
// if any, is consumed.
func (h *AclConnectionHandler) CreateLeConnection(peer, resolved, own rootcanal.AddressWithType, role uint8, interval, latency, supervisionTimeout uint16, now time.Duration) uint16 {
	if role == hci.RoleCentral {
		h.le = nil
	}
	handle := h.nextHandle()
	if handle == hci.ReservedHandle {
		return handle
	}

	c := newAclConnection(handle, peer, own, resolved, phy.LowEnergy, role, 0)
	c.setParameters(interval, latency, supervisionTimeout)
	c.ResetLinkTimer(now)
	h.insert(c)
	return handle
}

func (h *AclConnectionHandler) Disconnect(handle uint16) bool {
	if _, ok := h.connections[handle]; !ok {
		return false
	}
	delete(h.connections, handle)
	return true
}

func (h *AclConnectionHandler) Get(handle uint16) *AclConnection {
	return h.connections[handle]
}

// Find returns the connection whose peer uses address a on medium t.
func (h *AclConnectionHandler) Find(a rootcanal.Address, t phy.Type) *AclConnection {
	for _, handle := range h.Handles() {
		c := h.connections[handle]
		if c.phyType == t && (c.address.Address == a || (!c.resolvedAddress.IsEmpty() && c.resolvedAddress.Address == a)) {
			return c
		}
	}
	return nil
}

// FindLink returns the connection between own and peer on medium t.
func (h *AclConnectionHandler) FindLink(own, peer rootcanal.Address, t phy.Type) *AclConnection {
	for _, handle := range h.Handles() {
		c := h.connections[handle]
		if c.phyType == t && c.ownAddress.Address == own && c.address.Address == peer {
			return c
		}
	}
	return nil
}

// Handles returns the handles in use, in ascending order.
func (h *AclConnectionHandler) Handles() []uint16 {
	out := make([]uint16, 0, len(h.connections))
	for handle := range h.connections {
		out = append(out, handle)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
