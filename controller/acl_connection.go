package controller

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/phy"
)

// AclConnection is the controller side record of one established link.
type AclConnection struct {
	handle          uint16
	address         rootcanal.AddressWithType
	ownAddress      rootcanal.AddressWithType
	resolvedAddress rootcanal.AddressWithType
	phyType         phy.Type
	role            uint8
	encrypted       bool

	interval           uint16
	latency            uint16
	supervisionTimeout uint16

	timeout      time.Duration
	lastActivity time.Duration
	pingSent     bool
}

func newAclConnection(handle uint16, peer, own, resolved rootcanal.AddressWithType, t phy.Type, role uint8, timeout time.Duration) *AclConnection {
	return &AclConnection{
		handle:          handle,
		address:         peer,
		ownAddress:      own,
		resolvedAddress: resolved,
		phyType:         t,
		role:            role,
		timeout:         timeout,
	}
}

func (c *AclConnection) Handle() uint16                             { return c.handle }
func (c *AclConnection) Address() rootcanal.AddressWithType         { return c.address }
func (c *AclConnection) OwnAddress() rootcanal.AddressWithType      { return c.ownAddress }
func (c *AclConnection) ResolvedAddress() rootcanal.AddressWithType { return c.resolvedAddress }
func (c *AclConnection) PhyType() phy.Type                          { return c.phyType }
func (c *AclConnection) Role() uint8                                { return c.role }
func (c *AclConnection) IsEncrypted() bool                          { return c.encrypted }
func (c *AclConnection) Encrypt()                                   { c.encrypted = true }

// Interval, Latency and SupervisionTimeout are in HCI units and zero on
// BR/EDR links.
func (c *AclConnection) Interval() uint16           { return c.interval }
func (c *AclConnection) Latency() uint16            { return c.latency }
func (c *AclConnection) SupervisionTimeout() uint16 { return c.supervisionTimeout }

// SetAddress replaces the peer address. The address type is fixed for the
// lifetime of the link.
func (c *AclConnection) SetAddress(a rootcanal.AddressWithType) error {
	if a.Type != c.address.Type {
		return errors.Errorf("connection 0x%04x: address type %v cannot change to %v", c.handle, c.address.Type, a.Type)
	}
	c.address = a
	return nil
}

func (c *AclConnection) SetOwnAddress(a rootcanal.AddressWithType) error {
	if a.IsEmpty() {
		return errors.Errorf("connection 0x%04x: empty own address", c.handle)
	}
	c.ownAddress = a
	return nil
}

// setParameters applies LE timing; the link supervision timeout follows.
func (c *AclConnection) setParameters(interval, latency, supervisionTimeout uint16) {
	c.interval = interval
	c.latency = latency
	c.supervisionTimeout = supervisionTimeout
	c.timeout = time.Duration(supervisionTimeout) * 10 * time.Millisecond
}

func (c *AclConnection) ResetLinkTimer(now time.Duration) {
	c.lastActivity = now
	c.pingSent = false
}

func (c *AclConnection) TimeUntilLinkExpired(now time.Duration) time.Duration {
	return c.lastActivity + c.timeout - now
}

func (c *AclConnection) HasLinkExpired(now time.Duration) bool {
	return c.TimeUntilLinkExpired(now) <= 0
}

// IsLinkNearExpiring reports whether half of the supervision timeout went
// by without traffic from the peer.
func (c *AclConnection) IsLinkNearExpiring(now time.Duration) bool {
	return c.TimeUntilLinkExpired(now) <= c.timeout/2
}
