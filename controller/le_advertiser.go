package controller

import (
	"time"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci/cmd"
	"github.com/rigado/rootcanal/link"
)

const (
	directedHighInterval = 3750 * time.Microsecond
	slot                 = 625 * time.Microsecond
)

// LeAdvertiser is the legacy advertising set of a controller.
type LeAdvertiser struct {
	params       cmd.LESetAdvertisingParameters
	data         []byte
	scanResponse []byte

	enabled   bool
	address   rootcanal.AddressWithType
	target    rootcanal.AddressWithType
	interval  time.Duration
	nextEvent time.Duration

	hasTimeout bool
	timeout    time.Duration
}

func newLeAdvertiser() LeAdvertiser {
	var a LeAdvertiser
	a.setParameters(defaultAdvParams())
	return a
}

func (a *LeAdvertiser) IsEnabled() bool { return a.enabled }

func (a *LeAdvertiser) Address() rootcanal.AddressWithType { return a.address }

func (a *LeAdvertiser) Disable() {
	a.enabled = false
	a.hasTimeout = false
}

// setParameters stores validated parameters. High duty cycle directed
// advertising runs at its own fixed rate.
func (a *LeAdvertiser) setParameters(p cmd.LESetAdvertisingParameters) {
	p.AdvertisingChannelMap &= 0x07
	if p.AdvertisingType == AdvTypeDirectIndHigh {
		p.AdvertisingIntervalMin = AdvIntervalDirectedHigh
		p.AdvertisingIntervalMax = AdvIntervalDirectedHigh
		a.interval = directedHighInterval
	} else {
		a.interval = time.Duration(p.AdvertisingIntervalMin) * slot
	}
	a.params = p
}

func (a *LeAdvertiser) isDirected() bool {
	return a.params.AdvertisingType == AdvTypeDirectIndHigh || a.params.AdvertisingType == AdvTypeDirectIndLow
}

// IsConnectable reports whether connect requests may be accepted.
func (a *LeAdvertiser) IsConnectable() bool {
	switch a.params.AdvertisingType {
	case AdvTypeInd, AdvTypeDirectIndHigh, AdvTypeDirectIndLow:
		return true
	}
	return false
}

// IsScannable reports whether scan requests are answered.
func (a *LeAdvertiser) IsScannable() bool {
	return a.params.AdvertisingType == AdvTypeInd || a.params.AdvertisingType == AdvTypeScanInd
}

func (a *LeAdvertiser) connectFiltered() bool {
	return a.params.AdvertisingFilterPolicy == advFilterConnectListed || a.params.AdvertisingFilterPolicy == advFilterScanAndConnect
}

func (a *LeAdvertiser) scanFiltered() bool {
	return a.params.AdvertisingFilterPolicy == 0x01 || a.params.AdvertisingFilterPolicy == advFilterScanAndConnect
}

// enable starts advertising from own. The first advertisement goes out on
// the next tick.
func (a *LeAdvertiser) enable(own, target rootcanal.AddressWithType, now, directedWindow time.Duration) {
	a.address = own
	a.target = target
	a.enabled = true
	a.nextEvent = now
	a.hasTimeout = a.params.AdvertisingType == AdvTypeDirectIndHigh
	if a.hasTimeout {
		a.timeout = now + directedWindow
	}
}

// timedOut reports, once, that directed advertising failed to connect in
// time. The advertiser is disabled.
func (a *LeAdvertiser) timedOut(now time.Duration) bool {
	if !a.enabled || !a.hasTimeout || now < a.timeout {
		return false
	}
	a.Disable()
	return true
}

func (a *LeAdvertiser) pduType() uint8 {
	switch a.params.AdvertisingType {
	case AdvTypeDirectIndHigh, AdvTypeDirectIndLow:
		return link.AdvDirectInd
	case AdvTypeScanInd:
		return link.AdvScanInd
	case AdvTypeNonconnInd:
		return link.AdvNonconnInd
	}
	return link.AdvInd
}

// advertisement returns the packet due at now, or nil.
func (a *LeAdvertiser) advertisement(now time.Duration) link.Builder {
	if !a.enabled || now < a.nextEvent {
		return nil
	}
	for a.nextEvent <= now {
		a.nextEvent += a.interval
	}

	dst := rootcanal.AddressEmpty
	if a.isDirected() {
		dst = a.target.Address
	}
	return link.LeAdvertisementBuilder{
		Src:               a.address.Address,
		Dst:               dst,
		AddressType:       uint8(a.address.Type),
		AdvertisementType: a.pduType(),
		Data:              a.data,
	}
}

func (a *LeAdvertiser) scanResponseTo(scanner rootcanal.Address) link.Builder {
	return link.LeScanResponseBuilder{
		Src:         a.address.Address,
		Dst:         scanner,
		AddressType: uint8(a.address.Type),
		Data:        a.scanResponse,
	}
}
