package controller

import (
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
	"github.com/rigado/rootcanal/hci/evt"
	"github.com/rigado/rootcanal/link"
	"github.com/rigado/rootcanal/parser"
	"github.com/rigado/rootcanal/phy"
)

type reportKey struct {
	addr         rootcanal.AddressWithType
	scanResponse bool
}

// ownAddress picks the local address for an own address type. peer selects
// the resolving list entry used by the resolvable variants.
func (l *LinkLayerController) ownAddress(ownType uint8, peer rootcanal.AddressWithType) (rootcanal.AddressWithType, hci.ErrCommand) {
	public := rootcanal.NewAddressWithType(l.public, rootcanal.AddressTypePublic)
	random := rootcanal.NewAddressWithType(l.random, rootcanal.AddressTypeRandom)

	switch ownType {
	case OwnAddressPublic:
		return public, hci.ErrSuccess

	case OwnAddressRandom:
		if l.random.IsEmpty() {
			l.logger.Info("own address type is random but the random address is not set")
			return random, hci.ErrInvalidParams
		}
		return random, hci.ErrSuccess

	case OwnAddressResolvableOrPub:
		if rpa, ok := l.localRpa(peer); ok {
			return rootcanal.NewAddressWithType(rpa, rootcanal.AddressTypeRandom), hci.ErrSuccess
		}
		return public, hci.ErrSuccess

	case OwnAddressResolvableOrRnd:
		if rpa, ok := l.localRpa(peer); ok {
			return rootcanal.NewAddressWithType(rpa, rootcanal.AddressTypeRandom), hci.ErrSuccess
		}
		if l.random.IsEmpty() {
			l.logger.Info("no resolving list entry and the random address is not set")
			return random, hci.ErrInvalidParams
		}
		return random, hci.ErrSuccess
	}

	return public, hci.ErrInvalidParams
}

// reportedAddress is the address given to the host for a peer: the
// identity when it resolved, the over the air address otherwise.
func reportedAddress(peer, resolved rootcanal.AddressWithType) rootcanal.AddressWithType {
	if resolved.IsEmpty() {
		return peer
	}
	return resolved
}

func (l *LinkLayerController) LeSetRandomAddress(a rootcanal.Address) hci.ErrCommand {
	if l.advertiser.IsEnabled() || l.scanEnable || l.initiator != nil {
		return hci.ErrDisallowed
	}
	l.random = a
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeSetAdvertisingParameters(p cmd.LESetAdvertisingParameters) hci.ErrCommand {
	if l.advertiser.IsEnabled() {
		l.logger.Info("advertising parameters changed while advertising")
		return hci.ErrDisallowed
	}
	if err := ValidateAdvParams(p); err != nil {
		l.logger.Infof("advertising parameters rejected: %v", err)
		return hci.StatusOf(err)
	}
	l.advertiser.setParameters(p)
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeSetAdvertisingData(data []byte) hci.ErrCommand {
	l.advertiser.data = append([]byte(nil), data...)
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeSetScanResponseData(data []byte) hci.ErrCommand {
	l.advertiser.scanResponse = append([]byte(nil), data...)
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeSetAdvertisingEnable(enable bool) hci.ErrCommand {
	if !enable {
		l.advertiser.Disable()
		return hci.ErrSuccess
	}

	a := &l.advertiser
	if a.IsConnectable() && l.connections.Full() {
		l.logger.Info("connectable advertising refused, connection limit reached")
		return hci.ErrConnLimit
	}

	target := rootcanal.NewAddressWithType(rootcanal.Address(a.params.DirectAddress), rootcanal.AddressType(a.params.DirectAddressType))
	own, status := l.ownAddress(a.params.OwnAddressType, target)
	if status != hci.ErrSuccess {
		return status
	}

	if a.isDirected() {
		if rpa, ok := l.peerRpa(target); ok {
			target = rootcanal.NewAddressWithType(rpa, rootcanal.AddressTypeRandom)
		}
	}

	a.enable(own, target, l.now, ms(l.props.DirectedAdvertisingWindow))
	if f, err := parser.Parse(a.data); err == nil && f.LocalName != "" {
		l.logger.Debugf("advertising %q as %v", f.LocalName, own.RedactedString())
	} else {
		l.logger.Debugf("advertising as %v", own.RedactedString())
	}
	return hci.ErrSuccess
}

// leAdvertising runs the advertiser for the current tick.
func (l *LinkLayerController) leAdvertising() {
	if l.advertiser.timedOut(l.now) {
		l.logger.Info("directed advertising timeout")
		l.emit(evt.NewLEConnectionComplete(evt.LEConnectionCompleteParams{
			Status: hci.ErrDirAdvTimeout.Status(),
			Role:   hci.RolePeripheral,
		}))
	}

	if b := l.advertiser.advertisement(l.now); b != nil {
		l.sendLe(b)
	}
}

func (l *LinkLayerController) LeSetScanParameters(p cmd.LESetScanParameters) hci.ErrCommand {
	if l.scanEnable {
		return hci.ErrDisallowed
	}
	if err := ValidateScanParams(p); err != nil {
		l.logger.Infof("scan parameters rejected: %v", err)
		return hci.StatusOf(err)
	}
	l.scanParams = p
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeSetScanEnable(enable, filterDuplicates bool) hci.ErrCommand {
	if !enable {
		l.scanEnable = false
		l.scanAddress = rootcanal.AddressEmpty
		return hci.ErrSuccess
	}

	if l.scanParams.OwnAddressType == OwnAddressRandom && l.random.IsEmpty() {
		return hci.ErrInvalidParams
	}

	if !l.scanEnable {
		l.reported = map[reportKey]bool{}
	}
	l.scanEnable = true
	l.filterDuplicates = filterDuplicates
	return hci.ErrSuccess
}

func (l *LinkLayerController) isOwnAddress(a rootcanal.Address) bool {
	return a == l.public || (!l.random.IsEmpty() && a == l.random)
}

func (l *LinkLayerController) incomingLeAdvertisement(p link.Packet) {
	adv, err := link.AsLeAdvertisement(p)
	if err != nil {
		l.logger.Debugf("bad advertisement: %v", err)
		return
	}
	src := rootcanal.NewAddressWithType(p.Source(), rootcanal.AddressType(adv.AddressType()))

	if l.scanEnable {
		l.scanIncomingAdvertisement(p, adv, src)
	}
	if l.initiator != nil && !l.initiator.sent {
		l.connectIncomingAdvertisement(p, adv, src)
	}
}

// report emits an advertising report, honoring duplicate filtering.
func (l *LinkLayerController) report(evtType uint8, src rootcanal.AddressWithType, data []byte) {
	resolved, _ := l.resolve(src)
	addr := reportedAddress(src, resolved)

	key := reportKey{addr: addr, scanResponse: evtType == link.ScanResponse}
	if l.filterDuplicates && l.reported[key] {
		return
	}
	l.reported[key] = true

	l.emit(evt.NewLEAdvertisingReport(evtType, uint8(addr.Type), addr.Address, data, defaultRssi))
}

func (l *LinkLayerController) scanIncomingAdvertisement(p link.Packet, adv link.LeAdvertisement, src rootcanal.AddressWithType) {
	advType := adv.AdvertisementType()
	if advType == link.AdvDirectInd && !l.isOwnAddress(p.Destination()) {
		return
	}

	resolved, _ := l.resolve(src)
	if l.scanParams.ScanningFilterPolicy == FilterPolicyAcceptAcceptList && !l.listed(src, resolved) {
		return
	}

	l.report(advType, src, adv.Data())

	if l.scanParams.LEScanType != LEScanTypeActive {
		return
	}
	if advType != link.AdvInd && advType != link.AdvScanInd {
		return
	}

	own, status := l.ownAddress(l.scanParams.OwnAddressType, reportedAddress(src, resolved))
	if status != hci.ErrSuccess {
		l.logger.Debugf("no scanning address: %v", status)
		return
	}
	l.scanAddress = own.Address
	l.sendLe(link.LeScanBuilder{Src: own.Address, Dst: src.Address, AddressType: uint8(own.Type)})
}

func (l *LinkLayerController) incomingLeScan(p link.Packet) {
	s, err := link.AsLeScan(p)
	if err != nil {
		l.logger.Debugf("bad scan request: %v", err)
		return
	}

	a := &l.advertiser
	if !a.IsEnabled() || !a.IsScannable() || p.Destination() != a.Address().Address {
		return
	}

	scanner := rootcanal.NewAddressWithType(p.Source(), rootcanal.AddressType(s.AddressType()))
	resolved, _ := l.resolve(scanner)
	if a.scanFiltered() && !l.listed(scanner, resolved) {
		return
	}

	l.sendLe(a.scanResponseTo(p.Source()))
}

func (l *LinkLayerController) incomingLeScanResponse(p link.Packet) {
	r, err := link.AsLeScanResponse(p)
	if err != nil {
		l.logger.Debugf("bad scan response: %v", err)
		return
	}
	if !l.scanEnable || l.scanParams.LEScanType != LEScanTypeActive {
		return
	}

	src := rootcanal.NewAddressWithType(p.Source(), rootcanal.AddressType(r.AddressType()))
	l.report(link.ScanResponse, src, r.Data())
}

func (l *LinkLayerController) LeCreateConnection(p cmd.LECreateConnection) hci.ErrCommand {
	if l.initiator != nil {
		return hci.ErrDisallowed
	}
	if err := ValidateConnParams(p); err != nil {
		l.logger.Infof("connection parameters rejected: %v", err)
		return hci.StatusOf(err)
	}

	peer := rootcanal.NewAddressWithType(rootcanal.Address(p.PeerAddress), rootcanal.AddressType(p.PeerAddressType))
	if _, status := l.ownAddress(p.OwnAddressType, peer); status != hci.ErrSuccess {
		return status
	}
	if l.connections.Full() {
		return hci.ErrConnLimit
	}

	l.initiator = &leInitiator{
		params:     p,
		peer:       peer,
		started:    l.now,
		resumeScan: l.scanEnable,
	}
	l.scanEnable = false
	l.logger.Debugf("initiating connection to %v", peer.RedactedString())
	return hci.ErrSuccess
}

// stopInitiating leaves the initiating state and resumes a suspended scan.
func (l *LinkLayerController) stopInitiating() *leInitiator {
	init := l.initiator
	l.initiator = nil
	l.connections.CancelPendingLeConnection()
	if init != nil && init.resumeScan {
		l.scanEnable = true
	}
	return init
}

func (l *LinkLayerController) leConnectionFailed(status hci.ErrCommand, peer rootcanal.AddressWithType) {
	l.emit(evt.NewLEConnectionComplete(evt.LEConnectionCompleteParams{
		Status:          status.Status(),
		Role:            hci.RoleCentral,
		PeerAddressType: uint8(peer.Type),
		PeerAddress:     peer.Address,
	}))
}

// LeCreateConnectionCancel aborts initiating. Without a connection attempt
// in progress it succeeds and does nothing.
func (l *LinkLayerController) LeCreateConnectionCancel() hci.ErrCommand {
	init := l.stopInitiating()
	if init == nil {
		l.logger.Debug("no connection attempt to cancel")
		return hci.ErrSuccess
	}

	l.schedule(func() {
		l.leConnectionFailed(hci.ErrConnID, init.peer)
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) checkInitiatingTimeout() {
	if l.initiator == nil || l.now-l.initiator.started < ms(l.props.LeConnectionTimeout) {
		return
	}
	init := l.stopInitiating()
	l.logger.Infof("connection to %v not established in time", init.peer.RedactedString())
	l.leConnectionFailed(hci.ErrConnAcceptTimeout, init.peer)
}

// initiatorAccepts reports whether an advertisement from adv is the one the
// initiator waits for.
func (l *LinkLayerController) initiatorAccepts(adv, resolved rootcanal.AddressWithType) bool {
	if l.initiator.params.InitiatorFilterPolicy == FilterPolicyAcceptAcceptList {
		return l.listed(adv, resolved)
	}
	target := l.initiator.peer.Identity()
	if adv == target {
		return true
	}
	return !resolved.IsEmpty() && resolved.Identity() == target
}

func (l *LinkLayerController) connectIncomingAdvertisement(p link.Packet, adv link.LeAdvertisement, src rootcanal.AddressWithType) {
	switch adv.AdvertisementType() {
	case link.AdvInd:
	case link.AdvDirectInd:
		if !l.isOwnAddress(p.Destination()) {
			return
		}
	default:
		return
	}

	resolved, _ := l.resolve(src)
	if !l.initiatorAccepts(src, resolved) {
		return
	}

	params := l.initiator.params
	own, status := l.ownAddress(params.OwnAddressType, reportedAddress(src, resolved))
	if status != hci.ErrSuccess {
		l.logger.Infof("cannot pick an initiator address: %v", status)
		return
	}
	if !l.connections.CreatePendingLeConnection(src, resolved, own) {
		l.logger.Debug("le connection already pending")
		return
	}

	l.initiator.sent = true
	l.initiator.own = own
	l.sendLe(link.LeConnectBuilder{
		Src:                own.Address,
		Dst:                src.Address,
		IntervalMin:        params.ConnIntervalMin,
		IntervalMax:        params.ConnIntervalMax,
		Latency:            params.ConnLatency,
		SupervisionTimeout: params.SupervisionTimeout,
		AddressType:        uint8(own.Type),
	})
}

func (l *LinkLayerController) emitLeConnectionComplete(handle uint16) {
	c := l.connections.Get(handle)
	peer := reportedAddress(c.Address(), c.ResolvedAddress())
	l.emit(evt.NewLEConnectionComplete(evt.LEConnectionCompleteParams{
		Status:             hci.ErrSuccess.Status(),
		ConnectionHandle:   handle,
		Role:               c.Role(),
		PeerAddressType:    uint8(peer.Type),
		PeerAddress:        peer.Address,
		ConnInterval:       c.Interval(),
		ConnLatency:        c.Latency(),
		SupervisionTimeout: c.SupervisionTimeout(),
	}))
}

func (l *LinkLayerController) incomingLeConnect(p link.Packet) {
	req, err := link.AsLeConnect(p)
	if err != nil {
		l.logger.Debugf("bad connect request: %v", err)
		return
	}

	a := &l.advertiser
	if !a.IsEnabled() || !a.IsConnectable() || p.Destination() != a.Address().Address {
		l.logger.Debugf("connect request from %v while not connectable", p.Source().RedactedString())
		return
	}

	peer := rootcanal.NewAddressWithType(p.Source(), rootcanal.AddressType(req.AddressType()))
	resolved, _ := l.resolve(peer)

	resolvedTarget := !resolved.IsEmpty() && resolved.Identity() == a.target.Identity()
	if a.isDirected() && peer.Address != a.target.Address && !resolvedTarget {
		l.logger.Debugf("connect request from %v, directed to another device", peer.RedactedString())
		return
	}
	if a.connectFiltered() && !l.listed(peer, resolved) {
		return
	}
	if l.connections.Full() {
		l.logger.Info("connect request refused, connection limit reached")
		return
	}

	interval := (req.IntervalMin() + req.IntervalMax()) / 2
	own := a.Address()
	handle := l.connections.CreateLeConnection(peer, resolved, own, hci.RolePeripheral,
		interval, req.Latency(), req.SupervisionTimeout(), l.now)
	a.Disable()

	l.logger.Infof("connected to %v as peripheral, handle 0x%04x", peer.RedactedString(), handle)
	l.emitLeConnectionComplete(handle)

	l.sendLe(link.LeConnectCompleteBuilder{
		Src:                own.Address,
		Dst:                peer.Address,
		Interval:           interval,
		Latency:            req.Latency(),
		SupervisionTimeout: req.SupervisionTimeout(),
		AddressType:        uint8(own.Type),
	})
}

func (l *LinkLayerController) incomingLeConnectComplete(p link.Packet) {
	res, err := link.AsLeConnectComplete(p)
	if err != nil {
		l.logger.Debugf("bad connect complete: %v", err)
		return
	}

	if l.initiator == nil || !l.initiator.sent || !l.connections.HasPendingLeConnection(p.Source()) {
		l.logger.Debugf("unexpected connect complete from %v", p.Source().RedactedString())
		return
	}
	pending := l.connections.pendingLeConnection()

	peer := pending.peer
	peer.Type = rootcanal.AddressType(res.AddressType())
	handle := l.connections.CreateLeConnection(peer, pending.resolved, pending.own, hci.RoleCentral,
		res.Interval(), res.Latency(), res.SupervisionTimeout(), l.now)
	init := l.stopInitiating()

	if handle == hci.ReservedHandle {
		l.leConnectionFailed(hci.ErrConnLimit, init.peer)
		return
	}

	l.logger.Infof("connected to %v as central, handle 0x%04x", peer.RedactedString(), handle)
	l.emitLeConnectionComplete(handle)
}

func (l *LinkLayerController) LeConnectionUpdate(p cmd.LEConnectionUpdate) hci.ErrCommand {
	c := l.connections.Get(p.ConnectionHandle)
	if c == nil || c.PhyType() != phy.LowEnergy {
		return hci.ErrConnID
	}
	if err := ValidateConnUpdateParams(p); err != nil {
		return hci.StatusOf(err)
	}

	interval := (p.ConnIntervalMin + p.ConnIntervalMax) / 2
	c.setParameters(interval, p.ConnLatency, p.SupervisionTimeout)
	c.ResetLinkTimer(l.now)

	l.sendLe(link.LeConnectionParameterUpdateBuilder{
		Src:      c.OwnAddress().Address,
		Dst:      c.Address().Address,
		Interval: interval,
		Latency:  p.ConnLatency,
		Timeout:  p.SupervisionTimeout,
	})

	handle := c.Handle()
	l.schedule(func() {
		l.emit(evt.NewLEConnectionUpdateComplete(hci.ErrSuccess.Status(), handle, interval, p.ConnLatency, p.SupervisionTimeout))
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) incomingLeConnectionParameterUpdate(p link.Packet) {
	u, err := link.AsLeConnectionParameterUpdate(p)
	if err != nil {
		l.logger.Debugf("bad parameter update: %v", err)
		return
	}
	c := l.connections.FindLink(p.Destination(), p.Source(), phy.LowEnergy)
	if c == nil {
		return
	}

	if u.Status() == hci.ErrSuccess.Status() {
		c.setParameters(u.Interval(), u.Latency(), u.Timeout())
		c.ResetLinkTimer(l.now)
	}
	l.emit(evt.NewLEConnectionUpdateComplete(u.Status(), c.Handle(), u.Interval(), u.Latency(), u.Timeout()))
}
