package controller

import (
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/evt"
	"github.com/rigado/rootcanal/link"
	"github.com/rigado/rootcanal/phy"
	"github.com/rigado/rootcanal/sliceops"
)

func identityType(t rootcanal.AddressType) rootcanal.AddressType {
	if t == rootcanal.AddressTypeRandom {
		return rootcanal.AddressTypeRandomIdentity
	}
	return rootcanal.AddressTypePublicIdentity
}

// resolve maps a resolvable private address to the identity of a resolving
// list entry. The identity carries an identity address type.
func (l *LinkLayerController) resolve(a rootcanal.AddressWithType) (rootcanal.AddressWithType, bool) {
	if !l.resolutionEnabled || !a.IsRpa() {
		return rootcanal.AddressWithType{}, false
	}
	for _, e := range l.resolvingList {
		if sliceops.IsZero(e.peerIrk[:]) {
			continue
		}
		if resolveRpa(a.Address, e.peerIrk) {
			return rootcanal.NewAddressWithType(e.peer.Address, identityType(e.peer.Type)), true
		}
	}
	return rootcanal.AddressWithType{}, false
}

func (l *LinkLayerController) resolvingEntry(peer rootcanal.AddressWithType) *resolvingListEntry {
	id := peer.Identity()
	for i := range l.resolvingList {
		if l.resolvingList[i].peer == id {
			return &l.resolvingList[i]
		}
	}
	return nil
}

// localRpa generates our resolvable address for talking to peer.
func (l *LinkLayerController) localRpa(peer rootcanal.AddressWithType) (rootcanal.Address, bool) {
	if !l.resolutionEnabled {
		return rootcanal.AddressEmpty, false
	}
	e := l.resolvingEntry(peer)
	if e == nil || sliceops.IsZero(e.localIrk[:]) {
		return rootcanal.AddressEmpty, false
	}
	return generateRpa(e.localIrk, l.rnd), true
}

// peerRpa generates a resolvable address the peer will recognize as its own.
func (l *LinkLayerController) peerRpa(peer rootcanal.AddressWithType) (rootcanal.Address, bool) {
	if !l.resolutionEnabled {
		return rootcanal.AddressEmpty, false
	}
	e := l.resolvingEntry(peer)
	if e == nil || sliceops.IsZero(e.peerIrk[:]) {
		return rootcanal.AddressEmpty, false
	}
	return generateRpa(e.peerIrk, l.rnd), true
}

func (l *LinkLayerController) inAcceptList(a rootcanal.AddressWithType) bool {
	for _, e := range l.acceptList {
		if e == a {
			return true
		}
		if e.Type == rootcanal.AddressTypeAnonymous && a.Type == rootcanal.AddressTypeAnonymous {
			return true
		}
	}
	return false
}

// listed reports whether a peer passes the filter accept list, either by
// its over the air address or by its resolved identity.
func (l *LinkLayerController) listed(a, resolved rootcanal.AddressWithType) bool {
	if l.inAcceptList(a) {
		return true
	}
	return !resolved.IsEmpty() && l.inAcceptList(resolved.Identity())
}

func (l *LinkLayerController) acceptListInUse() bool {
	return (l.advertiser.IsEnabled() && l.advertiser.params.AdvertisingFilterPolicy != 0) ||
		(l.scanEnable && l.scanParams.ScanningFilterPolicy == FilterPolicyAcceptAcceptList) ||
		(l.initiator != nil && l.initiator.params.InitiatorFilterPolicy == FilterPolicyAcceptAcceptList)
}

func (l *LinkLayerController) LeReadFilterAcceptListSize() uint8 {
	return uint8(l.props.FilterAcceptListSize)
}

func (l *LinkLayerController) LeClearFilterAcceptList() hci.ErrCommand {
	if l.acceptListInUse() {
		return hci.ErrDisallowed
	}
	l.acceptList = nil
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeAddDeviceToFilterAcceptList(t uint8, a rootcanal.Address) hci.ErrCommand {
	at := rootcanal.AddressType(t)
	if at != rootcanal.AddressTypePublic && at != rootcanal.AddressTypeRandom && at != rootcanal.AddressTypeAnonymous {
		return hci.ErrInvalidParams
	}
	if l.acceptListInUse() {
		return hci.ErrDisallowed
	}

	e := rootcanal.NewAddressWithType(a, at)
	for _, x := range l.acceptList {
		if x == e {
			return hci.ErrSuccess
		}
	}
	if len(l.acceptList) >= l.props.FilterAcceptListSize {
		return hci.ErrMemoryCapacity
	}
	l.acceptList = append(l.acceptList, e)
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeRemoveDeviceFromFilterAcceptList(t uint8, a rootcanal.Address) hci.ErrCommand {
	if l.acceptListInUse() {
		return hci.ErrDisallowed
	}

	e := rootcanal.NewAddressWithType(a, rootcanal.AddressType(t))
	for i, x := range l.acceptList {
		if x == e {
			l.acceptList = append(l.acceptList[:i:i], l.acceptList[i+1:]...)
			break
		}
	}
	return hci.ErrSuccess
}

func (l *LinkLayerController) resolvingListInUse() bool {
	return l.resolutionEnabled && (l.advertiser.IsEnabled() || l.scanEnable || l.initiator != nil)
}

func (l *LinkLayerController) LeReadResolvingListSize() uint8 {
	return uint8(l.props.ResolvingListSize)
}

func (l *LinkLayerController) LeAddDeviceToResolvingList(t uint8, a rootcanal.Address, peerIrk, localIrk [16]byte) hci.ErrCommand {
	if t > uint8(rootcanal.AddressTypeRandom) {
		return hci.ErrInvalidParams
	}
	if l.resolvingListInUse() {
		return hci.ErrDisallowed
	}

	peer := rootcanal.NewAddressWithType(a, rootcanal.AddressType(t))
	if l.resolvingEntry(peer) != nil {
		return hci.ErrInvalidParams
	}
	if len(l.resolvingList) >= l.props.ResolvingListSize {
		return hci.ErrMemoryCapacity
	}

	l.resolvingList = append(l.resolvingList, resolvingListEntry{peer: peer, peerIrk: peerIrk, localIrk: localIrk})
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeRemoveDeviceFromResolvingList(t uint8, a rootcanal.Address) hci.ErrCommand {
	if l.resolvingListInUse() {
		return hci.ErrDisallowed
	}

	peer := rootcanal.NewAddressWithType(a, rootcanal.AddressType(t))
	for i, e := range l.resolvingList {
		if e.peer == peer {
			l.resolvingList = append(l.resolvingList[:i:i], l.resolvingList[i+1:]...)
			return hci.ErrSuccess
		}
	}
	return hci.ErrConnID
}

func (l *LinkLayerController) LeClearResolvingList() hci.ErrCommand {
	if l.resolvingListInUse() {
		return hci.ErrDisallowed
	}
	l.resolvingList = nil
	return hci.ErrSuccess
}

func (l *LinkLayerController) LeSetAddressResolutionEnable(enable uint8) hci.ErrCommand {
	if enable > 1 {
		return hci.ErrInvalidParams
	}
	if l.advertiser.IsEnabled() || l.scanEnable || l.initiator != nil {
		return hci.ErrDisallowed
	}
	l.resolutionEnabled = enable == 1
	return hci.ErrSuccess
}

// LeStartEncryption asks the peripheral to encrypt the link with ltk.
func (l *LinkLayerController) LeStartEncryption(handle uint16, rand uint64, ediv uint16, ltk [16]byte) hci.ErrCommand {
	c := l.connections.Get(handle)
	if c == nil {
		return hci.ErrConnID
	}
	if c.PhyType() != phy.LowEnergy || c.Role() != hci.RoleCentral {
		return hci.ErrDisallowed
	}

	l.schedule(func() {
		l.sendLe(link.LeEncryptBuilder{
			Src:  c.OwnAddress().Address,
			Dst:  c.Address().Address,
			Rand: rand,
			Ediv: ediv,
			Ltk:  ltk,
		})
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) incomingLeEncryptConnection(p link.Packet) {
	req, err := link.AsLeEncryptConnection(p)
	if err != nil {
		l.logger.Debugf("bad encrypt request: %v", err)
		return
	}
	c := l.connections.FindLink(p.Destination(), p.Source(), phy.LowEnergy)
	if c == nil {
		l.logger.Debugf("encrypt request from unconnected peer %v", p.Source().RedactedString())
		return
	}

	l.ltkPending[c.Handle()] = true
	l.emit(evt.NewLELongTermKeyRequest(c.Handle(), req.Rand(), req.Ediv()))
}

func (l *LinkLayerController) LeLongTermKeyRequestReply(handle uint16, ltk [16]byte) hci.ErrCommand {
	c := l.connections.Get(handle)
	if c == nil {
		return hci.ErrConnID
	}
	if !l.ltkPending[handle] {
		return hci.ErrDisallowed
	}
	delete(l.ltkPending, handle)

	refresh := c.IsEncrypted()
	c.Encrypt()
	l.schedule(func() {
		if refresh {
			l.emit(evt.NewEncryptionKeyRefreshComplete(hci.ErrSuccess.Status(), handle))
		} else {
			l.emit(evt.NewEncryptionChange(hci.ErrSuccess.Status(), handle, evt.EncryptionEnabledOn))
		}
		l.sendLe(link.LeEncryptBuilder{
			Src:      c.OwnAddress().Address,
			Dst:      c.Address().Address,
			Response: true,
			Ltk:      ltk,
		})
	})
	return hci.ErrSuccess
}

// LeLongTermKeyRequestNegativeReply answers the peer with an empty key.
func (l *LinkLayerController) LeLongTermKeyRequestNegativeReply(handle uint16) hci.ErrCommand {
	c := l.connections.Get(handle)
	if c == nil {
		return hci.ErrConnID
	}
	if !l.ltkPending[handle] {
		return hci.ErrDisallowed
	}
	delete(l.ltkPending, handle)

	l.schedule(func() {
		l.sendLe(link.LeEncryptBuilder{
			Src:      c.OwnAddress().Address,
			Dst:      c.Address().Address,
			Response: true,
		})
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) incomingLeEncryptConnectionResponse(p link.Packet) {
	res, err := link.AsLeEncryptConnectionResponse(p)
	if err != nil {
		l.logger.Debugf("bad encrypt response: %v", err)
		return
	}
	c := l.connections.FindLink(p.Destination(), p.Source(), phy.LowEnergy)
	if c == nil {
		return
	}

	ltk := res.Ltk()
	status := hci.ErrSuccess
	if sliceops.IsZero(ltk[:]) {
		status = hci.ErrAuth
	}

	if c.IsEncrypted() {
		l.emit(evt.NewEncryptionKeyRefreshComplete(status.Status(), c.Handle()))
		return
	}

	enabled := evt.EncryptionEnabledOff
	if status == hci.ErrSuccess {
		c.Encrypt()
		enabled = evt.EncryptionEnabledOn
	}
	l.emit(evt.NewEncryptionChange(status.Status(), c.Handle(), enabled))
}
