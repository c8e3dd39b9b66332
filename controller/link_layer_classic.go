package controller

import (
	"time"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/evt"
	"github.com/rigado/rootcanal/link"
	"github.com/rigado/rootcanal/phy"
)

func (l *LinkLayerController) WriteScanEnable(v uint8) hci.ErrCommand {
	if v > 0x03 {
		return hci.ErrInvalidParams
	}
	l.inquiryScan = v&0x01 != 0
	l.pageScan = v&0x02 != 0
	return hci.ErrSuccess
}

const (
	// inquiryLengthUnit is the unit of the Inquiry_Length parameter.
	inquiryLengthUnit = 1280 * time.Millisecond
	// inquiryInterval spaces the INQUIRY packets of one inquiry.
	inquiryInterval = 2 * time.Second

	maxInquiryLength = 0x30

	// page scan repetition mode R1
	pageScanRepetitionMode = 0x01
)

type inquiry struct {
	end          time.Duration
	lastSent     time.Duration
	sent         bool
	maxResponses int
	responses    int
}

// Inquiry starts discovering BR/EDR devices for length * 1.28s. At most
// maxResponses results are reported, 0 means unlimited; the inquiry
// completes early once they are in.
func (l *LinkLayerController) Inquiry(lap [3]byte, length, maxResponses uint8) hci.ErrCommand {
	if length < 1 || length > maxInquiryLength {
		return hci.ErrInvalidParams
	}
	if l.inquiry != nil {
		return hci.ErrDisallowed
	}

	l.inquiry = &inquiry{
		end:          l.now + time.Duration(length)*inquiryLengthUnit,
		maxResponses: int(maxResponses),
	}
	l.logger.Debugf("inquiry lap %02x%02x%02x started for %v", lap[2], lap[1], lap[0], time.Duration(length)*inquiryLengthUnit)
	return hci.ErrSuccess
}

// InquiryCancel stops the inquiry in progress. No Inquiry Complete event
// follows.
func (l *LinkLayerController) InquiryCancel() hci.ErrCommand {
	if l.inquiry == nil {
		return hci.ErrDisallowed
	}
	l.inquiry = nil
	return hci.ErrSuccess
}

func (l *LinkLayerController) inquiryTick() {
	q := l.inquiry
	if q == nil {
		return
	}
	if l.now >= q.end {
		l.inquiry = nil
		l.emit(evt.NewInquiryComplete(hci.ErrSuccess.Status()))
		return
	}
	if q.sent && l.now-q.lastSent < inquiryInterval {
		return
	}
	q.sent, q.lastSent = true, l.now
	l.sendClassic(link.InquiryBuilder{Src: l.public, Dst: rootcanal.AddressEmpty, InquiryType: link.InquiryStandard})
}

func (l *LinkLayerController) incomingInquiry(p link.Packet) {
	q, err := link.AsInquiry(p)
	if err != nil {
		l.logger.Debugf("bad inquiry: %v", err)
		return
	}
	if !l.inquiryScan {
		return
	}
	if q.InquiryType() != link.InquiryStandard {
		l.logger.Debugf("inquiry type 0x%02x not supported", q.InquiryType())
		return
	}

	l.sendClassic(link.InquiryResponseBuilder{
		Src:                    l.public,
		Dst:                    p.Source(),
		PageScanRepetitionMode: pageScanRepetitionMode,
		ClassOfDevice:          l.props.classOfDevice(),
	})
}

func (l *LinkLayerController) incomingInquiryResponse(p link.Packet) {
	res, err := link.AsInquiryResponse(p)
	if err != nil {
		l.logger.Debugf("bad inquiry response: %v", err)
		return
	}
	q := l.inquiry
	if q == nil {
		return
	}
	q.responses++
	l.emit(evt.NewInquiryResult(p.Source(), res.PageScanRepetitionMode(), res.ClassOfDevice(), res.ClockOffset()))

	if q.maxResponses > 0 && q.responses >= q.maxResponses {
		l.inquiry = nil
		l.emit(evt.NewInquiryComplete(hci.ErrSuccess.Status()))
	}
}

// CreateConnection pages a BR/EDR device. Only one page may be in progress.
func (l *LinkLayerController) CreateConnection(a rootcanal.Address, allowRoleSwitch bool) hci.ErrCommand {
	if l.connections.Find(a, phy.BrEdr) != nil {
		return hci.ErrACLConnExists
	}
	if l.connections.HasOutgoingPage() || l.connections.HasPendingConnection(a) {
		return hci.ErrControllerBusy
	}
	if l.connections.Full() {
		return hci.ErrConnLimit
	}

	l.connections.CreatePendingConnection(a, true, l.now)
	l.schedule(func() {
		l.sendClassic(link.PageBuilder{
			Src:             l.public,
			Dst:             a,
			ClassOfDevice:   l.props.classOfDevice(),
			AllowRoleSwitch: allowRoleSwitch,
		})
	})
	return hci.ErrSuccess
}

// CreateConnectionCancel stops a page in progress. Cancelling a page that
// is no longer pending succeeds without further events.
func (l *LinkLayerController) CreateConnectionCancel(a rootcanal.Address) hci.ErrCommand {
	if !l.connections.HasPendingOutgoing(a) {
		if l.connections.Find(a, phy.BrEdr) != nil {
			return hci.ErrACLConnExists
		}
		return hci.ErrSuccess
	}

	l.connections.CancelPendingConnection(a)
	l.schedule(func() {
		l.emit(evt.NewConnectionComplete(hci.ErrConnID.Status(), 0, a, hci.LinkTypeACL, evt.EncryptionEnabledOff))
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) checkPageTimeouts() {
	outgoing, incoming := l.connections.ExpiredPages(l.now, ms(l.props.PageTimeout))
	for _, a := range outgoing {
		l.logger.Infof("page to %v timed out", a.RedactedString())
		l.emit(evt.NewConnectionComplete(hci.ErrPageTimeout.Status(), 0, a, hci.LinkTypeACL, evt.EncryptionEnabledOff))
	}
	// the paging side gives up after the same timeout
	for _, a := range incoming {
		l.logger.Infof("connection request from %v not answered", a.RedactedString())
		l.emit(evt.NewConnectionComplete(hci.ErrConnAcceptTimeout.Status(), 0, a, hci.LinkTypeACL, evt.EncryptionEnabledOff))
	}
}

func (l *LinkLayerController) incomingPage(p link.Packet) {
	page, err := link.AsPage(p)
	if err != nil {
		l.logger.Debugf("bad page: %v", err)
		return
	}
	src := p.Source()

	if !l.pageScan {
		l.logger.Debugf("page from %v ignored, page scan disabled", src.RedactedString())
		return
	}
	if l.connections.Find(src, phy.BrEdr) != nil {
		return
	}
	if !l.connections.CreatePendingConnection(src, false, l.now) {
		l.logger.Debugf("page from %v already pending", src.RedactedString())
		return
	}

	l.emit(evt.NewConnectionRequest(src, page.ClassOfDevice(), hci.LinkTypeACL))
}

func (l *LinkLayerController) emitConnectionComplete(handle uint16) {
	c := l.connections.Get(handle)
	l.emit(evt.NewConnectionComplete(hci.ErrSuccess.Status(), handle, c.Address().Address, hci.LinkTypeACL, evt.EncryptionEnabledOff))
}

// AcceptConnectionRequest completes a page from a. Role 0x00 asks to
// become central, 0x01 to stay peripheral.
func (l *LinkLayerController) AcceptConnectionRequest(a rootcanal.Address, role uint8) hci.ErrCommand {
	if !l.connections.HasPendingIncoming(a) {
		return hci.ErrConnID
	}
	if role > hci.RolePeripheral {
		return hci.ErrInvalidParams
	}
	if l.connections.Full() {
		return hci.ErrConnLimit
	}

	l.schedule(func() {
		l.sendClassic(link.PageResponseBuilder{Src: l.public, Dst: a, TryRoleSwitch: role == hci.RoleCentral})

		handle := l.connections.CreateConnection(a, l.public, role, ms(l.props.LinkSupervisionTimeout), l.now)
		if handle == hci.ReservedHandle {
			return
		}
		l.logger.Infof("connected to %v, handle 0x%04x", a.RedactedString(), handle)
		l.emitConnectionComplete(handle)
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) RejectConnectionRequest(a rootcanal.Address, reason uint8) hci.ErrCommand {
	if !l.connections.HasPendingIncoming(a) {
		return hci.ErrConnID
	}
	switch hci.ErrCommand(reason) {
	case hci.ErrLimitedResource, hci.ErrSecurity, hci.ErrBDADDR:
	default:
		return hci.ErrInvalidParams
	}

	l.connections.CancelPendingConnection(a)
	l.schedule(func() {
		l.sendClassic(link.PageRejectBuilder{Src: l.public, Dst: a, Reason: reason})
		l.emit(evt.NewConnectionComplete(reason, hci.HandleMax, a, hci.LinkTypeACL, evt.EncryptionEnabledOff))
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) incomingPageResponse(p link.Packet) {
	res, err := link.AsPageResponse(p)
	if err != nil {
		l.logger.Debugf("bad page response: %v", err)
		return
	}
	src := p.Source()
	if !l.connections.HasPendingOutgoing(src) {
		l.logger.Debugf("unexpected page response from %v", src.RedactedString())
		return
	}

	role := uint8(hci.RoleCentral)
	if res.TryRoleSwitch() {
		role = hci.RolePeripheral
	}
	handle := l.connections.CreateConnection(src, l.public, role, ms(l.props.LinkSupervisionTimeout), l.now)
	if handle == hci.ReservedHandle {
		l.emit(evt.NewConnectionComplete(hci.ErrConnLimit.Status(), 0, src, hci.LinkTypeACL, evt.EncryptionEnabledOff))
		return
	}
	l.logger.Infof("connected to %v, handle 0x%04x", src.RedactedString(), handle)
	l.emitConnectionComplete(handle)
}

func (l *LinkLayerController) incomingPageReject(p link.Packet) {
	rej, err := link.AsPageReject(p)
	if err != nil {
		l.logger.Debugf("bad page reject: %v", err)
		return
	}
	src := p.Source()
	if !l.connections.HasPendingOutgoing(src) {
		return
	}

	l.connections.CancelPendingConnection(src)
	l.emit(evt.NewConnectionComplete(rej.Reason(), hci.HandleMax, src, hci.LinkTypeACL, evt.EncryptionEnabledOff))
}
