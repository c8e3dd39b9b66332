package controller

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
	"github.com/rigado/rootcanal/hci/evt"
	"github.com/rigado/rootcanal/link"
	"github.com/rigado/rootcanal/phy"
)

// DefaultTickPeriod is the simulated time added by every timer tick.
const DefaultTickPeriod = 10 * time.Millisecond

const defaultRssi = -60

type leInitiator struct {
	params     cmd.LECreateConnection
	peer       rootcanal.AddressWithType
	started    time.Duration
	resumeScan bool

	// set once LE_CONNECT went out
	sent bool
	own  rootcanal.AddressWithType
}

// State is a snapshot of the link layer state of one controller.
type State struct {
	Advertising bool
	Scanning    bool
	Initiating  bool
	Inquiring   bool
	Connections []uint16
}

// LinkLayerController runs the link layer state machine of one device. It
// is not safe for concurrent use; the owning topology serializes calls.
type LinkLayerController struct {
	id     uint32
	public rootcanal.Address
	random rootcanal.Address
	props  Properties
	logger rootcanal.Logger
	rnd    *rand.Rand

	sendEvent func(evt.Event)
	sendAcl   func(hci.AclPacket)

	layers map[phy.Type]*phy.Layer

	now        time.Duration
	tickPeriod time.Duration
	tasks      []func()

	eventMask   uint64
	leEventMask uint64

	advertiser LeAdvertiser

	scanEnable       bool
	scanParams       cmd.LESetScanParameters
	scanAddress      rootcanal.Address
	filterDuplicates bool
	reported         map[reportKey]bool

	initiator *leInitiator

	pageScan    bool
	inquiryScan bool
	inquiry     *inquiry

	connections *AclConnectionHandler
	ltkPending  map[uint16]bool

	acceptList        []rootcanal.AddressWithType
	resolvingList     []resolvingListEntry
	resolutionEnabled bool
}

func NewLinkLayerController(id uint32, address rootcanal.Address, props Properties) *LinkLayerController {
	l := &LinkLayerController{
		id:         id,
		public:     address,
		props:      props,
		logger:     rootcanal.DeviceLogger(id, address),
		rnd:        rand.New(rand.NewSource(int64(id) + 1)),
		sendEvent:  func(evt.Event) {},
		sendAcl:    func(hci.AclPacket) {},
		layers:     map[phy.Type]*phy.Layer{},
		tickPeriod: DefaultTickPeriod,
	}
	l.Reset()
	return l
}

// Reset returns the controller to its power-on state. Links are dropped
// without notifying the peers, which will time out.
func (l *LinkLayerController) Reset() {
	l.random = rootcanal.AddressEmpty
	l.tasks = nil
	l.eventMask = evt.DefaultEventMask
	l.leEventMask = evt.DefaultLEEventMask
	l.advertiser = newLeAdvertiser()
	l.scanEnable = false
	l.scanParams = defaultScanParams()
	l.filterDuplicates = false
	l.scanAddress = rootcanal.AddressEmpty
	l.reported = map[reportKey]bool{}
	l.initiator = nil
	l.pageScan = false
	l.inquiryScan = false
	l.inquiry = nil
	l.connections = NewAclConnectionHandler(l.props.MaxAclConnections)
	l.ltkPending = map[uint16]bool{}
	l.acceptList = nil
	l.resolvingList = nil
	l.resolutionEnabled = false
}

func (l *LinkLayerController) ID() uint32                 { return l.id }
func (l *LinkLayerController) Address() rootcanal.Address { return l.public }
func (l *LinkLayerController) Properties() Properties     { return l.props }
func (l *LinkLayerController) Now() time.Duration         { return l.now }

func (l *LinkLayerController) Connections() *AclConnectionHandler { return l.connections }

func (l *LinkLayerController) SetAddress(a rootcanal.Address) {
	l.public = a
	l.logger = rootcanal.DeviceLogger(l.id, a)
}

func (l *LinkLayerController) SetLogger(lg rootcanal.Logger) { l.logger = lg }

func (l *LinkLayerController) SetProperties(p Properties) {
	l.props = p
	l.connections.SetLimit(p.MaxAclConnections)
}

func (l *LinkLayerController) SetTickPeriod(d time.Duration) { l.tickPeriod = d }

func (l *LinkLayerController) RegisterEventChannel(fn func(evt.Event)) { l.sendEvent = fn }

func (l *LinkLayerController) RegisterAclChannel(fn func(hci.AclPacket)) { l.sendAcl = fn }

func (l *LinkLayerController) State() State {
	return State{
		Advertising: l.advertiser.IsEnabled(),
		Scanning:    l.scanEnable,
		Initiating:  l.initiator != nil,
		Inquiring:   l.inquiry != nil,
		Connections: l.connections.Handles(),
	}
}

// AttachPhy connects the controller to a medium. Only one layer per medium
// type is allowed.
func (l *LinkLayerController) AttachPhy(f *phy.Factory) (*phy.Layer, error) {
	if _, ok := l.layers[f.Type()]; ok {
		return nil, errors.Errorf("device %d already attached to a %v phy", l.id, f.Type())
	}
	layer := f.GetPhyLayer(l.ReceiveLinkLayerPacket, l.id)
	t := f.Type()
	layer.OnUnregister(func() {
		if l.layers[t] == layer {
			delete(l.layers, t)
		}
	})
	l.layers[t] = layer
	return layer, nil
}

// DetachPhy leaves the medium of type t, if attached.
func (l *LinkLayerController) DetachPhy(t phy.Type) {
	if layer, ok := l.layers[t]; ok {
		layer.Unregister()
		delete(l.layers, t)
	}
}

func (l *LinkLayerController) Layer(t phy.Type) *phy.Layer { return l.layers[t] }

func (l *LinkLayerController) send(t phy.Type, b link.Builder) {
	layer := l.layers[t]
	if layer == nil {
		l.logger.Debugf("no %v phy attached, dropping %T", t, b)
		return
	}
	layer.Send(b)
}

func (l *LinkLayerController) sendLe(b link.Builder)      { l.send(phy.LowEnergy, b) }
func (l *LinkLayerController) sendClassic(b link.Builder) { l.send(phy.BrEdr, b) }

// schedule runs fn after the response to the current command went out.
func (l *LinkLayerController) schedule(fn func()) {
	l.tasks = append(l.tasks, fn)
}

// RunPendingTasks drains the work scheduled by the last command.
func (l *LinkLayerController) RunPendingTasks() {
	for len(l.tasks) > 0 {
		fn := l.tasks[0]
		l.tasks = l.tasks[1:]
		fn()
	}
}

func (l *LinkLayerController) isEventUnmasked(code uint8) bool {
	return code > 0 && code <= 64 && l.eventMask&(1<<(code-1)) != 0
}

func (l *LinkLayerController) isLeEventUnmasked(sub uint8) bool {
	return l.isEventUnmasked(evt.LEMetaCode) && sub > 0 && sub <= 64 && l.leEventMask&(1<<(sub-1)) != 0
}

// emit forwards e to the host unless it is masked.
func (l *LinkLayerController) emit(e evt.Event) {
	code := e.Code()
	switch {
	case code == evt.CommandCompleteCode || code == evt.CommandStatusCode:
	case code == evt.LEMetaCode:
		if !l.isLeEventUnmasked(e.SubeventCode()) {
			l.logger.Debugf("le event 0x%02x masked", e.SubeventCode())
			return
		}
	case !l.isEventUnmasked(code):
		l.logger.Debugf("event 0x%02x masked", code)
		return
	}
	l.sendEvent(e)
}

// TimerTick advances simulated time by one tick period and runs every
// time based check.
func (l *LinkLayerController) TimerTick() {
	l.now += l.tickPeriod

	l.leAdvertising()
	l.inquiryTick()
	l.checkInitiatingTimeout()
	l.checkPageTimeouts()
	l.checkExpiringConnections()

	l.RunPendingTasks()
}

func (l *LinkLayerController) checkExpiringConnections() {
	for _, handle := range l.connections.Handles() {
		c := l.connections.Get(handle)
		if c == nil {
			continue
		}

		if c.HasLinkExpired(l.now) {
			l.logger.Infof("connection 0x%04x to %v timed out", handle, c.Address().RedactedString())
			l.disconnectLocal(handle, hci.ErrConnTimeout.Status())
			continue
		}

		if l.props.LinkKeepAlive && !c.pingSent && c.IsLinkNearExpiring(l.now) {
			c.pingSent = true
			l.send(c.PhyType(), link.PingBuilder{Src: c.OwnAddress().Address, Dst: c.Address().Address})
		}
	}
}

// disconnectLocal removes a link without telling the peer.
func (l *LinkLayerController) disconnectLocal(handle uint16, reason uint8) {
	if !l.connections.Disconnect(handle) {
		return
	}
	delete(l.ltkPending, handle)
	l.emit(evt.NewDisconnectionComplete(hci.ErrSuccess.Status(), handle, reason))
}

func (l *LinkLayerController) addressMatches(src, dst rootcanal.Address, t phy.Type) bool {
	matches := dst == rootcanal.AddressEmpty || dst == l.public
	if !l.random.IsEmpty() && dst == l.random {
		matches = true
	}
	if l.initiator != nil && l.initiator.sent && dst == l.initiator.own.Address {
		matches = true
	}
	if l.scanEnable && !l.scanAddress.IsEmpty() && dst == l.scanAddress {
		matches = true
	}
	if l.advertiser.IsEnabled() && l.advertiser.Address().Address == dst {
		matches = true
	}
	if c := l.connections.FindLink(dst, src, t); c != nil {
		matches = true
		c.ResetLinkTimer(l.now)
	}
	return matches
}

// ReceiveLinkLayerPacket handles a packet delivered by an attached phy.
func (l *LinkLayerController) ReceiveLinkLayerPacket(p link.Packet, t phy.Type) {
	if err := p.Validate(); err != nil {
		l.logger.Debugf("dropping malformed %v packet: %v", t, err)
		return
	}

	src, dst := p.Source(), p.Destination()
	if !l.addressMatches(src, dst, t) {
		l.logger.Debugf("dropping %v not addressed to me %v->%v", p.Type(), src.RedactedString(), dst.RedactedString())
		return
	}

	switch p.Type() {
	case link.TypeAcl:
		l.incomingAcl(p, t)
	case link.TypeDisconnect:
		l.incomingDisconnect(p, t)
	case link.TypeLeAdvertisement:
		l.incomingLeAdvertisement(p)
	case link.TypeLeScan:
		l.incomingLeScan(p)
	case link.TypeLeScanResponse:
		l.incomingLeScanResponse(p)
	case link.TypeLeConnect:
		l.incomingLeConnect(p)
	case link.TypeLeConnectComplete:
		l.incomingLeConnectComplete(p)
	case link.TypeLeConnectionParameterUpdate:
		l.incomingLeConnectionParameterUpdate(p)
	case link.TypeLeEncryptConnection:
		l.incomingLeEncryptConnection(p)
	case link.TypeLeEncryptConnectionResponse:
		l.incomingLeEncryptConnectionResponse(p)
	case link.TypeInquiry:
		l.incomingInquiry(p)
	case link.TypeInquiryResponse:
		l.incomingInquiryResponse(p)
	case link.TypePage:
		l.incomingPage(p)
	case link.TypePageResponse:
		l.incomingPageResponse(p)
	case link.TypePageReject:
		l.incomingPageReject(p)
	case link.TypePingRequest:
		l.send(t, link.PingBuilder{Src: dst, Dst: src, Response: true})
	case link.TypePingResponse:
	default:
		l.logger.Debugf("ignoring %v", p.Type())
	}

	l.RunPendingTasks()
}

// Disconnect tears down a link on behalf of the host. The peer is told with
// reason, the local host sees the link terminated by the local host.
func (l *LinkLayerController) Disconnect(handle uint16, reason uint8) hci.ErrCommand {
	c := l.connections.Get(handle)
	if c == nil {
		return hci.ErrConnID
	}
	// [Vol 4, Part E, 7.1.6]
	switch reason {
	case 0x05, 0x13, 0x14, 0x15, 0x1a, 0x29, 0x3b:
	default:
		return hci.ErrInvalidParams
	}

	l.send(c.PhyType(), link.DisconnectBuilder{Src: c.OwnAddress().Address, Dst: c.Address().Address, Reason: reason})
	l.connections.Disconnect(handle)
	delete(l.ltkPending, handle)
	l.schedule(func() {
		l.emit(evt.NewDisconnectionComplete(hci.ErrSuccess.Status(), handle, hci.ErrLocalHost.Status()))
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) incomingDisconnect(p link.Packet, t phy.Type) {
	d, err := link.AsDisconnect(p)
	if err != nil {
		l.logger.Debugf("bad disconnect: %v", err)
		return
	}
	c := l.connections.FindLink(p.Destination(), p.Source(), t)
	if c == nil {
		l.logger.Debugf("disconnect from unknown peer %v", p.Source().RedactedString())
		return
	}
	l.logger.Infof("connection 0x%04x disconnected by peer, reason 0x%02x", c.Handle(), d.Reason())
	l.disconnectLocal(c.Handle(), d.Reason())
}

// HandleAcl sends host data to the peer of the addressed link.
func (l *LinkLayerController) HandleAcl(a hci.AclPacket) hci.ErrCommand {
	c := l.connections.Get(a.Handle())
	if c == nil {
		l.logger.Debugf("acl for unknown handle 0x%04x", a.Handle())
		return hci.ErrConnID
	}

	l.send(c.PhyType(), link.AclBuilder{
		Src:  c.OwnAddress().Address,
		Dst:  c.Address().Address,
		Pbf:  a.Pbf(),
		Data: a.Data(),
	})
	handle := c.Handle()
	l.schedule(func() {
		l.emit(evt.NewNumberOfCompletedPackets(handle, 1))
	})
	return hci.ErrSuccess
}

func (l *LinkLayerController) incomingAcl(p link.Packet, t phy.Type) {
	a, err := link.AsAcl(p)
	if err != nil {
		l.logger.Debugf("bad acl: %v", err)
		return
	}
	c := l.connections.FindLink(p.Destination(), p.Source(), t)
	if c == nil {
		l.logger.Debugf("acl from unconnected peer %v", p.Source().RedactedString())
		return
	}

	pbf := a.Pbf()
	if pbf == hci.PbfHostToControllerStart {
		pbf = hci.PbfControllerToHostStart
	}
	l.sendAcl(hci.NewAclPacket(c.Handle(), pbf, 0, a.Data()))
}
