package phy

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/link"
)

// MaxSendDepth bounds nested broadcasts on one factory. A receive handler
// that keeps answering its own traffic trips it.
const MaxSendDepth = 64

// ReceiveFunc is called for every packet broadcast by another layer.
type ReceiveFunc func(p link.Packet, t Type)

// Factory is a shared medium. Every packet sent by one attached layer is
// delivered to all other attached layers, in registration order.
type Factory struct {
	typ Type

	mu     sync.Mutex
	layers []*Layer
	nextID uint32

	depth int32

	logger rootcanal.Logger
}

func NewFactory(t Type) *Factory {
	return &Factory{
		typ:    t,
		logger: rootcanal.GetLogger().ChildLogger(map[string]interface{}{"phy": t.String()}),
	}
}

func (f *Factory) Type() Type { return f.typ }

// GetPhyLayer registers a new layer owned by deviceID.
func (f *Factory) GetPhyLayer(receive ReceiveFunc, deviceID uint32) *Layer {
	f.mu.Lock()
	defer f.mu.Unlock()

	l := &Layer{
		factory:  f,
		id:       f.nextID,
		deviceID: deviceID,
		receive:  receive,
	}
	f.nextID++
	f.layers = append(f.layers, l)

	f.logger.Debugf("layer %d registered for device %d", l.id, deviceID)
	return l
}

// UnregisterPhyLayer removes the layer if present. The layer's unregister
// hook runs after the registry lock is released and may unregister others.
func (f *Factory) UnregisterPhyLayer(id uint32) {
	f.mu.Lock()
	var removed *Layer
	for i, l := range f.layers {
		if l.id == id {
			removed = l
			f.layers = append(f.layers[:i:i], f.layers[i+1:]...)
			break
		}
	}
	f.mu.Unlock()

	if removed == nil {
		return
	}

	f.logger.Debugf("layer %d unregistered", id)
	if removed.onUnregister != nil {
		removed.onUnregister()
	}
}

// UnregisterAllPhyLayers drains the registry one layer at a time, rereading
// it after every removal.
func (f *Factory) UnregisterAllPhyLayers() {
	for {
		f.mu.Lock()
		if len(f.layers) == 0 {
			f.mu.Unlock()
			return
		}
		id := f.layers[0].id
		f.mu.Unlock()

		f.UnregisterPhyLayer(id)
	}
}

// Len returns the number of attached layers.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.layers)
}

func (f *Factory) snapshot() []*Layer {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*Layer, len(f.layers))
	copy(out, f.layers)
	return out
}

func (f *Factory) registered(id uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, l := range f.layers {
		if l.id == id {
			return true
		}
	}
	return false
}

// Send delivers p to every attached layer except senderID. Delivery is
// complete when Send returns. Sending from a layer that is no longer
// registered is a bug in the caller and panics.
func (f *Factory) Send(p link.Packet, senderID uint32, senderDeviceID uint32) {
	if !f.registered(senderID) {
		panic(errors.Errorf("%v: device %d sent %v through unregistered layer %d", f.typ, senderDeviceID, p, senderID))
	}

	d := atomic.AddInt32(&f.depth, 1)
	defer atomic.AddInt32(&f.depth, -1)
	if d > MaxSendDepth {
		panic(errors.Errorf("%v: nested send depth %d exceeded (device %d, %v)", f.typ, d, senderDeviceID, p))
	}

	for _, l := range f.snapshot() {
		if l.id == senderID {
			continue
		}
		// removed by an earlier receiver in this broadcast
		if !f.registered(l.id) {
			continue
		}
		l.receive(p, f.typ)
	}
}

// SendBuilder serializes b, validates the result and broadcasts it.
// An invalid serialization is a bug in the sender and panics.
func (f *Factory) SendBuilder(b link.Builder, senderID uint32, senderDeviceID uint32) {
	raw := b.Serialize()
	p := make(link.Packet, len(raw))
	copy(p, raw)

	if err := p.Validate(); err != nil {
		panic(errors.Wrapf(err, "%v: device %d built a malformed packet", f.typ, senderDeviceID))
	}
	f.Send(p, senderID, senderDeviceID)
}

// TimerTick forwards to every attached layer in registration order.
func (f *Factory) TimerTick() {
	for _, l := range f.snapshot() {
		l.TimerTick()
	}
}
