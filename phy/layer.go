package phy

import (
	"sync/atomic"

	"github.com/rigado/rootcanal/link"
)

// Layer is one device's attachment to a Factory. The factory reference is
// a back pointer only; the layer must be unregistered before it is dropped.
type Layer struct {
	factory  *Factory
	id       uint32
	deviceID uint32
	receive  ReceiveFunc

	onUnregister func()
	ticks        uint64
}

func (l *Layer) ID() uint32       { return l.id }
func (l *Layer) DeviceID() uint32 { return l.deviceID }
func (l *Layer) Type() Type       { return l.factory.typ }

// IsFactory reports whether l is attached through f.
func (l *Layer) IsFactory(f *Factory) bool { return l.factory == f }

// Send broadcasts a built packet to the other layers of the factory.
func (l *Layer) Send(b link.Builder) {
	l.factory.SendBuilder(b, l.id, l.deviceID)
}

// SendPacket broadcasts an already serialized packet.
func (l *Layer) SendPacket(p link.Packet) {
	l.factory.Send(p, l.id, l.deviceID)
}

// Unregister detaches the layer. Calling it twice is harmless.
func (l *Layer) Unregister() {
	l.factory.UnregisterPhyLayer(l.id)
}

// OnUnregister sets a hook run once the layer leaves the registry.
func (l *Layer) OnUnregister(fn func()) {
	l.onUnregister = fn
}

func (l *Layer) TimerTick() {
	atomic.AddUint64(&l.ticks, 1)
}

// Ticks returns how many timer ticks reached this layer.
func (l *Layer) Ticks() uint64 {
	return atomic.LoadUint64(&l.ticks)
}
