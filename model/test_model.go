package model

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/phy"
)

// DefaultTimerPeriod matches the controllers' default tick period.
const DefaultTimerPeriod = 10 * time.Millisecond

// Device is a simulated node of the topology.
type Device interface {
	ID() uint32
	Address() rootcanal.Address
	TimerTick()
	AttachPhy(f *phy.Factory) (*phy.Layer, error)
	DetachPhy(t phy.Type)
	Layer(t phy.Type) *phy.Layer
}

// TestModel owns the devices and media of one simulation. Every entry
// point takes the model lock, so HCI traffic, ticks and topology edits never
// interleave.
type TestModel struct {
	mu sync.Mutex

	devices []Device
	phys    []*phy.Factory

	nextDeviceID uint32
	period       time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	session string
	logger  rootcanal.Logger
}

func NewTestModel() *TestModel {
	session := uuid.New().String()
	return &TestModel{
		nextDeviceID: 1,
		period:       DefaultTimerPeriod,
		session:      session,
		logger:       rootcanal.GetLogger().ChildLogger(map[string]interface{}{"model": session}),
	}
}

// Session identifies this simulation in the logs.
func (m *TestModel) Session() string { return m.session }

func (m *TestModel) Logger() rootcanal.Logger { return m.logger }

// Lock serializes external input with the simulation. Transports hold it
// while feeding a packet to a device.
func (m *TestModel) Lock()   { m.mu.Lock() }
func (m *TestModel) Unlock() { m.mu.Unlock() }

// NextDeviceID reserves an id for a device about to be added.
func (m *TestModel) NextDeviceID() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextID()
}

func (m *TestModel) nextID() uint32 {
	id := m.nextDeviceID
	m.nextDeviceID++
	return id
}

// AddDevice adds d to the topology without attaching it to any phy.
func (m *TestModel) AddDevice(d Device) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addDevice(d)
}

func (m *TestModel) addDevice(d Device) error {
	if m.device(d.ID()) != nil {
		return errors.Errorf("device %d already added", d.ID())
	}
	if d.ID() >= m.nextDeviceID {
		m.nextDeviceID = d.ID() + 1
	}

	i := sort.Search(len(m.devices), func(i int) bool { return m.devices[i].ID() > d.ID() })
	m.devices = append(m.devices, nil)
	copy(m.devices[i+1:], m.devices[i:])
	m.devices[i] = d

	m.logger.Infof("device %d (%v) added", d.ID(), d.Address().RedactedString())
	return nil
}

// RemoveDevice detaches the device from every phy and drops it.
func (m *TestModel) RemoveDevice(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeDevice(id)
}

func (m *TestModel) removeDevice(id uint32) error {
	for i, d := range m.devices {
		if d.ID() != id {
			continue
		}
		for _, f := range m.phys {
			if f == nil {
				continue
			}
			if l := d.Layer(f.Type()); l != nil && l.IsFactory(f) {
				d.DetachPhy(f.Type())
			}
		}
		m.devices = append(m.devices[:i], m.devices[i+1:]...)
		m.logger.Infof("device %d removed", id)
		return nil
	}
	return errors.Errorf("no device %d", id)
}

func (m *TestModel) device(id uint32) Device {
	for _, d := range m.devices {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// Devices returns the device ids in tick order.
func (m *TestModel) Devices() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uint32, 0, len(m.devices))
	for _, d := range m.devices {
		ids = append(ids, d.ID())
	}
	return ids
}

// AddPhy creates a new medium and returns its index.
func (m *TestModel) AddPhy(t phy.Type) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phys = append(m.phys, phy.NewFactory(t))
	m.logger.Infof("phy %d (%v) added", len(m.phys)-1, t)
	return len(m.phys) - 1
}

// RemovePhy detaches every device from the phy and drops it. Later phys
// keep their indexes.
func (m *TestModel) RemovePhy(idx int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.phy(idx)
	if err != nil {
		return err
	}
	f.UnregisterAllPhyLayers()
	m.phys[idx] = nil
	m.logger.Infof("phy %d removed", idx)
	return nil
}

func (m *TestModel) phy(idx int) (*phy.Factory, error) {
	if idx < 0 || idx >= len(m.phys) || m.phys[idx] == nil {
		return nil, errors.Errorf("no phy %d", idx)
	}
	return m.phys[idx], nil
}

// Phy returns the medium at idx, or nil.
func (m *TestModel) Phy(idx int) *phy.Factory {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, _ := m.phy(idx)
	return f
}

// AddDeviceToPhy attaches a device to a medium.
func (m *TestModel) AddDeviceToPhy(id uint32, idx int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.device(id)
	if d == nil {
		return errors.Errorf("no device %d", id)
	}
	f, err := m.phy(idx)
	if err != nil {
		return err
	}
	_, err = d.AttachPhy(f)
	return err
}

// RemoveDeviceFromPhy detaches a device from a medium it is attached to.
func (m *TestModel) RemoveDeviceFromPhy(id uint32, idx int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.device(id)
	if d == nil {
		return errors.Errorf("no device %d", id)
	}
	f, err := m.phy(idx)
	if err != nil {
		return err
	}
	if l := d.Layer(f.Type()); l == nil || !l.IsFactory(f) {
		return errors.Errorf("device %d is not attached to phy %d", id, idx)
	}
	d.DetachPhy(f.Type())
	return nil
}

// attachToAll attaches d to every phy whose type it has no medium for yet.
func (m *TestModel) attachToAll(d Device) {
	for _, f := range m.phys {
		if f == nil || d.Layer(f.Type()) != nil {
			continue
		}
		if _, err := d.AttachPhy(f); err != nil {
			m.logger.Warnf("device %d: %v", d.ID(), err)
		}
	}
}

// Tick advances the whole simulation by one timer period: phys first, then
// devices, each in id order.
func (m *TestModel) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.phys {
		if f != nil {
			f.TimerTick()
		}
	}
	for _, d := range m.devices {
		d.TimerTick()
	}
}

// SetTimerPeriod changes the wall clock period between ticks. A running
// timer picks it up on restart.
func (m *TestModel) SetTimerPeriod(d time.Duration) error {
	if d <= 0 {
		return errors.Errorf("invalid timer period %v", d)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.period = d
	return nil
}

// StartTimer ticks the model every timer period until ctx is done or
// StopTimer is called.
func (m *TestModel) StartTimer(ctx context.Context) {
	m.StopTimer()

	m.mu.Lock()
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.cancel, m.done = cancel, done
	period := m.period
	m.mu.Unlock()

	go func() {
		defer close(done)

		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.Tick()
			}
		}
	}()
}

// StopTimer stops the timer and waits for the last tick to finish.
func (m *TestModel) StopTimer() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Reset stops the timer and tears down every device and phy.
func (m *TestModel) Reset() {
	m.StopTimer()

	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.devices) > 0 {
		m.removeDevice(m.devices[0].ID())
	}
	for _, f := range m.phys {
		if f != nil {
			f.UnregisterAllPhyLayers()
		}
	}
	m.phys = nil
}

// List describes the topology, one line per device and phy.
func (m *TestModel) List() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Devices:\n")
	for _, d := range m.devices {
		fmt.Fprintf(&sb, "  %d: %v\n", d.ID(), d.Address())
	}
	fmt.Fprintf(&sb, "Phys:\n")
	for i, f := range m.phys {
		if f == nil {
			continue
		}
		fmt.Fprintf(&sb, "  %d: %v, %d layers\n", i, f.Type(), f.Len())
	}
	return sb.String()
}
