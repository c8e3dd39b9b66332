package model

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rigado/rootcanal/controller"
	"github.com/rigado/rootcanal/phy"
)

// tickRecorder wraps a controller and records the order of its ticks.
type tickRecorder struct {
	*controller.DualModeController

	mu    *sync.Mutex
	order *[]uint32
}

func (r *tickRecorder) TimerTick() {
	r.mu.Lock()
	*r.order = append(*r.order, r.ID())
	r.mu.Unlock()
	r.DualModeController.TimerTick()
}

func newDevice(t *testing.T, id uint32) *controller.DualModeController {
	d, err := controller.NewDualModeController(id)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDeviceOrder(t *testing.T) {
	m := NewTestModel()

	var mu sync.Mutex
	var order []uint32
	for _, id := range []uint32{3, 1, 2} {
		r := &tickRecorder{DualModeController: newDevice(t, id), mu: &mu, order: &order}
		if err := m.AddDevice(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.AddDevice(newDevice(t, 2)); err == nil {
		t.Fatal("duplicate device id accepted")
	}
	if id := m.NextDeviceID(); id != 4 {
		t.Fatalf("next id %d", id)
	}

	m.Tick()
	m.Tick()
	want := []uint32{1, 2, 3, 1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("ticks %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("ticks %v, want %v", order, want)
		}
	}

	if err := m.RemoveDevice(2); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveDevice(2); err == nil {
		t.Fatal("removed twice")
	}
	if ids := m.Devices(); len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("devices %v", ids)
	}
}

func TestPhyMembership(t *testing.T) {
	m := NewTestModel()
	le := m.AddPhy(phy.LowEnergy)
	classic := m.AddPhy(phy.BrEdr)
	le2 := m.AddPhy(phy.LowEnergy)

	a, b := newDevice(t, 1), newDevice(t, 2)
	m.AddDevice(a)
	m.AddDevice(b)

	for _, id := range []uint32{1, 2} {
		if err := m.AddDeviceToPhy(id, le); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.AddDeviceToPhy(1, le2); err == nil {
		t.Fatal("second le phy accepted")
	}
	if err := m.AddDeviceToPhy(3, le); err == nil {
		t.Fatal("unknown device accepted")
	}
	if err := m.AddDeviceToPhy(1, 7); err == nil {
		t.Fatal("unknown phy accepted")
	}
	if n := m.Phy(le).Len(); n != 2 {
		t.Fatalf("%d layers", n)
	}

	if err := m.RemoveDeviceFromPhy(1, classic); err == nil {
		t.Fatal("detached from a phy it is not on")
	}
	if err := m.RemoveDeviceFromPhy(1, le); err != nil {
		t.Fatal(err)
	}
	if a.Layer(phy.LowEnergy) != nil || m.Phy(le).Len() != 1 {
		t.Fatal("device still attached")
	}

	if err := m.RemovePhy(le); err != nil {
		t.Fatal(err)
	}
	if b.Layer(phy.LowEnergy) != nil {
		t.Fatal("device still attached to a removed phy")
	}
	if m.Phy(le) != nil || m.Phy(le2) == nil {
		t.Fatal("phy indexes shifted")
	}
	if err := m.RemovePhy(le); err == nil {
		t.Fatal("removed twice")
	}

	// le2 is free now that the first le phy is gone
	if err := m.AddDeviceToPhy(2, le2); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.List(), "2: LOW_ENERGY, 1 layers") {
		t.Fatalf("list:\n%v", m.List())
	}
}

func TestTickAdvancesPhysAndDevices(t *testing.T) {
	m := NewTestModel()
	le := m.AddPhy(phy.LowEnergy)
	d := newDevice(t, 1)
	m.AddDevice(d)
	m.AddDeviceToPhy(1, le)

	for i := 0; i < 5; i++ {
		m.Tick()
	}
	if n := d.Layer(phy.LowEnergy).Ticks(); n != 5 {
		t.Fatalf("%d phy ticks", n)
	}
	if d.Now() != 5*controller.DefaultTickPeriod {
		t.Fatalf("device time %v", d.Now())
	}
}

func TestTimer(t *testing.T) {
	m := NewTestModel()
	if err := m.SetTimerPeriod(0); err == nil {
		t.Fatal("zero period accepted")
	}
	if err := m.SetTimerPeriod(time.Millisecond); err != nil {
		t.Fatal(err)
	}
	d := newDevice(t, 1)
	m.AddDevice(d)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.StartTimer(ctx)

	deadline := time.Now().Add(5 * time.Second)
	for {
		m.Lock()
		now := d.Now()
		m.Unlock()
		if now >= 3*controller.DefaultTickPeriod {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timer not ticking")
		}
		time.Sleep(time.Millisecond)
	}

	m.StopTimer()
	m.Lock()
	stopped := d.Now()
	m.Unlock()
	time.Sleep(10 * time.Millisecond)
	if d.Now() != stopped {
		t.Fatal("ticking after stop")
	}

	// cancelling the context stops it too
	ctx2, cancel2 := context.WithCancel(context.Background())
	m.StartTimer(ctx2)
	cancel2()
	m.StopTimer()
}

func TestReset(t *testing.T) {
	m := NewTestModel()
	le := m.AddPhy(phy.LowEnergy)
	d := newDevice(t, 1)
	m.AddDevice(d)
	m.AddDeviceToPhy(1, le)
	m.StartTimer(context.Background())

	m.Reset()
	if len(m.Devices()) != 0 || m.Phy(le) != nil {
		t.Fatal("topology not cleared")
	}
	if d.Layer(phy.LowEnergy) != nil {
		t.Fatal("device still attached")
	}
}
