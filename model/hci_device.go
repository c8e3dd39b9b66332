package model

import (
	"io"
	"net"
	"sync"

	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/controller"
	"github.com/rigado/rootcanal/h4"
)

const (
	readBufferSize = 1024

	// WriteQueueSize is how many packets may wait for a slow host before
	// its stream is dropped.
	WriteQueueSize = 256
)

// HciSocketDevice is a controller driven by a host over an H4 stream, such
// as a TCP connection or a UART.
type HciSocketDevice struct {
	*controller.DualModeController

	model *TestModel
	rwc   io.ReadWriteCloser
	out   chan []byte

	done      chan struct{}
	closeOnce sync.Once
	err       error

	logger rootcanal.Logger
}

// DeviceAddress is the public address handed to the device with id.
func DeviceAddress(id uint32) rootcanal.Address {
	return rootcanal.NewAddress(byte(id), byte(id>>8), 0x00, 0xda, 0x1b, 0x00)
}

// AddHciConnection creates a controller for the host behind rwc, attaches it
// to every phy and starts serving it. The device leaves the model when the
// stream closes.
func (m *TestModel) AddHciConnection(rwc io.ReadWriteCloser, opts ...rootcanal.Option) (*HciSocketDevice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID()
	opts = append([]rootcanal.Option{rootcanal.OptAddress(DeviceAddress(id))}, opts...)
	c, err := controller.NewDualModeController(id, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create device %d", id)
	}

	d := &HciSocketDevice{
		DualModeController: c,
		model:              m,
		rwc:                rwc,
		out:                make(chan []byte, WriteQueueSize),
		done:               make(chan struct{}),
		logger:             m.logger.ChildLogger(map[string]interface{}{"device": id}),
	}
	c.RegisterEventChannel(func(b []byte) { d.write(h4.EventPacket, b) })
	c.RegisterAclChannel(func(b []byte) { d.write(h4.AclPacket, b) })

	if err := m.addDevice(d); err != nil {
		return nil, err
	}
	m.attachToAll(d)

	go d.loop()
	go d.writeLoop()
	return d, nil
}

// Done is closed once the stream is gone and the device left the model.
func (d *HciSocketDevice) Done() <-chan struct{} { return d.done }

// Err returns why the device stopped, nil while it is running.
func (d *HciSocketDevice) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// Close shuts the stream down. The read loop removes the device.
func (d *HciSocketDevice) Close() error {
	return errors.Wrap(d.rwc.Close(), "can't close hci stream")
}

func (d *HciSocketDevice) loop() {
	a := h4.NewAssembler(d.dispatch, h4.CommandPacket, h4.AclPacket)
	b := make([]byte, readBufferSize)
	var err error
	for {
		var n int
		n, err = d.rwc.Read(b)
		if n > 0 {
			a.Assemble(b[:n])
		}
		if err == nil {
			continue
		}
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			continue
		}
		break
	}

	if err == io.EOF {
		err = nil
	}
	d.finish(errors.Wrap(err, "hci stream"))
}

func (d *HciSocketDevice) finish(err error) {
	d.closeOnce.Do(func() {
		d.err = err
		if err != nil {
			d.logger.Warn(err)
		}
		d.rwc.Close()
		if rerr := d.model.RemoveDevice(d.ID()); rerr != nil {
			d.logger.Debug(rerr)
		}
		d.logger.Infof("hci stream closed")
		close(d.done)
	})
}

// dispatch feeds one host packet to the controller under the model lock.
func (d *HciSocketDevice) dispatch(f h4.Frame) {
	d.model.Lock()
	defer d.model.Unlock()

	var err error
	switch f.Type {
	case h4.CommandPacket:
		err = d.HandleCommand(f.Packet)
	case h4.AclPacket:
		err = d.HandleAcl(f.Packet)
	}
	if err != nil {
		d.logger.Debugf("packet 0x%02x dropped: %v", f.Type, err)
	}
}

// write queues a packet for the host. It runs under the model lock and
// never blocks: a host that stops reading loses its stream.
func (d *HciSocketDevice) write(t byte, p []byte) {
	select {
	case d.out <- h4.Encode(t, p):
	case <-d.done:
	default:
		d.logger.Warnf("host not reading, %d packets queued, closing hci stream", len(d.out))
		// the read loop notices the close and cleans up
		d.rwc.Close()
	}
}

func (d *HciSocketDevice) writeLoop() {
	for {
		select {
		case <-d.done:
			return
		case b := <-d.out:
			if _, err := d.rwc.Write(b); err != nil {
				d.logger.Warnf("can't write packet 0x%02x: %v", b[0], err)
				d.rwc.Close()
				return
			}
		}
	}
}
