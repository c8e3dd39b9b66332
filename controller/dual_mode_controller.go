package controller

import (
	"github.com/pkg/errors"
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
	"github.com/rigado/rootcanal/hci/evt"
)

type handlerFn func(b []byte) error

// DualModeController is a simulated BR/EDR and LE controller. Commands come
// from the host through HandleCommand and HandleAcl; events and data for the
// host leave through the registered channels.
type DualModeController struct {
	*LinkLayerController

	cmdh map[int]handlerFn

	// commands answered with Command Status rather than Command Complete
	statusCmds map[int]bool

	errorHandler func(error)
}

// NewDualModeController returns a controller with the default properties.
func NewDualModeController(id uint32, opts ...rootcanal.Option) (*DualModeController, error) {
	d := &DualModeController{
		LinkLayerController: NewLinkLayerController(id, rootcanal.AddressEmpty, DefaultProperties()),
		cmdh:                map[int]handlerFn{},
		statusCmds:          map[int]bool{},
	}
	d.init()

	if err := d.Option(opts...); err != nil {
		return nil, errors.Wrap(err, "can't set options")
	}
	return d, nil
}

// Option sets the options specified.
func (d *DualModeController) Option(opts ...rootcanal.Option) error {
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return err
		}
	}
	return nil
}

func (d *DualModeController) init() {
	d.cmdh[cmd.InquiryOpCode] = d.handleInquiry
	d.cmdh[cmd.InquiryCancelOpCode] = d.handleInquiryCancel
	d.cmdh[cmd.CreateConnectionOpCode] = d.handleCreateConnection
	d.cmdh[cmd.DisconnectOpCode] = d.handleDisconnect
	d.cmdh[cmd.CreateConnectionCancelOpCode] = d.handleCreateConnectionCancel
	d.cmdh[cmd.AcceptConnectionRequestOpCode] = d.handleAcceptConnectionRequest
	d.cmdh[cmd.RejectConnectionRequestOpCode] = d.handleRejectConnectionRequest
	d.cmdh[cmd.SetEventMaskOpCode] = d.handleSetEventMask
	d.cmdh[cmd.ResetOpCode] = d.handleReset
	d.cmdh[cmd.WriteScanEnableOpCode] = d.handleWriteScanEnable
	d.cmdh[cmd.ReadBufferSizeOpCode] = d.handleReadBufferSize
	d.cmdh[cmd.ReadBDADDROpCode] = d.handleReadBDADDR

	d.cmdh[cmd.LESetEventMaskOpCode] = d.handleLESetEventMask
	d.cmdh[cmd.LEReadBufferSizeOpCode] = d.handleLEReadBufferSize
	d.cmdh[cmd.LESetRandomAddressOpCode] = d.handleLESetRandomAddress
	d.cmdh[cmd.LESetAdvertisingParametersOpCode] = d.handleLESetAdvertisingParameters
	d.cmdh[cmd.LESetAdvertisingDataOpCode] = d.handleLESetAdvertisingData
	d.cmdh[cmd.LESetScanResponseDataOpCode] = d.handleLESetScanResponseData
	d.cmdh[cmd.LESetAdvertiseEnableOpCode] = d.handleLESetAdvertiseEnable
	d.cmdh[cmd.LESetScanParametersOpCode] = d.handleLESetScanParameters
	d.cmdh[cmd.LESetScanEnableOpCode] = d.handleLESetScanEnable
	d.cmdh[cmd.LECreateConnectionOpCode] = d.handleLECreateConnection
	d.cmdh[cmd.LECreateConnectionCancelOpCode] = d.handleLECreateConnectionCancel
	d.cmdh[cmd.LEReadFilterAcceptListSizeOpCode] = d.handleLEReadFilterAcceptListSize
	d.cmdh[cmd.LEClearFilterAcceptListOpCode] = d.handleLEClearFilterAcceptList
	d.cmdh[cmd.LEAddDeviceToFilterAcceptListOpCode] = d.handleLEAddDeviceToFilterAcceptList
	d.cmdh[cmd.LERemoveDeviceFromFilterAcceptListOpCode] = d.handleLERemoveDeviceFromFilterAcceptList
	d.cmdh[cmd.LEConnectionUpdateOpCode] = d.handleLEConnectionUpdate
	d.cmdh[cmd.LEStartEncryptionOpCode] = d.handleLEStartEncryption
	d.cmdh[cmd.LELongTermKeyRequestReplyOpCode] = d.handleLELongTermKeyRequestReply
	d.cmdh[cmd.LELongTermKeyRequestNegativeReplyOpCode] = d.handleLELongTermKeyRequestNegativeReply
	d.cmdh[cmd.LEAddDeviceToResolvingListOpCode] = d.handleLEAddDeviceToResolvingList
	d.cmdh[cmd.LERemoveDeviceFromResolvingListOpCode] = d.handleLERemoveDeviceFromResolvingList
	d.cmdh[cmd.LEClearResolvingListOpCode] = d.handleLEClearResolvingList
	d.cmdh[cmd.LEReadResolvingListSizeOpCode] = d.handleLEReadResolvingListSize
	d.cmdh[cmd.LESetAddressResolutionEnableOpCode] = d.handleLESetAddressResolutionEnable

	for _, op := range []int{
		cmd.InquiryOpCode,
		cmd.CreateConnectionOpCode,
		cmd.DisconnectOpCode,
		cmd.AcceptConnectionRequestOpCode,
		cmd.RejectConnectionRequestOpCode,
		cmd.LECreateConnectionOpCode,
		cmd.LEConnectionUpdateOpCode,
		cmd.LEStartEncryptionOpCode,
	} {
		d.statusCmds[op] = true
	}
}

// RegisterEventChannel sets where HCI event packets for the host go.
func (d *DualModeController) RegisterEventChannel(fn func([]byte)) {
	d.LinkLayerController.RegisterEventChannel(func(e evt.Event) { fn(e) })
}

// RegisterAclChannel sets where HCI ACL packets for the host go.
func (d *DualModeController) RegisterAclChannel(fn func([]byte)) {
	d.LinkLayerController.RegisterAclChannel(func(a hci.AclPacket) { fn(a) })
}

func (d *DualModeController) handleError(err error) {
	if d.errorHandler != nil {
		d.errorHandler(err)
		return
	}
	d.logger.Error(err)
}

// HandleCommand executes one HCI command packet (opcode, length, params).
// Work triggered by the command runs after its response was emitted.
func (d *DualModeController) HandleCommand(b []byte) error {
	c := hci.CommandPacket(b)
	if err := c.Validate(); err != nil {
		err = errors.Wrap(err, "bad command packet")
		d.handleError(err)
		return err
	}

	op := c.OpCode()
	f, ok := d.cmdh[op]
	if !ok {
		d.logger.Infof("unknown command 0x%04x (ogf 0x%02x, ocf 0x%04x)", op, hci.Ogf(op), hci.Ocf(op))
		d.completeStatus(op, hci.ErrUnknownCommand)
		return nil
	}

	if err := f(c.Params()); err != nil {
		d.handleError(errors.Wrapf(err, "command 0x%04x", op))
	}
	d.RunPendingTasks()
	return nil
}

// HandleAcl forwards one HCI ACL packet from the host to the peer.
func (d *DualModeController) HandleAcl(b []byte) error {
	a := hci.AclPacket(b)
	if err := a.Validate(); err != nil {
		err = errors.Wrap(err, "bad acl packet")
		d.handleError(err)
		return err
	}

	if status := d.LinkLayerController.HandleAcl(a); status != hci.ErrSuccess {
		d.logger.Debugf("acl dropped: %v", status)
	}
	d.RunPendingTasks()
	return nil
}

func (d *DualModeController) complete(op int, rp cmd.ReturnParameters) {
	d.emit(evt.NewCommandComplete(op, cmd.Encode(rp)))
}

func (d *DualModeController) completeStatus(op int, s hci.ErrCommand) {
	d.complete(op, &cmd.Status{Status: s.Status()})
}

func (d *DualModeController) status(op int, s hci.ErrCommand) {
	d.emit(evt.NewCommandStatus(s.Status(), op))
}

// respond sends the response kind the command expects.
func (d *DualModeController) respond(op int, s hci.ErrCommand) {
	if d.statusCmds[op] {
		d.status(op, s)
		return
	}
	d.completeStatus(op, s)
}

// decode unmarshals the parameters of c, answering the host itself when
// they are malformed.
func (d *DualModeController) decode(c cmd.Command, b []byte) bool {
	if err := c.Unmarshal(b); err != nil {
		d.logger.Infof("%v: %v", c, err)
		d.respond(c.OpCode(), hci.ErrInvalidParams)
		return false
	}
	return true
}

func boolParam(v uint8) (bool, bool) {
	switch v {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}
