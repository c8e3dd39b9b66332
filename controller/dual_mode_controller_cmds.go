package controller

import (
	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
)

const maxAdvertisingDataLen = 31

func (d *DualModeController) handleInquiry(b []byte) error {
	var c cmd.Inquiry
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.Inquiry(c.LAP, c.InquiryLength, c.NumResponses))
	return nil
}

func (d *DualModeController) handleInquiryCancel(b []byte) error {
	var c cmd.InquiryCancel
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.InquiryCancel())
	return nil
}

func (d *DualModeController) handleCreateConnection(b []byte) error {
	var c cmd.CreateConnection
	if !d.decode(&c, b) {
		return nil
	}
	allow, ok := boolParam(c.AllowRoleSwitch)
	if !ok {
		d.respond(c.OpCode(), hci.ErrInvalidParams)
		return nil
	}
	d.respond(c.OpCode(), d.CreateConnection(rootcanal.Address(c.BDADDR), allow))
	return nil
}

func (d *DualModeController) handleDisconnect(b []byte) error {
	var c cmd.Disconnect
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.Disconnect(c.ConnectionHandle, c.Reason))
	return nil
}

func (d *DualModeController) handleCreateConnectionCancel(b []byte) error {
	var c cmd.CreateConnectionCancel
	if !d.decode(&c, b) {
		return nil
	}
	s := d.CreateConnectionCancel(rootcanal.Address(c.BDADDR))
	d.complete(c.OpCode(), &cmd.CreateConnectionCancelRP{Status: s.Status(), BDADDR: c.BDADDR})
	return nil
}

func (d *DualModeController) handleAcceptConnectionRequest(b []byte) error {
	var c cmd.AcceptConnectionRequest
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.AcceptConnectionRequest(rootcanal.Address(c.BDADDR), c.Role))
	return nil
}

func (d *DualModeController) handleRejectConnectionRequest(b []byte) error {
	var c cmd.RejectConnectionRequest
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.RejectConnectionRequest(rootcanal.Address(c.BDADDR), c.Reason))
	return nil
}

func (d *DualModeController) handleSetEventMask(b []byte) error {
	var c cmd.SetEventMask
	if !d.decode(&c, b) {
		return nil
	}
	d.eventMask = c.EventMask
	d.respond(c.OpCode(), hci.ErrSuccess)
	return nil
}

func (d *DualModeController) handleReset(b []byte) error {
	var c cmd.Reset
	if !d.decode(&c, b) {
		return nil
	}
	d.Reset()
	d.logger.Info("reset")
	d.respond(c.OpCode(), hci.ErrSuccess)
	return nil
}

func (d *DualModeController) handleWriteScanEnable(b []byte) error {
	var c cmd.WriteScanEnable
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.WriteScanEnable(c.ScanEnable))
	return nil
}

func (d *DualModeController) handleReadBufferSize(b []byte) error {
	var c cmd.ReadBufferSize
	if !d.decode(&c, b) {
		return nil
	}
	d.complete(c.OpCode(), &cmd.ReadBufferSizeRP{
		Status:                   hci.ErrSuccess.Status(),
		HCACLDataPacketLength:    d.props.AclDataPacketLength,
		HCTotalNumACLDataPackets: d.props.TotalNumAclDataPackets,
	})
	return nil
}

func (d *DualModeController) handleReadBDADDR(b []byte) error {
	var c cmd.ReadBDADDR
	if !d.decode(&c, b) {
		return nil
	}
	d.complete(c.OpCode(), &cmd.ReadBDADDRRP{Status: hci.ErrSuccess.Status(), BDADDR: d.public})
	return nil
}

func (d *DualModeController) handleLESetEventMask(b []byte) error {
	var c cmd.LESetEventMask
	if !d.decode(&c, b) {
		return nil
	}
	d.leEventMask = c.LEEventMask
	d.respond(c.OpCode(), hci.ErrSuccess)
	return nil
}

func (d *DualModeController) handleLEReadBufferSize(b []byte) error {
	var c cmd.LEReadBufferSize
	if !d.decode(&c, b) {
		return nil
	}
	d.complete(c.OpCode(), &cmd.LEReadBufferSizeRP{
		Status:                  hci.ErrSuccess.Status(),
		HCLEDataPacketLength:    d.props.LeAclDataPacketLength,
		HCTotalNumLEDataPackets: d.props.TotalNumLeAclDataPackets,
	})
	return nil
}

func (d *DualModeController) handleLESetRandomAddress(b []byte) error {
	var c cmd.LESetRandomAddress
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeSetRandomAddress(rootcanal.Address(c.RandomAddress)))
	return nil
}

func (d *DualModeController) handleLESetAdvertisingParameters(b []byte) error {
	var c cmd.LESetAdvertisingParameters
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeSetAdvertisingParameters(c))
	return nil
}

func (d *DualModeController) handleLESetAdvertisingData(b []byte) error {
	var c cmd.LESetAdvertisingData
	if !d.decode(&c, b) {
		return nil
	}
	if c.AdvertisingDataLength > maxAdvertisingDataLen {
		d.respond(c.OpCode(), hci.ErrInvalidParams)
		return nil
	}
	d.respond(c.OpCode(), d.LeSetAdvertisingData(c.AdvertisingData[:c.AdvertisingDataLength]))
	return nil
}

func (d *DualModeController) handleLESetScanResponseData(b []byte) error {
	var c cmd.LESetScanResponseData
	if !d.decode(&c, b) {
		return nil
	}
	if c.ScanResponseDataLength > maxAdvertisingDataLen {
		d.respond(c.OpCode(), hci.ErrInvalidParams)
		return nil
	}
	d.respond(c.OpCode(), d.LeSetScanResponseData(c.ScanResponseData[:c.ScanResponseDataLength]))
	return nil
}

func (d *DualModeController) handleLESetAdvertiseEnable(b []byte) error {
	var c cmd.LESetAdvertiseEnable
	if !d.decode(&c, b) {
		return nil
	}
	en, ok := boolParam(c.AdvertisingEnable)
	if !ok {
		d.respond(c.OpCode(), hci.ErrInvalidParams)
		return nil
	}
	d.respond(c.OpCode(), d.LeSetAdvertisingEnable(en))
	return nil
}

func (d *DualModeController) handleLESetScanParameters(b []byte) error {
	var c cmd.LESetScanParameters
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeSetScanParameters(c))
	return nil
}

func (d *DualModeController) handleLESetScanEnable(b []byte) error {
	var c cmd.LESetScanEnable
	if !d.decode(&c, b) {
		return nil
	}
	en, ok1 := boolParam(c.LEScanEnable)
	dup, ok2 := boolParam(c.FilterDuplicates)
	if !ok1 || !ok2 {
		d.respond(c.OpCode(), hci.ErrInvalidParams)
		return nil
	}
	d.respond(c.OpCode(), d.LeSetScanEnable(en, dup))
	return nil
}

func (d *DualModeController) handleLECreateConnection(b []byte) error {
	var c cmd.LECreateConnection
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeCreateConnection(c))
	return nil
}

func (d *DualModeController) handleLECreateConnectionCancel(b []byte) error {
	var c cmd.LECreateConnectionCancel
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeCreateConnectionCancel())
	return nil
}

func (d *DualModeController) handleLEReadFilterAcceptListSize(b []byte) error {
	var c cmd.LEReadFilterAcceptListSize
	if !d.decode(&c, b) {
		return nil
	}
	d.complete(c.OpCode(), &cmd.LEReadFilterAcceptListSizeRP{
		Status:               hci.ErrSuccess.Status(),
		FilterAcceptListSize: d.LeReadFilterAcceptListSize(),
	})
	return nil
}

func (d *DualModeController) handleLEClearFilterAcceptList(b []byte) error {
	var c cmd.LEClearFilterAcceptList
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeClearFilterAcceptList())
	return nil
}

func (d *DualModeController) handleLEAddDeviceToFilterAcceptList(b []byte) error {
	var c cmd.LEAddDeviceToFilterAcceptList
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeAddDeviceToFilterAcceptList(c.AddressType, rootcanal.Address(c.Address)))
	return nil
}

func (d *DualModeController) handleLERemoveDeviceFromFilterAcceptList(b []byte) error {
	var c cmd.LERemoveDeviceFromFilterAcceptList
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeRemoveDeviceFromFilterAcceptList(c.AddressType, rootcanal.Address(c.Address)))
	return nil
}

func (d *DualModeController) handleLEConnectionUpdate(b []byte) error {
	var c cmd.LEConnectionUpdate
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeConnectionUpdate(c))
	return nil
}

func (d *DualModeController) handleLEStartEncryption(b []byte) error {
	var c cmd.LEStartEncryption
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeStartEncryption(c.ConnectionHandle, c.RandomNumber, c.EncryptedDiversifier, c.LongTermKey))
	return nil
}

func (d *DualModeController) handleLELongTermKeyRequestReply(b []byte) error {
	var c cmd.LELongTermKeyRequestReply
	if !d.decode(&c, b) {
		return nil
	}
	s := d.LeLongTermKeyRequestReply(c.ConnectionHandle, c.LongTermKey)
	d.complete(c.OpCode(), &cmd.LELongTermKeyRequestReplyRP{Status: s.Status(), ConnectionHandle: c.ConnectionHandle})
	return nil
}

func (d *DualModeController) handleLELongTermKeyRequestNegativeReply(b []byte) error {
	var c cmd.LELongTermKeyRequestNegativeReply
	if !d.decode(&c, b) {
		return nil
	}
	s := d.LeLongTermKeyRequestNegativeReply(c.ConnectionHandle)
	d.complete(c.OpCode(), &cmd.LELongTermKeyRequestNegativeReplyRP{Status: s.Status(), ConnectionHandle: c.ConnectionHandle})
	return nil
}

func (d *DualModeController) handleLEAddDeviceToResolvingList(b []byte) error {
	var c cmd.LEAddDeviceToResolvingList
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeAddDeviceToResolvingList(c.PeerIdentityAddressType,
		rootcanal.Address(c.PeerIdentityAddress), c.PeerIRK, c.LocalIRK))
	return nil
}

func (d *DualModeController) handleLERemoveDeviceFromResolvingList(b []byte) error {
	var c cmd.LERemoveDeviceFromResolvingList
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeRemoveDeviceFromResolvingList(c.PeerIdentityAddressType, rootcanal.Address(c.PeerIdentityAddress)))
	return nil
}

func (d *DualModeController) handleLEClearResolvingList(b []byte) error {
	var c cmd.LEClearResolvingList
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeClearResolvingList())
	return nil
}

func (d *DualModeController) handleLEReadResolvingListSize(b []byte) error {
	var c cmd.LEReadResolvingListSize
	if !d.decode(&c, b) {
		return nil
	}
	d.complete(c.OpCode(), &cmd.LEReadResolvingListSizeRP{
		Status:            hci.ErrSuccess.Status(),
		ResolvingListSize: d.LeReadResolvingListSize(),
	})
	return nil
}

func (d *DualModeController) handleLESetAddressResolutionEnable(b []byte) error {
	var c cmd.LESetAddressResolutionEnable
	if !d.decode(&c, b) {
		return nil
	}
	d.respond(c.OpCode(), d.LeSetAddressResolutionEnable(c.AddressResolutionEnable))
	return nil
}
