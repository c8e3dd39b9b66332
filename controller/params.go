package controller

import (
	"github.com/pkg/errors"
	"github.com/rigado/rootcanal/hci"
	"github.com/rigado/rootcanal/hci/cmd"
)

const (
	FilterPolicyAcceptAll        = 0
	FilterPolicyAcceptAcceptList = 1

	LEScanTypePassive = 0
	LEScanTypeActive  = 1

	LEScanIntervalMin = 0x0004
	LEScanIntervalMax = 0x4000
	LEScanWindowMin   = 0x0004
	LEScanWindowMax   = 0x4000

	AdvIntervalMin = 0x0020
	AdvIntervalMax = 0x4000

	// high duty cycle directed advertising ignores the host's interval
	AdvIntervalDirectedHigh = 0x0800

	ConnIntervalMin = 0x0006
	ConnIntervalMax = 0x0c80
	ConnLatencyMin  = 0x0000
	ConnLatencyMax  = 0x01f3

	SupervisionTimeoutMin = 0x000a
	SupervisionTimeoutMax = 0x0c80

	CELengthMin = 0x0000
	CELengthMax = 0xffff
)

// Advertising types of LE Set Advertising Parameters.
const (
	AdvTypeInd              = 0x00
	AdvTypeDirectIndHigh    = 0x01
	AdvTypeScanInd          = 0x02
	AdvTypeNonconnInd       = 0x03
	AdvTypeDirectIndLow     = 0x04
	advFilterConnectListed  = 0x02
	advFilterScanAndConnect = 0x03
)

// Own address types of the LE commands.
const (
	OwnAddressPublic          = 0x00
	OwnAddressRandom          = 0x01
	OwnAddressResolvableOrPub = 0x02
	OwnAddressResolvableOrRnd = 0x03
)

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(hci.ErrInvalidParams, format, args...)
}

func unsupported(format string, args ...interface{}) error {
	return errors.Wrapf(hci.ErrUnsupportedParams, format, args...)
}

func ValidateScanParams(p cmd.LESetScanParameters) error {
	switch {
	case p.LEScanType != LEScanTypeActive && p.LEScanType != LEScanTypePassive:
		return invalid("invalid LEScanType %v", p.LEScanType)

	case p.LEScanInterval < LEScanIntervalMin || p.LEScanInterval > LEScanIntervalMax:
		return invalid("invalid LEScanInterval %v", p.LEScanInterval)

	case p.LEScanWindow < LEScanWindowMin || p.LEScanWindow > LEScanWindowMax:
		return invalid("invalid LEScanWindow %v", p.LEScanWindow)

	case p.LEScanWindow > p.LEScanInterval:
		return invalid("LEScanWindow %v > LEScanInterval %v", p.LEScanWindow, p.LEScanInterval)

	case p.OwnAddressType > OwnAddressResolvableOrRnd:
		return invalid("invalid OwnAddressType %v", p.OwnAddressType)

	case p.ScanningFilterPolicy != FilterPolicyAcceptAll && p.ScanningFilterPolicy != FilterPolicyAcceptAcceptList:
		return invalid("invalid ScanningFilterPolicy %v", p.ScanningFilterPolicy)
	}

	return nil
}

// validateConnectionTiming checks the interval, latency and supervision
// timeout shared by LE Create Connection and LE Connection Update.
func validateConnectionTiming(intervalMin, intervalMax, latency, timeout, ceMin, ceMax uint16) error {

	/* The Supervision_Timeout in milliseconds shall be larger than
	(1 + Conn_Latency) * Conn_Interval_Max * 2, where Conn_Interval_Max is
	given in milliseconds.
	*/
	minStoMs := (1 + float64(latency)) * (float64(intervalMax) * 1.25) * 2
	stoMs := float64(timeout) * 10

	switch {
	case intervalMax < ConnIntervalMin || intervalMax > ConnIntervalMax:
		return invalid("invalid ConnIntervalMax %v", intervalMax)

	case intervalMin < ConnIntervalMin || intervalMin > ConnIntervalMax:
		return invalid("invalid ConnIntervalMin %v", intervalMin)

	case intervalMin > intervalMax:
		return invalid("ConnIntervalMin %v > ConnIntervalMax %v", intervalMin, intervalMax)

	case latency < ConnLatencyMin || latency > ConnLatencyMax:
		return invalid("invalid ConnLatency %v", latency)

	case timeout < SupervisionTimeoutMin || timeout > SupervisionTimeoutMax:
		return invalid("invalid SupervisionTimeout %v", timeout)

	case stoMs <= minStoMs:
		return invalid("invalid SupervisionTimeout %v (too small)", timeout)

	case ceMin > ceMax:
		return invalid("MinimumCELength %v > MaximumCELength %v", ceMin, ceMax)
	}

	return nil
}

func ValidateConnParams(p cmd.LECreateConnection) error {
	switch {
	case p.LEScanInterval < LEScanIntervalMin || p.LEScanInterval > LEScanIntervalMax:
		return invalid("invalid LEScanInterval %v", p.LEScanInterval)

	case p.LEScanWindow < LEScanWindowMin || p.LEScanWindow > LEScanWindowMax:
		return invalid("invalid LEScanWindow %v", p.LEScanWindow)

	case p.LEScanWindow > p.LEScanInterval:
		return invalid("LEScanWindow %v > LEScanInterval %v", p.LEScanWindow, p.LEScanInterval)

	case p.InitiatorFilterPolicy != FilterPolicyAcceptAll && p.InitiatorFilterPolicy != FilterPolicyAcceptAcceptList:
		return invalid("invalid InitiatorFilterPolicy %v", p.InitiatorFilterPolicy)

	case p.OwnAddressType > OwnAddressResolvableOrRnd:
		return invalid("invalid OwnAddressType %v", p.OwnAddressType)

	case p.InitiatorFilterPolicy == FilterPolicyAcceptAll && p.PeerAddressType > 0x03:
		return invalid("invalid PeerAddressType %v", p.PeerAddressType)
	}

	return validateConnectionTiming(p.ConnIntervalMin, p.ConnIntervalMax, p.ConnLatency,
		p.SupervisionTimeout, p.MinimumCELength, p.MaximumCELength)
}

func ValidateConnUpdateParams(p cmd.LEConnectionUpdate) error {
	return validateConnectionTiming(p.ConnIntervalMin, p.ConnIntervalMax, p.ConnLatency,
		p.SupervisionTimeout, p.MinimumCELength, p.MaximumCELength)
}

// ValidateAdvParams checks advertising parameters. Out of range intervals
// are reported as unsupported, everything else as invalid.
func ValidateAdvParams(p cmd.LESetAdvertisingParameters) error {
	directed := p.AdvertisingType == AdvTypeDirectIndHigh || p.AdvertisingType == AdvTypeDirectIndLow

	switch {
	case p.AdvertisingType > AdvTypeDirectIndLow:
		return invalid("invalid AdvertisingType %v", p.AdvertisingType)

	case p.OwnAddressType > OwnAddressResolvableOrRnd:
		return invalid("invalid OwnAddressType %v", p.OwnAddressType)

	case directed && p.DirectAddressType > 0x01:
		return invalid("invalid DirectAddressType %v", p.DirectAddressType)

	case p.AdvertisingChannelMap&0x07 == 0:
		return invalid("empty AdvertisingChannelMap 0x%02x", p.AdvertisingChannelMap)

	case p.AdvertisingFilterPolicy > advFilterScanAndConnect:
		return invalid("invalid AdvertisingFilterPolicy %v", p.AdvertisingFilterPolicy)
	}

	if p.AdvertisingType == AdvTypeDirectIndHigh {
		return nil
	}

	switch {
	case p.AdvertisingIntervalMin < AdvIntervalMin || p.AdvertisingIntervalMin > AdvIntervalMax:
		return unsupported("invalid AdvertisingIntervalMin %v", p.AdvertisingIntervalMin)

	case p.AdvertisingIntervalMax < AdvIntervalMin || p.AdvertisingIntervalMax > AdvIntervalMax:
		return unsupported("invalid AdvertisingIntervalMax %v", p.AdvertisingIntervalMax)

	case p.AdvertisingIntervalMin > p.AdvertisingIntervalMax:
		return invalid("AdvertisingIntervalMin %v > AdvertisingIntervalMax %v", p.AdvertisingIntervalMin, p.AdvertisingIntervalMax)
	}

	return nil
}

func defaultAdvParams() cmd.LESetAdvertisingParameters {
	return cmd.LESetAdvertisingParameters{
		AdvertisingIntervalMin:  0x0800,    // 0x0020 - 0x4000; N * 0.625 msec
		AdvertisingIntervalMax:  0x0800,    // 0x0020 - 0x4000; N * 0.625 msec
		AdvertisingType:         0x00,      // 00: ADV_IND, 0x01: DIRECT(HIGH), 0x02: SCAN, 0x03: NONCONN, 0x04: DIRECT(LOW)
		OwnAddressType:          0x00,      // 0x00: public, 0x01: random
		DirectAddressType:       0x00,      // 0x00: public, 0x01: random
		DirectAddress:           [6]byte{}, // Public or Random Address of the Device to be connected
		AdvertisingChannelMap:   0x7,       // 0x07 0x01: ch37, 0x2: ch38, 0x4: ch39
		AdvertisingFilterPolicy: 0x00,
	}
}

func defaultScanParams() cmd.LESetScanParameters {
	return cmd.LESetScanParameters{
		LEScanType:           0x00,   // 0x00: passive, 0x01: active
		LEScanInterval:       0x0010, // 0x0004 - 0x4000; N * 0.625msec
		LEScanWindow:         0x0010, // 0x0004 - 0x4000; N * 0.625msec
		OwnAddressType:       0x00,   // 0x00: public, 0x01: random
		ScanningFilterPolicy: 0x00,   // 0x00: accept all, 0x01: ignore non-accept-listed.
	}
}
