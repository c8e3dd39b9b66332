package hci

import (
	"fmt"

	"github.com/pkg/errors"
)

// HCI Command Errors [Vol 2, Part D, 1.3]
const (
	ErrSuccess             ErrCommand = 0x00 // Success
	ErrUnknownCommand      ErrCommand = 0x01 // Unknown HCI Command
	ErrConnID              ErrCommand = 0x02 // Unknown Connection Identifier
	ErrHardware            ErrCommand = 0x03 // Hardware Failure
	ErrPageTimeout         ErrCommand = 0x04 // Page Timeout
	ErrAuth                ErrCommand = 0x05 // Authentication Failure
	ErrPINMissing          ErrCommand = 0x06 // PIN or Key Missing
	ErrMemoryCapacity      ErrCommand = 0x07 // Memory Capacity Exceeded
	ErrConnTimeout         ErrCommand = 0x08 // Connection Timeout
	ErrConnLimit           ErrCommand = 0x09 // Connection Limit Exceeded
	ErrACLConnExists       ErrCommand = 0x0B // ACL Connection Already Exists
	ErrDisallowed          ErrCommand = 0x0C // Command Disallowed
	ErrLimitedResource     ErrCommand = 0x0D // Connection Rejected due to Limited Resources
	ErrSecurity            ErrCommand = 0x0E // Connection Rejected Due To Security Reasons
	ErrBDADDR              ErrCommand = 0x0F // Connection Rejected due to Unacceptable BD_ADDR
	ErrConnAcceptTimeout   ErrCommand = 0x10 // Connection Accept Timeout Exceeded
	ErrUnsupportedParams   ErrCommand = 0x11 // Unsupported Feature or Parameter Value
	ErrInvalidParams       ErrCommand = 0x12 // Invalid HCI Command Parameters
	ErrRemoteUser          ErrCommand = 0x13 // Remote User Terminated Connection
	ErrRemoteLowResources  ErrCommand = 0x14 // Remote Device Terminated Connection due to Low Resources
	ErrRemotePowerOff      ErrCommand = 0x15 // Remote Device Terminated Connection due to Power Off
	ErrLocalHost           ErrCommand = 0x16 // Connection Terminated By Local Host
	ErrUnspecified         ErrCommand = 0x1F // Unspecified Error
	ErrLLResponseTimeout   ErrCommand = 0x22 // LMP Response Timeout / LL Response Timeout
	ErrEncNotAccepted      ErrCommand = 0x25 // Encryption Mode Not Acceptable
	ErrControllerBusy      ErrCommand = 0x3A // Controller Busy
	ErrConnParams          ErrCommand = 0x3B // Unacceptable Connection Parameters
	ErrDirAdvTimeout       ErrCommand = 0x3C // Directed Advertising Timeout
	ErrMIC                 ErrCommand = 0x3D // Connection Terminated due to MIC Failure
	ErrEstablished         ErrCommand = 0x3E // Connection Failed to be Established
	ErrUnknownAdvIdentifer ErrCommand = 0x42 // Unknown Advertising Identifier
)

// ErrCommand [Vol 2, Part D, 1.3]
type ErrCommand byte

func (e ErrCommand) Error() string {
	if s, ok := errCmd[e]; ok {
		return s
	}
	return fmt.Sprintf("Unspecified Error (0x%02x)", byte(e))
}

// Status returns the wire value.
func (e ErrCommand) Status() uint8 { return uint8(e) }

// StatusOf maps a Go error, possibly wrapped, to an HCI status. Non-HCI
// errors become Unspecified Error.
func StatusOf(err error) ErrCommand {
	if err == nil {
		return ErrSuccess
	}
	if e, ok := errors.Cause(err).(ErrCommand); ok {
		return e
	}
	return ErrUnspecified
}

var errCmd = map[ErrCommand]string{
	0x00: "Success",
	0x01: "Unknown HCI Command",
	0x02: "Unknown Connection Identifier",
	0x03: "Hardware Failure",
	0x04: "Page Timeout",
	0x05: "Authentication Failure",
	0x06: "PIN or Key Missing",
	0x07: "Memory Capacity Exceeded",
	0x08: "Connection Timeout",
	0x09: "Connection Limit Exceeded",
	0x0B: "ACL Connection Already Exists",
	0x0C: "Command Disallowed",
	0x0D: "Connection Rejected due to Limited Resources",
	0x0E: "Connection Rejected Due To Security Reasons",
	0x0F: "Connection Rejected due to Unacceptable BD_ADDR",
	0x10: "Connection Accept Timeout Exceeded",
	0x11: "Unsupported Feature or Parameter Value",
	0x12: "Invalid HCI Command Parameters",
	0x13: "Remote User Terminated Connection",
	0x14: "Remote Device Terminated Connection due to Low Resources",
	0x15: "Remote Device Terminated Connection due to Power Off",
	0x16: "Connection Terminated By Local Host",
	0x1F: "Unspecified Error",
	0x22: "LMP Response Timeout / LL Response Timeout",
	0x25: "Encryption Mode Not Acceptable",
	0x3A: "Controller Busy",
	0x3B: "Unacceptable Connection Parameters",
	0x3C: "Directed Advertising Timeout",
	0x3D: "Connection Terminated due to MIC Failure",
	0x3E: "Connection Failed to be Established",
	0x42: "Unknown Advertising Identifier",
}
