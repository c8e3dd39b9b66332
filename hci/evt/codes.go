package evt

// Event codes [Vol 2, Part E, 7.7]
const (
	InquiryCompleteCode               = 0x01
	InquiryResultCode                 = 0x02
	ConnectionCompleteCode            = 0x03
	ConnectionRequestCode             = 0x04
	DisconnectionCompleteCode         = 0x05
	EncryptionChangeCode              = 0x08
	CommandCompleteCode               = 0x0E
	CommandStatusCode                 = 0x0F
	NumberOfCompletedPacketsCode      = 0x13
	EncryptionKeyRefreshCompleteCode  = 0x30
	LEMetaCode                        = 0x3E
	LEConnectionCompleteSubCode       = 0x01
	LEAdvertisingReportSubCode        = 0x02
	LEConnectionUpdateCompleteSubCode = 0x03
	LELongTermKeyRequestSubCode       = 0x05
)

const (
	EncryptionEnabledOff uint8 = 0x00
	EncryptionEnabledOn  uint8 = 0x01
)

// Event mask bits [Vol 2, Part E, 7.3.1] and [Vol 2, Part E, 7.8.1].
// The bit index of an event code is code-1, of an LE subevent subcode-1.
// Encryption Key Refresh Complete (bit 47) is unmasked on top of the reset value.
const (
	DefaultEventMask   uint64 = 0x00009fffffffffff
	DefaultLEEventMask uint64 = 0x000000000000001f
)

// Event is a complete HCI event packet without the H4 type byte.
type Event []byte

// CommandComplete implements Command Complete (0x0E) [Vol 2, Part E, 7.7.14]
type CommandComplete []byte

// CommandStatus implements Command Status (0x0F) [Vol 2, Part E, 7.7.15]
type CommandStatus []byte

// DisconnectionComplete implements Disconnection Complete (0x05) [Vol 2, Part E, 7.7.5]
type DisconnectionComplete []byte

// InquiryComplete implements Inquiry Complete (0x01) [Vol 2, Part E, 7.7.1]
type InquiryComplete []byte

// InquiryResult implements Inquiry Result (0x02) [Vol 2, Part E, 7.7.2]
// with a single response.
type InquiryResult []byte

// ConnectionComplete implements Connection Complete (0x03) [Vol 2, Part E, 7.7.3]
type ConnectionComplete []byte

// ConnectionRequest implements Connection Request (0x04) [Vol 2, Part E, 7.7.4]
type ConnectionRequest []byte

// EncryptionChange implements Encryption Change (0x08) [Vol 2, Part E, 7.7.8]
type EncryptionChange []byte

// EncryptionKeyRefreshComplete implements Encryption Key Refresh Complete (0x30) [Vol 2, Part E, 7.7.39]
type EncryptionKeyRefreshComplete []byte

// NumberOfCompletedPackets implements Number Of Completed Packets (0x13) [Vol 2, Part E, 7.7.19]
type NumberOfCompletedPackets []byte

// LEConnectionComplete implements LE Connection Complete (0x3E:0x01) [Vol 2, Part E, 7.7.65.1]
type LEConnectionComplete []byte

// LEAdvertisingReport implements LE Advertising Report (0x3E:0x02) [Vol 2, Part E, 7.7.65.2]
type LEAdvertisingReport []byte

// LEConnectionUpdateComplete implements LE Connection Update Complete (0x3E:0x03) [Vol 2, Part E, 7.7.65.3]
type LEConnectionUpdateComplete []byte

// LELongTermKeyRequest implements LE Long Term Key Request (0x3E:0x05) [Vol 2, Part E, 7.7.65.5]
type LELongTermKeyRequest []byte
