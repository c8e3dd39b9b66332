package hci

// HCI Packet types
const (
	PktTypeCommand uint8 = 0x01
	PktTypeACLData uint8 = 0x02
	PktTypeSCOData uint8 = 0x03
	PktTypeEvent   uint8 = 0x04
	PktTypeISOData uint8 = 0x05
	PktTypeVendor  uint8 = 0xFF
)

// Packet boundary flags of HCI ACL Data Packet [Vol 2, Part E, 5.4.2].
const (
	PbfHostToControllerStart = 0x00 // Start of a non-automatically-flushable from host to controller.
	PbfContinuing            = 0x01 // Continuing fragment.
	PbfControllerToHostStart = 0x02 // Start of a non-automatically-flushable from controller to host.
	PbfCompleteL2CAPPDU      = 0x03 // A automatically flushable complete PDU. (Not used in LE-U).
)

const (
	RoleCentral    = 0x00
	RolePeripheral = 0x01
)

// Connection handles [Vol 4, Part E, 5.4.2]
const (
	HandleMin      uint16 = 0x0001
	HandleMax      uint16 = 0x0EFF
	ReservedHandle uint16 = 0x0F00
)

// OGF values
const (
	OgfLinkControl     = 0x01
	OgfLinkPolicy      = 0x02
	OgfControllerBB    = 0x03
	OgfInformational   = 0x04
	OgfStatus          = 0x05
	OgfLEController    = 0x08
	OgfVendorSpecific  = 0x3f
	opCodeOgfShift     = 10
	opCodeOcfMask      = 0x03ff
	CommandHeaderLen   = 3
	AclHeaderLen       = 4
	EventHeaderLen     = 2
	MaxCommandParamLen = 0xff
)

// OpCode packs an OGF/OCF pair.
func OpCode(ogf, ocf int) int { return ogf<<opCodeOgfShift | ocf&opCodeOcfMask }

// Ogf unpacks the group field of an opcode.
func Ogf(op int) int { return op >> opCodeOgfShift }

// Ocf unpacks the command field of an opcode.
func Ocf(op int) int { return op & opCodeOcfMask }

// Link types for Connection Complete / Connection Request.
const (
	LinkTypeSCO  = 0x00
	LinkTypeACL  = 0x01
	LinkTypeESCO = 0x02
)
