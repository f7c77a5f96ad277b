package hci

// HCI packet types [Vol 4, Part A, 2].
const (
	PktTypeCommand uint8 = 0x01
	PktTypeACLData uint8 = 0x02
	PktTypeSCOData uint8 = 0x03
	PktTypeEvent   uint8 = 0x04
	PktTypeVendor  uint8 = 0xFF
)

// Opcode group fields [Vol 2, Part E, 5.4.1].
const (
	OGFLinkControl    = 0x01
	OGFController     = 0x03
	OGFInformational  = 0x04
	OGFLEController   = 0x08
	OGFVendorSpecific = 0x3F
)

// Opcode packs an OGF/OCF pair into the 16-bit wire opcode.
func Opcode(ogf, ocf uint16) uint16 {
	return ogf<<10 | ocf&0x03ff
}

// A few well-known opcodes handled by controller emulations.
const (
	OpReset              = 0x0C03 // Opcode(OGFController, 0x003)
	OpReadBDADDR         = 0x1009 // Opcode(OGFInformational, 0x009)
	OpLESetScanEnable    = 0x200C // Opcode(OGFLEController, 0x00C)
	OpLESetScanParameter = 0x200B // Opcode(OGFLEController, 0x00B)
)
