package hci

import (
	"fmt"
)

// CommandPacket is one inbound HCI command: the 16-bit opcode plus the
// parameter bytes that follow it. The dispatcher owns a packet for the
// duration of handling and drops it when the handler returns.
type CommandPacket struct {
	OpCode uint16
	Args   []byte
}

// ParseCommandPacket decodes the command payload that follows the H4
// packet-type byte: opcode (little endian), parameter length, parameters
// [Vol 2, Part E, 5.4.1].
func ParseCommandPacket(b []byte) (*CommandPacket, error) {
	if len(b) < 3 {
		return nil, fmt.Errorf("command packet too short: %d bytes", len(b))
	}
	plen := int(b[2])
	if plen != len(b[3:]) {
		return nil, fmt.Errorf("command parameter length mismatch: want %d, have %d", plen, len(b[3:]))
	}
	return &CommandPacket{
		OpCode: uint16(b[0]) | uint16(b[1])<<8,
		Args:   b[3:],
	}, nil
}

func (p *CommandPacket) String() string {
	return fmt.Sprintf("cmd 0x%04X % X", p.OpCode, p.Args)
}
