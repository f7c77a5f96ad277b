package h4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qoode-AOSP/system-bt/hci"
)

func TestFrameAssembleWholePacket(t *testing.T) {
	f := newFrame()

	pkts := f.Assemble([]byte{0x01, 0x03, 0x0C, 0x00})
	require.Len(t, pkts, 1)
	assert.Equal(t, []byte{0x01, 0x03, 0x0C, 0x00}, pkts[0])
}

func TestFrameAssembleChunked(t *testing.T) {
	f := newFrame()

	// Command split across three reads.
	assert.Empty(t, f.Assemble([]byte{0x01, 0x0C}))
	assert.Empty(t, f.Assemble([]byte{0x20, 0x02, 0x01}))
	pkts := f.Assemble([]byte{0x00})
	require.Len(t, pkts, 1)
	assert.Equal(t, []byte{0x01, 0x0C, 0x20, 0x02, 0x01, 0x00}, pkts[0])
}

func TestFrameAssembleBackToBack(t *testing.T) {
	f := newFrame()

	in := []byte{
		0x01, 0x03, 0x0C, 0x00, // reset
		0x04, 0x0E, 0x01, 0x00, // event, skipped later by deliver
		0x01, 0x0C, 0x20, 0x01, 0x01, // scan enable
	}
	pkts := f.Assemble(in)
	require.Len(t, pkts, 3)
	assert.Equal(t, byte(0x01), pkts[0][0])
	assert.Equal(t, byte(0x04), pkts[1][0])
	assert.Equal(t, []byte{0x01, 0x0C, 0x20, 0x01, 0x01}, pkts[2])
}

func TestFrameAssembleResync(t *testing.T) {
	f := newFrame()

	// Garbage before a valid command; bad type bytes are shifted out.
	pkts := f.Assemble([]byte{0xAA, 0xBB, 0x01, 0x03, 0x0C, 0x00})
	require.Len(t, pkts, 1)
	assert.Equal(t, []byte{0x01, 0x03, 0x0C, 0x00}, pkts[0])
}

func TestFrameAssembleACLLength(t *testing.T) {
	f := newFrame()

	// ACL with 2-byte little endian data length.
	in := []byte{0x02, 0x01, 0x00, 0x03, 0x00, 0xAA, 0xBB, 0xCC}
	pkts := f.Assemble(in)
	require.Len(t, pkts, 1)
	assert.Equal(t, in, pkts[0])
}

func TestDeliverFiltersCommands(t *testing.T) {
	h := New(nopRWC{})

	var opcodes []uint16
	h.SetCommandSink(func(p *hci.CommandPacket) {
		opcodes = append(opcodes, p.OpCode)
	})

	h.deliver([]byte{0x01, 0x03, 0x0C, 0x00})
	h.deliver([]byte{0x04, 0x0E, 0x01, 0x00}) // event, not a command
	h.deliver([]byte{0x01, 0x03})             // malformed command
	require.Len(t, opcodes, 1)
	assert.Equal(t, uint16(0x0C03), opcodes[0])
}

type nopRWC struct{}

func (nopRWC) Read(p []byte) (int, error)  { return 0, nil }
func (nopRWC) Write(p []byte) (int, error) { return len(p), nil }
func (nopRWC) Close() error                { return nil }
