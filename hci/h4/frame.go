package h4

import (
	"github.com/Qoode-AOSP/system-bt/hci"
)

// Header sizes that follow the packet-type byte, per packet type
// [Vol 4, Part A, 2].
const (
	cmdHeaderLength = 3 // opcode (2) + parameter length (1)
	aclHeaderLength = 4 // handle/flags (2) + data length (2)
	scoHeaderLength = 3 // handle/flags (2) + data length (1)
	evtHeaderLength = 2 // event code (1) + parameter length (1)
)

// frame reassembles H4 packets from arbitrarily chunked reads. Input bytes
// accumulate until the declared packet length is satisfied, at which point
// the whole packet (type byte included) is emitted.
type frame struct {
	b []byte
}

func newFrame() *frame {
	return &frame{b: make([]byte, 0, 256)}
}

// Assemble consumes one read's worth of bytes and returns the complete
// packets now available, possibly none. Unknown packet-type bytes are
// skipped one at a time to resynchronize.
func (f *frame) Assemble(in []byte) [][]byte {
	f.b = append(f.b, in...)

	var out [][]byte
	for {
		total, ok := f.packetLength()
		if !ok {
			// Bad type byte; shift one and retry.
			if len(f.b) > 0 {
				f.b = f.b[1:]
				continue
			}
			return out
		}
		if total == 0 || len(f.b) < total {
			return out
		}

		pkt := make([]byte, total)
		copy(pkt, f.b[:total])
		out = append(out, pkt)
		f.b = f.b[total:]
	}
}

// packetLength returns the total on-wire length of the packet at the head
// of the buffer, or 0 if more header bytes are needed. ok is false when the
// head byte is not a known packet type.
func (f *frame) packetLength() (int, bool) {
	if len(f.b) == 0 {
		return 0, true
	}

	var hdr, lenOff, lenSz int
	switch f.b[0] {
	case hci.PktTypeCommand:
		hdr, lenOff, lenSz = cmdHeaderLength, 3, 1
	case hci.PktTypeACLData:
		hdr, lenOff, lenSz = aclHeaderLength, 3, 2
	case hci.PktTypeSCOData:
		hdr, lenOff, lenSz = scoHeaderLength, 3, 1
	case hci.PktTypeEvent:
		hdr, lenOff, lenSz = evtHeaderLength, 2, 1
	default:
		return 0, false
	}

	if len(f.b) < 1+hdr {
		return 0, true
	}

	plen := int(f.b[lenOff])
	if lenSz == 2 {
		plen |= int(f.b[lenOff+1]) << 8
	}
	return 1 + hdr + plen, true
}
