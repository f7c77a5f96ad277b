package h4

import (
	"io"
	"sync"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"

	bt "github.com/Qoode-AOSP/system-bt"
	"github.com/Qoode-AOSP/system-bt/hci"
)

// H4 reads uart-style H4 framed traffic from an underlying stream and
// delivers the command packets it finds to the registered sink. It is the
// concrete hci.Transport used when the host talks to an emulated or
// serial-attached controller.
type H4 struct {
	rwc io.ReadWriteCloser

	mu   sync.Mutex
	sink func(*hci.CommandPacket)

	frame *frame

	done chan struct{}
	cmu  sync.Mutex

	log bt.Logger
}

// UARTConfig holds the serial-port settings for OpenUART.
type UARTConfig struct {
	PortName string
	BaudRate uint
}

// OpenUART opens the serial port and returns a transport reading from it.
// Call Start to begin delivering packets.
func OpenUART(cfg UARTConfig) (*H4, error) {
	opts := serial.OpenOptions{
		PortName:              cfg.PortName,
		BaudRate:              cfg.BaudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	}

	sp, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can't open uart")
	}

	return New(sp), nil
}

// New wraps an already-open stream.
func New(rwc io.ReadWriteCloser) *H4 {
	return &H4{
		rwc:   rwc,
		frame: newFrame(),
		done:  make(chan struct{}),
		log:   bt.GetLogger().ChildLogger(map[string]interface{}{"pkg": "h4"}),
	}
}

// SetCommandSink implements hci.Transport.
func (h *H4) SetCommandSink(fn func(*hci.CommandPacket)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sink = fn
}

// Start begins the read loop. Packets arriving before a sink is set are
// dropped.
func (h *H4) Start() {
	go h.rxLoop()
}

// Close stops the read loop and closes the underlying stream.
func (h *H4) Close() error {
	h.cmu.Lock()
	defer h.cmu.Unlock()

	select {
	case <-h.done:
		return nil
	default:
		close(h.done)
		return errors.Wrap(h.rwc.Close(), "can't close h4")
	}
}

func (h *H4) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return h.rwc != nil
	}
}

func (h *H4) rxLoop() {
	tmp := make([]byte, 512)
	for h.isOpen() {
		n, err := h.rwc.Read(tmp)
		if err != nil {
			if err != io.EOF {
				h.log.Debugf("h4 read: %v", err)
			}
			return
		}
		if n == 0 {
			continue
		}

		for _, pkt := range h.frame.Assemble(tmp[:n]) {
			h.deliver(pkt)
		}
	}
}

func (h *H4) deliver(raw []byte) {
	if len(raw) == 0 {
		return
	}

	typ, payload := raw[0], raw[1:]
	if typ != hci.PktTypeCommand {
		// Data and event traffic belongs to other layers.
		h.log.Debugf("skipping packet type 0x%02X, %d bytes", typ, len(payload))
		return
	}

	pkt, err := hci.ParseCommandPacket(payload)
	if err != nil {
		h.log.Warnf("bad command frame: %v", err)
		return
	}

	h.mu.Lock()
	sink := h.sink
	h.mu.Unlock()

	if sink != nil {
		sink(pkt)
	}
}
