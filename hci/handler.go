package hci

import (
	"sync"

	bt "github.com/Qoode-AOSP/system-bt"
)

// CommandFunc consumes the parameter bytes of one command. Handlers run
// synchronously on the caller of HandleCommand.
type CommandFunc func(args []byte)

// Transport delivers raw inbound command traffic. The handler registers
// itself as the single sink; the core never calls back into the transport.
type Transport interface {
	SetCommandSink(func(*CommandPacket))
}

// Handler routes command packets to per-opcode handlers registered by
// controller features. Commands with no registered handler are dropped;
// that is the normal path for anything a feature has not claimed.
type Handler struct {
	mu       sync.Mutex
	commands map[uint16]CommandFunc

	log bt.Logger
}

// NewHandler returns an empty dispatch table.
func NewHandler() *Handler {
	return &Handler{
		commands: make(map[uint16]CommandFunc),
		log:      bt.GetLogger().ChildLogger(map[string]interface{}{"pkg": "hci"}),
	}
}

// RegisterCommand maps opcode to fn. A later registration for the same
// opcode replaces the earlier one.
func (h *Handler) RegisterCommand(opcode uint16, fn CommandFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands[opcode] = fn
}

// HandleCommand takes ownership of pkt, looks up its opcode and invokes the
// registered handler with the argument bytes. Unregistered opcodes are a
// silent no-op. The call returns once the handler returns; the packet must
// not be retained.
func (h *Handler) HandleCommand(pkt *CommandPacket) {
	if pkt == nil {
		return
	}

	h.mu.Lock()
	fn, ok := h.commands[pkt.OpCode]
	h.mu.Unlock()

	if !ok {
		h.log.Debugf("no handler for opcode 0x%04X, dropping", pkt.OpCode)
		return
	}

	fn(pkt.Args)
}

// AttachTo registers HandleCommand as the transport's command sink.
func (h *Handler) AttachTo(t Transport) {
	t.SetCommandSink(h.HandleCommand)
}
