// Package gap implements the scan-session layer: registration of scanner
// instances against the HAL and delivery of decoded scan results.
package gap

import (
	"sync"

	bt "github.com/Qoode-AOSP/system-bt"
	"github.com/Qoode-AOSP/system-bt/hal"
)

// RegisterCallback reports the outcome of one RegisterInstance request.
// On success instance is the live scanner and the caller owns it; on
// failure instance is nil. Invoked exactly once per accepted request.
type RegisterCallback func(status bt.BLEStatus, uuid bt.UUID, instance bt.Instance)

type pendingCall struct {
	uuid bt.UUID
	cb   RegisterCallback
}

// ScannerFactory brokers scanner registrations. It tracks requests awaiting
// a HAL completion and the identities of live scanners, so that any given
// UUID has at most one registration in flight or alive at a time. The
// factory is the HAL's observer: completions resolve pending requests and
// advertising reports fan out to the live scanners.
type ScannerFactory struct {
	mu      sync.Mutex
	pending map[string]pendingCall
	live    map[string]*Scanner

	adapter bt.Adapter
	hal     hal.ScannerHAL

	log bt.Logger
}

// Option configures a ScannerFactory.
type Option func(*ScannerFactory)

// WithLogger overrides the factory's logger.
func WithLogger(l bt.Logger) Option {
	return func(f *ScannerFactory) {
		f.log = l
	}
}

// NewScannerFactory returns a factory issuing registrations through h and
// gating scans on adapter.
func NewScannerFactory(adapter bt.Adapter, h hal.ScannerHAL, opts ...Option) *ScannerFactory {
	f := &ScannerFactory{
		pending: make(map[string]pendingCall),
		live:    make(map[string]*Scanner),
		adapter: adapter,
		hal:     h,
		log:     bt.GetLogger().ChildLogger(map[string]interface{}{"pkg": "gap"}),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// RegisterInstance requests a scanner slot for uuid. It returns false, with
// no HAL call, when uuid already has a registration pending or a scanner
// alive. It also returns false when the HAL rejects the request outright;
// the pending entry is rolled back and no callback will fire. On true, cb
// fires exactly once when the HAL's completion arrives.
func (f *ScannerFactory) RegisterInstance(uuid bt.UUID, cb RegisterCallback) bool {
	key := uuid.String()

	f.mu.Lock()
	if _, ok := f.pending[key]; ok {
		f.mu.Unlock()
		f.log.Warnf("scanner registration for %v already in progress", uuid)
		return false
	}
	if _, ok := f.live[key]; ok {
		f.mu.Unlock()
		f.log.Warnf("scanner for %v already registered", uuid)
		return false
	}
	f.pending[key] = pendingCall{uuid: uuid, cb: cb}
	f.mu.Unlock()

	if status := f.hal.RegisterScanner(uuid); !status.Success() {
		f.mu.Lock()
		delete(f.pending, key)
		f.mu.Unlock()
		f.log.Errorf("HAL RegisterScanner failed: %v", status)
		return false
	}

	return true
}

// OnScannerRegistered implements hal.ScannerObserver. Completions for a
// UUID with no pending request are stale or meant for another stack client
// and are dropped.
func (f *ScannerFactory) OnScannerRegistered(status bt.BLEStatus, scannerID int, uuid bt.UUID) {
	key := uuid.String()

	f.mu.Lock()
	p, ok := f.pending[key]
	if !ok {
		f.mu.Unlock()
		f.log.Debugf("ignoring completion for unknown uuid %v", uuid)
		return
	}
	delete(f.pending, key)

	if status != bt.BLEStatusSuccess {
		f.mu.Unlock()
		p.cb(bt.BLEStatusFailure, p.uuid, nil)
		return
	}

	s := newScanner(f, f.hal, f.adapter, scannerID, p.uuid)
	f.live[key] = s
	f.mu.Unlock()

	// Outside the lock: the callback may immediately register another
	// instance or close this one.
	p.cb(bt.BLEStatusSuccess, p.uuid, s)
}

// OnScanResult implements hal.ScannerObserver. Every live scanner sees
// every report; each one filters by its own scan state.
func (f *ScannerFactory) OnScanResult(addr bt.Addr, rssi int, record []byte) {
	f.mu.Lock()
	ss := make([]*Scanner, 0, len(f.live))
	for _, s := range f.live {
		ss = append(ss, s)
	}
	f.mu.Unlock()

	for _, s := range ss {
		s.OnScanResult(addr, rssi, record)
	}
}

// release frees uuid for re-registration. Called by Scanner.Close.
func (f *ScannerFactory) release(uuid bt.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.live, uuid.String())
}
