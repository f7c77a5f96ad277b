package gap

import (
	"sync"

	bt "github.com/Qoode-AOSP/system-bt"
	"github.com/Qoode-AOSP/system-bt/adv"
	"github.com/Qoode-AOSP/system-bt/hal"
)

// Delegate receives decoded scan results from one scanner.
type Delegate interface {
	OnScanResult(scanner *Scanner, result bt.ScanResult)
}

// ScanSettings configures a scan session. The fields are carried through to
// the HAL untouched.
// TODO(scan-params): translate mode and report delay into LE scan
// parameters once the HAL call accepts them.
type ScanSettings struct {
	Mode          int
	ReportDelayMs int
}

// ScanFilter restricts which reports a session wants. Carried through to
// the HAL untouched, like ScanSettings.
type ScanFilter struct {
	DeviceAddress string
	ServiceUUID   bt.UUID
}

// Scanner is one live scan registration. It is created by the factory when
// a registration completes and from then on belongs to whoever received it
// through the RegisterCallback. Close releases the hardware slot.
type Scanner struct {
	factory *ScannerFactory
	hal     hal.ScannerHAL
	adapter bt.Adapter

	scannerID int
	uuid      bt.UUID

	mu          sync.Mutex
	scanStarted bool
	delegate    Delegate
	closed      bool

	log bt.Logger
}

func newScanner(f *ScannerFactory, h hal.ScannerHAL, adapter bt.Adapter, scannerID int, uuid bt.UUID) *Scanner {
	return &Scanner{
		factory:   f,
		hal:       h,
		adapter:   adapter,
		scannerID: scannerID,
		uuid:      uuid,
		log: bt.GetLogger().ChildLogger(map[string]interface{}{
			"pkg":     "gap",
			"scanner": scannerID,
		}),
	}
}

// InstanceID implements bt.Instance.
func (s *Scanner) InstanceID() int {
	return s.scannerID
}

// AppIdentifier implements bt.Instance.
func (s *Scanner) AppIdentifier() bt.UUID {
	return s.uuid
}

// StartScan begins a scan session. It refuses without touching the HAL
// while the adapter is down, and reports false when the HAL declines.
func (s *Scanner) StartScan(settings ScanSettings, filters []ScanFilter) bool {
	if !s.adapter.IsEnabled() {
		s.log.Warn("cannot start scan while adapter is disabled")
		return false
	}

	if status := s.hal.Scan(true); !status.Success() {
		s.log.Errorf("HAL Scan(true) failed: %v", status)
		return false
	}

	s.mu.Lock()
	s.scanStarted = true
	s.mu.Unlock()
	return true
}

// StopScan ends the scan session. State is left untouched when the HAL
// declines.
func (s *Scanner) StopScan() bool {
	if status := s.hal.Scan(false); !status.Success() {
		s.log.Errorf("HAL Scan(false) failed: %v", status)
		return false
	}

	s.mu.Lock()
	s.scanStarted = false
	s.mu.Unlock()
	return true
}

// SetDelegate replaces the result delegate. nil silences delivery without
// stopping the scan.
func (s *Scanner) SetDelegate(d Delegate) {
	s.mu.Lock()
	s.delegate = d
	s.mu.Unlock()
}

// OnScanResult feeds one raw advertising report into the session. Reports
// arriving while no scan is running are dropped. The payload is trimmed to
// its valid AD prefix before delivery; with no delegate set the result is
// dropped, not queued.
func (s *Scanner) OnScanResult(addr bt.Addr, rssi int, record []byte) {
	s.mu.Lock()
	started, d := s.scanStarted, s.delegate
	s.mu.Unlock()

	if !started {
		return
	}

	res := bt.NewScanResult(addr, rssi, adv.TrimRecord(record))
	if d == nil {
		return
	}
	d.OnScanResult(s, res)
}

// Close implements bt.Instance. The hardware slot is released with a
// best-effort unregister; a HAL failure is logged and otherwise ignored.
// Safe to call more than once, the unregister happens only on the first.
func (s *Scanner) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if status := s.hal.UnregisterScanner(s.scannerID); !status.Success() {
		s.log.Warnf("HAL UnregisterScanner(%d) failed: %v", s.scannerID, status)
	}
	if s.factory != nil {
		s.factory.release(s.uuid)
	}
	return nil
}
