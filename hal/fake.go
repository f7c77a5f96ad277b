package hal

import (
	"sync"

	bt "github.com/Qoode-AOSP/system-bt"
)

// FakeGattInterface is an in-memory ScannerHAL for tests and tooling. Calls
// are recorded, immediate statuses are programmable per call, and the two
// Notify methods drive the asynchronous side exactly the way a vendor HAL
// would.
type FakeGattInterface struct {
	mu sync.Mutex

	observers []ScannerObserver

	registerStatuses   []bt.Status
	unregisterStatuses []bt.Status
	scanStatuses       []bt.Status

	RegisterCalls   []bt.UUID
	UnregisterCalls []int
	ScanCalls       []bool
}

// NewFakeGattInterface returns a fake whose calls all succeed until
// queued otherwise.
func NewFakeGattInterface() *FakeGattInterface {
	return &FakeGattInterface{}
}

// AddObserver attaches an observer for Notify fan-out.
func (f *FakeGattInterface) AddObserver(o ScannerObserver) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, o)
}

// RemoveObserver detaches a previously added observer.
func (f *FakeGattInterface) RemoveObserver(o ScannerObserver) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, cur := range f.observers {
		if cur == o {
			f.observers = append(f.observers[:i], f.observers[i+1:]...)
			return
		}
	}
}

// QueueRegisterStatus appends immediate statuses for upcoming
// RegisterScanner calls, consumed in order.
func (f *FakeGattInterface) QueueRegisterStatus(ss ...bt.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerStatuses = append(f.registerStatuses, ss...)
}

// QueueUnregisterStatus appends immediate statuses for upcoming
// UnregisterScanner calls.
func (f *FakeGattInterface) QueueUnregisterStatus(ss ...bt.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregisterStatuses = append(f.unregisterStatuses, ss...)
}

// QueueScanStatus appends immediate statuses for upcoming Scan calls.
func (f *FakeGattInterface) QueueScanStatus(ss ...bt.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scanStatuses = append(f.scanStatuses, ss...)
}

// RegisterScanner implements ScannerHAL.
func (f *FakeGattInterface) RegisterScanner(uuid bt.UUID) bt.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls = append(f.RegisterCalls, uuid)
	return pop(&f.registerStatuses)
}

// UnregisterScanner implements ScannerHAL.
func (f *FakeGattInterface) UnregisterScanner(scannerID int) bt.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UnregisterCalls = append(f.UnregisterCalls, scannerID)
	return pop(&f.unregisterStatuses)
}

// Scan implements ScannerHAL.
func (f *FakeGattInterface) Scan(enable bool) bt.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ScanCalls = append(f.ScanCalls, enable)
	return pop(&f.scanStatuses)
}

// NotifyRegisterScannerCallback delivers a registration completion to every
// attached observer.
func (f *FakeGattInterface) NotifyRegisterScannerCallback(status bt.BLEStatus, scannerID int, uuid bt.UUID) {
	for _, o := range f.snapshot() {
		o.OnScannerRegistered(status, scannerID, uuid)
	}
}

// NotifyScanResultCallback delivers a raw advertising report to every
// attached observer.
func (f *FakeGattInterface) NotifyScanResultCallback(addr bt.Addr, rssi int, record []byte) {
	for _, o := range f.snapshot() {
		o.OnScanResult(addr, rssi, record)
	}
}

func (f *FakeGattInterface) snapshot() []ScannerObserver {
	f.mu.Lock()
	defer f.mu.Unlock()
	oo := make([]ScannerObserver, len(f.observers))
	copy(oo, f.observers)
	return oo
}

func pop(ss *[]bt.Status) bt.Status {
	if len(*ss) == 0 {
		return bt.StatusSuccess
	}
	s := (*ss)[0]
	*ss = (*ss)[1:]
	return s
}
