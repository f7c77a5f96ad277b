// Package hal defines the boundary to the Bluetooth hardware abstraction
// layer. The core only ever talks to these interfaces; production code binds
// them to the vendor HAL, tests bind them to FakeGattInterface.
package hal

import (
	bt "github.com/Qoode-AOSP/system-bt"
)

// ScannerHAL is the scan-related capability set of the GATT HAL. Each call
// returns the HAL's immediate status; register requests additionally
// complete later through a ScannerObserver, any number of callbacks in any
// order across identities.
type ScannerHAL interface {
	// RegisterScanner asks the controller for a scanner slot bound to
	// uuid. The eventual outcome arrives via OnScannerRegistered with the
	// same uuid echoed back.
	RegisterScanner(uuid bt.UUID) bt.Status

	// UnregisterScanner releases a previously assigned scanner slot.
	UnregisterScanner(scannerID int) bt.Status

	// Scan turns LE scanning on or off.
	Scan(enable bool) bt.Status
}

// ScannerObserver receives the HAL's asynchronous traffic: registration
// completions and raw advertising reports.
type ScannerObserver interface {
	OnScannerRegistered(status bt.BLEStatus, scannerID int, uuid bt.UUID)
	OnScanResult(addr bt.Addr, rssi int, record []byte)
}
