package bt

import "fmt"

// Status is the immediate return of a HAL call, mirroring the stack's
// bt_status_t. Anything other than StatusSuccess counts as a failure at
// this layer; no code here retries on any of them.
type Status int

const (
	StatusSuccess Status = iota
	StatusFail
	StatusNotReady
	StatusNoMemory
	StatusBusy
	StatusUnsupported
)

func (s Status) Success() bool {
	return s == StatusSuccess
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFail:
		return "fail"
	case StatusNotReady:
		return "not ready"
	case StatusNoMemory:
		return "no memory"
	case StatusBusy:
		return "busy"
	case StatusUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// BLEStatus is the asynchronous outcome delivered through a registration
// completion callback.
type BLEStatus int

const (
	BLEStatusSuccess BLEStatus = iota
	BLEStatusFailure
)

func (s BLEStatus) String() string {
	if s == BLEStatusSuccess {
		return "success"
	}
	return "failure"
}
