package bt

// ScanCache persists the last scan result seen per device address.
type ScanCache interface {
	Store(Addr, ScanResult, bool) error
	Load(Addr) (ScanResult, error)
	Clear() error
}
