package bt

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ScanResult is one decoded advertising report: the remote address, the
// received signal strength, and the advertising payload with any trailing
// padding and truncated structures stripped. Results are values; the stack
// builds a fresh one per report and keeps no reference after delivery.
type ScanResult struct {
	addr       Addr
	rssi       int
	scanRecord []byte
}

// ScanResultMapKeys ...
var ScanResultMapKeys = struct {
	MAC    string
	RSSI   string
	Record string
}{
	MAC:    "mac",
	RSSI:   "rssi",
	Record: "record",
}

// NewScanResult builds a ScanResult. The record is copied; callers may
// reuse their buffer.
func NewScanResult(a Addr, rssi int, record []byte) ScanResult {
	r := make([]byte, len(record))
	copy(r, record)
	return ScanResult{addr: a, rssi: rssi, scanRecord: r}
}

// Address returns the remote device address.
func (s ScanResult) Address() Addr {
	return s.addr
}

// RSSI returns the received signal strength in dBm.
func (s ScanResult) RSSI() int {
	return s.rssi
}

// ScanRecord returns the decoded advertising payload. May be empty.
func (s ScanResult) ScanRecord() []byte {
	return s.scanRecord
}

func (s ScanResult) String() string {
	return fmt.Sprintf("ScanResult{%v, %d dBm, %d bytes}", s.addr, s.rssi, len(s.scanRecord))
}

// ToMap ...
func (s ScanResult) ToMap() map[string]interface{} {
	return map[string]interface{}{
		ScanResultMapKeys.MAC:    s.addr.String(),
		ScanResultMapKeys.RSSI:   s.rssi,
		ScanResultMapKeys.Record: s.scanRecord,
	}
}

type scanResultJSON struct {
	MAC    string `json:"mac"`
	RSSI   int    `json:"rssi"`
	Record []byte `json:"record"`
}

// MarshalJSON implements json.Marshaler.
func (s ScanResult) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(scanResultJSON{
		MAC:    s.addr.String(),
		RSSI:   s.rssi,
		Record: s.scanRecord,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ScanResult) UnmarshalJSON(b []byte) error {
	var in scanResultJSON
	if err := jsoniter.Unmarshal(b, &in); err != nil {
		return err
	}
	s.addr = NewAddr(in.MAC)
	s.rssi = in.RSSI
	s.scanRecord = in.Record
	return nil
}
