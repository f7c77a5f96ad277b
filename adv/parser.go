package adv

import (
	"fmt"
)

// AD structure types assigned by the GAP profile.
// https://www.bluetooth.org/en-us/specification/assigned-numbers/generic-access-profile
const (
	TypeFlags       = 0x01
	TypeUUID16Inc   = 0x02
	TypeUUID16Comp  = 0x03
	TypeUUID32Inc   = 0x04
	TypeUUID32Comp  = 0x05
	TypeUUID128Inc  = 0x06
	TypeUUID128Comp = 0x07
	TypeNameShort   = 0x08
	TypeNameComp    = 0x09
	TypeTxPower     = 0x0A
	TypeSvcData16   = 0x16
	TypeMfgData     = 0xFF
)

// A Record is one decoded AD structure: the type byte and its data bytes.
type Record struct {
	Type byte
	Data []byte
}

// TrimRecord walks the raw advertising report and returns the prefix made of
// the fully valid AD structures, preserving their original byte layout.
//
// The walk stops at a zero length byte: everything from there on is padding
// the controller appended to fill the report and is dropped, the zero byte
// included. It also stops at a structure whose declared length runs past the
// end of the buffer; the partial structure is dropped rather than emitted
// truncated. Malformed input therefore degrades to a shorter valid prefix,
// never to an error.
func TrimRecord(raw []byte) []byte {
	end := 0
	for end < len(raw) {
		length := int(raw[end])
		if length == 0 {
			// padding terminator
			break
		}
		if end+1+length > len(raw) {
			// truncated structure
			break
		}
		end += 1 + length
	}

	out := make([]byte, end)
	copy(out, raw[:end])
	return out
}

// Records splits the valid prefix of raw into individual AD structures.
func Records(raw []byte) []Record {
	b := TrimRecord(raw)

	var rr []Record
	for i := 0; i < len(b); {
		length := int(b[i])
		rr = append(rr, Record{
			Type: b[i+1],
			Data: b[i+2 : i+1+length],
		})
		i += 1 + length
	}
	return rr
}

// find returns the first record of one of the given types.
func find(raw []byte, types ...byte) (Record, bool) {
	for _, r := range Records(raw) {
		for _, t := range types {
			if r.Type == t {
				return r, true
			}
		}
	}
	return Record{}, false
}

// LocalName returns the complete local name if present, else the shortened
// one, else "".
func LocalName(raw []byte) string {
	if r, ok := find(raw, TypeNameComp); ok {
		return string(r.Data)
	}
	if r, ok := find(raw, TypeNameShort); ok {
		return string(r.Data)
	}
	return ""
}

// Flags returns the advertising flags byte, or 0 if absent.
func Flags(raw []byte) byte {
	r, ok := find(raw, TypeFlags)
	if !ok || len(r.Data) < 1 {
		return 0
	}
	return r.Data[0]
}

// TxPower returns the advertised tx power level in dBm.
func TxPower(raw []byte) (int, bool) {
	r, ok := find(raw, TypeTxPower)
	if !ok || len(r.Data) < 1 {
		return 0, false
	}
	return int(int8(r.Data[0])), true
}

// ManufacturerData returns the manufacturer specific data field, if any.
func ManufacturerData(raw []byte) []byte {
	r, ok := find(raw, TypeMfgData)
	if !ok {
		return nil
	}
	return r.Data
}

// ServiceUUIDs16 collects the 16-bit service UUIDs from the complete and
// incomplete lists. A list whose length is not a multiple of two is skipped.
func ServiceUUIDs16(raw []byte) []uint16 {
	var uu []uint16
	for _, r := range Records(raw) {
		if r.Type != TypeUUID16Inc && r.Type != TypeUUID16Comp {
			continue
		}
		if len(r.Data)%2 != 0 {
			continue
		}
		for i := 0; i+1 < len(r.Data); i += 2 {
			uu = append(uu, uint16(r.Data[i])|uint16(r.Data[i+1])<<8)
		}
	}
	return uu
}

func (r Record) String() string {
	return fmt.Sprintf("ad{type 0x%02X, % X}", r.Type, r.Data)
}
