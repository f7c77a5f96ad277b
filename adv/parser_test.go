package adv

import (
	"bytes"
	"reflect"
	"testing"
)

type testPdu struct {
	b []byte
}

func (t *testPdu) add(recTyp byte, recBytes []byte) {
	lb := byte(len(recBytes) + 1)
	t.b = append(t.b, lb, recTyp)
	t.b = append(t.b, recBytes...)
}

func (t *testPdu) addBad(badRecLen byte, recTyp byte, recBytes []byte) {
	t.b = append(t.b, badRecLen, recTyp)
	t.b = append(t.b, recBytes...)
}

func (t *testPdu) bytes() []byte {
	return t.b
}

func TestTrimRecordEmpty(t *testing.T) {
	if got := TrimRecord(nil); len(got) != 0 {
		t.Fatalf("nil input: want empty, got % X", got)
	}
	if got := TrimRecord([]byte{}); len(got) != 0 {
		t.Fatalf("empty input: want empty, got % X", got)
	}

	// a lone zero length byte is all padding
	if got := TrimRecord([]byte{0x00}); len(got) != 0 {
		t.Fatalf("{0x00}: want empty, got % X", got)
	}
}

func TestTrimRecordPaddingTerminator(t *testing.T) {
	// flags structure followed by a padding terminator
	in := []byte{0x02, 0x01, 0x00, 0x00}
	want := []byte{0x02, 0x01, 0x00}
	if got := TrimRecord(in); !bytes.Equal(got, want) {
		t.Fatalf("want % X, got % X", want, got)
	}

	// padding after the terminator is dropped too, whatever it holds
	in = []byte{0x02, 0x01, 0x06, 0x00, 0xDE, 0xAD}
	want = []byte{0x02, 0x01, 0x06}
	if got := TrimRecord(in); !bytes.Equal(got, want) {
		t.Fatalf("want % X, got % X", want, got)
	}
}

func TestTrimRecordTruncatedStructure(t *testing.T) {
	p := testPdu{}
	p.add(TypeFlags, []byte{0x06})
	valid := len(p.bytes())
	p.addBad(0x10, TypeNameComp, []byte("ab")) // claims 16, has 3

	got := TrimRecord(p.bytes())
	if !bytes.Equal(got, p.bytes()[:valid]) {
		t.Fatalf("want % X, got % X", p.bytes()[:valid], got)
	}

	// first structure already truncated: nothing valid
	if got := TrimRecord([]byte{0x05, 0x09, 0x61}); len(got) != 0 {
		t.Fatalf("want empty, got % X", got)
	}
}

func TestTrimRecordWellFormed(t *testing.T) {
	// 31 back-to-back minimal structures (length byte + type byte), 62
	// bytes total; all of it is valid and survives untouched.
	in := bytes.Repeat([]byte{0x01, 0x00}, 31)
	got := TrimRecord(in)
	if !bytes.Equal(got, in) {
		t.Fatalf("well-formed input altered: %d -> %d bytes", len(in), len(got))
	}
}

func TestRecords(t *testing.T) {
	p := testPdu{}
	p.add(TypeFlags, []byte{0x06})
	p.add(TypeNameComp, []byte("kore"))
	p.b = append(p.b, 0x00, 0xFF) // padding

	rr := Records(p.bytes())
	want := []Record{
		{Type: TypeFlags, Data: []byte{0x06}},
		{Type: TypeNameComp, Data: []byte("kore")},
	}
	if !reflect.DeepEqual(rr, want) {
		t.Fatalf("want %v, got %v", want, rr)
	}
}

func TestAccessors(t *testing.T) {
	p := testPdu{}
	p.add(TypeFlags, []byte{0x1A})
	p.add(TypeUUID16Comp, []byte{0x0D, 0x18, 0x0F, 0x18})
	p.add(TypeNameShort, []byte("hrm"))
	p.add(TypeTxPower, []byte{0xF4}) // -12 dBm
	p.add(TypeMfgData, []byte{0x4C, 0x00, 0x02})

	raw := p.bytes()

	if got := Flags(raw); got != 0x1A {
		t.Fatalf("flags: want 0x1A, got 0x%02X", got)
	}
	if got := LocalName(raw); got != "hrm" {
		t.Fatalf("name: want hrm, got %q", got)
	}
	if pwr, ok := TxPower(raw); !ok || pwr != -12 {
		t.Fatalf("txpwr: want -12, got %v %v", pwr, ok)
	}
	if got := ManufacturerData(raw); !bytes.Equal(got, []byte{0x4C, 0x00, 0x02}) {
		t.Fatalf("mfg: got % X", got)
	}
	uu := ServiceUUIDs16(raw)
	if !reflect.DeepEqual(uu, []uint16{0x180D, 0x180F}) {
		t.Fatalf("uuid16: got %v", uu)
	}
}

func TestAccessorsPreferCompleteName(t *testing.T) {
	p := testPdu{}
	p.add(TypeNameShort, []byte("hr"))
	p.add(TypeNameComp, []byte("heart rate"))

	if got := LocalName(p.bytes()); got != "heart rate" {
		t.Fatalf("want complete name, got %q", got)
	}
}
