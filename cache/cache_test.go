package cache

import (
	"os"
	"reflect"
	"testing"

	bt "github.com/Qoode-AOSP/system-bt"
)

func TestScanCache_Store(t *testing.T) {
	defer os.Remove("./test.cache")

	mac := bt.NewAddr("12:34:56:78:90:AB")
	r := bt.NewScanResult(mac, -63, []byte{0x02, 0x01, 0x06})

	c := New("./test.cache")
	if err := c.Store(mac, r, false); err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}

	loaded, err := c.Load(mac)
	if err != nil {
		t.Fatalf("expected to find mac in cache but did not: %s", err)
	}

	if !reflect.DeepEqual(r, loaded) {
		t.Fatalf("stored and loaded results are not equal: %v vs %v", r, loaded)
	}
}

func TestScanCache_Replace(t *testing.T) {
	defer os.Remove("./test.cache")

	mac := bt.NewAddr("12:34:56:78:90:AB")
	first := bt.NewScanResult(mac, -63, []byte{0x02, 0x01, 0x06})
	second := bt.NewScanResult(mac, -40, nil)

	c := New("./test.cache")
	if err := c.Store(mac, first, false); err != nil {
		t.Fatal(err)
	}

	if err := c.Store(mac, second, false); err == nil {
		t.Fatal("expected error storing duplicate without replace")
	}

	if err := c.Store(mac, second, true); err != nil {
		t.Fatalf("replace failed: %s", err)
	}

	loaded, err := c.Load(mac)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.RSSI() != -40 {
		t.Fatalf("expected replaced result, got %v", loaded)
	}
}

func TestScanCache_Miss(t *testing.T) {
	defer os.Remove("./test.cache")

	c := New("./test.cache")
	if _, err := c.Load(bt.NewAddr("AA:BB:CC:DD:EE:FF")); err == nil {
		t.Fatal("expected error loading from empty cache")
	}
}
