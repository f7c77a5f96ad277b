package cache

import (
	"fmt"
	"io/ioutil"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	bt "github.com/Qoode-AOSP/system-bt"
)

type scanCache struct {
	filename string
	lock     sync.RWMutex
}

// New returns a file-backed bt.ScanCache keeping the last scan result seen
// per device address.
func New(filename string) bt.ScanCache {
	sc := scanCache{
		filename: filename,
	}

	return &sc
}

func (sc *scanCache) Store(mac bt.Addr, result bt.ScanResult, replace bool) error {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	cache, err := sc.loadExisting()
	if err != nil {
		return err
	}

	_, ok := cache[mac.String()]
	if ok && !replace {
		return fmt.Errorf("cache already contains a scan result for %s", mac.String())
	}

	cache[mac.String()] = result

	return sc.storeCache(cache)
}

func (sc *scanCache) Load(mac bt.Addr) (bt.ScanResult, error) {
	sc.lock.RLock()
	defer sc.lock.RUnlock()

	cache, err := sc.loadExisting()
	if err != nil {
		return bt.ScanResult{}, err
	}

	r, ok := cache[mac.String()]
	if !ok {
		return bt.ScanResult{}, fmt.Errorf("scan result for %s not found in cache", mac.String())
	}

	return r, nil
}

func (sc *scanCache) Clear() error {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	return os.Remove(sc.filename)
}

func (sc *scanCache) loadExisting() (map[string]bt.ScanResult, error) {
	_, err := os.Stat(sc.filename)
	if os.IsNotExist(err) {
		return map[string]bt.ScanResult{}, nil
	}

	in, err := ioutil.ReadFile(sc.filename)
	if err != nil {
		return nil, err
	}

	var cache map[string]bt.ScanResult
	err = jsoniter.Unmarshal(in, &cache)
	if err != nil {
		return nil, err
	}

	return cache, nil
}

func (sc *scanCache) storeCache(cache map[string]bt.ScanResult) error {
	out, err := jsoniter.Marshal(cache)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(sc.filename, out, 0644)
}
