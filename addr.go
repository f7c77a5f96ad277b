package bt

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Addr represents a remote device address as reported by the controller,
// formatted as colon-separated hex octets ("01:02:03:0A:0B:0C").
type Addr interface {
	String() string
	Bytes() []byte
}

// NewAddr creates an Addr from its textual form.
func NewAddr(s string) Addr {
	return addr(strings.ToUpper(s))
}

// AddrFromBytes creates an Addr from raw octets in display order.
func AddrFromBytes(b []byte) Addr {
	parts := make([]string, 0, len(b))
	for _, o := range b {
		parts = append(parts, fmt.Sprintf("%02X", o))
	}
	return addr(strings.Join(parts, ":"))
}

type addr string

func (a addr) String() string {
	return string(a)
}

func (a addr) Bytes() []byte {
	hexStr := strings.Replace(a.String(), ":", "", -1)

	out, err := hex.DecodeString(hexStr)
	if err != nil {
		GetLogger().Errorf("error decoding address %v: %v", a.String(), err)
	}

	return out
}
