package bt

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// A UUID names an application-level registration with the stack. Clients
// generate one per scanner registration; the HAL echoes it back in the
// matching completion so the two can be correlated.
type UUID []byte

// GetRandomUUID returns a random 128-bit UUID.
func GetRandomUUID() UUID {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return UUID(b)
}

// ParseUUID parses a standard-format UUID string, such
// as "34DA3AD1-7110-41A1-B1EF-4430F509CDE7".
func ParseUUID(s string) (UUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 16 {
		return nil, fmt.Errorf("UUIDs must have length 16, got %d", len(b))
	}
	return UUID(b), nil
}

// MustParseUUID parses a standard-format UUID string,
// like ParseUUID, but panics in case of error.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// String hex-encodes a UUID.
func (u UUID) String() string {
	return hex.EncodeToString(u)
}

// Equal returns a boolean reporting whether u and v are the same UUID.
// Equality is the only comparison registrations need.
func (u UUID) Equal(v UUID) bool {
	return bytes.Equal(u, v)
}
