package utils

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
)

// GenerateReference returns a random upper-cased base-30 order reference.
// Collisions are not checked; at this system's scale a 64-bit random space
// makes them negligible, and callers tolerate a theoretical duplicate.
func GenerateReference() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; the zero value
		// still yields a usable reference.
		return "0"
	}
	n := binary.BigEndian.Uint64(buf[:])
	return strings.ToUpper(strconv.FormatUint(n, 30))
}
