// Package seeded provides stable pseudo-random selection: the same seed always
// picks the same element, across processes and restarts.
package seeded

import (
	"crypto/sha256"
	"encoding/binary"
)

// Index maps seed to an index in [0, n). The seed is hashed with SHA-256 and
// the first eight bytes, read big-endian, are reduced modulo n.
// It returns 0 when n <= 0.
func Index(seed string, n int) int {
	if n <= 0 {
		return 0
	}

	sum := sha256.Sum256([]byte(seed))

	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n)) //nolint: gosec
}

// Pick returns the element of items selected by seed. The boolean is false
// when items is empty.
func Pick[T any](seed string, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	return items[Index(seed, len(items))], true
}
