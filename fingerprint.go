package distribute

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a 64-bit digest of a grouping.
//
// The digest covers the number of groups, every group boundary and every
// element key in order, so two groupings share a fingerprint only when they
// place the same keys into the same groups in the same order. It is handy for
// comparing layouts across runs or as a cache key.
//
// Each value is folded into the running hash as the seed of the next one,
// which avoids building a joined string.
//
// Parameters:
//   - groups: Grouping as returned by Distribute
//   - key: Stable string form of an element; nil uses fmt.Sprint
//
// Returns:
//   - uint64: XXH3 digest of the grouping
func Fingerprint[E any](groups [][]E, key func(E) string) uint64 {
	if key == nil {
		key = func(e E) string { return fmt.Sprint(e) }
	}

	var buf [8]byte
	foldLen := func(n int, seed uint64) uint64 {
		binary.LittleEndian.PutUint64(buf[:], uint64(n)) //nolint:gosec
		return xxh3.HashSeed(buf[:], seed)
	}

	h := foldLen(len(groups), 0)
	for _, group := range groups {
		h = foldLen(len(group), h)
		for _, e := range group {
			h = xxh3.HashStringSeed(key(e), h)
		}
	}

	return h
}
