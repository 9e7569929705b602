package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// SearchKey derives the cache key for a search over the given inventory.
// The key is a content hash over sorted label=count pairs, so logically
// equal inventories hit the same entry regardless of map iteration order.
// Zero-count entries still contribute: they alter which flip partners
// share supply, and therefore the result.
func SearchKey(supply map[string]int) string {
	pairs := make([]string, 0, len(supply))
	for label, count := range supply {
		pairs = append(pairs, fmt.Sprintf("%s=%d", label, count))
	}
	slices.Sort(pairs)
	return "search:" + Hash([]byte(strings.Join(pairs, ",")))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
