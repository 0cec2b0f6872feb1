package utils

import "hash/fnv"

// HashString returns the 64-bit FNV-1a hash of s.
func HashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Pick maps seed onto an index in [0, n). The same seed and salt always pick
// the same index; n must be positive.
func Pick(seed, salt string, n int) int {
	return int(HashString(salt+"\x00"+seed) % uint64(n))
}
