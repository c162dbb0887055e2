package dbloom

import "github.com/twmb/murmur3"

// HashFunc derives a 32-bit digest of data for a given seed. The filter calls
// it once per hash round with seeds 0..k-1; the false-positive guarantees
// assume the outputs for different seeds are close to independent.
type HashFunc func(seed uint32, data []byte) uint32

// DefaultHash is the seeded murmur3 (x86, 32-bit) hash used by new filters.
var DefaultHash HashFunc = murmur3.SeedSum32
