/*
Package dbloom provides data structures and methods for creating Deletable
Bloom filters.

A Deletable Bloom filter, described by Rothenberg, Macapuna, Verdi and
Magalhaes in "The Deletable Bloom filter - A new member of the Bloom family"
(http://arxiv.org/pdf/1005.0352.pdf), is a representation of a set of _n_
items that supports membership queries like a classic Bloom filter, and
additionally supports removing items without introducing false negatives.

The filter keeps two bit arrays: the buckets that hold regular Bloom filter
membership bits, and a smaller collision array with one bit per contiguous
region of buckets. Whenever an insertion finds a bucket bit already set, the
region covering that bucket is marked as collided. On removal, only bucket
bits in collision-free regions are cleared; bits in collided regions stay set
so that other items mapping there keep answering true. The r parameter is the
number of collision bits and controls the deletability of elements; refer to
the paper for selecting an optimal value.

There is a zero probability of false negatives: any item added (and not since
removed) always tests true. False positives occur at a rate close to the
configured target, drifting upward as the filter fills or as removals leave
stale bits behind in collided regions.

This filter accepts keys for adding, testing and removing as []byte. Thus, to
track a string item, "Love":

	filter, err := dbloom.New(1000, 100, 0.01, dbloom.NewMemoryBitSet(), dbloom.NewMemoryBitSet())
	if err != nil {
	    ...
	}
	filter.Add([]byte("Love"))

Similarly, to test if "Love" is in the filter:

	if filter.Test([]byte("Love"))

and to remove it again:

	if filter.TestAndRemove([]byte("Love"))

For numeric data, I recommend that you look into the binary/encoding library.
But, for example, to add an uint32 to the filter:

	i := uint32(100)
	n1 := make([]byte, 4)
	binary.BigEndian.PutUint32(n1, i)
	filter.Add(n1)

Finally, there is a method to empirically estimate the false positive rate of
a Deletable Bloom filter sized for n items with r collision bits:

	if dbloom.EstimateFalsePositiveRate(n, r, 0.01, buckets, collisions) > 0.015 ...

The EstimateFalsePositiveRate function creates a temporary filter. It is
also relatively expensive and only meant for validation.

The filter is not safe for concurrent use; callers that share one across
goroutines must provide their own locking.
*/
package dbloom

import (
	"encoding/binary"
	"errors"
	"math"
)

// fillRatio is the bucket fill ratio the sizing formulas optimize for.
const fillRatio = 0.5

var (
	// ErrFalsePositiveRate is returned by New when the target false-positive
	// rate is outside the open interval (0, 1).
	ErrFalsePositiveRate = errors.New("dbloom: false-positive rate must be in (0, 1)")
	// ErrCollisionBits is returned by New when r is zero or too large for the
	// derived bit budget, which would produce a degenerate filter.
	ErrCollisionBits = errors.New("dbloom: collision bits must be in (0, OptimalM(n, fpRate)/2]")
)

// Filter describes a Deletable Bloom filter tracking a set of byte keys.
type Filter interface {
	// Capacity returns the size of the bucket array, _m_.
	Capacity() uint
	// K returns the number of hash functions used by the filter.
	K() uint
	// Count returns the number of items in the filter: the number of
	// additions minus the number of successful removals since the last reset.
	Count() uint
	// Buckets returns the underlying membership bitset for this filter.
	Buckets() BitSet
	// Collisions returns the underlying collision-region bitset.
	Collisions() BitSet
	// Add data to the filter. Returns the filter (allows chaining)
	Add(data []byte) Filter
	// AddString to the filter. Returns the filter (allows chaining)
	AddString(data string) Filter
	// Test returns true if the data is in the filter, false otherwise.
	// If true, the result might be a false positive. If false, the data
	// is definitely not in the set.
	Test(data []byte) bool
	// TestString returns true if the string is in the filter, false otherwise.
	// If true, the result might be a false positive. If false, the data
	// is definitely not in the set.
	TestString(data string) bool
	// TestAndAdd is the equivalent to calling Test(data) then Add(data).
	// Returns the result of Test.
	TestAndAdd(data []byte) bool
	// TestAndAddString is the equivalent to calling Test(string) then
	// Add(string). Returns the result of Test.
	TestAndAddString(data string) bool
	// TestAndRemove tests for membership of the data and removes it from the
	// filter if present. Returns true if the data was a member, false if not.
	// When false is returned nothing was mutated. Cleared bits are restricted
	// to collision-free regions, so membership of other items is preserved.
	TestAndRemove(data []byte) bool
	// TestAndRemoveString tests for membership of the string and removes it
	// from the filter if present. Returns true if it was a member.
	TestAndRemoveString(data string) bool
	// Reset restores the filter to its initial state: both bit arrays zeroed
	// and the count at zero. Returns the filter (allows chaining)
	Reset() Filter
	// SetHash replaces the seeded hash function used to derive bucket
	// indices. Mixing hash functions across the lifetime of one filter
	// breaks membership answers; only call this right after construction.
	SetHash(h HashFunc)
}

// OptimalM returns the total bit budget for a filter expected to hold n items
// at the target false-positive rate, assuming an optimal fill ratio of 0.5.
func OptimalM(n uint, fpRate float64) uint {
	return uint(math.Ceil(float64(n) / ((math.Log(fillRatio) *
		math.Log(1-fillRatio)) / math.Abs(math.Log(fpRate)))))
}

// OptimalK returns the number of hash functions for the target
// false-positive rate.
func OptimalK(fpRate float64) uint {
	return uint(math.Ceil(math.Log2(1 / fpRate)))
}

// New creates a Deletable Bloom filter optimized to store n items with the
// target false-positive rate fpRate. The r value is the number of bits used
// to store collision information and controls how often elements are fully
// deletable; refer to the paper for selecting an optimal value. The bucket
// and collision bit arrays are stored in the two provided BitSets, which are
// initialized (zeroed) here.
//
// r must be positive and small enough to leave at least r buckets behind,
// i.e. r <= OptimalM(n, fpRate)/2; otherwise ErrCollisionBits is returned.
func New(n, r uint, fpRate float64, buckets, collisions BitSet) (Filter, error) {
	if fpRate <= 0 || fpRate >= 1 {
		return nil, ErrFalsePositiveRate
	}
	optM := OptimalM(n, fpRate)
	if r == 0 || r >= optM || (optM-r)/r == 0 {
		return nil, ErrCollisionBits
	}
	var (
		m = optM - r
		k = OptimalK(fpRate)
	)
	return &deletableBloomFilterImpl{
		buckets:     buckets.Init(m),
		collisions:  collisions.Init(r),
		hash:        DefaultHash,
		m:           m,
		r:           r,
		regionSize:  m / r,
		k:           k,
		indexBuffer: make([]uint, k),
	}, nil
}

// EstimateFalsePositiveRate returns, for a Deletable Bloom filter sized for
// n items with r collision bits, an estimation of the false positive rate
// when storing n entries. This is an empirical, relatively slow test using
// integers as keys.
// This function is useful to validate the implementation.
func EstimateFalsePositiveRate(n, r uint, fpRate float64, buckets, collisions BitSet) (float64, error) {
	rounds := uint32(100000)
	// We construct a new filter.
	f, err := New(n, r, fpRate, buckets, collisions)
	if err != nil {
		return 0, err
	}
	n1 := make([]byte, 4)
	// We populate the filter with n values.
	for i := uint32(0); i < uint32(n); i++ {
		binary.BigEndian.PutUint32(n1, i)
		f.Add(n1)
	}
	fp := 0
	// test for number of rounds
	for i := uint32(0); i < rounds; i++ {
		binary.BigEndian.PutUint32(n1, i+uint32(n)+1)
		if f.Test(n1) {
			fp++
		}
	}
	return float64(fp) / float64(rounds), nil
}
