package dbloom

// BitSet is the storage backing one of the filter's bit arrays. The filter
// owns its BitSets exclusively; sharing one between filters corrupts both.
type BitSet interface {
	// Init allocates (or clears) the bit set for the given bit length and
	// returns it. Called once by the filter constructor.
	Init(length uint) BitSet
	// Set bit i to 1.
	// If i >= the Init length, this function may panic: the caller is
	// responsible for providing sensible parameters in line with their
	// memory capacity.
	Set(i uint) BitSet
	// UnSet bit i to 0
	UnSet(i uint) BitSet
	// Test whether bit i is set.
	Test(i uint) bool
	// ClearAll clears the entire BitSet
	ClearAll() BitSet
	// Count (number of set bits).
	// Also known as "popcount" or "population count".
	Count() uint
}
