package dbloom

import "math/bits"

const wordBits = 64

// NewMemoryBitSet returns an empty in-process BitSet backed by a packed
// []uint64. The zero value is usable; Init sizes it.
func NewMemoryBitSet() BitSet {
	return &MemoryBitSet{}
}

// MemoryBitSet packs one bit per flag into 64-bit words.
type MemoryBitSet struct {
	length uint
	words  []uint64
}

func (b *MemoryBitSet) Init(length uint) BitSet {
	b.length = length
	b.words = make([]uint64, (length+wordBits-1)/wordBits)
	return b
}

func (b *MemoryBitSet) Set(i uint) BitSet {
	b.words[i/wordBits] |= 1 << (i % wordBits)
	return b
}

func (b *MemoryBitSet) UnSet(i uint) BitSet {
	b.words[i/wordBits] &^= 1 << (i % wordBits)
	return b
}

func (b *MemoryBitSet) Test(i uint) bool {
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (b *MemoryBitSet) ClearAll() BitSet {
	for i := range b.words {
		b.words[i] = 0
	}
	return b
}

func (b *MemoryBitSet) Count() uint {
	var c uint
	for _, w := range b.words {
		c += uint(bits.OnesCount64(w))
	}
	return c
}
