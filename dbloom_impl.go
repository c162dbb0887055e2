/*
In this implementation, the hashing function used is murmurhash,
a non-cryptographic hashing function, seeded with the hash round index.
*/
package dbloom

// A deletableBloomFilterImpl keeps the regular Bloom filter buckets together
// with one collision bit per region of regionSize buckets. A collision bit is
// set as soon as two insertions land on the same bucket inside its region and
// is only ever cleared by Reset.
type deletableBloomFilterImpl struct {
	buckets     BitSet
	collisions  BitSet
	hash        HashFunc
	m           uint   // number of buckets
	r           uint   // number of collision bits
	regionSize  uint   // number of buckets covered by one collision bit
	k           uint   // number of hash functions
	count       uint   // number of items in the filter
	indexBuffer []uint // caches bucket indices between the two removal phases
}

// location returns the bucket index for hash round i.
func (d *deletableBloomFilterImpl) location(data []byte, i uint) uint {
	return uint(d.hash(uint32(i), data)) % d.m
}

// region returns the index of the collision bit covering a bucket index.
// When r does not evenly divide the bucket count, the tail past r*regionSize
// is attributed to the last region.
func (d *deletableBloomFilterImpl) region(bucket uint) uint {
	reg := bucket / d.regionSize
	if reg >= d.r {
		reg = d.r - 1
	}
	return reg
}

func (d *deletableBloomFilterImpl) Capacity() uint {
	return d.m
}

func (d *deletableBloomFilterImpl) K() uint {
	return d.k
}

func (d *deletableBloomFilterImpl) Count() uint {
	return d.count
}

func (d *deletableBloomFilterImpl) Buckets() BitSet {
	return d.buckets
}

func (d *deletableBloomFilterImpl) Collisions() BitSet {
	return d.collisions
}

func (d *deletableBloomFilterImpl) Test(data []byte) bool {
	// If any of the K bits are not set, then it's not a member.
	for i := uint(0); i < d.k; i++ {
		if !d.buckets.Test(d.location(data, i)) {
			return false
		}
	}
	return true
}

func (d *deletableBloomFilterImpl) TestString(data string) bool {
	return d.Test([]byte(data))
}

func (d *deletableBloomFilterImpl) Add(data []byte) Filter {
	// Set the K bits.
	for i := uint(0); i < d.k; i++ {
		idx := d.location(data, i)
		if d.buckets.Test(idx) {
			// Collision, set corresponding region bit.
			d.collisions.Set(d.region(idx))
		} else {
			d.buckets.Set(idx)
		}
	}
	d.count++
	return d
}

func (d *deletableBloomFilterImpl) AddString(data string) Filter {
	return d.Add([]byte(data))
}

func (d *deletableBloomFilterImpl) TestAndAdd(data []byte) bool {
	member := true
	// If any of the K bits are not set, then it's not a member.
	for i := uint(0); i < d.k; i++ {
		idx := d.location(data, i)
		if !d.buckets.Test(idx) {
			member = false
		} else {
			// Collision, set corresponding region bit.
			d.collisions.Set(d.region(idx))
		}
		d.buckets.Set(idx)
	}
	d.count++
	return member
}

func (d *deletableBloomFilterImpl) TestAndAddString(data string) bool {
	return d.TestAndAdd([]byte(data))
}

func (d *deletableBloomFilterImpl) TestAndRemove(data []byte) bool {
	member := true
	// If any of the K bits are not set, then it's not a member.
	for i := uint(0); i < d.k; i++ {
		d.indexBuffer[i] = d.location(data, i)
		if !d.buckets.Test(d.indexBuffer[i]) {
			member = false
		}
	}
	if member {
		for _, idx := range d.indexBuffer {
			if !d.collisions.Test(d.region(idx)) {
				// Clear only bits located in collision-free zones.
				d.buckets.UnSet(idx)
			}
		}
		// A phantom removal (a full false-positive match on a filter whose
		// tally already reached zero) must not wrap the count around.
		if d.count > 0 {
			d.count--
		}
	}
	return member
}

func (d *deletableBloomFilterImpl) TestAndRemoveString(data string) bool {
	return d.TestAndRemove([]byte(data))
}

func (d *deletableBloomFilterImpl) Reset() Filter {
	d.buckets.ClearAll()
	d.collisions.ClearAll()
	d.count = 0
	return d
}

func (d *deletableBloomFilterImpl) SetHash(h HashFunc) {
	d.hash = h
}
