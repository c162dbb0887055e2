package dbloom

import "testing"

func TestMemoryBitSet(t *testing.T) {
	b := NewMemoryBitSet().Init(130)
	if b.Count() != 0 {
		t.Errorf("%v bits set in a fresh bitset", b.Count())
	}

	// Indices around word boundaries.
	for _, i := range []uint{0, 1, 63, 64, 65, 127, 128, 129} {
		if b.Test(i) {
			t.Errorf("bit %v should not be set.", i)
		}
		b.Set(i)
		if !b.Test(i) {
			t.Errorf("bit %v should be set.", i)
		}
	}
	if b.Count() != 8 {
		t.Errorf("count is %v, want 8", b.Count())
	}

	b.UnSet(64)
	if b.Test(64) {
		t.Errorf("bit 64 should have been cleared.")
	}
	if !b.Test(63) || !b.Test(65) {
		t.Errorf("clearing bit 64 disturbed its neighbours.")
	}
	if b.Count() != 7 {
		t.Errorf("count is %v, want 7", b.Count())
	}

	b.ClearAll()
	if b.Count() != 0 {
		t.Errorf("%v bits set after ClearAll", b.Count())
	}
	for _, i := range []uint{0, 63, 129} {
		if b.Test(i) {
			t.Errorf("bit %v should not be set after ClearAll.", i)
		}
	}
}

func TestMemoryBitSetReinit(t *testing.T) {
	b := NewMemoryBitSet().Init(64)
	b.Set(10)
	b.Init(64)
	if b.Test(10) {
		t.Errorf("Init should zero previously set bits.")
	}
}
