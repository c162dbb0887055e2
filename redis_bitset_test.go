package dbloom

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
)

func newTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{":6379"}})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis is not available on :6379: %v", err)
	}
	return client
}

func TestRedisBitSet(t *testing.T) {
	client := newTestRedisClient(t)
	b := NewRedisBitSet(client, uuid.New().String(), time.Minute).Init(128)

	if b.Count() != 0 {
		t.Errorf("%v bits set in a fresh bitset", b.Count())
	}
	b.Set(0)
	b.Set(64)
	b.Set(127)
	if !b.Test(0) || !b.Test(64) || !b.Test(127) {
		t.Errorf("set bits should test true.")
	}
	if b.Test(1) {
		t.Errorf("bit 1 should not be set.")
	}
	if b.Count() != 3 {
		t.Errorf("count is %v, want 3", b.Count())
	}

	b.UnSet(64)
	if b.Test(64) {
		t.Errorf("bit 64 should have been cleared.")
	}

	b.ClearAll()
	if b.Count() != 0 {
		t.Errorf("%v bits set after ClearAll", b.Count())
	}
}

func TestRedisBitSetReinit(t *testing.T) {
	client := newTestRedisClient(t)
	key := uuid.New().String()
	b := NewRedisBitSet(client, key, time.Minute).Init(128)
	b.Set(10)
	b.Init(128)
	if b.Test(10) {
		t.Errorf("Init should zero previously set bits.")
	}
}

// The filter behaves the same regardless of where its bit arrays live.
func TestRedisBackedFilter(t *testing.T) {
	client := newTestRedisClient(t)
	buckets := NewRedisBitSet(client, uuid.New().String(), time.Minute)
	collisions := NewRedisBitSet(client, uuid.New().String(), time.Minute)
	f, err := New(1000, 100, 0.01, buckets, collisions)
	if err != nil {
		t.Fatal(err)
	}

	n1 := []byte("Bess")
	n2 := []byte("Jane")
	f.Add(n1)
	if !f.Test(n1) {
		t.Errorf("%v should be in.", n1)
	}
	if f.Test(n2) {
		t.Errorf("%v should not be in.", n2)
	}
	if !f.TestAndRemove(n1) {
		t.Errorf("%v should have been removable.", n1)
	}
	if f.Test(n1) {
		t.Errorf("%v should not be in after removal.", n1)
	}
	if f.Count() != 0 {
		t.Errorf("count is %v, want 0", f.Count())
	}
}
