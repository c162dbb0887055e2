package dbloom

import (
	"context"
	"time"

	"github.com/go-redis/redis/v9"
)

// NewRedisBitSet returns a BitSet whose bits live in a single Redis string at
// bitsetKey. It lets the filter's bucket and collision arrays be shared
// between processes or offloaded from the local heap; each of the two arrays
// needs its own key. Filter operations against it issue one Redis command per
// bit touched, so a Test costs up to k round trips.
func NewRedisBitSet(redisClient redis.UniversalClient, bitsetKey string, expiration time.Duration) BitSet {
	return &RedisBitSet{
		redisClient: redisClient,
		bitsetKey:   bitsetKey,
		expiration:  expiration,
	}
}

type RedisBitSet struct {
	redisClient redis.UniversalClient
	bitsetKey   string
	expiration  time.Duration
}

// Init drops whatever the key held before and sizes the value so the whole
// bit range is addressable.
func (r *RedisBitSet) Init(length uint) BitSet {
	r.ClearAll()
	r.UnSet(length)
	return r
}

func (r *RedisBitSet) Set(i uint) BitSet {
	r.redisClient.SetBit(context.Background(), r.bitsetKey, int64(i), 1)
	return r
}

func (r *RedisBitSet) UnSet(i uint) BitSet {
	r.redisClient.SetBit(context.Background(), r.bitsetKey, int64(i), 0)
	return r
}

func (r *RedisBitSet) Test(i uint) bool {
	return r.redisClient.GetBit(context.Background(), r.bitsetKey, int64(i)).Val() == 1
}

func (r *RedisBitSet) ClearAll() BitSet {
	r.redisClient.Set(context.Background(), r.bitsetKey, "", r.expiration)
	return r
}

func (r *RedisBitSet) Count() uint {
	return uint(r.redisClient.BitCount(context.Background(), r.bitsetKey, nil).Val())
}
