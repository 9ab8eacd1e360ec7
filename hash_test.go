package bloomfilter

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	assert.Equal(t, uint64(0), reduce(0, 1000))
	assert.Equal(t, uint64(999), reduce(math.MaxUint32, 1000))
	assert.Equal(t, uint64(500), reduce(1<<31, 1000))
	assert.Equal(t, uint64(0), reduce(math.MaxUint32, 1))
	// multiply-high, not modulo
	assert.Equal(t, uint64(0), reduce(999, 1000))
	// ranges wider than 32 bits do not overflow
	assert.Equal(t, uint64(1)<<39, reduce(1<<31, 1<<40))
	for i := 0; i < 100000; i++ {
		n := splitmix64(&rng)%(1<<40) + 1
		assert.Less(t, reduce(uint32(splitmix64(&rng)), n), n)
	}
}

func TestReduceUniform(t *testing.T) {
	const buckets = 10
	var counts [buckets]int
	samples := 1000000
	for i := 0; i < samples; i++ {
		counts[reduce(uint32(splitmix64(&rng)), buckets)]++
	}
	for _, c := range counts {
		assert.InDelta(t, samples/buckets, c, float64(samples)/buckets*0.05)
	}
}

func TestHash64(t *testing.T) {
	assert.Equal(t, hash64(42, 7), hash64(42, 7))
	assert.NotEqual(t, hash64(42, 7), hash64(42, 8))
	assert.NotEqual(t, hash64(42, 7), hash64(43, 7))
	assert.Equal(t, murmur64(49), hash64(42, 7))
	assert.Equal(t, uint64(0), murmur64(0))

	// flipping one input bit flips about half of the output bits
	total := 0
	trials := 10000
	for i := 0; i < trials; i++ {
		key := splitmix64(&rng)
		bit := uint(i % 64)
		diff := hash64(key, 0) ^ hash64(key^(1<<bit), 0)
		total += bits.OnesCount64(diff)
	}
	assert.InDelta(t, 32, float64(total)/float64(trials), 1)
}

func TestSplitmix64(t *testing.T) {
	seed := uint64(1)
	first := splitmix64(&seed)
	assert.Equal(t, uint64(1)+0x9E3779B97F4A7C15, seed)
	seed = 1
	assert.Equal(t, first, splitmix64(&seed))
	assert.NotEqual(t, first, splitmix64(&seed))
}

func TestRandomSeed(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		seen[randomSeed()] = true
	}
	assert.Len(t, seen, 1000)
}
