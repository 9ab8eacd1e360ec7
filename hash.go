package bloomfilter

import (
	"math/bits"
	"math/rand/v2"

	"github.com/cespare/xxhash"
)

func murmur64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hash64 mixes a key with the filter seed.
func hash64(key, seed uint64) uint64 {
	return murmur64(key + seed)
}

// randomSeed draws from the process-wide generator, which is safe for
// concurrent use.
func randomSeed() uint64 {
	return rand.Uint64()
}

// reduce maps hash to [0, n) using the high word of the product.
// http://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func reduce(hash uint32, n uint64) uint64 {
	hi, _ := bits.Mul64(uint64(hash)<<32, n)
	return hi
}

// KeyOf turns an arbitrary byte key into a uint64 key.
func KeyOf(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// KeyOfString is KeyOf for strings, without the conversion copy.
func KeyOfString(s string) uint64 {
	return xxhash.Sum64String(s)
}
