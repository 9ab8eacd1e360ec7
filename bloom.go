package bloomfilter

import (
	"errors"
	"math"
)

// ErrBadBitsPerKey is returned when the memory budget per key is not a
// positive finite number.
var ErrBadBitsPerKey = errors.New("bits per key must be a positive finite number")

// ErrFilterTooLarge is returned when the requested bit array cannot be allocated.
var ErrFilterTooLarge = errors.New("filter too large")

// maxBits bounds the bit array to what a []uint64 can address on 64-bit
// platforms without overflowing the length computations.
const maxBits = 1 << 62

// Bloom is a standard Bloom filter over uint64 keys. It is built once by
// PopulateBloom and is read-only afterwards, so any number of goroutines
// may call Contains concurrently.
type Bloom struct {
	k    int
	m    uint64 // bits addressed by the probes
	seed uint64
	size int
	data []uint64
}

// PopulateBloom builds a filter holding the provided keys, using about
// bitsPerKey bits of memory per key. Duplicated keys are allowed but waste
// space. An empty set gives a filter that contains nothing.
func PopulateBloom(keys []uint64, bitsPerKey float64) (*Bloom, error) {
	filter, err := newBloom(len(keys), bitsPerKey, randomSeed())
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		filter.add(key)
	}
	return filter, nil
}

func newBloom(size int, bitsPerKey float64, seed uint64) (*Bloom, error) {
	if math.IsNaN(bitsPerKey) || math.IsInf(bitsPerKey, 0) || bitsPerKey <= 0 {
		return nil, ErrBadBitsPerKey
	}
	n := max(1, size)
	budget := float64(n) * bitsPerKey
	if budget >= maxBits {
		return nil, ErrFilterTooLarge
	}
	m := max(1, uint64(math.Round(budget)))
	// rounding m to the nearest integer can land below the budget;
	// the storage always covers the full budget.
	capacity := max(m, uint64(math.Ceil(budget)))
	return &Bloom{
		k:    bestK(m, uint64(n)),
		m:    m,
		seed: seed,
		size: size,
		data: make([]uint64, (capacity+63)/64),
	}, nil
}

// bestK is the probe count minimizing the false positive rate for m bits
// and n keys, rounded to the nearest integer. Reference false positive
// measurements depend on this exact rounding.
func bestK(m, n uint64) int {
	return max(1, int(math.Round(float64(m)/float64(n)*math.Ln2)))
}

func (filter *Bloom) add(key uint64) {
	hash := hash64(key, filter.seed)
	a := uint32(hash >> 32)
	b := uint32(hash)
	for i := 0; i < filter.k; i++ {
		index := reduce(a, filter.m)
		filter.data[index>>6] |= 1 << (index & 63)
		a += b
	}
}

// Contains tells you whether the key is likely part of the set. It never
// returns false for a key the filter was built with.
func (filter *Bloom) Contains(key uint64) bool {
	hash := hash64(key, filter.seed)
	a := uint32(hash >> 32)
	b := uint32(hash)
	for i := 0; i < filter.k; i++ {
		index := reduce(a, filter.m)
		if filter.data[index>>6]&(1<<(index&63)) == 0 {
			return false
		}
		a += b
	}
	return true
}

// BitCount returns the allocated capacity in bits, a multiple of 64.
func (filter *Bloom) BitCount() uint64 {
	return uint64(len(filter.data)) * 64
}

// ProbeCount returns the number of bits set and tested per key.
func (filter *Bloom) ProbeCount() int {
	return filter.k
}

// Seed returns the hash seed drawn when the filter was built.
func (filter *Bloom) Seed() uint64 {
	return filter.seed
}

// Size returns the number of keys the filter was built from.
func (filter *Bloom) Size() int {
	return filter.size
}

// BitsPerKey reports the memory actually spent per key.
func (filter *Bloom) BitsPerKey() float64 {
	return float64(filter.BitCount()) / float64(max(1, filter.size))
}

// ExpectedFalsePositiveRate is the textbook false positive probability for
// this filter's parameters.
func (filter *Bloom) ExpectedFalsePositiveRate() float64 {
	return FalsePositiveBound(filter.k, uint64(filter.size), filter.m)
}

// FalsePositiveBound computes (1 - e^(-kn/m))^k, the approximate false
// positive probability of a Bloom filter with k probes, n keys and m bits.
func FalsePositiveBound(k int, n, m uint64) float64 {
	if m == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}
