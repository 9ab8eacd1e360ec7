package bloomfilter

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// PopulateBloomParallel is PopulateBloom with the keys split across workers
// goroutines. Probes of different keys can hit the same word, so every write
// is an atomic OR. The result is identical to a sequential build with the
// same seed. A non-positive workers uses GOMAXPROCS.
func PopulateBloomParallel(keys []uint64, bitsPerKey float64, workers int) (*Bloom, error) {
	filter, err := newBloom(len(keys), bitsPerKey, randomSeed())
	if err != nil {
		return nil, err
	}
	filter.populateParallel(keys, workers)
	return filter, nil
}

func (filter *Bloom) populateParallel(keys []uint64, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(keys))
	if workers <= 1 {
		for _, key := range keys {
			filter.add(key)
		}
		return
	}
	chunk := (len(keys) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(keys); start += chunk {
		end := min(start+chunk, len(keys))
		wg.Add(1)
		go func(part []uint64) {
			defer wg.Done()
			for _, key := range part {
				filter.addAtomic(key)
			}
		}(keys[start:end])
	}
	wg.Wait()
}

func (filter *Bloom) addAtomic(key uint64) {
	hash := hash64(key, filter.seed)
	a := uint32(hash >> 32)
	b := uint32(hash)
	for i := 0; i < filter.k; i++ {
		index := reduce(a, filter.m)
		atomic.OrUint64(&filter.data[index>>6], 1<<(index&63))
		a += b
	}
}
