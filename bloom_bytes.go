package bloomfilter

// PopulateBloomBytes builds a filter over byte keys. Each key is first
// reduced to a uint64 with KeyOf.
func PopulateBloomBytes(keys [][]byte, bitsPerKey float64) (*Bloom, error) {
	hashes := make([]uint64, len(keys))
	for i, key := range keys {
		hashes[i] = KeyOf(key)
	}
	return PopulateBloom(hashes, bitsPerKey)
}

// ContainsBytes is Contains for a key given as bytes.
func (filter *Bloom) ContainsBytes(key []byte) bool {
	return filter.Contains(KeyOf(key))
}

// ContainsString is Contains for a key given as a string.
func (filter *Bloom) ContainsString(key string) bool {
	return filter.Contains(KeyOfString(key))
}
