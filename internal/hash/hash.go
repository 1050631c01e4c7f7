package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of data.
//
// It is used to fingerprint borrowed buffers, so it must never retain data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
