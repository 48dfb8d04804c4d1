// Package hash provides the checksum primitive used by snapshot payloads.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
