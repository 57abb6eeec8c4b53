package utils

import (
	"github.com/twmb/murmur3"
)

// HashString is a stable 64-bit key for cache entries.
func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}
