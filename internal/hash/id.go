// Package hash computes the identifiers used to key posting lists.
package hash

import "github.com/cespare/xxhash/v2"

// TermID computes the xxHash64 of an index term.
func TermID(term string) uint64 {
	return xxhash.Sum64String(term)
}
