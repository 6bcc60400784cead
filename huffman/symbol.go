package huffman

import (
	"math"

	"lukechampine.com/uint128"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols
// are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol marks the absence of a symbol; interior tree nodes and
// interior Decoder slots carry it.
const InvalidSymbol = Symbol(-1)

// Count is the frequency of a single symbol.  Counts are 128 bits wide
// so that merging frequency tables gathered over very large corpora
// cannot overflow.
type Count = uint128.Uint128

// Counts builds a frequency table from 64-bit counts.  counts[s] becomes
// the frequency of Symbol(s).
func Counts(counts ...uint64) []Count {
	out := make([]Count, len(counts))
	for i, c := range counts {
		out[i] = uint128.From64(c)
	}
	return out
}
