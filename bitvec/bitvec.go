// Package bitvec implements a growable, bit-addressable sequence backed
// by a packed byte buffer.  Within each byte the first bit pushed sits
// in the least significant position.  It is the carrier type for
// Huffman codewords and compressed bit streams.
package bitvec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const bitsPerByte = 8

// Vec is a sequence of bits.  The zero-indexed cursor bit counts how
// many bits of the final byte are occupied; 8 means the final byte is
// full and the next Push starts a new one.
//
// Invariants:
//   - Len() == len(data)*8 + int(bit) - 8
//   - unused high bits of the final byte are zero
//
// A Vec exclusively owns its buffer and is not safe for concurrent
// mutation.
type Vec struct {
	bit  byte
	data []byte
}

// New constructs an empty Vec.
func New() *Vec {
	return WithCapacity(0)
}

// WithCapacity constructs an empty Vec with room for at least the given
// number of bits before reallocating.  Capacity is reserved in whole
// bytes.
func WithCapacity(bits int) *Vec {
	assert.Assertf(bits >= 0, "bitvec: negative capacity %d", bits)
	return &Vec{
		bit:  bitsPerByte,
		data: make([]byte, 0, (bits+bitsPerByte-1)/bitsPerByte),
	}
}

// From constructs a Vec holding the given bits in order.
func From(bits []bool) *Vec {
	v := WithCapacity(len(bits))
	for _, bit := range bits {
		v.Push(bit)
	}
	return v
}

// Len returns the number of bits pushed so far.
func (v *Vec) Len() int {
	return len(v.data)*bitsPerByte + int(v.bit) - bitsPerByte
}

// Cap returns the number of bits the Vec can hold without reallocating.
func (v *Vec) Cap() int {
	return cap(v.data) * bitsPerByte
}

// Push appends one bit.
func (v *Vec) Push(bit bool) {
	if v.bit == bitsPerByte {
		v.data = append(v.data, 0)
		v.bit = 0
	}
	if bit {
		v.data[len(v.data)-1] |= 1 << v.bit
	}
	v.bit++
}

// SplitRest splits the Vec into a whole-byte-aligned prefix and a
// remainder of fewer than eight bits.  If Len() is already a multiple
// of eight the receiver itself is returned with an empty remainder;
// otherwise the final partial byte is removed from the receiver and
// re-expanded into the remainder.  Concatenating the two results in
// order reproduces the original bit sequence.  The receiver is
// consumed: it aliases the first return value and must not be used
// separately afterward.
func (v *Vec) SplitRest() (*Vec, *Vec) {
	if v.bit == bitsPerByte {
		return v, New()
	}
	last := WithCapacity(bitsPerByte)
	b := v.data[len(v.data)-1]
	v.data = v.data[:len(v.data)-1]
	for i := byte(0); i < v.bit; i++ {
		last.Push((b>>i)&1 == 1)
	}
	v.bit = bitsPerByte
	return v, last
}

// IntoBytes consumes the Vec and returns its packed buffer.  The buffer
// holds ceil(Len()/8) bytes; unused high bits of the final byte are
// zero.  The receiver is reset to empty.
func (v *Vec) IntoBytes() []byte {
	data := v.data
	v.data = nil
	v.bit = bitsPerByte
	return data
}

// String returns the bits as a quoted string in push order, e.g. "101".
func (v *Vec) String() string {
	if v.Len() == 0 {
		return `""`
	}
	var sb strings.Builder
	sb.Grow(v.Len())
	it := v.Iter()
	for {
		bit, ok := it.Next()
		if !ok {
			break
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = (*Vec)(nil)
