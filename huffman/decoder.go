package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/hinohi/go-compress/bitvec"
)

// BitSource produces bits on demand for Decode.  A *bitvec.Iter
// satisfies it, as does any adapter over an incoming stream.
type BitSource interface {
	// Next returns the next bit; ok is false once the source is out of
	// bits.
	Next() (bit bool, ok bool)
}

var _ BitSource = (*bitvec.Iter)(nil)

// Decoder is the code tree flattened into an array in preorder: one
// jump slot per interior node, one value slot per leaf, 2N-1 slots for
// an alphabet of N symbols.  Slot 0 is the root.  A jump slot's left
// child is the next slot; its jump index records where the right
// subtree begins.  Decoding walks slot to slot without touching the
// tree, so there is no pointer chasing and no allocation per symbol.
type Decoder struct {
	slots []slot
}

// slot is one node of the flattened trie.  Value slots carry the
// decoded symbol; jump slots carry InvalidSymbol and the index of the
// right subtree.
type slot struct {
	symbol Symbol
	jump   int
}

// Decoder derives the flattened decoding table from the tree.  Interior
// nodes reserve their slot before the left subtree is emitted and patch
// in the jump index once its extent is known.
func (t *Tree) Decoder() *Decoder {
	slots := make([]slot, 0, 2*t.numSymbols-1)

	var emit func(n *node)
	emit = func(n *node) {
		if n.leaf() {
			slots = append(slots, slot{symbol: n.symbol})
			return
		}
		reserved := len(slots)
		slots = append(slots, slot{symbol: InvalidSymbol})
		emit(n.left)
		slots[reserved].jump = len(slots)
		emit(n.right)
	}
	emit(t.root)

	return &Decoder{slots: slots}
}

// Decode consumes exactly one codeword from src and returns its symbol.
// No bits beyond the codeword are read, so repeated calls decode a
// concatenated stream of codewords back to back.  The source running
// dry in the middle of a codeword is a caller error: the input was not
// produced by the matching Encoder or was truncated.
func (d *Decoder) Decode(src BitSource) Symbol {
	idx := 0
	for d.slots[idx].symbol == InvalidSymbol {
		bit, ok := src.Next()
		assert.Assertf(ok, "huffman: bit source exhausted in the middle of a codeword")
		if bit {
			idx++
		} else {
			idx = d.slots[idx].jump
		}
	}
	return d.slots[idx].symbol
}

// DecodeAll decodes n consecutive codewords from src.
func (d *Decoder) DecodeAll(src BitSource, n int) []Symbol {
	out := make([]Symbol, n)
	for i := range out {
		out[i] = d.Decode(src)
	}
	return out
}

// NumSlots is the length of the flattened table, always 2N-1 for an
// alphabet of N symbols.
func (d *Decoder) NumSlots() int {
	return len(d.slots)
}

// Dump writes a programmer-readable debugging dump of the flattened
// table to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	for idx, s := range d.slots {
		if s.symbol == InvalidSymbol {
			fmt.Fprintf(&buf, "\t%d: jump %d\n", idx, s.jump)
		} else {
			fmt.Fprintf(&buf, "\t%d: value %d\n", idx, s.symbol)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
