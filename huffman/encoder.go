package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hinohi/go-compress/bitvec"
)

// Encoder maps each symbol of the alphabet to its codeword.  It is
// derived once from a Tree and read-only afterward.
type Encoder struct {
	codes []*bitvec.Vec
}

// Encoder derives the symbol-to-codeword table by walking the tree from
// the root.  Descending into a left child appends a 1 bit to the
// current path, a right child a 0 bit; the path accumulated on reaching
// a leaf is that symbol's codeword.  Leaves occur only at the bottom of
// the tree, so the resulting codewords are mutually prefix-free.
func (t *Tree) Encoder() *Encoder {
	e := &Encoder{
		codes: make([]*bitvec.Vec, t.numSymbols),
	}

	var path []bool
	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf() {
			e.codes[n.symbol] = bitvec.From(path)
			return
		}
		path = append(path, true)
		walk(n.left)
		path = path[:len(path)-1]
		path = append(path, false)
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(t.root)

	return e
}

// Encode returns the codeword for symbol.  The returned sequence is
// owned by the Encoder and must not be modified; consume it through
// Iter or AppendTo.  Symbols outside 0..MaxSymbol() fail with an index
// out of range.
func (e *Encoder) Encode(symbol Symbol) *bitvec.Vec {
	return e.codes[symbol]
}

// AppendTo pushes symbol's codeword onto the end of v, bit by bit.
// Encoding a stream is repeated AppendTo into one accumulator.
func (e *Encoder) AppendTo(v *bitvec.Vec, symbol Symbol) {
	it := e.codes[symbol].Iter()
	for {
		bit, ok := it.Next()
		if !ok {
			return
		}
		v.Push(bit)
	}
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
func (e *Encoder) MaxSymbol() Symbol {
	return Symbol(len(e.codes)) - 1
}

// Dump writes a programmer-readable debugging dump of the code table to
// the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for symbol, code := range e.codes {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
