package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// node is one node of the code tree.  Leaves hold a symbol and no
// children; interior nodes hold InvalidSymbol, exactly two children,
// and the sum of their counts.  Each subtree is owned by its parent.
type node struct {
	count  Count
	symbol Symbol
	left   *node
	right  *node
}

func (n *node) leaf() bool {
	return n.symbol != InvalidSymbol
}

// Tree is an optimal prefix code tree for a frequency table.  It is
// immutable once built and may be shared freely across goroutines, as
// may the Encoder and Decoder derived from it.
type Tree struct {
	numSymbols int
	root       *node
}

// New builds a Tree from a frequency table.  counts[s] is the frequency
// of Symbol(s).  The alphabet must hold at least two symbols: a
// single-symbol alphabet admits no prefix code.
//
// One leaf per symbol is seeded into a minimum-priority heap, then the
// two lowest-count nodes are repeatedly merged (first popped becomes
// the left child) until a single root remains.  Nodes with equal counts
// merge in the heap's internal sift order, which is deterministic for a
// given table but not part of the contract; only the resulting code
// lengths are guaranteed optimal.
func New(counts []Count) *Tree {
	assert.Assertf(len(counts) >= 2, "huffman: alphabet needs at least 2 symbols, got %d", len(counts))
	assert.Assertf(len(counts) <= int(MaxSymbol), "huffman: %d symbols > MaxSymbol %d", len(counts), int(MaxSymbol))

	h := make(nodeHeap, 0, len(counts))
	for symbol, count := range counts {
		h = append(h, &node{count: count, symbol: Symbol(symbol)})
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			count:  left.count.Add(right.count),
			symbol: InvalidSymbol,
			left:   left,
			right:  right,
		})
	}

	return &Tree{
		numSymbols: len(counts),
		root:       heap.Pop(&h).(*node),
	}
}

// NumSymbols is the size of the alphabet the Tree was built over.
func (t *Tree) NumSymbols() int {
	return t.numSymbols
}

// type nodeHeap {{{

// nodeHeap is a minimum-priority queue of tree nodes ordered by
// ascending count.
type nodeHeap []*node

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h nodeHeap) Less(i, j int) bool {
	return h[i].count.Cmp(h[j].count) < 0
}

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(*h) - 1
	x := (*h)[last]
	*h = (*h)[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
