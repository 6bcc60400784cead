// Package huffman implements static Huffman codes: optimal prefix-free
// binary codes built from a table of symbol frequencies.
//
// A Tree is constructed once from the frequency table by the classic
// greedy merge of the two lowest-count nodes.  From the tree, an
// Encoder maps each symbol to its codeword and a Decoder holds the same
// trie flattened into an array for streaming bit-by-bit decode.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
