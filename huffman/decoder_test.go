package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hinohi/go-compress/bitvec"
)

func TestDecoderDump(t *testing.T) {
	// Same tie-free table as TestEncoderDump; the preorder layout is
	// fully determined.
	d := New(Counts(1, 2, 4, 8)).Decoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\t0: jump 6\n",
		"\t1: jump 5\n",
		"\t2: jump 4\n",
		"\t3: value 0\n",
		"\t4: value 1\n",
		"\t5: value 2\n",
		"\t6: value 3\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoderNumSlots(t *testing.T) {
	for _, counts := range [][]Count{
		Counts(1, 1),
		Counts(1, 1, 1, 1),
		Counts(1, 2, 4, 8),
		Counts(10, 100, 20, 50, 60, 10),
	} {
		d := New(counts).Decoder()
		if expect := 2*len(counts) - 1; d.NumSlots() != expect {
			t.Errorf("%d symbols: expected %d slots, got %d", len(counts), expect, d.NumSlots())
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	tree := New(Counts(10, 100, 20, 50, 60, 10))
	e := tree.Encoder()
	d := tree.Decoder()

	for symbol := Symbol(0); symbol <= e.MaxSymbol(); symbol++ {
		require.Equal(t, symbol, d.Decode(e.Encode(symbol).Iter()))
	}
}

func TestDecodeConcatenatedStream(t *testing.T) {
	tree := New(Counts(10, 100, 20, 50, 60, 10))
	e := tree.Encoder()
	d := tree.Decoder()

	symbols := []Symbol{3, 3, 0, 5, 1, 1, 1, 4, 2, 0, 5, 4}
	stream := bitvec.New()
	for _, symbol := range symbols {
		e.AppendTo(stream, symbol)
	}

	it := stream.Iter()
	require.Equal(t, symbols, d.DecodeAll(it, len(symbols)))

	// Decode consumed every bit: nothing may remain in the stream.
	_, ok := it.Next()
	require.False(t, ok, "bits left over after decoding the full stream")
}

func TestDecodeTruncatedSourcePanics(t *testing.T) {
	tree := New(Counts(1, 2, 4, 8))
	e := tree.Encoder()
	d := tree.Decoder()

	// Drop the final bit of the longest codeword.
	code := e.Encode(0)
	truncated := bitvec.New()
	it := code.Iter()
	for i := 0; i < code.Len()-1; i++ {
		bit, _ := it.Next()
		truncated.Push(bit)
	}

	require.Panics(t, func() { d.Decode(truncated.Iter()) })
	require.Panics(t, func() { d.Decode(bitvec.New().Iter()) })
}

func TestNewRejectsTinyAlphabets(t *testing.T) {
	require.Panics(t, func() { New(nil) })
	require.Panics(t, func() { New(Counts(7)) })
}
