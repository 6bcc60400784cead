package bitvec

// Iter is a lazy iterator over the bits of a Vec.  Every call to
// Vec.Iter yields a fresh Iter positioned at the first bit, so the same
// Vec can be traversed any number of times.
type Iter struct {
	pos     int
	lastBit byte
	bit     byte
	data    []byte
}

// Iter returns an iterator over the Vec's bits in push order.  The Vec
// must not be modified while the iterator is in use.
func (v *Vec) Iter() *Iter {
	return &Iter{
		lastBit: v.bit,
		data:    v.data,
	}
}

// Next returns the next bit.  ok is false once all Len() bits have been
// yielded; the padding bits of a partially filled final byte are never
// read.
func (it *Iter) Next() (bit bool, ok bool) {
	if it.bit == bitsPerByte || it.pos+1 == len(it.data) && it.bit == it.lastBit {
		it.bit = 0
		it.pos++
	}
	if it.pos >= len(it.data) {
		return false, false
	}
	b := (it.data[it.pos] >> it.bit) & 1
	it.bit++
	return b == 1, true
}
