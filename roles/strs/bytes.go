package strs

// Bytes is a cursor over the bytes of a String. It owns its backing String,
// so it stays valid regardless of what the caller does with the original.
type Bytes struct {
	buffer String
	index  int
}

func newBytes(buffer String) Bytes {
	return Bytes{buffer: buffer}
}

// Next returns the next byte and advances the cursor. It returns false once
// the cursor is exhausted.
func (b *Bytes) Next() (byte, bool) {
	if b.index >= b.buffer.ByteLen() {
		return 0, false
	}
	current := b.buffer.s[b.index]
	b.index++
	return current, true
}

// Len returns the number of bytes remaining.
func (b *Bytes) Len() int {
	return b.buffer.ByteLen() - b.index
}

// Collect drains the cursor into a new owned byte slice.
func (b *Bytes) Collect() []byte {
	out := make([]byte, 0, b.Len())
	for {
		c, ok := b.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// Interop

// WrapBytes converts a native byte slice into a String, copying it so later
// mutation of the slice cannot alias the String.
func WrapBytes(p []byte) String {
	return String{s: string(p)}
}

// UnwrapBytes converts the String into a fresh byte slice owned by the
// caller.
func (s String) UnwrapBytes() []byte {
	return []byte(s.s)
}
