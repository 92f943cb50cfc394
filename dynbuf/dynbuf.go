// Package dynbuf implements a minimal growable byte buffer in the style
// of sds.h's preallocation strategy: small buffers double on growth,
// buffers already past maxPrealloc grow by a fixed increment instead, so
// a long append loop doesn't pay for each byte's own reallocation but
// also doesn't overshoot by doubling a huge buffer.
package dynbuf

// maxPrealloc is the byte-length threshold (sds.h's SDS_MAX_PREALLOC)
// beyond which growth switches from doubling to a fixed-size increment.
const maxPrealloc = 1024 * 1024

// Buffer is a growable byte buffer. The zero value is a valid empty
// buffer.
type Buffer struct {
	buf []byte
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns the buffer's contents as a string copy.
func (b *Buffer) String() string { return string(b.buf) }

// Reset empties the buffer without releasing its backing storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Append appends p to the buffer, growing it first if needed.
func (b *Buffer) Append(p []byte) {
	b.growBy(len(p))
	b.buf = append(b.buf, p...)
}

// AppendString appends s to the buffer, growing it first if needed.
func (b *Buffer) AppendString(s string) {
	b.growBy(len(s))
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte to the buffer.
func (b *Buffer) AppendByte(c byte) {
	b.growBy(1)
	b.buf = append(b.buf, c)
}

// growBy ensures room for at least extra more bytes, preallocating past
// what's strictly required using sds.h's grow policy: double while small,
// add a flat maxPrealloc once past it.
func (b *Buffer) growBy(extra int) {
	need := len(b.buf) + extra
	if need <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = 16
	}
	for newCap < need {
		if newCap < maxPrealloc {
			newCap *= 2
		} else {
			newCap += maxPrealloc
		}
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}
