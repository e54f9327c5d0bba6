package main

import "io"

// byteBuffer is a growable, index-addressable sequence of bytes: the
// building block for every string-stack slot. Reads past the used length
// return the sentinel byte 0, mirroring the original string_type in
// bfd/doc/chew.c. Capacity grows through Go's append, not by an explicit
// doubling of its own.
type byteBuffer struct {
	buf []byte
}

// newByteBuffer returns an empty buffer. Buffers need no up-front capacity
// reservation in Go; append handles growth.
func newByteBuffer() *byteBuffer {
	return &byteBuffer{}
}

// len returns the number of bytes written so far.
func (b *byteBuffer) len() int { return len(b.buf) }

// at returns the byte at idx, or 0 if idx is past the end.
func (b *byteBuffer) at(idx int) byte {
	if idx < 0 || idx >= len(b.buf) {
		return 0
	}
	return b.buf[idx]
}

// putc appends a single byte.
func (b *byteBuffer) putc(c byte) {
	b.buf = append(b.buf, c)
}

// puts appends a run of bytes.
func (b *byteBuffer) puts(s []byte) {
	b.buf = append(b.buf, s...)
}

// putstr appends a Go string.
func (b *byteBuffer) putstr(s string) {
	b.buf = append(b.buf, s...)
}

// truncateOne drops the last byte, if any. Used by remchar and
// strip_trailing_newlines.
func (b *byteBuffer) truncateOne() {
	if n := len(b.buf); n > 0 {
		b.buf = b.buf[:n-1]
	}
}

// set replaces the buffer's contents wholesale; used by the text-transform
// primitives that build a new buffer and install it over the old one.
func (b *byteBuffer) set(p []byte) {
	b.buf = p
}

// bytes returns the buffer's contents. Callers must not retain slices
// across further mutation of the buffer.
func (b *byteBuffer) bytes() []byte { return b.buf }

// String renders the buffer for diagnostics and tests.
func (b *byteBuffer) String() string { return string(b.buf) }

// writeTo bulk-writes the buffer's contents to w.
func (b *byteBuffer) writeTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}
