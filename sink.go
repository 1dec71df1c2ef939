package jemi

import (
	"bufio"
	"io"
)

// Sink consumes emitted JSON one byte at a time. Put has no error result:
// buffering, truncation and transport failures are the sink's business.
type Sink interface {
	Put(c byte)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(c byte)

func (f SinkFunc) Put(c byte) { f(c) }

// Bind returns a Sink that passes ctx to fn with every byte.
func Bind[T any](fn func(c byte, ctx T), ctx T) Sink {
	return SinkFunc(func(c byte) { fn(c, ctx) })
}

// ByteWriterSink adapts an io.ByteWriter, dropping its errors.
func ByteWriterSink(w io.ByteWriter) Sink {
	return SinkFunc(func(c byte) { _ = w.WriteByte(c) })
}

// BufferSink fills a fixed caller buffer. Bytes past the end are dropped
// and a NUL byte ends the stream until Reset.
type BufferSink struct {
	buf       []byte
	n         int
	truncated bool
	done      bool
}

// NewBufferSink returns a sink writing into buf.
func NewBufferSink(buf []byte) *BufferSink {
	return &BufferSink{buf: buf}
}

func (b *BufferSink) Put(c byte) {
	if b.done {
		return
	}
	if c == 0 {
		b.done = true
		return
	}
	if b.n >= len(b.buf) {
		b.truncated = true
		return
	}
	b.buf[b.n] = c
	b.n++
}

// Bytes returns the bytes written so far. It aliases the caller's buffer.
func (b *BufferSink) Bytes() []byte { return b.buf[:b.n] }

func (b *BufferSink) String() string { return string(b.buf[:b.n]) }

func (b *BufferSink) Len() int { return b.n }

// Truncated reports whether any byte was dropped for lack of room.
func (b *BufferSink) Truncated() bool { return b.truncated }

// Done reports whether the NUL terminator has been seen.
func (b *BufferSink) Done() bool { return b.done }

// Reset rewinds the sink over the same buffer.
func (b *BufferSink) Reset() {
	b.n = 0
	b.truncated = false
	b.done = false
}

// WriterSink buffers bytes into an io.Writer. The first write error is
// latched and every later byte is dropped.
type WriterSink struct {
	w   *bufio.Writer
	n   int64
	err error
}

// NewWriterSink returns a buffered sink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) Put(c byte) {
	if s.err != nil {
		return
	}
	if err := s.w.WriteByte(c); err != nil {
		s.err = err
		return
	}
	s.n++
}

// Flush pushes buffered bytes to the writer and returns the latched error.
func (s *WriterSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}

func (s *WriterSink) Err() error { return s.err }

// Written returns the number of bytes accepted by the sink.
func (s *WriterSink) Written() int64 { return s.n }
