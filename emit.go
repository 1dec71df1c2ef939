package jemi

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// floatBufLen fits the longest %f rendering of a float64:
// sign, 309 integer digits, point and six decimals.
const floatBufLen = 320

// Emit writes the chain starting at root to sink as compact JSON. Children
// render in link order. Nil, stale and empty roots emit nothing. Emit
// allocates nothing and ignores sink failures.
func (a *Arena) Emit(root Node, sink Sink) {
	if a.slot(root) == nil {
		return
	}
	a.emitChain(root.ref, false, sink, 0)
}

// EmitTerminated emits root followed by a NUL byte marking end of stream.
func (a *Arena) EmitTerminated(root Node, sink Sink) {
	a.Emit(root, sink)
	sink.Put(0)
}

// EmitTo emits root through a buffered writer sink and reports the bytes
// written and the first write error.
func (a *Arena) EmitTo(root Node, w io.Writer) (int64, error) {
	s := NewWriterSink(w)
	a.Emit(root, s)
	if err := s.Flush(); err != nil {
		return s.Written(), errors.Wrap(err, "emit json")
	}
	return s.Written(), nil
}

// Render returns the emitted text of root as a string.
func (a *Arena) Render(root Node) string {
	var sb strings.Builder
	a.Emit(root, ByteWriterSink(&sb))
	return sb.String()
}

// emitChain walks one sibling chain. In an object chain odd positions are
// values and get a colon, every other non-first position gets a comma.
// Chain length and nesting are capped at the capacity.
func (a *Arena) emitChain(ref uint32, object bool, sink Sink, depth int) {
	if depth > len(a.slots) {
		return
	}
	for i := 0; ref != 0 && i < len(a.slots); i++ {
		s := &a.slots[ref-1]
		if object && i&1 == 1 {
			sink.Put(':')
		} else if i > 0 {
			sink.Put(',')
		}
		switch s.typ {
		case TypeObject:
			sink.Put('{')
			a.emitChain(uint32(s.word), true, sink, depth+1)
			sink.Put('}')
		case TypeArray:
			sink.Put('[')
			a.emitChain(uint32(s.word), false, sink, depth+1)
			sink.Put(']')
		case TypeFloat:
			emitBytes(sink, appendFloat(a.scratch[:0], math.Float64frombits(s.word)))
		case TypeInteger:
			emitBytes(sink, strconv.AppendInt(a.scratch[:0], int64(s.word), 10))
		case TypeString:
			sink.Put('"')
			emitString(sink, s.str)
			sink.Put('"')
		case TypeTrue:
			emitString(sink, "true")
		case TypeFalse:
			emitString(sink, "false")
		case TypeNull:
			emitString(sink, "null")
		}
		ref = s.next
	}
}

// appendFloat formats v like printf's %f.
func appendFloat(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return append(dst, "-nan"...)
		}
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, v, 'f', 6, 64)
}

func emitBytes(sink Sink, b []byte) {
	for _, c := range b {
		sink.Put(c)
	}
}

// emitString streams str up to its first NUL byte.
func emitString(sink Sink, str string) {
	for i := 0; i < len(str); i++ {
		if str[i] == 0 {
			return
		}
		sink.Put(str[i])
	}
}
