package lazyjson

// A Span describes a contiguous, half-open span of a source input, measured
// in bytes from the start of the buffer that was parsed.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length in bytes of the span.
func (s Span) Len() int { return s.End - s.Pos }
