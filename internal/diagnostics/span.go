// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diagnostics

// Span identifies a region of source text by byte offset, line range,
// and length. Offsets and line numbers are 32-bit; files larger than
// 4 GiB are not supported (a VB6 compatibility limit).
type Span struct {
	Offset    uint32 // byte offset into the source content
	LineStart uint32 // 1-based
	LineEnd   uint32 // 1-based
	Length    uint32 // in bytes
}

// Zero returns an empty span at the start of the source.
func Zero() Span {
	return Span{}
}

// At returns a length-1 span at the given offset and line.
func At(offset, line uint32) Span {
	return Span{Offset: offset, LineStart: line, LineEnd: line, Length: 1}
}

// New returns a span covering [offset, offset+length) across the
// given line range. Spans are never clamped to the source length;
// staying in bounds is the producer's obligation.
func New(offset, lineStart, lineEnd, length uint32) Span {
	return Span{Offset: offset, LineStart: lineStart, LineEnd: lineEnd, Length: length}
}

// End returns the exclusive end offset of the span.
func (s Span) End() uint32 {
	return s.Offset + s.Length
}

// IsZero reports whether the span is the zero span.
func (s Span) IsZero() bool {
	return s == Span{}
}
