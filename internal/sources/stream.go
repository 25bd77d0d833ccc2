// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sources

import (
	"unicode/utf8"

	"github.com/playbymail/vb6parse/internal/diagnostics"
)

const eofRune rune = -1

// SourceStream is a cursor over a SourceFile. It tracks the current
// byte offset plus 1-based line and column. A "\r\n" pair counts as a
// single line break; a bare "\n" counts as one; a bare "\r" is invalid
// in this format but the stream still advances past it (and counts it
// as a break so columns stay sane). Tabs are column-width 1.
type SourceStream struct {
	file   *SourceFile
	offset uint32
	line   uint32
	col    uint32
}

// Checkpoint is a remembered stream position.
type Checkpoint struct {
	offset uint32
	line   uint32
	col    uint32
}

// Offset returns the current byte offset.
func (s *SourceStream) Offset() uint32 { return s.offset }

// Line returns the current 1-based line.
func (s *SourceStream) Line() uint32 { return s.line }

// Column returns the current 1-based column.
func (s *SourceStream) Column() uint32 { return s.col }

// File returns the stream's source file.
func (s *SourceStream) File() *SourceFile { return s.file }

// Remaining returns the text from the cursor to end of input.
func (s *SourceStream) Remaining() string {
	return s.file.Content[s.offset:]
}

// IsEOF returns true at end of input.
func (s *SourceStream) IsEOF() bool {
	return s.offset >= s.file.Length()
}

// PeekChar returns the rune at the cursor without advancing, or the
// eof sentinel (-1) at end of input.
func (s *SourceStream) PeekChar() rune {
	if s.IsEOF() {
		return eofRune
	}
	r, _ := utf8.DecodeRuneInString(s.file.Content[s.offset:])
	return r
}

// PeekAt returns the rune delta runes past the cursor, or -1.
func (s *SourceStream) PeekAt(delta int) rune {
	rest := s.file.Content[s.offset:]
	for i := 0; i < delta; i++ {
		if rest == "" {
			return eofRune
		}
		_, w := utf8.DecodeRuneInString(rest)
		rest = rest[w:]
	}
	if rest == "" {
		return eofRune
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

// AdvanceChar consumes one rune and returns it, updating line and
// column accounting. Returns -1 at end of input.
func (s *SourceStream) AdvanceChar() rune {
	if s.IsEOF() {
		return eofRune
	}
	r, w := utf8.DecodeRuneInString(s.file.Content[s.offset:])
	s.offset += uint32(w)
	switch r {
	case '\n':
		s.line++
		s.col = 1
	case '\r':
		if s.PeekChar() == '\n' {
			// part of a \r\n pair; the \n does the break
			s.col++
		} else {
			s.line++
			s.col = 1
		}
	default:
		s.col++
	}
	return r
}

// AdvanceWhile consumes runes while pred holds and returns the
// consumed text.
func (s *SourceStream) AdvanceWhile(pred func(rune) bool) string {
	start := s.offset
	for !s.IsEOF() && pred(s.PeekChar()) {
		s.AdvanceChar()
	}
	return s.file.Content[start:s.offset]
}

// Checkpoint remembers the current position for Restore or SpanFrom.
func (s *SourceStream) Checkpoint() Checkpoint {
	return Checkpoint{offset: s.offset, line: s.line, col: s.col}
}

// Restore rewinds the stream to a prior checkpoint.
func (s *SourceStream) Restore(cp Checkpoint) {
	s.offset, s.line, s.col = cp.offset, cp.line, cp.col
}

// SpanFrom returns the span from the checkpoint to the cursor.
func (s *SourceStream) SpanFrom(cp Checkpoint) diagnostics.Span {
	return diagnostics.New(cp.offset, cp.line, s.line, s.offset-cp.offset)
}

// TextFrom returns the text from the checkpoint to the cursor.
func (s *SourceStream) TextFrom(cp Checkpoint) string {
	return s.file.Content[cp.offset:s.offset]
}

// GenerateError fabricates an error-severity diagnostic at the
// current position.
func (s *SourceStream) GenerateError(kind diagnostics.ErrorKind) diagnostics.Diagnostic {
	return diagnostics.NewDiagnostic(kind, diagnostics.At(s.offset, s.line), s.file.Name, s.file.Content)
}

// GenerateErrorRegion fabricates an error-severity diagnostic over a
// remembered region.
func (s *SourceStream) GenerateErrorRegion(kind diagnostics.ErrorKind, span diagnostics.Span) diagnostics.Diagnostic {
	return diagnostics.NewDiagnostic(kind, span, s.file.Name, s.file.Content)
}
