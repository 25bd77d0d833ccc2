// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sources implements decoding of legacy VB6 source bytes and
// the cursor used by the lexer. VB6 tooling wrote files as either
// UTF-8 or CP-1252; we try UTF-8 first and fall back to a lossy
// Windows-1252 decode. Offsets and line numbers are 32-bit; files
// larger than 4 GiB are not supported.
package sources

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"golang.org/x/text/encoding/charmap"
)

// SourceFile is an immutable decoded source file. Once constructed,
// Content is the authoritative text for all offsets.
type SourceFile struct {
	Name    string
	Content string
}

// MalformedError is the single recoverable decode error kind.
type MalformedError struct {
	Message string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed source: %s", e.Message)
}

// Kind returns the diagnostic kind for the decode failure.
func (e *MalformedError) Kind() diagnostics.ErrorKind {
	return diagnostics.Malformed{Reason: e.Message}
}

// Decode maps raw bytes to a SourceFile. Valid UTF-8 is taken as-is;
// anything else is decoded as Windows-1252 with unmappable bytes
// replaced by U+FFFD. Line endings are not normalized.
func Decode(name string, input []byte) (*SourceFile, error) {
	if uint64(len(input)) > math.MaxUint32 {
		return nil, &MalformedError{Message: fmt.Sprintf("%s: file exceeds 4 GiB limit", name)}
	}
	if utf8.Valid(input) {
		return &SourceFile{Name: name, Content: string(input)}, nil
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(input)
	if err != nil {
		return nil, &MalformedError{Message: fmt.Sprintf("%s: %v", name, err)}
	}
	return &SourceFile{Name: name, Content: string(text)}, nil
}

// DecodeWithReplacement is the total entry point: it never fails on
// byte content, only on the 4 GiB limit.
func DecodeWithReplacement(name string, input []byte) (*SourceFile, error) {
	if uint64(len(input)) > math.MaxUint32 {
		return nil, &MalformedError{Message: fmt.Sprintf("%s: file exceeds 4 GiB limit", name)}
	}
	if utf8.Valid(input) {
		return &SourceFile{Name: name, Content: string(input)}, nil
	}
	out := make([]byte, 0, len(input))
	for _, b := range input {
		// DecodeByte yields U+FFFD for the five bytes 1252 leaves undefined.
		out = utf8.AppendRune(out, charmap.Windows1252.DecodeByte(b))
	}
	return &SourceFile{Name: name, Content: string(out)}, nil
}

// Length returns the content length in bytes.
func (f *SourceFile) Length() uint32 {
	return uint32(len(f.Content))
}

// Stream returns a new cursor positioned at the start of the file.
func (f *SourceFile) Stream() *SourceStream {
	return &SourceStream{file: f, line: 1, col: 1}
}
