// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package resources implements the reader for VB6 form resource files
// (.frx). An FRX file has no global header; each record is
// self-describing at its offset, and the framing is chosen purely by
// the byte patterns found there. Two of the framings repair a known
// off-by-one bug in the IDE, whose short string records declare one
// byte more than they hold.
package resources

import (
	"encoding/binary"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/playbymail/vb6parse/internal/diagnostics"
)

// Resolver resolves a resource reference: the named file, read at the
// given offset, yields one record's payload. Form parsing takes one
// of these; callers may stub it.
type Resolver func(path string, offset uint32) ([]byte, error)

// ResolveError carries the resource-layer diagnostic kind for a
// failed resolution.
type ResolveError struct {
	Kind diagnostics.ErrorKind
}

func (e *ResolveError) Error() string {
	return e.Kind.Message()
}

func failWith(kind diagnostics.ErrorKind) ([]byte, error) {
	return nil, &ResolveError{Kind: kind}
}

// ltMagic marks the 12-byte framing ("lt\0\0" after the leading size).
var ltMagic = []byte{'l', 't', 0, 0}

// ResolveBytes returns the record payload at offset within buffer.
//
// Framings, tried in order:
//  1. 12-byte: [u32 sizeA]["lt\0\0"][u32 sizeB][payload sizeB].
//     sizeB must equal sizeA-8; sizeA==8 with sizeB==0 is an empty
//     record (an icon that was added and later removed).
//  2. 0xFF-prefixed: [0xFF][u16 length][payload].
//  3. List: [u16 count][03 00 | 07 00] then count of [u16 len][bytes].
//     The whole run, header included, is returned; see ListResolver.
//  4. 4-byte: [u32 length][payload], chosen when the first four bytes
//     contain a zero and nothing above matched.
//  5. Fallback: [u8 length][payload].
func ResolveBytes(buffer []byte, offset uint32) ([]byte, error) {
	length := len(buffer)
	at := int(offset)
	if at >= length {
		return failWith(diagnostics.OffsetOutOfBounds{Offset: offset, FileLength: uint32(length)})
	}

	// 12-byte framing
	if at+12 <= length && string(buffer[at+4:at+8]) == string(ltMagic) {
		sizeA := binary.LittleEndian.Uint32(buffer[at:])
		sizeB := binary.LittleEndian.Uint32(buffer[at+8:])
		if sizeA == 8 && sizeB == 0 {
			return []byte{}, nil
		}
		if sizeB != sizeA-8 {
			return failWith(diagnostics.FramingMismatch{A: sizeA, B: sizeB})
		}
		start := at + 12
		end := start + int(sizeB)
		if end > length {
			return failWith(diagnostics.RecordOutOfBounds{End: uint32(end), FileLength: uint32(length)})
		}
		return buffer[start:end], nil
	}

	// 0xFF-prefixed 16-bit framing
	if buffer[at] == 0xFF {
		if at+3 > length {
			return failWith(diagnostics.RecordOutOfBounds{End: uint32(at + 3), FileLength: uint32(length)})
		}
		size := int(binary.LittleEndian.Uint16(buffer[at+1:]))
		// the IDE's off-by-one: short string records declare one byte
		// more than they hold, usually a missing final '\n'
		if at+3+size > length {
			size--
		}
		start := at + 3
		end := start + size
		if end > length {
			return failWith(diagnostics.RecordOutOfBounds{End: uint32(end), FileLength: uint32(length)})
		}
		return buffer[start:end], nil
	}

	// list framing
	if at+4 <= length && isListMagic(buffer[at+2:at+4]) {
		count := int(binary.LittleEndian.Uint16(buffer[at:]))
		cursor := at + 4
		for i := 0; i < count; i++ {
			if cursor+2 > length {
				return failWith(diagnostics.RecordOutOfBounds{End: uint32(cursor + 2), FileLength: uint32(length)})
			}
			itemSize := int(binary.LittleEndian.Uint16(buffer[cursor:]))
			cursor += 2 + itemSize
		}
		if cursor > length {
			return failWith(diagnostics.RecordOutOfBounds{End: uint32(cursor), FileLength: uint32(length)})
		}
		return buffer[at:cursor], nil
	}

	// 4-byte length framing
	if at+4 <= length && hasZeroByte(buffer[at:at+4]) {
		size := int(binary.LittleEndian.Uint32(buffer[at:]))
		start := at + 4
		end := start + size
		if end > length {
			return failWith(diagnostics.RecordOutOfBounds{End: uint32(end), FileLength: uint32(length)})
		}
		return buffer[start:end], nil
	}

	// fallback 8-bit framing, with the same off-by-one repair
	size := int(buffer[at])
	start := at + 1
	if start+size > length {
		size--
	}
	end := start + size
	if end > length || end < start {
		return failWith(diagnostics.RecordOutOfBounds{End: uint32(start + size), FileLength: uint32(length)})
	}
	return buffer[start:end], nil
}

func isListMagic(b []byte) bool {
	return (b[0] == 0x03 || b[0] == 0x07) && b[1] == 0x00
}

func hasZeroByte(b []byte) bool {
	for _, v := range b {
		if v == 0 {
			return true
		}
	}
	return false
}

// ListResolver decodes a list record (as returned by ResolveBytes for
// the list framing) into its items, lossy-decoded as UTF-8.
func ListResolver(buffer []byte) []string {
	var items []string
	if len(buffer) < 2 {
		return items
	}
	count := int(binary.LittleEndian.Uint16(buffer))
	cursor := 4
	for i := 0; i < count; i++ {
		if cursor+2 > len(buffer) {
			return items
		}
		size := int(binary.LittleEndian.Uint16(buffer[cursor:]))
		start := cursor + 2
		if start+size > len(buffer) {
			return items
		}
		items = append(items, string(buffer[start:start+size]))
		cursor = start + size
	}
	return items
}

// FileResolver resolves records against the filesystem, keeping the
// most recently read files in memory. One form references the same
// .frx file once per resource property, so the cache pays for itself
// immediately.
type FileResolver struct {
	cache *lru.Cache[string, []byte]
}

// NewFileResolver returns a resolver caching up to size files.
func NewFileResolver(size int) (*FileResolver, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("resource cache: %w", err)
	}
	return &FileResolver{cache: cache}, nil
}

// Resolve reads the record at offset in the named file.
func (r *FileResolver) Resolve(path string, offset uint32) ([]byte, error) {
	buffer, ok := r.cache.Get(path)
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return failWith(diagnostics.ReadError{Path: path})
		}
		buffer = data
		r.cache.Add(path, buffer)
	}
	return ResolveBytes(buffer, offset)
}
