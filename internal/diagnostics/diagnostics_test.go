// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diagnostics_test

import (
	"testing"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/stretchr/testify/assert"
)

func TestSpanConstructors(t *testing.T) {
	assert.True(t, diagnostics.Zero().IsZero())

	at := diagnostics.At(10, 2)
	assert.Equal(t, uint32(10), at.Offset)
	assert.Equal(t, uint32(1), at.Length)
	assert.Equal(t, uint32(2), at.LineStart)
	assert.Equal(t, uint32(2), at.LineEnd)
	assert.Equal(t, uint32(11), at.End())

	span := diagnostics.New(5, 1, 3, 20)
	assert.Equal(t, uint32(25), span.End())
}

func TestDiagnostic_StructuralEquality(t *testing.T) {
	span := diagnostics.At(0, 1)
	a := diagnostics.NewDiagnostic(diagnostics.UnterminatedString{}, span, "a.bas", "x")
	b := diagnostics.NewDiagnostic(diagnostics.UnterminatedString{}, span, "a.bas", "x")
	assert.True(t, a.Equal(b))

	c := b.WithSeverity(diagnostics.SeverityWarning)
	assert.False(t, a.Equal(c))

	d := b.WithNote("check the previous line")
	assert.False(t, a.Equal(d))
	assert.Empty(t, b.Notes, "WithNote must not mutate the receiver")
}

func TestDiagnostic_SeverityDefaultsToError(t *testing.T) {
	d := diagnostics.NewDiagnostic(diagnostics.UnknownToken{Token: "?"}, diagnostics.Zero(), "a.bas", "")
	assert.Equal(t, diagnostics.SeverityError, d.Severity)
}

func TestErrorKind_Layers(t *testing.T) {
	cases := []struct {
		kind  diagnostics.ErrorKind
		layer diagnostics.Layer
	}{
		{diagnostics.UnknownToken{Token: "?"}, diagnostics.LayerLexer},
		{diagnostics.VersionKeywordMissing{}, diagnostics.LayerClass},
		{diagnostics.AttributeKeywordMissing{}, diagnostics.LayerModule},
		{diagnostics.ResourceLoadError{Path: "a.frx"}, diagnostics.LayerForm},
		{diagnostics.UnterminatedSectionHeader{}, diagnostics.LayerProject},
		{diagnostics.OffsetOutOfBounds{Offset: 9, FileLength: 3}, diagnostics.LayerResource},
		{diagnostics.Malformed{Reason: "bad bytes"}, diagnostics.LayerSourceFile},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.layer, tc.kind.Layer(), tc.kind.Message())
		assert.NotEmpty(t, tc.kind.Message())
	}
}

func TestDiagnostic_Labels(t *testing.T) {
	d := diagnostics.NewDiagnostic(diagnostics.UnterminatedString{}, diagnostics.At(4, 1), "a.bas", "s = \"x")
	d = d.WithLabel(diagnostics.At(4, 1), "string opened here")
	assert.Len(t, d.Labels, 1)
	assert.Equal(t, "string opened here", d.Labels[0].Message)
}
