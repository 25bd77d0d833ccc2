// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package results_test

import (
	"testing"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/stretchr/testify/assert"
)

func TestParseResult(t *testing.T) {
	value := 42
	r := results.Ok(&value)
	assert.True(t, r.HasResult())
	assert.False(t, r.HasFailures())
	assert.Equal(t, 42, *r.Result())

	d := diagnostics.NewDiagnostic(diagnostics.UnterminatedString{}, diagnostics.Zero(), "a.bas", "")
	r = results.New(&value, []diagnostics.Diagnostic{d})
	assert.True(t, r.HasResult())
	assert.True(t, r.HasFailures())

	// a nil result with failures is legal
	f := results.Fail[int](d)
	assert.False(t, f.HasResult())
	assert.True(t, f.HasFailures())
	assert.Nil(t, f.Result())
}

func TestParseResult_Extend(t *testing.T) {
	value := 1
	r := results.Ok(&value)
	d := diagnostics.NewDiagnostic(diagnostics.UnknownToken{Token: "?"}, diagnostics.Zero(), "a.bas", "")
	r.Extend([]diagnostics.Diagnostic{d})
	r.Extend([]diagnostics.Diagnostic{d})
	assert.Len(t, r.Failures(), 2)

	got, failures := r.Unpack()
	assert.Equal(t, 1, *got)
	assert.Len(t, failures, 2)
}
