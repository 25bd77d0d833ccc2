// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lexers_test

import (
	"strings"
	"testing"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/lexers"
	"github.com/playbymail/vb6parse/internal/sources"
)

func tokenize(t *testing.T, input string) (*lexers.TokenStream, []diagnostics.Diagnostic) {
	t.Helper()
	f, err := sources.Decode("test.bas", []byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ts, failures := lexers.Tokenize(f.Stream()).Unpack()
	if ts == nil {
		t.Fatal("tokenize returned no stream")
	}
	return ts, failures
}

// joined re-concatenates every token's text.
func joined(ts *lexers.TokenStream) string {
	var sb strings.Builder
	for _, tok := range ts.Tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func kinds(ts *lexers.TokenStream) []lexers.TokenKind {
	var out []lexers.TokenKind
	for _, tok := range ts.Tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexer_Lossless(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"sub", "Sub Test()\r\nEnd Sub\r\n"},
		{"comments", "' leading comment\r\nDim x ' trailing\r\n"},
		{"rem", "Rem old school comment\r\nx = 1\r\n"},
		{"continuation", "x = 1 + _\r\n    2\r\n"},
		{"strings", "s = \"he said \"\"hi\"\"\"\r\n"},
		{"numbers", "n = 1 + 2.5 + 1.2E3 + &HFF + &O17 + 10& + 1.25@\r\n"},
		{"date", "d = #1/1/1999#\r\n"},
		{"unterminated", "s = \"oops\r\nDim y\r\n"},
		{"bad bytes", "x = 1 ? 2\r\n"},
		{"bare cr", "Dim x\rDim y\n"},
		{"no final newline", "Dim x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, _ := tokenize(t, tc.input)
			if got := joined(ts); got != tc.input {
				t.Errorf("lossless round trip failed\nGOT:  %q\nWANT: %q", got, tc.input)
			}
			last := ts.Tokens[len(ts.Tokens)-1]
			if last.Kind != lexers.EOF {
				t.Errorf("last token is %s, want EOF", last.Kind)
			}
			if got := last.Span.Offset; got != uint32(len(tc.input)) {
				t.Errorf("EOF offset = %d, want %d", got, len(tc.input))
			}
		})
	}
}

func TestLexer_Kinds(t *testing.T) {
	ts, failures := tokenize(t, "Sub Test()\r\n")
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	want := []lexers.TokenKind{
		lexers.SubKeyword,
		lexers.Whitespace,
		lexers.Identifier,
		lexers.LeftParenthesis,
		lexers.RightParenthesis,
		lexers.Newline,
		lexers.EOF,
	}
	got := kinds(ts)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexer_KeywordsAreCaseInsensitive(t *testing.T) {
	ts, _ := tokenize(t, "dim X\r\nDIM Y\r\nDim Z\r\n")
	count := 0
	for _, tok := range ts.Tokens {
		if tok.Kind == lexers.DimKeyword {
			count++
		}
	}
	if count != 3 {
		t.Errorf("found %d Dim keywords, want 3", count)
	}
	// source casing is preserved in the token text
	if ts.Tokens[0].Text != "dim" {
		t.Errorf("token text = %q, want %q", ts.Tokens[0].Text, "dim")
	}
}

func TestLexer_NumericLiterals(t *testing.T) {
	cases := []struct {
		input string
		want  lexers.TokenKind
	}{
		{"42", lexers.IntegerLiteral},
		{"42%", lexers.IntegerLiteral},
		{"42&", lexers.LongLiteral},
		{"42!", lexers.SingleLiteral},
		{"1#", lexers.DoubleLiteral},
		{"1.5", lexers.DoubleLiteral},
		{"1.2E3", lexers.DoubleLiteral},
		{"1.25@", lexers.CurrencyLiteral},
		{"&HFF", lexers.HexLiteral},
		{"&HFF&", lexers.HexLiteral},
		{"&O17", lexers.OctalLiteral},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			ts, failures := tokenize(t, tc.input)
			if len(failures) != 0 {
				t.Fatalf("unexpected failures: %v", failures)
			}
			tok := ts.Tokens[0]
			if tok.Kind != tc.want {
				t.Errorf("kind = %s, want %s", tok.Kind, tc.want)
			}
			if tok.Text != tc.input {
				t.Errorf("text = %q, want %q", tok.Text, tc.input)
			}
		})
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	ts, failures := tokenize(t, "s = \"a\"\"b\"\r\n")
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	var lit *lexers.Token
	for i := range ts.Tokens {
		if ts.Tokens[i].Kind == lexers.StringLiteral {
			lit = &ts.Tokens[i]
			break
		}
	}
	if lit == nil {
		t.Fatal("no string literal found")
	}
	if lit.Text != "\"a\"\"b\"" {
		t.Errorf("text = %q", lit.Text)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, failures := tokenize(t, "s = \"oops\r\nDim y\r\n")
	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.UnterminatedString); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected UnterminatedString, got %v", failures)
	}
}

func TestLexer_BareCarriageReturn(t *testing.T) {
	ts, failures := tokenize(t, "Dim x\rDim y\n")
	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.IsolatedCarriageReturn); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected IsolatedCarriageReturn, got %v", failures)
	}
	// the stream still advances; the bare \r is a newline token
	if got := joined(ts); got != "Dim x\rDim y\n" {
		t.Errorf("lossless round trip failed: %q", got)
	}
}

func TestLexer_LineContinuation(t *testing.T) {
	ts, failures := tokenize(t, "x = 1 + _\r\n    2\r\n")
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	var cont *lexers.Token
	for i := range ts.Tokens {
		if ts.Tokens[i].Kind == lexers.LineContinuation {
			cont = &ts.Tokens[i]
			break
		}
	}
	if cont == nil {
		t.Fatal("no line continuation token")
	}
	if cont.Text != "_\r\n" {
		t.Errorf("continuation text = %q, want %q", cont.Text, "_\r\n")
	}
}

func TestLexer_RemComment(t *testing.T) {
	ts, _ := tokenize(t, "Rem whole line\r\nx = 1\r\n")
	if ts.Tokens[0].Kind != lexers.Comment {
		t.Errorf("kind = %s, want Comment", ts.Tokens[0].Kind)
	}
	if ts.Tokens[0].Text != "Rem whole line" {
		t.Errorf("text = %q", ts.Tokens[0].Text)
	}
	// an identifier like Remainder must not start a comment
	ts, _ = tokenize(t, "Remainder = 1\r\n")
	if ts.Tokens[0].Kind != lexers.Identifier {
		t.Errorf("kind = %s, want Identifier", ts.Tokens[0].Kind)
	}
}

func TestLexer_UnknownToken(t *testing.T) {
	ts, failures := tokenize(t, "x = 1 ? 2\r\n")
	foundBad := false
	for _, tok := range ts.Tokens {
		if tok.Kind == lexers.BadToken && tok.Text == "?" {
			foundBad = true
		}
	}
	if !foundBad {
		t.Error("expected a BadToken leaf for '?'")
	}
	foundDiag := false
	for _, d := range failures {
		if kind, ok := d.Kind.(diagnostics.UnknownToken); ok && kind.Token == "?" {
			foundDiag = true
		}
	}
	if !foundDiag {
		t.Errorf("expected UnknownToken diagnostic, got %v", failures)
	}
}

func TestLexer_TypeSuffixedIdentifier(t *testing.T) {
	ts, _ := tokenize(t, "Name$ = \"x\"\r\n")
	// a suffixed word is an identifier even when the base is reserved
	if ts.Tokens[0].Kind != lexers.Identifier {
		t.Errorf("kind = %s, want Identifier", ts.Tokens[0].Kind)
	}
	if ts.Tokens[0].Text != "Name$" {
		t.Errorf("text = %q", ts.Tokens[0].Text)
	}
}

func TestLexer_DiagnosticSpansInBounds(t *testing.T) {
	input := "s = \"oops\r\nx = 1 ? 2\rDim z\r\n"
	_, failures := tokenize(t, input)
	for _, d := range failures {
		if d.PrimarySpan.End() > uint32(len(input)) {
			t.Errorf("span %v exceeds source length %d", d.PrimarySpan, len(input))
		}
	}
}
