// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package lexers implements the tokenizer for VB6 source files. It is
// lossless: every input byte lands in exactly one token, including
// whitespace, newlines, comments, and line continuations.
package lexers

import (
	"strings"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/playbymail/vb6parse/internal/sources"
)

// Tokenize consumes the entire stream and returns the token sequence.
// Unrecognized input becomes BadToken leaves with a diagnostic;
// tokenization never stops early. The final token is always EOF.
func Tokenize(stream *sources.SourceStream) results.ParseResult[TokenStream] {
	lx := &lexer{stream: stream}
	for !stream.IsEOF() {
		lx.next()
	}
	lx.emitAt(EOF, stream.Checkpoint())
	ts := &TokenStream{File: stream.File(), Tokens: lx.tokens}
	return results.New(ts, lx.failures)
}

type lexer struct {
	stream   *sources.SourceStream
	tokens   []Token
	failures []diagnostics.Diagnostic
}

// next scans exactly one token. The caller guarantees !IsEOF.
func (lx *lexer) next() {
	cp := lx.stream.Checkpoint()
	ch := lx.stream.PeekChar()

	switch {
	case ch == ' ' || ch == '\t':
		lx.stream.AdvanceWhile(func(r rune) bool { return r == ' ' || r == '\t' })
		lx.emitAt(Whitespace, cp)
	case ch == '\r' || ch == '\n':
		lx.scanNewline(cp)
	case ch == '\'':
		lx.stream.AdvanceWhile(notEndOfLine)
		lx.emitAt(Comment, cp)
	case ch == '"':
		lx.scanString(cp)
	case ch == '#':
		lx.scanDateOrOctothorpe(cp)
	case ch == '_' && lx.afterWhitespace() && isEndOfLine(lx.stream.PeekAt(1)):
		lx.stream.AdvanceChar() // underscore
		lx.consumeLineBreak()
		lx.emitAt(LineContinuation, cp)
	case isIdentStart(ch):
		lx.scanWord(cp)
	case isDigit(ch) || (ch == '.' && isDigit(lx.stream.PeekAt(1))):
		lx.scanNumber(cp)
	case ch == '&':
		lx.scanAmpersand(cp)
	default:
		lx.scanOperator(cp, ch)
	}
}

func (lx *lexer) emitAt(kind TokenKind, cp sources.Checkpoint) Token {
	tok := Token{
		Kind: kind,
		Span: lx.stream.SpanFrom(cp),
		Text: lx.stream.TextFrom(cp),
	}
	lx.tokens = append(lx.tokens, tok)
	return tok
}

func (lx *lexer) fail(kind diagnostics.ErrorKind, span diagnostics.Span) {
	lx.failures = append(lx.failures, lx.stream.GenerateErrorRegion(kind, span))
}

// afterWhitespace reports whether the previous token was whitespace.
// A line continuation is only recognized after whitespace.
func (lx *lexer) afterWhitespace() bool {
	if len(lx.tokens) == 0 {
		return false
	}
	return lx.tokens[len(lx.tokens)-1].Kind == Whitespace
}

// consumeLineBreak advances past "\r\n", "\n", or a bare "\r".
func (lx *lexer) consumeLineBreak() {
	if lx.stream.PeekChar() == '\r' {
		lx.stream.AdvanceChar()
		if lx.stream.PeekChar() == '\n' {
			lx.stream.AdvanceChar()
		}
		return
	}
	if lx.stream.PeekChar() == '\n' {
		lx.stream.AdvanceChar()
	}
}

func (lx *lexer) scanNewline(cp sources.Checkpoint) {
	bare := lx.stream.PeekChar() == '\r' && lx.stream.PeekAt(1) != '\n'
	lx.consumeLineBreak()
	tok := lx.emitAt(Newline, cp)
	if bare {
		lx.fail(diagnostics.IsolatedCarriageReturn{}, tok.Span)
	}
}

// scanString scans a double-quoted literal with "" as the embedded
// quote. Strings never span newlines; a newline closes the literal
// and yields an UnterminatedString failure.
func (lx *lexer) scanString(cp sources.Checkpoint) {
	lx.stream.AdvanceChar() // opening quote
	for {
		ch := lx.stream.PeekChar()
		if ch == eof || isEndOfLine(ch) {
			tok := lx.emitAt(StringLiteral, cp)
			lx.fail(diagnostics.UnterminatedString{}, tok.Span)
			// the safe reading: a continuation cannot appear inside a
			// string, so flag one that would have
			if body := tok.Text; strings.HasSuffix(body, "_") &&
				(strings.HasSuffix(body, " _") || strings.HasSuffix(body, "\t_")) {
				lx.fail(diagnostics.LineContinuationInString{}, tok.Span)
			}
			return
		}
		lx.stream.AdvanceChar()
		if ch == '"' {
			if lx.stream.PeekChar() == '"' {
				lx.stream.AdvanceChar() // embedded quote
				continue
			}
			lx.emitAt(StringLiteral, cp)
			return
		}
	}
}

// scanDateOrOctothorpe disambiguates a date literal from a lone '#'
// (type suffix position, file numbers). A date literal requires a
// closing '#' on the same line.
func (lx *lexer) scanDateOrOctothorpe(cp sources.Checkpoint) {
	rest := lx.stream.Remaining()[1:] // past the opening '#'
	end := -1
	for i, r := range rest {
		if r == '\r' || r == '\n' {
			break
		}
		if r == '#' {
			end = i
			break
		}
	}
	if end < 0 {
		lx.stream.AdvanceChar()
		lx.emitAt(Octothorpe, cp)
		return
	}
	lx.stream.AdvanceChar() // opening '#'
	lx.stream.AdvanceWhile(func(r rune) bool { return r != '#' })
	lx.stream.AdvanceChar() // closing '#'
	lx.emitAt(DateLiteral, cp)
}

// scanWord scans an identifier or keyword with an optional trailing
// type suffix. The suffix is part of the token text; a suffixed word
// is never a keyword.
func (lx *lexer) scanWord(cp sources.Checkpoint) {
	lx.stream.AdvanceWhile(isIdentPart)
	word := lx.stream.TextFrom(cp)
	if suffix := lx.stream.PeekChar(); isTypeSuffix(suffix) {
		lx.stream.AdvanceChar()
		lx.emitAt(Identifier, cp)
		return
	}
	if kind, ok := LookupKeyword(word); ok {
		if kind == RemKeyword && lx.atRemCommentBoundary() {
			// A Rem comment runs to end of line, keyword included.
			lx.stream.AdvanceWhile(notEndOfLine)
			lx.emitAt(Comment, cp)
			return
		}
		lx.emitAt(kind, cp)
		return
	}
	lx.emitAt(Identifier, cp)
}

// atRemCommentBoundary reports whether the character after "Rem" lets
// it introduce a comment (space or end of line).
func (lx *lexer) atRemCommentBoundary() bool {
	ch := lx.stream.PeekChar()
	return ch == ' ' || ch == '\t' || isEndOfLine(ch) || ch == eof
}

// scanNumber scans the decimal literal family: integer digits, an
// optional fraction, an optional exponent, and an optional type
// suffix that fixes the literal's kind.
func (lx *lexer) scanNumber(cp sources.Checkpoint) {
	floating := false
	lx.stream.AdvanceWhile(isDigit)
	if lx.stream.PeekChar() == '.' && isDigit(lx.stream.PeekAt(1)) {
		floating = true
		lx.stream.AdvanceChar()
		lx.stream.AdvanceWhile(isDigit)
	}
	if ch := lx.stream.PeekChar(); ch == 'e' || ch == 'E' {
		next := lx.stream.PeekAt(1)
		sign := next == '+' || next == '-'
		if isDigit(next) || (sign && isDigit(lx.stream.PeekAt(2))) {
			floating = true
			lx.stream.AdvanceChar() // e
			if sign {
				lx.stream.AdvanceChar()
			}
			lx.stream.AdvanceWhile(isDigit)
		}
	}

	kind := IntegerLiteral
	if floating {
		kind = DoubleLiteral
	}
	switch lx.stream.PeekChar() {
	case '%':
		lx.stream.AdvanceChar()
		kind = IntegerLiteral
	case '&':
		lx.stream.AdvanceChar()
		kind = LongLiteral
	case '!':
		lx.stream.AdvanceChar()
		kind = SingleLiteral
	case '#':
		lx.stream.AdvanceChar()
		kind = DoubleLiteral
	case '@':
		lx.stream.AdvanceChar()
		kind = CurrencyLiteral
	}
	lx.emitAt(kind, cp)
}

// scanAmpersand scans &H and &O prefixed literals, falling back to the
// concatenation operator.
func (lx *lexer) scanAmpersand(cp sources.Checkpoint) {
	marker := lx.stream.PeekAt(1)
	if (marker == 'h' || marker == 'H') && isHexDigit(lx.stream.PeekAt(2)) {
		lx.stream.AdvanceChar() // &
		lx.stream.AdvanceChar() // H
		lx.stream.AdvanceWhile(isHexDigit)
		lx.consumeIntegerSuffix()
		lx.emitAt(HexLiteral, cp)
		return
	}
	if (marker == 'o' || marker == 'O') && isOctalDigit(lx.stream.PeekAt(2)) {
		lx.stream.AdvanceChar() // &
		lx.stream.AdvanceChar() // O
		lx.stream.AdvanceWhile(isOctalDigit)
		lx.consumeIntegerSuffix()
		lx.emitAt(OctalLiteral, cp)
		return
	}
	lx.stream.AdvanceChar()
	lx.emitAt(Ampersand, cp)
}

func (lx *lexer) consumeIntegerSuffix() {
	if ch := lx.stream.PeekChar(); ch == '&' || ch == '%' {
		lx.stream.AdvanceChar()
	}
}

func (lx *lexer) scanOperator(cp sources.Checkpoint, ch rune) {
	var kind TokenKind
	switch ch {
	case '(':
		kind = LeftParenthesis
	case ')':
		kind = RightParenthesis
	case ',':
		kind = Comma
	case ':':
		kind = Colon
	case ';':
		kind = Semicolon
	case '.':
		kind = Period
	case '=':
		kind = EqualOperator
	case '+':
		kind = AdditionOperator
	case '-':
		kind = SubtractionOperator
	case '*':
		kind = MultiplicationOperator
	case '/':
		kind = DivisionOperator
	case '\\':
		kind = BackslashOperator
	case '^':
		kind = ExponentOperator
	case '$':
		kind = DollarSign
	case '%':
		kind = PercentSign
	case '!':
		kind = ExclamationMark
	case '@':
		kind = AtSign
	case '<':
		lx.stream.AdvanceChar()
		switch lx.stream.PeekChar() {
		case '=':
			lx.stream.AdvanceChar()
			lx.emitAt(LessThanEqualOperator, cp)
		case '>':
			lx.stream.AdvanceChar()
			lx.emitAt(NotEqualOperator, cp)
		default:
			lx.emitAt(LessThanOperator, cp)
		}
		return
	case '>':
		lx.stream.AdvanceChar()
		if lx.stream.PeekChar() == '=' {
			lx.stream.AdvanceChar()
			lx.emitAt(GreaterThanEqualOperator, cp)
			return
		}
		lx.emitAt(GreaterThanOperator, cp)
		return
	default:
		lx.stream.AdvanceChar()
		tok := lx.emitAt(BadToken, cp)
		lx.fail(diagnostics.UnknownToken{Token: tok.Text}, tok.Span)
		return
	}
	lx.stream.AdvanceChar()
	lx.emitAt(kind, cp)
}

const eof rune = -1

func isEndOfLine(ch rune) bool { return ch == '\r' || ch == '\n' }

func notEndOfLine(ch rune) bool { return ch != '\r' && ch != '\n' }

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isOctalDigit(ch rune) bool { return '0' <= ch && ch <= '7' }

func isIdentStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch rune) bool { return isIdentStart(ch) || isDigit(ch) }

func isTypeSuffix(ch rune) bool {
	switch ch {
	case '$', '%', '&', '!', '#', '@':
		return true
	default:
		return false
	}
}
