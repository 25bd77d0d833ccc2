// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package cst implements a lossless concrete syntax tree for VB6
// source. The builder is a recursive-descent parser over the token
// stream; every token, trivia included, becomes a leaf of exactly one
// non-terminal, so the tree's text reproduces the input byte for byte.
// Parse failures never drop tokens: unmatched input is absorbed into
// BadContent nodes and a diagnostic is collected.
package cst

import (
	"strings"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/lexers"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/playbymail/vb6parse/internal/sources"
)

// Parse builds a CST from a token stream. The returned tree is always
// non-nil; failures carry whatever went wrong along the way.
func Parse(ts *lexers.TokenStream) results.ParseResult[Tree] {
	p := &parser{file: ts.File, toks: ts.Tokens}

	var children []*Node
	for {
		p.triviaInto(&children)
		if p.eof() {
			break
		}
		switch p.current().Kind {
		case lexers.Newline, lexers.Colon:
			p.bumpInto(&children)
		default:
			children = append(children, p.parseStatement())
		}
	}
	// the EOF leaf is zero-length; keeping it makes walking uniform
	if p.pos < len(p.toks) {
		p.bumpInto(&children)
	}

	tree := NewTree(p.file.Name, NonTerminal(Root, children))
	return results.New(tree, p.failures)
}

// FromSource decodes nothing: it lexes an already-decoded source file
// and parses the tokens, merging the failures of both stages.
func FromSource(f *sources.SourceFile) results.ParseResult[Tree] {
	tsr := lexers.Tokenize(f.Stream())
	ts, failures := tsr.Unpack()
	if ts == nil {
		return results.Fail[Tree](failures...)
	}
	r := Parse(ts)
	out := results.New(r.Result(), failures)
	out.Extend(r.Failures())
	return out
}

type parser struct {
	file     *sources.SourceFile
	toks     []lexers.Token
	pos      int
	failures []diagnostics.Diagnostic
}

// ====== Token access ======

func (p *parser) eof() bool {
	return p.pos >= len(p.toks) || p.toks[p.pos].Kind == lexers.EOF
}

func (p *parser) current() lexers.Token {
	return p.toks[p.pos]
}

// peekKind returns the kind of the next significant token without
// consuming anything. Whitespace, comments, and line continuations
// are skipped; newlines are significant (they terminate statements).
func (p *parser) peekKind() lexers.TokenKind {
	_, kind := p.peekAt(0)
	return kind
}

// peekKind2 returns the kind of the second significant token.
func (p *parser) peekKind2() lexers.TokenKind {
	i, kind := p.peekAt(0)
	if kind == lexers.EOF {
		return kind
	}
	_, kind = p.peekAt(i + 1 - p.pos)
	return kind
}

// peekText returns the text of the next significant token.
func (p *parser) peekText() string {
	i, kind := p.peekAt(0)
	if kind == lexers.EOF {
		return ""
	}
	return p.toks[i].Text
}

// peekAt returns the index and kind of the first significant token at
// or after pos+skip.
func (p *parser) peekAt(skip int) (int, lexers.TokenKind) {
	for i := p.pos + skip; i < len(p.toks); i++ {
		if p.toks[i].Kind.IsTrivia() {
			continue
		}
		return i, p.toks[i].Kind
	}
	return len(p.toks), lexers.EOF
}

// ====== Consumption ======

// bumpInto consumes the current token as a leaf of children.
func (p *parser) bumpInto(children *[]*Node) {
	if p.pos >= len(p.toks) {
		return
	}
	*children = append(*children, Leaf(p.toks[p.pos]))
	p.pos++
}

// triviaInto attaches any run of trivia tokens to children.
func (p *parser) triviaInto(children *[]*Node) {
	for p.pos < len(p.toks) && p.toks[p.pos].Kind.IsTrivia() {
		p.bumpInto(children)
	}
}

// at reports whether the next significant token has the given kind.
func (p *parser) at(kind lexers.TokenKind) bool {
	return p.peekKind() == kind
}

// bumpSignificant attaches trivia then the next token to children.
func (p *parser) bumpSignificant(children *[]*Node) {
	p.triviaInto(children)
	p.bumpInto(children)
}

// want consumes trivia plus the expected kind into children. On a
// mismatch it records a diagnostic and consumes nothing significant.
func (p *parser) want(children *[]*Node, kind lexers.TokenKind) bool {
	if p.at(kind) {
		p.triviaInto(children)
		p.bumpInto(children)
		return true
	}
	p.errorExpected(kind)
	return false
}

// atEndOfStatement reports a logical-line boundary: newline, colon, or
// end of input. A line continuation never ends a statement (it is
// trivia and peekKind skips it).
func (p *parser) atEndOfStatement() bool {
	switch p.peekKind() {
	case lexers.Newline, lexers.Colon, lexers.EOF:
		return true
	default:
		return false
	}
}

// terminatorInto consumes trivia plus the statement terminator, if
// present, into children.
func (p *parser) terminatorInto(children *[]*Node) {
	switch p.peekKind() {
	case lexers.Newline, lexers.Colon:
		p.triviaInto(children)
		p.bumpInto(children)
	default:
		p.triviaInto(children)
	}
}

// restOfLineInto consumes every token, trivia included, through the
// statement terminator.
func (p *parser) restOfLineInto(children *[]*Node) {
	for !p.eof() {
		kind := p.current().Kind
		p.bumpInto(children)
		if kind == lexers.Newline || kind == lexers.Colon {
			return
		}
	}
}

// ====== Diagnostics ======

func (p *parser) fail(kind diagnostics.ErrorKind, span diagnostics.Span) {
	p.failures = append(p.failures,
		diagnostics.NewDiagnostic(kind, span, p.file.Name, p.file.Content))
}

func (p *parser) errorExpected(kind lexers.TokenKind) {
	i, found := p.peekAt(0)
	span := diagnostics.Zero()
	text := "EOF"
	if found != lexers.EOF {
		span = p.toks[i].Span
		text = p.toks[i].Text
	} else if len(p.toks) > 0 {
		span = p.toks[len(p.toks)-1].Span
	}
	p.fail(diagnostics.UnexpectedToken{Expected: kind.String(), Found: text}, span)
}

// ====== Statement dispatch ======

// parseStatement parses one statement at statement position. The
// caller guarantees the next significant token is not a terminator.
func (p *parser) parseStatement() *Node {
	switch kind := p.peekKind(); kind {
	case lexers.SubKeyword, lexers.FunctionKeyword, lexers.PropertyKeyword:
		return p.parseProcedure()
	case lexers.PublicKeyword, lexers.PrivateKeyword, lexers.FriendKeyword, lexers.StaticKeyword:
		return p.parseModified()
	case lexers.DimKeyword, lexers.ReDimKeyword:
		return p.parseLineStatement(DimStatement)
	case lexers.ConstKeyword:
		return p.parseLineStatement(ConstStatement)
	case lexers.TypeKeyword:
		return p.parseKeywordBlock(TypeStatement, lexers.TypeKeyword)
	case lexers.EnumKeyword:
		return p.parseKeywordBlock(EnumStatement, lexers.EnumKeyword)
	case lexers.OptionKeyword:
		return p.parseLineStatement(OptionStatement)
	case lexers.IfKeyword:
		return p.parseIf()
	case lexers.SelectKeyword:
		return p.parseSelect()
	case lexers.ForKeyword:
		if p.peekKind2() == lexers.EachKeyword {
			return p.parseForEach()
		}
		return p.parseFor()
	case lexers.DoKeyword:
		return p.parseDo()
	case lexers.WhileKeyword:
		return p.parseWhile()
	case lexers.WithKeyword:
		return p.parseWith()
	case lexers.ExitKeyword:
		return p.parseLineStatement(ExitStatement)
	case lexers.GoToKeyword:
		return p.parseLineStatement(GotoStatement)
	case lexers.OnKeyword:
		return p.parseLineStatement(OnErrorStatement)
	case lexers.ResumeKeyword:
		return p.parseLineStatement(ResumeStatement)
	case lexers.EndKeyword:
		return p.parseLineStatement(EndStatement)
	case lexers.StopKeyword:
		return p.parseLineStatement(StopStatement)
	case lexers.LetKeyword, lexers.SetKeyword:
		return p.parseAssignment(true)
	case lexers.Identifier:
		return p.parseIdentifierStatement()
	case lexers.Period:
		// implicit receiver inside a With block; kept flat
		if p.hasAssignBeforeTerminator() {
			return p.parseLineStatement(AssignmentStatement)
		}
		return p.parseLineStatement(CallStatement)
	default:
		if builtin, ok := builtinStatements[kind]; ok {
			return p.parseSimpleBuiltinStatement(builtin)
		}
		return p.parseBadContent()
	}
}

// parseModified handles a visibility or lifetime modifier prefix by
// dispatching on the token after it.
func (p *parser) parseModified() *Node {
	switch p.peekKind2() {
	case lexers.SubKeyword, lexers.FunctionKeyword, lexers.PropertyKeyword:
		return p.parseProcedure()
	case lexers.ConstKeyword:
		return p.parseLineStatement(ConstStatement)
	case lexers.TypeKeyword:
		return p.parseKeywordBlock(TypeStatement, lexers.TypeKeyword)
	case lexers.EnumKeyword:
		return p.parseKeywordBlock(EnumStatement, lexers.EnumKeyword)
	default:
		return p.parseLineStatement(DimStatement)
	}
}

// parseIdentifierStatement handles statements introduced by an
// identifier: the header productions, Line Input, and finally
// assignment vs. call.
func (p *parser) parseIdentifierStatement() *Node {
	text := p.peekText()
	switch {
	case strings.EqualFold(text, "version") && p.isNumericKind(p.peekKind2()):
		return p.parseVersionStatement()
	case strings.EqualFold(text, "begin") && p.peekKind2() == lexers.Newline:
		return p.parsePropertiesBlock()
	case strings.EqualFold(text, "attribute") && p.peekKind2() == lexers.Identifier:
		return p.parseLineStatement(AttributeStatement)
	case strings.EqualFold(text, "line") && p.peekKind2() == lexers.InputKeyword:
		return p.parseSimpleBuiltinStatement(LineInputStatement)
	}
	if p.hasAssignBeforeTerminator() {
		return p.parseAssignment(false)
	}
	return p.parseCallStatement()
}

func (p *parser) isNumericKind(k lexers.TokenKind) bool {
	switch k {
	case lexers.IntegerLiteral, lexers.LongLiteral, lexers.SingleLiteral,
		lexers.DoubleLiteral, lexers.CurrencyLiteral:
		return true
	default:
		return false
	}
}

// hasAssignBeforeTerminator scans the logical line for a top-level '='
// to separate assignments from bare calls.
func (p *parser) hasAssignBeforeTerminator() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case lexers.Newline, lexers.Colon, lexers.EOF:
			return false
		case lexers.LeftParenthesis:
			depth++
		case lexers.RightParenthesis:
			depth--
		case lexers.EqualOperator:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// ====== Generic productions ======

// parseLineStatement consumes the whole logical line, terminator
// included, as a flat statement of the given kind.
func (p *parser) parseLineStatement(kind SyntaxKind) *Node {
	var children []*Node
	p.restOfLineInto(&children)
	return NonTerminal(kind, children)
}

// parseSimpleBuiltinStatement is the shared helper for built-in
// statements with no special shape: the keyword, then the argument
// tail through the end of the logical line.
func (p *parser) parseSimpleBuiltinStatement(kind SyntaxKind) *Node {
	var children []*Node
	p.restOfLineInto(&children)
	return NonTerminal(kind, children)
}

// parseBadContent absorbs tokens to the next resync point (newline,
// colon, or End keyword) and reports a single diagnostic.
func (p *parser) parseBadContent() *Node {
	var children []*Node
	first, _ := p.peekAt(0)
	for !p.eof() {
		if p.at(lexers.EndKeyword) && len(children) > 0 {
			break
		}
		kind := p.current().Kind
		p.bumpInto(&children)
		if kind == lexers.Newline || kind == lexers.Colon {
			break
		}
	}
	span := diagnostics.Zero()
	if first < len(p.toks) {
		span = p.toks[first].Span
	}
	node := NonTerminal(BadContent, children)
	p.fail(diagnostics.UnrecognizedStatement{Text: node.Text()}, span)
	return node
}

// builtinStatements maps dispatch keywords to their statement kinds.
// Everything here shares parseSimpleBuiltinStatement.
var builtinStatements = map[lexers.TokenKind]SyntaxKind{
	lexers.AppActivateKeyword: AppActivateStatement,
	lexers.BeepKeyword:        BeepStatement,
	lexers.ChDirKeyword:       ChDirStatement,
	lexers.ChDriveKeyword:     ChDriveStatement,
	lexers.CloseKeyword:       CloseStatement,
	lexers.FileCopyKeyword:    FileCopyStatement,
	lexers.GetKeyword:         GetStatement,
	lexers.InputKeyword:       InputStatement,
	lexers.KillKeyword:        KillStatement,
	lexers.LoadKeyword:        LoadStatement,
	lexers.MkDirKeyword:       MkDirStatement,
	lexers.NameKeyword:        NameStatement,
	lexers.OpenKeyword:        OpenStatement,
	lexers.PrintKeyword:       PrintStatement,
	lexers.PutKeyword:         PutStatement,
	lexers.RmDirKeyword:       RmDirStatement,
	lexers.SaveSettingKeyword: SaveSettingStatement,
	lexers.SeekKeyword:        SeekStatement,
	lexers.SendKeysKeyword:    SendKeysStatement,
	lexers.SetAttrKeyword:     SetAttrStatement,
	lexers.UnloadKeyword:      UnloadStatement,
	lexers.WidthKeyword:       WidthStatement,
	lexers.WriteKeyword:       WriteStatement,
}
