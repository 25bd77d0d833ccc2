// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import (
	"github.com/playbymail/vb6parse/internal/lexers"
)

// ====== Blocks ======

// parseCodeBlock collects statements until stop reports a block
// terminator. Blank lines, separators, and trivia are attached to the
// block so the statement list stays lossless.
func (p *parser) parseCodeBlock(stop func() bool) *Node {
	var children []*Node
	for {
		p.triviaInto(&children)
		if p.eof() || stop() {
			break
		}
		switch p.current().Kind {
		case lexers.Newline, lexers.Colon:
			p.bumpInto(&children)
		default:
			children = append(children, p.parseStatement())
		}
	}
	return NonTerminal(CodeBlock, children)
}

// atEndPair reports End followed by the given keyword.
func (p *parser) atEndPair(kw lexers.TokenKind) bool {
	return p.at(lexers.EndKeyword) && p.peekKind2() == kw
}

// ====== Procedures ======

// parseProcedure parses Sub, Function, and the three Property
// procedure forms, with an optional visibility or lifetime modifier.
func (p *parser) parseProcedure() *Node {
	var children []*Node

	for {
		switch p.peekKind() {
		case lexers.PublicKeyword, lexers.PrivateKeyword, lexers.FriendKeyword, lexers.StaticKeyword:
			p.bumpSignificant(&children)
			continue
		}
		break
	}

	kind := SubStatement
	endKw := lexers.SubKeyword
	switch p.peekKind() {
	case lexers.SubKeyword:
		p.bumpSignificant(&children)
	case lexers.FunctionKeyword:
		kind, endKw = FunctionStatement, lexers.FunctionKeyword
		p.bumpSignificant(&children)
	case lexers.PropertyKeyword:
		endKw = lexers.PropertyKeyword
		p.bumpSignificant(&children)
		switch p.peekKind() {
		case lexers.GetKeyword:
			kind = PropertyGetStatement
			p.bumpSignificant(&children)
		case lexers.LetKeyword:
			kind = PropertyLetStatement
			p.bumpSignificant(&children)
		case lexers.SetKeyword:
			kind = PropertySetStatement
			p.bumpSignificant(&children)
		default:
			kind = PropertyGetStatement
			p.errorExpected(lexers.GetKeyword)
		}
	}

	p.want(&children, lexers.Identifier)
	if p.at(lexers.LeftParenthesis) {
		p.triviaInto(&children)
		children = append(children, p.parseParameterList())
	}
	// signature tail: return type and anything else on the line
	for !p.atEndOfStatement() {
		p.bumpSignificant(&children)
	}
	p.terminatorInto(&children)

	children = append(children, p.parseCodeBlock(func() bool { return p.atEndPair(endKw) }))

	p.want(&children, lexers.EndKeyword)
	p.want(&children, endKw)
	p.terminatorInto(&children)
	return NonTerminal(kind, children)
}

// parseParameterList parses a parenthesized parameter list. Parameter
// tokens stay flat; nested parentheses (array markers, defaults) are
// tracked by depth.
func (p *parser) parseParameterList() *Node {
	var children []*Node
	p.bumpInto(&children) // (
	depth := 1
	for !p.eof() && depth > 0 {
		switch p.peekKind() {
		case lexers.Newline, lexers.EOF:
			p.errorExpected(lexers.RightParenthesis)
			return NonTerminal(ParameterList, children)
		case lexers.LeftParenthesis:
			depth++
		case lexers.RightParenthesis:
			depth--
		}
		p.bumpSignificant(&children)
	}
	return NonTerminal(ParameterList, children)
}

// ====== Control flow ======

func (p *parser) parseIf() *Node {
	var children []*Node
	p.want(&children, lexers.IfKeyword)
	p.expressionInto(&children)
	p.want(&children, lexers.ThenKeyword)

	if !p.atEndOfStatement() {
		// single-line form: the branch tokens stay flat
		p.restOfLineInto(&children)
		return NonTerminal(IfStatement, children)
	}
	p.terminatorInto(&children)

	for {
		children = append(children, p.parseCodeBlock(func() bool {
			return p.atEndPair(lexers.IfKeyword) ||
				p.at(lexers.ElseIfKeyword) || p.at(lexers.ElseKeyword)
		}))
		if p.at(lexers.ElseIfKeyword) {
			p.want(&children, lexers.ElseIfKeyword)
			p.expressionInto(&children)
			p.want(&children, lexers.ThenKeyword)
			p.terminatorInto(&children)
			continue
		}
		if p.at(lexers.ElseKeyword) {
			p.want(&children, lexers.ElseKeyword)
			p.terminatorInto(&children)
			continue
		}
		break
	}

	p.want(&children, lexers.EndKeyword)
	p.want(&children, lexers.IfKeyword)
	p.terminatorInto(&children)
	return NonTerminal(IfStatement, children)
}

func (p *parser) parseSelect() *Node {
	var children []*Node
	p.want(&children, lexers.SelectKeyword)
	p.want(&children, lexers.CaseKeyword)
	p.expressionInto(&children)
	p.terminatorInto(&children)

	for {
		p.triviaInto(&children)
		if p.eof() || p.atEndPair(lexers.SelectKeyword) {
			break
		}
		if p.current().Kind == lexers.Newline {
			p.bumpInto(&children)
			continue
		}
		if p.at(lexers.CaseKeyword) {
			children = append(children, p.parseCaseClause())
			continue
		}
		children = append(children, p.parseBadContent())
	}

	p.want(&children, lexers.EndKeyword)
	p.want(&children, lexers.SelectKeyword)
	p.terminatorInto(&children)
	return NonTerminal(SelectCaseStatement, children)
}

// parseCaseClause parses one Case arm: the guard line stays flat, the
// body is a code block.
func (p *parser) parseCaseClause() *Node {
	var children []*Node
	p.want(&children, lexers.CaseKeyword)
	p.restOfLineInto(&children)
	children = append(children, p.parseCodeBlock(func() bool {
		return p.at(lexers.CaseKeyword) || p.atEndPair(lexers.SelectKeyword)
	}))
	return NonTerminal(CaseClause, children)
}

func (p *parser) parseFor() *Node {
	var children []*Node
	p.want(&children, lexers.ForKeyword)
	p.postfixInto(&children) // counter
	p.want(&children, lexers.EqualOperator)
	p.expressionInto(&children)
	p.want(&children, lexers.ToKeyword)
	p.expressionInto(&children)
	if p.at(lexers.StepKeyword) {
		p.want(&children, lexers.StepKeyword)
		p.expressionInto(&children)
	}
	p.terminatorInto(&children)

	children = append(children, p.parseCodeBlock(func() bool { return p.at(lexers.NextKeyword) }))

	p.want(&children, lexers.NextKeyword)
	p.restOfLineOrTerminator(&children)
	return NonTerminal(ForStatement, children)
}

func (p *parser) parseForEach() *Node {
	var children []*Node
	p.want(&children, lexers.ForKeyword)
	p.want(&children, lexers.EachKeyword)
	p.postfixInto(&children)
	p.want(&children, lexers.InKeyword)
	p.expressionInto(&children)
	p.terminatorInto(&children)

	children = append(children, p.parseCodeBlock(func() bool { return p.at(lexers.NextKeyword) }))

	p.want(&children, lexers.NextKeyword)
	p.restOfLineOrTerminator(&children)
	return NonTerminal(ForEachStatement, children)
}

func (p *parser) parseDo() *Node {
	var children []*Node
	p.want(&children, lexers.DoKeyword)
	// optional While/Until condition; kept flat (Until is not reserved)
	p.restOfLineOrTerminator(&children)

	children = append(children, p.parseCodeBlock(func() bool { return p.at(lexers.LoopKeyword) }))

	p.want(&children, lexers.LoopKeyword)
	p.restOfLineOrTerminator(&children)
	return NonTerminal(DoStatement, children)
}

func (p *parser) parseWhile() *Node {
	var children []*Node
	p.want(&children, lexers.WhileKeyword)
	p.expressionInto(&children)
	p.terminatorInto(&children)

	children = append(children, p.parseCodeBlock(func() bool { return p.at(lexers.WendKeyword) }))

	p.want(&children, lexers.WendKeyword)
	p.terminatorInto(&children)
	return NonTerminal(WhileStatement, children)
}

func (p *parser) parseWith() *Node {
	var children []*Node
	p.want(&children, lexers.WithKeyword)
	p.expressionInto(&children)
	p.terminatorInto(&children)

	children = append(children, p.parseCodeBlock(func() bool { return p.atEndPair(lexers.WithKeyword) }))

	p.want(&children, lexers.EndKeyword)
	p.want(&children, lexers.WithKeyword)
	p.terminatorInto(&children)
	return NonTerminal(WithStatement, children)
}

// parseKeywordBlock parses Type and Enum blocks. Member lines stay
// flat; only the End pair is structural.
func (p *parser) parseKeywordBlock(kind SyntaxKind, kw lexers.TokenKind) *Node {
	var children []*Node
	p.restOfLineInto(&children) // header line
	for {
		p.triviaInto(&children)
		if p.eof() || p.atEndPair(kw) {
			break
		}
		p.restOfLineInto(&children)
	}
	p.want(&children, lexers.EndKeyword)
	p.want(&children, kw)
	p.terminatorInto(&children)
	return NonTerminal(kind, children)
}

// restOfLineOrTerminator consumes a flat tail when one is present,
// otherwise just the terminator.
func (p *parser) restOfLineOrTerminator(children *[]*Node) {
	if p.atEndOfStatement() {
		p.terminatorInto(children)
		return
	}
	p.restOfLineInto(children)
}

// ====== Header productions ======

// parseVersionStatement parses a VERSION x.y [CLASS] line.
func (p *parser) parseVersionStatement() *Node {
	return p.parseLineStatement(VersionStatement)
}

// parsePropertiesBlock parses the class header's BEGIN ... END block
// of named integer properties.
func (p *parser) parsePropertiesBlock() *Node {
	var children []*Node
	p.restOfLineInto(&children) // BEGIN line
	for {
		p.triviaInto(&children)
		if p.eof() || p.at(lexers.EndKeyword) {
			break
		}
		if p.current().Kind == lexers.Newline {
			p.bumpInto(&children)
			continue
		}
		children = append(children, p.parseProperty())
	}
	p.want(&children, lexers.EndKeyword)
	p.terminatorInto(&children)
	return NonTerminal(PropertiesBlock, children)
}

// parseProperty parses one Key = Value line of a properties block.
func (p *parser) parseProperty() *Node {
	var children []*Node
	p.triviaInto(&children)
	if p.current().Kind != lexers.Identifier {
		// malformed line; absorb it whole
		p.restOfLineInto(&children)
		return NonTerminal(Property, children)
	}
	var key []*Node
	p.bumpInto(&key)
	children = append(children, NonTerminal(PropertyKey, key))

	p.want(&children, lexers.EqualOperator)

	var value []*Node
	for !p.atEndOfStatement() {
		p.bumpSignificant(&value)
	}
	children = append(children, NonTerminal(PropertyValue, value))
	p.terminatorInto(&children)
	return NonTerminal(Property, children)
}

// ====== Assignment and calls ======

// parseAssignment parses [Let|Set] target = expression.
func (p *parser) parseAssignment(withKeyword bool) *Node {
	var children []*Node
	if withKeyword {
		p.bumpSignificant(&children)
	}
	p.postfixInto(&children)
	p.want(&children, lexers.EqualOperator)
	p.expressionInto(&children)
	for !p.atEndOfStatement() {
		p.bumpSignificant(&children)
	}
	p.terminatorInto(&children)
	return NonTerminal(AssignmentStatement, children)
}

// parseCallStatement parses a bare procedure call: callee then a
// comma-separated argument tail to the end of the logical line.
func (p *parser) parseCallStatement() *Node {
	var children []*Node
	p.postfixInto(&children)
	for !p.atEndOfStatement() {
		if p.at(lexers.Comma) {
			p.triviaInto(&children)
			p.bumpInto(&children)
			continue
		}
		if !p.expressionInto(&children) {
			p.bumpSignificant(&children)
		}
	}
	p.terminatorInto(&children)
	return NonTerminal(CallStatement, children)
}
