// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import (
	"github.com/playbymail/vb6parse/internal/lexers"
)

// Operator precedence, lowest to highest. Ties are left-associative
// except exponentiation. Unary Not sits between And and comparison;
// unary +/- binds tighter than exponentiation.
const (
	precImp        = 1
	precEqv        = 2
	precXor        = 3
	precOr         = 4
	precAnd        = 5
	precNot        = 6
	precComparison = 7
	precConcat     = 8
	precAdditive   = 9
	precMultiply   = 10
	precIntDivide  = 11
	precMod        = 12
	precExponent   = 13
)

// binaryPrec returns the precedence for a binary operator kind, or 0.
func binaryPrec(k lexers.TokenKind) (prec int, rightAssoc bool) {
	switch k {
	case lexers.ImpKeyword:
		return precImp, false
	case lexers.EqvKeyword:
		return precEqv, false
	case lexers.XorKeyword:
		return precXor, false
	case lexers.OrKeyword:
		return precOr, false
	case lexers.AndKeyword:
		return precAnd, false
	case lexers.EqualOperator, lexers.NotEqualOperator,
		lexers.LessThanOperator, lexers.GreaterThanOperator,
		lexers.LessThanEqualOperator, lexers.GreaterThanEqualOperator,
		lexers.IsKeyword, lexers.LikeKeyword:
		return precComparison, false
	case lexers.Ampersand:
		return precConcat, false
	case lexers.AdditionOperator, lexers.SubtractionOperator:
		return precAdditive, false
	case lexers.MultiplicationOperator, lexers.DivisionOperator:
		return precMultiply, false
	case lexers.BackslashOperator:
		return precIntDivide, false
	case lexers.ModKeyword:
		return precMod, false
	case lexers.ExponentOperator:
		return precExponent, true
	default:
		return 0, false
	}
}

// expressionInto parses one expression and appends it to children.
// Leading trivia attaches to the enclosing node. Returns false, and
// consumes nothing, when no expression starts here.
func (p *parser) expressionInto(children *[]*Node) bool {
	if !p.atExprStart() {
		return false
	}
	p.triviaInto(children)
	node := p.parseBinaryExpr(precImp)
	if node == nil {
		return false
	}
	*children = append(*children, node)
	return true
}

// postfixInto parses a postfix expression (identifier, member chain,
// call/index) and appends it. Used where '=' must stay an assignment,
// not a comparison.
func (p *parser) postfixInto(children *[]*Node) bool {
	if !p.atExprStart() {
		return false
	}
	p.triviaInto(children)
	node := p.parsePostfixExpr()
	if node == nil {
		return false
	}
	*children = append(*children, node)
	return true
}

// atExprStart reports whether the next significant token can begin an
// expression.
func (p *parser) atExprStart() bool {
	switch p.peekKind() {
	case lexers.Identifier,
		lexers.IntegerLiteral, lexers.LongLiteral, lexers.SingleLiteral,
		lexers.DoubleLiteral, lexers.CurrencyLiteral,
		lexers.OctalLiteral, lexers.HexLiteral,
		lexers.StringLiteral, lexers.DateLiteral,
		lexers.TrueKeyword, lexers.FalseKeyword, lexers.MeKeyword,
		lexers.NothingKeyword, lexers.NullKeyword, lexers.EmptyKeyword,
		lexers.NotKeyword, lexers.NewKeyword,
		lexers.AdditionOperator, lexers.SubtractionOperator,
		lexers.LeftParenthesis:
		return true
	default:
		return false
	}
}

func (p *parser) parseBinaryExpr(minPrec int) *Node {
	left := p.parseUnaryExpr()
	if left == nil {
		return nil
	}
	for {
		prec, rightAssoc := binaryPrec(p.peekKind())
		if prec == 0 || prec < minPrec {
			return left
		}
		children := []*Node{left}
		p.triviaInto(&children)
		p.bumpInto(&children) // operator
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		p.triviaInto(&children)
		if right := p.parseBinaryExpr(next); right != nil {
			children = append(children, right)
		} else {
			p.errorExpected(lexers.Identifier)
		}
		left = NonTerminal(BinaryExpression, children)
	}
}

func (p *parser) parseUnaryExpr() *Node {
	switch p.peekKind() {
	case lexers.NotKeyword:
		var children []*Node
		p.bumpSignificant(&children)
		p.triviaInto(&children)
		if operand := p.parseBinaryExpr(precComparison); operand != nil {
			children = append(children, operand)
		} else {
			p.errorExpected(lexers.Identifier)
		}
		return NonTerminal(UnaryExpression, children)
	case lexers.AdditionOperator, lexers.SubtractionOperator:
		var children []*Node
		p.bumpSignificant(&children)
		p.triviaInto(&children)
		if operand := p.parseUnaryExpr(); operand != nil {
			children = append(children, operand)
		} else {
			p.errorExpected(lexers.Identifier)
		}
		return NonTerminal(UnaryExpression, children)
	case lexers.NewKeyword:
		var children []*Node
		p.bumpSignificant(&children)
		p.triviaInto(&children)
		if operand := p.parsePostfixExpr(); operand != nil {
			children = append(children, operand)
		} else {
			p.errorExpected(lexers.Identifier)
		}
		return NonTerminal(UnaryExpression, children)
	default:
		return p.parsePostfixExpr()
	}
}

// parsePostfixExpr parses a primary followed by member access and
// call/index suffixes. A call suffix requires the '(' to touch the
// callee; with whitespace between, the parenthesis belongs to the
// caller's context.
func (p *parser) parsePostfixExpr() *Node {
	left := p.parsePrimaryExpr()
	if left == nil {
		return nil
	}
	for {
		switch {
		case p.at(lexers.Period):
			children := []*Node{left}
			p.triviaInto(&children)
			p.bumpInto(&children) // '.'
			p.triviaInto(&children)
			k := p.peekKind()
			if k == lexers.Identifier || k.IsKeyword() {
				p.bumpInto(&children)
			} else {
				p.errorExpected(lexers.Identifier)
			}
			left = NonTerminal(MemberAccess, children)
		case p.adjacentLeftParen():
			children := []*Node{left, p.parseArgumentList()}
			left = NonTerminal(CallExpression, children)
		default:
			return left
		}
	}
}

// adjacentLeftParen reports a '(' immediately after the previous
// token, with no trivia between.
func (p *parser) adjacentLeftParen() bool {
	return p.pos < len(p.toks) && p.toks[p.pos].Kind == lexers.LeftParenthesis
}

// parseArgumentList parses '(' arguments ')'. A newline inside an
// argument list (without a continuation) is an error; the list closes
// so the statement can terminate.
func (p *parser) parseArgumentList() *Node {
	var children []*Node
	p.bumpInto(&children) // (
	for {
		p.triviaInto(&children)
		switch p.peekKind() {
		case lexers.RightParenthesis:
			p.bumpInto(&children)
			return NonTerminal(ArgumentList, children)
		case lexers.Comma:
			p.bumpInto(&children)
		case lexers.Newline, lexers.EOF:
			p.errorExpected(lexers.RightParenthesis)
			return NonTerminal(ArgumentList, children)
		default:
			if !p.expressionInto(&children) {
				p.bumpSignificant(&children)
			}
		}
	}
}

func (p *parser) parsePrimaryExpr() *Node {
	var children []*Node
	switch p.peekKind() {
	case lexers.Identifier:
		p.bumpSignificant(&children)
		return NonTerminal(IdentifierExpression, children)
	case lexers.IntegerLiteral, lexers.LongLiteral, lexers.SingleLiteral,
		lexers.DoubleLiteral, lexers.CurrencyLiteral,
		lexers.OctalLiteral, lexers.HexLiteral:
		p.bumpSignificant(&children)
		return NonTerminal(NumericLiteralExpression, children)
	case lexers.StringLiteral:
		p.bumpSignificant(&children)
		return NonTerminal(StringLiteralExpression, children)
	case lexers.DateLiteral:
		p.bumpSignificant(&children)
		return NonTerminal(DateLiteralExpression, children)
	case lexers.TrueKeyword, lexers.FalseKeyword, lexers.MeKeyword,
		lexers.NothingKeyword, lexers.NullKeyword, lexers.EmptyKeyword:
		p.bumpSignificant(&children)
		return NonTerminal(KeywordExpression, children)
	case lexers.LeftParenthesis:
		p.triviaInto(&children)
		p.bumpInto(&children)
		p.triviaInto(&children)
		if inner := p.parseBinaryExpr(precImp); inner != nil {
			children = append(children, inner)
		}
		p.want(&children, lexers.RightParenthesis)
		return NonTerminal(ParenthesizedExpression, children)
	default:
		return nil
	}
}
