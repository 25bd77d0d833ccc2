// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package walkers implements functions to walk concrete syntax trees.
package walkers

import (
	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/lexers"
)

// FindAll returns every node of the given kind, in source order.
func FindAll(root *cst.Node, kind cst.SyntaxKind) []*cst.Node {
	var out []*cst.Node
	Walk(root, func(n *cst.Node) bool {
		if n.Kind() == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindFirst returns the first node of the given kind, or nil.
func FindFirst(root *cst.Node, kind cst.SyntaxKind) *cst.Node {
	var found *cst.Node
	Walk(root, func(n *cst.Node) bool {
		if found == nil && n.Kind() == kind {
			found = n
		}
		return found == nil
	})
	return found
}

// Walk visits root and its descendants depth-first in source order.
// Returning false from visit prunes the node's children.
func Walk(root *cst.Node, visit func(*cst.Node) bool) {
	if !visit(root) {
		return
	}
	for _, c := range root.Children() {
		Walk(c, visit)
	}
}

// Tokens returns the tokens of the subtree, in source order.
func Tokens(root *cst.Node) []lexers.Token {
	var out []lexers.Token
	Walk(root, func(n *cst.Node) bool {
		if n.IsToken() {
			out = append(out, *n.Token())
		}
		return true
	})
	return out
}

// Significant returns the non-trivia tokens of the subtree.
func Significant(root *cst.Node) []lexers.Token {
	var out []lexers.Token
	for _, tok := range Tokens(root) {
		if !tok.Kind.IsTrivia() {
			out = append(out, tok)
		}
	}
	return out
}
