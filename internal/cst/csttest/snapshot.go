// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package csttest provides helpers for CST snapshot tests.
// Keep this lightweight and test-focused. Not for production use.
//
// Purpose: turn a *cst.Tree (+ diagnostics) into a compact JSON
// snapshot for golden comparisons and failure messages.
package csttest

import (
	"encoding/json"

	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/diagnostics"
)

type nodeSnap struct {
	Kind     string     `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Children []nodeSnap `json:"children,omitempty"`
}

type diagSnap struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Offset   uint32 `json:"offset"`
	Length   uint32 `json:"length"`
}

type treeSnap struct {
	Root        nodeSnap   `json:"root"`
	Text        string     `json:"text"`
	Diagnostics []diagSnap `json:"diagnostics,omitempty"`
}

// Snapshot marshals a tree plus diags to pretty JSON.
func Snapshot(tree *cst.Tree, diags []diagnostics.Diagnostic) ([]byte, error) {
	s := treeSnap{
		Root: nodeOf(tree.RootNode()),
		Text: tree.Text(),
	}
	for _, d := range diags {
		s.Diagnostics = append(s.Diagnostics, diagSnap{
			Severity: d.Severity.String(),
			Message:  d.Message(),
			Offset:   d.PrimarySpan.Offset,
			Length:   d.PrimarySpan.Length,
		})
	}
	return json.MarshalIndent(s, "", "  ")
}

func nodeOf(n *cst.Node) nodeSnap {
	s := nodeSnap{Kind: n.Kind().String()}
	if n.IsToken() {
		s.Text = n.Token().Text
		return s
	}
	for _, c := range n.Children() {
		s.Children = append(s.Children, nodeOf(c))
	}
	return s
}

// Outline returns the kinds of the root's significant children,
// skipping trivia leaves. Handy for terse structural assertions.
func Outline(tree *cst.Tree) []string {
	var out []string
	for _, c := range tree.Children() {
		if c.IsToken() && c.Token().Kind.IsTrivia() {
			continue
		}
		out = append(out, c.Kind().String())
	}
	return out
}
