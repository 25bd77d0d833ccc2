// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package walkers_test

import (
	"testing"

	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/sources"
	"github.com/playbymail/vb6parse/internal/walkers"
)

func parseTree(t *testing.T, input string) *cst.Tree {
	t.Helper()
	f, err := sources.Decode("test.bas", []byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tree, _ := cst.FromSource(f).Unpack()
	if tree == nil {
		t.Fatal("no tree")
	}
	return tree
}

func TestFindAll(t *testing.T) {
	tree := parseTree(t, "Sub A()\r\nEnd Sub\r\nSub B()\r\nEnd Sub\r\n")
	subs := walkers.FindAll(tree.RootNode(), cst.SubStatement)
	if len(subs) != 2 {
		t.Fatalf("found %d subs", len(subs))
	}
}

func TestFindFirst(t *testing.T) {
	tree := parseTree(t, "x = 1\r\ny = 2\r\n")
	first := walkers.FindFirst(tree.RootNode(), cst.AssignmentStatement)
	if first == nil {
		t.Fatal("not found")
	}
	if got := first.Text(); got != "x = 1\r\n" {
		t.Errorf("first = %q", got)
	}
	if walkers.FindFirst(tree.RootNode(), cst.ForStatement) != nil {
		t.Error("found a for statement in a file without one")
	}
}

func TestTokensAndSignificant(t *testing.T) {
	tree := parseTree(t, "x = 1 ' note\r\n")
	all := walkers.Tokens(tree.RootNode())
	var text string
	for _, tok := range all {
		text += tok.Text
	}
	if text != "x = 1 ' note\r\n" {
		t.Errorf("tokens lost text: %q", text)
	}

	sig := walkers.Significant(tree.RootNode())
	for _, tok := range sig {
		if tok.Kind.IsTrivia() {
			t.Errorf("trivia token %s leaked through", tok.Kind)
		}
	}
	// x, =, 1, newline, EOF
	if len(sig) != 5 {
		t.Errorf("significant = %d tokens %v", len(sig), sig)
	}
}

func TestWalkPrunes(t *testing.T) {
	tree := parseTree(t, "Sub A()\r\nx = 1\r\nEnd Sub\r\n")
	seen := 0
	walkers.Walk(tree.RootNode(), func(n *cst.Node) bool {
		seen++
		return n.Kind() != cst.SubStatement // prune below the sub
	})
	full := len(walkers.Tokens(tree.RootNode()))
	if seen >= full {
		t.Errorf("prune did not cut the walk: %d visits", seen)
	}
}
