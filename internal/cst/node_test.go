// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst_test

import (
	"testing"

	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/cst/csttest"
)

func TestCursor_OffsetsAndParents(t *testing.T) {
	input := "x = 1\r\ny = 22\r\n"
	tree, _ := parse(t, input)

	root := tree.Root()
	if root.Offset != 0 || root.Parent() != nil {
		t.Fatalf("root cursor = %+v", root)
	}

	// every cursor's offset must equal the length of the text before it
	var check func(c cst.Cursor, expected uint32) uint32
	check = func(c cst.Cursor, expected uint32) uint32 {
		if c.Offset != expected {
			t.Errorf("%s: offset = %d, want %d", c.Node.Kind(), c.Offset, expected)
		}
		at := expected
		for _, child := range c.Children() {
			if child.Parent() == nil || child.Parent().Node != c.Node {
				t.Errorf("%s: broken parent link", child.Node.Kind())
			}
			at = check(child, at)
		}
		return expected + c.Node.TextLen()
	}
	total := check(root, 0)
	if total != uint32(len(input)) {
		t.Errorf("total = %d, want %d", total, len(input))
	}
}

func TestNode_StructuralSharingAfterFilter(t *testing.T) {
	input := "VERSION 1.0 CLASS\r\nSub T()\r\nEnd Sub\r\n"
	tree, _ := parse(t, input)
	filtered := tree.WithoutKinds(cst.VersionStatement)

	// the untouched sub statement is shared, not copied
	sub := findKind(tree.RootNode(), cst.SubStatement)
	filteredSub := findKind(filtered.RootNode(), cst.SubStatement)
	if sub != filteredSub {
		t.Error("unfiltered subtrees must be structurally shared")
	}

	// filtering nothing returns the same root
	same := tree.WithoutKinds(cst.ForStatement)
	if same.RootNode() != tree.RootNode() {
		t.Error("filtering an absent kind must share the whole tree")
	}
}

func TestSnapshot(t *testing.T) {
	tree, diags := parse(t, "x = 1\r\n")
	data, err := csttest.Snapshot(tree, diags)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty snapshot")
	}
	outline := csttest.Outline(tree)
	if len(outline) == 0 || outline[0] != "AssignmentStatement" {
		t.Errorf("outline = %v", outline)
	}
}
