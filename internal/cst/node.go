// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import (
	"strings"

	"github.com/playbymail/vb6parse/internal/lexers"
)

// Node is a green node: immutable, structurally shared, carrying only
// kind, children, and text length. Token leaves wrap one lexer token;
// non-terminals own an ordered child sequence. There are no parent
// back-pointers; the Cursor overlay computes offsets and parents on
// demand.
type Node struct {
	kind     SyntaxKind
	token    *lexers.Token // non-nil only for token leaves
	children []*Node
	textLen  uint32
}

// Leaf wraps a token as a green leaf node.
func Leaf(tok lexers.Token) *Node {
	t := tok
	return &Node{
		kind:    KindOf(tok.Kind),
		token:   &t,
		textLen: uint32(len(tok.Text)),
	}
}

// NonTerminal builds a green node of kind over children.
func NonTerminal(kind SyntaxKind, children []*Node) *Node {
	var n uint32
	for _, c := range children {
		n += c.textLen
	}
	return &Node{kind: kind, children: children, textLen: n}
}

// Kind returns the node's syntax kind.
func (n *Node) Kind() SyntaxKind { return n.kind }

// IsToken reports whether the node is a token leaf.
func (n *Node) IsToken() bool { return n.token != nil }

// Token returns the wrapped token for leaves, or nil.
func (n *Node) Token() *lexers.Token { return n.token }

// Children returns the ordered child nodes. Leaves have none.
func (n *Node) Children() []*Node { return n.children }

// TextLen returns the node's text length in bytes.
func (n *Node) TextLen() uint32 { return n.textLen }

// Text returns the node's text: a leaf's token text, or the
// concatenation of the children's text.
func (n *Node) Text() string {
	if n.token != nil {
		return n.token.Text
	}
	var sb strings.Builder
	sb.Grow(int(n.textLen))
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.token != nil {
		sb.WriteString(n.token.Text)
		return
	}
	for _, c := range n.children {
		c.writeText(sb)
	}
}

// Cursor is a red node: a node plus its absolute offset and parent,
// computed while walking. Cursors are cheap values; build them with
// Tree.Root and walk with Children.
type Cursor struct {
	Node   *Node
	Offset uint32
	parent *Cursor
}

// Parent returns the cursor for the node's parent, or nil at the root.
func (c Cursor) Parent() *Cursor { return c.parent }

// Children returns cursors for the node's children with absolute
// offsets.
func (c Cursor) Children() []Cursor {
	if len(c.Node.children) == 0 {
		return nil
	}
	parent := c
	out := make([]Cursor, 0, len(c.Node.children))
	offset := c.Offset
	for _, child := range c.Node.children {
		out = append(out, Cursor{Node: child, Offset: offset, parent: &parent})
		offset += child.textLen
	}
	return out
}

// Tree is one parsed file: a Root green node whose text equals the
// whole file.
type Tree struct {
	SourceName string
	root       *Node
}

// NewTree wraps a root node. The root must have kind Root.
func NewTree(name string, root *Node) *Tree {
	return &Tree{SourceName: name, root: root}
}

// RootNode returns the root green node.
func (t *Tree) RootNode() *Node { return t.root }

// RootKind returns the root's kind (always Root for parser output).
func (t *Tree) RootKind() SyntaxKind { return t.root.kind }

// Root returns a red cursor at the root.
func (t *Tree) Root() Cursor {
	return Cursor{Node: t.root}
}

// Children returns the root's child nodes.
func (t *Tree) Children() []*Node { return t.root.children }

// Text returns the full text of the tree, byte-identical to the
// parsed source.
func (t *Tree) Text() string { return t.root.Text() }

// WithoutKinds returns a copy of the tree with subtrees of the given
// kinds removed. Untouched subtrees are shared, not copied. The
// filtered tree is lossless only over its retained region.
func (t *Tree) WithoutKinds(kinds ...SyntaxKind) *Tree {
	drop := make(map[SyntaxKind]bool, len(kinds))
	for _, k := range kinds {
		drop[k] = true
	}
	return &Tree{SourceName: t.SourceName, root: filterNode(t.root, drop)}
}

func filterNode(n *Node, drop map[SyntaxKind]bool) *Node {
	if n.token != nil {
		return n
	}
	changed := false
	kept := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if drop[c.kind] {
			changed = true
			continue
		}
		fc := filterNode(c, drop)
		if fc != c {
			changed = true
		}
		kept = append(kept, fc)
	}
	if !changed {
		return n
	}
	return NonTerminal(n.kind, kept)
}
