// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package headers implements the header extraction shared by the
// class and module frontends: the VERSION line, the BEGIN...END
// properties block, and Attribute lines.
package headers

import (
	"strconv"
	"strings"

	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/lexers"
	"github.com/playbymail/vb6parse/internal/walkers"
)

// Version is the format version from a VERSION x.y line.
type Version struct {
	Major int
	Minor int
}

// AttributePair is one Attribute name = value line. Value keeps its
// decoded form: string literals are unquoted, everything else is the
// raw text.
type AttributePair struct {
	Name  string
	Value string
}

// ExtractVersion returns the version from the first VersionStatement,
// or false when the tree has none.
func ExtractVersion(tree *cst.Tree) (Version, bool) {
	node := walkers.FindFirst(tree.RootNode(), cst.VersionStatement)
	if node == nil {
		return Version{}, false
	}
	for _, tok := range walkers.Significant(node) {
		switch tok.Kind {
		case lexers.DoubleLiteral, lexers.SingleLiteral:
			major, minor, ok := splitVersion(tok.Text)
			if ok {
				return Version{Major: major, Minor: minor}, true
			}
		case lexers.IntegerLiteral:
			if major, err := strconv.Atoi(tok.Text); err == nil {
				return Version{Major: major}, true
			}
		}
	}
	return Version{}, true
}

func splitVersion(text string) (major, minor int, ok bool) {
	text = strings.TrimRight(text, "!#")
	whole, frac, found := strings.Cut(text, ".")
	if !found {
		return 0, 0, false
	}
	major, err := strconv.Atoi(whole)
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(frac)
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

// ExtractAttributes returns every Attribute line, in source order.
func ExtractAttributes(tree *cst.Tree) []AttributePair {
	var out []AttributePair
	for _, node := range walkers.FindAll(tree.RootNode(), cst.AttributeStatement) {
		toks := walkers.Significant(node)
		// Attribute <name> = <value>
		if len(toks) < 2 || !strings.EqualFold(toks[0].Text, "attribute") {
			continue
		}
		pair := AttributePair{}
		i := 1
		// the name may be dotted (VB_Ext_KEY entries use suffixes)
		var name strings.Builder
		for ; i < len(toks) && toks[i].Kind != lexers.EqualOperator; i++ {
			name.WriteString(toks[i].Text)
		}
		pair.Name = name.String()
		if i < len(toks) && toks[i].Kind == lexers.EqualOperator {
			i++
		}
		var value strings.Builder
		for ; i < len(toks); i++ {
			if toks[i].Kind == lexers.Newline || toks[i].Kind == lexers.Colon {
				break
			}
			value.WriteString(decodeValue(toks[i]))
		}
		pair.Value = value.String()
		out = append(out, pair)
	}
	return out
}

// FindAttribute returns the value of the named attribute, matched
// case-insensitively.
func FindAttribute(pairs []AttributePair, name string) (string, bool) {
	for _, p := range pairs {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Properties returns the key/value pairs of the first PropertiesBlock.
// Keys keep their source casing; matching them is the caller's
// business (class property names are case-sensitive).
func Properties(tree *cst.Tree) ([]AttributePair, bool) {
	block := walkers.FindFirst(tree.RootNode(), cst.PropertiesBlock)
	if block == nil {
		return nil, false
	}
	var out []AttributePair
	for _, prop := range walkers.FindAll(block, cst.Property) {
		key := walkers.FindFirst(prop, cst.PropertyKey)
		value := walkers.FindFirst(prop, cst.PropertyValue)
		if key == nil || value == nil {
			continue
		}
		pair := AttributePair{Name: strings.TrimSpace(key.Text())}
		var sb strings.Builder
		for _, tok := range walkers.Significant(value) {
			sb.WriteString(decodeValue(tok))
		}
		pair.Value = sb.String()
		out = append(out, pair)
	}
	return out, true
}

// decodeValue unquotes string literals and strips comments; any other
// token contributes its raw text.
func decodeValue(tok lexers.Token) string {
	switch tok.Kind {
	case lexers.StringLiteral:
		return Unquote(tok.Text)
	case lexers.Comment:
		return ""
	default:
		return tok.Text
	}
}

// Unquote strips the surrounding quotes from a string literal and
// collapses doubled quotes.
func Unquote(text string) string {
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	} else {
		text = strings.TrimPrefix(text, `"`)
	}
	return strings.ReplaceAll(text, `""`, `"`)
}
