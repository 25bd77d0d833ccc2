// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package headers_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/headers"
	"github.com/playbymail/vb6parse/internal/sources"
)

func parseTree(t *testing.T, input string) *cst.Tree {
	t.Helper()
	f, err := sources.Decode("test.cls", []byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tree, _ := cst.FromSource(f).Unpack()
	if tree == nil {
		t.Fatal("no tree")
	}
	return tree
}

func TestExtractVersion(t *testing.T) {
	tree := parseTree(t, "VERSION 1.0 CLASS\r\n")
	version, ok := headers.ExtractVersion(tree)
	if !ok {
		t.Fatal("no version")
	}
	if version.Major != 1 || version.Minor != 0 {
		t.Errorf("version = %+v", version)
	}

	tree = parseTree(t, "VERSION 5.00\r\n")
	version, ok = headers.ExtractVersion(tree)
	if !ok || version.Major != 5 || version.Minor != 0 {
		t.Errorf("version = %+v ok=%v", version, ok)
	}

	tree = parseTree(t, "Dim x\r\n")
	if _, ok = headers.ExtractVersion(tree); ok {
		t.Error("version found where none exists")
	}
}

func TestExtractAttributes(t *testing.T) {
	input := "Attribute VB_Name = \"Thing\"\r\n" +
		"Attribute VB_GlobalNameSpace = False\r\n" +
		"Attribute VB_Creatable = True\r\n"
	tree := parseTree(t, input)
	attrs := headers.ExtractAttributes(tree)
	want := []headers.AttributePair{
		{Name: "VB_Name", Value: "Thing"},
		{Name: "VB_GlobalNameSpace", Value: "False"},
		{Name: "VB_Creatable", Value: "True"},
	}
	if diff := deep.Equal(attrs, want); diff != nil {
		t.Error(diff)
	}

	value, ok := headers.FindAttribute(attrs, "vb_name")
	if !ok || value != "Thing" {
		t.Errorf("find = %q ok=%v", value, ok)
	}
}

func TestProperties(t *testing.T) {
	input := "BEGIN\r\n" +
		"  MultiUse = -1  'True\r\n" +
		"  Persistable = 0\r\n" +
		"END\r\n"
	tree := parseTree(t, input)
	pairs, ok := headers.Properties(tree)
	if !ok {
		t.Fatal("no properties block")
	}
	want := []headers.AttributePair{
		{Name: "MultiUse", Value: "-1"},
		{Name: "Persistable", Value: "0"},
	}
	if diff := deep.Equal(pairs, want); diff != nil {
		t.Error(diff)
	}
}

func TestUnquote(t *testing.T) {
	cases := map[string]string{
		`"abc"`:  "abc",
		`"a""b"`: `a"b`,
		`""`:     "",
		`plain`:  "plain",
	}
	for input, want := range cases {
		if got := headers.Unquote(input); got != want {
			t.Errorf("Unquote(%q) = %q, want %q", input, got, want)
		}
	}
}
