// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package modules implements the frontend for VB6 module files (.bas).
// A module header is only Attribute lines; there is no VERSION line
// and no properties block.
package modules

import (
	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/headers"
	"github.com/playbymail/vb6parse/internal/lexers"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/playbymail/vb6parse/internal/sources"
)

// ModuleHeader is the structured header of a module file.
type ModuleHeader struct {
	Attributes []headers.AttributePair
}

// ModuleFile is one parsed .bas file.
type ModuleFile struct {
	Header ModuleHeader
	// CST is the residual tree with AttributeStatement nodes removed.
	CST *cst.Tree
}

// Name returns the module name from the VB_Name attribute.
func (f *ModuleFile) Name() string {
	name, _ := headers.FindAttribute(f.Header.Attributes, "VB_Name")
	return name
}

// Parse parses a module file from decoded source.
func Parse(source *sources.SourceFile) results.ParseResult[ModuleFile] {
	var failures []diagnostics.Diagnostic

	tsr := lexers.Tokenize(source.Stream())
	ts, tokenFailures := tsr.Unpack()
	failures = append(failures, tokenFailures...)
	if ts == nil {
		return results.New[ModuleFile](nil, failures)
	}

	tree, cstFailures := cst.Parse(ts).Unpack()
	failures = append(failures, cstFailures...)

	attributes := headers.ExtractAttributes(tree)
	if _, ok := headers.FindAttribute(attributes, "VB_Name"); !ok {
		failures = append(failures,
			source.Stream().GenerateError(diagnostics.AttributeKeywordMissing{}))
	}

	if len(tokenFailures) > 0 {
		return results.New[ModuleFile](nil, failures)
	}

	file := &ModuleFile{
		Header: ModuleHeader{Attributes: attributes},
		CST:    tree.WithoutKinds(cst.AttributeStatement),
	}
	return results.New(file, failures)
}
