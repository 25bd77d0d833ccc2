// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package classes implements the frontend for VB6 class files (.cls).
// A class file is a VERSION line, a BEGIN...END properties block,
// Attribute lines, and code. The frontend extracts the header and
// returns it with the residual CST (header nodes filtered out).
package classes

import (
	"strconv"

	"github.com/playbymail/vb6parse/internal/cst"
	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/headers"
	"github.com/playbymail/vb6parse/internal/lexers"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/playbymail/vb6parse/internal/sources"
)

// ClassHeader is the structured header of a class file.
type ClassHeader struct {
	Version    headers.Version
	Properties ClassProperties
	Attributes []headers.AttributePair
}

// ClassFile is one parsed .cls file.
type ClassFile struct {
	Header ClassHeader
	// CST is the residual tree: VersionStatement, PropertiesBlock,
	// and AttributeStatement nodes are already in the header.
	CST *cst.Tree
}

// Name returns the class name from the VB_Name attribute.
func (f *ClassFile) Name() string {
	name, _ := headers.FindAttribute(f.Header.Attributes, "VB_Name")
	return name
}

// Parse parses a class file from decoded source.
func Parse(source *sources.SourceFile) results.ParseResult[ClassFile] {
	var failures []diagnostics.Diagnostic

	tsr := lexers.Tokenize(source.Stream())
	ts, tokenFailures := tsr.Unpack()
	failures = append(failures, tokenFailures...)
	if ts == nil {
		return results.New[ClassFile](nil, failures)
	}

	tree, cstFailures := cst.Parse(ts).Unpack()
	failures = append(failures, cstFailures...)

	version, ok := headers.ExtractVersion(tree)
	if !ok {
		failures = append(failures,
			source.Stream().GenerateError(diagnostics.VersionKeywordMissing{}))
		return results.New[ClassFile](nil, failures)
	}

	properties, propFailures := extractProperties(source, tree)
	failures = append(failures, propFailures...)

	attributes := headers.ExtractAttributes(tree)

	// a token-stage failure (bad encoding artifacts, bare carriage
	// returns) means the text cannot be trusted as a class file
	if len(tokenFailures) > 0 {
		return results.New[ClassFile](nil, failures)
	}

	file := &ClassFile{
		Header: ClassHeader{
			Version:    version,
			Properties: properties,
			Attributes: attributes,
		},
		CST: tree.WithoutKinds(cst.VersionStatement, cst.PropertiesBlock, cst.AttributeStatement),
	}
	return results.New(file, failures)
}

// extractProperties reads the five known properties from the
// PropertiesBlock. Unknown names are ignored; a missing block leaves
// every property at its default.
func extractProperties(source *sources.SourceFile, tree *cst.Tree) (ClassProperties, []diagnostics.Diagnostic) {
	props := ClassProperties{}
	pairs, ok := headers.Properties(tree)
	if !ok {
		return props, nil
	}
	var failures []diagnostics.Diagnostic
	for _, pair := range pairs {
		value, err := strconv.Atoi(pair.Value)
		if err != nil {
			failures = append(failures, source.Stream().GenerateError(
				diagnostics.InvalidPropertyValue{Name: pair.Name, Value: pair.Value}))
			continue
		}
		// property names are matched case-sensitively
		switch pair.Name {
		case "MultiUse":
			props.MultiUse = FileUsageFromValue(value)
		case "Persistable":
			props.Persistable = PersistenceFromValue(value)
		case "DataBindingBehavior":
			props.DataBindingBehavior = DataBindingBehaviorFromValue(value)
		case "DataSourceBehavior":
			props.DataSourceBehavior = DataSourceBehaviorFromValue(value)
		case "MTSTransactionMode":
			props.MTSTransactionMode = MtsStatusFromValue(value)
		}
	}
	return props, failures
}
