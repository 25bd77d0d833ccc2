// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package projects implements the frontend for VB6 project files
// (.vbp): a line-oriented Key=Value format with bracket-delimited
// section headers. Compilation-type keys fold into a CompilationType
// value; the rest of the surface is kept as structured metadata.
package projects

import (
	"strconv"
	"strings"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/playbymail/vb6parse/internal/sources"
)

// FileReference is a Module=Name; Path or Class=Name; Path line.
type FileReference struct {
	Name string
	Path string
}

// ProjectFile is one parsed .vbp file.
type ProjectFile struct {
	Type string // Exe, OleDll, Control, OleExe

	References    []string
	Objects       []string
	Modules       []FileReference
	Classes       []FileReference
	Forms         []string
	Designers     []string
	UserControls  []string
	UserDocuments []string

	ResFile       string
	IconForm      string
	Startup       string
	HelpFile      string
	Title         string
	ExeName       string
	Command       string
	Name          string
	HelpContextID string
	Description   string

	MajorVer         int
	MinorVer         int
	RevisionVer      int
	AutoIncrementVer bool

	CompilationType    CompilationType
	ConditionalCompile string

	// Other holds keys the structured surface does not model,
	// grouped by section ("" is the implicit leading section).
	Other map[string][]FileReference
}

// Parse parses a project file from decoded source.
func Parse(source *sources.SourceFile) results.ParseResult[ProjectFile] {
	p := &projectParser{
		source:   source,
		stream:   source.Stream(),
		project:  &ProjectFile{Other: map[string][]FileReference{}},
		native:   defaultNativeCodeSettings(),
		compType: "0",
	}

	section := ""
	for lineNo, raw := range strings.Split(source.Content, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			name, ok := strings.CutSuffix(trimmed[1:], "]")
			if !ok {
				p.fail(diagnostics.UnterminatedSectionHeader{}, uint32(lineNo+1))
				continue
			}
			section = name
			continue
		}
		key, value, ok := strings.Cut(trimmed, "=")
		if !ok || strings.TrimSpace(key) == "" {
			p.fail(diagnostics.MissingKey{Line: trimmed}, uint32(lineNo+1))
			continue
		}
		p.apply(section, strings.TrimSpace(key), strings.TrimSpace(value))
	}

	p.project.CompilationType = p.buildCompilationType()
	return results.New(p.project, p.failures)
}

type projectParser struct {
	source   *sources.SourceFile
	stream   *sources.SourceStream
	project  *ProjectFile
	failures []diagnostics.Diagnostic

	compType string
	native   NativeCodeSettings
}

func (p *projectParser) fail(kind diagnostics.ErrorKind, line uint32) {
	span := diagnostics.Span{LineStart: line, LineEnd: line}
	p.failures = append(p.failures,
		diagnostics.NewDiagnostic(kind, span, p.source.Name, p.source.Content))
}

// apply routes one key/value pair into the project model.
func (p *projectParser) apply(section, key, value string) {
	prj := p.project
	switch key {
	case "Type":
		prj.Type = value
	case "Reference":
		prj.References = append(prj.References, value)
	case "Object":
		prj.Objects = append(prj.Objects, value)
	case "Module":
		prj.Modules = append(prj.Modules, splitNamePath(value))
	case "Class":
		prj.Classes = append(prj.Classes, splitNamePath(value))
	case "Form":
		prj.Forms = append(prj.Forms, value)
	case "Designer":
		prj.Designers = append(prj.Designers, value)
	case "UserControl":
		prj.UserControls = append(prj.UserControls, value)
	case "UserDocument":
		prj.UserDocuments = append(prj.UserDocuments, value)
	case "ResFile32":
		prj.ResFile = unquote(value)
	case "IconForm":
		prj.IconForm = unquote(value)
	case "Startup":
		prj.Startup = unquote(value)
	case "HelpFile":
		prj.HelpFile = unquote(value)
	case "Title":
		prj.Title = unquote(value)
	case "ExeName32":
		prj.ExeName = unquote(value)
	case "Command32":
		prj.Command = unquote(value)
	case "Name":
		prj.Name = unquote(value)
	case "HelpContextID":
		prj.HelpContextID = unquote(value)
	case "Description":
		prj.Description = unquote(value)
	case "MajorVer":
		prj.MajorVer = atoiOrZero(value)
	case "MinorVer":
		prj.MinorVer = atoiOrZero(value)
	case "RevisionVer":
		prj.RevisionVer = atoiOrZero(value)
	case "AutoIncrementVer":
		prj.AutoIncrementVer = value != "0"
	case "ConditionalCompile":
		prj.ConditionalCompile = unquote(value)
	case "CompilationType":
		p.compType = value
	case "OptimizationType":
		switch value {
		case "0":
			p.native.OptimizationType = FavorFastCode
		case "1":
			p.native.OptimizationType = FavorSmallCode
		case "2":
			p.native.OptimizationType = NoOptimization
		default:
			p.failSetting(key, value)
		}
	case "FavorPentiumPro(tm)":
		p.setToggle(key, value, func(v int16) { p.native.FavorPentiumPro = PentiumProFavor(v) })
	case "CodeViewDebugInfo":
		p.setToggle(key, value, func(v int16) { p.native.CodeViewDebugInfo = CodeViewDebugInfo(v) })
	case "NoAliasing":
		p.setToggle(key, value, func(v int16) { p.native.Aliasing = Aliasing(v) })
	case "BoundsCheck":
		p.setToggle(key, value, func(v int16) { p.native.BoundsCheck = BoundsCheck(v) })
	case "OverflowCheck":
		p.setToggle(key, value, func(v int16) { p.native.OverflowCheck = OverflowCheck(v) })
	case "FlPointCheck":
		p.setToggle(key, value, func(v int16) { p.native.FloatingPointCheck = FloatingPointCheck(v) })
	case "FDIVCheck":
		p.setToggle(key, value, func(v int16) { p.native.PentiumFDivBugCheck = PentiumFDivBugCheck(v) })
	case "UnroundedFP":
		p.setToggle(key, value, func(v int16) { p.native.UnroundedFP = UnroundedFloatingPoint(v) })
	default:
		prj.Other[section] = append(prj.Other[section], FileReference{Name: key, Path: value})
	}
}

func (p *projectParser) setToggle(key, value string, assign func(int16)) {
	v, ok := toggleFromValue(value)
	if !ok {
		p.failSetting(key, value)
		return
	}
	assign(v)
}

func (p *projectParser) failSetting(key, value string) {
	p.failures = append(p.failures, p.stream.GenerateError(
		diagnostics.InvalidCompilationSetting{Key: key, Value: value}))
}

// buildCompilationType folds the collected keys. The IDE writes
// CompilationType=-1 for p-code and 0 for native code.
func (p *projectParser) buildCompilationType() CompilationType {
	if p.compType == "-1" {
		return PCode{}
	}
	if p.compType != "0" {
		p.failSetting("CompilationType", p.compType)
	}
	return NativeCode{Settings: p.native}
}

// splitNamePath splits "Name; Path" module and class lines.
func splitNamePath(value string) FileReference {
	name, path, found := strings.Cut(value, ";")
	if !found {
		return FileReference{Path: strings.TrimSpace(value)}
	}
	return FileReference{
		Name: strings.TrimSpace(name),
		Path: strings.TrimSpace(path),
	}
}

func unquote(value string) string {
	return strings.Trim(value, `"`)
}

func atoiOrZero(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
