// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package forms implements the frontend for VB6 form files (.frm).
// A form header is a VERSION line followed by a nested hierarchy of
// Begin <Namespace>.<Kind> <Name> ... End control blocks holding
// key/value properties, BeginProperty ... EndProperty groups, and
// resource references into the form's .frx file. The code after the
// header is kept as the raw token stream.
package forms

import (
	"strconv"
	"strings"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/headers"
	"github.com/playbymail/vb6parse/internal/lexers"
	"github.com/playbymail/vb6parse/internal/resources"
	"github.com/playbymail/vb6parse/internal/results"
	"github.com/playbymail/vb6parse/internal/sources"
)

// FormFile is one parsed .frm file.
type FormFile struct {
	FormatVersion headers.Version
	Form          Control
	// Tokens is the residual token stream after the header: the
	// form's code, trivia included.
	Tokens []lexers.Token
}

// Control is one Begin ... End block of the header.
type Control struct {
	Name       string
	Caption    string
	Kind       ControlKind
	Properties []Property
	Groups     []PropertyGroup
}

// Property is one ungrouped Name = Value pair. A resource reference
// ("file.frx":offset) is resolved eagerly; Data holds the payload.
type Property struct {
	Name  string
	Value string
	Data  []byte
}

// PropertyGroup is a BeginProperty NAME ... EndProperty block.
type PropertyGroup struct {
	Name       string
	Properties []Property
	Groups     []PropertyGroup
}

// ControlKind is the closed set of control kinds. Container kinds
// carry their child controls.
type ControlKind interface {
	isControlKind()
}

type FormControl struct{ Controls []Control }
type MDIFormControl struct{ Controls []Control }
type MenuControl struct {
	Caption  string
	Controls []Control
}
type FrameControl struct{ Controls []Control }
type PictureBoxControl struct{ Controls []Control }
type CommandButtonControl struct{}
type TextBoxControl struct{}
type CheckBoxControl struct{}
type OptionButtonControl struct{}
type LineControl struct{}
type ShapeControl struct{}
type LabelControl struct{}
type ComboBoxControl struct{}
type ListBoxControl struct{}
type HScrollBarControl struct{}
type VScrollBarControl struct{}
type TimerControl struct{}
type ImageControl struct{}
type DataControl struct{}

// GenericControl is the fallback for a Begin block naming a control
// kind outside the known set.
type GenericControl struct {
	TypeName string
	Controls []Control
}

func (FormControl) isControlKind()          {}
func (MDIFormControl) isControlKind()       {}
func (MenuControl) isControlKind()          {}
func (FrameControl) isControlKind()         {}
func (PictureBoxControl) isControlKind()    {}
func (CommandButtonControl) isControlKind() {}
func (TextBoxControl) isControlKind()       {}
func (CheckBoxControl) isControlKind()      {}
func (OptionButtonControl) isControlKind()  {}
func (LineControl) isControlKind()          {}
func (ShapeControl) isControlKind()         {}
func (LabelControl) isControlKind()         {}
func (ComboBoxControl) isControlKind()      {}
func (ListBoxControl) isControlKind()       {}
func (HScrollBarControl) isControlKind()    {}
func (VScrollBarControl) isControlKind()    {}
func (TimerControl) isControlKind()         {}
func (ImageControl) isControlKind()         {}
func (DataControl) isControlKind()          {}
func (GenericControl) isControlKind()       {}

// Parse parses a form file from decoded source. The resolver loads
// resource references; pass nil to keep references unresolved.
func Parse(source *sources.SourceFile, resolver resources.Resolver) results.ParseResult[FormFile] {
	var failures []diagnostics.Diagnostic

	tsr := lexers.Tokenize(source.Stream())
	ts, tokenFailures := tsr.Unpack()
	failures = append(failures, tokenFailures...)
	if ts == nil {
		return results.New[FormFile](nil, failures)
	}

	fp := &formParser{
		source:   source,
		resolver: resolver,
		lines:    splitLines(ts.Tokens),
	}

	file := &FormFile{}

	version, ok := fp.parseVersion()
	if !ok {
		failures = append(failures,
			source.Stream().GenerateError(diagnostics.FormVersionMissing{}))
	}
	file.FormatVersion = version

	root, ok := fp.parseRoot()
	failures = append(failures, fp.failures...)
	if !ok {
		failures = append(failures,
			source.Stream().GenerateError(diagnostics.FormBeginMissing{}))
		return results.New[FormFile](nil, failures)
	}
	file.Form = root

	file.Tokens = fp.residual(ts.Tokens)

	if len(tokenFailures) > 0 {
		return results.New[FormFile](nil, failures)
	}
	return results.New(file, failures)
}

// ====== Line scanning ======

// A formLine is the significant tokens of one source line plus the
// index of the first token after its newline.
type formLine struct {
	toks []lexers.Token
	next int
}

// splitLines groups the significant tokens by source line.
func splitLines(toks []lexers.Token) []formLine {
	var lines []formLine
	var current []lexers.Token
	for i, tok := range toks {
		switch {
		case tok.Kind == lexers.Newline || tok.Kind == lexers.EOF:
			if len(current) > 0 {
				lines = append(lines, formLine{toks: current, next: i + 1})
				current = nil
			}
		case tok.Kind.IsTrivia():
			// skip
		default:
			current = append(current, tok)
		}
	}
	if len(current) > 0 {
		lines = append(lines, formLine{toks: current, next: len(toks)})
	}
	return lines
}

type formParser struct {
	source   *sources.SourceFile
	resolver resources.Resolver
	lines    []formLine
	pos      int
	failures []diagnostics.Diagnostic

	headerEnd int // token index after the root control's End line
}

func (fp *formParser) fail(kind diagnostics.ErrorKind, span diagnostics.Span) {
	fp.failures = append(fp.failures,
		diagnostics.NewDiagnostic(kind, span, fp.source.Name, fp.source.Content))
}

func (fp *formParser) eof() bool { return fp.pos >= len(fp.lines) }

func (fp *formParser) line() formLine { return fp.lines[fp.pos] }

// parseVersion consumes a leading VERSION x.y line.
func (fp *formParser) parseVersion() (headers.Version, bool) {
	if fp.eof() {
		return headers.Version{}, false
	}
	toks := fp.line().toks
	if !strings.EqualFold(toks[0].Text, "version") || len(toks) < 2 {
		return headers.Version{}, false
	}
	fp.pos++
	for _, tok := range toks[1:] {
		switch tok.Kind {
		case lexers.DoubleLiteral, lexers.SingleLiteral:
			whole, frac, found := strings.Cut(strings.TrimRight(tok.Text, "!#"), ".")
			if !found {
				continue
			}
			major, errA := strconv.Atoi(whole)
			minor, errB := strconv.Atoi(frac)
			if errA == nil && errB == nil {
				return headers.Version{Major: major, Minor: minor}, true
			}
		case lexers.IntegerLiteral:
			if major, err := strconv.Atoi(tok.Text); err == nil {
				return headers.Version{Major: major}, true
			}
		}
	}
	return headers.Version{}, true
}

// parseRoot skips preamble lines (Object = ... references) and parses
// the root Begin block.
func (fp *formParser) parseRoot() (Control, bool) {
	for !fp.eof() {
		toks := fp.line().toks
		if isWord(toks[0], "begin") {
			control := fp.parseControl()
			fp.headerEnd = fp.lastConsumed()
			return control, true
		}
		fp.pos++
	}
	return Control{}, false
}

// lastConsumed returns the token index just past the last line taken.
func (fp *formParser) lastConsumed() int {
	if fp.pos == 0 {
		return 0
	}
	return fp.lines[fp.pos-1].next
}

// residual returns the token stream after the header.
func (fp *formParser) residual(toks []lexers.Token) []lexers.Token {
	if fp.headerEnd >= len(toks) {
		return nil
	}
	return toks[fp.headerEnd:]
}

// parseControl parses one Begin block. The current line is the Begin
// line.
func (fp *formParser) parseControl() Control {
	header := fp.line().toks
	fp.pos++

	control := Control{}
	kindName := ""
	// Begin <Namespace> . <Kind> <Name>
	rest := header[1:]
	if len(rest) >= 3 && rest[1].Kind == lexers.Period {
		kindName = rest[2].Text
		rest = rest[3:]
	} else if len(rest) >= 1 {
		kindName = rest[0].Text
		rest = rest[1:]
	}
	if len(rest) >= 1 {
		control.Name = rest[0].Text
	}

	var children []Control
	for !fp.eof() {
		toks := fp.line().toks
		switch {
		case toks[0].Kind == lexers.EndKeyword:
			fp.pos++
			control.Kind = fp.makeKind(kindName, header[0].Span, children, &control)
			return control
		case isWord(toks[0], "begin"):
			children = append(children, fp.parseControl())
		case isWord(toks[0], "beginproperty"):
			control.Groups = append(control.Groups, fp.parsePropertyGroup())
		default:
			fp.parsePropertyLine(&control)
		}
	}
	// ran out of input without End; keep what we have
	control.Kind = fp.makeKind(kindName, header[0].Span, children, &control)
	return control
}

// parsePropertyGroup parses BeginProperty NAME ... EndProperty.
func (fp *formParser) parsePropertyGroup() PropertyGroup {
	header := fp.line().toks
	fp.pos++

	group := PropertyGroup{}
	if len(header) > 1 {
		group.Name = header[1].Text
	}
	for !fp.eof() {
		toks := fp.line().toks
		switch {
		case isWord(toks[0], "endproperty"):
			fp.pos++
			return group
		case isWord(toks[0], "beginproperty"):
			group.Groups = append(group.Groups, fp.parsePropertyGroup())
		case toks[0].Kind == lexers.EndKeyword:
			// the enclosing control's End; the group never closed
			fp.fail(diagnostics.UnterminatedPropertyGroup{Name: group.Name}, header[0].Span)
			return group
		default:
			prop, ok := fp.parseProperty(toks)
			if ok {
				group.Properties = append(group.Properties, prop)
			}
			fp.pos++
		}
	}
	fp.fail(diagnostics.UnterminatedPropertyGroup{Name: group.Name}, header[0].Span)
	return group
}

// parsePropertyLine parses one Name = Value line of a control,
// promoting Caption into the control's common part.
func (fp *formParser) parsePropertyLine(control *Control) {
	toks := fp.line().toks
	prop, ok := fp.parseProperty(toks)
	fp.pos++
	if !ok {
		return
	}
	if strings.EqualFold(prop.Name, "caption") {
		control.Caption = prop.Value
	}
	control.Properties = append(control.Properties, prop)
}

// parseProperty decodes Name = Value from a line's tokens. A value of
// the form "file.frx":HEX is a resource reference and is resolved
// through the injected resolver.
func (fp *formParser) parseProperty(toks []lexers.Token) (Property, bool) {
	eq := -1
	for i, tok := range toks {
		if tok.Kind == lexers.EqualOperator {
			eq = i
			break
		}
	}
	if eq <= 0 {
		return Property{}, false
	}
	var name strings.Builder
	for _, tok := range toks[:eq] {
		name.WriteString(tok.Text)
	}
	prop := Property{Name: name.String()}

	value := toks[eq+1:]
	if len(value) >= 2 && value[0].Kind == lexers.StringLiteral && value[1].Kind == lexers.Colon {
		fp.resolveReference(&prop, value)
		return prop, true
	}
	var sb strings.Builder
	for _, tok := range value {
		if tok.Kind == lexers.StringLiteral {
			sb.WriteString(headers.Unquote(tok.Text))
		} else {
			sb.WriteString(tok.Text)
		}
	}
	prop.Value = sb.String()
	return prop, true
}

// resolveReference loads the bytes behind a "file.frx":HEX value.
// Failure to resolve does not abort parsing.
func (fp *formParser) resolveReference(prop *Property, value []lexers.Token) {
	path := headers.Unquote(value[0].Text)
	var hex strings.Builder
	for _, tok := range value[2:] {
		hex.WriteString(tok.Text)
	}
	prop.Value = path + ":" + hex.String()

	offset, err := strconv.ParseUint(hex.String(), 16, 32)
	if err != nil {
		fp.fail(diagnostics.ResourceLoadError{Path: path}, value[0].Span)
		return
	}
	if fp.resolver == nil {
		return
	}
	data, err := fp.resolver(path, uint32(offset))
	if err != nil {
		fp.fail(diagnostics.ResourceLoadError{Path: path}, value[0].Span)
		return
	}
	prop.Data = data
}

// makeKind maps a control kind name to its variant. Unknown kinds
// yield a recoverable diagnostic and the generic fallback.
func (fp *formParser) makeKind(name string, span diagnostics.Span, children []Control, control *Control) ControlKind {
	switch strings.ToLower(name) {
	case "form":
		return FormControl{Controls: children}
	case "mdiform":
		return MDIFormControl{Controls: children}
	case "menu":
		return MenuControl{Caption: control.Caption, Controls: children}
	case "frame":
		return FrameControl{Controls: children}
	case "picturebox":
		return PictureBoxControl{Controls: children}
	case "commandbutton":
		return CommandButtonControl{}
	case "textbox":
		return TextBoxControl{}
	case "checkbox":
		return CheckBoxControl{}
	case "optionbutton":
		return OptionButtonControl{}
	case "line":
		return LineControl{}
	case "shape":
		return ShapeControl{}
	case "label":
		return LabelControl{}
	case "combobox":
		return ComboBoxControl{}
	case "listbox":
		return ListBoxControl{}
	case "hscrollbar":
		return HScrollBarControl{}
	case "vscrollbar":
		return VScrollBarControl{}
	case "timer":
		return TimerControl{}
	case "image":
		return ImageControl{}
	case "data":
		return DataControl{}
	default:
		fp.fail(diagnostics.UnknownControlKind{Kind: name}, span)
		return GenericControl{TypeName: name, Controls: children}
	}
}

// isWord reports a case-insensitive identifier match.
func isWord(tok lexers.Token, word string) bool {
	return strings.EqualFold(tok.Text, word)
}
