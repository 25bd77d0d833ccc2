// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package forms_test

import (
	"strings"
	"testing"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/forms"
	"github.com/playbymail/vb6parse/internal/headers"
	"github.com/playbymail/vb6parse/internal/resources"
	"github.com/playbymail/vb6parse/internal/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleForm = "VERSION 5.00\r\n" +
	"Begin VB.Form frmA\r\n" +
	"   Caption         =   \"Example\"\r\n" +
	"   ClientHeight    =   6210\r\n" +
	"   BeginProperty Font\r\n" +
	"      Name            =   \"MS Sans Serif\"\r\n" +
	"      Size            =   8.25\r\n" +
	"      Charset         =   0\r\n" +
	"      Weight          =   400\r\n" +
	"      Underline       =   0   'False\r\n" +
	"      Italic          =   0   'False\r\n" +
	"      Strikethrough   =   0   'False\r\n" +
	"   EndProperty\r\n" +
	"   Begin VB.Menu mnuFile\r\n" +
	"      Caption         =   \"&File\"\r\n" +
	"      Begin VB.Menu mnuOpen\r\n" +
	"         Caption         =   \"&Open\"\r\n" +
	"      End\r\n" +
	"   End\r\n" +
	"End\r\n" +
	"Attribute VB_Name = \"frmA\"\r\n" +
	"Option Explicit\r\n"

func parseForm(t *testing.T, input string, resolver resources.Resolver) (*forms.FormFile, []diagnostics.Diagnostic) {
	t.Helper()
	f, err := sources.Decode("test.frm", []byte(input))
	require.NoError(t, err)
	return forms.Parse(f, resolver).Unpack()
}

func TestForm_ControlTree(t *testing.T) {
	file, failures := parseForm(t, sampleForm, nil)
	require.Empty(t, failures)
	require.NotNil(t, file)

	assert.Equal(t, headers.Version{Major: 5, Minor: 0}, file.FormatVersion)

	root := file.Form
	assert.Equal(t, "frmA", root.Name)
	assert.Equal(t, "Example", root.Caption)

	form, ok := root.Kind.(forms.FormControl)
	require.True(t, ok, "root kind = %T", root.Kind)
	require.Len(t, form.Controls, 1)

	menu := form.Controls[0]
	assert.Equal(t, "mnuFile", menu.Name)
	assert.Equal(t, "&File", menu.Caption)

	menuKind, ok := menu.Kind.(forms.MenuControl)
	require.True(t, ok, "menu kind = %T", menu.Kind)
	assert.Equal(t, "&File", menuKind.Caption)
	require.Len(t, menuKind.Controls, 1)
	assert.Equal(t, "mnuOpen", menuKind.Controls[0].Name)
}

func TestForm_FontPropertyGroup(t *testing.T) {
	file, failures := parseForm(t, sampleForm, nil)
	require.Empty(t, failures)

	require.Len(t, file.Form.Groups, 1)
	font := file.Form.Groups[0]
	assert.Equal(t, "Font", font.Name)
	assert.Len(t, font.Properties, 7)
	assert.Equal(t, "Name", font.Properties[0].Name)
	assert.Equal(t, "MS Sans Serif", font.Properties[0].Value)
	assert.Equal(t, "8.25", font.Properties[1].Value)
}

func TestForm_ResidualTokens(t *testing.T) {
	file, failures := parseForm(t, sampleForm, nil)
	require.Empty(t, failures)

	var sb strings.Builder
	for _, tok := range file.Tokens {
		sb.WriteString(tok.Text)
	}
	text := sb.String()
	assert.Contains(t, text, "Attribute VB_Name")
	assert.Contains(t, text, "Option Explicit")
	assert.NotContains(t, text, "BeginProperty")
}

func TestForm_ResourceReference(t *testing.T) {
	input := "VERSION 5.00\r\n" +
		"Begin VB.Form frmB\r\n" +
		"   Picture         =   \"frmB.frx\":000A\r\n" +
		"End\r\n"

	resolver := func(path string, offset uint32) ([]byte, error) {
		assert.Equal(t, "frmB.frx", path)
		assert.Equal(t, uint32(0x0A), offset)
		return []byte{0xDE, 0xAD}, nil
	}
	file, failures := parseForm(t, input, resolver)
	require.Empty(t, failures)

	require.Len(t, file.Form.Properties, 1)
	prop := file.Form.Properties[0]
	assert.Equal(t, "Picture", prop.Name)
	assert.Equal(t, []byte{0xDE, 0xAD}, prop.Data)
}

func TestForm_ResourceLoadErrorRecovers(t *testing.T) {
	input := "VERSION 5.00\r\n" +
		"Begin VB.Form frmB\r\n" +
		"   Picture         =   \"missing.frx\":0000\r\n" +
		"   Caption         =   \"still here\"\r\n" +
		"End\r\n"

	resolver := func(path string, offset uint32) ([]byte, error) {
		return nil, &resources.ResolveError{Kind: diagnostics.ReadError{Path: path}}
	}
	file, failures := parseForm(t, input, resolver)
	require.NotNil(t, file)

	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.ResourceLoadError); ok {
			found = true
		}
	}
	assert.True(t, found, "expected ResourceLoadError, got %v", failures)
	assert.Equal(t, "still here", file.Form.Caption)
}

func TestForm_UnknownControlKind(t *testing.T) {
	input := "VERSION 5.00\r\n" +
		"Begin VB.Form frmC\r\n" +
		"   Begin ComctlLib.TreeView tvMain\r\n" +
		"      Indentation     =   353\r\n" +
		"   End\r\n" +
		"End\r\n"
	file, failures := parseForm(t, input, nil)
	require.NotNil(t, file)

	found := false
	for _, d := range failures {
		if kind, ok := d.Kind.(diagnostics.UnknownControlKind); ok && kind.Kind == "TreeView" {
			found = true
		}
	}
	assert.True(t, found, "expected UnknownControlKind, got %v", failures)

	form := file.Form.Kind.(forms.FormControl)
	require.Len(t, form.Controls, 1)
	generic, ok := form.Controls[0].Kind.(forms.GenericControl)
	require.True(t, ok)
	assert.Equal(t, "TreeView", generic.TypeName)
	assert.Equal(t, "tvMain", form.Controls[0].Name)
}

func TestForm_MissingVersion(t *testing.T) {
	input := "Begin VB.Form frmD\r\nEnd\r\n"
	file, failures := parseForm(t, input, nil)
	require.NotNil(t, file)
	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.FormVersionMissing); ok {
			found = true
		}
	}
	assert.True(t, found, "expected FormVersionMissing, got %v", failures)
}

func TestForm_MissingBegin(t *testing.T) {
	file, failures := parseForm(t, "VERSION 5.00\r\n", nil)
	assert.Nil(t, file)
	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.FormBeginMissing); ok {
			found = true
		}
	}
	assert.True(t, found, "expected FormBeginMissing, got %v", failures)
}
