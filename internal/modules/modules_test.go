// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package modules_test

import (
	"strings"
	"testing"

	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/modules"
	"github.com/playbymail/vb6parse/internal/sources"
)

func parseModule(t *testing.T, input string) (*modules.ModuleFile, []diagnostics.Diagnostic) {
	t.Helper()
	f, err := sources.Decode("test.bas", []byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return modules.Parse(f).Unpack()
}

func TestModule_Header(t *testing.T) {
	input := "Attribute VB_Name = \"Module1\"\r\n" +
		"Option Explicit\r\n" +
		"\r\n" +
		"Public Sub Main()\r\n" +
		"    Beep\r\n" +
		"End Sub\r\n"
	file, failures := parseModule(t, input)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if file.Name() != "Module1" {
		t.Errorf("name = %q", file.Name())
	}
	if len(file.Header.Attributes) != 1 {
		t.Errorf("attributes = %v", file.Header.Attributes)
	}
	text := file.CST.Text()
	if strings.Contains(text, "Attribute") {
		t.Error("residual CST still contains the attribute line")
	}
	if !strings.Contains(text, "Option Explicit") || !strings.Contains(text, "Public Sub Main") {
		t.Errorf("residual CST lost code: %q", text)
	}
}

func TestModule_MissingAttribute(t *testing.T) {
	file, failures := parseModule(t, "Option Explicit\r\nSub Main()\r\nEnd Sub\r\n")
	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.AttributeKeywordMissing); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected AttributeKeywordMissing, got %v", failures)
	}
	// header failure does not abort the parse
	if file == nil {
		t.Error("module parse must keep its partial result")
	}
}
