// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package classes_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/playbymail/vb6parse/internal/classes"
	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/headers"
	"github.com/playbymail/vb6parse/internal/sources"
)

const minimalClass = "VERSION 1.0 CLASS\r\n" +
	"BEGIN\r\n" +
	"  MultiUse = -1\r\n" +
	"  Persistable = 0\r\n" +
	"  DataBindingBehavior = 0\r\n" +
	"  DataSourceBehavior = 0\r\n" +
	"  MTSTransactionMode = 0\r\n" +
	"END\r\n" +
	"Attribute VB_Name = \"Foo\"\r\n"

func parseClass(t *testing.T, input string) (*classes.ClassFile, []diagnostics.Diagnostic) {
	t.Helper()
	f, err := sources.Decode("test.cls", []byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return classes.Parse(f).Unpack()
}

func TestClass_MinimalHeader(t *testing.T) {
	file, failures := parseClass(t, minimalClass)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if file == nil {
		t.Fatal("no result")
	}

	if diff := deep.Equal(file.Header.Version, headers.Version{Major: 1, Minor: 0}); diff != nil {
		t.Error(diff)
	}
	want := classes.ClassProperties{
		MultiUse:            classes.MultiUse,
		Persistable:         classes.NotPersistable,
		DataBindingBehavior: classes.DataBindingNone,
		DataSourceBehavior:  classes.DataSourceNone,
		MTSTransactionMode:  classes.NotAnMTSObject,
	}
	if diff := deep.Equal(file.Header.Properties, want); diff != nil {
		t.Error(diff)
	}
	if len(file.Header.Attributes) != 1 {
		t.Fatalf("attributes = %v", file.Header.Attributes)
	}
	if file.Header.Attributes[0].Name != "VB_Name" || file.Header.Attributes[0].Value != "Foo" {
		t.Errorf("attribute = %+v", file.Header.Attributes[0])
	}
	if file.Name() != "Foo" {
		t.Errorf("name = %q", file.Name())
	}
}

func TestClass_ComplexDataBinding(t *testing.T) {
	input := "VERSION 1.0 CLASS\r\n" +
		"BEGIN\r\n" +
		"  MultiUse = -1\r\n" +
		"  DataBindingBehavior = 2\r\n" +
		"END\r\n" +
		"Attribute VB_Name = \"Bar\"\r\n"
	file, failures := parseClass(t, input)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if file.Header.Properties.DataBindingBehavior != classes.DataBindingComplex {
		t.Errorf("binding = %v", file.Header.Properties.DataBindingBehavior)
	}
}

func TestClass_UnknownValueDefaultsToZeroVariant(t *testing.T) {
	input := "VERSION 1.0 CLASS\r\n" +
		"BEGIN\r\n" +
		"  MTSTransactionMode = 99\r\n" +
		"  DataBindingBehavior = 7\r\n" +
		"  MultiUse = 0\r\n" +
		"END\r\n" +
		"Attribute VB_Name = \"Baz\"\r\n"
	file, _ := parseClass(t, input)
	if file.Header.Properties.MTSTransactionMode != classes.NotAnMTSObject {
		t.Errorf("mts = %v", file.Header.Properties.MTSTransactionMode)
	}
	if file.Header.Properties.DataBindingBehavior != classes.DataBindingNone {
		t.Errorf("binding = %v", file.Header.Properties.DataBindingBehavior)
	}
	if file.Header.Properties.MultiUse != classes.SingleUse {
		t.Errorf("multiuse = %v", file.Header.Properties.MultiUse)
	}
}

func TestClass_UnknownPropertyIgnored(t *testing.T) {
	input := "VERSION 1.0 CLASS\r\n" +
		"BEGIN\r\n" +
		"  MultiUse = -1\r\n" +
		"  SomeFutureThing = 5\r\n" +
		"END\r\n" +
		"Attribute VB_Name = \"Foo\"\r\n"
	file, failures := parseClass(t, input)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if file.Header.Properties.MultiUse != classes.MultiUse {
		t.Errorf("multiuse = %v", file.Header.Properties.MultiUse)
	}
}

func TestClass_MissingVersion(t *testing.T) {
	file, failures := parseClass(t, "Attribute VB_Name = \"Foo\"\r\n")
	if file != nil {
		t.Error("expected no result")
	}
	found := false
	for _, d := range failures {
		if _, ok := d.Kind.(diagnostics.VersionKeywordMissing); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected VersionKeywordMissing, got %v", failures)
	}
}

func TestClass_BareCarriageReturn(t *testing.T) {
	input := "VERSION 1.0 CLASS\rBEGIN\r  MultiUse = -1\rEND\rAttribute VB_Name = \"Foo\"\r"
	file, failures := parseClass(t, input)
	if len(failures) == 0 {
		t.Error("expected failures for bare carriage returns")
	}
	if file != nil {
		t.Error("bare carriage returns must not yield a valid class file")
	}
}

func TestClass_ResidualCST(t *testing.T) {
	input := minimalClass +
		"\r\n" +
		"Private mCount As Long\r\n" +
		"\r\n" +
		"Public Sub Increment()\r\n" +
		"    mCount = mCount + 1\r\n" +
		"End Sub\r\n"
	file, failures := parseClass(t, input)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	text := file.CST.Text()
	if text == "" {
		t.Fatal("residual CST is empty")
	}
	// header nodes are gone from the residual tree
	for _, gone := range []string{"VERSION", "MultiUse", "Attribute"} {
		if strings.Contains(text, gone) {
			t.Errorf("residual CST still contains %q", gone)
		}
	}
	for _, kept := range []string{"Private mCount", "Public Sub Increment"} {
		if !strings.Contains(text, kept) {
			t.Errorf("residual CST lost %q", kept)
		}
	}
}
