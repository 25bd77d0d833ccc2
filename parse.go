// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/playbymail/vb6parse/internal/classes"
	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/forms"
	"github.com/playbymail/vb6parse/internal/modules"
	"github.com/playbymail/vb6parse/internal/projects"
	"github.com/playbymail/vb6parse/internal/resources"
	"github.com/playbymail/vb6parse/internal/sources"
	"github.com/spf13/cobra"
)

var argsParse struct {
	showDiagnostics bool
}

var cmdParse = &cobra.Command{
	Use:   "parse",
	Short: "parse files",
	Long:  `Parse VB6 source artifacts and report what we find.`,
}

var cmdParseClass = &cobra.Command{
	Use:   "class",
	Short: "parse a class file",
	Run: func(cmd *cobra.Command, args []string) {
		source := decodeArg(args)
		file, failures := classes.Parse(source).Unpack()
		reportDiagnostics(failures)
		if file == nil {
			log.Fatalf("parse: %q: no result\n", source.Name)
		}
		fmt.Printf("class   %q version %d.%d attributes %d\n",
			file.Name(), file.Header.Version.Major, file.Header.Version.Minor,
			len(file.Header.Attributes))
	},
}

var cmdParseModule = &cobra.Command{
	Use:   "module",
	Short: "parse a module file",
	Run: func(cmd *cobra.Command, args []string) {
		source := decodeArg(args)
		file, failures := modules.Parse(source).Unpack()
		reportDiagnostics(failures)
		if file == nil {
			log.Fatalf("parse: %q: no result\n", source.Name)
		}
		fmt.Printf("module  %q attributes %d\n", file.Name(), len(file.Header.Attributes))
	},
}

var cmdParseForm = &cobra.Command{
	Use:   "form",
	Short: "parse a form file",
	Run: func(cmd *cobra.Command, args []string) {
		source := decodeArg(args)
		resolver, err := resources.NewFileResolver(globalConfig.Resources.CacheSize)
		if err != nil {
			log.Fatalf("parse: %v\n", err)
		}
		dir := filepath.Dir(source.Name)
		file, failures := forms.Parse(source, func(path string, offset uint32) ([]byte, error) {
			return resolver.Resolve(filepath.Join(dir, path), offset)
		}).Unpack()
		reportDiagnostics(failures)
		if file == nil {
			log.Fatalf("parse: %q: no result\n", source.Name)
		}
		fmt.Printf("form    %q version %d.%d controls %d\n",
			file.Form.Name, file.FormatVersion.Major, file.FormatVersion.Minor,
			countControls(file.Form))
	},
}

var cmdParseProject = &cobra.Command{
	Use:   "project",
	Short: "parse a project file",
	Run: func(cmd *cobra.Command, args []string) {
		source := decodeArg(args)
		file, failures := projects.Parse(source).Unpack()
		reportDiagnostics(failures)
		if file == nil {
			log.Fatalf("parse: %q: no result\n", source.Name)
		}
		fmt.Printf("project %q type %q forms %d modules %d classes %d\n",
			file.Name, file.Type, len(file.Forms), len(file.Modules), len(file.Classes))
	},
}

// decodeArg reads and decodes the single file named on the command
// line.
func decodeArg(args []string) *sources.SourceFile {
	if len(args) != 1 {
		log.Fatalf("error: expected file name to parse\n")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	source, err := sources.Decode(args[0], data)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	return source
}

func reportDiagnostics(failures []diagnostics.Diagnostic) {
	if !argsParse.showDiagnostics {
		return
	}
	for _, d := range failures {
		fmt.Printf("%s: %s: line %d: %s\n",
			d.SourceName, d.Severity, d.PrimarySpan.LineStart, d.Message())
	}
}

func countControls(control forms.Control) int {
	n := 1
	for _, child := range childControls(control.Kind) {
		n += countControls(child)
	}
	return n
}

func childControls(kind forms.ControlKind) []forms.Control {
	switch k := kind.(type) {
	case forms.FormControl:
		return k.Controls
	case forms.MDIFormControl:
		return k.Controls
	case forms.MenuControl:
		return k.Controls
	case forms.FrameControl:
		return k.Controls
	case forms.PictureBoxControl:
		return k.Controls
	case forms.GenericControl:
		return k.Controls
	default:
		return nil
	}
}
