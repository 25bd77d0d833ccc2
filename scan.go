// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
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
	"github.com/playbymail/vb6parse/internal/stdlib"
	"github.com/playbymail/vb6parse/internal/stores/sqlite"
	"github.com/spf13/cobra"
)

var argsScan struct {
	path  string
	store string
}

var cmdScan = &cobra.Command{
	Use:   "scan",
	Short: "parse every artifact in a directory",
	Long:  `Parse every VB6 artifact in a directory, optionally recording results to the scan database.`,
	Run: func(cmd *cobra.Command, args []string) {
		files, err := stdlib.FindAllInputs(argsScan.path)
		if err != nil {
			log.Fatalf("scan: %v\n", err)
		}

		var store *sqlite.Store
		scanID := ""
		if argsScan.store != "" {
			store, err = sqlite.Open(argsScan.store, context.Background())
			if err != nil {
				log.Fatalf("scan: %v\n", err)
			}
			defer store.Close()
			scanID, err = store.CreateScan(argsScan.path)
			if err != nil {
				log.Fatalf("scan: %v\n", err)
			}
		}

		resolver, err := resources.NewFileResolver(globalConfig.Resources.CacheSize)
		if err != nil {
			log.Fatalf("scan: %v\n", err)
		}

		parsed, failed := 0, 0
		for _, file := range files {
			if file.Kind == "resource" {
				// resources are read through form references, not scanned
				continue
			}
			name, ok, failures := scanFile(file, resolver)
			parsed++
			if !ok || hasErrors(failures) {
				failed++
			}
			log.Printf("[scan] %-8s %-24s diagnostics %d\n", file.Kind, file.Name, len(failures))
			if store != nil {
				summary := sqlite.FileSummary{
					Path:     filepath.Join(file.Path, file.Name),
					Kind:     file.Kind,
					Name:     name,
					Checksum: file.Hash,
					ParsedOK: ok,
				}
				if err := store.InsertFile(scanID, summary, failures); err != nil {
					log.Fatalf("scan: %v\n", err)
				}
			}
		}
		if store != nil {
			if err := store.FinishScan(scanID, parsed, failed); err != nil {
				log.Fatalf("scan: %v\n", err)
			}
		}
		log.Printf("[scan] parsed %d files, %d with failures\n", parsed, failed)
	},
}

// scanFile parses one artifact by kind and returns its logical name,
// whether a result was produced, and the diagnostics.
func scanFile(file *stdlib.File_t, resolver *resources.FileResolver) (string, bool, []diagnostics.Diagnostic) {
	fullPath := filepath.Join(file.Path, file.Name)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		log.Printf("[scan] %q: %v\n", fullPath, err)
		return "", false, nil
	}
	source, err := sources.Decode(fullPath, data)
	if err != nil {
		log.Printf("[scan] %q: %v\n", fullPath, err)
		return "", false, nil
	}

	switch file.Kind {
	case "class":
		parsed, failures := classes.Parse(source).Unpack()
		if parsed == nil {
			return "", false, failures
		}
		return parsed.Name(), true, failures
	case "module":
		parsed, failures := modules.Parse(source).Unpack()
		if parsed == nil {
			return "", false, failures
		}
		return parsed.Name(), true, failures
	case "form":
		dir := filepath.Dir(fullPath)
		parsed, failures := forms.Parse(source, func(path string, offset uint32) ([]byte, error) {
			return resolver.Resolve(filepath.Join(dir, path), offset)
		}).Unpack()
		if parsed == nil {
			return "", false, failures
		}
		return parsed.Form.Name, true, failures
	case "project":
		parsed, failures := projects.Parse(source).Unpack()
		if parsed == nil {
			return "", false, failures
		}
		return parsed.Name, true, failures
	default:
		return "", false, nil
	}
}

func hasErrors(failures []diagnostics.Diagnostic) bool {
	for _, d := range failures {
		if d.Severity == diagnostics.SeverityError {
			return true
		}
	}
	return false
}
