// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package main implements the vb6parse application
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/playbymail/vb6parse/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 4,
		Patch: 2,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
)

func main() {
	// if version is on the command line, show it and exit
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "vb6parse.json"
	// set the debug flag only if there is a configuration file to debug
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		log.Fatal(err)
	}
}

func Execute(cfg *config.Config) error {
	globalConfig = cfg

	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")

	cmdRoot.AddCommand(cmdVersion)

	cmdRoot.AddCommand(cmdParse)
	cmdParse.PersistentFlags().BoolVar(&argsParse.showDiagnostics, "show-diagnostics", true, "print diagnostics")
	cmdParse.AddCommand(cmdParseClass)
	cmdParse.AddCommand(cmdParseModule)
	cmdParse.AddCommand(cmdParseForm)
	cmdParse.AddCommand(cmdParseProject)

	cmdRoot.AddCommand(cmdList)
	cmdList.AddCommand(cmdListFiles)

	cmdRoot.AddCommand(cmdDb)
	cmdDb.PersistentFlags().StringVar(&argsDb.store, "store", "vb6parse.db", "path to the database file")
	cmdDb.AddCommand(cmdDbCreate)

	cmdRoot.AddCommand(cmdScan)
	cmdScan.Flags().StringVar(&argsScan.store, "store", "", "persist results to this database")
	cmdScan.Flags().StringVar(&argsScan.path, "path", ".", "directory to scan")

	return cmdRoot.Execute()
}

var argsRoot struct {
	showVersion bool
}

var cmdRoot = &cobra.Command{
	Use:   "vb6parse",
	Short: "parse classic VB6 source artifacts",
	Long:  `Parse VB6 class, module, form, project, and resource files.`,
	Run: func(cmd *cobra.Command, args []string) {
		if argsRoot.showVersion {
			fmt.Printf("%s\n", version.Short())
			return
		}
		log.Printf("vb6parse: missing command\n")
	},
}
