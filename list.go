// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"

	"github.com/playbymail/vb6parse/internal/stdlib"
	"github.com/spf13/cobra"
)

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "list things",
	Long:  `List things.`,
}

var cmdListFiles = &cobra.Command{
	Use:   "files",
	Short: "list VB6 artifacts in the directory",
	Long:  `List the VB6 source artifacts in the given directory, or in the current directory when none is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		files, err := stdlib.FindAllInputs(path)
		if err != nil {
			log.Fatalf("list: %v\n", err)
		}
		for _, file := range files {
			fmt.Printf("%-8s %s\n", file.Kind, file.Name)
		}
	},
}
