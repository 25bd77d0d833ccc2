// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"log"

	"github.com/playbymail/vb6parse/internal/stores/sqlite"
	"github.com/spf13/cobra"
)

var argsDb struct {
	store string
}

var cmdDb = &cobra.Command{
	Use:   "db",
	Short: "manage the scan database",
	Long:  `Manage the scan results database.`,
}

var cmdDbCreate = &cobra.Command{
	Use:   "create",
	Short: "create a new scan database",
	Run: func(cmd *cobra.Command, args []string) {
		if err := sqlite.Create(argsDb.store, context.Background()); err != nil {
			log.Fatalf("db: create: %v\n", err)
		}
	},
}
