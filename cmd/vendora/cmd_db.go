package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vendora/internal/server"
)

// vendora migrate — create or update the schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := server.Boot(); err != nil {
			return err
		}
		if err := server.Migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Println("Schema is up to date.")
		return nil
	},
}

// vendora seed — load the demo catalogue and accounts.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := server.Boot(); err != nil {
			return err
		}
		if err := server.Migrate(); err != nil {
			return err
		}
		if err := server.Seed(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Println("Database seeded.")
		return nil
	},
}
