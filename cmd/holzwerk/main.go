package main

import (
	"os"

	"github.com/spf13/cobra"

	"holzwerk/internal/interfaces/cli/migrate"
	"holzwerk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holzwerk",
		Short: "Holzwerk - storefront notification engine",
		Long:  `Holzwerk runs the storefront's transactional notification engine: template-based email dispatch, low-stock monitoring, and SMTP configuration management.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
