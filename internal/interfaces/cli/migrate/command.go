package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"holzwerk/internal/infrastructure/config"
	"holzwerk/internal/infrastructure/database"
	"holzwerk/internal/infrastructure/migration"
	"holzwerk/internal/infrastructure/persistence/seeds"
	"holzwerk/internal/infrastructure/repository"
	"holzwerk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema and install the default template catalog.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		Long:  `Bring the database schema up to date via auto-migration.`,
		RunE:  runUp,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install default templates",
		Long:  `Insert the default email template catalog, skipping templates that already exist.`,
		RunE:  runSeed,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	return migration.Run(database.Get())
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	templateRepo := repository.NewEmailTemplateRepository(database.Get(), logger.NewLogger())
	return seeds.SeedDefaultTemplates(cmd.Context(), templateRepo)
}

func setup() error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}
