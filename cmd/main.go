package main

import (
	"os"

	"healthtrack/cmd/bootstrap"
	"healthtrack/config"
	"healthtrack/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthtrack",
		Short: "Clinic management web application",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations (PostgreSQL)",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(false)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(true)
		},
	}

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func runMigrations(down bool) error {
	bootstrap.SetupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	return database.Migrate(cfg.DB, down)
}
