package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/academies/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/academies/internal/server"
)

// @title Academies API
// @version 1.0
// @description CRUD API for schools, students, teachers, courses, grades and enrollments

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "academies",
		Short:         "School management REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(configPath)
			if err != nil {
				// Error details are logged within NewServer's setup functions
				logger.Error().Err(err).Msg("Failed to initialize server")
				return err
			}

			// Run blocks until a shutdown signal arrives
			if err := srv.Run(); err != nil {
				logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
				return err
			}

			logger.Info().Msg("Application finished gracefully.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to the YAML configuration file")
	return cmd
}
