// Package main provides the nidhisvc binary: the community fund API server
// and its maintenance commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/app"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/config"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

const appName = "nidhisvc"

// Set at build time with -ldflags "-X main.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Community fund membership service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path (YAML)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update tables and seed default policies",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, log, err := load(configPath)
				if err != nil {
					return err
				}
				return app.Migrate(cfg, log)
			},
		},
		superAdminCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func superAdminCmd(configPath *string) *cobra.Command {
	var in app.SuperAdminInput

	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Register a verified superadmin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load(*configPath)
			if err != nil {
				return err
			}
			user, err := app.CreateSuperAdmin(cmd.Context(), cfg, log, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created superadmin id=%d mobile=%s\n", user.ID, user.Mobile)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Mobile, "mobile", "", "Mobile number used to log in")
	cmd.Flags().StringVar(&in.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&in.FatherName, "father-name", "", "Father's name")
	cmd.Flags().StringVar(&in.Password, "password", "", "Initial password")
	for _, f := range []string{"mobile", "name", "father-name", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func serve(ctx context.Context, configPath string) error {
	cfg, log, err := load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, log)
}

func load(configPath string) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	return cfg, logging.New(cfg.Env, cfg.LogLevel), nil
}
