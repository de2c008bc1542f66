package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/itemshelf-backend/internal/app"
	"github.com/heartmarshall/itemshelf-backend/internal/config"
)

// newRootCmd builds the command tree. --config falls back to CONFIG_PATH.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "itemshelf",
		Short: "itemshelf is an in-memory items and collections API",
		Long: `itemshelf serves a REST API over an in-memory store of items and
collections, with many-to-many membership and a stats endpoint.

Configuration is read from a YAML file and environment variables.
Environment variables take priority over the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"),
		"path to the YAML config file (default ./config.yaml if present)")

	root.AddCommand(
		newServeCmd(&configPath),
		newVersionCmd(),
		newConfigCmd(&configPath),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "itemshelf", app.BuildVersion())
		},
	}
}

func newConfigCmd(configPath *string) *cobra.Command {
	var envHelp bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envHelp {
				text, err := config.Usage()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			cfg, err := config.LoadFrom(*configPath)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().BoolVar(&envHelp, "env-help", false, "list the environment variables instead")
	return cmd
}

func serve(parent context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
