package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vangoframework/clsx/internal/config"
	"github.com/vangoframework/clsx/internal/server"
)

func newServeCmd() *cobra.Command {
	var port, env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP resolve service",
		Long: `Serve runs the HTTP service. Configuration comes from the environment and
an optional .env file; --port and --env override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServeConfig(cmd, port, env)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, serverLogger(cfg)).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&env, "env", "development", "environment (overrides ENVIRONMENT)")
	return cmd
}

// loadServeConfig loads the environment with the flags the user set
// applied on top.
func loadServeConfig(cmd *cobra.Command, port, env string) (*config.Config, error) {
	var opts []config.Option
	if cmd.Flags().Changed("port") {
		opts = append(opts, config.WithPort(port))
	}
	if cmd.Flags().Changed("env") {
		opts = append(opts, config.WithEnvironment(env))
	}
	return config.Load(opts...)
}
