package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clsx",
		Short: "Resolve conditional class names",
		Long: `clsx turns strings, lists and condition maps into one class attribute value.

Examples:
  clsx resolve "btn btn" active           Prints "btn active"
  clsx resolve --json '{"a":true,"b":false}' c
  clsx resolve --file args.yaml           Resolve an argument document
  clsx serve --port 9000                  Run the HTTP service
  clsx bench                              Compare against the legacy resolver`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newResolveCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newBenchCmd())
	return root
}

// cliLogger logs to the command's stderr in text form.
func cliLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
