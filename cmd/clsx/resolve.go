package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vangoframework/clsx/internal/argsource"
	"github.com/vangoframework/clsx/pkg/clsx"
)

type resolveOptions struct {
	json   bool
	file   string
	format string
	null   bool
}

func newResolveCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve [args...]",
		Short: "Resolve arguments into a class list",
		Long: `Resolve prints the class list for its arguments. Each positional argument
is a string unless --json is given. A document read with --file comes first.
Nothing is printed when no class remains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "parse each positional argument as a JSON value")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read an argument document from `path` (- for stdin)")
	cmd.Flags().StringVar(&opts.format, "format", "", "document format: json or yaml (default from the file extension)")
	cmd.Flags().BoolVar(&opts.null, "null", false, "print null when no class remains")
	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions, positional []string) error {
	var args []clsx.Arg

	if opts.file != "" {
		docArgs, err := readDocument(cmd, opts)
		if err != nil {
			return err
		}
		args = append(args, docArgs...)
	}

	for _, s := range positional {
		if !opts.json {
			args = append(args, clsx.Str(s))
			continue
		}
		a, err := argsource.JSONValue(s)
		if err != nil {
			return err
		}
		args = append(args, a)
	}

	class, ok := clsx.Resolve(args...)
	switch {
	case ok:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), class)
		return err
	case opts.null:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "null")
		return err
	}
	return nil
}

func readDocument(cmd *cobra.Command, opts resolveOptions) ([]clsx.Arg, error) {
	format := argsource.FormatFromPath(opts.file)
	if opts.format != "" {
		f, err := argsource.ParseFormat(opts.format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var (
		data []byte
		err  error
	)
	if opts.file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(opts.file)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.file, err)
	}

	args, err := argsource.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.file, err)
	}
	return args, nil
}
