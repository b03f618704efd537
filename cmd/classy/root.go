package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classy/internal/logger"
	"github.com/alexisbeaulieu97/classy/internal/stylesheet"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "classy",
		Short:         "Classy composes CSS class strings from declarative stylesheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "auto", "Log format: auto, console or json")

	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the CLI logger. Entries go to the command's stderr.
func (f *rootFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}

	errOut := cmd.ErrOrStderr()
	var human bool
	switch f.logFormat {
	case "", "auto":
		human = isTerminal(errOut)
	case "console":
		human = true
	case "json":
		human = false
	default:
		return nil, fmt.Errorf("unknown log format %q (want auto, console or json)", f.logFormat)
	}

	return logger.New(logger.Options{Level: level, HumanReadable: human, Writer: errOut, Component: "cli"})
}

func loadSheet(cmd *cobra.Command, flags *rootFlags, operation, path string) (*stylesheet.Sheet, *logger.Logger, error) {
	log, err := flags.newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sheet, err := stylesheet.NewLoader(log).Load(ctx, path)
	if err != nil {
		return nil, log, newCommandError(operation, fmt.Sprintf("loading stylesheet %s", path), err, suggestionFor(err))
	}
	return sheet, log, nil
}
