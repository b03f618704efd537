package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classy/pkg/classes"
)

type composeOptions struct {
	SheetPath string
	Style     string
	Variants  []string
	Flags     []string
	JSON      bool
}

func newComposeCmd(root *rootFlags) *cobra.Command {
	opts := composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose <stylesheet> <style> [variant...]",
		Short: "Print the class string for a style and a set of variants",
		Long: `Compose prints the class string of a style. Every variant named on the
command line is switched on; --flag name=bool sets a flag explicitly, for
example --flag base=false to drop the base classes. With no variants at all
the style's default classes are used.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SheetPath = args[0]
			opts.Style = args[1]
			opts.Variants = args[2:]

			return runCompose(cmd, root, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Flags, "flag", nil, "Set a flag explicitly as name=bool (repeatable)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output result in JSON format")

	return cmd
}

func runCompose(cmd *cobra.Command, root *rootFlags, opts composeOptions) error {
	flags, err := parseFlagSet(opts.Variants, opts.Flags)
	if err != nil {
		return newCommandError("compose", "parsing flags", err, "Use --flag name=true or --flag name=false.")
	}

	sheet, log, err := loadSheet(cmd, root, "compose", opts.SheetPath)
	if err != nil {
		return err
	}

	composer, err := sheet.Lookup(opts.Style)
	if err != nil {
		return newCommandError("compose", fmt.Sprintf("resolving style %s", opts.Style), err, suggestionFor(err))
	}

	for name := range flags {
		if name != classes.KeyBase && !composer.HasVariant(name) {
			log.WithFields(map[string]any{"style": opts.Style, "variant": name}).Warn("ignoring unknown variant")
		}
	}

	result := composer.Compose(flags)

	if opts.JSON {
		payload := struct {
			Style   string        `json:"style"`
			Flags   classes.Flags `json:"flags"`
			Classes string        `json:"classes"`
		}{
			Style:   opts.Style,
			Flags:   flags,
			Classes: result,
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// parseFlagSet switches on every named variant, then applies explicit
// name=bool assignments on top.
func parseFlagSet(variants, explicit []string) (classes.Flags, error) {
	flags := make(classes.Flags, len(variants)+len(explicit))
	for _, name := range variants {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		flags[name] = true
	}

	for _, assignment := range explicit {
		name, raw, ok := strings.Cut(assignment, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid flag %q: expected name=bool", assignment)
		}
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid flag %q: %w", assignment, err)
		}
		flags[name] = value
	}

	return flags, nil
}
