package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classy/pkg/classes"
	"github.com/alexisbeaulieu97/classy/pkg/diff"
)

type diffOptions struct {
	from []string
	to   []string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <stylesheet> <style>",
		Short: "Show how the classes of a style change between two flag sets",
		Long: `Diff composes a style twice and prints the classes that were removed and
added. Entries of --from and --to are variant names or name=bool pairs; an
empty side composes the style's defaults.`,
		Example: `  classy diff buttons.yaml button --to primary
  classy diff buttons.yaml button --from primary --to primary --to large`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseFlagEntries(opts.from)
			if err != nil {
				return newCommandError("diff", "parsing --from", err, "Use variant names or name=bool pairs.")
			}
			to, err := parseFlagEntries(opts.to)
			if err != nil {
				return newCommandError("diff", "parsing --to", err, "Use variant names or name=bool pairs.")
			}

			sheet, _, err := loadSheet(cmd, root, "diff", args[0])
			if err != nil {
				return err
			}
			composer, err := sheet.Lookup(args[1])
			if err != nil {
				return newCommandError("diff", fmt.Sprintf("resolving style %s", args[1]), err, suggestionFor(err))
			}

			result := diff.Classes(composer.Compose(from), composer.Compose(to))

			out := cmd.OutOrStdout()
			if result.Empty() {
				fmt.Fprintln(out, render(mutedStyle, isTerminal(out), "no changes"))
				return nil
			}
			fmt.Fprint(out, result.Unified(flagLabel(opts.from), flagLabel(opts.to)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.from, "from", nil, "Flags of the first composition (repeatable)")
	cmd.Flags().StringArrayVar(&opts.to, "to", nil, "Flags of the second composition (repeatable)")

	return cmd
}

func parseFlagEntries(entries []string) (classes.Flags, error) {
	var names, explicit []string
	for _, entry := range entries {
		if strings.Contains(entry, "=") {
			explicit = append(explicit, entry)
			continue
		}
		names = append(names, entry)
	}
	return parseFlagSet(names, explicit)
}

func flagLabel(entries []string) string {
	if len(entries) == 0 {
		return "defaults"
	}
	return strings.Join(entries, ",")
}
