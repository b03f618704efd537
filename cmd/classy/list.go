package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classy/internal/stylesheet"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <stylesheet>",
		Short: "List the styles of a stylesheet with their variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, _, err := loadSheet(cmd, root, "list", args[0])
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderListJSON(cmd, sheet)
			}
			return renderListTable(cmd, sheet)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderListTable(cmd *cobra.Command, sheet *stylesheet.Sheet) error {
	out := cmd.OutOrStdout()
	styled := isTerminal(out)

	title := sheet.Name()
	if desc := sheet.Description(); desc != "" {
		title = fmt.Sprintf("%s - %s", title, desc)
	}
	fmt.Fprintln(out, render(headingStyle, styled, title))
	fmt.Fprintln(out)

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "STYLE\tEXTENDS\tVARIANTS\tCOMPOUNDS")
	for _, info := range sheet.DescribeAll() {
		extends := info.Extends
		if extends == "" {
			extends = "-"
		}
		variants := "-"
		if len(info.Variants) > 0 {
			variants = strings.Join(info.Variants, ", ")
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n",
			info.Name,
			render(mutedStyle, styled, extends),
			render(variantStyle, styled, variants),
			info.Compounds,
		)
	}
	return writer.Flush()
}

func renderListJSON(cmd *cobra.Command, sheet *stylesheet.Sheet) error {
	payload := struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description,omitempty"`
		Styles      []stylesheet.StyleInfo `json:"styles"`
	}{
		Name:        sheet.Name(),
		Description: sheet.Description(),
		Styles:      sheet.DescribeAll(),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
