package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <stylesheet>",
		Short: "Check that a stylesheet parses and every style builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, _, err := loadSheet(cmd, root, "validate", args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styled := isTerminal(out)
			count := len(sheet.Styles())
			noun := "styles"
			if count == 1 {
				noun = "style"
			}
			fmt.Fprintf(out, "%s %s is valid (%d %s)\n", render(successStyle, styled, "✔"), args[0], count, noun)
			return nil
		},
	}

	return cmd
}
