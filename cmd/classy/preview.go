package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classy/internal/tui/preview"
)

var errNotInteractive = errors.New("preview requires an interactive terminal")

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <stylesheet> <style>",
		Short: "Toggle variants interactively and watch the composed classes",
		Long: `Preview opens an interactive view of one style. Move with the arrow keys,
toggle variants with space, drop the base classes with b and quit with q.
The final class string is printed on exit.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) || !isTerminal(cmd.InOrStdin()) {
				return newCommandError("preview", "starting interactive session", errNotInteractive, "Use 'classy compose' in scripts and pipelines.")
			}

			sheet, _, err := loadSheet(cmd, root, "preview", args[0])
			if err != nil {
				return err
			}

			composer, err := sheet.Lookup(args[1])
			if err != nil {
				return newCommandError("preview", fmt.Sprintf("resolving style %s", args[1]), err, suggestionFor(err))
			}

			program := tea.NewProgram(
				preview.NewModel(args[1], composer),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("run preview: %w", err)
			}

			if model, ok := final.(preview.Model); ok {
				fmt.Fprintln(cmd.OutOrStdout(), model.Classes())
			}
			return nil
		},
	}

	return cmd
}
