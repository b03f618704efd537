package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	variantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// render applies style only when the output is a terminal.
func render(style lipgloss.Style, styled bool, text string) string {
	if !styled {
		return text
	}
	return style.Render(text)
}
