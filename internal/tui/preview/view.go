package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("classy preview: %s", m.style)))
	content.WriteString("\n")

	if len(m.variants) == 0 {
		content.WriteString(mutedStyle.Render("  no variants declared"))
		content.WriteString("\n")
	}
	for i, name := range m.variants {
		line := fmt.Sprintf("%s %s", checkbox(m.active[name]), name)
		if i == m.cursor {
			content.WriteString(selectedItemStyle.Render(line))
		} else {
			content.WriteString(itemStyle.Render(line))
		}
		content.WriteString("\n")
	}

	baseState := activeStyle.Render("on")
	if m.baseOff {
		baseState = mutedStyle.Render("off")
	}
	content.WriteString(itemStyle.Render("base: " + baseState))
	content.WriteString("\n")

	classes := m.Classes()
	if classes == "" {
		classes = mutedStyle.Render("(empty)")
	}
	output := outputStyle
	if m.width > 4 {
		output = output.Width(m.width - 4)
	}
	content.WriteString(output.Render(classes))
	content.WriteString("\n")

	content.WriteString(lipgloss.NewStyle().MarginTop(1).Render(m.help.View(m.keys)))

	return content.String()
}

func checkbox(checked bool) string {
	if checked {
		return activeStyle.Render("[x]")
	}
	return "[ ]"
}
