package cmd

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4"))

	headerCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC")).
			Bold(true).
			PaddingRight(2)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			PaddingRight(2)
)

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// renderTable lays out rows in left-aligned columns
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r {
			if w := lipgloss.Width(c); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	render := func(style lipgloss.Style, cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i] + 2).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	lines := []string{render(headerCellStyle, header)}
	for _, r := range rows {
		lines = append(lines, render(cellStyle, r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
