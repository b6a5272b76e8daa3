package term

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Box frames content with border, padded out to width. Content wider than
// width grows the box instead of wrapping, so lines are never split.
func (s *Styler) Box(border lipgloss.Border, width int, content string) string {
	style := s.NewStyle().
		Border(border).
		Padding(0, 1)
	if lipgloss.Width(content)+2 <= width {
		style = style.Width(width)
	}
	return style.Render(content)
}

// Table returns a bordered table with bold headers. cell styles the body
// cells; it may be nil.
func (s *Styler) Table(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) *table.Table {
	header := s.NewStyle().Bold(s.enabled).Padding(0, 1)
	body := s.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if cell != nil {
				return cell(row, col).Padding(0, 1)
			}
			return body
		})
}
