package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spachava753/aocharness/internal/models"
	"github.com/spachava753/aocharness/internal/term"
	"github.com/spachava753/aocharness/internal/util"
)

const (
	boxWidth = 53

	// Comparison table cells longer than displayLimit are cut to displayKeep
	// characters and an ellipsis.
	displayLimit = 48
	displayKeep  = 45
)

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) prompt() {
	fmt.Fprint(s.out, "> ")
}

func (s *Shell) renderHeader(year int, subtitle string) {
	st := s.styler
	title := st.Paint(term.Cyan, fmt.Sprintf("Advent of Code %d", year)) + " - " + st.Paint(term.Yellow, subtitle)
	s.println()
	s.println(st.Box(lipgloss.DoubleBorder(), boxWidth, st.Bold(title)))
	s.println()
}

func versionSuffix(version int) string {
	if version > 0 {
		return fmt.Sprintf(" (V%d)", version)
	}
	return ""
}

func (s *Shell) renderResult(result models.InvocationResult) {
	st := s.styler
	body := fmt.Sprintf("Output: %s\nElapsed: %s",
		st.Paint(term.Green, result.Output),
		st.Paint(term.Cyan, util.FormatElapsed(result.Elapsed)),
	)
	s.println(st.Box(lipgloss.NormalBorder(), boxWidth, body))
	s.println()
}

// displayOutput is the table cell text for one comparison result.
func displayOutput(r models.InvocationResult) string {
	if r.Failed() {
		return util.Truncate("failed: "+r.Error.Message, displayLimit, displayKeep)
	}
	return util.Truncate(r.Output, displayLimit, displayKeep)
}

func (s *Shell) renderComparison(report *models.ComparisonReport) {
	st := s.styler
	consistent := report.IsConsistent()

	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		rows = append(rows, []string{r.Implementation.Name, displayOutput(r)})
	}

	color := term.Yellow
	if consistent {
		color = term.Green
	}
	match := st.NewStyle().Foreground(lipgloss.Color(color))
	failed := st.NewStyle().Foreground(lipgloss.Color(term.Red))
	name := st.NewStyle()

	t := st.Table([]string{"Version", "Result"}, rows, func(row, col int) lipgloss.Style {
		switch {
		case col == 0 || row < 0 || row >= len(report.Results):
			return name
		case report.Results[row].Failed():
			return failed
		default:
			return match
		}
	})
	s.println(t.Render())
	s.println()

	if consistent {
		s.printf("%s All versions returned the same result: %s\n",
			st.Paint(term.Green, "✓"), st.Bold(report.Groups[0].Output))
		s.println()
		return
	}

	s.printf("%s WARNING: versions returned different results!\n", st.Paint(term.Red, "✗"))
	s.println()
	s.println(st.Paint(term.Yellow, "Unique results found:"))
	for _, g := range report.Groups {
		value := st.Bold(g.Output)
		if g.Failed {
			value = st.Paint(term.Red, "failed: "+g.Output)
		}
		s.printf("  • %s (%dx) - %s\n", value, g.Count, strings.Join(g.Names, ", "))
	}
	s.println()
}

func (s *Shell) renderHelp() {
	st := s.styler
	s.println()
	s.println(st.Reverse(" Advent of Code - Help "))
	s.println()
	s.printf("Selected year: %s\n", st.Bold(fmt.Sprint(s.year)))
	s.println()
	s.println(st.Underline("Commands:"))
	s.println("  <daypart>             Run a solution (e.g. 11, 12, 252)")
	s.println("  <daypart> <version>   Run a specific version (e.g. 11 v2, 11 2)")
	s.println("  b<daypart>            Run the benchmark (e.g. b11, b12, b252)")
	s.println("  c<daypart>            Compare all versions (e.g. c11, c12, c252)")
	s.println("  help or ?             Show this help message")
	s.println("  clear or cls          Clear the screen")
	s.println("  exit, quit or sair    Quit")
	s.println()
	s.println(st.Underline("Examples:"))
	s.println("  > 11                  Run day 1, part 1 (version Run)")
	s.println("  > 11 v2               Run day 1, part 1 (version RunV2)")
	s.println("  > 11 2                Run day 1, part 1, version 2")
	s.println("  > 252                 Run day 25, part 2")
	s.println("  > b11                 Benchmark day 1, part 1 (all versions)")
	s.println("  > c11                 Compare all versions of day 1, part 1")
	s.println()
}
