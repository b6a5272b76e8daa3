package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/spachava753/aocharness/internal/models"
	"github.com/spachava753/aocharness/internal/term"
	"github.com/spachava753/aocharness/internal/util"
)

// Report holds the benchmark statistics of every version of one problem.
type Report struct {
	Key         models.ProblemKey `yaml:"problem"`
	InputLines  int               `yaml:"input_lines"`
	Samples     int               `yaml:"samples"`
	GeneratedAt time.Time         `yaml:"generated_at"`
	Versions    []VersionStats    `yaml:"versions"`
}

// VersionStats summarizes the samples of one version. Durations are per
// operation.
type VersionStats struct {
	Name        string        `yaml:"name"`
	Ordinal     int           `yaml:"ordinal"`
	Output      string        `yaml:"output,omitempty"`
	Mean        time.Duration `yaml:"mean"`
	StdDev      time.Duration `yaml:"stddev"`
	Min         time.Duration `yaml:"min"`
	Max         time.Duration `yaml:"max"`
	BytesPerOp  int64         `yaml:"bytes_per_op"`
	AllocsPerOp int64         `yaml:"allocs_per_op"`
	Iterations  int           `yaml:"iterations"`
	Rank        int           `yaml:"rank"`
	Error       string        `yaml:"error,omitempty"`
}

// WriteYAML encodes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding benchmark report: %w", err)
	}
	return enc.Close()
}

// ReadReport decodes a report written by WriteYAML.
func ReadReport(r io.Reader) (*Report, error) {
	var report Report
	if err := yaml.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding benchmark report: %w", err)
	}
	return &report, nil
}

var reportHeaders = []string{"Version", "Mean", "StdDev", "Min", "Max", "Allocated", "Allocs/op", "Rank"}

// Render writes the report as a table.
func (r *Report) Render(w io.Writer, s *term.Styler) {
	fmt.Fprintln(w, s.Bold(fmt.Sprintf("Benchmark %s (%d samples, %d input lines)", r.Key, r.Samples, r.InputLines)))

	rows := make([][]string, 0, len(r.Versions))
	for _, v := range r.Versions {
		if v.Error != "" {
			rows = append(rows, []string{v.Name, "failed", "-", "-", "-", "-", "-", "-"})
			continue
		}
		rows = append(rows, []string{
			v.Name,
			util.FormatElapsed(v.Mean),
			util.FormatElapsed(v.StdDev),
			util.FormatElapsed(v.Min),
			util.FormatElapsed(v.Max),
			formatBytes(v.BytesPerOp),
			strconv.FormatInt(v.AllocsPerOp, 10),
			strconv.Itoa(v.Rank),
		})
	}

	fastest := s.NewStyle().Foreground(lipgloss.Color(term.Green))
	failed := s.NewStyle().Foreground(lipgloss.Color(term.Red))
	plain := s.NewStyle()
	t := s.Table(reportHeaders, rows, func(row, _ int) lipgloss.Style {
		if row < 0 || row >= len(r.Versions) {
			return plain
		}
		switch v := r.Versions[row]; {
		case v.Error != "":
			return failed
		case v.Rank == 1:
			return fastest
		default:
			return plain
		}
	})
	fmt.Fprintln(w, t.Render())

	for _, v := range r.Versions {
		if v.Error != "" {
			fmt.Fprintf(w, "%s %s: %s\n", s.Paint(term.Red, "✗"), v.Name, v.Error)
		}
	}
}

func formatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}
