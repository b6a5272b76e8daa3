package input

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/spachava753/aocharness/internal/models"
)

// maxLineSize bounds a single input line. Puzzle inputs occasionally put the
// whole payload on one line.
const maxLineSize = 16 * 1024 * 1024

// Loader reads puzzle inputs from an fs.FS rooted at the project root.
type Loader struct {
	fsys   fs.FS
	prefix string
}

// NewLoader creates a loader over fsys. prefix is the namespace prefix, e.g.
// "Solutions", so inputs live under "Solutions2025/Day01/input1.txt".
func NewLoader(fsys fs.FS, prefix string) *Loader {
	return &Loader{fsys: fsys, prefix: prefix}
}

// Path returns the slash-separated path of key's input file relative to the
// project root.
func (l *Loader) Path(key models.ProblemKey) string {
	return path.Join(key.NamespaceName(l.prefix), key.DayDir(), fmt.Sprintf("input%d.txt", key.Part))
}

// Load returns the lines of key's input file. Load never fails: when the
// file cannot be read it returns an empty slice and a diagnostic describing
// why, and the solution runs against no input.
func (l *Loader) Load(key models.ProblemKey) ([]string, *models.Error) {
	p := l.Path(key)

	lines, err := readLines(l.fsys, p)
	if err != nil {
		slog.Warn("input unavailable", "path", p, "error", err)
		return []string{}, models.WrapError(models.ErrInputUnavailable, err,
			"input file %s/input%d.txt not found: %s", key.DayDir(), key.Part, p)
	}

	slog.Debug("input loaded", "path", p, "lines", len(lines))
	return lines, nil
}

func readLines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
