// Package shell implements the interactive command loop: it selects a year,
// parses commands and drives resolution, invocation, comparison and
// benchmarking.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spachava753/aocharness/internal/executor"
	"github.com/spachava753/aocharness/internal/models"
	"github.com/spachava753/aocharness/internal/term"
)

// State is the shell's position in its command loop.
type State int

const (
	StateAwaitingYear State = iota
	StateAwaitingCommand
	StateDone
)

// Registry lists namespaces and resolves single implementations.
type Registry interface {
	ListNamespaces() ([]int, error)
	Resolve(key models.ProblemKey, ordinal int) (models.Implementation, error)
}

// Inputs loads puzzle input. A non-nil diagnostic means the input could not
// be read and lines is empty.
type Inputs interface {
	Load(key models.ProblemKey) (lines []string, diag *models.Error)
}

// Benchmarker runs the external benchmark for a problem.
type Benchmarker interface {
	RunBenchmark(ctx context.Context, key models.ProblemKey) bool
}

// Options configures a Shell.
type Options struct {
	Registry   Registry
	Dispatcher *executor.Dispatcher
	Comparator *executor.Comparator
	Bench      Benchmarker
	Inputs     Inputs
	In         io.Reader
	Out        io.Writer
	Styler     *term.Styler
}

// Shell is the interactive command loop. It is not safe for concurrent use.
type Shell struct {
	registry   Registry
	dispatcher *executor.Dispatcher
	comparator *executor.Comparator
	bench      Benchmarker
	inputs     Inputs

	in     io.Reader
	lines  <-chan line
	out    io.Writer
	styler *term.Styler

	state State
	year  int
}

// New creates a shell from opts. A nil Styler renders plain text.
func New(opts Options) *Shell {
	st := opts.Styler
	if st == nil {
		st = term.NewStyler(opts.Out, false)
	}
	return &Shell{
		registry:   opts.Registry,
		dispatcher: opts.Dispatcher,
		comparator: opts.Comparator,
		bench:      opts.Bench,
		inputs:     opts.Inputs,
		in:         opts.In,
		out:        opts.Out,
		styler:     st,
		state:      StateAwaitingYear,
	}
}

// State returns the current loop state.
func (s *Shell) State() State {
	return s.state
}

// Year returns the selected year, or 0 before one is chosen.
func (s *Shell) Year() int {
	return s.year
}

// Run drives the command loop until an exit command, end of input or ctx
// cancellation. It returns an error only when no namespace is registered,
// reading input fails or ctx is done; command errors are reported and the
// loop continues.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer func() {
		close(done)
		s.state = StateDone
	}()
	s.lines = readLines(s.in, done)

	years, err := s.registry.ListNamespaces()
	if err != nil {
		s.println("No Advent of Code solution namespaces were found.")
		return err
	}

	s.println(s.styler.Bold("Advent of Code"))

	ok, err := s.selectYear(ctx, years)
	if err != nil || !ok {
		return err
	}
	s.state = StateAwaitingCommand
	slog.Debug("year selected", "year", s.year)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println("Enter the day and part (e.g. 11, 11 v2, b11, c11) or type 'help' for details:")
		s.prompt()

		text, ok, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			s.println()
			return nil
		}

		if !s.Execute(ctx, text) {
			return nil
		}
	}
}

// selectYear picks the single available year or prompts until a listed one
// is entered. It reports false when input ends first.
func (s *Shell) selectYear(ctx context.Context, years []int) (bool, error) {
	if len(years) == 1 {
		s.year = years[0]
		return true, nil
	}

	available := make([]string, len(years))
	for i, y := range years {
		available[i] = strconv.Itoa(y)
	}

	for {
		s.printf("Choose a year from the available options: %s\n", strings.Join(available, ", "))
		s.prompt()

		text, ok, err := s.readLine(ctx)
		if err != nil || !ok {
			return false, err
		}

		year, err := ParseYear(text, years)
		if err != nil {
			s.println(userMessage(err))
			continue
		}
		s.year = year
		return true, nil
	}
}

// ParseYear parses a year selection and checks it against the available
// years. Failures are models.ErrInvalidYearSelection.
func ParseYear(line string, years []int) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, models.Errorf(models.ErrInvalidYearSelection, "Invalid year!")
	}
	if !slices.Contains(years, year) {
		return 0, models.Errorf(models.ErrInvalidYearSelection, "The year %d has no implemented solutions", year)
	}
	return year, nil
}

type line struct {
	text string
	err  error
}

// readLines scans r on its own goroutine so a blocked read does not keep Run
// from observing cancellation. The channel is closed at end of input.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- line{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}

// readLine returns the next input line. ok is false at end of input.
func (s *Shell) readLine(ctx context.Context) (text string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case l, open := <-s.lines:
		if !open {
			return "", false, nil
		}
		if l.err != nil {
			return "", false, fmt.Errorf("reading command: %w", l.err)
		}
		return l.text, true, nil
	}
}

func userMessage(err error) string {
	var e *models.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Execute runs one command line against the selected year and reports
// whether the loop should continue.
func (s *Shell) Execute(ctx context.Context, input string) bool {
	cmd, err := ParseCommand(input)
	if err != nil {
		s.println(userMessage(err))
		return true
	}
	slog.Debug("command parsed", "kind", cmd.Kind, "day", cmd.Day, "part", cmd.Part, "version", cmd.Version)

	switch cmd.Kind {
	case KindExit:
		return false
	case KindClear:
		s.styler.Clear(s.out)
	case KindHelp:
		s.renderHelp()
	case KindBenchmark:
		s.benchmark(ctx, cmd.Key(s.year))
	case KindCompare:
		s.compare(cmd.Key(s.year))
	case KindRun:
		s.run(cmd.Key(s.year), cmd.Version)
	}
	return true
}

// load reads the input for key, reporting a diagnostic when it is missing.
func (s *Shell) load(key models.ProblemKey) []string {
	lines, diag := s.inputs.Load(key)
	if diag != nil {
		s.println(s.styler.Paint(term.Yellow, diag.Error()))
	}
	return lines
}

func (s *Shell) run(key models.ProblemKey, version int) (models.InvocationResult, bool) {
	s.renderHeader(key.Year, fmt.Sprintf("Day %d, Part %d%s", key.Day, key.Part, versionSuffix(version)))

	impl, err := s.registry.Resolve(key, version)
	if err != nil {
		s.reportError(err)
		return models.InvocationResult{}, false
	}

	input := s.load(key)
	s.printf("%s Running, please wait...\n", s.styler.Paint(term.Red, ">"))

	result, err := s.dispatcher.Call(impl, input)
	if err != nil {
		s.reportError(err)
		return result, false
	}

	s.printf("%s Code ran successfully\n", s.styler.Paint(term.Green, "✓"))
	s.println()
	s.renderResult(result)
	return result, true
}

func (s *Shell) compare(key models.ProblemKey) *models.ComparisonReport {
	s.renderHeader(key.Year, fmt.Sprintf("Comparison Day %d, Part %d", key.Day, key.Part))

	input := s.load(key)
	report, err := s.comparator.Compare(key, input)
	if err != nil {
		s.reportError(err)
		return report
	}

	s.printf("%s Ran %d version(s)\n", s.styler.Paint(term.Cyan, "ℹ"), len(report.Results))
	s.println()
	s.renderComparison(report)
	return report
}

func (s *Shell) benchmark(ctx context.Context, key models.ProblemKey) bool {
	if ok := s.bench.RunBenchmark(ctx, key); !ok {
		s.printf("%s Benchmark for %s did not complete\n", s.styler.Paint(term.Red, "✗"), key)
		return false
	}
	return true
}

// reportError prints a one-line diagnostic chosen by the error's kind.
func (s *Shell) reportError(err error) {
	st := s.styler
	switch models.TypeOf(err) {
	case models.ErrImplementationNotFound:
		s.printf("%s Implementation not found: %v\n", st.Paint(term.Red, "✗"), err)
	case models.ErrNoImplementationsFound:
		s.println(st.Paint(term.Red, "No implementation found!"), err.Error())
	case models.ErrInvocationFailure:
		s.printf("%s Error running: %v\n", st.Paint(term.Red, "✗"), err)
	default:
		s.printf("%s %v\n", st.Paint(term.Red, "✗"), err)
	}
	slog.Debug("command failed", "type", models.TypeOf(err), "error", err)
}
