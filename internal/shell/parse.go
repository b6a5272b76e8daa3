package shell

import (
	"strconv"
	"strings"

	"github.com/spachava753/aocharness/internal/models"
)

// Kind is what a parsed command asks the shell to do.
type Kind int

const (
	KindRun Kind = iota
	KindBenchmark
	KindCompare
	KindHelp
	KindClear
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindRun:
		return "run"
	case KindBenchmark:
		return "benchmark"
	case KindCompare:
		return "compare"
	case KindHelp:
		return "help"
	case KindClear:
		return "clear"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is one parsed line of user input. Day, Part and Version are only
// set for run, benchmark and compare commands. Version is an implementation
// ordinal: 0 is the baseline.
type Command struct {
	Kind    Kind
	Day     int
	Part    int
	Version int
}

// Key returns the problem the command refers to in year.
func (c Command) Key(year int) models.ProblemKey {
	return models.ProblemKey{Year: year, Day: c.Day, Part: c.Part}
}

const (
	msgEmpty         = "Invalid input!"
	msgInvalidFormat = "Invalid format! Use: <day><part> (e.g. 11 or 252)"
	msgInvalidPart   = "Invalid part! The part must be 1 or 2"
	msgInvalidDay    = "Invalid day! The day must be between 1 and 25"
	msgInvalidVer    = "Invalid version! Use: <day><part> v<N> (e.g. 11 v2 or 11 2)"
)

// ParseCommand parses a line of user input. Matching is case-insensitive and
// ignores surrounding whitespace. Every validation failure is a
// models.ErrFormatError whose message is meant for the user.
func ParseCommand(line string) (Command, error) {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "" {
		return Command{}, models.Errorf(models.ErrFormatError, msgEmpty)
	}

	switch input {
	case "sair", "exit", "quit":
		return Command{Kind: KindExit}, nil
	case "clear", "cls":
		return Command{Kind: KindClear}, nil
	case "help", "?":
		return Command{Kind: KindHelp}, nil
	}

	cmd := Command{Kind: KindRun}
	switch input[0] {
	case 'b':
		cmd.Kind = KindBenchmark
		input = strings.TrimSpace(input[1:])
	case 'c':
		cmd.Kind = KindCompare
		input = strings.TrimSpace(input[1:])
	}

	// Tokens are separated by exactly one space; "11  v2" has an empty
	// middle token and is rejected.
	fields := strings.Split(input, " ")
	switch len(fields) {
	case 1:
	case 2:
		v, err := parseVersion(fields[1])
		if err != nil {
			return Command{}, err
		}
		cmd.Version = v
	default:
		return Command{}, models.Errorf(models.ErrFormatError, msgInvalidFormat)
	}

	combined, err := strconv.Atoi(fields[0])
	if err != nil || combined < models.MinEncodedProblem {
		return Command{}, models.Errorf(models.ErrFormatError, msgInvalidFormat)
	}

	key := models.DecodeProblem(0, combined)
	if key.Part < models.MinPart || key.Part > models.MaxPart {
		return Command{}, models.Errorf(models.ErrFormatError, msgInvalidPart)
	}
	if key.Day > models.MaxDay {
		return Command{}, models.Errorf(models.ErrFormatError, msgInvalidDay)
	}
	cmd.Day, cmd.Part = key.Day, key.Part

	return cmd, nil
}

// parseVersion accepts "vN" or "N" with N >= 1 and returns the ordinal.
// Version 1 is the baseline.
func parseVersion(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(token, "v"))
	if err != nil || n < 1 {
		return 0, models.Errorf(models.ErrFormatError, msgInvalidVer)
	}
	if n == 1 {
		return 0, nil
	}
	return n, nil
}
