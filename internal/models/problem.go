package models

import "fmt"

const (
	MinDay  = 1
	MaxDay  = 25
	MinPart = 1
	MaxPart = 2

	// MinEncodedProblem is the smallest day/part encoding: day 1, part 1.
	MinEncodedProblem = 11
)

// ProblemKey identifies one puzzle variant.
type ProblemKey struct {
	Year int `json:"year" yaml:"year"`
	Day  int `json:"day" yaml:"day"`
	Part int `json:"part" yaml:"part"`
}

// DecodeProblem unpacks the day*10+part encoding used on the command line.
// The result is not validated; call Validate before using it.
func DecodeProblem(year, encoded int) ProblemKey {
	return ProblemKey{Year: year, Day: encoded / 10, Part: encoded % 10}
}

// Encode packs day and part into a single integer (day 25 part 2 -> 252).
func (k ProblemKey) Encode() int {
	return k.Day*10 + k.Part
}

// Validate checks the day and part ranges.
func (k ProblemKey) Validate() error {
	if k.Day < MinDay || k.Day > MaxDay {
		return Errorf(ErrFormatError, "day must be between %d and %d, got %d", MinDay, MaxDay, k.Day)
	}
	if k.Part < MinPart || k.Part > MaxPart {
		return Errorf(ErrFormatError, "part must be %d or %d, got %d", MinPart, MaxPart, k.Part)
	}
	return nil
}

// NamespaceName returns the namespace identifier for the key's year, e.g.
// "Solutions2025".
func (k ProblemKey) NamespaceName(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, k.Year)
}

// DayDir returns the zero-padded day directory name, e.g. "Day01".
func (k ProblemKey) DayDir() string {
	return fmt.Sprintf("Day%02d", k.Day)
}

// TypeName returns the catalog name of the solution type addressed by the
// key within the given namespace, e.g. "Solutions2025.Day01.Part1".
func (k ProblemKey) TypeName(namespace string) string {
	return fmt.Sprintf("%s.%s.Part%d", namespace, k.DayDir(), k.Part)
}

func (k ProblemKey) String() string {
	return fmt.Sprintf("%d day %d part %d", k.Year, k.Day, k.Part)
}
