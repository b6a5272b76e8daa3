package models

import "fmt"

// BaselineName is the name of the ordinal 0 implementation.
const BaselineName = "Run"

// SolveFunc is the signature every solution version must have: it receives
// the input file lines and returns the answer as text.
type SolveFunc func(input []string) string

// Implementation is one callable version of a solution.
type Implementation struct {
	Name    string    `json:"name" yaml:"name"`
	Ordinal int       `json:"ordinal" yaml:"ordinal"` // 0 for the baseline
	Solve   SolveFunc `json:"-" yaml:"-"`
}

// ImplementationName returns "Run" for ordinal 0 and "RunV{N}" otherwise.
func ImplementationName(ordinal int) string {
	if ordinal == 0 {
		return BaselineName
	}
	return fmt.Sprintf("%sV%d", BaselineName, ordinal)
}

// IsBaseline reports whether this is the ordinal 0 implementation.
func (i Implementation) IsBaseline() bool {
	return i.Ordinal == 0
}
