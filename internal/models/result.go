package models

import "time"

// InvocationResult contains the outcome of calling one implementation.
type InvocationResult struct {
	Implementation Implementation `json:"implementation"`
	Output         string         `json:"output"`
	Elapsed        time.Duration  `json:"elapsed"`
	StartedAt      time.Time      `json:"started_at"`
	EndedAt        time.Time      `json:"ended_at"`
	Error          *Error         `json:"error"`
}

// Failed reports whether the implementation failed instead of returning.
func (r InvocationResult) Failed() bool {
	return r.Error != nil
}

// OutputGroup collects the implementations that produced the same outcome.
// Failed groups are keyed by the failure message instead of an output.
type OutputGroup struct {
	Output string   `json:"output"`
	Failed bool     `json:"failed"`
	Count  int      `json:"count"`
	Names  []string `json:"names"`
}

// ComparisonReport is derived from running every version of one problem
// against the same input.
type ComparisonReport struct {
	Key     ProblemKey         `json:"key"`
	Results []InvocationResult `json:"results"`
	Groups  []OutputGroup      `json:"groups"`
}

// NewComparisonReport groups results by exact output string, in first-seen
// order. Every failed result lands in a failure group keyed by its message,
// so the group counts always add up to len(results).
func NewComparisonReport(key ProblemKey, results []InvocationResult) *ComparisonReport {
	report := &ComparisonReport{Key: key, Results: results}

	type groupKey struct {
		failed bool
		text   string
	}
	index := make(map[groupKey]int)

	for _, r := range results {
		k := groupKey{text: r.Output}
		if r.Failed() {
			k = groupKey{failed: true, text: r.Error.Message}
		}

		i, ok := index[k]
		if !ok {
			i = len(report.Groups)
			index[k] = i
			report.Groups = append(report.Groups, OutputGroup{Output: k.text, Failed: k.failed})
		}
		report.Groups[i].Count++
		report.Groups[i].Names = append(report.Groups[i].Names, r.Implementation.Name)
	}

	return report
}

// Empty reports whether nothing was run.
func (c *ComparisonReport) Empty() bool {
	return len(c.Results) == 0
}

// DistinctOutputs returns the distinct successful outputs in first-seen order.
func (c *ComparisonReport) DistinctOutputs() []string {
	var outputs []string
	for _, g := range c.Groups {
		if !g.Failed {
			outputs = append(outputs, g.Output)
		}
	}
	return outputs
}

// Failures returns the results whose implementation failed.
func (c *ComparisonReport) Failures() []InvocationResult {
	var failed []InvocationResult
	for _, r := range c.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// IsConsistent reports whether every implementation returned the same output.
func (c *ComparisonReport) IsConsistent() bool {
	return len(c.Groups) == 1 && !c.Groups[0].Failed
}
