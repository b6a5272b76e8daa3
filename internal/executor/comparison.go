package executor

import (
	"log/slog"

	"github.com/spachava753/aocharness/internal/models"
)

// Resolver lists every implementation of a problem.
type Resolver interface {
	ResolveAll(key models.ProblemKey) ([]models.Implementation, error)
}

// Comparator runs all versions of a problem against the same input and
// groups them by output.
type Comparator struct {
	resolver   Resolver
	dispatcher *Dispatcher
}

// NewComparator creates a comparator that resolves through r and invokes
// through d.
func NewComparator(r Resolver, d *Dispatcher) *Comparator {
	return &Comparator{resolver: r, dispatcher: d}
}

// Compare invokes every implementation of key in resolution order with the
// same input. If nothing can be resolved it returns an empty report together
// with the resolution error and invokes nothing. Failures of individual
// implementations are part of the report, not an error.
func (c *Comparator) Compare(key models.ProblemKey, input []string) (*models.ComparisonReport, error) {
	impls, err := c.resolver.ResolveAll(key)
	if err != nil {
		return models.NewComparisonReport(key, nil), err
	}

	results := make([]models.InvocationResult, 0, len(impls))
	for _, impl := range impls {
		results = append(results, c.dispatcher.Invoke(impl, input))
	}

	report := models.NewComparisonReport(key, results)
	slog.Debug("comparison finished",
		"problem", key.String(),
		"implementations", len(results),
		"distinct", len(report.DistinctOutputs()),
		"failures", len(report.Failures()),
		"consistent", report.IsConsistent(),
	)
	return report, nil
}
