package registry

import (
	"fmt"
	"log/slog"

	"github.com/spachava753/aocharness/internal/models"
)

// Namespace is one year's collection of solutions. Register is called at
// most once per process, the first time a problem of that year is resolved.
type Namespace interface {
	Year() int
	Register(c *Catalog)
}

// NamespaceFunc adapts a year and a registration function to Namespace.
type NamespaceFunc struct {
	Y  int
	Fn func(c *Catalog)
}

func (n NamespaceFunc) Year() int           { return n.Y }
func (n NamespaceFunc) Register(c *Catalog) { n.Fn(c) }

// Catalog maps solution type names ("Solutions2025.Day01.Part1") to the
// implementations registered for them.
type Catalog struct {
	namespace string
	year      int
	types     map[string]*solutionType
}

// solutionType holds the versions of one day/part in registration order.
type solutionType struct {
	name  string
	impls []models.Implementation
}

func newCatalog(namespace string, year int) *Catalog {
	return &Catalog{
		namespace: namespace,
		year:      year,
		types:     make(map[string]*solutionType),
	}
}

// Namespace returns the catalog's namespace name, e.g. "Solutions2025".
func (c *Catalog) Namespace() string {
	return c.namespace
}

// Len returns the number of registered solution types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Solution returns a builder for the given day and part. It panics on an
// out-of-range day or part.
func (c *Catalog) Solution(day, part int) *SolutionBuilder {
	key := models.ProblemKey{Year: c.year, Day: day, Part: part}
	if err := key.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %s: %v", c.namespace, err))
	}

	name := key.TypeName(c.namespace)
	st, ok := c.types[name]
	if !ok {
		st = &solutionType{name: name}
		c.types[name] = st
	}
	return &SolutionBuilder{st: st}
}

func (c *Catalog) lookup(key models.ProblemKey) (*solutionType, bool) {
	st, ok := c.types[key.TypeName(c.namespace)]
	return st, ok
}

// SolutionBuilder registers the versions of one solution type.
type SolutionBuilder struct {
	st *solutionType
}

// Run registers the baseline implementation.
func (b *SolutionBuilder) Run(fn models.SolveFunc) *SolutionBuilder {
	b.add(0, fn)
	return b
}

// RunV registers version N (N >= 2) of the solution, named "RunV{N}".
// Version 1 is the baseline registered with Run.
func (b *SolutionBuilder) RunV(ordinal int, fn models.SolveFunc) *SolutionBuilder {
	if ordinal < 2 {
		panic(fmt.Sprintf("registry: %s: version ordinal must be >= 2, got %d (use Run for the baseline)", b.st.name, ordinal))
	}
	b.add(ordinal, fn)
	return b
}

func (b *SolutionBuilder) add(ordinal int, fn models.SolveFunc) {
	name := models.ImplementationName(ordinal)
	if fn == nil {
		panic(fmt.Sprintf("registry: %s.%s: nil solve function", b.st.name, name))
	}
	for _, impl := range b.st.impls {
		if impl.Ordinal == ordinal {
			panic(fmt.Sprintf("registry: %s.%s already registered", b.st.name, name))
		}
	}
	slog.Debug("registering implementation", "type", b.st.name, "name", name)
	b.st.impls = append(b.st.impls, models.Implementation{
		Name:    name,
		Ordinal: ordinal,
		Solve:   fn,
	})
}
