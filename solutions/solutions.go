// Package solutions lists the solution namespaces compiled into the harness.
package solutions

import (
	"github.com/spachava753/aocharness/internal/registry"
	"github.com/spachava753/aocharness/solutions/y2025"
)

// namespaces is the definitive list of years compiled into the aoc and
// aocbench binaries. Add a year by adding its package here.
var namespaces = []registry.Namespace{
	y2025.Namespace{},
}

// All returns the compiled-in namespaces.
func All() []registry.Namespace {
	return append([]registry.Namespace(nil), namespaces...)
}
