// Package y2025 holds the Advent of Code 2025 solutions.
package y2025

import "github.com/spachava753/aocharness/internal/registry"

// Namespace implements registry.Namespace for 2025.
type Namespace struct{}

func (Namespace) Year() int { return 2025 }

// Register registers every 2025 solution with the catalog.
func (Namespace) Register(c *registry.Catalog) {
	c.Solution(1, 1).
		Run(Day01Part1).
		RunV(2, Day01Part1V2).
		RunV(3, Day01Part1V3)
}
