package y2025

import "strings"

// Day01Part1 concatenates the input lines.
func Day01Part1(input []string) string {
	result := ""
	for _, line := range input {
		result += line
	}
	return result
}

// Day01Part1V2 builds the same answer with a strings.Builder.
func Day01Part1V2(input []string) string {
	var sb strings.Builder
	for _, line := range input {
		sb.WriteString(line)
	}
	return sb.String()
}

// Day01Part1V3 uses strings.Join.
func Day01Part1V3(input []string) string {
	return strings.Join(input, "")
}
