package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spachava753/aocharness/internal/models"
)

// MaxRootHops bounds how many parent directories FindProjectRoot inspects.
const MaxRootHops = 10

// FindProjectRoot walks upward from start until a directory containing the
// manifest is found, inspecting start and at most MaxRootHops parents.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", models.WrapError(models.ErrProjectRootNotFound, err, "resolving %s", start)
	}

	for hop := 0; hop <= MaxRootHops; hop++ {
		if info, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil && !info.IsDir() {
			slog.Debug("project root found", "path", dir, "hops", hop)
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", models.Errorf(models.ErrProjectRootNotFound,
		"could not find the project root (%s) within %d directories of %s", ManifestFile, MaxRootHops, start)
}

// FindProjectRootFrom tries each start directory in order and returns the
// first root found. Empty entries are skipped.
func FindProjectRootFrom(starts ...string) (string, error) {
	var lastErr error = models.Errorf(models.ErrProjectRootNotFound, "no start directory given")
	for _, start := range starts {
		if start == "" {
			continue
		}
		root, err := FindProjectRoot(start)
		if err == nil {
			return root, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// LocateProjectRoot returns the project root. A non-empty override is
// searched from directly; otherwise the executable's directory is tried
// first and then the working directory.
func LocateProjectRoot(override string) (string, error) {
	if override != "" {
		return FindProjectRoot(override)
	}

	var starts []string
	if exe, err := os.Executable(); err == nil {
		starts = append(starts, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		starts = append(starts, wd)
	}
	return FindProjectRootFrom(starts...)
}
