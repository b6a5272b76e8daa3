package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spachava753/aocharness/internal/models"
)

// waitDelay bounds how long Wait keeps copying output after the child was
// killed.
const waitDelay = 2 * time.Second

// Bridge hands a problem off to the benchmark subprocess and relays its
// output.
type Bridge struct {
	root   string
	cfg    models.BenchConfig
	stdout io.Writer
	stderr io.Writer
}

// NewBridge creates a bridge that runs cfg.Command from root. The child's
// stdout is streamed to stdout as it runs; its stderr is forwarded to stderr
// once it exits.
func NewBridge(root string, cfg models.BenchConfig, stdout, stderr io.Writer) *Bridge {
	return &Bridge{root: root, cfg: cfg, stdout: stdout, stderr: stderr}
}

// Args returns the command line for key: the configured command, the
// problem flags, then the passthrough arguments.
func (b *Bridge) Args(key models.ProblemKey) []string {
	args := make([]string, 0, len(b.cfg.Command)+6+len(b.cfg.Args))
	args = append(args, b.cfg.Command...)
	args = append(args,
		"--year", strconv.Itoa(key.Year),
		"--day", strconv.Itoa(key.Day),
		"--part", strconv.Itoa(key.Part),
	)
	return append(args, b.cfg.Args...)
}

// RunBenchmark runs the benchmark for key and reports whether the child
// exited with status zero. Failures are reported on the stdout sink and
// logged; they are never returned.
func (b *Bridge) RunBenchmark(ctx context.Context, key models.ProblemKey) bool {
	if err := b.Run(ctx, key); err != nil {
		slog.Error("benchmark failed", "problem", key.String(), "type", models.TypeOf(err), "error", err)
		fmt.Fprintln(b.stdout, err.Error())
		return false
	}
	return true
}

// Run is RunBenchmark with the failure returned as a *models.Error of type
// ErrSubprocessLaunchFailure or ErrSubprocessNonZeroExit. When ctx stops the
// child the returned error wraps ctx.Err() instead.
func (b *Bridge) Run(ctx context.Context, key models.ProblemKey) error {
	project := filepath.Join(b.root, filepath.FromSlash(b.cfg.Project))
	if _, err := os.Stat(project); err != nil {
		return models.WrapError(models.ErrSubprocessLaunchFailure, err,
			"could not find the benchmark project at %s", project)
	}
	if len(b.cfg.Command) == 0 {
		return models.Errorf(models.ErrSubprocessLaunchFailure, "no benchmark command configured")
	}

	args := b.Args(key)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = b.root
	cmd.Stdout = b.stdout
	// go run leaves the benchmark itself as a grandchild, so cancellation
	// has to reach the whole process group.
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("starting benchmark", "dir", cmd.Dir, "args", args)
	fmt.Fprintln(b.stdout, "Running benchmark...")
	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("benchmark cancelled: %w", ctx.Err())
		}
		return models.WrapError(models.ErrSubprocessLaunchFailure, err, "could not start the benchmark process")
	}

	waitErr := cmd.Wait()

	if strings.TrimSpace(stderr.String()) != "" {
		fmt.Fprintln(b.stderr, strings.TrimRight(stderr.String(), "\n"))
	}

	if waitErr != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("benchmark cancelled: %w", ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return models.WrapError(models.ErrSubprocessNonZeroExit, waitErr,
				"benchmark exited with status %d", exitErr.ExitCode())
		}
		return models.WrapError(models.ErrSubprocessLaunchFailure, waitErr, "waiting for the benchmark process")
	}
	return nil
}
