package bench_test

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spachava753/aocharness/internal/bench"
	"github.com/spachava753/aocharness/internal/models"
)

var key = models.ProblemKey{Year: 2025, Day: 1, Part: 2}

func requireShell(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping subprocess test in short mode")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// shellBench returns a bench config whose command runs script with the
// problem flags as positional parameters.
func shellBench(script string, passthrough ...string) models.BenchConfig {
	return models.BenchConfig{
		Project: ".",
		Command: []string{"sh", "-c", script, "aocbench"},
		Args:    passthrough,
	}
}

func TestBridgeArgs(t *testing.T) {
	b := bench.NewBridge(t.TempDir(), models.BenchConfig{
		Command: []string{"go", "run", "./cmd/aocbench"},
		Args:    []string{"--count", "5"},
	}, nil, nil)

	assert.Equal(t,
		[]string{"go", "run", "./cmd/aocbench", "--year", "2025", "--day", "1", "--part", "2", "--count", "5"},
		b.Args(key))
}

func TestRunBenchmark_Success(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	b := bench.NewBridge(t.TempDir(), shellBench(`echo "args: $*"; echo "second line"; echo "warming up" >&2`, "--filter", "x"), &stdout, &stderr)

	ok := b.RunBenchmark(context.Background(), key)
	require.True(t, ok)

	assert.Contains(t, stdout.String(), "Running benchmark...\n")
	assert.Contains(t, stdout.String(), "args: --year 2025 --day 1 --part 2 --filter x\n")
	assert.Contains(t, stdout.String(), "second line\n")
	assert.NotContains(t, stdout.String(), "warming up")
	assert.Equal(t, "warming up\n", stderr.String())
}

func TestRunBenchmark_NonZeroExit(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	b := bench.NewBridge(t.TempDir(), shellBench(`echo partial; echo "bad flag" >&2; exit 3`), &stdout, &stderr)

	err := b.Run(context.Background(), key)
	require.Error(t, err)
	assert.Equal(t, models.ErrSubprocessNonZeroExit, models.TypeOf(err))
	assert.Contains(t, err.Error(), "status 3")
	assert.Contains(t, stdout.String(), "partial")
	assert.Contains(t, stderr.String(), "bad flag")

	assert.False(t, b.RunBenchmark(context.Background(), key))
}

func TestRunBenchmark_MissingProject(t *testing.T) {
	var stdout bytes.Buffer
	cfg := shellBench("exit 0")
	cfg.Project = "cmd/aocbench"
	b := bench.NewBridge(t.TempDir(), cfg, &stdout, &stdout)

	err := b.Run(context.Background(), key)
	require.Error(t, err)
	assert.Equal(t, models.ErrSubprocessLaunchFailure, models.TypeOf(err))
	assert.NotContains(t, stdout.String(), "Running benchmark")

	stdout.Reset()
	assert.False(t, b.RunBenchmark(context.Background(), key))
	assert.Contains(t, stdout.String(), "could not find the benchmark project")
}

func TestRunBenchmark_LaunchFailure(t *testing.T) {
	var stdout bytes.Buffer
	b := bench.NewBridge(t.TempDir(), models.BenchConfig{
		Project: ".",
		Command: []string{"aocharness-no-such-binary"},
	}, &stdout, &stdout)

	err := b.Run(context.Background(), key)
	require.Error(t, err)
	assert.Equal(t, models.ErrSubprocessLaunchFailure, models.TypeOf(err))

	b = bench.NewBridge(t.TempDir(), models.BenchConfig{Project: "."}, &stdout, &stdout)
	err = b.Run(context.Background(), key)
	require.Error(t, err)
	assert.Equal(t, models.ErrSubprocessLaunchFailure, models.TypeOf(err))
}

func TestRunBenchmark_Cancelled(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	b := bench.NewBridge(t.TempDir(), shellBench("sleep 5"), &stdout, &stdout)
	assert.False(t, b.RunBenchmark(ctx, key))
}

func TestRun_CancelledMidRun(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(300*time.Millisecond, cancel)

	// sleep runs as a grandchild of the bridge and holds stdout open.
	var stdout, stderr bytes.Buffer
	b := bench.NewBridge(t.TempDir(), shellBench("echo start; sleep 5; echo end"), &stdout, &stderr)

	started := time.Now()
	err := b.Run(ctx, key)
	elapsed := time.Since(started)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.NotEqual(t, models.ErrSubprocessNonZeroExit, models.TypeOf(err))
	assert.Less(t, elapsed, 3*time.Second)
	assert.Contains(t, stdout.String(), "start")
	assert.NotContains(t, stdout.String(), "end")
}
