package bench

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/spachava753/aocharness/internal/executor"
	"github.com/spachava753/aocharness/internal/models"
)

// MeasureFunc runs one benchmark sample. testing.Benchmark in production.
type MeasureFunc func(f func(b *testing.B)) testing.BenchmarkResult

// Runner measures every version of a problem.
type Runner struct {
	// Count is the number of samples per version.
	Count int
	// Measure defaults to testing.Benchmark.
	Measure MeasureFunc
	// Silence redirects os.Stdout to the null device while measuring so
	// stray prints in solutions do not skew timings.
	Silence bool

	dispatcher *executor.Dispatcher
}

// NewRunner creates a runner taking count samples per version.
func NewRunner(count int) *Runner {
	if count < 1 {
		count = 1
	}
	return &Runner{
		Count:      count,
		Measure:    testing.Benchmark,
		Silence:    true,
		dispatcher: executor.NewDispatcher(),
	}
}

// Run benchmarks impls against input. Each version is invoked once first as
// a warm-up; versions that fail the warm-up are reported and not measured.
func (r *Runner) Run(key models.ProblemKey, impls []models.Implementation, input []string) (*Report, error) {
	if len(impls) == 0 {
		return nil, models.Errorf(models.ErrNoImplementationsFound, "nothing to benchmark for %s", key)
	}
	if r.dispatcher == nil {
		r.dispatcher = executor.NewDispatcher()
	}
	measure := r.Measure
	if measure == nil {
		measure = testing.Benchmark
	}

	if r.Silence {
		restore, err := silenceStdout()
		if err != nil {
			return nil, fmt.Errorf("silencing stdout: %w", err)
		}
		defer restore()
	}

	report := &Report{
		Key:         key,
		InputLines:  len(input),
		Samples:     r.Count,
		GeneratedAt: time.Now().UTC(),
	}

	for _, impl := range impls {
		stats := VersionStats{Name: impl.Name, Ordinal: impl.Ordinal}

		warm := r.dispatcher.Invoke(impl, input)
		if warm.Failed() {
			stats.Error = warm.Error.Message
			report.Versions = append(report.Versions, stats)
			slog.Warn("skipping failed version", "name", impl.Name, "error", warm.Error.Message)
			continue
		}
		stats.Output = warm.Output

		samples := make([]float64, 0, r.Count)
		for range r.Count {
			var failure string
			res := measure(func(b *testing.B) {
				// testing.Benchmark runs this on its own goroutine, where an
				// unrecovered panic would end the process.
				defer func() {
					if p := recover(); p != nil {
						failure = fmt.Sprintf("%v", p)
					}
				}()
				b.ReportAllocs()
				for b.Loop() {
					impl.Solve(input)
				}
			})
			if failure != "" {
				stats.Error = failure
				slog.Warn("version failed while measuring", "name", impl.Name, "error", failure)
				break
			}
			if res.N == 0 {
				continue
			}
			samples = append(samples, float64(res.T.Nanoseconds())/float64(res.N))
			stats.BytesPerOp = res.AllocedBytesPerOp()
			stats.AllocsPerOp = res.AllocsPerOp()
			stats.Iterations += res.N
		}
		if stats.Error != "" {
			report.Versions = append(report.Versions, stats)
			continue
		}
		if len(samples) == 0 {
			stats.Error = "no samples recorded"
			report.Versions = append(report.Versions, stats)
			continue
		}

		stats.Mean, stats.StdDev, stats.Min, stats.Max = summarize(samples)
		report.Versions = append(report.Versions, stats)
		slog.Debug("version measured", "name", impl.Name, "mean", stats.Mean, "samples", len(samples))
	}

	rank(report.Versions)
	return report, nil
}

// summarize returns the mean, sample standard deviation, min and max of
// per-op nanosecond samples.
func summarize(samples []float64) (mean, stddev, lo, hi time.Duration) {
	var sum float64
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		sum += s
		minV = math.Min(minV, s)
		maxV = math.Max(maxV, s)
	}
	m := sum / float64(len(samples))

	var sd float64
	if len(samples) > 1 {
		var sq float64
		for _, s := range samples {
			sq += (s - m) * (s - m)
		}
		sd = math.Sqrt(sq / float64(len(samples)-1))
	}

	return time.Duration(m), time.Duration(sd), time.Duration(minV), time.Duration(maxV)
}

// rank assigns dense ranks by ascending mean. Failed versions get rank 0.
func rank(versions []VersionStats) {
	var measured []*VersionStats
	for i := range versions {
		if versions[i].Error == "" {
			measured = append(measured, &versions[i])
		}
	}
	sort.SliceStable(measured, func(i, j int) bool {
		return measured[i].Mean < measured[j].Mean
	})

	current := 0
	for i, v := range measured {
		if i == 0 || v.Mean != measured[i-1].Mean {
			current++
		}
		v.Rank = current
	}
}

func silenceStdout() (func(), error) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	orig := os.Stdout
	os.Stdout = devnull
	return func() {
		os.Stdout = orig
		devnull.Close()
	}, nil
}
