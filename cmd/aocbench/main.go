package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/spachava753/aocharness/internal/bench"
	"github.com/spachava753/aocharness/internal/config"
	"github.com/spachava753/aocharness/internal/input"
	"github.com/spachava753/aocharness/internal/models"
	"github.com/spachava753/aocharness/internal/registry"
	"github.com/spachava753/aocharness/internal/term"
	"github.com/spachava753/aocharness/solutions"
)

type options struct {
	root      string
	year      int
	day       int
	part      int
	count     int
	benchtime string
	export    string
}

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// testing.Benchmark reads the test.* flags.
	testing.Init()

	if err := newRootCmd(os.Stdout, os.Stderr, testing.Benchmark).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errW io.Writer, m bench.MeasureFunc) *cobra.Command {
	opts := options{year: 2025, day: 1, part: 1, count: 5, benchtime: "1s"}

	cmd := &cobra.Command{
		Use:           "aocbench",
		Short:         "Benchmark every version of an Advent of Code solution",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(opts, out, errW, m)
			if err != nil {
				fmt.Fprintln(errW, err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.root, "root", "", "project root containing "+config.ManifestFile+" (env "+config.EnvRoot+")")
	f.IntVar(&opts.year, "year", opts.year, "puzzle year")
	f.IntVar(&opts.day, "day", opts.day, "puzzle day")
	f.IntVar(&opts.part, "part", opts.part, "puzzle part")
	f.IntVar(&opts.count, "count", opts.count, "samples per version")
	f.StringVar(&opts.benchtime, "benchtime", opts.benchtime, "target run time per sample, e.g. 500ms or 1000x")
	f.StringVar(&opts.export, "export", "", "write the report as YAML to this file")

	return cmd
}

func run(opts options, out, errW io.Writer, m bench.MeasureFunc) error {
	key := models.ProblemKey{Year: opts.year, Day: opts.day, Part: opts.part}
	if err := key.Validate(); err != nil {
		return err
	}

	if f := flag.Lookup("test.benchtime"); f != nil {
		if err := flag.Set("test.benchtime", opts.benchtime); err != nil {
			return fmt.Errorf("invalid benchtime %q: %w", opts.benchtime, err)
		}
	}

	override := opts.root
	if override == "" {
		override = os.Getenv(config.EnvRoot)
	}
	if override == "" {
		// The bridge starts us in the project root.
		override = "."
	}
	root, err := config.LocateProjectRoot(override)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root, os.Getenv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(config.NewLogger(cfg.Log, errW))

	reg := registry.New(cfg.NamespacePrefix, solutions.All()...)
	if !reg.HasNamespace(key.Year) {
		return models.Errorf(models.ErrNoNamespacesFound, "no %s namespace is registered", key.NamespaceName(reg.Prefix()))
	}
	impls, err := reg.ResolveAll(key)
	if err != nil {
		return err
	}

	lines, diag := input.NewLoader(os.DirFS(root), cfg.NamespacePrefix).Load(key)
	if diag != nil {
		fmt.Fprintln(errW, diag.Error())
	}

	runner := bench.NewRunner(opts.count)
	runner.Measure = m
	report, err := runner.Run(key, impls, lines)
	if err != nil {
		return err
	}

	report.Render(out, term.New(out))

	if opts.export != "" {
		if err := export(report, opts.export); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to %s\n", opts.export)
	}

	failed := 0
	for _, v := range report.Versions {
		if v.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d versions failed", failed, len(report.Versions))
	}
	return nil
}

func export(report *bench.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := report.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
