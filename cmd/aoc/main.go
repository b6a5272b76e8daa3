package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/spachava753/aocharness/internal/bench"
	"github.com/spachava753/aocharness/internal/config"
	"github.com/spachava753/aocharness/internal/executor"
	"github.com/spachava753/aocharness/internal/input"
	"github.com/spachava753/aocharness/internal/registry"
	"github.com/spachava753/aocharness/internal/shell"
	"github.com/spachava753/aocharness/internal/term"
	"github.com/spachava753/aocharness/solutions"
)

type options struct {
	root      string
	logLevel  string
	logFormat string
}

func main() {
	_ = godotenv.Load()

	// Use a minimal logger until the configured one is set up.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		signal.Stop(sigChan)
		cancel()
	}()

	go func() {
		sig := <-sigChan
		slog.Info("interrupt received, shutting down...", "signal", sig)
		cancel()
		<-sigChan
		os.Exit(130)
	}()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errW io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Run, compare and benchmark Advent of Code solutions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd.Context(), opts, in, out, errW)
			if err != nil {
				fmt.Fprintln(errW, err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "project root containing "+config.ManifestFile+" (default: search from the executable, then the working directory; env "+config.EnvRoot+")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides "+config.ManifestFile+")")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides "+config.ManifestFile+")")

	return cmd
}

// run wires the shell to the project found on disk and drives it until the
// user exits.
func run(ctx context.Context, opts options, in io.Reader, out, errW io.Writer) error {
	override := opts.root
	if override == "" {
		override = os.Getenv(config.EnvRoot)
	}

	root, err := config.LocateProjectRoot(override)
	if err != nil {
		return err
	}
	loadDotEnv(root)

	cfg, err := config.Load(root, os.Getenv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(config.NewLogger(cfg.Log, errW))
	slog.Debug("project root", "path", root, "prefix", cfg.NamespacePrefix)

	reg := registry.New(cfg.NamespacePrefix, solutions.All()...)
	dispatcher := executor.NewDispatcher()

	sh := shell.New(shell.Options{
		Registry:   reg,
		Dispatcher: dispatcher,
		Comparator: executor.NewComparator(reg, dispatcher),
		Bench:      bench.NewBridge(root, cfg.Bench, out, errW),
		Inputs:     input.NewLoader(os.DirFS(root), cfg.NamespacePrefix),
		In:         in,
		Out:        out,
		Styler:     term.New(out),
	})

	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadDotEnv loads root/.env when present. Variables already set win.
func loadDotEnv(root string) {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("loading .env", "path", path, "error", err)
	}
}
