package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"hooksdemo/internal/config"
	"hooksdemo/internal/diag"
	"hooksdemo/internal/ui"
)

// options holds the parsed command line.
type options struct {
	configPath string
	logFile    string
	verbose    bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default: search standard locations)")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of the configured one")
	flag.BoolVar(&opts.verbose, "verbose", false, "log at debug level")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hooksdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "hooksdemo shows four reactive widgets side by side: a counter,\n")
		fmt.Fprintf(os.Stderr, "a timer, a focusable input and a shared user profile.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal; run hooksdemo in an interactive shell")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}

	logger, closeLog, err := newLogger(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	emitters := []diag.Emitter{diag.NewLogEmitter(logger)}
	exporter, err := diag.NewOTLPExporter(context.Background())
	if err != nil {
		logger.Warn("otlp exporter disabled", "err", err)
	}
	if exporter != nil {
		emitters = append(emitters, exporter)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := exporter.Shutdown(ctx); err != nil {
				logger.Warn("otlp shutdown", "err", err)
			}
		}()
	}

	model := ui.NewAppModel(ui.Options{
		Config:  cfg,
		Emitter: diag.NewMulti(emitters...),
		Logger:  logger,
	})
	defer model.Close()

	logger.Info("starting", "interval", cfg.Timer.Interval.Duration, "milestone", cfg.Timer.Milestone)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// newLogger builds a text logger writing to the configured file. The terminal
// belongs to the program, so without a file logs are discarded.
func newLogger(cfg config.LogConfig, verbose bool) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "hooksdemo: %v\n", err)
		os.Exit(1)
	}
}
