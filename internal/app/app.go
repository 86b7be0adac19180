// Package app wires configuration, logging, metrics and the engine into the
// deccalc application modes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/agbru/deccalc/internal/cli"
	"github.com/agbru/deccalc/internal/config"
	"github.com/agbru/deccalc/internal/exec"
	"github.com/agbru/deccalc/internal/logging"
	"github.com/agbru/deccalc/internal/metrics"
	"github.com/agbru/deccalc/internal/ui"
)

// Version is the build version, overridable via -ldflags.
var Version = "dev"

// Application represents the deccalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "deccalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// IsHelpError reports whether err is the flag package's help pseudo-error.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "deccalc %s\n", Version)
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	switch {
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case cfg.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(cfg.LightTheme)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log := logging.NewZerologAdapter(zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter}).With().Timestamp().Logger())

	engineOpts := []exec.Option{exec.WithLogger(log)}
	if cfg.Workers > 0 {
		engineOpts = append(engineOpts, exec.WithWorkers(cfg.Workers))
	}
	if cfg.ParallelThreshold > 0 {
		engineOpts = append(engineOpts, exec.WithParallelThreshold(cfg.ParallelThreshold))
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		engineOpts = append(engineOpts, exec.WithMetrics(metrics.NewEngine(reg)))
		shutdown := serveMetrics(cfg.MetricsAddr, reg, log)
		defer shutdown()
	}
	engine := exec.New(engineOpts...)

	switch {
	case cfg.REPL:
		repl := cli.NewREPL(engine, cfg.ResultScale, os.Stdin, out)
		return repl.Run(ctx)
	case cfg.Batch != "":
		sp := cli.Spinner(cli.NewSpinner(a.ErrWriter))
		if cfg.Quiet {
			sp = cli.NopSpinner()
		}
		return cli.RunBatch(ctx, engine, cfg, out, a.ErrWriter, sp)
	default:
		return cli.RunEval(ctx, engine, cfg, out, a.ErrWriter)
	}
}

// serveMetrics starts the prometheus listener and returns its shutdown hook.
func serveMetrics(addr string, reg *prometheus.Registry, log logging.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Info("serving metrics", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics listener failed", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
