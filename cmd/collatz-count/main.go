package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"energilab/collatz-count/internal/app"
	"energilab/collatz-count/internal/collatz"
	"energilab/collatz-count/internal/platform/logging"
	"energilab/collatz-count/internal/report"
	"energilab/collatz-count/internal/runconfig"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

const (
	exitOK           = 0
	exitUsage        = 1
	exitInvalidInput = 2
	exitConfig       = 3
	exitOutput       = 4
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	program := filepath.Base(args[0])
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	configPath := fs.String("config", "", "Path to collatz.yaml (optional)")
	output := fs.String("output", "", "Output format override: text | json")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus textfile metrics to this path (optional)")
	logLevel := fs.String("log-level", "", "Log level override: debug | info | warn | error")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitInvalidInput
	}
	if *showVersion {
		return writeStdoutf(stdout, "collatz-count version=%s commit=%s build_date=%s\n", version, commit, buildDate)
	}

	if fs.NArg() < 1 {
		if err := report.Usage(stdout, program); err != nil {
			return exitOutput
		}
		return exitUsage
	}
	limit, err := collatz.ParseLimit(fs.Arg(0))
	if err != nil {
		writeStderrln(stderr, err.Error())
		return exitInvalidInput
	}

	cfg, err := runconfig.LoadFromPath(*configPath)
	if err != nil {
		writeStderrln(stderr, err.Error())
		return exitConfig
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		writeStderrln(stderr, err.Error())
		return exitConfig
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		writeStderrln(stderr, err.Error())
		return exitConfig
	}
	runner, err := app.NewRunner(cfg, logger)
	if err != nil {
		writeStderrln(stderr, err.Error())
		return exitConfig
	}

	// Emit logs its own failures.
	if err := runner.Emit(stdout, runner.Run(limit)); err != nil {
		return exitOutput
	}
	return exitOK
}

func writeStdoutf(w io.Writer, format string, args ...any) int {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return exitOutput
	}
	return exitOK
}

func writeStderrln(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
