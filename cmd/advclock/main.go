package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"advclock/internal/clock"
	"advclock/internal/log"
	"advclock/internal/meta"
	"advclock/internal/metrics"
	"advclock/internal/report"

	"github.com/getsentry/raven-go"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String(
		"config",
		os.Getenv("ADVCLOCK_CONFIG"),
		"path to the configuration file on disk",
	)
	version := flag.Bool(
		"version",
		false,
		"print the compiled advclock version SHA",
	)
	verbosity := flag.String(
		"verbosity",
		"error",
		"desired logging verbosity: one of error, warn, info, debug",
	)
	precisionName := flag.String(
		"precision",
		"",
		"unit for single-value output, e.g. ms or seconds; overrides the configured precision",
	)
	table := flag.Bool(
		"table",
		true,
		"print the measurement in every unit rather than a single value",
	)
	convert := flag.String(
		"convert",
		"",
		"convert a raw nanosecond count instead of timing a command",
	)
	flag.Parse()

	// Report the compiled version and exit
	if *version {
		fmt.Printf("advclock/%s\n", meta.VersionSHA)
		return 0
	}

	// Logging configuration; default to log.Error verbosity
	level, _ := log.ParseLevel(*verbosity)
	logger := log.NewConsoleLogger(level)
	logger.Debug("main: initialized logger: level=%v", level)

	// Parse application configuration
	logger.Debug("main: reading and parsing config: path=%s", *configPath)
	config, err := meta.ParseConfig(*configPath)
	if err != nil {
		logger.Error("main: %v", err)
		return 1
	}

	// Configure error reporting
	reportErrors := false
	if config.Application != nil && config.Application.SentryDSN != "" {
		if err := raven.SetDSN(config.Application.SentryDSN); err != nil {
			logger.Warn("main: invalid sentry DSN; disabling error reporting: err=%v", err)
		} else {
			raven.SetRelease(meta.VersionSHA)
			reportErrors = true
		}
	}

	fail := func(err error) int {
		logger.Error("main: %v", err)

		if reportErrors {
			raven.CaptureErrorAndWait(err, map[string]string{"timer": config.Report.TimerName})
		}

		return 1
	}

	// Resolve the output unit; the flag takes precedence over the config
	precision, ok := resolvePrecision(config.Precision(), *precisionName)
	if !ok {
		logger.Warn(
			"main: unknown precision; use configured: supplied=%s configured=%s",
			*precisionName,
			precision,
		)
	}

	output := func(w io.Writer, d time.Duration) error {
		if *table {
			return report.Table(w, d)
		}

		return report.Single(w, d, precision)
	}

	// Conversion of a raw count needs no timer or metrics
	if *convert != "" {
		nanos, err := strconv.ParseInt(*convert, 10, 64)
		if err != nil {
			return fail(fmt.Errorf("convert: invalid nanosecond count: value=%s err=%v", *convert, err))
		}

		if err := output(os.Stdout, time.Duration(nanos)); err != nil {
			return fail(err)
		}

		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: advclock [flags] [-- command args...]")
		flag.PrintDefaults()
		return 2
	}

	// Configure metrics reporting
	var hooks []metrics.TimerHook
	var statsdHook *metrics.AsyncStatsdTimerHook
	var prometheusHook *metrics.PrometheusTimerHook

	if config.Metrics != nil && config.Metrics.Statsd != nil {
		logger.Info(
			"main: configuring statsd metrics reporting: addr=%s sample_rate=%f",
			config.Metrics.Statsd.Address,
			config.Metrics.Statsd.SampleRate,
		)

		if statsdHook, err = metrics.NewAsyncStatsdTimerHook(
			config.Metrics.Statsd.Address,
			float32(config.Metrics.Statsd.SampleRate),
		); err != nil {
			return fail(err)
		}

		defer func() {
			if err := statsdHook.Close(); err != nil {
				logger.Warn("main: error closing statsd client: err=%v", err)
			}
		}()

		hooks = append(hooks, statsdHook)
	}

	if config.Metrics != nil && config.Metrics.Prometheus != nil {
		logger.Info(
			"main: configuring prometheus textfile reporting: path=%s",
			config.Metrics.Prometheus.Textfile,
		)

		prometheusHook = metrics.NewPrometheusTimerHook("advclock")
		hooks = append(hooks, prometheusHook)
	}

	if len(hooks) == 0 {
		logger.Warn("main: no metrics output engine specified; disabling metrics")
	}

	// Time the command
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug(
		"main: starting command: name=%s args=%v source=%s",
		config.Report.TimerName,
		args,
		config.Clock.Source,
	)
	stopwatch := metrics.NewStopwatchWithEpoch(
		config.Report.TimerName,
		metrics.NewMultiTimerHook(hooks...),
		clock.NewEpoch(config.Source()),
	)
	runErr := cmd.Run()
	elapsed := stopwatch.Lap()

	logger.Info(
		"main: command finished: name=%s elapsed=%s begin=%.6fs",
		stopwatch.Name(),
		elapsed,
		stopwatch.Timer().Begin(clock.Seconds),
	)

	exitCode, ran := exitStatus(runErr)
	if !ran {
		return fail(fmt.Errorf("command: error starting command: name=%s err=%v", args[0], runErr))
	}

	if exitCode != 0 {
		logger.Warn("main: command exited unsuccessfully: code=%d", exitCode)
	}

	if statsdHook != nil {
		statsdHook.EmitExitCode(stopwatch.Name(), exitCode)
	}

	if prometheusHook != nil {
		if err := prometheusHook.WriteTextfile(config.Metrics.Prometheus.Textfile); err != nil {
			return fail(err)
		}
	}

	// The command owns stdout; the measurement goes to stderr
	if err := output(os.Stderr, elapsed); err != nil {
		return fail(err)
	}

	return exitCode
}
