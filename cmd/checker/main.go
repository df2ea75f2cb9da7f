// Package main is the entry point for the checker binary. It wires an
// assertion tracker from environment configuration and runs the built-in
// self-check suite.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/yufei-ai/distributed-computing/internal/config"
	"github.com/yufei-ai/distributed-computing/internal/metrics"
	"github.com/yufei-ai/distributed-computing/pkg/check"
	"github.com/yufei-ai/distributed-computing/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, cfg.App.LogLevel).With("component", "checker")

	if cfg.MetricsEnabled() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			log.Info("metrics endpoint listening", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				log.Warn("metrics endpoint stopped", "error", err.Error())
			}
		}()
	}

	tracker := check.NewTracker(check.Config{
		Output:   os.Stdout,
		Logger:   log,
		Recorder: metrics.PromRecorder{},
	})
	if cfg.Check.FailFast {
		tracker.EnableFailFast()
	}
	if cfg.Check.PrivateMode {
		tracker.EnablePrivateMode()
	}

	err = selfCheck(tracker)
	tracker.PrintStats()

	if err != nil {
		metrics.RecordRun("failed")
		if check.IsPrivate(err) {
			log.Error("self-check aborted on a private failure")
		} else {
			log.Error("self-check aborted", "error", err.Error())
		}
		return err
	}
	if tracker.TestsPassed() < tracker.TestsRun() {
		metrics.RecordRun("failed")
		return fmt.Errorf("%d of %d self-check assertion(s) failed",
			tracker.TestsRun()-tracker.TestsPassed(), tracker.TestsRun())
	}
	metrics.RecordRun("passed")
	log.Info("self-check passed", "tests_run", tracker.TestsRun())
	return nil
}

// selfCheck exercises every assertion kind against known-good inputs,
// including SHA-1 digests recorded with check.Digest. It stops at the first
// failure only when the tracker is in fail-fast mode.
func selfCheck(t *check.Tracker) error {
	steps := []func() error{
		func() error {
			return t.AssertTrue(true, "boolean check wiring")
		},
		func() error {
			return t.AssertEquals([]int{1, 2, 3}, []int{1, 2, 3}, "structural equality")
		},
		func() error {
			return t.AssertEquals("checker", "checker", "string equality")
		},
		func() error {
			return t.AssertEqualsTol(3.14159, 3.1416, 1e-4, "tolerance comparison")
		},
		func() error {
			return t.AssertEqualsHashed("hello world",
				"2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", "digest of a string")
		},
		func() error {
			return t.AssertEqualsHashed(42,
				"92cfceb39d57d914ed8b14d0e37643de0797ae56", "digest of an int")
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
