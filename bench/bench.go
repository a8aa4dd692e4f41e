// Package bench measures how long counting takes and how much it allocates.
//
// A run is made of rounds, and each round counts the same buffer Trials
// times. For every round, Run reports the wall-clock time and the bytes
// allocated by the whole process while the round ran.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.lepak.sg/wordfreq/freq"
	"go.lepak.sg/wordfreq/logging"
	"go.lepak.sg/wordfreq/words"
)

// ErrInvalidConfig is returned by Run when Trials or Rounds is not positive.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config describes a benchmark run.
type Config struct {
	// Trials is the number of counting passes per round.
	Trials int
	// Rounds is the number of measured rounds.
	Rounds int
	Engine freq.Engine
	Class  words.Class
	// Reuse counts every trial into the same table, reset between trials.
	// Otherwise each trial gets a new table.
	Reuse bool
}

// DefaultConfig returns 5 rounds of 10 trials with the Scan engine.
func DefaultConfig() Config {
	return Config{
		Trials: 10,
		Rounds: 5,
		Engine: freq.Scan,
		Class:  words.Unicode,
	}
}

func (c Config) validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	return nil
}

// Result is the measurement of one round.
type Result struct {
	Round      int
	Elapsed    time.Duration
	AllocBytes uint64
	// Words and Distinct describe the table of the last trial.
	Words    int
	Distinct int
}

// String formats the result like "Time: 200ms, Alloc: 0.04mb".
func (r Result) String() string {
	return fmt.Sprintf("Time: %dms, Alloc: %.2fmb",
		r.Elapsed.Milliseconds(), float64(r.AllocBytes)/1024/1024)
}

// Summary totals every completed round.
type Summary struct {
	Rounds     int
	Elapsed    time.Duration
	AllocBytes uint64
}

func (s *Summary) add(r Result) {
	s.Rounds++
	s.Elapsed += r.Elapsed
	s.AllocBytes += r.AllocBytes
}

// Run benchmarks counting buf as described by cfg. report, if not nil,
// is called after every round. Run checks ctx between rounds; if it is
// canceled, Run returns the rounds completed so far with the context error.
func Run(
	ctx context.Context, buf []byte, cfg Config, logger *slog.Logger, report func(Result),
) (Summary, error) {
	var sum Summary
	if err := cfg.validate(); err != nil {
		return sum, err
	}

	logger = logging.OrNop(logger).With(
		"engine", cfg.Engine.String(),
		"class", cfg.Class.String(),
		"trials", cfg.Trials,
		"reuse", cfg.Reuse,
	)

	var shared *freq.Table
	if cfg.Reuse {
		shared = freq.New(cfg.Class, 0)
	}

	var ms runtime.MemStats
	for round := 1; round <= cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		runtime.ReadMemStats(&ms)
		before := ms.TotalAlloc
		start := time.Now()

		var tb *freq.Table
		for trial := 0; trial < cfg.Trials; trial++ {
			if shared != nil {
				tb = shared
				tb.Reset()
			} else {
				tb = freq.New(cfg.Class, 0)
			}

			if err := tb.CountWith(cfg.Engine, buf); err != nil {
				return sum, fmt.Errorf("round %d trial %d: %w", round, trial, err)
			}
		}

		elapsed := time.Since(start)
		runtime.ReadMemStats(&ms)

		r := Result{
			Round:      round,
			Elapsed:    elapsed,
			AllocBytes: ms.TotalAlloc - before,
			Words:      tb.Total(),
			Distinct:   tb.Len(),
		}
		sum.add(r)

		logger.Debug("round done",
			"round", r.Round,
			"elapsed", r.Elapsed,
			"alloc_bytes", r.AllocBytes,
			"words", r.Words,
			"distinct", r.Distinct,
		)

		if report != nil {
			report(r)
		}
	}

	return sum, nil
}
