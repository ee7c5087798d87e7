// Package logger prints benchmark progress to stderr when --verbose is set.
// Besides the plain Debug/Info/Warn levels it has helpers for the events of a
// benchmark run, so every solver line has the same shape:
//
//	[INFO] exhaustive: skipped, 30 items exceeds limit 22
//	[DEBUG] dynamic: repetition 2/3 took 1.2ms
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log lines, os.Stderr by default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func Debug(format string, args ...any) { emit(levelDebug, format, args...) }

func Info(format string, args ...any) { emit(levelInfo, format, args...) }

func Warn(format string, args ...any) { emit(levelWarn, format, args...) }

// Section prints a banner separating one run from the next.
func Section(name string) {
	write(func(w io.Writer) { fmt.Fprintf(w, "\n=== %s ===\n", name) })
}

// RunStarted opens the log of one benchmark run.
func RunStarted(id string, capacity, items, repetitions int) {
	Section("Benchmark " + id)
	Info("capacity=%d items=%d repetitions=%d", capacity, items, repetitions)
}

// Skipped records a solver left out of a run, by a guard or its own limit.
func Skipped(solver, reason string) {
	emit(levelInfo, "%s: skipped, %s", solver, reason)
}

// TimedOut records a solver repetition cut off by the per-run timeout.
func TimedOut(solver string, limit time.Duration) {
	emit(levelWarn, "%s: exceeded %s", solver, limit)
}

// Failed records a solver error or a solution that did not validate.
func Failed(solver string, err error) {
	emit(levelWarn, "%s: failed: %v", solver, err)
}

// Repetition records the duration of repetition i (1-based) of n.
func Repetition(solver string, i, n int, took time.Duration) {
	emit(levelDebug, "%s: repetition %d/%d took %s", solver, i, n, took)
}

// Finished records a solver's accepted result.
func Finished(solver string, value int, median time.Duration) {
	emit(levelDebug, "%s: value=%d median=%s", solver, value, median)
}

func emit(l level, format string, args ...any) {
	write(func(w io.Writer) {
		fmt.Fprintf(w, "[%s] %s\n", l, fmt.Sprintf(format, args...))
	})
}

func write(fn func(io.Writer)) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fn(output)
	}
}
