// Package check implements a stateful assertion tracker for exercise
// grading. A Tracker records pass/fail counts across simple comparison
// checks and, in fail-fast mode, surfaces the first failure as an error the
// driver can stop on.
package check

import (
	"fmt"
	"io"
	"math"
	"os"
	"reflect"

	"github.com/google/uuid"

	"github.com/yufei-ai/distributed-computing/pkg/logger"
)

// Recorder receives assertion outcomes for observability. Implementations
// must be cheap; they are called synchronously on every assertion.
type Recorder interface {
	RecordAssertion(passed bool)
}

// Config holds the dependencies of a Tracker. Zero-value fields get
// defaults: Output falls back to stdout, Logger and Recorder to no-ops.
type Config struct {
	// Output receives the per-assertion result lines and the stats summary.
	Output io.Writer
	// Logger, if set, receives structured records alongside the console
	// output.
	Logger *logger.Logger
	// Recorder, if set, is notified of every assertion outcome.
	Recorder Recorder
}

// Tracker evaluates assertion checks and tracks aggregate pass/fail
// statistics. It is not safe for concurrent use; callers running assertions
// from multiple goroutines must serialize access.
type Tracker struct {
	out      io.Writer
	log      *logger.Logger
	recorder Recorder
	runID    string

	testsRun    int
	testsPassed int
	failFast    bool
	private     bool
}

// NewTracker creates a Tracker with zeroed counters and both modes off.
func NewTracker(cfg Config) *Tracker {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	t := &Tracker{
		out:      out,
		log:      cfg.Logger,
		recorder: cfg.Recorder,
		runID:    uuid.NewString(),
	}
	if t.log != nil {
		t.log = t.log.With("run_id", t.runID)
		t.log.Debug("tracker created")
	}
	return t
}

// RunID returns the tracker's run correlation ID.
func (t *Tracker) RunID() string {
	return t.runID
}

// TestsRun returns the number of assertions evaluated so far.
func (t *Tracker) TestsRun() int {
	return t.testsRun
}

// TestsPassed returns the number of assertions that passed so far.
func (t *Tracker) TestsPassed() int {
	return t.testsPassed
}

// EnableFailFast makes subsequent failing assertions return an error
// instead of only being recorded. The mode cannot be cleared.
func (t *Tracker) EnableFailFast() {
	t.failFast = true
}

// EnablePrivateMode marks subsequent fail-fast failures as private, so a
// harness knows to withhold details from the subject under test. The mode
// cannot be cleared.
func (t *Tracker) EnablePrivateMode() {
	t.private = true
}

// AssertTrue records the outcome of a boolean check and prints a one-line
// result. On failure with fail-fast enabled it returns a *PrivateTestFailure
// when private mode is set and a *TestFailure otherwise, carrying msg.
// Without fail-fast, failures are observational and the return is nil.
func (t *Tracker) AssertTrue(result bool, msg string) error {
	t.testsRun++
	if result {
		t.testsPassed++
		fmt.Fprintln(t.out, "1 test passed.")
		if t.log != nil {
			t.log.Debug("assertion passed", "tests_run", t.testsRun)
		}
		if t.recorder != nil {
			t.recorder.RecordAssertion(true)
		}
		return nil
	}

	fmt.Fprintln(t.out, "1 test failed. "+msg)
	if t.log != nil {
		t.log.Warn("assertion failed", "tests_run", t.testsRun, "detail", msg)
	}
	if t.recorder != nil {
		t.recorder.RecordAssertion(false)
	}
	if t.failFast {
		if t.private {
			return &PrivateTestFailure{Message: msg}
		}
		return &TestFailure{Message: msg}
	}
	return nil
}

// AssertEquals checks actual against expected using the values' natural
// equality: exact for scalars and strings, structural for composites.
func (t *Tracker) AssertEquals(actual, expected interface{}, msg string) error {
	return t.AssertTrue(reflect.DeepEqual(actual, expected), msg)
}

// AssertEqualsTol checks that actual is within tolerance of expected. The
// comparison is strict: a difference exactly equal to tolerance fails.
func (t *Tracker) AssertEqualsTol(actual, expected, tolerance float64, msg string) error {
	return t.AssertTrue(math.Abs(actual-expected) < tolerance, msg)
}

// AssertEqualsHashed checks the SHA-1 digest of actual's canonical string
// form against an expected lowercase hex digest. See Digest for the pinned
// canonical form.
func (t *Tracker) AssertEqualsHashed(actual interface{}, expectedHex, msg string) error {
	return t.AssertEquals(Digest(actual), expectedHex, msg)
}

// PrintStats prints a one-line summary of passed versus run assertions.
func (t *Tracker) PrintStats() {
	fmt.Fprintf(t.out, "%d / %d test(s) passed.\n", t.testsPassed, t.testsRun)
}
