package check

import "errors"

// TestFailure reports a failed assertion whose details may be shown to the
// subject under test.
type TestFailure struct {
	Message string
}

// Error implements the error interface.
func (e *TestFailure) Error() string {
	if e.Message == "" {
		return "test failed"
	}
	return "test failed: " + e.Message
}

// PrivateTestFailure reports a failed assertion from a private check whose
// details must be withheld from the subject under test. The message is still
// carried so a grading harness can log it.
type PrivateTestFailure struct {
	Message string
}

// Error implements the error interface.
func (e *PrivateTestFailure) Error() string {
	if e.Message == "" {
		return "private test failed"
	}
	return "private test failed: " + e.Message
}

// IsPrivate reports whether err is a PrivateTestFailure. Harnesses use this
// to decide whether failure details may be revealed.
func IsPrivate(err error) bool {
	var pf *PrivateTestFailure
	return errors.As(err, &pf)
}
