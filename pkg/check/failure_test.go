package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestFailure_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"with message", &TestFailure{Message: "got 4"}, "test failed: got 4"},
		{"empty message", &TestFailure{}, "test failed"},
		{"private with message", &PrivateTestFailure{Message: "got 4"}, "private test failed: got 4"},
		{"private empty message", &PrivateTestFailure{}, "private test failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsPrivate(t *testing.T) {
	assert.True(t, IsPrivate(&PrivateTestFailure{Message: "x"}))
	assert.False(t, IsPrivate(&TestFailure{Message: "x"}))
	assert.False(t, IsPrivate(errors.New("plain error")))
	assert.False(t, IsPrivate(nil))
}

func TestIsPrivate_Wrapped(t *testing.T) {
	inner := &PrivateTestFailure{Message: "hidden"}
	wrapped := fmt.Errorf("harness: %w", inner)

	assert.True(t, IsPrivate(wrapped))

	var pf *PrivateTestFailure
	assert.True(t, errors.As(wrapped, &pf))
	assert.Equal(t, "hidden", pf.Message)
}
