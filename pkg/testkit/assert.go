package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertCalled checks how many times a step matched.
func AssertCalled(t *testing.T, step *Step, want int) {
	t.Helper()
	assert.Equal(t, want, step.Calls(),
		"%s %s call count mismatch", step.Method, step.Path)
}

// AssertNotCalled checks that a step never matched — the usual assertion
// after a validation failure or a cancelled debounce.
func AssertNotCalled(t *testing.T, step *Step) {
	t.Helper()
	AssertCalled(t, step, 0)
}

// LastBody unmarshals the step's most recent request body into dest.
func LastBody(t *testing.T, step *Step, dest interface{}) {
	t.Helper()
	last := step.Last()
	require.NotNil(t, last, "%s %s was never called", step.Method, step.Path)
	require.NoError(t, json.Unmarshal(last.Body, dest),
		"%s %s request body is not valid JSON: %s", step.Method, step.Path, last.Body)
}
