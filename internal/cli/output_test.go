package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockResult struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (m mockResult) QuietString() string { return m.Name }
func (m mockResult) HumanString() string { return fmt.Sprintf("%s has %d", m.Name, m.Count) }

type plainResult struct {
	Name string
}

func newFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)
	require.NoError(t, f.Success(mockResult{Name: "people", Count: 3}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "people", data["name"])
	assert.Equal(t, float64(3), data["count"])
}

func TestOutputFormatter_Success_JSONBeatsQuiet(t *testing.T) {
	f, out, _ := newFormatter(true, true)
	require.NoError(t, f.Success(mockResult{Name: "people"}))
	assert.True(t, json.Valid(out.Bytes()))
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	require.NoError(t, f.Success(mockResult{Name: "people", Count: 3}))
	assert.Equal(t, "people\n", out.String())
}

func TestOutputFormatter_Success_QuietFallsBackToHuman(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	require.NoError(t, f.Success(plainResult{Name: "x"}))
	assert.Contains(t, out.String(), "Name:x")
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	require.NoError(t, f.Success(mockResult{Name: "people", Count: 3}))
	assert.Equal(t, "people has 3\n", out.String())
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)
	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "missing", "try again"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "try again", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newFormatter(false, false)
	require.NoError(t, f.Error("BAD", "went wrong"))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: went wrong\n", errOut.String())
	assert.False(t, strings.Contains(errOut.String(), "Suggestion"))
}

// ============================================================================
// Exit codes
// ============================================================================

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(base))
	assert.Equal(t, ExitNotFound, ExitCode(Exit(ExitNotFound, base)))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", Exit(ExitValidation, base))))
	assert.ErrorIs(t, Exit(ExitUsage, base), base)
}

func TestFail(t *testing.T) {
	f, _, errOut := newFormatter(false, false)
	err := Fail(f, ExitUsage, "BAD_SLOT", errors.New("from must be a number"), "use 0-based slots")

	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, errOut.String(), "from must be a number")
	assert.Contains(t, errOut.String(), "use 0-based slots")
}

func TestParseSlot(t *testing.T) {
	n, err := ParseSlot("from", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseSlot("from", "x")
	assert.ErrorContains(t, err, "from must be a number")
}
