package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := Out
	Out = &buf
	t.Cleanup(func() { Out = previous })
	return &buf
}

func TestWithSpinnerAndDuration(t *testing.T) {
	t.Run("should print the done message with elapsed time", func(t *testing.T) {
		// Arrange
		out := captureOut(t)
		called := false

		// Act
		err := WithSpinnerAndDuration("Listing repositories...", "Repositories listed", func() error {
			called = true
			return nil
		})

		// Assert
		require.NoError(t, err)
		assert.True(t, called)
		assert.Contains(t, out.String(), "Repositories listed")
		assert.Contains(t, out.String(), "(")
	})

	t.Run("should return the error and print nothing", func(t *testing.T) {
		out := captureOut(t)
		want := errors.New("rate limited")

		err := WithSpinnerAndDuration("Listing repositories...", "Repositories listed", func() error {
			return want
		})

		assert.ErrorIs(t, err, want)
		assert.NotContains(t, out.String(), "Repositories listed")
	})
}

func TestPrintErrorWithSuggestion(t *testing.T) {
	t.Run("should print the message and the suggestion", func(t *testing.T) {
		out := captureOut(t)

		PrintErrorWithSuggestion("a repository is required", "Example: matereadme analyze octocat/hello-world")

		assert.Contains(t, out.String(), "a repository is required")
		assert.Contains(t, out.String(), "octocat/hello-world")
	})

	t.Run("should omit an empty suggestion", func(t *testing.T) {
		out := captureOut(t)

		PrintErrorWithSuggestion("boom", "")

		assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
	})
}
