package monitoring

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureSlog swaps the default logger for one writing into a buffer and
// restores it via t.Cleanup.
func captureSlog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})
	return &buf
}

func TestAlert(t *testing.T) {
	t.Run("should log the error even when error tracking is not initialized", func(t *testing.T) {
		buf := captureSlog(t)

		Alert("could not save project", fmt.Errorf("connection refused"))

		assert.Contains(t, buf.String(), "could not save project")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("should not panic on a nil error", func(t *testing.T) {
		captureSlog(t)

		assert.NotPanics(t, func() {
			Alert("something went wrong", nil)
		})
	})
}

func TestRecoverAndAlert(t *testing.T) {
	buf := captureSlog(t)

	RecoverAndAlert("goroutine stack", fmt.Errorf("index out of range"))

	assert.Contains(t, buf.String(), "recovered from panic")
	assert.Contains(t, buf.String(), "index out of range")
}
