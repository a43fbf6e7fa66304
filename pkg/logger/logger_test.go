package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	return <-outputChan
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	assert.NotNil(t, logger)
	assert.IsType(t, &zerologLogger{}, logger)
}

func TestNewLoggerWithLevel_UnknownFallsBackToInfo(t *testing.T) {
	output := captureOutput(func() {
		logger := NewLoggerWithLevel("nonsense")
		logger.Debug("hidden")
		logger.Info("visible")
	})

	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "visible")
}

func TestDebugLevelEmitsDebug(t *testing.T) {
	output := captureOutput(func() {
		logger := NewLoggerWithLevel("debug")
		logger.Debug("debug message")
	})

	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, `"level":"debug"`)
}

func TestWarnLevelSuppressesInfo(t *testing.T) {
	output := captureOutput(func() {
		logger := NewLoggerWithLevel("warn")
		logger.Info("info message")
		logger.Warn("warn message")
	})

	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
}

func TestWithField(t *testing.T) {
	output := captureOutput(func() {
		logger := NewLoggerWithLevel("info")
		logger.WithField("table", "events").Info("migrating")
	})

	assert.Contains(t, output, `"table":"events"`)
	assert.Contains(t, output, "migrating")
}

func TestWithFields(t *testing.T) {
	output := captureOutput(func() {
		logger := NewLoggerWithLevel("info")
		logger.WithFields(map[string]interface{}{
			"version": "6.0",
			"count":   3,
		}).Info("migrations pending")
	})

	assert.Contains(t, output, `"version":"6.0"`)
	assert.Contains(t, output, `"count":3`)
	assert.Contains(t, output, "migrations pending")
}
