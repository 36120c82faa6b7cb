package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("slot created", "trainer_id", 7)

	output := buf.String()
	assert.Contains(t, output, "slot created")
	assert.Contains(t, output, "trainer_id")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Errorf("booking failed: %v", "room taken")

	assert.Contains(t, buf.String(), "booking failed: room taken")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug("conflict check passed")

	assert.Contains(t, buf.String(), "conflict check passed")
}
