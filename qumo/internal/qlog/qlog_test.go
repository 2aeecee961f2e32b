package qlog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWarnWritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf))

	log.Warn("normalize: lambda below floor", Str("component", "normalize"), Float64("lambda", 0.03), Err(errors.New("boom")))

	out := buf.String()
	require.Contains(t, out, "normalize: lambda below floor")
	require.Contains(t, out, "component")
	require.Contains(t, out, "lambda")
}

func TestInfoWritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf))

	log.Info("engine selected", Str("engine", "cpu"), Int("threads", 4))

	out := buf.String()
	require.Contains(t, out, "engine selected")
	require.True(t, strings.Contains(out, "threads"))
}

func TestDiscardIsSafeOnNilAndZeroValue(t *testing.T) {
	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Warn("should be dropped")
		nilLogger.Info("should be dropped")
	})

	log := Discard()
	require.NotPanics(t, func() {
		log.Warn("dropped", Str("k", "v"))
	})
}
