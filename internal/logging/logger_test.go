package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Info().Str("dir", "docs").Msg("listing")
	assert.Contains(t, buf.String(), "listing")
	assert.Contains(t, buf.String(), "dir=docs")
}

func TestLoggerAsWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	line := []byte("GET /view 200\n")
	n, err := l.Write(line)
	assert.NoError(t, err)
	assert.Equal(t, len(line), n)
	assert.Contains(t, buf.String(), "GET /view 200")
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	assert.Equal(t, zerolog.DebugLevel, SetLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, SetLevel("chatty"))
	assert.Equal(t, zerolog.InfoLevel, SetLevel(""))
}
