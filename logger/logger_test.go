package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewAppliesLevel(t *testing.T) {
	log := New(int(zerolog.WarnLevel), "json", false)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log = New(int(zerolog.DebugLevel), "console", false)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestWriterForFormat(t *testing.T) {
	_, console := writerFor("console").(zerolog.ConsoleWriter)
	assert.True(t, console)

	_, console = writerFor("json").(zerolog.ConsoleWriter)
	assert.False(t, console, "json output must stay machine-readable")
}

func TestComponentTagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf)

	log := Component(root, "reconciler")
	log.Info().Msg("pass finished")

	assert.Contains(t, buf.String(), `"component":"reconciler"`)
	assert.Contains(t, buf.String(), "pass finished")
}
