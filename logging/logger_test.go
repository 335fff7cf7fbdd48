package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor/models"
)

func TestConsoleWriterUsesLogfmt(t *testing.T) {
	cfg := consoleWriter()
	assert.Equal(t, models.LogWriterTypeConsole, cfg.Type)
	assert.Equal(t, models.OutputFormatLogfmt, cfg.OutputType)
	assert.Equal(t, "15:04:05", cfg.TimeFormat)
}

func TestInitLoggerReplacesGlobal(t *testing.T) {
	l := InitLogger("debug")
	assert.NotNil(t, l)
	assert.Same(t, l, GetLogger())
	assert.Same(t, l, OrDefault(nil))
	assert.NotPanics(t, func() { l.Debug().Str("k", "v").Msg("logger ready") })
}
