package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("unknown"))
}

func TestLevelToggles(t *testing.T) {
	SetDebugLevel()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	SetInfoLevel()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewLoggerWithConfig_FileRotation(t *testing.T) {
	cfg := DefaultLogConfig()
	cfg.Console = false
	cfg.FilePath = filepath.Join(t.TempDir(), "logs", "tradebook.log")

	logger := NewLoggerWithConfig(cfg)
	logger.Info().Msg("startup")

	// The log directory is created eagerly.
	assert.DirExists(t, filepath.Dir(cfg.FilePath))
}

func TestWithSymbol(t *testing.T) {
	logger := WithSymbol(zerolog.Nop(), "NIFTY")
	// The derived logger must stay usable.
	logger.Info().Msg("ok")
}
