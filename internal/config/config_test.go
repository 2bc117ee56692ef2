package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":2409", cfg.HTTPAddr)
	assert.Equal(t, 1000, cfg.FirstRoomID)
	assert.Equal(t, DefaultRules(), cfg.Rules)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("MAX_PLAYERS", "4")
	t.Setenv("SHUFFLE_PASSES", "3")
	t.Setenv("FIRST_ROOM_ID", "1")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 4, cfg.Rules.MaxPlayers)
	assert.Equal(t, 3, cfg.Rules.ShufflePasses)
	assert.Equal(t, 1, cfg.FirstRoomID)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MAX_PLAYERS", "50")
	t.Setenv("SHUFFLE_PASSES", "zero")

	cfg := Load()

	assert.Equal(t, 10, cfg.Rules.MaxPlayers, "more players than colors falls back")
	assert.Equal(t, 1, cfg.Rules.ShufflePasses)
}

func TestNewLogger(t *testing.T) {
	cfg := Config{LogLevel: "debug", LogFormat: "json"}
	log := cfg.NewLogger()

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}
