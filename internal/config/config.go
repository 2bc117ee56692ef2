package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultPlayerColors is the palette handed out to participants in join order.
var DefaultPlayerColors = []string{
	"#FF0000",
	"#FFFF00",
	"#FF3399",
	"#000066",
	"#660099",
	"#99FF9F",
	"#66FFFF",
	"#FF6633",
	"#660000",
	"#000000",
}

type Rules struct {
	MaxPlayers      int `json:"maxPlayers"`
	HostThreshold   int `json:"hostThreshold"`
	PlayerThreshold int `json:"playerThreshold"`
	ShufflePasses   int `json:"shufflePasses"`
	MaxHandSize     int `json:"maxHandSize"`
	DealRounds      int `json:"dealRounds"`
}

type Config struct {
	HTTPAddr      string
	AllowedOrigin string
	FirstRoomID   int
	LogLevel      string
	LogFormat     string
	Rules         Rules
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// DefaultRules are the house rules the game was designed around.
func DefaultRules() Rules {
	return Rules{
		MaxPlayers:      10,
		HostThreshold:   15,
		PlayerThreshold: 16,
		ShufflePasses:   1,
		MaxHandSize:     5,
		DealRounds:      2,
	}
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	def := DefaultRules()
	rules := Rules{
		MaxPlayers:      getenvInt("MAX_PLAYERS", def.MaxPlayers),
		HostThreshold:   getenvInt("HOST_THRESHOLD", def.HostThreshold),
		PlayerThreshold: getenvInt("PLAYER_THRESHOLD", def.PlayerThreshold),
		ShufflePasses:   getenvInt("SHUFFLE_PASSES", def.ShufflePasses),
		MaxHandSize:     def.MaxHandSize,
		DealRounds:      def.DealRounds,
	}
	if rules.MaxPlayers <= 0 || rules.MaxPlayers > len(DefaultPlayerColors) {
		rules.MaxPlayers = def.MaxPlayers
	}
	if rules.ShufflePasses <= 0 {
		rules.ShufflePasses = def.ShufflePasses
	}

	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":2409"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "*"),
		FirstRoomID:   getenvInt("FIRST_ROOM_ID", 1000),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
		Rules:         rules,
	}
}

// NewLogger builds the process logger from the config.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
