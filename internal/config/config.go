// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting of the client.
type Config struct {
	// BaseURL is the interview backend base URL.
	BaseURL string `env:"INTERVU_BASE_URL, default=http://localhost:8080/api/interview"`

	// Timeout bounds a single gateway request. There is no retry policy;
	// this is the only transport-level limit.
	Timeout time.Duration `env:"INTERVU_TIMEOUT, default=30s"`

	// LogFile is where structured logs go. Empty disables logging —
	// the TUI owns stdout/stderr.
	LogFile  string `env:"INTERVU_LOG"`
	LogLevel string `env:"INTERVU_LOG_LEVEL, default=info"`

	Speech SpeechConfig
}

// SpeechConfig controls the optional voice capabilities.
type SpeechConfig struct {
	// Mode: "off" disables narration, "auto" probes for a TTS binary,
	// "command" uses SpeakCmd.
	Mode string `env:"INTERVU_SPEECH, default=auto"`

	// SpeakCmd is the text-to-speech binary (mode=command).
	SpeakCmd string `env:"INTERVU_SPEECH_CMD"`

	// DictateCmd is a speech-to-text command printing transcript lines
	// to stdout. Empty disables dictation.
	DictateCmd string `env:"INTERVU_DICTATION_CMD"`
}

// Load reads a .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
