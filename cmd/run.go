package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/app"
	"github.com/abhisek/intervu/internal/config"
	"github.com/abhisek/intervu/internal/gateway"
	"github.com/abhisek/intervu/internal/logging"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/speech"
)

// runApp loads configuration, wires dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	gw := buildGateway(cfg, log)

	speaker := buildSpeaker(cfg, log)
	recognizer := buildRecognizer(cfg)

	ctrl := session.NewController(gw,
		session.WithSpeaker(speaker),
		session.WithLogger(log),
	)
	log.Info().Str("session_id", ctrl.SessionID()).Str("base_url", cfg.BaseURL).Msg("session started")

	return app.Run(app.Options{
		Controller: ctrl,
		Recognizer: recognizer,
	})
}

// loadConfig reads env config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	if u, _ := cmd.Flags().GetString("base-url"); u != "" {
		cfg.BaseURL = u
	}
	return cfg, nil
}

func buildGateway(cfg *config.Config, log zerolog.Logger) gateway.Gateway {
	client := gateway.NewClient(cfg.BaseURL, gateway.WithTimeout(cfg.Timeout))
	return gateway.WithLogging(client, log)
}

// buildSpeaker picks a narration backend per config. Absence degrades to
// silence, never to an error.
func buildSpeaker(cfg *config.Config, log zerolog.Logger) speech.Speaker {
	switch cfg.Speech.Mode {
	case "off":
		return speech.NoopSpeaker{}
	case "command":
		spk, err := speech.NewCommandSpeaker(cfg.Speech.SpeakCmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Narration unavailable:", err)
			return speech.NoopSpeaker{}
		}
		return spk
	default: // auto
		spk, err := speech.NewCommandSpeaker("")
		if err != nil {
			log.Debug().Err(err).Msg("no TTS binary found, narration disabled")
			return speech.NoopSpeaker{}
		}
		return spk
	}
}

func buildRecognizer(cfg *config.Config) speech.Recognizer {
	if cfg.Speech.DictateCmd == "" {
		return speech.NoopRecognizer{}
	}
	rec, err := speech.NewCommandRecognizer(cfg.Speech.DictateCmd)
	if err != nil {
		return speech.NoopRecognizer{}
	}
	return rec
}
