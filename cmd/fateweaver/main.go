package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/fateweaver
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "fateweaver",
	Short:         "FateWeaver Discord bot",
	Long:          "Runs the FateWeaver Discord bot and manages its slash commands.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBot,
}

func main() {
	// Configure JSON logging until the configured level is known
	slog.SetDefault(newLogger(os.Stdout, slog.LevelInfo))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the configuration and installs the configured logger.
func loadConfig() (*bot.Config, error) {
	cfg, err := bot.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(newLogger(os.Stdout, cfg.LogLevel))
	return cfg, nil
}
