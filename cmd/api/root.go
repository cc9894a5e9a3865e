package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/pkg/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ascend",
	Short: "Habit, training and nutrition tracker API",
	Long: `Ascend tracks daily habits, gym sessions, steps, reflections and nutrition,
turning them into XP, streaks, training load, symmetry, recovery and compliance.

  $ ascend migrate    # apply database migrations
  $ ascend serve      # start the HTTP API

Settings are read from ./configs/.env or the environment.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.New()
		setupLogger(cfg.GetString("LOG_LEVEL"), cfg.GetString("APP_ENV"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func setupLogger(level, env string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func dbConfig() *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
}
