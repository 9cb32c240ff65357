// cmd/main.go
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"spelling_trainer/internal/config"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spelling-trainer",
		Short:         "Spelling trainer API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadConfig(configPath)
		},
		// サブコマンド省略時は serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "configs", "directory containing config.yaml")

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

// setupLogger は log.level と APP_ENV からロガーを組み立てます。
// APP_ENV=dev なら tint、それ以外は JSON です。
func setupLogger(cfg config.LogConfig) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	logger.Info("Logger initialized", slog.String("APP_ENV", appEnv), slog.String("level", logLevel.Level().String()))
	return logger
}
