// Package main is the entry point for the homework status bot.
//
// Usage:
//
//	homework-bot               # poll the homework API and notify Telegram
//	homework-bot check-config  # validate environment without starting
//	homework-bot version       # show version info
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.version=1.0.0".
var version = "dev"

const journalStartupTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "homework-bot",
	Short: "Telegram notifications about homework review status",
	Long: `homework-bot polls the Practicum homework statuses API and sends a
Telegram message whenever the review status of the latest homework changes.

Required environment (or .env file):
  PRACTICUM_TOKEN   API token for the homework statuses API
  TELEGRAM_TOKEN    bot token
  TELEGRAM_CHAT_ID  chat to notify`,
	SilenceUsage: true,
	RunE:         runBot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "homework-bot %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("%v. Program forcibly stopped.", err)
	}
	logger.Init(cfg)
	logger.Component("main").WithField("environment", cfg.Environment).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return run(ctx, cfg)
}

// run wires the bot from a loaded configuration and polls until ctx is done.
func run(ctx context.Context, cfg *config.AppConfig) error {
	mainLogger := logger.Component("main")

	var journal notification.Repository
	if cfg.DatabaseURL != "" {
		repo, closeDB, err := openJournal(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Error("Delivery journal disabled")
		} else {
			defer closeDB()
			journal = repo
			mainLogger.Info("Delivery journal enabled")
		}
	}

	bot, err := telegram.NewSendOnlyBot(cfg.TelegramToken, cfg.TelegramAPIURL)
	if err != nil {
		return err
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, journal, logger.Component("notifier"))
	client := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout, logger.Component("practicum"))
	watcher := app.NewWatcher(client, notifier, scheduler.NewInterval(cfg.RetryPeriod), logger.Component("watcher"))

	mainLogger.Infof("Polling %s every %s", cfg.Endpoint, cfg.RetryPeriod)
	err = watcher.Run(ctx)
	if errors.Is(err, context.Canceled) {
		mainLogger.Info("Bot interrupted manually")
		return nil
	}
	return err
}

// openJournal connects to Postgres and prepares the deliveries table.
func openJournal(ctx context.Context, dsn string) (*idb.PostgresJournalRepository, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, journalStartupTimeout)
	defer cancel()

	db, err := idb.NewPostgresConnection(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	repo := idb.NewPostgresJournalRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() { db.Close() }, nil
}
