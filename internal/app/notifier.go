package app

import (
	"context"
	"database/sql"
	"time"

	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

const defaultJournalTimeout = 5 * time.Second

// DeliveryResult reports whether a notification reached Telegram.
type DeliveryResult struct {
	Sent bool
	Err  error
}

// Notifier delivers operator messages to a single Telegram chat. Delivery is
// best-effort: failures are logged and returned as a DeliveryResult, never
// as an error.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         int64
	journal        notification.Repository // optional
	journalTimeout time.Duration
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, chatID int64, journal notification.Repository, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		journal:        journal,
		journalTimeout: defaultJournalTimeout,
		logger:         logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, kind notification.Kind, text string) DeliveryResult {
	logCtx := n.logger.WithFields(logrus.Fields{"chat_id": n.chatID, "kind": kind})

	res := DeliveryResult{Sent: true}
	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		res = DeliveryResult{Err: err}
		logCtx.WithError(err).Errorf("Failed to send message to Telegram: '%s'", text)
	} else {
		logCtx.Debugf("Message sent to Telegram: '%s'", text)
	}

	n.record(ctx, kind, text, res)
	return res
}

func (n *Notifier) record(ctx context.Context, kind notification.Kind, text string, res DeliveryResult) {
	if n.journal == nil {
		return
	}
	d := &notification.Delivery{
		ChatID: n.chatID,
		Kind:   kind,
		Text:   text,
		Result: notification.ResultSent,
	}
	if !res.Sent {
		d.Result = notification.ResultFailed
		d.Error = sql.NullString{String: res.Err.Error(), Valid: true}
	}
	ctx, cancel := context.WithTimeout(ctx, n.journalTimeout)
	defer cancel()
	if err := n.journal.Record(ctx, d); err != nil {
		n.logger.WithError(err).Warn("Failed to record notification delivery")
	}
}
