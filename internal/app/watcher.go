package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
)

// Sink receives operator messages from the watcher.
type Sink interface {
	Notify(ctx context.Context, kind notification.Kind, text string) DeliveryResult
}

// Waiter paces the loop between cycles.
type Waiter interface {
	Period() time.Duration
	Wait(ctx context.Context) error
}

// Watcher polls the homework API and reports status changes and failures.
// It is not safe for concurrent use: one goroutine owns the cursor and both
// de-duplication memories.
type Watcher struct {
	client homework.Client
	sink   Sink
	waiter Waiter
	logger *logrus.Entry
	now    func() time.Time

	cursor           int64
	lastMessage      string
	lastErrorMessage string
}

func NewWatcher(client homework.Client, sink Sink, waiter Waiter, logger *logrus.Entry) *Watcher {
	return &Watcher{
		client: client,
		sink:   sink,
		waiter: waiter,
		logger: logger,
		now:    time.Now,
	}
}

// Cursor returns the from_date used for the next request.
func (w *Watcher) Cursor() int64 {
	return w.cursor
}

// Start announces the polling period and sets the cursor to the current time.
func (w *Watcher) Start(ctx context.Context) {
	seconds := int64(w.waiter.Period() / time.Second)
	w.sink.Notify(ctx, notification.KindInfo,
		fmt.Sprintf("Проверяю статус домашней работы каждые %d секунд", seconds))
	w.cursor = w.now().Unix()
}

// Run starts the watcher and polls until ctx is cancelled. It returns the
// context error; no notification is sent on shutdown.
func (w *Watcher) Run(ctx context.Context) error {
	w.Start(ctx)
	for {
		w.RunCycle(ctx)
		if err := w.waiter.Wait(ctx); err != nil {
			return err
		}
	}
}

// RunCycle performs a single poll. Only the first homework of the response
// is inspected: several changes within one poll window collapse into the
// message for the most recent one.
func (w *Watcher) RunCycle(ctx context.Context) {
	if err := w.poll(ctx); err != nil {
		if ctx.Err() != nil {
			w.logger.WithError(err).Debug("Poll interrupted by shutdown")
			return
		}
		w.reportFailure(ctx, err)
	}
}

func (w *Watcher) poll(ctx context.Context) error {
	w.logger.Infof("Timestamp for checking %d", w.cursor)
	raw, err := w.client.GetStatuses(ctx, w.cursor)
	if err != nil {
		return err
	}

	resp, err := homework.CheckResponse(raw)
	if err != nil {
		return err
	}
	// Advanced before parsing: a homework that fails to parse is not re-fetched.
	w.cursor = resp.CurrentDate
	w.logger.Infof("Timestamp for next checking %d", w.cursor)

	if len(resp.Homeworks) == 0 {
		w.logger.Debug("No homework status changes")
		return nil
	}

	hw := resp.Homeworks[0]
	w.logger.WithFields(logrus.Fields{
		"homework_name": hw.Name,
		"lesson_name":   hw.LessonName,
		"status":        hw.Status,
	}).Info("Homework received")

	message, err := homework.ParseStatus(hw)
	if err != nil {
		return err
	}
	if message == w.lastMessage {
		w.logger.Debug("Homework status message unchanged, not sending")
		return nil
	}
	w.sink.Notify(ctx, notification.KindStatus, message)
	w.lastMessage = message
	return nil
}

// reportFailure sends a failure once per distinct text. The memory is never
// cleared, so the same failure recurring after a recovery stays silent.
func (w *Watcher) reportFailure(ctx context.Context, err error) {
	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	w.logger.Error(message)
	if message == w.lastErrorMessage {
		return
	}
	w.sink.Notify(ctx, notification.KindError, message)
	w.lastErrorMessage = message
}
