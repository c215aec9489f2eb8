package app

import (
	"context"
	"io"
	"time"

	"homework_status_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type sentMessage struct {
	kind notification.Kind
	text string
}

type fakeSink struct {
	sent []sentMessage
}

func (s *fakeSink) Notify(ctx context.Context, kind notification.Kind, text string) DeliveryResult {
	s.sent = append(s.sent, sentMessage{kind: kind, text: text})
	return DeliveryResult{Sent: true}
}

func (s *fakeSink) ofKind(kind notification.Kind) []string {
	var out []string
	for _, m := range s.sent {
		if m.kind == kind {
			out = append(out, m.text)
		}
	}
	return out
}

// fakeClient replays one scripted answer per call; the last one repeats.
type fakeClient struct {
	answers []answer
	calls   []int64
}

type answer struct {
	raw any
	err error
}

func (c *fakeClient) GetStatuses(ctx context.Context, fromDate int64) (any, error) {
	c.calls = append(c.calls, fromDate)
	i := len(c.calls) - 1
	if i >= len(c.answers) {
		i = len(c.answers) - 1
	}
	return c.answers[i].raw, c.answers[i].err
}

// fakeWaiter lets the loop run a fixed number of cycles.
type fakeWaiter struct {
	cycles int
	waits  int
}

func (w *fakeWaiter) Period() time.Duration { return 600 * time.Second }

func (w *fakeWaiter) Wait(ctx context.Context) error {
	w.waits++
	if w.waits >= w.cycles {
		return context.Canceled
	}
	return nil
}

type fakeTelegram struct {
	chatIDs []int64
	texts   []string
	err     error
}

func (f *fakeTelegram) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.texts = append(f.texts, text)
	return f.err
}

type fakeJournal struct {
	deliveries []*notification.Delivery
	err        error
}

func (j *fakeJournal) Record(ctx context.Context, d *notification.Delivery) error {
	j.deliveries = append(j.deliveries, d)
	return j.err
}

// blockingJournal never answers until its context is done.
type blockingJournal struct{}

func (blockingJournal) Record(ctx context.Context, d *notification.Delivery) error {
	<-ctx.Done()
	return ctx.Err()
}
