package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewSendOnlyBot creates a bot that is only used to send messages. No poller
// is started and the token is not checked until the first request.
func NewSendOnlyBot(token, apiURL string) (*telebot.Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		URL:     apiURL,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return b, nil
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(telebot.ChatID(chatID), text, options)
	return err
}
