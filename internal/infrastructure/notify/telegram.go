package notify

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"rr-exchange.backend/pkg/logger"
)

// Notifier delivers operational messages to the exchange's moderation channel.
// Delivery is advisory: callers never block on or roll back for a failed send.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// TelegramNotifier sends messages to a fixed Telegram channel via the bot API
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier from a bot token and channel id
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Notify sends the message in the background. Failures are logged and dropped.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) {
	go func() {
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
			logger.Warn(ctx, "Failed to send channel notification", zap.Error(err))
		}
	}()
}

// NopNotifier discards messages. Used when no bot token is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(ctx context.Context, text string) {}
