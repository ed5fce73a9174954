package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/keebsxd/timeline-app/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramAnnouncer posts newly published timeline events to a channel.
// With an empty token or chat id it stays disabled and only logs.
type TelegramAnnouncer struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAnnouncer(token string, chatID int64, logger logger.Logger) (*TelegramAnnouncer, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram announcer disabled (no token or chat id)")
		return &TelegramAnnouncer{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAnnouncer{bot: bot, chatID: chatID, logger: logger}, nil
}

func (a *TelegramAnnouncer) AnnounceEventCreated(ctx context.Context, e *domain.Event) {
	text := fmt.Sprintf("*New timeline event*\n\n%s\nStarts: %s",
		e.Title, e.StartDate.Format("02.01.2006 15:04"))
	if e.Location != nil && *e.Location != "" {
		text += "\nLocation: " + *e.Location
	}

	a.send(ctx, text)
}

func (a *TelegramAnnouncer) send(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("announcement skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("announcement skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send telegram announcement",
			logger.Int64("chat_id", a.chatID),
			logger.String("error", err.Error()),
		)
	}
}
