package notification

import (
	"context"
	"fmt"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts reservation lifecycle messages to a single
// operations channel. Without a token it stays disabled and only logs.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, l *domain.Listing) {
	text := fmt.Sprintf(
		"*New reservation request*\n\nListing: %s\nParticipants: %d\nContact: %s",
		l.Title, r.ParticipantsCount, r.ContactName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationApproved(ctx context.Context, r *domain.Reservation, l *domain.Listing) {
	text := fmt.Sprintf(
		"*Reservation approved*\n\nListing: %s\nParticipants: %d",
		l.Title, r.ParticipantsCount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationRejected(ctx context.Context, r *domain.Reservation, l *domain.Listing) {
	text := fmt.Sprintf(
		"*Reservation rejected*\n\nListing: %s\nParticipants: %d",
		l.Title, r.ParticipantsCount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation, l *domain.Listing) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\nListing: %s\nParticipants: %d",
		l.Title, r.ParticipantsCount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
