package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// notifyManager delivers text to the manager chat, retrying transient
// failures. The caller reports a returned error back to the user, delivery
// problems are never silent.
func (b *Bot) notifyManager(ctx context.Context, text string) error {
	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 15 * time.Second
	retryPolicy.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(
		func() error {
			_, err := b.bot.Send(tgbotapi.NewMessage(b.cfg.ManagerChatID, text))
			return err
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			b.logger.Warn("Manager notification failed, retrying",
				zap.Duration("next_attempt_in", duration),
				zap.Error(err))
		},
	)
	if err != nil {
		b.logger.Error("Failed to notify manager", zap.Error(err))
		return fmt.Errorf("failed to notify manager: %w", err)
	}
	return nil
}

// contactManager forwards the current selections to the manager and shows
// the customer the manager's contact card. The dialogue step stays put.
func (b *Bot) contactManager(ctx context.Context, s *Session) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📞 Запит менеджеру з чату %d\n", s.ChatID))
	if lines := s.Ledger.Render(); len(lines) > 0 {
		sb.WriteString("\nОбрано на цей момент:\n")
		for _, line := range lines {
			sb.WriteString(line + "\n")
		}
	}
	for _, sel := range s.Services.Selected {
		sb.WriteString(fmt.Sprintf("%s: %s\n", sel.Service, sel.Option))
	}

	if err := b.notifyManager(ctx, sb.String()); err != nil {
		b.send(s.ChatID, "Не вдалося надіслати менеджеру, спробуйте ще раз.")
		return
	}
	b.send(s.ChatID, "Передали ваш запит менеджеру!\n"+b.managerCard(s.City))
}

// sendDocument ships a generated report file to a chat.
func (b *Bot) sendDocument(chatID int64, path, caption string) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	if _, err := b.bot.Send(doc); err != nil {
		b.logger.Error("Failed to send document",
			zap.Int64("chat_id", chatID),
			zap.String("path", path),
			zap.Error(err))
	}
}
