package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command, args string) {
	switch command {
	case "start":
		session := b.sessions.Get(ctx, chatID)
		b.resetToCity(ctx, session, "")

	case "help":
		b.handleHelp(chatID)

	case "users", "export", "stats", "all", "hello":
		if !b.isAdmin(chatID) {
			b.send(chatID, "Команда доступна лише менеджерам.")
			return
		}
		b.handleAdminCommand(ctx, chatID, command, args)

	default:
		b.send(chatID, "Невідома команда. Натисніть /start, щоб почати.")
	}
}

func (b *Bot) handleHelp(chatID int64) {
	b.send(chatID, `Доступні команди:
/start - Почати планування свята
/help - Показати цю довідку

Якщо виникли питання, скористайтеся кнопкою "`+BtnManager+`".`)
}

func (b *Bot) isAdmin(chatID int64) bool {
	if chatID == b.cfg.ManagerChatID {
		return true
	}
	for _, id := range b.cfg.AdminIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

func (b *Bot) handleAdminCommand(ctx context.Context, chatID int64, command, args string) {
	switch command {
	case "users":
		path, err := b.storage.ExportUsersToExcel(ctx)
		if err != nil {
			b.logger.Error("Failed to export users", zap.Error(err))
			b.send(chatID, "Не вдалося сформувати звіт.")
			return
		}
		b.sendDocument(chatID, path, "📊 Користувачі бота")

	case "export":
		path, err := b.storage.ExportLeadsToExcel(ctx)
		if err != nil {
			b.logger.Error("Failed to export leads", zap.Error(err))
			b.send(chatID, "Не вдалося сформувати звіт.")
			return
		}
		b.sendDocument(chatID, path, "📊 Замовлення")

	case "stats":
		stats, err := b.storage.LeadStats(ctx)
		if err != nil {
			b.logger.Error("Failed to load stats", zap.Error(err))
			b.send(chatID, "Не вдалося отримати статистику.")
			return
		}
		b.send(chatID, fmt.Sprintf(
			"📈 Статистика\nКористувачів: %d\nЗамовлень: %d\nЗа сьогодні: %d\nЗа тиждень: %d",
			stats.Users, stats.Leads, stats.LeadsToday, stats.LeadsWeek))

	case "all":
		b.handleBroadcast(ctx, chatID, args)

	case "hello":
		b.handleDirectMessage(ctx, chatID, args)
	}
}

// handleBroadcast sends a text to every known user.
func (b *Bot) handleBroadcast(ctx context.Context, chatID int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		b.send(chatID, "Використання: /all <текст>")
		return
	}

	users, err := b.storage.ListUsers(ctx)
	if err != nil {
		b.logger.Error("Failed to list users for broadcast", zap.Error(err))
		b.send(chatID, "Не вдалося отримати список користувачів.")
		return
	}

	sent := 0
	for _, u := range users {
		if u.ChatID == chatID {
			continue
		}
		if _, err := b.bot.Send(tgbotapi.NewMessage(u.ChatID, text)); err != nil {
			b.logger.Warn("Broadcast delivery failed",
				zap.Int64("chat_id", u.ChatID),
				zap.Error(err))
			continue
		}
		sent++
	}
	b.send(chatID, fmt.Sprintf("Надіслано %d з %d користувачам.", sent, len(users)))
}

// handleDirectMessage sends a text to a single chat: /hello <chat_id> <текст>.
func (b *Bot) handleDirectMessage(ctx context.Context, chatID int64, args string) {
	parts := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(parts) != 2 {
		b.send(chatID, "Використання: /hello <chat_id> <текст>")
		return
	}
	target, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		b.send(chatID, "Некоректний chat_id: "+parts[0])
		return
	}

	if _, err := b.bot.Send(tgbotapi.NewMessage(target, parts[1])); err != nil {
		b.logger.Error("Direct message delivery failed",
			zap.Int64("target", target),
			zap.Error(err))
		b.send(chatID, "Не вдалося доставити повідомлення.")
		return
	}
	b.send(chatID, "Надіслано ✅")
}
