package bot

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"svyato-bot/internal/catalog"
	"svyato-bot/internal/config"
	"svyato-bot/internal/storage"
	"svyato-bot/pkg/redis"
)

type Bot struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	sessions *SessionStore
	storage  *storage.Storage
	catalog  *catalog.Catalog
	cfg      *config.Config
	handlers map[string]func(context.Context, *Session, string)

	// locks serializes messages within one chat; distinct chats proceed
	// concurrently.
	locks sync.Map
}

func New(
	cfg *config.Config,
	cat *catalog.Catalog,
	redisClient *redis.Client,
	pgStorage *storage.Storage,
	logger *zap.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := &Bot{
		bot:      botAPI,
		logger:   logger,
		sessions: NewSessionStore(redisClient, logger),
		storage:  pgStorage,
		catalog:  cat,
		cfg:      cfg,
	}

	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	b.handlers = map[string]func(context.Context, *Session, string){
		StepCity:          b.handleCity,
		StepEventType:     b.handleEventType,
		StepFamilyTrip:    b.handleFamilyTrip,
		StepFamilyAddOn:   b.handleFamilyAddOn,
		StepEventOther:    b.handleEventOther,
		StepLocation:      b.handleLocation,
		StepLocationOther: b.handleLocationOther,
		StepTheme:         b.handleTheme,
		StepSubTheme:      b.handleSubTheme,
		StepThemeDetails:  b.handleThemeDetails,
		StepFormat:        b.handleFormat,
		StepHourly:        b.handleHourly,
		StepPackage:       b.handlePackage,
		StepQuest:         b.handleQuest,
		StepQuestDuration: b.handleQuestDuration,
		StepFinal:         b.handleFinal,
		StepAddOns:        b.handleAddOns,
		StepAddOnOption:   b.handleAddOnOption,
		StepDistrict:      b.handleDistrict,
		StepSummary:       b.handleSummary,
		StepPhoneContact:  b.handlePhoneContact,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update := <-updates:
			if update.Message == nil {
				continue
			}
			msg := update.Message
			go func() {
				lock := b.chatLock(msg.Chat.ID)
				lock.Lock()
				defer lock.Unlock()
				b.processMessage(ctx, msg)
			}()
		}
	}
}

func (b *Bot) chatLock(chatID int64) *sync.Mutex {
	lock, _ := b.locks.LoadOrStore(chatID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	b.registerVisit(ctx, msg)

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command(), msg.CommandArguments())
		return
	}

	session := b.sessions.Get(ctx, chatID)

	if msg.Contact != nil {
		b.handleSharedContact(ctx, session, msg.Contact)
		return
	}

	// Back and manager shortcuts work on every step.
	switch msg.Text {
	case BtnBack:
		applyBack(session)
		b.promptStep(ctx, session)
		b.saveSession(ctx, session)
		return
	case BtnManager:
		b.contactManager(ctx, session)
		return
	}

	handler, ok := b.handlers[session.Step]
	if !ok {
		b.logger.Warn("Unknown session step, restarting dialogue",
			zap.Int64("chat_id", chatID),
			zap.String("step", session.Step))
		b.resetToCity(ctx, session, "Щось пішло не так, почнімо спочатку.")
		return
	}

	handler(ctx, session, msg.Text)
	b.saveSession(ctx, session)
}

func (b *Bot) saveSession(ctx context.Context, session *Session) {
	if err := b.sessions.Save(ctx, session); err != nil {
		// In-memory copy keeps the dialogue alive until the store recovers.
		b.logger.Warn("Failed to persist session",
			zap.Int64("chat_id", session.ChatID),
			zap.Error(err))
	}
}

func (b *Bot) registerVisit(ctx context.Context, msg *tgbotapi.Message) {
	if b.storage == nil || msg.From == nil {
		return
	}
	err := b.storage.UpsertUser(ctx, storage.User{
		ChatID:    msg.Chat.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
	})
	if err != nil {
		b.logger.Warn("Failed to register user visit",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Error(err))
	}
}

func (b *Bot) send(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	b.sendMessage(msg)
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err))
	}
}
