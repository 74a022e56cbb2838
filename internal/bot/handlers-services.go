package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"svyato-bot/internal/order"
	"svyato-bot/internal/storage"
)

const summaryDisclaimer = "Вартість приблизна, фінальну суму підтвердить менеджер."

func (b *Bot) promptAddOns(s *Session) {
	services, ok := b.catalog.CityServices(s.City)
	if !ok {
		b.sendWithKeyboard(s.ChatID, "Додаткові послуги для цього міста уточнюються.", backOnlyKeyboard())
		return
	}
	if s.Removing {
		b.sendWithKeyboard(s.ChatID, "Оберіть послугу, яку прибрати:", removeServicesKeyboard(&s.Services))
		return
	}
	b.sendWithKeyboard(s.ChatID, "Додаткові послуги. Оберіть, що додати, або натисніть \""+BtnNext+"\":", servicesKeyboard(services, &s.Services))
}

func (b *Bot) handleAddOns(ctx context.Context, s *Session, text string) {
	if s.Removing {
		b.handleRemoveService(ctx, s, text)
		return
	}

	switch text {
	case BtnNext:
		s.Step = StepDistrict
		b.promptStep(ctx, s)
		return

	case BtnShowSelected:
		b.send(s.ChatID, b.renderSelectedServices(s))
		return

	case BtnRemoveMode:
		if s.Services.Len() == 0 {
			b.send(s.ChatID, "Ви ще нічого не обрали.")
			return
		}
		s.Removing = true
		b.promptAddOns(s)
		return
	}

	svc, ok := b.catalog.ServiceByName(s.City, text)
	if !ok {
		b.promptAddOns(s)
		return
	}

	if len(svc.Options) > 0 {
		s.Service = svc.Name
		s.Step = StepAddOnOption
		b.promptStep(ctx, s)
		return
	}

	s.Services.Set(svc.Name, svc.Price)
	b.send(s.ChatID, fmt.Sprintf("Додано: %s (%s)", svc.Name, svc.Price))
	b.promptAddOns(s)
}

func (b *Bot) handleRemoveService(ctx context.Context, s *Session, text string) {
	name := strings.TrimPrefix(text, removePrefix)
	if _, ok := s.Services.Get(name); !ok {
		b.promptAddOns(s)
		return
	}
	s.Services.Remove(name)
	s.Removing = false
	b.send(s.ChatID, "Прибрано: "+name)
	b.promptAddOns(s)
}

func (b *Bot) handleAddOnOption(ctx context.Context, s *Session, text string) {
	svc, ok := b.catalog.ServiceByName(s.City, s.Service)
	if !ok {
		s.Service = ""
		s.Step = StepAddOns
		b.promptAddOns(s)
		return
	}
	if !containsLabel(svc.Options, text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, варіант з меню.", serviceOptionsKeyboard(svc))
		return
	}

	s.Services.Set(svc.Name, text)
	b.send(s.ChatID, "Додано: "+text)
	s.Service = ""
	s.Step = StepAddOns
	b.promptAddOns(s)
}

func (b *Bot) handleDistrict(ctx context.Context, s *Session, text string) {
	if text == BtnSkip {
		s.Step = StepSummary
		b.promptStep(ctx, s)
		return
	}

	districts, ok := b.catalog.Districts(s.City)
	if !ok {
		s.Step = StepSummary
		b.promptStep(ctx, s)
		return
	}
	found := false
	for _, d := range districts {
		if d.Label == text {
			found = true
			break
		}
	}
	if !found {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, район з меню.", districtKeyboard(districts))
		return
	}

	_ = s.Ledger.Add(order.CategoryDistrict, text)
	s.Step = StepSummary
	b.promptStep(ctx, s)
}

func (b *Bot) handleSummary(ctx context.Context, s *Session, text string) {
	if text != BtnSendOrder {
		b.sendWithKeyboard(s.ChatID, b.buildSummary(s), summaryKeyboard())
		return
	}

	summary := b.buildSummary(s)
	if err := b.notifyManager(ctx, fmt.Sprintf("🎉 Нове замовлення (чат %d)\n\n%s", s.ChatID, summary)); err != nil {
		b.send(s.ChatID, "Не вдалося надіслати менеджеру, спробуйте ще раз.")
		return
	}

	b.archiveLead(ctx, s, summary)

	s.Step = StepPhoneContact
	b.promptStep(ctx, s)
}

// buildSummary renders the ledger, the price breakdown and the total.
func (b *Bot) buildSummary(s *Session) string {
	var sb strings.Builder
	sb.WriteString("Ваше замовлення:\n")
	for _, line := range s.Ledger.Render() {
		sb.WriteString(line + "\n")
	}

	total, breakdown := order.ComputeTotal(&s.Ledger, &s.Services, b.catalog)
	if len(breakdown) > 0 {
		sb.WriteString("\nВартість:\n")
		for _, line := range breakdown {
			sb.WriteString(line + "\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\nРазом: %d грн\n%s", total, summaryDisclaimer))
	return sb.String()
}

func (b *Bot) renderSelectedServices(s *Session) string {
	if s.Services.Len() == 0 {
		return "Ви ще нічого не обрали."
	}
	var sb strings.Builder
	sb.WriteString("Обрані послуги:\n")
	for _, sel := range s.Services.Selected {
		sb.WriteString(fmt.Sprintf("%s: %s\n", sel.Service, sel.Option))
	}
	return sb.String()
}

func (b *Bot) archiveLead(ctx context.Context, s *Session, summary string) {
	if b.storage == nil {
		return
	}
	total, _ := order.ComputeTotal(&s.Ledger, &s.Services, b.catalog)
	_, err := b.storage.SaveLead(ctx, storage.Lead{
		ChatID:  s.ChatID,
		City:    s.City,
		Summary: summary,
		Total:   total,
	})
	if err != nil {
		b.logger.Error("Failed to archive lead",
			zap.Int64("chat_id", s.ChatID),
			zap.Error(err))
	}
}

// handlePhoneContact covers typed input on the contact step; the shared
// contact payload itself arrives through handleSharedContact.
func (b *Bot) handlePhoneContact(ctx context.Context, s *Session, text string) {
	if text == BtnRestart {
		b.resetToCity(ctx, s, "")
		return
	}
	b.promptStep(ctx, s)
}

func (b *Bot) handleSharedContact(ctx context.Context, s *Session, contact *tgbotapi.Contact) {
	if s.Step != StepPhoneContact {
		b.promptStep(ctx, s)
		return
	}

	phone := contact.PhoneNumber
	if b.storage != nil {
		if err := b.storage.SetUserPhone(ctx, s.ChatID, phone); err != nil {
			b.logger.Error("Failed to save user phone",
				zap.Int64("chat_id", s.ChatID),
				zap.Error(err))
		}
	}

	note := fmt.Sprintf("📱 Контакт до замовлення (чат %d): %s %s, %s",
		s.ChatID, contact.FirstName, contact.LastName, phone)
	if err := b.notifyManager(ctx, note); err != nil {
		b.send(s.ChatID, "Не вдалося надіслати менеджеру, спробуйте ще раз.")
		return
	}

	b.send(s.ChatID, "Дякуємо! Менеджер зв'яжеться з вами найближчим часом. 🎉")
	b.resetToCity(ctx, s, "")
}
