package bot

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"svyato-bot/internal/catalog"
	"svyato-bot/internal/order"
)

const minDurationDisclaimer = "Зверніть увагу: для заміського комплексу мінімальне замовлення 2 години."

// promptStep renders the current step's message and menu. It is used both
// when entering a step and when re-prompting after unrecognized input, so a
// wrong button press always re-displays the same menu.
func (b *Bot) promptStep(ctx context.Context, s *Session) {
	switch s.Step {
	case StepCity:
		b.sendWithKeyboard(s.ChatID, b.catalog.Greeting, cityKeyboard(b.catalog))

	case StepEventType:
		b.sendWithKeyboard(s.ChatID, "Яке свято плануєте?", eventTypeKeyboard(b.catalog))

	case StepFamilyTrip:
		trips, ok := b.familyTrips(s)
		if !ok {
			b.sendWithKeyboard(s.ChatID, "Програми для цього міста уточнюються, зверніться до менеджера.", backOnlyKeyboard())
			return
		}
		b.sendWithKeyboard(s.ChatID, b.catalog.FamilyInfo, familyTripKeyboard(trips))

	case StepFamilyAddOn:
		b.sendWithKeyboard(s.ChatID, b.catalog.FamilyInfo2+"\n\nБажаєте додати послуги до програми?", familyAddOnKeyboard())

	case StepEventOther:
		text, ok := b.catalog.GeneralInfo[s.City]
		if !ok {
			text = "Розкажіть менеджеру, що ви задумали."
		}
		b.sendWithKeyboard(s.ChatID, text+"\n\n"+b.managerCard(s.City), backOnlyKeyboard())

	case StepLocation:
		eventType, ok := s.Ledger.Latest(order.CategoryEventType)
		if !ok {
			b.resetToCity(ctx, s, "Оберіть, будь ласка, місто ще раз.")
			return
		}
		b.sendWithKeyboard(s.ChatID, "Де плануєте святкування?", locationKeyboard(b.catalog, eventType.Value))

	case StepLocationOther:
		b.sendWithKeyboard(s.ChatID, "Напишіть, будь ласка, де плануєте свято:", backOnlyKeyboard())

	case StepTheme:
		b.sendWithKeyboard(s.ChatID, "Оберіть тематику свята:", themeKeyboard(b.catalog))

	case StepSubTheme:
		theme, ok := s.Ledger.Latest(order.CategoryTheme)
		if !ok {
			b.resetToCity(ctx, s, "Оберіть, будь ласка, місто ще раз.")
			return
		}
		b.sendWithKeyboard(s.ChatID, "Оберіть програму:", subThemeKeyboard(b.catalog, s.City, theme.Value))

	case StepThemeDetails:
		b.sendWithKeyboard(s.ChatID, b.themeDetails(s), themeDetailsKeyboard())

	case StepFormat:
		b.sendWithKeyboard(s.ChatID, "Оберіть формат:", formatKeyboard(b.catalog))

	case StepHourly:
		rates, ok := b.hourlyRates(s)
		if !ok {
			b.sendWithKeyboard(s.ChatID, "Погодинні ціни для цього свята уточнюються, зверніться до менеджера.", backOnlyKeyboard())
			return
		}
		b.sendWithKeyboard(s.ChatID, "Оберіть тривалість:", pricedKeyboard(rates))

	case StepPackage:
		deals, ok := b.packageDeals(s)
		if !ok {
			b.sendWithKeyboard(s.ChatID, "Пакетні пропозиції для цього свята уточнюються, зверніться до менеджера.", backOnlyKeyboard())
			return
		}
		b.sendWithKeyboard(s.ChatID, "Наші пакети:\n"+formatPriceList(deals), packageKeyboard(deals))

	case StepQuest:
		quests, ok := b.catalog.CityQuests(s.City)
		if !ok {
			b.sendWithKeyboard(s.ChatID, "Квести для цього міста уточнюються, зверніться до менеджера.", backOnlyKeyboard())
			return
		}
		b.sendWithKeyboard(s.ChatID, "Оберіть квест:", questKeyboard(quests))

	case StepQuestDuration:
		durations, ok := b.catalog.QuestDurations(s.City, s.Quest)
		if !ok {
			b.sendWithKeyboard(s.ChatID, "Тривалість цього квесту уточнюється, зверніться до менеджера.", backOnlyKeyboard())
			return
		}
		b.sendWithKeyboard(s.ChatID, "Оберіть тривалість:\n"+formatPriceList(durations), questDurationKeyboard(durations))

	case StepFinal:
		b.sendWithKeyboard(s.ChatID, "Що далі?", finalKeyboard())

	case StepAddOns:
		b.promptAddOns(s)

	case StepAddOnOption:
		svc, ok := b.catalog.ServiceByName(s.City, s.Service)
		if !ok {
			s.Service = ""
			s.Step = StepAddOns
			b.promptAddOns(s)
			return
		}
		b.sendWithKeyboard(s.ChatID, "Оберіть варіант:", serviceOptionsKeyboard(svc))

	case StepDistrict:
		districts, ok := b.catalog.Districts(s.City)
		if !ok {
			s.Step = StepSummary
			b.promptStep(ctx, s)
			return
		}
		b.sendWithKeyboard(s.ChatID, "Потрібне таксі для аніматора? Оберіть район:", districtKeyboard(districts))

	case StepSummary:
		b.sendWithKeyboard(s.ChatID, b.buildSummary(s), summaryKeyboard())

	case StepPhoneContact:
		b.sendWithKeyboard(s.ChatID, "Поділіться контактом, і менеджер зв'яжеться з вами найближчим часом.", contactKeyboard())

	default:
		b.resetToCity(ctx, s, "Щось пішло не так, почнімо спочатку.")
	}
}

// resetToCity discards the session and restarts the dialogue. Used for /start
// and whenever required prior context is missing.
func (b *Bot) resetToCity(ctx context.Context, s *Session, text string) {
	if err := b.sessions.Clear(ctx, s.ChatID); err != nil {
		b.logger.Warn("Failed to clear session",
			zap.Int64("chat_id", s.ChatID),
			zap.Error(err))
	}
	*s = *NewSession(s.ChatID)
	if text != "" {
		b.send(s.ChatID, text)
	}
	b.promptStep(ctx, s)
	b.saveSession(ctx, s)
}

func (b *Bot) handleCity(ctx context.Context, s *Session, text string) {
	if !b.catalog.HasCity(text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, місто з меню.", cityKeyboard(b.catalog))
		return
	}

	if err := s.Ledger.Add(order.CategoryCity, text); err != nil {
		b.logger.Error("Failed to record city",
			zap.Int64("chat_id", s.ChatID),
			zap.Error(err))
		return
	}
	s.City = text
	s.Step = StepEventType
	b.promptStep(ctx, s)
}

func (b *Bot) handleEventType(ctx context.Context, s *Session, text string) {
	switch text {
	case catalog.EventBirthday, catalog.EventGraduation:
		_ = s.Ledger.Add(order.CategoryEventType, text)
		s.Step = StepLocation

	case catalog.EventFamily:
		_ = s.Ledger.Add(order.CategoryEventType, text)
		s.Step = StepFamilyTrip

	case catalog.EventOther:
		_ = s.Ledger.Add(order.CategoryEventType, text)
		s.Step = StepEventOther

	case catalog.EventAfisha:
		channel, ok := b.catalog.CityChannels[s.City]
		if !ok {
			b.send(s.ChatID, "Афіша для цього міста готується.")
			return
		}
		b.send(s.ChatID, "Всі найближчі події тут: "+channel)
		return

	default:
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, варіант з меню.", eventTypeKeyboard(b.catalog))
		return
	}
	b.promptStep(ctx, s)
}

func (b *Bot) handleFamilyTrip(ctx context.Context, s *Session, text string) {
	trips, ok := b.familyTrips(s)
	if !ok {
		b.promptStep(ctx, s)
		return
	}
	if !containsLabel(pricedLabels(trips), text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, програму з меню.", familyTripKeyboard(trips))
		return
	}

	_ = s.Ledger.Add(order.CategoryFamily, text)
	s.Step = StepFamilyAddOn
	b.promptStep(ctx, s)
}

func (b *Bot) handleFamilyAddOn(ctx context.Context, s *Session, text string) {
	if text == BtnAddServices {
		s.Step = StepAddOns
		b.promptStep(ctx, s)
		return
	}
	b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, варіант з меню.", familyAddOnKeyboard())
}

func (b *Bot) handleEventOther(ctx context.Context, s *Session, text string) {
	// Free text here is the customer describing their event; pass it on.
	note := fmt.Sprintf("Запит (інший тип свята) від чату %d:\n%s", s.ChatID, text)
	if err := b.notifyManager(ctx, note); err != nil {
		b.send(s.ChatID, "Не вдалося надіслати менеджеру, спробуйте ще раз.")
		return
	}
	b.send(s.ChatID, "Дякуємо! Менеджер зв'яжеться з вами найближчим часом.")
}

func (b *Bot) handleLocation(ctx context.Context, s *Session, text string) {
	eventType, ok := s.Ledger.Latest(order.CategoryEventType)
	if !ok {
		b.resetToCity(ctx, s, "Оберіть, будь ласка, місто ще раз.")
		return
	}
	locations, _ := b.catalog.EventLocations(eventType.Value)

	if text == catalog.LocationOther {
		s.Step = StepLocationOther
		b.promptStep(ctx, s)
		return
	}
	if !containsLabel(locations, text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, локацію з меню.", locationKeyboard(b.catalog, eventType.Value))
		return
	}

	_ = s.Ledger.Add(order.CategoryLocation, text)
	if info, ok := b.catalog.LocationDescription(s.City, text); ok {
		b.send(s.ChatID, info)
	}
	s.Step = StepTheme
	b.promptStep(ctx, s)
}

func (b *Bot) handleLocationOther(ctx context.Context, s *Session, text string) {
	if strings.TrimSpace(text) == "" {
		b.promptStep(ctx, s)
		return
	}
	_ = s.Ledger.Add(order.CategoryLocation, text)
	b.send(s.ChatID, "Дякуємо! Менеджер підкаже, чи зможемо ми приїхати за цією адресою.")
	s.Step = StepTheme
	b.promptStep(ctx, s)
}

func (b *Bot) handleTheme(ctx context.Context, s *Session, text string) {
	if !containsLabel(b.catalog.Themes, text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, тематику з меню.", themeKeyboard(b.catalog))
		return
	}
	_ = s.Ledger.Add(order.CategoryTheme, text)
	s.Step = StepSubTheme
	b.promptStep(ctx, s)
}

func (b *Bot) handleSubTheme(ctx context.Context, s *Session, text string) {
	theme, ok := s.Ledger.Latest(order.CategoryTheme)
	if !ok {
		b.resetToCity(ctx, s, "Оберіть, будь ласка, місто ще раз.")
		return
	}
	subs, ok := b.catalog.CitySubThemes(s.City, theme.Value)
	if !ok || !containsLabel(subs, text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, програму з меню.", subThemeKeyboard(b.catalog, s.City, theme.Value))
		return
	}
	_ = s.Ledger.Add(order.CategorySubTheme, text)
	s.Step = StepThemeDetails
	b.promptStep(ctx, s)
}

func (b *Bot) handleThemeDetails(ctx context.Context, s *Session, text string) {
	if text != BtnConfirm {
		b.sendWithKeyboard(s.ChatID, b.themeDetails(s), themeDetailsKeyboard())
		return
	}
	s.Step = StepFormat
	b.promptStep(ctx, s)
}

func (b *Bot) handleFormat(ctx context.Context, s *Session, text string) {
	eventType, ok := s.Ledger.Latest(order.CategoryEventType)
	if !ok {
		b.resetToCity(ctx, s, "Оберіть, будь ласка, місто ще раз.")
		return
	}

	switch text {
	case catalog.FormatHourly, catalog.FormatPackage:
		// Hourly and package pricing exist only for birthdays and
		// graduations; everything else goes through the manager.
		if eventType.Value != catalog.EventBirthday && eventType.Value != catalog.EventGraduation {
			b.send(s.ChatID, "Для цього типу свята вартість підбирає менеджер:\n"+b.managerCard(s.City))
			return
		}
		_ = s.Ledger.Add(order.CategoryFormat, text)
		if text == catalog.FormatHourly {
			s.Step = StepHourly
		} else {
			s.Step = StepPackage
		}

	case catalog.FormatQuest:
		_ = s.Ledger.Add(order.CategoryFormat, text)
		s.Step = StepQuest

	default:
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, формат з меню.", formatKeyboard(b.catalog))
		return
	}
	b.promptStep(ctx, s)
}

func (b *Bot) handleHourly(ctx context.Context, s *Session, text string) {
	rates, ok := b.hourlyRates(s)
	if !ok {
		b.promptStep(ctx, s)
		return
	}
	if !containsLabel(pricedLabels(rates), text) {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, тривалість з меню.", pricedKeyboard(rates))
		return
	}

	_ = s.Ledger.Add(order.CategoryHourly, text)
	if b.isCountryside(s) {
		b.send(s.ChatID, minDurationDisclaimer)
	}
	s.Step = StepFinal
	b.promptStep(ctx, s)
}

func (b *Bot) handlePackage(ctx context.Context, s *Session, text string) {
	deals, ok := b.packageDeals(s)
	if !ok {
		b.promptStep(ctx, s)
		return
	}
	price, ok := findDealPrice(deals, text)
	if !ok {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, пакет з меню.", packageKeyboard(deals))
		return
	}

	_ = s.Ledger.Add(order.CategoryPackage, text)
	b.send(s.ChatID, fmt.Sprintf("Пакет %s: %s", text, price))
	s.Step = StepFinal
	b.promptStep(ctx, s)
}

func (b *Bot) handleQuest(ctx context.Context, s *Session, text string) {
	quests, ok := b.catalog.CityQuests(s.City)
	if !ok {
		b.promptStep(ctx, s)
		return
	}
	found := false
	for _, q := range quests {
		if q.Name == text {
			found = true
			break
		}
	}
	if !found {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, квест з меню.", questKeyboard(quests))
		return
	}

	s.Quest = text
	s.Step = StepQuestDuration
	b.promptStep(ctx, s)
}

func (b *Bot) handleQuestDuration(ctx context.Context, s *Session, text string) {
	durations, ok := b.catalog.QuestDurations(s.City, s.Quest)
	if !ok {
		s.Quest = ""
		s.Step = StepQuest
		b.promptStep(ctx, s)
		return
	}
	price, ok := findDealPrice(durations, text)
	if !ok {
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, тривалість з меню.", questDurationKeyboard(durations))
		return
	}

	_ = s.Ledger.Add(order.CategoryQuest, fmt.Sprintf("%s (%s)", s.Quest, text))
	b.send(s.ChatID, fmt.Sprintf("Квест %s (%s): %s", s.Quest, text, price))
	s.Quest = ""
	s.Step = StepFinal
	b.promptStep(ctx, s)
}

func (b *Bot) handleFinal(ctx context.Context, s *Session, text string) {
	switch text {
	case BtnAddServices:
		s.Step = StepAddOns
	case BtnShowSummary:
		s.Step = StepDistrict
	default:
		b.sendWithKeyboard(s.ChatID, "Оберіть, будь ласка, варіант з меню.", finalKeyboard())
		return
	}
	b.promptStep(ctx, s)
}

func (b *Bot) themeDetails(s *Session) string {
	theme, ok := s.Ledger.Latest(order.CategoryTheme)
	if !ok {
		return "Підтвердіть вибір програми."
	}
	sub, _ := s.Ledger.Latest(order.CategorySubTheme)
	info := b.catalog.ThemeInfo[theme.Value]
	if info == "" {
		info = "Деталі програми розкаже менеджер."
	}
	return fmt.Sprintf("%s\nПрограма: %s\n\n%s", theme.Value, sub.Value, info)
}

func (b *Bot) familyTrips(s *Session) ([]catalog.PricedItem, bool) {
	trips, ok := b.catalog.FamilyTrips[s.City]
	return trips, ok && len(trips) > 0
}

// hourlyRates picks the price table for the session, switching to the
// countryside key when the venue is the countryside complex.
func (b *Bot) hourlyRates(s *Session) ([]catalog.PricedItem, bool) {
	eventType, ok := s.Ledger.Latest(order.CategoryEventType)
	if !ok {
		return nil, false
	}
	key := eventType.Value
	if b.isCountryside(s) {
		key += catalog.CountrysideSuffix
	}
	return b.catalog.HourlyRates(s.City, key)
}

func (b *Bot) packageDeals(s *Session) ([]catalog.PricedItem, bool) {
	eventType, ok := s.Ledger.Latest(order.CategoryEventType)
	if !ok {
		return nil, false
	}
	return b.catalog.PackageDeals(s.City, eventType.Value)
}

func (b *Bot) isCountryside(s *Session) bool {
	location, ok := s.Ledger.Latest(order.CategoryLocation)
	return ok && location.Value == catalog.LocationCountryside
}

func (b *Bot) managerCard(city string) string {
	m, ok := b.catalog.ManagerFor(city)
	if !ok {
		return "Контакти менеджера уточнюються."
	}
	return fmt.Sprintf("Менеджер %s\n%s\n%s", m.Name, m.Phone, m.Telegram)
}

func formatPriceList(items []catalog.PricedItem) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("%s - %s\n", it.Label, it.Price))
	}
	return sb.String()
}

func findDealPrice(items []catalog.PricedItem, label string) (string, bool) {
	for _, it := range items {
		if it.Label == label {
			return it.Price, true
		}
	}
	return "", false
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
