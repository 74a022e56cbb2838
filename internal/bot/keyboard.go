package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"svyato-bot/internal/catalog"
	"svyato-bot/internal/order"
)

// Keyboard builders are pure functions of the catalog and the session's
// relevant selections: same inputs, same menu. Options are paired two per row
// with a trailing control row, and an empty option list falls back to a
// back-only menu so the UI never shows zero buttons.

func menuKeyboard(options []string, controls ...string) tgbotapi.ReplyKeyboardMarkup {
	if len(controls) == 0 {
		controls = []string{BtnBack, BtnManager}
	}
	if len(options) == 0 {
		return tgbotapi.NewReplyKeyboard(keyboardRow(controls))
	}

	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(options); i += 2 {
		if i+1 < len(options) {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(options[i]),
				tgbotapi.NewKeyboardButton(options[i+1]),
			))
		} else {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(options[i]),
			))
		}
	}
	rows = append(rows, keyboardRow(controls))
	return tgbotapi.NewReplyKeyboard(rows...)
}

func keyboardRow(labels []string) []tgbotapi.KeyboardButton {
	buttons := make([]tgbotapi.KeyboardButton, 0, len(labels))
	for _, label := range labels {
		buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
	}
	return buttons
}

func backOnlyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(nil)
}

func cityKeyboard(cat *catalog.Catalog) tgbotapi.ReplyKeyboardMarkup {
	// City is the first step, so there is nothing to go back to.
	return menuKeyboard(cat.Cities, BtnManager)
}

func eventTypeKeyboard(cat *catalog.Catalog) tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(cat.EventTypes)
}

func locationKeyboard(cat *catalog.Catalog, eventType string) tgbotapi.ReplyKeyboardMarkup {
	locations, _ := cat.EventLocations(eventType)
	return menuKeyboard(locations)
}

func themeKeyboard(cat *catalog.Catalog) tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(cat.Themes)
}

func subThemeKeyboard(cat *catalog.Catalog, city, theme string) tgbotapi.ReplyKeyboardMarkup {
	subs, _ := cat.CitySubThemes(city, theme)
	return menuKeyboard(subs)
}

func themeDetailsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard([]string{BtnConfirm})
}

func formatKeyboard(cat *catalog.Catalog) tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(cat.Formats)
}

// pricedKeyboard renders label and price as a single button, the shape the
// hourly-price ledger entries use.
func pricedKeyboard(items []catalog.PricedItem) tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(pricedLabels(items))
}

func pricedLabels(items []catalog.PricedItem) []string {
	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label+" - "+it.Price)
	}
	return labels
}

func packageKeyboard(deals []catalog.PricedItem) tgbotapi.ReplyKeyboardMarkup {
	labels := make([]string, 0, len(deals))
	for _, d := range deals {
		labels = append(labels, d.Label)
	}
	return menuKeyboard(labels)
}

func questKeyboard(quests []catalog.Quest) tgbotapi.ReplyKeyboardMarkup {
	names := make([]string, 0, len(quests))
	for _, q := range quests {
		names = append(names, q.Name)
	}
	return menuKeyboard(names)
}

func questDurationKeyboard(durations []catalog.PricedItem) tgbotapi.ReplyKeyboardMarkup {
	labels := make([]string, 0, len(durations))
	for _, d := range durations {
		labels = append(labels, d.Label)
	}
	return menuKeyboard(labels)
}

func finalKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard([]string{BtnAddServices, BtnShowSummary})
}

func servicesKeyboard(services []catalog.Service, selected *order.Services) tgbotapi.ReplyKeyboardMarkup {
	options := make([]string, 0, len(services)+3)
	for _, s := range services {
		options = append(options, s.Name)
	}
	if selected.Len() > 0 {
		options = append(options, BtnShowSelected, BtnRemoveMode)
	}
	options = append(options, BtnNext)
	return menuKeyboard(options)
}

func serviceOptionsKeyboard(svc catalog.Service) tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(svc.Options)
}

func removeServicesKeyboard(selected *order.Services) tgbotapi.ReplyKeyboardMarkup {
	options := make([]string, 0, selected.Len())
	for _, sel := range selected.Selected {
		options = append(options, removePrefix+sel.Service)
	}
	return menuKeyboard(options)
}

func districtKeyboard(districts []catalog.PricedItem) tgbotapi.ReplyKeyboardMarkup {
	labels := make([]string, 0, len(districts)+1)
	for _, d := range districts {
		labels = append(labels, d.Label)
	}
	labels = append(labels, BtnSkip)
	return menuKeyboard(labels)
}

func summaryKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard([]string{BtnSendOrder})
}

func familyTripKeyboard(trips []catalog.PricedItem) tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard(pricedLabels(trips))
}

func familyAddOnKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard([]string{BtnAddServices})
}

func contactKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(BtnSharePhone),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnRestart),
		),
	)
}
