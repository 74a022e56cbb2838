package order

import (
	"fmt"
	"regexp"
	"strconv"

	"svyato-bot/internal/catalog"
)

// PriceUnknown is the per-line fallback shown whenever a price cannot be
// parsed or looked up. A single bad entry never blocks the whole total.
const PriceUnknown = "ціна уточнюється"

var (
	// questRe splits "name (duration)". The greedy name group tolerates
	// parentheses inside the name itself, so the trailing group is always
	// the duration.
	questRe = regexp.MustCompile(`^(.+)\s+\((.+)\)$`)

	amountRe = regexp.MustCompile(`(\d+)\s*грн`)
)

// ComputeTotal resolves the order's approximate total from the ledger, the
// add-on selections and the price tables. It returns the numeric total and an
// ordered breakdown: main selections first, then add-ons, then taxi. Lookup
// and parse failures degrade to a per-line diagnostic, never an error.
func ComputeTotal(ledger *Ledger, services *Services, cat *catalog.Catalog) (int, []string) {
	city, ok := ledger.First(CategoryCity)
	if !ok {
		return 0, []string{"Місто не обрано, вартість порахує менеджер."}
	}

	total := 0
	var lines []string

	for _, choice := range ledger.Choices {
		switch choice.Category {
		case CategoryQuest:
			amount, line := resolveQuest(cat, city.Value, choice.Value)
			total += amount
			lines = append(lines, line)
		case CategoryPackage:
			amount, line := resolvePackage(cat, ledger, city.Value, choice.Value)
			total += amount
			lines = append(lines, line)
		case CategoryHourly:
			amount, line := resolveHourly(choice.Value)
			total += amount
			lines = append(lines, line)
		}
	}

	for _, sel := range services.Selected {
		if amount, ok := parseAmount(sel.Option); ok {
			total += amount
			lines = append(lines, fmt.Sprintf("%s: %s", sel.Service, sel.Option))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s (%s)", sel.Service, sel.Option, PriceUnknown))
		}
	}

	if district, ok := ledger.Latest(CategoryDistrict); ok {
		if price, ok := cat.TaxiPrice(city.Value, district.Value); ok {
			if amount, ok := parseAmount(price); ok {
				total += amount
			}
			lines = append(lines, fmt.Sprintf("Таксі (%s): %s", district.Value, price))
		} else {
			lines = append(lines, fmt.Sprintf("Таксі (%s): %s", district.Value, PriceUnknown))
		}
	}

	return total, lines
}

func resolveQuest(cat *catalog.Catalog, city, value string) (int, string) {
	m := questRe.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Sprintf("Квест %s: %s", value, PriceUnknown)
	}
	name, duration := m[1], m[2]

	price, ok := cat.QuestPrice(city, name, duration)
	if !ok {
		return 0, fmt.Sprintf("Квест %s (%s): %s", name, duration, PriceUnknown)
	}
	amount, ok := parseAmount(price)
	if !ok {
		return 0, fmt.Sprintf("Квест %s (%s): %s", name, duration, PriceUnknown)
	}
	return amount, fmt.Sprintf("Квест %s (%s): %s", name, duration, price)
}

func resolvePackage(cat *catalog.Catalog, ledger *Ledger, city, name string) (int, string) {
	eventType, ok := ledger.Latest(CategoryEventType)
	if !ok {
		return 0, fmt.Sprintf("Пакет %s: %s", name, PriceUnknown)
	}
	price, ok := cat.PackagePrice(city, eventType.Value, name)
	if !ok {
		return 0, fmt.Sprintf("Пакет %s: %s", name, PriceUnknown)
	}
	amount, ok := parseAmount(price)
	if !ok {
		return 0, fmt.Sprintf("Пакет %s: %s", name, price)
	}
	return amount, fmt.Sprintf("Пакет %s: %s", name, price)
}

func resolveHourly(value string) (int, string) {
	amount, ok := parseAmount(value)
	if !ok {
		return 0, fmt.Sprintf("Погодинно %s: %s", value, PriceUnknown)
	}
	return amount, fmt.Sprintf("Погодинно: %s", value)
}

// parseAmount extracts the hryvnia amount from a display price. It accepts
// the bare "1500 грн" shape as well as composite option labels like
// "Клоун - Великий - 1500 грн", taking the last amount in the string.
func parseAmount(s string) (int, bool) {
	matches := amountRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0, false
	}
	return n, true
}
