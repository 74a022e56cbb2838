package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catalog holds the read-only configuration tables: menu options and prices.
// Loaded once at process start and never mutated, so it is safe for
// concurrent reads from all session handlers.
//
// Prices are kept as display-ready strings ("1500 грн", "ціна уточнюється")
// because the source data mixes numeric and textual values. Numeric
// extraction is the price resolver's job.
type Catalog struct {
	Cities     []string
	EventTypes []string

	// Locations available per event type.
	Locations map[string][]string

	// LocationInfo maps city -> location -> description shown on selection.
	LocationInfo map[string]map[string]string

	Themes    []string
	ThemeInfo map[string]string

	// SubThemes maps city -> theme -> ordered sub-theme labels.
	SubThemes map[string]map[string][]string

	Formats []string

	// Hourly maps city -> price key -> ordered rates. The price key is the
	// event type, or "<event type> (турбаза)" for countryside venues.
	Hourly map[string]map[string][]PricedItem

	// Packages maps city -> event type -> ordered package deals.
	Packages map[string]map[string][]PricedItem

	// Quests maps city -> ordered quests with per-duration prices.
	Quests map[string][]Quest

	// Services lists the add-on services per city. A service either has
	// sub-options (each option label carries its own price) or a flat price.
	Services map[string][]Service

	// Taxi maps city -> ordered districts with approximate fares. Every city
	// carries an "Інше" fallback entry.
	Taxi map[string][]PricedItem

	// FamilyTrips lists the priced family-event programs per city.
	FamilyTrips map[string][]PricedItem

	Managers     map[string]Manager
	CityChannels map[string]string
	GeneralInfo  map[string]string

	Greeting    string
	FamilyInfo  string
	FamilyInfo2 string
}

// PricedItem is a label with its display price.
type PricedItem struct {
	Label string
	Price string
}

// Quest is a named quest with its selectable durations.
type Quest struct {
	Name      string
	Durations []PricedItem
}

// Service is an add-on service: either Options is non-empty (sub-menu, each
// option label already includes the price) or Price holds the flat price.
type Service struct {
	Name    string
	Options []string
	Price   string
}

// Manager is the per-city operator contact card.
type Manager struct {
	Name     string
	Phone    string
	Telegram string
}

// HourlyRates returns the hourly price list for a city and price key.
func (c *Catalog) HourlyRates(city, priceKey string) ([]PricedItem, bool) {
	rates, ok := c.Hourly[city][priceKey]
	return rates, ok && len(rates) > 0
}

// PackageDeals returns the package list for a city and event type.
func (c *Catalog) PackageDeals(city, eventType string) ([]PricedItem, bool) {
	deals, ok := c.Packages[city][eventType]
	return deals, ok && len(deals) > 0
}

// PackagePrice resolves a single package price.
func (c *Catalog) PackagePrice(city, eventType, name string) (string, bool) {
	deals, ok := c.PackageDeals(city, eventType)
	if !ok {
		return "", false
	}
	return findPrice(deals, name)
}

// CityQuests returns the quests offered in a city.
func (c *Catalog) CityQuests(city string) ([]Quest, bool) {
	quests, ok := c.Quests[city]
	return quests, ok && len(quests) > 0
}

// QuestDurations returns the duration options for a quest.
func (c *Catalog) QuestDurations(city, name string) ([]PricedItem, bool) {
	quests, ok := c.Quests[city]
	if !ok {
		return nil, false
	}
	for _, q := range quests {
		if q.Name == name {
			return q.Durations, len(q.Durations) > 0
		}
	}
	return nil, false
}

// QuestPrice resolves the price of a quest for a given duration.
func (c *Catalog) QuestPrice(city, name, duration string) (string, bool) {
	durations, ok := c.QuestDurations(city, name)
	if !ok {
		return "", false
	}
	return findPrice(durations, duration)
}

// CityServices returns the add-on services for a city.
func (c *Catalog) CityServices(city string) ([]Service, bool) {
	services, ok := c.Services[city]
	return services, ok && len(services) > 0
}

// ServiceByName finds an add-on service by its name.
func (c *Catalog) ServiceByName(city, name string) (Service, bool) {
	services, ok := c.Services[city]
	if !ok {
		return Service{}, false
	}
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Districts returns the taxi districts for a city.
func (c *Catalog) Districts(city string) ([]PricedItem, bool) {
	districts, ok := c.Taxi[city]
	return districts, ok && len(districts) > 0
}

// TaxiPrice resolves a district's taxi fare, falling back to the city's
// "Інше" entry when the district is unknown.
func (c *Catalog) TaxiPrice(city, district string) (string, bool) {
	districts, ok := c.Taxi[city]
	if !ok {
		return "", false
	}
	if price, ok := findPrice(districts, district); ok {
		return price, true
	}
	return findPrice(districts, DistrictOther)
}

// EventLocations returns the venue options for an event type.
func (c *Catalog) EventLocations(eventType string) ([]string, bool) {
	locations, ok := c.Locations[eventType]
	return locations, ok && len(locations) > 0
}

// LocationDescription returns the info text shown when a venue is picked.
func (c *Catalog) LocationDescription(city, location string) (string, bool) {
	info, ok := c.LocationInfo[city]
	if !ok {
		return "", false
	}
	if text, ok := info[location]; ok {
		return text, true
	}
	// Config revisions disagree on location spelling; retry with a
	// case/diacritic-normalized match before giving up.
	want := NormalizeKey(location)
	for key, text := range info {
		if NormalizeKey(key) == want {
			return text, true
		}
	}
	return "", false
}

// CitySubThemes returns the sub-theme labels for a theme in a city.
func (c *Catalog) CitySubThemes(city, theme string) ([]string, bool) {
	subs, ok := c.SubThemes[city][theme]
	return subs, ok && len(subs) > 0
}

// ManagerFor returns the operator contact card for a city.
func (c *Catalog) ManagerFor(city string) (Manager, bool) {
	m, ok := c.Managers[city]
	return m, ok
}

// HasCity reports whether the city is serviced.
func (c *Catalog) HasCity(city string) bool {
	for _, known := range c.Cities {
		if known == city {
			return true
		}
	}
	return false
}

func findPrice(items []PricedItem, label string) (string, bool) {
	for _, it := range items {
		if it.Label == label {
			return it.Price, true
		}
	}
	want := NormalizeKey(label)
	for _, it := range items {
		if NormalizeKey(it.Label) == want {
			return it.Price, true
		}
	}
	return "", false
}

var keyNormalizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeKey lowercases a table key and strips diacritics and extra
// whitespace, so that near-identical keys from different config revisions
// still match.
func NormalizeKey(s string) string {
	normalized, _, err := transform.String(keyNormalizer, s)
	if err != nil {
		normalized = s
	}
	return strings.ToLower(strings.Join(strings.Fields(normalized), " "))
}
