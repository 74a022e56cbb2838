package order

import (
	"errors"
	"fmt"
	"strings"
)

// Choice categories. The values double as the labels used when rendering a
// summary for the customer and the manager.
const (
	CategoryCity      = "Місто"
	CategoryEventType = "Тип події"
	CategoryLocation  = "Локація"
	CategoryTheme     = "Тематика"
	CategorySubTheme  = "Підтема"
	CategoryFormat    = "Формат"
	CategoryHourly    = "Погодинна ціна"
	CategoryPackage   = "Пакет"
	CategoryQuest     = "Квест"
	CategoryDistrict  = "Район"
	CategoryFamily    = "Сімейна програма"
)

// singletonCategories may hold at most one entry in a ledger. Picking a new
// value replaces the previous one, so switching between hourly and package
// pricing never leaves both in the order.
var singletonCategories = map[string]bool{
	CategoryFormat:  true,
	CategoryHourly:  true,
	CategoryPackage: true,
}

var ErrEmptyChoice = errors.New("order: category and value must be non-empty")

// Choice is a single confirmed selection.
type Choice struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// Ledger is the ordered record of a customer's selections. Entries keep
// insertion order; only explicit category removal and singleton replacement
// delete entries.
type Ledger struct {
	Choices []Choice `json:"choices"`
}

// Add appends a selection. For singleton categories any previous entry of the
// same category is removed first.
func (l *Ledger) Add(category, value string) error {
	if strings.TrimSpace(category) == "" || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: category=%q value=%q", ErrEmptyChoice, category, value)
	}
	if singletonCategories[category] {
		l.RemoveCategory(category)
	}
	l.Choices = append(l.Choices, Choice{Category: category, Value: value})
	return nil
}

// RemoveCategory drops all entries of the category. Removing an absent
// category is a no-op.
func (l *Ledger) RemoveCategory(category string) {
	kept := l.Choices[:0]
	for _, c := range l.Choices {
		if c.Category != category {
			kept = append(kept, c)
		}
	}
	l.Choices = kept
}

// Latest returns the most recently added entry of the category.
func (l *Ledger) Latest(category string) (Choice, bool) {
	for i := len(l.Choices) - 1; i >= 0; i-- {
		if l.Choices[i].Category == category {
			return l.Choices[i], true
		}
	}
	return Choice{}, false
}

// First returns the earliest entry of the category. The city is always read
// this way so later duplicates cannot reroute an order mid-flow.
func (l *Ledger) First(category string) (Choice, bool) {
	for _, c := range l.Choices {
		if c.Category == category {
			return c, true
		}
	}
	return Choice{}, false
}

// Len reports the number of recorded selections.
func (l *Ledger) Len() int {
	return len(l.Choices)
}

// Render produces the selection lines in insertion order.
func (l *Ledger) Render() []string {
	lines := make([]string, 0, len(l.Choices))
	for _, c := range l.Choices {
		lines = append(lines, fmt.Sprintf("%s: %s", c.Category, c.Value))
	}
	return lines
}
