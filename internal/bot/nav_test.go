package bot

import (
	"testing"

	"svyato-bot/internal/catalog"
	"svyato-bot/internal/order"
)

func sessionAtFormat(t *testing.T) *Session {
	t.Helper()
	s := NewSession(1)
	steps := []struct {
		category, value string
	}{
		{order.CategoryCity, catalog.CityKyiv},
		{order.CategoryEventType, catalog.EventBirthday},
		{order.CategoryLocation, catalog.LocationCafe},
		{order.CategoryTheme, "🦸 Супергерої"},
		{order.CategorySubTheme, "Бетмен"},
	}
	for _, st := range steps {
		if err := s.Ledger.Add(st.category, st.value); err != nil {
			t.Fatal(err)
		}
	}
	s.City = catalog.CityKyiv
	s.Step = StepFormat
	return s
}

func TestApplyBackAtFirstStepIsNoop(t *testing.T) {
	s := NewSession(1)

	applyBack(s)
	if s.Step != StepCity {
		t.Errorf("step = %q, want to stay at city selection", s.Step)
	}
	if s.Ledger.Len() != 0 {
		t.Error("ledger must stay empty")
	}
}

func TestApplyBackRemovesPreviousEntry(t *testing.T) {
	s := sessionAtFormat(t)
	before := s.Ledger.Len()

	// Back from format lands on the details confirmation, which records
	// nothing of its own.
	applyBack(s)
	if s.Step != StepThemeDetails {
		t.Fatalf("step = %q, want %q", s.Step, StepThemeDetails)
	}
	if s.Ledger.Len() != before {
		t.Error("details step must not drop a ledger entry")
	}

	applyBack(s)
	if s.Step != StepSubTheme {
		t.Fatalf("step = %q, want %q", s.Step, StepSubTheme)
	}
	if _, ok := s.Ledger.Latest(order.CategorySubTheme); ok {
		t.Error("sub-theme entry must be removed when returning to its step")
	}
}

func TestBackThenReselectKeepsLedgerLength(t *testing.T) {
	s := sessionAtFormat(t)
	before := s.Ledger.Len()

	applyBack(s) // format -> details
	applyBack(s) // details -> sub-theme, drops the sub-theme entry
	if err := s.Ledger.Add(order.CategorySubTheme, "Бетмен"); err != nil {
		t.Fatal(err)
	}
	s.Step = StepThemeDetails

	if s.Ledger.Len() != before {
		t.Errorf("ledger len = %d after back+reselect, want %d", s.Ledger.Len(), before)
	}
	latest, _ := s.Ledger.Latest(order.CategorySubTheme)
	if latest.Value != "Бетмен" {
		t.Errorf("reselected value = %q, want the original", latest.Value)
	}
}

func TestApplyBackFromPricingSteps(t *testing.T) {
	tests := []struct {
		name     string
		step     string
		wantStep string
	}{
		{"hourly", StepHourly, StepFormat},
		{"package", StepPackage, StepFormat},
		{"quest", StepQuest, StepFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionAtFormat(t)
			_ = s.Ledger.Add(order.CategoryFormat, catalog.FormatHourly)
			s.Step = tt.step

			applyBack(s)
			if s.Step != tt.wantStep {
				t.Errorf("step = %q, want %q", s.Step, tt.wantStep)
			}
			if _, ok := s.Ledger.Latest(order.CategoryFormat); ok {
				t.Error("format entry must be removed when leaving its sub-path")
			}
		})
	}
}

func TestApplyBackFromFinalRewindsPricing(t *testing.T) {
	s := sessionAtFormat(t)
	_ = s.Ledger.Add(order.CategoryFormat, catalog.FormatPackage)
	_ = s.Ledger.Add(order.CategoryPackage, "Класичний")
	s.Step = StepFinal

	applyBack(s)
	if s.Step != StepPackage {
		t.Errorf("step = %q, want %q", s.Step, StepPackage)
	}
	if _, ok := s.Ledger.Latest(order.CategoryPackage); ok {
		t.Error("package entry must be removed when backing out of the final step")
	}
	// The format choice survives so the package menu can be re-entered.
	if _, ok := s.Ledger.Latest(order.CategoryFormat); !ok {
		t.Error("format entry must survive the rewind")
	}
}

func TestApplyBackFromQuestDuration(t *testing.T) {
	s := sessionAtFormat(t)
	_ = s.Ledger.Add(order.CategoryFormat, catalog.FormatQuest)
	s.Quest = "🏴‍☠️ Піратський скарб"
	s.Step = StepQuestDuration

	applyBack(s)
	if s.Step != StepQuest {
		t.Errorf("step = %q, want %q", s.Step, StepQuest)
	}
	if s.Quest != "" {
		t.Error("pending quest selection must be cleared")
	}
}

func TestApplyBackFromSummaryDropsDistrict(t *testing.T) {
	s := sessionAtFormat(t)
	_ = s.Ledger.Add(order.CategoryDistrict, "Оболонь")
	s.Step = StepSummary

	applyBack(s)
	if s.Step != StepDistrict {
		t.Errorf("step = %q, want %q", s.Step, StepDistrict)
	}
	if _, ok := s.Ledger.Latest(order.CategoryDistrict); ok {
		t.Error("district entry must be removed when backing out of the summary")
	}
}
