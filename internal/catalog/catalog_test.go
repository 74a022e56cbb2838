package catalog

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Оболонь", "оболонь"},
		{"collapses whitespace", "  2   години ", "2 години"},
		{"strips combining accents", "café", "cafe"},
		{"keeps cyrillic letters intact", "Кривий Ріг", "кривий ріг"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.in); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPackagePrice(t *testing.T) {
	c := Default()

	price, ok := c.PackagePrice(CityKyiv, EventBirthday, "Класичний")
	if !ok {
		t.Fatal("expected classic birthday package in Kyiv")
	}
	if price != "5000 грн" {
		t.Errorf("price = %q, want %q", price, "5000 грн")
	}

	if _, ok := c.PackagePrice(CityKyiv, EventBirthday, "Неіснуючий"); ok {
		t.Error("unknown package must not resolve")
	}
	if _, ok := c.PackagePrice("Львів", EventBirthday, "Класичний"); ok {
		t.Error("unknown city must not resolve")
	}
}

func TestTaxiPriceFallback(t *testing.T) {
	c := Default()

	price, ok := c.TaxiPrice(CityKyiv, "Оболонь")
	if !ok || price != "300 грн" {
		t.Errorf("TaxiPrice(Оболонь) = %q, %v; want 300 грн, true", price, ok)
	}

	price, ok = c.TaxiPrice(CityKyiv, "Вигадка")
	if !ok {
		t.Fatal("unknown district must fall back to the city's default fare")
	}
	other, _ := c.TaxiPrice(CityKyiv, DistrictOther)
	if price != other {
		t.Errorf("fallback fare = %q, want %q", price, other)
	}

	if _, ok := c.TaxiPrice("Львів", "Оболонь"); ok {
		t.Error("unknown city must not resolve")
	}
}

func TestQuestPrice(t *testing.T) {
	c := Default()

	quests, ok := c.CityQuests(CityKyiv)
	if !ok || len(quests) == 0 {
		t.Fatal("expected quests in Kyiv")
	}

	price, ok := c.QuestPrice(CityKyiv, "🏴‍☠️ Піратський скарб", "1 година")
	if !ok || price != "1400 грн" {
		t.Errorf("QuestPrice = %q, %v; want 1400 грн, true", price, ok)
	}

	if _, ok := c.QuestPrice(CityKyiv, "🏴‍☠️ Піратський скарб", "5 годин"); ok {
		t.Error("unknown duration must not resolve")
	}
}

func TestLocationDescriptionNormalizedMatch(t *testing.T) {
	c := Default()

	if _, ok := c.LocationDescription(CityKyiv, LocationHome); !ok {
		t.Error("exact location key must resolve")
	}

	// Mixed case still matches through key normalization.
	if _, ok := c.LocationDescription(CityKyiv, "🏠 додому"); !ok {
		t.Error("case-insensitive location key must resolve")
	}

	if _, ok := c.LocationDescription(CityKyiv, "🌋 Вулкан"); ok {
		t.Error("unknown location must not resolve")
	}
}

func TestHourlyRatesCountrysideKey(t *testing.T) {
	c := Default()

	rates, ok := c.HourlyRates(CityKyiv, EventBirthday+CountrysideSuffix)
	if !ok || len(rates) == 0 {
		t.Fatal("expected countryside hourly rates for birthdays in Kyiv")
	}
	if rates[0].Label != "2 години" {
		t.Errorf("first countryside slot = %q, want 2 години", rates[0].Label)
	}
}

func TestServiceByName(t *testing.T) {
	c := Default()

	svc, ok := c.ServiceByName(CityKyiv, "📸 Фотограф")
	if !ok {
		t.Fatal("expected photographer service in Kyiv")
	}
	if svc.Price != "1500 грн" {
		t.Errorf("price = %q, want 1500 грн", svc.Price)
	}
	if len(svc.Options) != 0 {
		t.Error("flat-price service must not carry options")
	}

	svc, ok = c.ServiceByName(CityKyiv, "🎭 Шоу програма")
	if !ok || len(svc.Options) == 0 {
		t.Fatal("expected show program with options in Kyiv")
	}
}

func TestHasCity(t *testing.T) {
	c := Default()
	if !c.HasCity(CityKyiv) || !c.HasCity(CityKryvyiRih) {
		t.Error("configured cities must be recognized")
	}
	if c.HasCity("Львів") {
		t.Error("unknown city must not be recognized")
	}
}
