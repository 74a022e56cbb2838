package order

import (
	"strings"
	"testing"

	"svyato-bot/internal/catalog"
)

func TestComputeTotalPackage(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)
	_ = l.Add(CategoryEventType, catalog.EventBirthday)
	_ = l.Add(CategoryPackage, "Класичний")

	total, lines := ComputeTotal(&l, &Services{}, cat)
	if total != 5000 {
		t.Errorf("total = %d, want 5000", total)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "Класичний") || !strings.Contains(lines[0], "5000") {
		t.Errorf("breakdown line %q must reference the package and its price", lines[0])
	}
}

func TestComputeTotalMissingCity(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryPackage, "Класичний")

	total, lines := ComputeTotal(&l, &Services{}, cat)
	if total != 0 {
		t.Errorf("total = %d, want 0 without a city", total)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want a single diagnostic", len(lines))
	}
}

func TestComputeTotalAddOn(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)

	var s Services
	s.Set("📸 Фотограф", "1500 грн")

	total, lines := ComputeTotal(&l, &s, cat)
	if total != 1500 {
		t.Errorf("total = %d, want 1500", total)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "Фотограф") {
		t.Errorf("breakdown = %v, want one photographer line", lines)
	}
}

func TestComputeTotalAddOnShapes(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)

	tests := []struct {
		name   string
		option string
		want   int
	}{
		{"bare price", "1500 грн", 1500},
		{"name and price", "Кріо шоу - 2500 грн", 2500},
		{"name detail price", "Клоун - Великий - 1500 грн", 1500},
		{"textual price", "ціна уточнюється", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Services
			s.Set("svc", tt.option)

			total, lines := ComputeTotal(&l, &s, cat)
			if total != tt.want {
				t.Errorf("total = %d, want %d", total, tt.want)
			}
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if tt.want == 0 && !strings.Contains(lines[0], PriceUnknown) {
				t.Errorf("unparseable option line %q must carry the diagnostic", lines[0])
			}
		})
	}
}

func TestComputeTotalTaxi(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)
	_ = l.Add(CategoryDistrict, "Оболонь")

	total, lines := ComputeTotal(&l, &Services{}, cat)
	if total != 300 {
		t.Errorf("total = %d, want 300", total)
	}
	taxiLines := 0
	for _, line := range lines {
		if strings.Contains(line, "Таксі") {
			taxiLines++
		}
	}
	if taxiLines != 1 {
		t.Errorf("got %d taxi lines, want exactly 1", taxiLines)
	}
}

func TestComputeTotalTaxiFallback(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)
	_ = l.Add(CategoryDistrict, "Невідомий район")

	total, _ := ComputeTotal(&l, &Services{}, cat)
	if total != 500 {
		t.Errorf("total = %d, want the city's fallback fare 500", total)
	}
}

func TestComputeTotalQuest(t *testing.T) {
	cat := catalog.Default()

	t.Run("with parentheses in name", func(t *testing.T) {
		var l Ledger
		_ = l.Add(CategoryCity, catalog.CityKyiv)
		_ = l.Add(CategoryQuest, "🔎 Детективна агенція (Шерлок) (2 години)")

		total, lines := ComputeTotal(&l, &Services{}, cat)
		if total != 2500 {
			t.Errorf("total = %d, want 2500", total)
		}
		if len(lines) != 1 || !strings.Contains(lines[0], "2500") {
			t.Errorf("breakdown = %v, want a priced quest line", lines)
		}
	})

	t.Run("malformed value degrades", func(t *testing.T) {
		var l Ledger
		_ = l.Add(CategoryCity, catalog.CityKyiv)
		_ = l.Add(CategoryQuest, "без дужок")

		total, lines := ComputeTotal(&l, &Services{}, cat)
		if total != 0 {
			t.Errorf("total = %d, want 0 for an unparseable quest", total)
		}
		if len(lines) != 1 || !strings.Contains(lines[0], PriceUnknown) {
			t.Errorf("breakdown = %v, want a diagnostic quest line", lines)
		}
	})
}

func TestComputeTotalHourly(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)
	_ = l.Add(CategoryHourly, "1.5 години - 1500 грн")

	total, _ := ComputeTotal(&l, &Services{}, cat)
	if total != 1500 {
		t.Errorf("total = %d, want 1500", total)
	}

	l.RemoveCategory(CategoryHourly)
	_ = l.Add(CategoryHourly, "більше - ціна уточнюється")
	total, lines := ComputeTotal(&l, &Services{}, cat)
	if total != 0 {
		t.Errorf("total = %d, want 0 for a textual hourly price", total)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], PriceUnknown) {
		t.Errorf("breakdown = %v, want a diagnostic hourly line", lines)
	}
}

func TestComputeTotalMonotonic(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)
	_ = l.Add(CategoryEventType, catalog.EventBirthday)
	_ = l.Add(CategoryPackage, "Класичний")

	var s Services
	prev, _ := ComputeTotal(&l, &s, cat)

	addOns := []ServiceSelection{
		{"📸 Фотограф", "1500 грн"},
		{"🤡 Клоун", "Клоун - Великий - 1500 грн"},
		{"🎈 Декор", "ціна уточнюється"},
	}
	for _, a := range addOns {
		s.Set(a.Service, a.Option)
		total, _ := ComputeTotal(&l, &s, cat)
		if total < prev {
			t.Fatalf("total decreased from %d to %d after adding %s", prev, total, a.Service)
		}
		prev = total
	}
}

func TestComputeTotalFullOrder(t *testing.T) {
	cat := catalog.Default()
	var l Ledger
	_ = l.Add(CategoryCity, catalog.CityKyiv)
	_ = l.Add(CategoryEventType, catalog.EventBirthday)
	_ = l.Add(CategoryPackage, "Класичний")
	_ = l.Add(CategoryDistrict, "Оболонь")

	var s Services
	s.Set("📸 Фотограф", "1500 грн")

	total, lines := ComputeTotal(&l, &s, cat)
	if total != 5000+1500+300 {
		t.Errorf("total = %d, want 6800", total)
	}
	// Main selection first, then add-ons, then taxi.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "Пакет") {
		t.Errorf("line 0 = %q, want the package first", lines[0])
	}
	if !strings.Contains(lines[1], "Фотограф") {
		t.Errorf("line 1 = %q, want the add-on second", lines[1])
	}
	if !strings.Contains(lines[2], "Таксі") {
		t.Errorf("line 2 = %q, want taxi last", lines[2])
	}
}
