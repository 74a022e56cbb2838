package order

import "testing"

func TestAddSingletonReplaces(t *testing.T) {
	var l Ledger

	singles := []struct {
		category string
		values   []string
	}{
		{CategoryFormat, []string{"⏰ Погодинно", "📦 Пакетні пропозиції", "🎯 Квести"}},
		{CategoryHourly, []string{"1 година - 1000 грн", "2 години - 2000 грн"}},
		{CategoryPackage, []string{"Класичний", "Преміум"}},
	}

	for _, s := range singles {
		for _, v := range s.values {
			if err := l.Add(s.category, v); err != nil {
				t.Fatalf("Add(%s, %s): %v", s.category, v, err)
			}

			count := 0
			for _, c := range l.Choices {
				if c.Category == s.category {
					count++
				}
			}
			if count != 1 {
				t.Fatalf("category %s has %d entries after add, want 1", s.category, count)
			}

			latest, ok := l.Latest(s.category)
			if !ok || latest.Value != v {
				t.Fatalf("Latest(%s) = %q, %v; want %q", s.category, latest.Value, ok, v)
			}
		}
	}
}

func TestAddRepeatableAppends(t *testing.T) {
	var l Ledger

	if err := l.Add(CategoryTheme, "🦸 Супергерої"); err != nil {
		t.Fatal(err)
	}
	if err := l.Add(CategoryTheme, "🕵️ Детективи"); err != nil {
		t.Fatal(err)
	}

	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}
	latest, _ := l.Latest(CategoryTheme)
	if latest.Value != "🕵️ Детективи" {
		t.Errorf("Latest = %q, want the most recent theme", latest.Value)
	}
	first, _ := l.First(CategoryTheme)
	if first.Value != "🦸 Супергерої" {
		t.Errorf("First = %q, want the earliest theme", first.Value)
	}
}

func TestAddRejectsEmpty(t *testing.T) {
	var l Ledger

	if err := l.Add("", "x"); err == nil {
		t.Error("empty category must be rejected")
	}
	if err := l.Add(CategoryCity, "  "); err == nil {
		t.Error("blank value must be rejected")
	}
	if l.Len() != 0 {
		t.Error("rejected adds must not mutate the ledger")
	}
}

func TestRemoveCategory(t *testing.T) {
	var l Ledger
	_ = l.Add(CategoryCity, "Київ")
	_ = l.Add(CategoryTheme, "🦸 Супергерої")
	_ = l.Add(CategoryTheme, "🕵️ Детективи")

	l.RemoveCategory(CategoryTheme)
	if _, ok := l.Latest(CategoryTheme); ok {
		t.Error("Latest after RemoveCategory must report absence")
	}
	if l.Len() != 1 {
		t.Errorf("len = %d, want 1", l.Len())
	}

	// Removing an absent category is a no-op.
	l.RemoveCategory(CategoryQuest)
	if l.Len() != 1 {
		t.Error("removing an absent category must not mutate the ledger")
	}
}

func TestRenderPreservesOrder(t *testing.T) {
	var l Ledger
	_ = l.Add(CategoryCity, "Київ")
	_ = l.Add(CategoryEventType, "🎂 День народження")
	_ = l.Add(CategoryPackage, "Класичний")

	lines := l.Render()
	want := []string{
		"Місто: Київ",
		"Тип події: 🎂 День народження",
		"Пакет: Класичний",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestServicesSetReplaces(t *testing.T) {
	var s Services

	s.Set("🤡 Клоун", "Клоун - Міні - 900 грн")
	s.Set("📸 Фотограф", "1500 грн")
	s.Set("🤡 Клоун", "Клоун - Великий - 1500 грн")

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	opt, ok := s.Get("🤡 Клоун")
	if !ok || opt != "Клоун - Великий - 1500 грн" {
		t.Errorf("Get = %q, want the replacing option", opt)
	}
	// Replacement keeps the original pick order.
	if s.Selected[0].Service != "🤡 Клоун" {
		t.Error("replacing an option must not reorder selections")
	}

	s.Remove("🤡 Клоун")
	if _, ok := s.Get("🤡 Клоун"); ok {
		t.Error("Get after Remove must report absence")
	}
	s.Remove("🎈 Декор")
	if s.Len() != 1 {
		t.Error("removing an absent service must not mutate selections")
	}
}
