package catalog

// Menu labels reused across tables.
const (
	EventBirthday   = "🎂 День народження"
	EventGraduation = "🎓 Випускний"
	EventFamily     = "👨‍👩‍👧‍👦 Сімейне свято"
	EventOther      = "🎯 Інше"
	EventAfisha     = "📅 Афіша подій"

	LocationHome        = "🏠 Додому"
	LocationCafe        = "☕️ В кафе"
	LocationSchool      = "🏫 Садочок-школа"
	LocationCountryside = "🏰 Заміський комплекс"
	LocationOther       = "📍 Інше"

	FormatHourly  = "⏰ Погодинно"
	FormatPackage = "📦 Пакетні пропозиції"
	FormatQuest   = "🎯 Квести"

	DistrictOther = "Інше"

	// CountrysideSuffix marks the hourly price key used for countryside
	// venues ("<event type> (турбаза)").
	CountrysideSuffix = " (турбаза)"
)

const (
	CityKyiv      = "Київ"
	CityKryvyiRih = "Кривий Ріг"
)

// Default returns the built-in configuration tables.
func Default() *Catalog {
	return &Catalog{
		Cities: []string{CityKyiv, CityKryvyiRih},

		EventTypes: []string{
			EventBirthday,
			EventGraduation,
			EventFamily,
			EventOther,
			EventAfisha,
		},

		Locations: map[string][]string{
			EventBirthday: {
				LocationHome,
				LocationCafe,
				LocationSchool,
				LocationCountryside,
				LocationOther,
			},
			EventGraduation: {
				LocationCafe,
				LocationSchool,
				LocationCountryside,
				LocationOther,
			},
		},

		LocationInfo: map[string]map[string]string{
			CityKyiv: {
				LocationHome:        "Аніматори приїжджають до вас додому з усім реквізитом.",
				LocationCafe:        "Працюємо з усіма дитячими кафе Києва, допоможемо з вибором закладу.",
				LocationSchool:      "Програми адаптовані під садочок або школу, від 1 години.",
				LocationCountryside: "Святкування у заміському комплексі: великі локації, квести на природі.",
			},
			CityKryvyiRih: {
				LocationHome:        "Аніматори приїжджають до вас додому з усім реквізитом.",
				LocationCafe:        "Підкажемо перевірені кафе у вашому районі.",
				LocationSchool:      "Програми адаптовані під садочок або школу, від 1 години.",
				LocationCountryside: "Святкування у заміському комплексі поруч з містом.",
			},
		},

		Themes: []string{
			"🦸 Супергерої",
			"🧚 Казкові герої",
			"🎮 Ігрові всесвіти",
			"🕵️ Детективи",
		},

		ThemeInfo: map[string]string{
			"🦸 Супергерої":    "Костюмовані аніматори, трюки та супергеройські випробування.",
			"🧚 Казкові герої":  "Класичні казкові персонажі для наймолодших гостей.",
			"🎮 Ігрові всесвіти": "Програми за мотивами популярних ігор.",
			"🕵️ Детективи":     "Розслідування з загадками та реквізитом.",
		},

		SubThemes: map[string]map[string][]string{
			CityKyiv: {
				"🦸 Супергерої":    {"Людина-павук", "Бетмен", "Месники", "Жінка-кішка"},
				"🧚 Казкові герої":  {"Ельза", "Попелюшка", "Рапунцель"},
				"🎮 Ігрові всесвіти": {"Майнкрафт", "Роблокс", "Бравл Старс"},
				"🕵️ Детективи":     {"Шерлок", "Шпигунська академія"},
			},
			CityKryvyiRih: {
				"🦸 Супергерої":    {"Людина-павук", "Бетмен"},
				"🧚 Казкові герої":  {"Ельза", "Попелюшка"},
				"🎮 Ігрові всесвіти": {"Майнкрафт", "Роблокс"},
				"🕵️ Детективи":     {"Шерлок"},
			},
		},

		Formats: []string{FormatHourly, FormatPackage, FormatQuest},

		Hourly: map[string]map[string][]PricedItem{
			CityKyiv: {
				EventBirthday: {
					{Label: "1 година", Price: "1000 грн"},
					{Label: "1.5 години", Price: "1500 грн"},
					{Label: "2 години", Price: "2000 грн"},
					{Label: "3 години", Price: "3000 грн"},
					{Label: "більше", Price: "ціна уточнюється"},
				},
				EventBirthday + CountrysideSuffix: {
					{Label: "2 години", Price: "4000 грн"},
					{Label: "3 години", Price: "6000 грн"},
					{Label: "більше", Price: "ціна уточнюється"},
				},
				EventGraduation: {
					{Label: "1 година", Price: "1500 грн"},
					{Label: "2 години", Price: "3000 грн"},
					{Label: "3 години", Price: "4500 грн"},
					{Label: "більше", Price: "ціна уточнюється"},
				},
				EventGraduation + CountrysideSuffix: {
					{Label: "2 години", Price: "5000 грн"},
					{Label: "3 години", Price: "7500 грн"},
				},
			},
			CityKryvyiRih: {
				EventBirthday: {
					{Label: "1 година", Price: "800 грн"},
					{Label: "1.5 години", Price: "1200 грн"},
					{Label: "2 години", Price: "1600 грн"},
					{Label: "3 години", Price: "2400 грн"},
				},
				EventBirthday + CountrysideSuffix: {
					{Label: "2 години", Price: "3200 грн"},
					{Label: "3 години", Price: "4800 грн"},
				},
				EventGraduation: {
					{Label: "1 година", Price: "1200 грн"},
					{Label: "2 години", Price: "2400 грн"},
					{Label: "3 години", Price: "3600 грн"},
				},
			},
		},

		Packages: map[string]map[string][]PricedItem{
			CityKyiv: {
				EventBirthday: {
					{Label: "Класичний", Price: "5000 грн"},
					{Label: "Преміум", Price: "8000 грн"},
					{Label: "VIP", Price: "12000 грн"},
				},
				EventGraduation: {
					{Label: "Класичний", Price: "6000 грн"},
					{Label: "Преміум", Price: "9500 грн"},
				},
			},
			CityKryvyiRih: {
				EventBirthday: {
					{Label: "Класичний", Price: "4000 грн"},
					{Label: "Преміум", Price: "6500 грн"},
				},
				EventGraduation: {
					{Label: "Класичний", Price: "5000 грн"},
					{Label: "Преміум", Price: "8000 грн"},
				},
			},
		},

		Quests: map[string][]Quest{
			CityKyiv: {
				{
					Name: "🔎 Детективна агенція (Шерлок)",
					Durations: []PricedItem{
						{Label: "1 година", Price: "1500 грн"},
						{Label: "2 години", Price: "2500 грн"},
					},
				},
				{
					Name: "🏴‍☠️ Піратський скарб",
					Durations: []PricedItem{
						{Label: "1 година", Price: "1400 грн"},
						{Label: "1.5 години", Price: "1900 грн"},
					},
				},
				{
					Name: "🧟 Зомбі-апокаліпсис (13+)",
					Durations: []PricedItem{
						{Label: "2 години", Price: "3000 грн"},
					},
				},
			},
			CityKryvyiRih: {
				{
					Name: "🏴‍☠️ Піратський скарб",
					Durations: []PricedItem{
						{Label: "1 година", Price: "1200 грн"},
						{Label: "1.5 години", Price: "1600 грн"},
					},
				},
				{
					Name: "🔎 Детективна агенція (Шерлок)",
					Durations: []PricedItem{
						{Label: "1 година", Price: "1300 грн"},
						{Label: "2 години", Price: "2200 грн"},
					},
				},
			},
		},

		Services: map[string][]Service{
			CityKyiv: {
				{
					Name: "🎭 Шоу програма",
					Options: []string{
						"Шоу мильних бульбашок - 1500 грн",
						"Кріо шоу - 2500 грн",
						"Паперове шоу - 2000 грн",
					},
				},
				{
					Name: "🎨 Майстер класи",
					Options: []string{
						"Кулінарний - Піца - 800 грн",
						"Кулінарний - Капкейки - 900 грн",
						"Творчий - Слайми - 700 грн",
					},
				},
				{
					Name: "🤡 Клоун",
					Options: []string{
						"Клоун - Міні - 900 грн",
						"Клоун - Великий - 1500 грн",
					},
				},
				{Name: "🪅 Піньята", Price: "500 грн"},
				{Name: "📸 Фотограф", Price: "1500 грн"},
				{Name: "🎥 Відеограф", Price: "2000 грн"},
				{Name: "🫧 Генератор мильних бульбашок", Price: "400 грн"},
				{Name: "🎈 Декор", Price: "ціна уточнюється"},
			},
			CityKryvyiRih: {
				{
					Name: "🎭 Шоу програма",
					Options: []string{
						"Шоу мильних бульбашок - 1200 грн",
						"Паперове шоу - 1600 грн",
					},
				},
				{Name: "🪅 Піньята", Price: "400 грн"},
				{Name: "📸 Фотограф", Price: "1200 грн"},
				{Name: "🎈 Декор", Price: "ціна уточнюється"},
			},
		},

		Taxi: map[string][]PricedItem{
			CityKyiv: {
				{Label: "Оболонь", Price: "300 грн"},
				{Label: "Позняки", Price: "350 грн"},
				{Label: "Троєщина", Price: "400 грн"},
				{Label: "Печерськ", Price: "250 грн"},
				{Label: "Святошин", Price: "350 грн"},
				{Label: DistrictOther, Price: "500 грн"},
			},
			CityKryvyiRih: {
				{Label: "Центрально-Міський", Price: "150 грн"},
				{Label: "Саксаганський", Price: "200 грн"},
				{Label: "Металургійний", Price: "200 грн"},
				{Label: DistrictOther, Price: "300 грн"},
			},
		},

		FamilyTrips: map[string][]PricedItem{
			CityKyiv: {
				{Label: "Сімейний квест у парку", Price: "2500 грн"},
				{Label: "Пікнік з аніматором", Price: "3000 грн"},
				{Label: "Виїзд на турбазу (день)", Price: "6000 грн"},
			},
			CityKryvyiRih: {
				{Label: "Сімейний квест у парку", Price: "2000 грн"},
				{Label: "Пікнік з аніматором", Price: "2400 грн"},
			},
		},

		Managers: map[string]Manager{
			CityKyiv: {
				Name:     "Олена",
				Phone:    "+380671234567",
				Telegram: "https://t.me/svyato_kyiv",
			},
			CityKryvyiRih: {
				Name:     "Ірина",
				Phone:    "+380977654321",
				Telegram: "https://t.me/svyato_kr",
			},
		},

		CityChannels: map[string]string{
			CityKyiv:      "https://t.me/svyato_kyiv_afisha",
			CityKryvyiRih: "https://t.me/svyato_kr_afisha",
		},

		GeneralInfo: map[string]string{
			CityKyiv:      "Організовуємо будь-які свята у Києві: корпоративи, ювілеї, гендер-паті. Розкажіть менеджеру, що ви задумали.",
			CityKryvyiRih: "Організовуємо будь-які свята у Кривому Розі. Розкажіть менеджеру, що ви задумали.",
		},

		Greeting: "Привіт! 👋 Я допоможу спланувати ваше свято та порахувати приблизну вартість.\n\nОберіть ваше місто:",

		FamilyInfo: "Сімейні свята — це виїзні програми для всієї родини. Оберіть програму:",

		FamilyInfo2: "Чудовий вибір! Менеджер узгодить з вами дату, місце та деталі програми.",
	}
}
