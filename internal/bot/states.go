package bot

// Dialogue steps. Stored in the session snapshot, so the literals are part of
// the persisted format and must stay stable across releases.
const (
	StepCity          = "choosing_city"
	StepEventType     = "choosing_event_type"
	StepFamilyTrip    = "choosing_family_trip"
	StepFamilyAddOn   = "family_add_on"
	StepEventOther    = "event_other"
	StepLocation      = "choosing_location"
	StepLocationOther = "location_other"
	StepTheme         = "choosing_theme"
	StepSubTheme      = "choosing_sub_theme"
	StepThemeDetails  = "theme_details"
	StepFormat        = "choosing_format"
	StepHourly        = "choosing_hourly_price"
	StepPackage       = "choosing_package"
	StepQuest         = "choosing_quest"
	StepQuestDuration = "choosing_quest_duration"
	StepFinal         = "choosing_final"
	StepAddOns        = "choosing_add_ons"
	StepAddOnOption   = "choosing_add_on_option"
	StepDistrict      = "choosing_district"
	StepSummary       = "summary"
	StepPhoneContact  = "phone_contact"
)

// Reply-keyboard buttons recognized by the handlers.
const (
	BtnBack         = "⬅️ Назад"
	BtnManager      = "📞 Зв'язатися з менеджером"
	BtnRestart      = "🔄 Почати спочатку"
	BtnNext         = "➡️ Далі"
	BtnConfirm      = "✅ Підтвердити"
	BtnAddServices  = "➕ Додаткові послуги"
	BtnShowSummary  = "📋 Підсумок"
	BtnShowSelected = "📋 Обрані послуги"
	BtnRemoveMode   = "❌ Видалити послугу"
	BtnSendOrder    = "✅ Надіслати менеджеру"
	BtnSharePhone   = "📱 Поділитися контактом"
	BtnSkip         = "Пропустити"

	// removePrefix marks buttons shown in removal mode.
	removePrefix = "❌ "
)
