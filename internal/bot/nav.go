package bot

import "svyato-bot/internal/order"

// applyBack rewinds the session one dialogue step: it drops the ledger entry
// the previous step recorded and moves to that step, so backing out and
// re-selecting the same option leaves the ledger unchanged. Backing out of
// the first step and the contact step stays put.
func applyBack(s *Session) {
	switch s.Step {
	case StepCity, StepPhoneContact:
		// Nothing to rewind.

	case StepEventType:
		s.Ledger.RemoveCategory(order.CategoryCity)
		s.City = ""
		s.Step = StepCity

	case StepFamilyTrip, StepEventOther, StepLocation:
		s.Ledger.RemoveCategory(order.CategoryEventType)
		s.Step = StepEventType

	case StepFamilyAddOn:
		s.Ledger.RemoveCategory(order.CategoryFamily)
		s.Step = StepFamilyTrip

	case StepLocationOther:
		s.Step = StepLocation

	case StepTheme:
		s.Ledger.RemoveCategory(order.CategoryLocation)
		s.Step = StepLocation

	case StepSubTheme:
		s.Ledger.RemoveCategory(order.CategoryTheme)
		s.Step = StepTheme

	case StepThemeDetails:
		s.Ledger.RemoveCategory(order.CategorySubTheme)
		s.Step = StepSubTheme

	case StepFormat:
		// The details step records nothing, its confirm only advances.
		s.Step = StepThemeDetails

	case StepHourly, StepPackage, StepQuest:
		s.Ledger.RemoveCategory(order.CategoryFormat)
		s.Quest = ""
		s.Step = StepFormat

	case StepQuestDuration:
		s.Quest = ""
		s.Step = StepQuest

	case StepFinal:
		s.Step = rewindPricing(s)

	case StepAddOns:
		s.Removing = false
		s.Step = StepFinal

	case StepAddOnOption:
		s.Service = ""
		s.Step = StepAddOns

	case StepDistrict:
		s.Step = StepAddOns

	case StepSummary:
		s.Ledger.RemoveCategory(order.CategoryDistrict)
		s.Step = StepDistrict

	default:
		s.Step = StepCity
	}
}

// rewindPricing drops whichever pricing entry the final step was reached
// through and names the step that recorded it.
func rewindPricing(s *Session) string {
	if _, ok := s.Ledger.Latest(order.CategoryHourly); ok {
		s.Ledger.RemoveCategory(order.CategoryHourly)
		return StepHourly
	}
	if _, ok := s.Ledger.Latest(order.CategoryPackage); ok {
		s.Ledger.RemoveCategory(order.CategoryPackage)
		return StepPackage
	}
	if _, ok := s.Ledger.Latest(order.CategoryQuest); ok {
		s.Ledger.RemoveCategory(order.CategoryQuest)
		s.Quest = ""
		return StepQuest
	}
	return StepFormat
}
