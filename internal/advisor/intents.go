package advisor

import "strings"

// Intent classifies what the customer is asking for.
type Intent string

const (
	IntentGeneral      Intent = "general-question"
	IntentConsultation Intent = "consultation"
	IntentVisitBooking Intent = "visit-booking"
	IntentPhone        Intent = "phone"
	IntentPricing      Intent = "pricing"
	IntentUrgent       Intent = "urgent"
	IntentDiagnosis    Intent = "diagnosis"
	IntentHowTo        Intent = "how-to"
)

// Shop contact details surfaced by the canned responses.
const (
	shopPhone    = "555-0134"
	shopHours    = "9:00-18:00, closed Sundays"
	shopLocation = "the workshop on Harbor Road"
)

// intentOrder fixes detection order so repeated runs report intents in
// the same sequence.
var intentOrder = []Intent{
	IntentUrgent,
	IntentVisitBooking,
	IntentPhone,
	IntentPricing,
	IntentDiagnosis,
	IntentHowTo,
	IntentConsultation,
}

// intentPatterns holds the literal phrases that signal each intent.
// Matching is case-insensitive containment, same as keyword routing.
var intentPatterns = map[Intent][]string{
	IntentUrgent: {
		"urgent", "emergency", "right now", "immediately", "stranded",
		"broke down", "smoke", "burning smell",
	},
	IntentVisitBooking: {
		"appointment", "book a visit", "bring it in", "drop off",
		"come by", "opening hours", "when are you open",
	},
	IntentPhone: {
		"phone", "call you", "call the shop", "speak to someone",
		"talk to someone",
	},
	IntentPricing: {
		"price", "cost", "how much", "estimate", "quote", "expensive",
	},
	IntentDiagnosis: {
		"what's wrong", "whats wrong", "why is", "why does", "broken",
		"not working", "doesn't work", "won't start", "wont start",
	},
	IntentHowTo: {
		"how do i", "how to", "how can i", "steps to", "instructions",
	},
	IntentConsultation: {
		"advice", "recommend", "should i", "worth it", "what do you think",
	},
}

// DetectIntents returns every intent whose patterns appear in the
// query, in a fixed order. A query matching nothing gets the general
// intent.
func DetectIntents(query string) []Intent {
	q := strings.ToLower(query)

	var found []Intent
	for _, intent := range intentOrder {
		for _, pat := range intentPatterns[intent] {
			if strings.Contains(q, pat) {
				found = append(found, intent)
				break
			}
		}
	}
	if len(found) == 0 {
		return []Intent{IntentGeneral}
	}
	return found
}

// Canned responses for requests a model call would only slow down.
const (
	urgentResponse = "That sounds urgent. Please stop using the affected system and call us right away at " + shopPhone + " so we can talk you through it. If there is smoke, a gas smell, or any risk to you, get clear of the vehicle first."

	visitBookingResponse = "We'd be glad to take a look in person. The workshop is open " + shopHours + " at " + shopLocation + ". Call " + shopPhone + " to book a slot, and mention what the camper is doing so we can set aside the right amount of time."

	phoneResponse = "You can reach the workshop at " + shopPhone + " during opening hours (" + shopHours + "). One of the mechanics will pick up."
)

// CannedResponse returns the fixed shop response for intents that
// never need the model. Urgency outranks booking, booking outranks a
// plain phone request.
func CannedResponse(intents []Intent) (string, bool) {
	has := make(map[Intent]bool, len(intents))
	for _, it := range intents {
		has[it] = true
	}
	switch {
	case has[IntentUrgent]:
		return urgentResponse, true
	case has[IntentVisitBooking]:
		return visitBookingResponse, true
	case has[IntentPhone]:
		return phoneResponse, true
	}
	return "", false
}
