package advisor

import (
	"strings"
	"testing"
)

func TestDetectIntents(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []Intent
	}{
		{"default", "tell me about campervans", []Intent{IntentGeneral}},
		{"pricing", "how much does a new water pump cost", []Intent{IntentPricing}},
		{"diagnosis", "the fridge is not working", []Intent{IntentDiagnosis}},
		{"how-to", "how do i bleed the heater lines", []Intent{IntentHowTo}},
		{"urgent", "there's a burning smell from the fuse box", []Intent{IntentUrgent}},
		{"booking", "can I bring it in on Tuesday", []Intent{IntentVisitBooking}},
		{"phone", "I'd rather call you about this", []Intent{IntentPhone}},
		{
			"multiple in fixed order",
			"how much would it cost, and how do I replace it myself",
			[]Intent{IntentPricing, IntentHowTo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIntents(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectIntents(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("intent[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectIntentsIsCaseInsensitive(t *testing.T) {
	got := DetectIntents("URGENT: camper BROKE DOWN on the motorway")
	if len(got) == 0 || got[0] != IntentUrgent {
		t.Errorf("got %v, want urgent first", got)
	}
}

func TestCannedResponsePriority(t *testing.T) {
	reply, ok := CannedResponse([]Intent{IntentVisitBooking, IntentUrgent})
	if !ok {
		t.Fatal("expected a canned response")
	}
	if reply != urgentResponse {
		t.Errorf("urgency should outrank booking, got %q", reply)
	}

	reply, ok = CannedResponse([]Intent{IntentPhone})
	if !ok || !strings.Contains(reply, shopPhone) {
		t.Errorf("phone response should carry the shop number: %q", reply)
	}

	if _, ok := CannedResponse([]Intent{IntentPricing, IntentGeneral}); ok {
		t.Error("pricing should go to the model, not a canned response")
	}
}
