package services

import (
	"strings"
	"testing"

	"jalwa-telegram/models"
)

var testContact = models.ContactInfo{
	Address: "84 Glenridge Ave, St. Catharines, ON",
	Phone:   "(905) 688-2662",
	Hours:   []string{"Mon-Fri 11-10", "Sat-Sun 12-11"},
}

func TestMatchRuleCues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // substring the reply must contain
	}{
		{"greeting", "hello there", "Welcome to Jalwa"},
		{"greeting namaste", "namaste", "Welcome to Jalwa"},
		{"hours", "when do you open", "We are open:"},
		{"location", "where are you located", testContact.Address},
		{"contact", "phone number please", testContact.Phone},
		{"parking", "is there parking", "street parking"},
		{"wifi", "got wifi?", "Wi-Fi"},
		{"halal", "is your meat halal", "Halal certified"},
		{"seating", "can we get a table", "dine-in service"},
		{"reservation", "can I reserve a spot", "For reservations"},
		{"catering", "do you do catering", "catering for all occasions"},
		{"vegan", "any vegan dishes", "vegetarian and vegan options"},
		{"veg whole word", "veg options please", "vegetarian and vegan options"},
		{"gluten free", "gluten free food?", "Gluten-Free"},
		{"allergy", "I have a nut allergy", "take allergies very seriously"},
		{"spice", "how spicy is it", "mild, medium, or Indian hot"},
		{"chef", "who is the chef", "Mayur Naik"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchRule(strings.ToLower(tt.input), models.DefaultMenu, testContact)
			if !ok {
				t.Fatalf("MatchRule(%q): no rule fired", tt.input)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("MatchRule(%q) = %q, want it to contain %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchRuleNoCue(t *testing.T) {
	for _, input := range []string{
		"tell me a joke",
		"butter paneer please", // menu lookup is the fuzzy stage's job
		"veggie platter",       // bare "veg" only fires as a whole word
	} {
		if got, ok := MatchRule(input, models.DefaultMenu, testContact); ok {
			t.Errorf("MatchRule(%q) fired unexpectedly: %q", input, got)
		}
	}
}

// Rule order is a contract: the first matching rule wins even when a later
// rule also matches.
func TestMatchRulePriority(t *testing.T) {
	got, ok := MatchRule("what vegan items are gluten free", models.DefaultMenu, testContact)
	if !ok {
		t.Fatal("no rule fired")
	}
	if !strings.Contains(got, "vegetarian and vegan options") {
		t.Errorf("vegan rule must win over gluten-free rule, got %q", got)
	}
	if strings.Contains(got, "Gluten-Free") {
		t.Errorf("gluten-free rule fired despite lower priority: %q", got)
	}
}

func TestHoursRoundTrip(t *testing.T) {
	got, ok := MatchRule("what are your hours", models.DefaultMenu, testContact)
	if !ok {
		t.Fatal("hours rule did not fire")
	}
	want := "We are open:\nMon-Fri 11-10\nSat-Sun 12-11"
	if got != want {
		t.Errorf("hours reply = %q, want %q", got, want)
	}
}

func TestDietaryShortlists(t *testing.T) {
	got, _ := MatchRule("vegan options", models.DefaultMenu, testContact)
	// First 4 vegan-or-vegetarian items in catalog order.
	if !strings.Contains(got, "Vegetable Samosa, Paneer Pakora, Chana Masala, Palak Paneer") {
		t.Errorf("vegan shortlist wrong: %q", got)
	}

	got, _ = MatchRule("gluten free options", models.DefaultMenu, testContact)
	// First 3 gluten-free items in catalog order.
	if !strings.Contains(got, "Chicken 65, Paneer Pakora, Butter Chicken Curry") {
		t.Errorf("gluten-free shortlist wrong: %q", got)
	}
}
