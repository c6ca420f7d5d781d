package services

import (
	"fmt"
	"regexp"
	"strings"

	"jalwa-telegram/models"
)

// intentRule pairs a trigger pattern with a reply builder. Rules are matched
// against the full lowercase utterance, not the filtered tokens.
type intentRule struct {
	pattern *regexp.Regexp
	respond func(menu []models.MenuItem, contact models.ContactInfo) string
}

// intentRules is evaluated top to bottom, first match wins. The order is a
// contract: many utterances satisfy several patterns (e.g. "what vegan items
// are on the menu" also contains an hours-ish "when"-free menu cue), and the
// more specific rule must sit above the generic one or it never fires.
var intentRules = []intentRule{
	{
		pattern: regexp.MustCompile(`hello|hi|hey|namaste|morning|evening`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Hello! Welcome to Jalwa. How can I assist you with your dining plans today?"
		},
	},
	{
		pattern: regexp.MustCompile(`hours|open|close|time|when`),
		respond: func(_ []models.MenuItem, contact models.ContactInfo) string {
			return "We are open:\n" + strings.Join(contact.Hours, "\n")
		},
	},
	{
		pattern: regexp.MustCompile(`address|location|where|directions`),
		respond: func(_ []models.MenuItem, contact models.ContactInfo) string {
			return fmt.Sprintf("We are located at %s.", contact.Address)
		},
	},
	{
		pattern: regexp.MustCompile(`phone|call|number|contact`),
		respond: func(_ []models.MenuItem, contact models.ContactInfo) string {
			return fmt.Sprintf("You can reach us at %s.", contact.Phone)
		},
	},
	{
		pattern: regexp.MustCompile(`parking|park`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "There is street parking available on Glenridge Ave and municipal lots nearby."
		},
	},
	{
		pattern: regexp.MustCompile(`wifi|internet`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Yes, we offer complimentary Wi-Fi for our dining guests."
		},
	},
	{
		pattern: regexp.MustCompile(`halal`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Yes, all of our meats are Halal certified."
		},
	},
	{
		pattern: regexp.MustCompile(`dine.*in|seating|table`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Yes, we offer comfortable dine-in service with a modern ambiance. We recommend booking a table for weekends."
		},
	},
	{
		pattern: regexp.MustCompile(`book|reserve|reservation`),
		respond: func(_ []models.MenuItem, contact models.ContactInfo) string {
			return fmt.Sprintf("For reservations, please call us at %s. We recommend booking in advance for weekends!", contact.Phone)
		},
	},
	{
		pattern: regexp.MustCompile(`catering|party|event|tray`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "We offer exceptional catering for all occasions! You can view our Party Trays menu or submit an inquiry on our Catering page. We handle corporate events, weddings, and private parties."
		},
	},
	{
		// "veg" is anchored to word boundaries so it doesn't fire inside
		// unrelated words; "vegan"/"vegetarian" match as plain substrings.
		pattern: regexp.MustCompile(`vegan|vegetarian|\bveg\b`),
		respond: func(menu []models.MenuItem, _ models.ContactInfo) string {
			names := filterNames(menu, 4, func(i models.MenuItem) bool {
				return i.IsVegan || i.IsVegetarian
			})
			return fmt.Sprintf("We have excellent vegetarian and vegan options! Some favorites include: %s.", strings.Join(names, ", "))
		},
	},
	{
		pattern: regexp.MustCompile(`gluten|gf|wheat`),
		respond: func(menu []models.MenuItem, _ models.ContactInfo) string {
			names := filterNames(menu, 3, func(i models.MenuItem) bool {
				return i.IsGlutenFree
			})
			return fmt.Sprintf("Many of our curries and tandoor items are Gluten-Free, such as: %s. Please inform your server of any allergies.", strings.Join(names, ", "))
		},
	},
	{
		pattern: regexp.MustCompile(`allergy|nut|dairy`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Please let the restaurant staff know your allergies when you place the order so they can confirm and take extra care. We take allergies very seriously."
		},
	},
	{
		pattern: regexp.MustCompile(`spicy|hot|mild`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Our dishes can be customized to your preference! Whether you like it mild, medium, or Indian hot, just let us know when ordering."
		},
	},
	{
		pattern: regexp.MustCompile(`chef|cook`),
		respond: func(_ []models.MenuItem, _ models.ContactInfo) string {
			return "Our Head Chef is Mayur Naik, who brings years of experience from prestigious establishments to create our modern Indian cuisine."
		},
	},
}

// MatchRule runs the lowercase utterance through the rule list and returns
// the first matching rule's reply, or ok=false when no rule fires.
func MatchRule(lower string, menu []models.MenuItem, contact models.ContactInfo) (string, bool) {
	for _, r := range intentRules {
		if r.pattern.MatchString(lower) {
			return r.respond(menu, contact), true
		}
	}
	return "", false
}

// filterNames collects up to limit item names, in catalog order.
func filterNames(menu []models.MenuItem, limit int, keep func(models.MenuItem) bool) []string {
	var names []string
	for _, item := range menu {
		if !keep(item) {
			continue
		}
		names = append(names, item.Name)
		if len(names) == limit {
			break
		}
	}
	return names
}
