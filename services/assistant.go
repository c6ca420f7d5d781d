package services

import (
	"fmt"
	"strconv"
	"strings"

	"jalwa-telegram/models"
)

// WelcomeText opens every new chat session.
const WelcomeText = "Namaste! I'm the Jalwa AI Assistant. How can I help you today? (Ask me about our menu, hours, dietary options, or catering!)"

// GenerateResponse turns one user utterance into a reply. It is a pure
// function of its arguments: rules first, then the fuzzy menu lookup, then
// the apology fallback, so every non-empty input gets exactly one reply.
// Callers must skip empty/whitespace-only input before calling.
func GenerateResponse(input string, menu []models.MenuItem, contact models.ContactInfo) string {
	lower := strings.ToLower(input)

	if reply, ok := MatchRule(lower, menu, contact); ok {
		return reply
	}

	clean := CleanUtterance(input)
	tokens := Tokenize(clean)
	if item, ok := MatchMenuItem(clean, tokens, menu); ok {
		return fmt.Sprintf("Yes! We have %s ($%s). %s", item.Name, FormatPrice(item.Price), item.Description)
	}

	return fmt.Sprintf("I'm not 100%% sure about that specific detail. Please call the restaurant directly at %s so our team can help you!", contact.Phone)
}

// FormatPrice renders a price without trailing zeros: 18.5 -> "18.5", 7 -> "7".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
