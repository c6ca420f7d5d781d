package services

import (
	"strings"

	"jalwa-telegram/models"
)

// MatchMenuItem is the fallback lookup when no intent rule fires. It returns
// the first catalog item (catalog order, no ranking) whose name either
// appears verbatim in the cleaned utterance, or overlaps at least half of
// the significant input tokens.
func MatchMenuItem(clean string, tokens []string, menu []models.MenuItem) (models.MenuItem, bool) {
	for _, item := range menu {
		if matchesItem(clean, tokens, item) {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func matchesItem(clean string, tokens []string, item models.MenuItem) bool {
	name := strings.ToLower(item.Name)

	// Direct mention of the full dish name, independent of tokenization.
	if strings.Contains(clean, name) {
		return true
	}

	// With no significant tokens only the substring path can match.
	if len(tokens) == 0 {
		return false
	}

	// A token intersects when it is contained in some name word, so plural
	// and partial forms still count ("curries" does not, "curr" would).
	nameWords := strings.Fields(name)
	intersection := 0
	for _, tok := range tokens {
		for _, nw := range nameWords {
			if strings.Contains(nw, tok) {
				intersection++
				break
			}
		}
	}

	// ceil(len(tokens) * 0.5): at least half the tokens must land.
	return intersection >= (len(tokens)+1)/2
}
