package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/taskflow/pkg/core"
)

// Segment splits an utterance into candidate phrases, preserving order.
// Empty or delimiter-only input yields nil.
func Segment(utterance string) []string {
	var phrases []string
	for _, piece := range delimiterRe.Split(utterance, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			phrases = append(phrases, piece)
		}
	}
	return phrases
}

// Classify builds the intent for one phrase.
// ok is false when nothing is left of the title after cleanup.
func Classify(phrase string) (intent core.Intent, ok bool) {
	intent.Title = CleanTitle(phrase)
	if intent.Title == "" {
		return core.Intent{}, false
	}
	intent.Group = GroupOf(phrase)
	intent.Due = DueOf(phrase)
	return intent, true
}

// GroupOf returns the group of the first matching rule, or the inbox.
func GroupOf(phrase string) core.Group {
	lower := strings.ToLower(phrase)
	for _, r := range groupRules {
		if r.Match(lower) {
			return r.Group
		}
	}
	return core.GroupInbox
}

// DueOf returns the label of the first matching due-date rule, or "".
func DueOf(phrase string) core.DueDate {
	lower := strings.ToLower(phrase)
	for _, r := range dueRules {
		if r.Match(lower) {
			return r.Due
		}
	}
	return ""
}

// CleanTitle strips temporal words, collapses whitespace and upper-cases the
// first character. The rest of the casing is left untouched.
func CleanTitle(phrase string) string {
	title := titleNoiseRe.ReplaceAllString(phrase, "")
	title = spaceRunRe.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	return capitalize(title)
}

// Parse segments utterance and classifies every phrase, dropping the ones
// whose title ends up empty.
func Parse(utterance string) []core.Intent {
	var intents []core.Intent
	for _, phrase := range Segment(utterance) {
		if intent, ok := Classify(phrase); ok {
			intents = append(intents, intent)
		}
	}
	return intents
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
