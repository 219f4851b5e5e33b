package parse

import (
	"regexp"
	"strings"

	"github.com/aretw0/taskflow/pkg/core"
)

// GroupRule assigns Group when any of Triggers occurs as a whole word.
type GroupRule struct {
	Group    core.Group
	Triggers []string
	re       *regexp.Regexp
}

// Match reports whether the rule fires on phrase.
func (r GroupRule) Match(phrase string) bool {
	return r.re.MatchString(phrase)
}

// DueRule assigns Due when any of Triggers occurs as a whole word.
type DueRule struct {
	Due      core.DueDate
	Triggers []string
	re       *regexp.Regexp
}

// Match reports whether the rule fires on phrase.
func (r DueRule) Match(phrase string) bool {
	return r.re.MatchString(phrase)
}

// groupRules is evaluated top to bottom; the first match wins.
var groupRules = []GroupRule{
	newGroupRule(core.GroupDev, "code", "build", "deploy", "api", "bug", "feature", "github", "vercel", "aws", "database", "test"),
	newGroupRule(core.GroupWork, "meeting", "email", "slack", "client", "project", "deadline", "report", "presentation"),
	newGroupRule(core.GroupHealth, "gym", "workout", "run", "health", "doctor", "medicine", "sleep", "diet", "exercise"),
	newGroupRule(core.GroupFinance, "pay", "bill", "budget", "invest", "money", "bank", "tax", "salary"),
	newGroupRule(core.GroupPersonal, "call", "mom", "dad", "family", "friend", "birthday", "gift", "home", "clean", "grocery", "cook"),
	newGroupRule(core.GroupLater, "someday", "later", "maybe", "eventually", "when i have time"),
}

// dueRules is evaluated top to bottom; the first match wins.
var dueRules = []DueRule{
	newDueRule(core.DueToday, "today", "tonight", "this morning", "this afternoon", "this evening"),
	newDueRule(core.DueTomorrow, "tomorrow"),
	newDueRule(core.DueThisWeek, "this week", "next few days"),
	newDueRule(core.DueNextWeek, "next week"),
}

// titleNoise lists the words removed from every title, whether or not they
// triggered a due-date rule.
var titleNoise = []string{
	"today", "tonight", "tomorrow", "this week", "next week",
	"this morning", "this afternoon", "this evening",
	"someday", "later", "maybe", "eventually",
}

var (
	titleNoiseRe = wordsPattern(titleNoise...)
	delimiterRe  = regexp.MustCompile(`(?i)[,;]|\band\b|\balso\b`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

func newGroupRule(g core.Group, triggers ...string) GroupRule {
	return GroupRule{Group: g, Triggers: triggers, re: wordsPattern(triggers...)}
}

func newDueRule(d core.DueDate, triggers ...string) DueRule {
	return DueRule{Due: d, Triggers: triggers, re: wordsPattern(triggers...)}
}

// wordsPattern compiles a case-insensitive alternation of words anchored on
// word boundaries, so "runner" does not match "run".
func wordsPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Rules returns the group rules in priority order.
func Rules() []GroupRule {
	out := make([]GroupRule, len(groupRules))
	copy(out, groupRules)
	return out
}

// DueRules returns the due-date rules in priority order.
func DueRules() []DueRule {
	out := make([]DueRule, len(dueRules))
	copy(out, dueRules)
	return out
}

// TitleNoise returns the words stripped from titles.
func TitleNoise() []string {
	out := make([]string, len(titleNoise))
	copy(out, titleNoise)
	return out
}
