package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/taskflow/pkg/core"
	"github.com/aretw0/taskflow/pkg/parse"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty", "", nil},
		{"Whitespace", "   \t\n ", nil},
		{"Only Delimiters", " , ; ", nil},
		{"Only Words", "and also AND", nil},
		{"Single Phrase", "pay rent tomorrow", []string{"pay rent tomorrow"}},
		{"Comma And Semicolon", "buy milk, call dad; fix bug", []string{"buy milk", "call dad", "fix bug"}},
		{"Conjunctions", "Call mom this week and deploy the new API", []string{"Call mom this week", "deploy the new API"}},
		{"Case Insensitive", "walk dog AND feed cat Also water plants", []string{"walk dog", "feed cat", "water plants"}},
		{"Whole Word Only", "band practice, android build", []string{"band practice", "android build"}},
		{"Keeps Order", "c; b; a", []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.Segment(tt.input))
		})
	}
}

// A comma inside a date splits the phrase. No quoting is supported.
func TestSegment_CommaInsideDate(t *testing.T) {
	got := parse.Segment("submit report by March 3, 2025")
	assert.Equal(t, []string{"submit report by March 3", "2025"}, got)
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		phrase string
		want   core.Group
	}{
		{"fix the login bug", core.GroupDev},
		{"write TEST cases", core.GroupDev},
		{"prepare presentation", core.GroupWork},
		{"book doctor appointment", core.GroupHealth},
		{"go for a run", core.GroupHealth},
		{"pay rent", core.GroupFinance},
		{"buy a gift for Ana", core.GroupPersonal},
		{"learn piano someday", core.GroupLater},
		{"read a book when I have time", core.GroupLater},
		{"water the plants", core.GroupInbox},
		// whole-word matching: no substring hits
		{"talk to the runner", core.GroupInbox},
		{"rebuilding trust", core.GroupInbox},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.GroupOf(tt.phrase))
		})
	}
}

func TestGroupOf_PriorityOrder(t *testing.T) {
	// dev outranks work
	assert.Equal(t, core.GroupDev, parse.GroupOf("deploy before the meeting"))
	// health outranks finance and personal
	assert.Equal(t, core.GroupHealth, parse.GroupOf("pay for the gym and call mom"))
	// personal outranks later
	assert.Equal(t, core.GroupPersonal, parse.GroupOf("clean the house someday"))
}

func TestRules_Order(t *testing.T) {
	var groups []core.Group
	for _, r := range parse.Rules() {
		groups = append(groups, r.Group)
	}
	assert.Equal(t, []core.Group{
		core.GroupDev, core.GroupWork, core.GroupHealth,
		core.GroupFinance, core.GroupPersonal, core.GroupLater,
	}, groups)

	var dues []core.DueDate
	for _, r := range parse.DueRules() {
		dues = append(dues, r.Due)
	}
	assert.Equal(t, []core.DueDate{core.DueToday, core.DueTomorrow, core.DueThisWeek, core.DueNextWeek}, dues)
}

func TestRules_EachTriggerFiresItsRule(t *testing.T) {
	for _, r := range parse.Rules() {
		for _, trigger := range r.Triggers {
			assert.True(t, r.Match(trigger), "rule %s should match %q", r.Group, trigger)
		}
	}
	for _, r := range parse.DueRules() {
		for _, trigger := range r.Triggers {
			assert.True(t, r.Match(trigger), "rule %s should match %q", r.Due, trigger)
		}
	}
}

func TestDueOf(t *testing.T) {
	tests := []struct {
		phrase string
		want   core.DueDate
	}{
		{"finish tonight", core.DueToday},
		{"run this morning", core.DueToday},
		{"call Tomorrow", core.DueTomorrow},
		{"ship in the next few days", core.DueThisWeek},
		{"plan next week", core.DueNextWeek},
		{"today or tomorrow", core.DueToday},
		{"no date here", ""},
		{"someday maybe", ""},
		{"later", ""},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.DueOf(tt.phrase))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"call mom this week", "Call mom"},
		{"deploy the new API", "Deploy the new API"},
		{"pay rent tomorrow", "Pay rent"},
		{"maybe   learn   go  eventually", "Learn go"},
		{"TODAY finish draft", "Finish draft"},
		{"read the latest news", "Read the latest news"},
		{"ébauche du plan", "Ébauche du plan"},
		{"today", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.CleanTitle(tt.in))
		})
	}
}

func TestCleanTitle_Idempotent(t *testing.T) {
	for _, title := range []string{"Call mom", "Deploy the new API", "Pay rent", "Water the plants"} {
		assert.Equal(t, title, parse.CleanTitle(title))
		assert.Equal(t, title, parse.CleanTitle(parse.CleanTitle(title)))
	}
}

func TestClassify_DropsEmptyTitle(t *testing.T) {
	_, ok := parse.Classify("tomorrow")
	assert.False(t, ok)

	_, ok = parse.Classify("maybe later")
	assert.False(t, ok)
}

func TestClassify_NoKeyword(t *testing.T) {
	for _, phrase := range []string{"water the plants", "xyz", "Read a novel"} {
		intent, ok := parse.Classify(phrase)
		require.True(t, ok)
		assert.Equal(t, core.GroupInbox, intent.Group)
		assert.Empty(t, intent.Due)
	}
}

func TestParse_Scenarios(t *testing.T) {
	t.Run("Two Tasks", func(t *testing.T) {
		got := parse.Parse("Call mom this week and deploy the new API")
		assert.Equal(t, []core.Intent{
			{Title: "Call mom", Group: core.GroupPersonal, Due: core.DueThisWeek},
			{Title: "Deploy the new API", Group: core.GroupDev},
		}, got)
	})

	t.Run("Due Tomorrow", func(t *testing.T) {
		got := parse.Parse("pay rent tomorrow")
		assert.Equal(t, []core.Intent{
			{Title: "Pay rent", Group: core.GroupFinance, Due: core.DueTomorrow},
		}, got)
	})

	t.Run("Degenerate Input", func(t *testing.T) {
		assert.Empty(t, parse.Parse(""))
		assert.Empty(t, parse.Parse(" , ; "))
		assert.Empty(t, parse.Parse("today, tomorrow and later"))
	})

	t.Run("Deferral Word Sets No Due Date", func(t *testing.T) {
		got := parse.Parse("clean the house someday")
		assert.Equal(t, []core.Intent{
			{Title: "Clean the house", Group: core.GroupPersonal},
		}, got)
	})

	t.Run("Deploy Beats Meeting", func(t *testing.T) {
		got := parse.Parse("deploy after the meeting")
		require.Len(t, got, 1)
		assert.Equal(t, core.GroupDev, got[0].Group)
	})
}

func TestParse_Deterministic(t *testing.T) {
	input := "email the client today; gym tonight, invest later also fix bug"
	first := parse.Parse(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, parse.Parse(input))
	}
}
