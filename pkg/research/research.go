// Package research attaches static explanatory notes to task titles.
package research

import "strings"

type entry struct {
	keywords []string
	note     string
}

// entries is checked in order; the first keyword hit wins.
var entries = []entry{
	{
		keywords: []string{"vercel", "deploy"},
		note:     "Vercel deployment: Connect GitHub repo → Auto-deploys on push. Check vercel.com/docs for environment variables.",
	},
	{
		keywords: []string{"supabase"},
		note:     "Supabase: PostgreSQL + Auth + Storage. Quick start: npx create-next-app with Supabase template.",
	},
	{
		keywords: []string{"tailwind"},
		note:     "Tailwind CSS: Utility-first CSS. Use @apply for repeated patterns. Check tailwindcss.com/docs.",
	},
}

// Lookup returns the note for the first known keyword contained in title.
// Matching is a case-insensitive substring test, so "deployment" also hits.
func Lookup(title string) (string, bool) {
	lower := strings.ToLower(title)
	for _, e := range entries {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.note, true
			}
		}
	}
	return "", false
}

// Keywords lists every keyword that triggers a note.
func Keywords() []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.keywords...)
	}
	return out
}
