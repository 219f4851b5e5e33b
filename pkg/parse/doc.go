// Package parse turns free-form text into task intents.
//
// The pipeline has two stages:
//
//   - Segment splits an utterance on commas, semicolons and the standalone
//     words "and" / "also".
//   - Classify assigns each phrase a group and an optional due-date label,
//     strips temporal words from the title and capitalises it.
//
// Both stages are pure functions of their input. Group and due-date rules are
// static ordered tables evaluated first-match-wins; see Rules and DueRules.
//
// Known limitation: no quoting or escaping is supported, so a comma inside a
// date ("March 3, 2025") splits the phrase.
package parse
