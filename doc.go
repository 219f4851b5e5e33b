// Package taskflow is the Composition Root for the taskflow application.
//
// It connects the core business logic (a task list fed by free-form text) with
// the infrastructure adapters (a JSON or YAML file, or memory) using the
// Hexagonal Architecture pattern.
//
// An utterance such as "call mom tomorrow and deploy the new API" is split on
// commas, semicolons and the words "and"/"also". Each phrase is classified
// into a fixed set of groups by keyword rules, gets an optional due-date
// label, and is stored as a task. There is no model, no network and no
// calendar arithmetic: the same text always yields the same tasks.
//
// Usage:
//
//	svc, err := taskflow.New("~/.taskflow",
//		taskflow.WithLogger(logger),
//	)
//
//	created, err := svc.Submit(ctx, "pay rent tomorrow, gym")
package taskflow
