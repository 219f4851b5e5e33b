package taskflow_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/taskflow"
)

// Example_basic creates a store, submits an utterance and lists the result.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "taskflow-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := taskflow.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := svc.Submit(context.Background(), "Call mom this week and deploy the new API"); err != nil {
		log.Fatal(err)
	}

	for _, t := range svc.List() {
		fmt.Printf("%s [%s] %q\n", t.Title, t.Group, t.DueDate)
	}
	// Output:
	// Call mom [personal] "this week"
	// Deploy the new API [dev] ""
}

// ExampleParse shows the parser on its own; nothing is stored.
func ExampleParse() {
	for _, intent := range taskflow.Parse("pay rent tomorrow; clean the house someday") {
		fmt.Printf("%s / %s / %q\n", intent.Title, intent.Group, intent.Due)
	}
	// Output:
	// Pay rent / finance / "tomorrow"
	// Clean the house / personal / ""
}
