package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/taskflow"
	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/core"
)

// utterances cycles through inputs that hit every group and due-date rule.
var utterances = []string{
	"call mom tomorrow and deploy the new API",
	"pay rent today; gym this week",
	"email the client, fix the login bug next week",
	"clean the house someday also book a doctor appointment",
	"water the plants",
}

func main() {
	count := flag.Int("count", 1000, "Number of submissions to run")
	format := flag.String("format", "json", "Task file format (json or yaml)")
	keep := flag.Bool("keep", false, "Keep the benchmark store after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "taskflow_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	opts := []taskflow.Option{
		taskflow.WithLogger(logger),
		taskflow.WithFile("tasks." + *format),
	}

	ctx := context.Background()

	// Parse only: no I/O
	startParse := time.Now()
	var intents int
	for i := 0; i < *count; i++ {
		intents += len(taskflow.Parse(utterances[i%len(utterances)]))
	}
	parseDuration := time.Since(startParse)

	// Generation goes straight through the store so Submit's per-call flush
	// doesn't dominate the timings below.
	store, err := taskflow.Init(benchDir, opts...)
	if err != nil {
		panic(err)
	}
	factory := core.Factory{}
	var tasks []core.Task
	for i := 0; i < *count; i++ {
		for _, in := range taskflow.Parse(utterances[i%len(utterances)]) {
			tasks = append(tasks, factory.New(in))
		}
	}
	startGen := time.Now()
	if err := store.Save(ctx, tasks); err != nil {
		panic(err)
	}
	fmt.Printf("Generated %d tasks in %s (%v)\n", len(tasks), store.(*fs.Store).Filename(), time.Since(startGen))

	// Run 1: open (load + decode)
	startOpen := time.Now()
	service, err := taskflow.New(benchDir, opts...)
	if err != nil {
		panic(err)
	}
	openDuration := time.Since(startOpen)

	// Run 2: one Submit, which rewrites the whole file
	startSubmit := time.Now()
	if _, err := service.Submit(ctx, utterances[0]); err != nil {
		panic(err)
	}
	submitDuration := time.Since(startSubmit)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d utterances, %d tasks, %s):\n", *count, len(service.List()), *format)
	fmt.Printf("  Parse:  %v (%d intents)\n", parseDuration, intents)
	fmt.Printf("  Open:   %v\n", openDuration)
	fmt.Printf("  Submit: %v\n", submitDuration)
	fmt.Printf("--------------------------------------------------\n")
}
