package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow/pkg/parse"
	"github.com/aretw0/taskflow/pkg/research"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the keyword rules used to classify tasks",
	Long:  `Rules are checked top to bottom and the first match wins. Keywords match whole words, case-insensitively.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Groups:")
		for i, r := range parse.Rules() {
			fmt.Printf("  %d. %-9s %s\n", i+1, r.Group, strings.Join(r.Triggers, ", "))
		}
		fmt.Println("  -. inbox     (no match)")

		fmt.Println("\nDue dates:")
		for i, r := range parse.DueRules() {
			fmt.Printf("  %d. %-10s %s\n", i+1, r.Due, strings.Join(r.Triggers, ", "))
		}

		fmt.Println("\nRemoved from titles:")
		fmt.Printf("  %s\n", strings.Join(parse.TitleNoise(), ", "))

		fmt.Println("\nResearch notes:")
		fmt.Printf("  %s\n", strings.Join(research.Keywords(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
