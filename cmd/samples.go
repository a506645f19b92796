package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/minipas/internal/checker"
)

// samples: analyze the built-in demonstration programs
var SamplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Run the built-in sample programs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, src := range checker.Samples() {
			fmt.Printf("\nTesting: %s\n", src)
			fmt.Println(checker.Analyze(src))
		}
	},
}
