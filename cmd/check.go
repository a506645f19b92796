package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/minipas/internal/checker"
)

// check: validate one source file and print its report
var CheckCmd = &cobra.Command{
	Use:   "check [source-file]",
	Short: "Validate a mini-Pascal source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report, err := checker.CheckFile(args[0], srcExt)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(report)
		if !report.OK() {
			os.Exit(1)
		}
	},
}
