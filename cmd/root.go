package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arnavsurve/minipas/internal/checker"
)

var srcExt string

var rootCmd = &cobra.Command{
	Use:   "minipas",
	Short: "minipas — validator for a mini-Pascal teaching language",
	Long: `minipas checks mini-Pascal source: a var declaration block followed by a
begin...end statement block. Each phase reports the first defect it finds,
or a success message when the program is well formed.

Commands:
  check    Validate a (.pas) source file
  tokens   Dump the token stream of a source file
  samples  Run the built-in sample programs
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&srcExt, "ext", "e", checker.DefaultExt, "accepted source file extension")

	rootCmd.AddCommand(CheckCmd, TokensCmd, SamplesCmd)
}
