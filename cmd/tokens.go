package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/minipas/internal/checker"
	"github.com/arnavsurve/minipas/internal/checker/lexer"
)

// tokens: dump the token stream for lexer debugging
var TokensCmd = &cobra.Command{
	Use:   "tokens [source-file]",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := checker.LoadSource(args[0], srcExt)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		spew.Dump(lexer.Tokenize(src))
	},
}
