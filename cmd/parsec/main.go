package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Demo grammars built on the parsec combinators",
	}

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newJSONCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
