package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tef/parsec/calc"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eval <expr>...",
		Short:         "Evaluate arithmetic expressions",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := calc.Eval(arg)
				if err != nil {
					return err
				}
				fmt.Printf("%v = %v\n", arg, v)
			}
			return nil
		},
	}

	return cmd
}
