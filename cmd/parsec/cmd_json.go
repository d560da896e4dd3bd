package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tef/parsec/json"
)

func newJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "json [file]",
		Short:         "Parse a JSON document and print the value",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			v, err := json.Parse(string(data))
			if err != nil {
				return err
			}

			fmt.Printf("%#v\n", v)
			return nil
		},
	}

	return cmd
}
