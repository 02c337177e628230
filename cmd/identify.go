package main

import (
	"fmt"
	"tracker/pkg/trackingnumber"

	"github.com/spf13/cobra"
)

// identifyCommand constructs the 'identify' subcommand that prints every
// carrier whose tracking number format matches the given number.
func identifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identify <tracking-number>",
		Short: "Lists carriers whose tracking number format matches",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range trackingnumber.Match(args[0]) {
				fmt.Println(c) //nolint: forbidigo
			}
		},
	}

	return cmd
}
