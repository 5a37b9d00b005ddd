package cmd

import (
	"fmt"

	"github.com/josephlewis42/minish/commands"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands built into the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, b := range commands.ListBuiltins() {
			fmt.Fprintln(cmd.OutOrStdout(), b.Name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
