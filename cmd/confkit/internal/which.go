package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/internal/toolchain"
)

var whichAll bool

var whichCmd = &cobra.Command{
	Use:   "which <prog>",
	Short: "Locate an executable on PATH",
	Args:  cobra.ExactArgs(1),
	RunE:  runWhich,
}

func init() {
	whichCmd.Flags().BoolVarP(&whichAll, "all", "a", false, "Print every match instead of the first")
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	matches := toolchain.Which(nil, args[0])
	if len(matches) == 0 {
		return fmt.Errorf("executable %q not found in PATH", args[0])
	}
	if !whichAll {
		matches = matches[:1]
	}
	for _, m := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}
