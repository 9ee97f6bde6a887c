package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/x/fsutil"
)

var (
	globPatterns []string
	globExclude  []string
)

var globCmd = &cobra.Command{
	Use:   "glob <root>...",
	Short: "List files matching patterns under directories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGlob,
}

func init() {
	globCmd.Flags().StringArrayVarP(&globPatterns, "pattern", "p", []string{"*"}, "Include pattern (repeatable)")
	globCmd.Flags().StringArrayVarP(&globExclude, "exclude", "x", nil, "Exclude pattern, matched against path and basename (repeatable)")
	rootCmd.AddCommand(globCmd)
}

func runGlob(cmd *cobra.Command, args []string) error {
	matches, err := fsutil.RecursiveGlob(args, globPatterns, globExclude)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}
