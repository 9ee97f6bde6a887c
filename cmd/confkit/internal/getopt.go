package internal

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/confkit/confkit/internal/gen"
	"github.com/confkit/confkit/internal/toolchain"
)

var getoptVersion string

var getoptCmd = &cobra.Command{
	Use:   "getopt <file.ggo>",
	Short: "Generate an option parser with gengetopt",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetopt,
}

func init() {
	getoptCmd.Flags().StringVar(&getoptVersion, "set-version", "", "Version string embedded in the generated parser")
	rootCmd.AddCommand(getoptCmd)
}

func runGetopt(cmd *cobra.Command, args []string) error {
	gengetopt := viper.GetString("gengetopt")
	cFile, hFile, err := gen.GenGetOpt(toolchain.NewRunner(nil), nil, gengetopt, args[0], getoptVersion)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cFile)
	fmt.Fprintln(cmd.OutOrStdout(), hFile)
	return nil
}
