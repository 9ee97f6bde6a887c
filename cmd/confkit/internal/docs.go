package internal

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/confkit/confkit/internal/gen"
	"github.com/confkit/confkit/internal/toolchain"
)

var (
	docsOutputDir string
	docsWerror    bool
)

var docsCmd = &cobra.Command{
	Use:   "docs <Doxyfile>",
	Short: "Generate documentation with doxygen",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().StringVarP(&docsOutputDir, "output", "o", "docs", "Output directory for the .done marker")
	docsCmd.Flags().BoolVar(&docsWerror, "werror", false, "Treat doxygen warnings as errors")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	doxygen := viper.GetString("doxygen")
	logger.Info("generating documentation", "config", args[0])
	return gen.Doxygen(toolchain.NewRunner(nil), nil, doxygen, docsOutputDir, args[0], docsWerror)
}
