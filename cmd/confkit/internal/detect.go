package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/internal/toolchain"
)

var (
	detectMin     string
	detectLLVMDir bool
)

var detectCmd = &cobra.Command{
	Use:   "detect <compiler>",
	Short: "Detect a compiler's version and target triple",
	Long: `Detect runs the compiler with --version, -dumpversion and "-v -E -"
and prints the extracted version and the normalized target triple.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectMin, "min", "", "Fail if the detected version is older than this")
	detectCmd.Flags().BoolVar(&detectLLVMDir, "llvm-dir", false, "Also print the matching LLVM installation directory")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	compiler := args[0]
	r := toolchain.NewRunner(nil)

	version, ok := toolchain.Version(r, compiler)
	if !ok {
		return fmt.Errorf("can't detect version of %q", compiler)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version)

	if detectMin != "" && !version.AtLeast(detectMin) {
		return fmt.Errorf("%s version %s is older than required %s", compiler, version, detectMin)
	}

	if target, ok := toolchain.Target(r, compiler); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "target: %s\n", target)
	} else {
		logger.Debug("no target triple reported", "compiler", compiler)
	}

	if detectLLVMDir {
		dir, ok := toolchain.LLVMDir(version)
		if !ok {
			return fmt.Errorf("no LLVM directory found for version %s", version)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "llvm-dir: %s\n", dir)
	}
	return nil
}
