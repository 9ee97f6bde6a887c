package internal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "confkit",
	Short: "confkit is a build-configuration helper",
	Long: `confkit answers the questions a build orchestrator asks while
configuring a project: which compiler is installed and what does it
target, is this library present, is this tool on PATH, and it fetches
third-party dependencies and drives code generators.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func init() {
	viper.SetEnvPrefix("CONFKIT")
	viper.AutomaticEnv()

	viper.SetDefault("doxygen", "doxygen")
	viper.SetDefault("gengetopt", "gengetopt")
	viper.SetDefault("pkg_config", "pkg-config")
	viper.SetDefault("cc", "cc")
	viper.BindEnv("cc", "CONFKIT_CC", "CC")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Configuration errors
// are fatal: they are printed with an "error:" prefix and the process
// exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
