package internal

import (
	"fmt"
	"runtime"

	"github.com/mgenware/j9/v3"
	"github.com/spf13/cobra"

	"github.com/confkit/confkit/internal/buildcfg"
	"github.com/confkit/confkit/internal/thirdparty"
)

var (
	fetchRoot      string
	fetchHost      string
	fetchToolchain string
	fetchVariant   string
	fetchScript    string
	fetchDeps      []string
	fetchIncludes  []string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <name>",
	Short: "Fetch and build a third-party dependency",
	Long: `Fetch runs the external fetch/build script for a dependency unless its
commit marker shows it is already built, then prints the include and
library paths the build should use.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchRoot, "root", "3rdparty", "Dependency tree root")
	fetchCmd.Flags().StringVar(&fetchHost, "host", "", "Host triple the dependency is built for")
	fetchCmd.Flags().StringVar(&fetchToolchain, "toolchain", "", "Toolchain prefix passed to the build script")
	fetchCmd.Flags().StringVar(&fetchVariant, "variant", "release", "Build variant")
	fetchCmd.Flags().StringVar(&fetchScript, "script", "scripts/3rdparty", "Fetch/build script")
	fetchCmd.Flags().StringArrayVar(&fetchDeps, "dep", nil, "Dependency of the dependency (repeatable)")
	fetchCmd.Flags().StringArrayVar(&fetchIncludes, "include", nil, "Include subdirectory to register (repeatable)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	name := args[0]

	host := fetchHost
	if host == "" {
		host = runtime.GOOS + "-" + runtime.GOARCH
	}

	logger.Info("fetching dependency", "name", name, "host", host)

	e := &thirdparty.Env{
		Tunnel:    j9.NewTunnel(j9.NewLocalNode(), j9.NewConsoleLogger()),
		Root:      fetchRoot,
		Host:      host,
		Toolchain: fetchToolchain,
		Variant:   fetchVariant,
		Script:    fetchScript,
	}

	cfg := buildcfg.New()
	if err := e.Require(cfg, name, fetchDeps, fetchIncludes); err != nil {
		return err
	}

	for _, dir := range cfg.CppPath {
		fmt.Fprintf(cmd.OutOrStdout(), "include: %s\n", dir)
	}
	for _, lib := range cfg.Libs {
		fmt.Fprintf(cmd.OutOrStdout(), "lib: %s\n", lib)
	}
	return nil
}
