package internal

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/confkit/confkit/internal/buildcfg"
	"github.com/confkit/confkit/internal/env"
	"github.com/confkit/confkit/internal/probe"
	"github.com/confkit/confkit/internal/toolchain"
	"github.com/confkit/confkit/x/pkgconfig"
)

var (
	probeCC      string
	probeLibs    []string
	probeHeaders []string
	probePkgs    []string
	probeLang    string
	probeExpr    string
	probeWorkDir string
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that a library/header combination works on this host",
	Long: `Probe compiles, links and runs a minimal program including the given
headers and linking the given libraries, and prints yes or no. The
check succeeds when the program runs and --expr evaluates to non-zero.
Flags for --pkg packages are folded in via pkg-config first.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeCC, "cc", "", "Compiler to probe with (default $CC, then \"cc\")")
	probeCmd.Flags().StringArrayVar(&probeLibs, "lib", nil, "Library to link (repeatable)")
	probeCmd.Flags().StringArrayVar(&probeHeaders, "header", nil, "Header to include (repeatable)")
	probeCmd.Flags().StringArrayVar(&probePkgs, "pkg", nil, "pkg-config package whose flags to apply (repeatable)")
	probeCmd.Flags().StringVar(&probeLang, "lang", "c", "Source language: c or c++")
	probeCmd.Flags().StringVar(&probeExpr, "expr", "1", "C expression that must evaluate to non-zero")
	probeCmd.Flags().StringVar(&probeWorkDir, "workdir", "", "Scratch directory for probe artifacts")
	rootCmd.AddCommand(probeCmd)
}

// newProbeConfig builds the probe's configuration, exporting the
// configured pkg-config executable so TryParse resolves it.
func newProbeConfig() *buildcfg.Config {
	cfg := buildcfg.New()
	if pc := viper.GetString("pkg_config"); pc != "" {
		cfg.Setenv("PKG_CONFIG", pc)
	}
	return cfg
}

func runProbe(cmd *cobra.Command, args []string) error {
	lang := probe.C
	switch probeLang {
	case "c":
	case "c++", "cxx", "cpp":
		lang = probe.CXX
	default:
		return fmt.Errorf("unknown language %q", probeLang)
	}

	cc := probeCC
	if cc == "" {
		cc = viper.GetString("cc")
	}

	workDir := probeWorkDir
	if workDir == "" {
		dir, err := env.WorkDir()
		if err != nil {
			return err
		}
		workDir = dir
	}

	cfg := newProbeConfig()
	r := toolchain.NewRunner(nil)

	if len(probePkgs) > 0 && !pkgconfig.TryParse(cfg, r, probePkgs...) {
		logger.Debug("pkg-config lookup failed", "pkgs", probePkgs)
	}

	ctx := &probe.Context{
		Config:   cfg,
		Runner:   r,
		Compiler: cc,
		WorkDir:  workDir,
		Log:      logger,
	}

	if ctx.CheckLibWithHeaderExpr(probeLibs, probeHeaders, lang, probeExpr) {
		fmt.Fprintln(cmd.OutOrStdout(), "yes")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "no")
	}
	return nil
}
