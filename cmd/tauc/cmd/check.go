package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baleg00/tau/internal/config"
	"github.com/baleg00/tau/internal/debugfmt"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/token"
)

var (
	checkConfigPath string
	checkColor      bool
)

var checkCmd = &cobra.Command{
	Use:   "check [ast.json]",
	Short: "Run the analysis pipeline over a JSON AST dump and report diagnostics",
	Long: `check loads a program from its JSON AST dump (see "tauc dump"), runs
name resolution, type checking, control-flow analysis, and mangling over
it in order, then prints every diagnostic the pipeline accumulated.

Exit status reflects tau.yaml's policy: any error fails the run, and a
warning does too when warnings_as_errors is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkConfigPath, "config", "tau.yaml", "path to the project configuration file")
	checkCmd.Flags().BoolVar(&checkColor, "color", false, "colorize the caret under each diagnostic")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", checkConfigPath, err)
	}
	cfg.Verbose = verbose

	reg, prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	result, err := pipelineCompile(reg, prog, cfg)
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 {
		treg := token.NewRegistry()
		fmt.Fprintln(os.Stderr, diag.RenderAll(treg, result.Bag, checkColor))
		fmt.Fprintln(os.Stderr, diag.Summary(result.Bag))
	}

	if debug && result.Types != nil {
		fmt.Fprintln(os.Stderr, debugfmt.TypeTable(result.Types, declIDs(prog)))
	}

	if result.Failed(cfg) {
		os.Exit(1)
	}
	return nil
}
