package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tauc",
	Short: "Tau semantic analyzer driver",
	Long: `tauc drives the Tau compiler's core analysis pipeline: name
resolution, type checking, control-flow analysis, and name mangling.

It does not lex or parse Tau source itself — that front end lives
outside this module. Every subcommand instead takes a program already
expressed as the JSON AST dump format (see "tauc dump"), which keeps
this driver exercisable without a source-text parser.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage as it runs")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "pretty-print the resulting type table / symbol table via kr/pretty")
}
