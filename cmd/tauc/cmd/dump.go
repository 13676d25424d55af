package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baleg00/tau/internal/astdump"
)

var dumpCompact bool

var dumpCmd = &cobra.Command{
	Use:   "dump [ast.json]",
	Short: "Re-print a JSON AST dump, validating it along the way",
	Long: `dump loads filename as a JSON AST dump and writes it back out,
pretty-printed by default. Since loading rebuilds a live tree and
dumping walks it back into JSON, this also doubles as a round-trip
check: a dump that fails to load here is not a valid AST dump.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVar(&dumpCompact, "compact", false, "omit indentation")
}

func runDump(cmd *cobra.Command, args []string) error {
	_, prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	if dumpCompact {
		fmt.Println(astdump.DumpCompact(prog))
	} else {
		fmt.Println(astdump.Dump(prog))
	}
	return nil
}
