package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/baleg00/tau/internal/debugfmt"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/nameres"
	"github.com/baleg00/tau/internal/symtab"
	"github.com/baleg00/tau/internal/token"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [ast.json]",
	Short: "List every symbol name resolution introduces, in natural order",
	Long: `symbols runs name resolution alone (typecheck and later stages never
run) and lists every symbol recorded across the whole scope tree,
ordered the way a human expects identifiers like "item2" and "item10"
to sort rather than plain byte order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

type symbolRow struct {
	name      string
	scopeKind string
}

func runSymbols(cmd *cobra.Command, args []string) error {
	reg, prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	bag := diag.NewBag()
	root := nameres.New(reg, bag).Resolve(prog)

	if bag.HasErrors() {
		fmt.Fprintln(os.Stderr, diag.RenderAll(token.NewRegistry(), bag, false))
	}

	if debug {
		fmt.Fprintln(os.Stderr, debugfmt.Scope(root))
	}

	var rows []symbolRow
	collectSymbols(root, &rows)

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name == rows[j].name {
			return rows[i].scopeKind < rows[j].scopeKind
		}
		return natural.Less(rows[i].name, rows[j].name)
	})

	for _, row := range rows {
		fmt.Printf("%-8s %s\n", row.scopeKind, row.name)
	}
	return nil
}

func collectSymbols(s *symtab.Scope, rows *[]symbolRow) {
	if s == nil {
		return
	}
	for _, sym := range s.Symbols() {
		*rows = append(*rows, symbolRow{name: sym.Name, scopeKind: s.Kind.String()})
	}
	for _, child := range s.Children() {
		collectSymbols(child, rows)
	}
}
