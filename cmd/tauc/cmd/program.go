package cmd

import (
	"fmt"
	"os"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/astdump"
)

// loadProgram reads filename as a JSON AST dump (see "tauc dump") and
// reconstructs the tree it describes. reg is the registry every node in
// the returned program is allocated from.
func loadProgram(filename string) (*ast.Registry, *ast.Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	reg := ast.NewRegistry()
	prog, err := astdump.Load(reg, data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s as an AST dump: %w", filename, err)
	}
	return reg, prog, nil
}
