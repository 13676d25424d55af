package cmd

import (
	"context"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/config"
	"github.com/baleg00/tau/internal/pipeline"
)

// pipelineCompile is a thin context.Background() wrapper around
// pipeline.Compile — every subcommand here runs to completion in one
// shot, so there is no outer context to thread through from cobra.
func pipelineCompile(reg *ast.Registry, prog *ast.Program, cfg *config.CompilerConfig) (*pipeline.Result, error) {
	return pipeline.Compile(context.Background(), reg, prog, cfg)
}

// declIDs collects the node IDs of prog's top-level declarations, in
// source order, for --debug's type-table dump.
func declIDs(prog *ast.Program) []ast.ID {
	ids := make([]ast.ID, len(prog.Decls))
	for i, d := range prog.Decls {
		ids[i] = d.ID()
	}
	return ids
}
