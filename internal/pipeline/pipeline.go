// Package pipeline orchestrates the four analysis passes — name
// resolution, type checking, control-flow analysis, and mangling —
// over one already-parsed program, in the teacher's pass-manager style:
// run each stage in order, stop as soon as the bag holds a critical
// (non-warning) entry, and hand the accumulated diagnostics back
// instead of returning them as a Go error.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/config"
	"github.com/baleg00/tau/internal/controlflow"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/generics"
	"github.com/baleg00/tau/internal/mangle"
	"github.com/baleg00/tau/internal/nameres"
	"github.com/baleg00/tau/internal/typecheck"
	"github.com/baleg00/tau/internal/types"
	"github.com/baleg00/tau/internal/typetable"
)

// Result is everything a completed (or short-circuited) compilation
// produced: the diagnostic bag and whichever side tables the passes
// that ran far enough managed to populate. Types and Mangle are nil if
// the pipeline stopped before type checking or mangling ran.
type Result struct {
	Bag    *diag.Bag
	Types  *typetable.Table
	Mangle *mangle.Table
}

// Failed reports whether cfg's policy treats this result as a failed
// compilation: any non-warning entry always fails it; a warning only
// does when cfg promotes warnings to errors. A nil cfg is the default
// policy (warnings never fail the build).
func (r *Result) Failed(cfg *config.CompilerConfig) bool {
	if r.Bag.HasErrors() {
		return true
	}
	return cfg != nil && cfg.WarningsAsErrors && len(r.Bag.Warnings()) > 0
}

// Compile runs nameres, typecheck, control-flow, and mangle over prog
// in order, short-circuiting after any stage that leaves a critical
// error in the bag. reg is the ast.Registry prog's nodes were
// allocated from (by whatever parsed or deserialized it) — Compile
// itself only constructs the per-call state a fresh compilation needs
// and never retains it afterward: a types.Builder for this call's type
// interning, and the diag.Bag and generics.Instantiator that tie the
// passes together. No cross-call state survives between two Compile
// invocations, even against the same reg.
func Compile(ctx context.Context, reg *ast.Registry, prog *ast.Program, cfg *config.CompilerConfig) (*Result, error) {
	if prog == nil {
		return nil, errors.New("pipeline: no program to compile")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bag := diag.NewBag()
	verbose := cfg != nil && cfg.Verbose

	logStage := func(name string) {
		if verbose {
			fmt.Fprintf(os.Stderr, "tau: running %s (%d diagnostic(s) so far)\n", name, bag.Len())
		}
	}

	logStage("nameres")
	resolver := nameres.New(reg, bag)
	root := resolver.Resolve(prog)
	if bag.HasErrors() {
		return &Result{Bag: finish(bag, cfg)}, nil
	}

	logStage("typecheck")
	builder := types.NewBuilder()
	checker := typecheck.New(reg, bag, builder)
	instantiator := generics.New(reg, bag, builder)
	instantiator.SetContext(resolver, root, checker)
	checker.SetInstantiator(instantiator)
	table := checker.Check(prog)
	if bag.HasErrors() {
		return &Result{Bag: finish(bag, cfg), Types: table}, nil
	}

	logStage("controlflow")
	controlflow.New(bag, table).Walk(prog)
	if bag.HasErrors() {
		return &Result{Bag: finish(bag, cfg), Types: table}, nil
	}

	logStage("mangle")
	mtab := mangle.New(table).Mangle(prog)

	return &Result{Bag: finish(bag, cfg), Types: table, Mangle: mtab}, nil
}

// finish applies cfg's diagnostic policy to raw — dropping any warning
// kind cfg disables and truncating at cfg.MaxDiagnostics — and returns
// the bag actually handed back to the caller. raw itself is never
// mutated (Bag's own contract is append-only); finish always builds a
// fresh one.
func finish(raw *diag.Bag, cfg *config.CompilerConfig) *diag.Bag {
	if cfg == nil || (len(cfg.DisabledWarnings) == 0 && cfg.MaxDiagnostics <= 0) {
		return raw
	}
	out := diag.NewBag()
	for _, e := range raw.Entries() {
		if e.Kind.IsWarning() && !cfg.WarningEnabled(e.Kind) {
			continue
		}
		out.Add(e)
		if cfg.MaxDiagnostics > 0 && out.Len() >= cfg.MaxDiagnostics {
			break
		}
	}
	return out
}
