package diag

import (
	"fmt"
	"strings"

	"github.com/baleg00/tau/internal/token"
)

// sourceLookup is the subset of *token.Registry the renderer needs; a
// narrow interface keeps this package from importing the concrete
// Registry type just to call one method.
type sourceLookup interface {
	PathAndSource(tok token.Token) (path, src string, ok bool)
}

// Render formats one entry with a file:line:column header and, when
// reg can locate the primary token's source, a source line with a
// caret pointing at the offending column — the same layout the
// teacher's CompilerError.Format produces, translated from an
// error-specific formatter into one that renders any diag.Entry.
func Render(reg sourceLookup, e Entry, color bool) string {
	var sb strings.Builder

	pos := e.Primary.Pos()
	path, src, ok := reg.PathAndSource(e.Primary)

	severity := "error"
	if e.Kind.IsWarning() {
		severity = "warning"
	}

	if path != "" {
		fmt.Fprintf(&sb, "%s: %s [%s] at %s:%d:%d\n", severity, e.Message, e.Kind, path, pos.Line, pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s: %s [%s] at %d:%d\n", severity, e.Message, e.Kind, pos.Line, pos.Column)
	}

	if ok {
		if line := sourceLine(src, pos.Line); line != "" {
			prefix := fmt.Sprintf("%4d | ", pos.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(prefix)+pos.Column-1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	}

	for _, sec := range e.Secondary {
		secPos := sec.Pos()
		if secPath, _, secOK := reg.PathAndSource(sec); secOK {
			fmt.Fprintf(&sb, "  also see %s:%d:%d\n", secPath, secPos.Line, secPos.Column)
		} else {
			fmt.Fprintf(&sb, "  also see %d:%d\n", secPos.Line, secPos.Column)
		}
	}

	return sb.String()
}

func sourceLine(src string, lineNum int) string {
	if src == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(src, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// RenderAll renders every entry in b, separated by a blank line.
func RenderAll(reg sourceLookup, b *Bag, color bool) string {
	parts := make([]string, 0, b.Len())
	for _, e := range b.Entries() {
		parts = append(parts, Render(reg, e, color))
	}
	return strings.Join(parts, "\n")
}
