package diag

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary renders the trailing "N errors, M warnings" line the CLI
// prints after the diagnostic list. Counts go through a
// message.Printer so large counts pick up locale-correct digit
// grouping; singular/plural wording is resolved separately since that
// needs the error/warning kind, not just the number.
func Summary(b *Bag) string {
	p := message.NewPrinter(language.English)
	errs := len(b.Errors())
	warns := len(b.Warnings())

	return p.Sprintf("%d %s, %d %s",
		errs, pluralize(errs, "error", "errors"),
		warns, pluralize(warns, "warning", "warnings"))
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
