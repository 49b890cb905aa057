// Package renderer formats tradelots reports as markdown.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tradelots"
)

// symbolLabel names a symbol for display, options by their decoded contract.
func symbolLabel(symbol string, opt *tradelots.OptionDescriptor, expired bool) string {
	if opt == nil {
		return symbol
	}
	if expired {
		return opt.String() + " (expired)"
	}
	return opt.String()
}

// escape protects free text from breaking a markdown table.
func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// WarningsMarkdown lists warnings under their own section, or nothing.
func WarningsMarkdown(w io.Writer, ws []tradelots.Warning) {
	if len(ws) == 0 {
		return
	}
	fmt.Fprint(w, "\n## Warnings\n\n")
	for _, x := range ws {
		fmt.Fprintf(w, "- %s\n", escape(x.String()))
	}
}
