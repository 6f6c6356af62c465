package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown writes markdown to w, prettified for the terminal unless
// plain output is requested. Rendering failures fall back to the raw
// markdown rather than losing the report.
func renderMarkdown(w io.Writer, markdown string, plain bool) {
	if !plain {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(0),
		)
		if err == nil {
			if out, err := r.Render(markdown); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, markdown)
}
