package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// TestReportMarkdown_IsValidMarkdown parses the rendered report with a real
// markdown parser and checks its structure, so downstream terminal
// renderers never receive a document they cannot lay out.
func TestReportMarkdown_IsValidMarkdown(t *testing.T) {
	source := []byte(ReportMarkdown(sampleReport(t)))

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(source))

	var headings, tables int
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			headings++
		case east.KindTable:
			tables++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	// The ledger title, the open positions title, and one table for each.
	assert.Equal(t, 2, headings)
	assert.Equal(t, 2, tables)
}
