package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var engine = goldmark.New()

type bodyStats struct {
	words          int
	firstParagraph string
}

// analyzeBody walks the Markdown AST of body, counting the words of all
// rendered text (code blocks included) and capturing the plain text of the
// first paragraph.
func analyzeBody(body []byte) bodyStats {
	var stats bodyStats
	doc := engine.Parser().Parse(text.NewReader(body))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			stats.words += len(strings.Fields(string(node.Segment.Value(body))))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				stats.words += len(strings.Fields(string(seg.Value(body))))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if stats.firstParagraph == "" {
				stats.firstParagraph = plainText(node, body)
			}
		}
		return ast.WalkContinue, nil
	})

	return stats
}

// plainText concatenates the text segments below n, collapsing whitespace.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
