package javascript

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// documentTitle returns the first markdown heading, or the file name without extension
func documentTitle(src []byte, location string) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if heading, ok := n.(*ast.Heading); ok {
			if title := strings.TrimSpace(string(heading.Text(src))); title != "" {
				return title
			}
		}
	}
	base := filepath.Base(location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
