package golang

import (
	"go/ast"
	"strings"

	"github.com/viant/docmerge/reflection"
)

const directivePrefix = "//docmerge:"

// newComment converts a doc comment; //docmerge:name text directives become @name block tags
func newComment(doc *ast.CommentGroup) *reflection.Comment {
	comment := &reflection.Comment{}
	if text := strings.TrimSpace(doc.Text()); text != "" {
		comment.Summary = []reflection.Part{reflection.TextPart(text)}
	}
	for _, line := range doc.List {
		directive, ok := strings.CutPrefix(line.Text, directivePrefix)
		if !ok {
			continue
		}
		name, text, _ := strings.Cut(directive, " ")
		if name == "" {
			continue
		}
		// \n in directive text separates a description name from its body
		text = strings.ReplaceAll(strings.TrimSpace(text), `\n`, "\n")
		comment.AddTag(reflection.NewTag("@"+name, text))
	}
	if len(comment.Summary) == 0 && len(comment.BlockTags) == 0 {
		return nil
	}
	return comment
}
