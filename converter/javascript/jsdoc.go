package javascript

import (
	"strings"

	"github.com/viant/docmerge/reflection"
)

// isDocComment returns true for /** ... */ blocks
func isDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/**/")
}

// parseDocComment converts a JSDoc block into a comment: text before the first block tag is the summary,
// each line starting with @name opens a tag whose content runs until the next tag
func parseDocComment(text string) *reflection.Comment {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	var summary []string
	var tag *reflection.Tag
	var content []string
	comment := &reflection.Comment{}
	flush := func() {
		if tag == nil {
			return
		}
		if body := strings.TrimSpace(strings.Join(content, "\n")); body != "" {
			tag.Content = []reflection.Part{reflection.TextPart(body)}
		}
		comment.BlockTags = append(comment.BlockTags, tag)
		tag, content = nil, nil
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimPrefix(line, " ")
		if strings.HasPrefix(line, "@") {
			flush()
			name, rest, _ := strings.Cut(line, " ")
			tag = &reflection.Tag{Name: name}
			content = []string{rest}
			continue
		}
		if tag != nil {
			content = append(content, line)
			continue
		}
		summary = append(summary, line)
	}
	flush()
	if body := strings.TrimSpace(strings.Join(summary, "\n")); body != "" {
		comment.Summary = []reflection.Part{reflection.TextPart(body)}
	}
	return comment
}
