package reflection

import "strings"

// Block tags understood by the merge engine and the categorizer
const (
	TagMergeTarget         = "@mergeTarget"
	TagCategory            = "@category"
	TagCategoryDescription = "@categoryDescription"
	TagGroupDescription    = "@groupDescription"
	TagModule              = "@module"
	TagDocument            = "@document"
)

// Part is a fragment of comment text
type Part struct {
	Kind string `yaml:"kind,omitempty"` // text, code or inline-tag
	Text string `yaml:"text"`
}

// TextPart creates a plain text part
func TextPart(text string) Part {
	return Part{Kind: "text", Text: text}
}

// Tag is a block tag with its content, e.g. "@category Utils"
type Tag struct {
	Name    string `yaml:"tag"`
	Content []Part `yaml:"content,omitempty"`
}

// NewTag creates a tag with a single text part
func NewTag(name, text string) *Tag {
	tag := &Tag{Name: name}
	if text != "" {
		tag.Content = []Part{TextPart(text)}
	}
	return tag
}

// Text returns tag content parts joined together
func (t *Tag) Text() string {
	builder := strings.Builder{}
	for _, part := range t.Content {
		builder.WriteString(part.Text)
	}
	return builder.String()
}

// DescriptionName returns the first line of the first content part, which names the
// category or group a description tag refers to
func (t *Tag) DescriptionName() string {
	if len(t.Content) == 0 {
		return ""
	}
	text := t.Content[0].Text
	if idx := strings.IndexByte(text, '\n'); idx != -1 {
		return text[:idx]
	}
	return text
}

// DescriptionBody returns everything after the first line of a description tag
func (t *Tag) DescriptionBody() string {
	text := t.Text()
	idx := strings.IndexByte(text, '\n')
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(text[idx+1:])
}

// Comment represents a parsed documentation comment
type Comment struct {
	Summary   []Part `yaml:"summary,omitempty"`
	BlockTags []*Tag `yaml:"blockTags,omitempty"`
}

// NewComment creates a comment with the given summary text
func NewComment(summary string, tags ...*Tag) *Comment {
	comment := &Comment{BlockTags: tags}
	if summary != "" {
		comment.Summary = []Part{TextPart(summary)}
	}
	return comment
}

// SummaryText returns summary parts joined together
func (c *Comment) SummaryText() string {
	if c == nil {
		return ""
	}
	builder := strings.Builder{}
	for _, part := range c.Summary {
		builder.WriteString(part.Text)
	}
	return builder.String()
}

// HasSummary returns true if the comment carries summary parts
func (c *Comment) HasSummary() bool {
	return c != nil && len(c.Summary) > 0
}

// HasTag returns true if the comment carries a block tag with the given name
func (c *Comment) HasTag(name string) bool {
	if c == nil {
		return false
	}
	for _, tag := range c.BlockTags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// Tags returns block tags with the given name, in declaration order
func (c *Comment) Tags(name string) []*Tag {
	if c == nil {
		return nil
	}
	var result []*Tag
	for _, tag := range c.BlockTags {
		if tag.Name == name {
			result = append(result, tag)
		}
	}
	return result
}

// RemoveTags drops every block tag with the given name and returns the number removed
func (c *Comment) RemoveTags(name string) int {
	if c == nil {
		return 0
	}
	kept := c.BlockTags[:0]
	removed := 0
	for _, tag := range c.BlockTags {
		if tag.Name == name {
			removed++
			continue
		}
		kept = append(kept, tag)
	}
	for i := len(kept); i < len(c.BlockTags); i++ {
		c.BlockTags[i] = nil
	}
	c.BlockTags = kept
	return removed
}

// AddTag appends a block tag
func (c *Comment) AddTag(tag *Tag) {
	c.BlockTags = append(c.BlockTags, tag)
}
