package reflection

import (
	"gopkg.in/yaml.v3"
)

// Snapshot is a detached, serializable view of a reachable subtree
type Snapshot struct {
	Kind       Kind               `yaml:"kind"`
	Name       string             `yaml:"name"`
	Comment    *Comment           `yaml:"comment,omitempty"`
	Content    string             `yaml:"content,omitempty"`
	Categories []*SnapshotSection `yaml:"categories,omitempty"`
	Groups     []*SnapshotSection `yaml:"groups,omitempty"`
	Children   []*Snapshot        `yaml:"children,omitempty"`
}

// SnapshotSection is a category or group with member names resolved
type SnapshotSection struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Children    []string `yaml:"children,omitempty"`
}

// NewSnapshot captures the tree reachable from the project root
func NewSnapshot(p *Project) *Snapshot {
	return newSnapshot(p, p.Root())
}

// NewSubtreeSnapshot captures the tree reachable from id
func NewSubtreeSnapshot(p *Project, id ID) *Snapshot {
	return newSnapshot(p, id)
}

func newSnapshot(p *Project, id ID) *Snapshot {
	node := p.Node(id)
	if node == nil || node.Removed {
		return nil
	}
	result := &Snapshot{
		Kind:    node.Kind,
		Name:    node.Name,
		Comment: node.Comment,
		Content: node.Content,
	}
	for _, category := range node.Categories {
		result.Categories = append(result.Categories, p.section(category))
	}
	for _, group := range node.Groups {
		result.Groups = append(result.Groups, p.section(&group.Category))
	}
	for _, child := range node.ChildrenIncludingDocuments {
		if snapshot := newSnapshot(p, child); snapshot != nil {
			result.Children = append(result.Children, snapshot)
		}
	}
	return result
}

func (p *Project) section(category *Category) *SnapshotSection {
	return &SnapshotSection{
		Title:       category.Title,
		Description: category.Description,
		Children:    p.Names(category.Children),
	}
}

// YAML encodes the snapshot
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
