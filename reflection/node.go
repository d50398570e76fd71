package reflection

// ID addresses a node within its project arena
type ID int

// NoID marks an absent node reference
const NoID ID = -1

// ModulesGroupTitle is the title of the group listing a container's modules
const ModulesGroupTitle = "Modules"

// Category is a named presentation bucket of sibling nodes; membership does not imply ownership
type Category struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Children    []ID   `yaml:"-"`
}

// Group buckets sibling nodes, typically by kind
type Group struct {
	Category `yaml:",inline"`
}

// NewGroup creates a group with the given title
func NewGroup(title string, children ...ID) *Group {
	return &Group{Category: Category{Title: title, Children: children}}
}

// Node represents one documented element: project, module, declaration or document
type Node struct {
	ID                         ID
	Kind                       Kind
	Name                       string
	Comment                    *Comment
	Parent                     ID
	Children                   []ID
	Documents                  []ID
	ChildrenIncludingDocuments []ID
	Categories                 []*Category
	Groups                     []*Group
	Content                    string // document body
	Source                     string // originating file, relative to the project root
	Removed                    bool
}

// IsContainer returns true if the node can own children
func (n *Node) IsContainer() bool {
	return n != nil && !n.Removed && n.Kind.Is(KindContainer)
}

// Category returns the category with the given title or nil
func (n *Node) Category(title string) *Category {
	for _, category := range n.Categories {
		if category.Title == title {
			return category
		}
	}
	return nil
}

// Group returns the group with the given title or nil
func (n *Node) Group(title string) *Group {
	for _, group := range n.Groups {
		if group.Title == title {
			return group
		}
	}
	return nil
}
