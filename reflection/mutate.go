package reflection

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotContainer is returned when a node is moved or detached from something that cannot own it
	ErrNotContainer = errors.New("not a container")
	// ErrUnknownNode is returned for IDs outside of the project arena
	ErrUnknownNode = errors.New("unknown node")
	// ErrNotOwned is returned when a node is moved from a container that does not own it
	ErrNotOwned = errors.New("not owned by source")
)

// Move transfers ownership of id from one container to another. The node is removed from the source's
// children (or documents), combined sequence and "Modules" group, then appended to the destination.
// References absent from a source collection are skipped. Moving a node within the same container
// re-appends it to the container's sequences and leaves sections untouched. The node must be live and
// owned by from.
func (p *Project) Move(id, from, to ID) error {
	node := p.Node(id)
	if node == nil {
		return fmt.Errorf("failed to move node %d: %w", id, ErrUnknownNode)
	}
	source := p.Node(from)
	if !source.IsContainer() {
		return fmt.Errorf("failed to move %q: source %s: %w", node.Name, p.describe(from), ErrNotContainer)
	}
	if node.Removed || !p.Node(node.Parent).IsContainer() {
		return fmt.Errorf("failed to move %q: parent %s: %w", node.Name, p.describe(node.Parent), ErrNotContainer)
	}
	if node.Parent != from {
		return fmt.Errorf("failed to move %q from %s: owned by %s: %w", node.Name, p.describe(from), p.describe(node.Parent), ErrNotOwned)
	}
	destination := p.Node(to)
	if !destination.IsContainer() {
		return fmt.Errorf("failed to move %q: destination %s: %w", node.Name, p.describe(to), ErrNotContainer)
	}
	if id == to || p.isAncestor(id, to) {
		return fmt.Errorf("failed to move %q into its own subtree %q", node.Name, destination.Name)
	}
	if from == to {
		source.Children = removeID(source.Children, id)
		source.Documents = removeID(source.Documents, id)
		source.ChildrenIncludingDocuments = removeID(source.ChildrenIncludingDocuments, id)
	} else {
		p.detachFrom(id, source, false)
	}
	p.attach(id, destination)
	return nil
}

// Detach removes the node from its parent container, including every category and group of the parent,
// and marks its subtree as removed so it is no longer reachable. Sections left empty by the removal are
// dropped from the parent.
func (p *Project) Detach(id ID) error {
	node := p.Node(id)
	if node == nil {
		return fmt.Errorf("failed to detach node %d: %w", id, ErrUnknownNode)
	}
	parent := p.Node(node.Parent)
	if !parent.IsContainer() {
		return fmt.Errorf("failed to detach %q: parent %s: %w", node.Name, p.describe(node.Parent), ErrNotContainer)
	}
	p.detachFrom(id, parent, true)
	node.Parent = NoID
	p.Remove(id)
	return nil
}

func (p *Project) attach(id ID, owner *Node) {
	node := p.nodes[id]
	node.Parent = owner.ID
	if node.Kind.Is(KindDocument) {
		owner.Documents = append(owner.Documents, id)
	} else {
		owner.Children = append(owner.Children, id)
	}
	owner.ChildrenIncludingDocuments = append(owner.ChildrenIncludingDocuments, id)
}

func (p *Project) detachFrom(id ID, owner *Node, allSections bool) {
	owner.Children = removeID(owner.Children, id)
	owner.Documents = removeID(owner.Documents, id)
	owner.ChildrenIncludingDocuments = removeID(owner.ChildrenIncludingDocuments, id)
	if !allSections {
		if group := owner.Group(ModulesGroupTitle); group != nil {
			group.Children = removeID(group.Children, id)
		}
		return
	}
	owner.Groups = slices.DeleteFunc(owner.Groups, func(group *Group) bool {
		return dropMember(&group.Category, id)
	})
	owner.Categories = slices.DeleteFunc(owner.Categories, func(category *Category) bool {
		return dropMember(category, id)
	})
}

// dropMember removes id from the section and reports whether that left the section empty
func dropMember(section *Category, id ID) bool {
	count := len(section.Children)
	section.Children = removeID(section.Children, id)
	return count > 0 && len(section.Children) == 0
}

func (p *Project) isAncestor(ancestor, id ID) bool {
	for node := p.Node(id); node != nil && node.Parent != NoID; node = p.Node(node.Parent) {
		if node.Parent == ancestor {
			return true
		}
	}
	return false
}

func (p *Project) describe(id ID) string {
	node := p.Node(id)
	switch {
	case node == nil:
		return fmt.Sprintf("#%d (missing)", id)
	case node.Removed:
		return fmt.Sprintf("%q (removed)", node.Name)
	default:
		return fmt.Sprintf("%q (%v)", node.Name, node.Kind)
	}
}

func removeID(ids []ID, id ID) []ID {
	if idx := slices.Index(ids, id); idx != -1 {
		return slices.Delete(ids, idx, idx+1)
	}
	return ids
}
