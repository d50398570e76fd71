package reflection

import (
	"fmt"
	"slices"
)

// Project is the arena owning every node of a reflection tree; the root node has ID 0
type Project struct {
	Name    string
	nodes   []*Node
	symbols map[ID]*Symbol
}

// NewProject creates a project with its root node
func NewProject(name string) *Project {
	p := &Project{Name: name, symbols: make(map[ID]*Symbol)}
	p.nodes = append(p.nodes, &Node{ID: 0, Kind: KindProject, Name: name, Parent: NoID})
	return p
}

// Root returns the root node ID
func (p *Project) Root() ID {
	return 0
}

// RootNode returns the root node
func (p *Project) RootNode() *Node {
	return p.nodes[0]
}

// Node returns the node with the given ID or nil
func (p *Project) Node(id ID) *Node {
	if id < 0 || int(id) >= len(p.nodes) {
		return nil
	}
	return p.nodes[id]
}

// Len returns the number of nodes ever allocated, removed ones included
func (p *Project) Len() int {
	return len(p.nodes)
}

// NewNode creates a node owned by parent. Documents are tracked in the parent's document sequence,
// everything else in its children sequence; both land in ChildrenIncludingDocuments.
func (p *Project) NewNode(kind Kind, name string, parent ID) (ID, error) {
	owner := p.Node(parent)
	if owner == nil {
		return NoID, fmt.Errorf("failed to create %v %q: %w %d", kind, name, ErrUnknownNode, parent)
	}
	if !owner.IsContainer() {
		return NoID, fmt.Errorf("failed to create %v %q under %q: %w", kind, name, owner.Name, ErrNotContainer)
	}
	id := ID(len(p.nodes))
	p.nodes = append(p.nodes, &Node{ID: id, Kind: kind, Name: name, Parent: parent})
	p.attach(id, owner)
	return id, nil
}

// MustNode creates a node and panics on failure; intended for fixtures
func (p *Project) MustNode(kind Kind, name string, parent ID) ID {
	id, err := p.NewNode(kind, name, parent)
	if err != nil {
		panic(err)
	}
	return id
}

// RegisterSymbol associates a symbol with a node
func (p *Project) RegisterSymbol(id ID, symbol *Symbol) {
	p.symbols[id] = symbol
}

// SymbolOf returns the symbol the node was converted from, or nil
func (p *Project) SymbolOf(id ID) *Symbol {
	return p.symbols[id]
}

// Remove marks the node and its subtree as removed; ownership links are left to Detach
func (p *Project) Remove(id ID) {
	node := p.Node(id)
	if node == nil || node.Removed {
		return
	}
	node.Removed = true
	delete(p.symbols, id)
	for _, child := range node.ChildrenIncludingDocuments {
		p.Remove(child)
	}
}

// Reachable returns true if the node can be reached from the root by child traversal
func (p *Project) Reachable(id ID) bool {
	for {
		node := p.Node(id)
		if node == nil || node.Removed {
			return false
		}
		if id == p.Root() {
			return true
		}
		parent := p.Node(node.Parent)
		if parent == nil || !slices.Contains(parent.ChildrenIncludingDocuments, id) {
			return false
		}
		id = node.Parent
	}
}

// Walk visits reachable nodes depth first, parent before children; returning false skips the subtree
func (p *Project) Walk(fn func(node *Node, depth int) bool) {
	p.walk(p.Root(), 0, fn)
}

func (p *Project) walk(id ID, depth int, fn func(node *Node, depth int) bool) {
	node := p.Node(id)
	if node == nil || node.Removed {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, child := range node.ChildrenIncludingDocuments {
		p.walk(child, depth+1, fn)
	}
}

// Find returns the first reachable node with the given name and kind mask, or NoID
func (p *Project) Find(name string, mask Kind) ID {
	result := NoID
	p.Walk(func(node *Node, depth int) bool {
		if result != NoID {
			return false
		}
		if node.Name == name && node.Kind.Is(mask) {
			result = node.ID
			return false
		}
		return true
	})
	return result
}

// Names returns the names of the given nodes
func (p *Project) Names(ids []ID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if node := p.Node(id); node != nil {
			names = append(names, node.Name)
		}
	}
	return names
}
