package reflection

// FindModules returns every module below root, recursing into modules to support nested layouts.
// The result is depth first with parents before their children.
func FindModules(p *Project, root ID) []ID {
	var modules []ID
	node := p.Node(root)
	if node == nil || node.Removed {
		return modules
	}
	for _, child := range node.Children {
		childNode := p.Node(child)
		if childNode == nil || childNode.Removed || !childNode.Kind.Is(KindModule) {
			continue
		}
		modules = append(modules, child)
		modules = append(modules, FindModules(p, child)...)
	}
	return modules
}
