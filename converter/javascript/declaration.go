package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/docmerge/reflection"
)

// declaration is the syntax node a symbol was declared with
type declaration struct {
	node *sitter.Node
	src  []byte
}

// Identifier returns the name token of the declaration; anonymous classes and functions have none
func (d *declaration) Identifier() (string, bool) {
	if d == nil || d.node == nil {
		return "", false
	}
	name := d.node.ChildByFieldName("name")
	if name == nil || name.Type() != "identifier" && name.Type() != "type_identifier" {
		return "", false
	}
	return name.Content(d.src), true
}

func (f *file) declarations(node *sitter.Node) []reflection.Declaration {
	if node == nil {
		return nil
	}
	return []reflection.Declaration{&declaration{node: node, src: f.src}}
}

// nodeKind maps declarations and expressions to reflection kinds
func nodeKind(node *sitter.Node) reflection.Kind {
	if node == nil {
		return reflection.KindVariable
	}
	switch node.Type() {
	case "class_declaration", "class":
		return reflection.KindClass
	case "function_declaration", "generator_function_declaration", "function", "function_expression",
		"generator_function", "arrow_function":
		return reflection.KindFunction
	case "variable_declarator":
		return nodeKind(node.ChildByFieldName("value"))
	}
	return reflection.KindVariable
}
