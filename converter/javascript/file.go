package javascript

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/viant/docmerge/reflection"
)

const (
	tagPackageDocumentation = "@packageDocumentation"
	defaultExport           = "default"
)

// file converts one source file into a module
type file struct {
	*Converter
	project       *reflection.Project
	module        reflection.ID
	source        string
	dir           string
	src           []byte
	locals        map[string]*local
	moduleComment uint32
}

// local is a top-level declaration that may be exported later in the file
type local struct {
	kind    reflection.Kind
	comment *reflection.Comment
	node    *sitter.Node
}

// ConvertSource converts a single file into a module owned by parent. The source is the file path
// relative to its package and names the module unless the file carries a @module tag; dir resolves
// @document paths.
func (c *Converter) ConvertSource(ctx context.Context, project *reflection.Project, parent reflection.ID, source, dir string, src []byte) (reflection.ID, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return reflection.NoID, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	root := tree.RootNode()
	f := &file{Converter: c, project: project, source: source, dir: dir, src: src, locals: map[string]*local{}, moduleComment: ^uint32(0)}

	comment := f.leadingModuleComment(root)
	name := moduleName(source)
	if tags := comment.Tags(reflection.TagModule); len(tags) > 0 && tags[0].Text() != "" {
		name = strings.TrimSpace(tags[0].Text())
	}
	comment.RemoveTags(reflection.TagModule)
	comment.RemoveTags(tagPackageDocumentation)
	documents := comment.Tags(reflection.TagDocument)
	comment.RemoveTags(reflection.TagDocument)

	if f.module, err = project.NewNode(reflection.KindModule, name, parent); err != nil {
		return reflection.NoID, err
	}
	module := project.Node(f.module)
	module.Comment = nonEmpty(comment)
	module.Source = source
	for _, document := range documents {
		if err = f.addDocument(ctx, document.Text()); err != nil {
			return reflection.NoID, err
		}
	}

	f.collectLocals(root)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		statement := root.NamedChild(i)
		if statement.Type() != "export_statement" {
			continue
		}
		if err = f.export(statement); err != nil {
			return reflection.NoID, fmt.Errorf("failed to convert %s: %w", source, err)
		}
	}
	return f.module, nil
}

// leadingModuleComment returns the file comment: the first doc block when it carries @module or @packageDocumentation
func (f *file) leadingModuleComment(root *sitter.Node) *reflection.Comment {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "hash_bang_line" {
			continue
		}
		if child.Type() != "comment" {
			return nil
		}
		content := child.Content(f.src)
		if !isDocComment(content) {
			continue
		}
		comment := parseDocComment(content)
		if !comment.HasTag(reflection.TagModule) && !comment.HasTag(tagPackageDocumentation) {
			return nil
		}
		f.moduleComment = child.StartByte()
		return comment
	}
	return nil
}

func (f *file) addDocument(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}
	content, err := f.fs.DownloadWithURL(ctx, filepath.Join(f.dir, location))
	if err != nil {
		return fmt.Errorf("failed to read document %s of %s: %w", location, f.source, err)
	}
	id, err := f.project.NewNode(reflection.KindDocument, documentTitle(content, location), f.module)
	if err != nil {
		return err
	}
	node := f.project.Node(id)
	node.Content = string(content)
	node.Source = path.Join(path.Dir(f.source), filepath.ToSlash(location))
	return nil
}

// commentOf returns the doc block directly preceding a statement
func (f *file) commentOf(statement *sitter.Node) *reflection.Comment {
	prev := statement.PrevNamedSibling()
	if prev == nil || prev.Type() != "comment" || prev.StartByte() == f.moduleComment {
		return nil
	}
	if statement.StartPoint().Row > prev.EndPoint().Row+1 {
		return nil
	}
	content := prev.Content(f.src)
	if !isDocComment(content) {
		return nil
	}
	return parseDocComment(content)
}

func (f *file) collectLocals(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		statement := root.NamedChild(i)
		comment := f.commentOf(statement)
		switch statement.Type() {
		case "class_declaration", "function_declaration", "generator_function_declaration":
			if name := statement.ChildByFieldName("name"); name != nil {
				f.locals[name.Content(f.src)] = &local{kind: nodeKind(statement), comment: comment, node: statement}
			}
		case "lexical_declaration", "variable_declaration":
			for j := 0; j < int(statement.NamedChildCount()); j++ {
				declarator := statement.NamedChild(j)
				name := declarator.ChildByFieldName("name")
				if declarator.Type() != "variable_declarator" || name == nil || name.Type() != "identifier" {
					continue
				}
				f.locals[name.Content(f.src)] = &local{kind: nodeKind(declarator), comment: comment, node: declarator}
			}
		}
	}
}

func (f *file) export(statement *sitter.Node) error {
	comment := f.commentOf(statement)
	source := statement.ChildByFieldName("source")

	if decl := statement.ChildByFieldName("declaration"); decl != nil {
		if hasToken(statement, defaultExport) {
			symbol := &reflection.Symbol{Name: defaultExport, Declarations: f.declarations(decl)}
			return f.declare(nodeKind(decl), defaultExport, comment, symbol)
		}
		return f.declareAll(decl, comment)
	}

	if value := statement.ChildByFieldName("value"); value != nil {
		if value.Type() == "identifier" {
			name := value.Content(f.src)
			symbol := &reflection.Symbol{Name: name}
			kind := reflection.KindVariable
			if l, ok := f.locals[name]; ok {
				kind = l.kind
				symbol.Declarations = f.declarations(l.node)
				if comment == nil {
					comment = l.comment
				}
			}
			return f.declare(kind, defaultExport, comment, symbol)
		}
		symbol := &reflection.Symbol{Name: defaultExport, Declarations: f.declarations(value)}
		return f.declare(nodeKind(value), defaultExport, comment, symbol)
	}

	for i := 0; i < int(statement.NamedChildCount()); i++ {
		child := statement.NamedChild(i)
		switch child.Type() {
		case "namespace_export":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if alias := child.NamedChild(j); alias.Type() == "identifier" {
					name := alias.Content(f.src)
					if err := f.declare(reflection.KindReference, name, nil, &reflection.Symbol{Name: name}); err != nil {
						return err
					}
				}
			}
		case "export_clause":
			if err := f.exportClause(child, source != nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// exportClause converts `export { a, b as c }`; with a source the specifiers are re-exports
func (f *file) exportClause(clause *sitter.Node, reexport bool) error {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		specifier := clause.NamedChild(i)
		nameNode := specifier.ChildByFieldName("name")
		if specifier.Type() != "export_specifier" || nameNode == nil {
			continue
		}
		name := nameNode.Content(f.src)
		exported := name
		if alias := specifier.ChildByFieldName("alias"); alias != nil {
			exported = alias.Content(f.src)
		}
		if reexport {
			if err := f.declare(reflection.KindReference, exported, nil, &reflection.Symbol{Name: name}); err != nil {
				return err
			}
			continue
		}
		l, ok := f.locals[name]
		if !ok {
			continue
		}
		symbol := &reflection.Symbol{Name: name, Declarations: f.declarations(l.node)}
		if err := f.declare(l.kind, exported, l.comment, symbol); err != nil {
			return err
		}
	}
	return nil
}

func (f *file) declareAll(decl *sitter.Node, comment *reflection.Comment) error {
	switch decl.Type() {
	case "lexical_declaration", "variable_declaration":
		for i := 0; i < int(decl.NamedChildCount()); i++ {
			declarator := decl.NamedChild(i)
			nameNode := declarator.ChildByFieldName("name")
			if declarator.Type() != "variable_declarator" || nameNode == nil || nameNode.Type() != "identifier" {
				continue
			}
			name := nameNode.Content(f.src)
			symbol := &reflection.Symbol{Name: name, Declarations: f.declarations(declarator)}
			if err := f.declare(nodeKind(declarator), name, comment, symbol); err != nil {
				return err
			}
		}
		return nil
	}
	nameNode := decl.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(f.src)
	return f.declare(nodeKind(decl), name, comment, &reflection.Symbol{Name: name, Declarations: f.declarations(decl)})
}

// declare creates a declaration node, registers its symbol and fires the declaration hook
func (f *file) declare(kind reflection.Kind, name string, comment *reflection.Comment, symbol *reflection.Symbol) error {
	id, err := f.project.NewNode(kind, name, f.module)
	if err != nil {
		return err
	}
	node := f.project.Node(id)
	node.Comment = nonEmpty(comment)
	node.Source = f.source
	f.project.RegisterSymbol(id, symbol)
	f.config.Created(f.project, id)
	return nil
}

// hasToken returns true if an anonymous child token matches text, e.g. the default keyword
func hasToken(node *sitter.Node, text string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); !child.IsNamed() && child.Type() == text {
			return true
		}
	}
	return false
}

func moduleName(source string) string {
	source = filepath.ToSlash(source)
	return strings.TrimSuffix(source, path.Ext(source))
}

func nonEmpty(comment *reflection.Comment) *reflection.Comment {
	if comment == nil || len(comment.Summary) == 0 && len(comment.BlockTags) == 0 {
		return nil
	}
	return comment
}
