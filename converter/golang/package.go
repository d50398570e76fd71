package golang

import (
	"go/ast"
	"go/token"
	"path/filepath"

	"github.com/viant/docmerge/reflection"
	"golang.org/x/tools/go/packages"
)

func (c *Converter) convertPackage(project *reflection.Project, module reflection.ID, pkg *packages.Package) error {
	node := project.Node(module)
	for _, file := range pkg.Syntax {
		if file.Doc != nil && node.Comment == nil {
			node.Comment = newComment(file.Doc)
		}
	}
	for i, file := range pkg.Syntax {
		source := ""
		if i < len(pkg.CompiledGoFiles) {
			source = filepath.Base(pkg.CompiledGoFiles[i])
		}
		for _, decl := range file.Decls {
			if err := c.convertDecl(project, module, source, decl); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Converter) convertDecl(project *reflection.Project, module reflection.ID, source string, decl ast.Decl) error {
	switch actual := decl.(type) {
	case *ast.FuncDecl:
		if actual.Recv != nil || !actual.Name.IsExported() {
			return nil
		}
		return c.declare(project, module, reflection.KindFunction, actual.Name.Name, source, actual.Doc)
	case *ast.GenDecl:
		for _, spec := range actual.Specs {
			doc := actual.Doc
			switch s := spec.(type) {
			case *ast.TypeSpec:
				if s.Doc != nil {
					doc = s.Doc
				}
				if !s.Name.IsExported() {
					continue
				}
				if err := c.declare(project, module, typeKind(s), s.Name.Name, source, doc); err != nil {
					return err
				}
			case *ast.ValueSpec:
				if s.Doc != nil {
					doc = s.Doc
				}
				kind := reflection.KindVariable
				if actual.Tok == token.CONST && len(actual.Specs) > 1 {
					kind = reflection.KindEnum
				}
				for _, name := range s.Names {
					if !name.IsExported() {
						continue
					}
					if err := c.declare(project, module, kind, name.Name, source, doc); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (c *Converter) declare(project *reflection.Project, module reflection.ID, kind reflection.Kind, name, source string, doc *ast.CommentGroup) error {
	id, err := project.NewNode(kind, name, module)
	if err != nil {
		return err
	}
	node := project.Node(id)
	node.Source = source
	if doc != nil {
		node.Comment = newComment(doc)
	}
	project.RegisterSymbol(id, &reflection.Symbol{Name: name, Declarations: []reflection.Declaration{reflection.NamedDeclaration(name)}})
	c.config.Created(project, id)
	return nil
}

func typeKind(spec *ast.TypeSpec) reflection.Kind {
	switch spec.Type.(type) {
	case *ast.StructType:
		return reflection.KindClass
	case *ast.InterfaceType:
		return reflection.KindInterface
	}
	return reflection.KindTypeAlias
}
