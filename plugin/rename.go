package plugin

import (
	"github.com/viant/docmerge/reflection"
)

// defaultName is the name converters give to default exports
const defaultName = "default"

// renameKinds lists kinds whose default exports get their original name back
const renameKinds = reflection.KindClassOrInterface | reflection.KindEnum | reflection.KindFunction |
	reflection.KindTypeAlias | reflection.KindTypeLiteral | reflection.KindVariable

// ConversionContext exposes the conversion state to the plugin
type ConversionContext interface {
	Node(id reflection.ID) *reflection.Node
	SymbolOf(id reflection.ID) *reflection.Symbol
}

// TryGetOriginalName returns the name a default export was declared with: the symbol name when it is
// not "default", else the identifier of the first declaration
func TryGetOriginalName(ctx ConversionContext, id reflection.ID) (string, bool) {
	symbol := ctx.SymbolOf(id)
	if symbol == nil {
		return "", false
	}
	if symbol.Name != "" && symbol.Name != defaultName {
		return symbol.Name, true
	}
	if len(symbol.Declarations) == 0 || symbol.Declarations[0] == nil {
		return "", false
	}
	return symbol.Declarations[0].Identifier()
}
