package reflection

// Declaration is the originating syntax of a symbol
type Declaration interface {
	// Identifier returns the identifier token of the declaration, if it has one
	Identifier() (string, bool)
}

// Symbol is the compiler level entity a node was converted from
type Symbol struct {
	Name         string
	Declarations []Declaration
}

// NamedDeclaration is a declaration with a known identifier
type NamedDeclaration string

// Identifier returns the declaration name
func (d NamedDeclaration) Identifier() (string, bool) {
	return string(d), d != ""
}
