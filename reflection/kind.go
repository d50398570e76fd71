package reflection

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is a bit set describing what a node represents
type Kind uint32

const (
	KindProject Kind = 1 << iota
	KindModule
	KindNamespace
	KindEnum
	KindVariable
	KindFunction
	KindClass
	KindInterface
	KindTypeAlias
	KindTypeLiteral
	KindReference // re-export alias, carries no content
	KindDocument
)

const (
	// KindContainer groups kinds that can own children
	KindContainer        = KindProject | KindModule | KindNamespace
	KindClassOrInterface = KindClass | KindInterface
)

var kindNames = []struct {
	kind   Kind
	name   string
	plural string
}{
	{KindProject, "Project", "Projects"},
	{KindModule, "Module", "Modules"},
	{KindNamespace, "Namespace", "Namespaces"},
	{KindEnum, "Enum", "Enumerations"},
	{KindVariable, "Variable", "Variables"},
	{KindFunction, "Function", "Functions"},
	{KindClass, "Class", "Classes"},
	{KindInterface, "Interface", "Interfaces"},
	{KindTypeAlias, "TypeAlias", "Type Aliases"},
	{KindTypeLiteral, "TypeLiteral", "Type Literals"},
	{KindReference, "Reference", "References"},
	{KindDocument, "Document", "Documents"},
}

// Is returns true if k shares at least one bit with mask
func (k Kind) Is(mask Kind) bool {
	return k&mask != 0
}

func (k Kind) String() string {
	var names []string
	for _, candidate := range kindNames {
		if k&candidate.kind != 0 {
			names = append(names, candidate.name)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, "|")
}

// Plural returns the group title used for nodes of this kind
func (k Kind) Plural() string {
	for _, candidate := range kindNames {
		if k == candidate.kind {
			return candidate.plural
		}
	}
	return "Other"
}

// ParseKind resolves a single kind by its name
func ParseKind(name string) (Kind, bool) {
	for _, candidate := range kindNames {
		if strings.EqualFold(candidate.name, name) {
			return candidate.kind, true
		}
	}
	return 0, false
}

// MarshalYAML renders the kind by name
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes a kind rendered by MarshalYAML
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var result Kind
	for _, name := range strings.Split(value.Value, "|") {
		kind, ok := ParseKind(name)
		if !ok {
			return fmt.Errorf("unknown kind: %q", name)
		}
		result |= kind
	}
	*k = result
	return nil
}
