package merger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/viant/docmerge/reflection"
)

// ErrUnknownMode is returned for unrecognized merge modes
var ErrUnknownMode = errors.New("unknown merge mode")

// Mode selects how modules are merged
type Mode string

const (
	ModeOff            Mode = "off"             // no merging
	ModeProject        Mode = "project"         // move everything into the project root
	ModeModule         Mode = "module"          // merge modules with the same name
	ModeModuleCategory Mode = "module-category" // merge modules with the same name and categories
)

// Modes lists recognized modes
var Modes = []Mode{ModeOff, ModeProject, ModeModule, ModeModuleCategory}

// ParseMode validates a mode name
func ParseMode(name string) (Mode, error) {
	mode := Mode(strings.TrimSpace(name))
	if slices.Contains(Modes, mode) {
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q, expected one of %v", ErrUnknownMode, name, Modes)
}

// KeyFunc computes the bundle a module belongs to
type KeyFunc func(project *reflection.Project, module reflection.ID) string

// KeyFunc returns the bundle key function of a per-module mode, or nil
func (m Mode) KeyFunc() KeyFunc {
	switch m {
	case ModeModule:
		return NameKey
	case ModeModuleCategory:
		return NameCategoryKey
	}
	return nil
}

// NameKey bundles modules by display name
func NameKey(project *reflection.Project, module reflection.ID) string {
	return project.Node(module).Name
}

const (
	categoriesMarker = "_[[[CATEGORIES:]]]_"
	categorySep      = "_[[[|]]]_"
)

// NameCategoryKey bundles modules by display name and the sorted, deduplicated set of their @category tags
func NameCategoryKey(project *reflection.Project, module reflection.ID) string {
	node := project.Node(module)
	var texts []string
	for _, tag := range node.Comment.Tags(reflection.TagCategory) {
		parts := make([]string, 0, len(tag.Content))
		for _, part := range tag.Content {
			parts = append(parts, part.Text)
		}
		texts = append(texts, strings.Join(parts, ","))
	}
	slices.Sort(texts)
	texts = slices.Compact(texts)
	return node.Name + categoriesMarker + strings.Join(texts, categorySep)
}
