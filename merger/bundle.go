package merger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap"
)

// ErrEmptyBundle is returned when merging a bundle without members or explicit target
var ErrEmptyBundle = errors.New("empty bundle")

// Bundle groups modules that are merged into a single target module
type Bundle struct {
	project *reflection.Project
	modules []reflection.ID
	logger  *zap.Logger
}

// NewBundle creates an empty bundle
func NewBundle(project *reflection.Project, logger *zap.Logger) *Bundle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bundle{project: project, logger: logger}
}

// Add appends a module to the bundle
func (b *Bundle) Add(module reflection.ID) {
	b.modules = append(b.modules, module)
}

// Members returns bundle modules in the order they were added
func (b *Bundle) Members() []reflection.ID {
	return b.modules
}

// Len returns the number of bundle members
func (b *Bundle) Len() int {
	return len(b.modules)
}

// TargetModule returns the module receiving the bundle content: the first one marked with @mergeTarget,
// else the first one with a summary, else the first one
func (b *Bundle) TargetModule() reflection.ID {
	for _, module := range b.modules {
		if b.project.Node(module).Comment.HasTag(reflection.TagMergeTarget) {
			return module
		}
	}
	for _, module := range b.modules {
		if b.project.Node(module).Comment.HasSummary() {
			return module
		}
	}
	if len(b.modules) == 0 {
		return reflection.NoID
	}
	return b.modules[0]
}

// Merge moves the content of every member into the target and removes the other members from the tree.
// When categorized is true, existing categories and groups are reconciled on the target; otherwise the
// category and group description tags are copied so a later categorization finds them on the target.
// An explicit target overrides target selection. Returns the target.
func (b *Bundle) Merge(categorized bool, explicitTarget ...reflection.ID) (reflection.ID, error) {
	var target reflection.ID
	if len(explicitTarget) > 0 {
		target = explicitTarget[0]
	} else {
		target = b.TargetModule()
	}
	targetNode := b.project.Node(target)
	if targetNode == nil {
		return reflection.NoID, fmt.Errorf("failed to merge %d modules: %w", len(b.modules), ErrEmptyBundle)
	}
	targetNode.Comment.RemoveTags(reflection.TagMergeTarget)
	b.logger.Debug("merging bundle",
		zap.Strings("modules", b.project.Names(b.modules)),
		zap.String("target", targetNode.Name),
		zap.Bool("categorized", categorized))

	if err := b.liftTarget(target); err != nil {
		return reflection.NoID, err
	}
	if err := b.relocate(target); err != nil {
		return reflection.NoID, err
	}
	if categorized {
		b.mergeCategories(targetNode)
		b.mergeGroups(targetNode)
	} else {
		b.copyDescriptionTags(targetNode, reflection.TagCategoryDescription)
		b.copyDescriptionTags(targetNode, reflection.TagGroupDescription)
	}
	for _, module := range b.modules {
		if module == target {
			continue
		}
		if err := b.project.Detach(module); err != nil {
			return reflection.NoID, fmt.Errorf("failed to remove merged module: %w", err)
		}
	}
	return target, nil
}

// relocate moves non-alias children of every member into the target, in member order.
// Child lists are captured before any move since moves mutate them.
func (b *Bundle) relocate(target reflection.ID) error {
	snapshots := make([][]reflection.ID, len(b.modules))
	for i, module := range b.modules {
		snapshots[i] = slices.Clone(b.project.Node(module).ChildrenIncludingDocuments)
	}
	for i, module := range b.modules {
		for _, child := range snapshots[i] {
			if child == target {
				continue
			}
			node := b.project.Node(child)
			if node.Kind.Is(reflection.KindReference) {
				if module == target {
					if err := b.project.Detach(child); err != nil {
						return fmt.Errorf("failed to drop alias: %w", err)
					}
				}
				continue
			}
			if err := b.project.Move(child, node.Parent, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// liftTarget moves the target next to its outermost ancestor that is a bundle member, since members
// other than the target are removed at the end of the merge
func (b *Bundle) liftTarget(target reflection.ID) error {
	outermost := reflection.NoID
	for id := b.project.Node(target).Parent; id != reflection.NoID; id = b.project.Node(id).Parent {
		if slices.Contains(b.modules, id) {
			outermost = id
		}
	}
	if outermost == reflection.NoID {
		return nil
	}
	return b.project.Move(target, b.project.Node(target).Parent, b.project.Node(outermost).Parent)
}

func (b *Bundle) mergeCategories(target *reflection.Node) {
	for _, module := range b.modules {
		if module == target.ID {
			continue
		}
		target.Categories = mergeSections(target.Categories, b.project.Node(module).Categories,
			func(c *reflection.Category) *reflection.Category { return c })
	}
	target.Categories = slices.DeleteFunc(target.Categories, func(category *reflection.Category) bool {
		return b.settle(target.ID, category)
	})
}

func (b *Bundle) mergeGroups(target *reflection.Node) {
	for _, module := range b.modules {
		if module == target.ID {
			continue
		}
		target.Groups = mergeSections(target.Groups, b.project.Node(module).Groups,
			func(g *reflection.Group) *reflection.Category { return &g.Category })
	}
	target.Groups = slices.DeleteFunc(target.Groups, func(group *reflection.Group) bool {
		return b.settle(target.ID, &group.Category)
	})
}

// settle filters and sorts section members, reporting whether filtering emptied the section
func (b *Bundle) settle(target reflection.ID, section *reflection.Category) bool {
	count := len(section.Children)
	section.Children = b.owned(target, section.Children)
	sortByName(b.project, section.Children)
	return count > 0 && len(section.Children) == 0
}

// owned drops section members that were not relocated into the target, such as aliases
func (b *Bundle) owned(target reflection.ID, ids []reflection.ID) []reflection.ID {
	return slices.DeleteFunc(ids, func(id reflection.ID) bool {
		node := b.project.Node(id)
		return node == nil || node.Removed || node.Parent != target
	})
}

// mergeSections appends sections missing on the target and concatenates members of same-titled ones,
// backfilling an empty description
func mergeSections[S any](target []S, source []S, section func(S) *reflection.Category) []S {
	for _, candidate := range source {
		from := section(candidate)
		var existing *reflection.Category
		for _, s := range target {
			if section(s).Title == from.Title {
				existing = section(s)
				break
			}
		}
		if existing == nil {
			target = append(target, candidate)
			continue
		}
		existing.Children = append(existing.Children, from.Children...)
		if existing.Description == "" && from.Description != "" {
			existing.Description = from.Description
		}
	}
	return target
}

// copyDescriptionTags copies description tags of non-target members; the first tag for a given name wins
func (b *Bundle) copyDescriptionTags(target *reflection.Node, tagName string) {
	for _, module := range b.modules {
		if module == target.ID {
			continue
		}
		tags := b.project.Node(module).Comment.Tags(tagName)
		if len(tags) == 0 {
			continue
		}
		if target.Comment == nil {
			target.Comment = &reflection.Comment{}
		}
		for _, tag := range tags {
			if !hasDescription(target.Comment, tagName, tag.DescriptionName()) {
				target.Comment.AddTag(tag)
			}
		}
	}
}

func hasDescription(comment *reflection.Comment, tagName, name string) bool {
	for _, tag := range comment.Tags(tagName) {
		if tag.DescriptionName() == name {
			return true
		}
	}
	return false
}

// compareNames orders names by ordinal comparison: +1 when a > b, 0 when equal, -1 otherwise
func compareNames(a, b string) int {
	if a > b {
		return 1
	} else if a == b {
		return 0
	}
	return -1
}

func sortByName(project *reflection.Project, ids []reflection.ID) {
	slices.SortStableFunc(ids, func(a, b reflection.ID) int {
		return compareNames(project.Node(a).Name, project.Node(b).Name)
	})
}
