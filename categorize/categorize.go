package categorize

import (
	"slices"
	"strings"

	"github.com/viant/docmerge/reflection"
)

// OtherCategory collects children without a @category tag once any sibling declares one
const OtherCategory = "Other"

// groupOrder lists group kinds in presentation order
var groupOrder = []reflection.Kind{
	reflection.KindModule,
	reflection.KindNamespace,
	reflection.KindEnum,
	reflection.KindClass,
	reflection.KindInterface,
	reflection.KindTypeAlias,
	reflection.KindTypeLiteral,
	reflection.KindFunction,
	reflection.KindVariable,
	reflection.KindReference,
	reflection.KindDocument,
}

// Run rebuilds groups and categories of every container reachable from root
func Run(project *reflection.Project, root reflection.ID) {
	node := project.Node(root)
	if !node.IsContainer() {
		return
	}
	node.Groups = groups(project, node)
	node.Categories = categories(project, node)
	for _, child := range node.Children {
		Run(project, child)
	}
}

func groups(project *reflection.Project, node *reflection.Node) []*reflection.Group {
	var result []*reflection.Group
	for _, kind := range groupOrder {
		var members []reflection.ID
		for _, child := range node.ChildrenIncludingDocuments {
			if project.Node(child).Kind.Is(kind) {
				members = append(members, child)
			}
		}
		if len(members) == 0 {
			continue
		}
		group := reflection.NewGroup(kind.Plural(), members...)
		group.Description = description(node.Comment, reflection.TagGroupDescription, group.Title)
		sortByName(project, group.Children)
		result = append(result, group)
	}
	return result
}

func categories(project *reflection.Project, node *reflection.Node) []*reflection.Category {
	byTitle := map[string]*reflection.Category{}
	var titles []string
	var other []reflection.ID
	for _, child := range node.ChildrenIncludingDocuments {
		tags := project.Node(child).Comment.Tags(reflection.TagCategory)
		if len(tags) == 0 {
			other = append(other, child)
			continue
		}
		for _, tag := range tags {
			title := strings.TrimSpace(tag.Text())
			category, ok := byTitle[title]
			if !ok {
				category = &reflection.Category{Title: title}
				byTitle[title] = category
				titles = append(titles, title)
			}
			if !slices.Contains(category.Children, child) {
				category.Children = append(category.Children, child)
			}
		}
	}
	if len(titles) == 0 {
		return nil
	}
	if len(other) > 0 {
		if _, ok := byTitle[OtherCategory]; !ok {
			byTitle[OtherCategory] = &reflection.Category{Title: OtherCategory}
			titles = append(titles, OtherCategory)
		}
		byTitle[OtherCategory].Children = append(byTitle[OtherCategory].Children, other...)
	}
	slices.SortStableFunc(titles, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == OtherCategory:
			return 1
		case b == OtherCategory:
			return -1
		}
		return strings.Compare(a, b)
	})
	result := make([]*reflection.Category, 0, len(titles))
	for _, title := range titles {
		category := byTitle[title]
		category.Description = description(node.Comment, reflection.TagCategoryDescription, title)
		sortByName(project, category.Children)
		result = append(result, category)
	}
	return result
}

// description returns the body of the first description tag naming title
func description(comment *reflection.Comment, tagName, title string) string {
	for _, tag := range comment.Tags(tagName) {
		if strings.TrimSpace(tag.DescriptionName()) == title {
			return tag.DescriptionBody()
		}
	}
	return ""
}

func sortByName(project *reflection.Project, ids []reflection.ID) {
	slices.SortStableFunc(ids, func(a, b reflection.ID) int {
		return strings.Compare(project.Node(a).Name, project.Node(b).Name)
	})
}
