package reflection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docmerge/reflection"
)

func TestProject_Move(t *testing.T) {
	project := reflection.NewProject("test")
	root := project.Root()
	a := project.MustNode(reflection.KindModule, "a", root)
	b := project.MustNode(reflection.KindModule, "b", root)
	classA := project.MustNode(reflection.KindClass, "A", a)
	docA := project.MustNode(reflection.KindDocument, "readme", a)
	classB := project.MustNode(reflection.KindClass, "B", b)
	project.Node(a).Groups = []*reflection.Group{reflection.NewGroup(reflection.ModulesGroupTitle, classA)}

	require.NoError(t, project.Move(classA, a, b))
	require.NoError(t, project.Move(docA, a, b))

	source := project.Node(a)
	target := project.Node(b)
	assert.Empty(t, source.Children)
	assert.Empty(t, source.Documents)
	assert.Empty(t, source.ChildrenIncludingDocuments)
	assert.Empty(t, source.Group(reflection.ModulesGroupTitle).Children)
	assert.EqualValues(t, []reflection.ID{classB, classA}, target.Children)
	assert.EqualValues(t, []reflection.ID{docA}, target.Documents)
	assert.EqualValues(t, []reflection.ID{classB, classA, docA}, target.ChildrenIncludingDocuments)
	assert.Equal(t, b, project.Node(classA).Parent)
	assert.Equal(t, b, project.Node(docA).Parent)
}

func TestProject_Move_Errors(t *testing.T) {
	tests := []struct {
		description string
		setup       func(p *reflection.Project) (id, from, to reflection.ID)
		wantIs      error
	}{
		{
			description: "source is a class",
			setup: func(p *reflection.Project) (reflection.ID, reflection.ID, reflection.ID) {
				mod := p.MustNode(reflection.KindModule, "m", p.Root())
				class := p.MustNode(reflection.KindClass, "C", mod)
				return class, class, mod
			},
			wantIs: reflection.ErrNotContainer,
		},
		{
			description: "source was removed",
			setup: func(p *reflection.Project) (reflection.ID, reflection.ID, reflection.ID) {
				mod := p.MustNode(reflection.KindModule, "m", p.Root())
				other := p.MustNode(reflection.KindModule, "o", p.Root())
				class := p.MustNode(reflection.KindClass, "C", mod)
				p.Remove(mod)
				return class, mod, other
			},
			wantIs: reflection.ErrNotContainer,
		},
		{
			description: "detached source",
			setup: func(p *reflection.Project) (reflection.ID, reflection.ID, reflection.ID) {
				mod := p.MustNode(reflection.KindModule, "m", p.Root())
				return mod, reflection.NoID, p.Root()
			},
			wantIs: reflection.ErrNotContainer,
		},
		{
			description: "detached node",
			setup: func(p *reflection.Project) (reflection.ID, reflection.ID, reflection.ID) {
				a := p.MustNode(reflection.KindModule, "a", p.Root())
				b := p.MustNode(reflection.KindModule, "b", p.Root())
				x := p.MustNode(reflection.KindModule, "x", a)
				if err := p.Detach(x); err != nil {
					panic(err)
				}
				return x, a, b
			},
			wantIs: reflection.ErrNotContainer,
		},
		{
			description: "source does not own the node",
			setup: func(p *reflection.Project) (reflection.ID, reflection.ID, reflection.ID) {
				a := p.MustNode(reflection.KindModule, "a", p.Root())
				b := p.MustNode(reflection.KindModule, "b", p.Root())
				c := p.MustNode(reflection.KindModule, "c", p.Root())
				x := p.MustNode(reflection.KindClass, "X", a)
				return x, b, c
			},
			wantIs: reflection.ErrNotOwned,
		},
		{
			description: "unknown node",
			setup: func(p *reflection.Project) (reflection.ID, reflection.ID, reflection.ID) {
				return 42, p.Root(), p.Root()
			},
			wantIs: reflection.ErrUnknownNode,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			project := reflection.NewProject("test")
			id, from, to := tc.setup(project)
			err := project.Move(id, from, to)
			assert.ErrorIs(t, err, tc.wantIs)
		})
	}
}

func TestProject_Move_IntoOwnSubtree(t *testing.T) {
	project := reflection.NewProject("test")
	outer := project.MustNode(reflection.KindModule, "outer", project.Root())
	inner := project.MustNode(reflection.KindModule, "inner", outer)
	assert.Error(t, project.Move(outer, project.Root(), inner))
	assert.Error(t, project.Move(outer, project.Root(), outer))
}

func TestProject_Detach(t *testing.T) {
	project := reflection.NewProject("test")
	root := project.Root()
	a := project.MustNode(reflection.KindModule, "a", root)
	alias := project.MustNode(reflection.KindReference, "alias", a)
	project.RootNode().Groups = []*reflection.Group{reflection.NewGroup(reflection.ModulesGroupTitle, a)}
	project.RootNode().Categories = []*reflection.Category{{Title: "Other", Children: []reflection.ID{a}}}

	require.NoError(t, project.Detach(a))

	rootNode := project.RootNode()
	assert.Empty(t, rootNode.Children)
	assert.Empty(t, rootNode.ChildrenIncludingDocuments)
	assert.Nil(t, rootNode.Group(reflection.ModulesGroupTitle))
	assert.Nil(t, rootNode.Category("Other"))
	assert.False(t, project.Reachable(a))
	assert.False(t, project.Reachable(alias))
	assert.True(t, project.Node(alias).Removed)

	assert.ErrorIs(t, project.Detach(root), reflection.ErrNotContainer)
}

func TestProject_NewNode(t *testing.T) {
	project := reflection.NewProject("test")
	mod := project.MustNode(reflection.KindModule, "m", project.Root())
	class := project.MustNode(reflection.KindClass, "C", mod)

	_, err := project.NewNode(reflection.KindFunction, "f", class)
	assert.ErrorIs(t, err, reflection.ErrNotContainer)
	_, err = project.NewNode(reflection.KindFunction, "f", 99)
	assert.ErrorIs(t, err, reflection.ErrUnknownNode)

	assert.True(t, project.Reachable(class))
	assert.Equal(t, class, project.Find("C", reflection.KindClassOrInterface))
	assert.Equal(t, reflection.NoID, project.Find("C", reflection.KindFunction))
}

func TestProject_Detach_KeepsPopulatedSections(t *testing.T) {
	project := reflection.NewProject("test")
	root := project.Root()
	a := project.MustNode(reflection.KindModule, "a", root)
	b := project.MustNode(reflection.KindModule, "b", root)
	rootNode := project.RootNode()
	rootNode.Groups = []*reflection.Group{reflection.NewGroup(reflection.ModulesGroupTitle, a, b)}
	rootNode.Categories = []*reflection.Category{
		{Title: "Core", Children: []reflection.ID{a}},
		{Title: "Empty"},
	}

	require.NoError(t, project.Detach(a))

	assert.EqualValues(t, []reflection.ID{b}, rootNode.Group(reflection.ModulesGroupTitle).Children)
	assert.Nil(t, rootNode.Category("Core"))
	require.NotNil(t, rootNode.Category("Empty"))
}

func TestProject_Move_RejectedLeavesTreeIntact(t *testing.T) {
	project := reflection.NewProject("test")
	a := project.MustNode(reflection.KindModule, "a", project.Root())
	b := project.MustNode(reflection.KindModule, "b", project.Root())
	c := project.MustNode(reflection.KindModule, "c", project.Root())
	x := project.MustNode(reflection.KindClass, "X", a)

	require.ErrorIs(t, project.Move(x, b, c), reflection.ErrNotOwned)
	assert.EqualValues(t, []reflection.ID{x}, project.Node(a).Children)
	assert.Empty(t, project.Node(c).Children)
	assert.Equal(t, a, project.Node(x).Parent)

	require.NoError(t, project.Detach(x))
	require.ErrorIs(t, project.Move(x, a, c), reflection.ErrNotContainer)
	assert.Empty(t, project.Node(c).Children)
	assert.Equal(t, reflection.NoID, project.Node(x).Parent)
}
