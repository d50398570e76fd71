package merger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docmerge/merger"
	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap/zaptest"
)

func TestProjectMerger_Execute(t *testing.T) {
	project := reflection.NewProject("workspace")
	root := project.Root()
	pkgA := project.MustNode(reflection.KindModule, "pkg-a", root)
	project.Node(pkgA).Comment = reflection.NewComment("", reflection.NewTag(reflection.TagCategoryDescription, "Core\ncore types"))
	util := project.MustNode(reflection.KindModule, "pkg-a/util", pkgA)
	project.MustNode(reflection.KindFunction, "helper", util)
	project.MustNode(reflection.KindClass, "A", pkgA)
	project.MustNode(reflection.KindReference, "ReA", pkgA)
	project.MustNode(reflection.KindFunction, "main", root)
	pkgB := project.MustNode(reflection.KindModule, "pkg-b", root)
	ns := project.MustNode(reflection.KindNamespace, "ns", pkgB)
	project.MustNode(reflection.KindModule, "hidden", ns)
	project.MustNode(reflection.KindDocument, "readme", pkgB)

	m := merger.NewProjectMerger(project, merger.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, m.Execute())

	rootNode := project.RootNode()
	assert.EqualValues(t, []string{"main", "A", "helper", "ns"}, project.Names(rootNode.Children))
	assert.EqualValues(t, []string{"readme"}, project.Names(rootNode.Documents))
	assert.EqualValues(t, []string{"main", "A", "helper", "ns", "readme"}, project.Names(rootNode.ChildrenIncludingDocuments))
	for _, id := range []reflection.ID{pkgA, util, pkgB} {
		assert.False(t, project.Reachable(id))
	}
	assert.True(t, project.Reachable(project.Find("hidden", reflection.KindModule)))
	assert.Equal(t, reflection.NoID, project.Find("ReA", reflection.KindReference))

	tags := rootNode.Comment.Tags(reflection.TagCategoryDescription)
	require.Len(t, tags, 1)
	assert.Equal(t, "Core", tags[0].DescriptionName())
}

func TestProjectMerger_NoModules(t *testing.T) {
	project := reflection.NewProject("empty")
	project.MustNode(reflection.KindFunction, "main", project.Root())
	before, err := reflection.Fingerprint(project)
	require.NoError(t, err)

	require.NoError(t, merger.NewProjectMerger(project).Execute())
	after, err := reflection.Fingerprint(project)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Nil(t, project.RootNode().Comment)
}

func TestProjectMerger_Categorized(t *testing.T) {
	project := reflection.NewProject("workspace")
	a := project.MustNode(reflection.KindModule, "a", project.Root())
	x := project.MustNode(reflection.KindClass, "X", a)
	project.Node(a).Groups = []*reflection.Group{reflection.NewGroup("Classes", x)}
	project.RootNode().Groups = []*reflection.Group{reflection.NewGroup(reflection.ModulesGroupTitle, a)}

	require.NoError(t, merger.NewProjectMerger(project, merger.WithCategorized(true)).Execute())
	root := project.RootNode()
	require.Len(t, root.Groups, 1)
	assert.Nil(t, root.Group(reflection.ModulesGroupTitle))
	assert.EqualValues(t, []string{"X"}, project.Names(root.Group("Classes").Children))
}
