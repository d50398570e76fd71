package merger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docmerge/merger"
	"github.com/viant/docmerge/reflection"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input  string
		expect merger.Mode
		hasErr bool
	}{
		{input: "off", expect: merger.ModeOff},
		{input: "project", expect: merger.ModeProject},
		{input: "module", expect: merger.ModeModule},
		{input: " module-category ", expect: merger.ModeModuleCategory},
		{input: "Module", hasErr: true},
		{input: "", hasErr: true},
		{input: "package", hasErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := merger.ParseMode(tc.input)
			if tc.hasErr {
				assert.ErrorIs(t, err, merger.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, mode)
		})
	}
}

func TestNameCategoryKey(t *testing.T) {
	tests := []struct {
		description string
		tags        []*reflection.Tag
		expect      string
	}{
		{
			description: "no categories",
			expect:      "core_[[[CATEGORIES:]]]_",
		},
		{
			description: "sorted and deduplicated",
			tags: []*reflection.Tag{
				reflection.NewTag(reflection.TagCategory, "b"),
				reflection.NewTag(reflection.TagCategory, "a"),
				reflection.NewTag(reflection.TagCategory, "b"),
				reflection.NewTag(reflection.TagGroupDescription, "ignored"),
			},
			expect: "core_[[[CATEGORIES:]]]_a_[[[|]]]_b",
		},
		{
			description: "multi part tag",
			tags: []*reflection.Tag{
				{Name: reflection.TagCategory, Content: []reflection.Part{reflection.TextPart("x"), reflection.TextPart("y")}},
			},
			expect: "core_[[[CATEGORIES:]]]_x,y",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			project := reflection.NewProject("test")
			module := project.MustNode(reflection.KindModule, "core", project.Root())
			if len(tc.tags) > 0 {
				project.Node(module).Comment = reflection.NewComment("", tc.tags...)
			}
			assert.Equal(t, tc.expect, merger.NameCategoryKey(project, module))
			assert.Equal(t, "core", merger.NameKey(project, module))
		})
	}
}

func TestNew(t *testing.T) {
	project := reflection.NewProject("test")

	m, err := merger.New(merger.ModeOff, project)
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = merger.New(merger.ModeProject, project)
	require.NoError(t, err)
	assert.IsType(t, &merger.ProjectMerger{}, m)

	for _, mode := range []merger.Mode{merger.ModeModule, merger.ModeModuleCategory} {
		m, err = merger.New(mode, project)
		require.NoError(t, err)
		assert.IsType(t, &merger.ModuleMerger{}, m)
	}

	_, err = merger.New("bogus", project)
	assert.ErrorIs(t, err, merger.ErrUnknownMode)
}
