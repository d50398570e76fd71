package plugin_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docmerge/merger"
	"github.com/viant/docmerge/plugin"
	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap/zaptest"
)

func TestReadOptions(t *testing.T) {
	tests := []struct {
		description string
		values      map[string]interface{}
		expect      plugin.Options
		hasErr      bool
	}{
		{
			description: "defaults",
			expect:      plugin.Options{Mode: merger.ModeProject, RenameDefaults: true},
		},
		{
			description: "module mode without renaming",
			values: map[string]interface{}{
				plugin.OptionMergeMode:      "module",
				plugin.OptionRenameDefaults: false,
			},
			expect: plugin.Options{Mode: merger.ModeModule, RenameDefaults: false},
		},
		{
			description: "string bool",
			values:      map[string]interface{}{plugin.OptionRenameDefaults: "false"},
			expect:      plugin.Options{Mode: merger.ModeProject, RenameDefaults: false},
		},
		{
			description: "invalid mode",
			values:      map[string]interface{}{plugin.OptionMergeMode: "everything"},
			hasErr:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			v := viper.New()
			for k, val := range tc.values {
				v.Set(k, val)
			}
			actual, err := plugin.ReadOptions(v)
			if tc.hasErr {
				assert.ErrorIs(t, err, merger.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestPlugin_ConvergenceStage(t *testing.T) {
	p := plugin.New()
	tests := []struct {
		strategy    plugin.Strategy
		expect      plugin.Stage
		categorized bool
	}{
		{strategy: plugin.StrategyResolve, expect: plugin.StageResolveBegin},
		{strategy: plugin.StrategyExpand, expect: plugin.StageResolveBegin},
		{strategy: plugin.StrategyPackages, expect: plugin.StageProjectRevive, categorized: true},
		{strategy: plugin.StrategyMerge, expect: plugin.StageProjectRevive, categorized: true},
	}
	for _, tc := range tests {
		t.Run(string(tc.strategy), func(t *testing.T) {
			stage := p.ConvergenceStage(tc.strategy)
			assert.Equal(t, tc.expect, stage)
			assert.Equal(t, tc.categorized, stage.Categorized())
		})
	}
}

func TestPlugin_ConversionComplete(t *testing.T) {
	build := func() *reflection.Project {
		project := reflection.NewProject("lib")
		for _, name := range []string{"A", "B"} {
			module := project.MustNode(reflection.KindModule, "shared", project.Root())
			project.MustNode(reflection.KindClass, name, module)
		}
		return project
	}

	tests := []struct {
		description string
		mode        string
		expectRoot  []string
	}{
		{description: "off", mode: "off", expectRoot: []string{"shared", "shared"}},
		{description: "project", mode: "project", expectRoot: []string{"A", "B"}},
		{description: "module", mode: "module", expectRoot: []string{"shared"}},
		{description: "module-category", mode: "module-category", expectRoot: []string{"shared"}},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			v := viper.New()
			v.Set(plugin.OptionMergeMode, tc.mode)
			p := plugin.New(plugin.WithLogger(zaptest.NewLogger(t)))
			require.NoError(t, p.Bootstrap(v))
			assert.Equal(t, tc.mode != "off", p.Enabled())

			project := build()
			require.NoError(t, p.ConversionComplete(project, false))
			assert.EqualValues(t, tc.expectRoot, project.Names(project.RootNode().Children))
		})
	}
}

func TestPlugin_Bootstrap_Error(t *testing.T) {
	v := viper.New()
	v.Set(plugin.OptionMergeMode, "files")
	p := plugin.New()
	assert.Error(t, p.Bootstrap(v))
	assert.Equal(t, plugin.DefaultOptions(), p.Options())
}
