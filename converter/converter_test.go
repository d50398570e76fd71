package converter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docmerge/converter"
	"github.com/viant/docmerge/reflection"
	"github.com/viant/docmerge/repository"
)

func TestFactory_GetConverter(t *testing.T) {
	factory := converter.NewFactory(nil)
	for _, projectType := range []string{repository.TypeGo, repository.TypeJavaScript} {
		actual, err := factory.GetConverter(projectType)
		require.NoError(t, err)
		assert.NotNil(t, actual)
	}
	_, err := factory.GetConverter(repository.TypeGit)
	assert.Error(t, err)
}

func TestFactory_Convert(t *testing.T) {
	project, err := converter.NewFactory(nil).Convert(context.Background(), "javascript/testdata/workspace")
	require.NoError(t, err)
	assert.Equal(t, "acme", project.Name)
	assert.Len(t, reflection.FindModules(project, project.Root()), 5)
}
