package merger

import (
	"fmt"

	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap"
)

// ProjectMerger moves the content of every module, nested ones included, into the project root
type ProjectMerger struct {
	project *reflection.Project
	*options
}

// NewProjectMerger creates a project merger
func NewProjectMerger(project *reflection.Project, opts ...Option) *ProjectMerger {
	return &ProjectMerger{project: project, options: newOptions(opts)}
}

// Execute merges all modules into the project root
func (m *ProjectMerger) Execute() error {
	modules := reflection.FindModules(m.project, m.project.Root())
	if len(modules) == 0 {
		return nil
	}
	bundle := NewBundle(m.project, m.logger)
	for _, module := range modules {
		bundle.Add(module)
	}
	if _, err := bundle.Merge(m.categorized, m.project.Root()); err != nil {
		return fmt.Errorf("failed to merge modules into project %q: %w", m.project.Name, err)
	}
	m.logger.Info("merged modules into project", zap.String("project", m.project.Name), zap.Int("modules", len(modules)))
	return nil
}
