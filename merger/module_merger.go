package merger

import (
	"fmt"

	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap"
)

// ModuleMerger merges modules sharing the same bundle key
type ModuleMerger struct {
	project *reflection.Project
	key     KeyFunc
	*options
}

// NewModuleMerger creates a merger bundling modules with key, NameKey when nil
func NewModuleMerger(project *reflection.Project, key KeyFunc, opts ...Option) *ModuleMerger {
	if key == nil {
		key = NameKey
	}
	return &ModuleMerger{project: project, key: key, options: newOptions(opts)}
}

// Bundles partitions every discovered module by key, in first-seen key order
func (m *ModuleMerger) Bundles() []*Bundle {
	var bundles []*Bundle
	byKey := make(map[string]*Bundle)
	for _, module := range reflection.FindModules(m.project, m.project.Root()) {
		key := m.key(m.project, module)
		bundle, ok := byKey[key]
		if !ok {
			bundle = NewBundle(m.project, m.logger)
			byKey[key] = bundle
			bundles = append(bundles, bundle)
		}
		bundle.Add(module)
	}
	return bundles
}

// Execute merges every bundle with more than one module
func (m *ModuleMerger) Execute() error {
	merged := 0
	for _, bundle := range m.Bundles() {
		if bundle.Len() < 2 {
			continue
		}
		if _, err := bundle.Merge(m.categorized); err != nil {
			return fmt.Errorf("failed to merge modules %v: %w", m.project.Names(bundle.Members()), err)
		}
		merged++
	}
	m.logger.Info("merged modules", zap.String("project", m.project.Name), zap.Int("bundles", merged))
	return nil
}
