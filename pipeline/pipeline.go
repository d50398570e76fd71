package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/docmerge/categorize"
	"github.com/viant/docmerge/config"
	"github.com/viant/docmerge/converter"
	"github.com/viant/docmerge/plugin"
	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap"
)

// Pipeline converts a project, merges its modules and categorizes the result
type Pipeline struct {
	config *config.Config
	store  plugin.OptionReader
	logger *zap.Logger
	fs     afs.Service
}

// New creates a pipeline; store carries the plugin options
func New(cfg *config.Config, store plugin.OptionReader, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{config: cfg, store: store, logger: logger, fs: afs.New()}
}

// Run converts the project containing location and runs the plugin stages in host order
func (p *Pipeline) Run(ctx context.Context, location string) (*reflection.Project, error) {
	plug := plugin.New(plugin.WithLogger(p.logger))
	if err := plug.Bootstrap(p.store); err != nil {
		return nil, err
	}
	factory := converter.NewFactory(&reflection.Config{
		SkipTests: p.config.SkipTests,
		OnDeclaration: func(project *reflection.Project, id reflection.ID) {
			plug.DeclarationCreated(project, id)
		},
	})
	project, err := factory.Convert(ctx, location)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("converted project", zap.String("project", project.Name), zap.Int("nodes", project.Len()))

	stage := plug.ConvergenceStage(p.config.Strategy())
	if stage.Categorized() {
		categorize.Run(project, project.Root())
		if err = plug.ConversionComplete(project, true); err != nil {
			return nil, fmt.Errorf("failed to merge modules at %v: %w", stage, err)
		}
		return project, nil
	}
	if err = plug.ConversionComplete(project, false); err != nil {
		return nil, fmt.Errorf("failed to merge modules at %v: %w", stage, err)
	}
	categorize.Run(project, project.Root())
	return project, nil
}

// Write encodes the project tree as YAML to the configured output, returning the encoded tree
func (p *Pipeline) Write(ctx context.Context, project *reflection.Project) ([]byte, error) {
	data, err := reflection.NewSnapshot(project).YAML()
	if err != nil {
		return nil, fmt.Errorf("failed to encode project %s: %w", project.Name, err)
	}
	if p.config.Output == "" {
		return data, nil
	}
	if err = p.fs.Upload(ctx, p.config.Output, 0o644, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", p.config.Output, err)
	}
	fields := []zap.Field{zap.String("output", p.config.Output)}
	if fingerprint, err := reflection.Fingerprint(project); err != nil {
		p.logger.Debug("failed to fingerprint project", zap.String("project", project.Name), zap.Error(err))
	} else {
		fields = append(fields, zap.Uint64("fingerprint", fingerprint))
	}
	p.logger.Info("wrote project", fields...)
	return data, nil
}
