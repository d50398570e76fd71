package converter

import (
	"context"
	"fmt"

	"github.com/viant/docmerge/converter/golang"
	"github.com/viant/docmerge/converter/javascript"
	"github.com/viant/docmerge/reflection"
	"github.com/viant/docmerge/repository"
)

// Converter converts a project's sources into a reflection tree
type Converter interface {
	// Convert converts the project containing location
	Convert(ctx context.Context, location string) (*reflection.Project, error)
}

// Factory creates converters based on project type
type Factory struct {
	config   *reflection.Config
	detector *repository.Detector
}

// NewFactory creates a new converter factory with the given config
func NewFactory(config *reflection.Config) *Factory {
	if config == nil {
		config = &reflection.Config{SkipTests: true}
	}
	return &Factory{config: config, detector: repository.New()}
}

// GetConverter returns a converter for the project type
func (f *Factory) GetConverter(projectType string) (Converter, error) {
	switch projectType {
	case repository.TypeGo:
		return golang.NewConverter(f.config), nil
	case repository.TypeJavaScript:
		return javascript.NewConverter(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported project type: %s", projectType)
	}
}

// Convert detects the project containing location and converts it with the matching converter
func (f *Factory) Convert(ctx context.Context, location string) (*reflection.Project, error) {
	info, err := f.detector.DetectProject(ctx, location)
	if err != nil {
		return nil, err
	}
	converter, err := f.GetConverter(info.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", location, err)
	}
	return converter.Convert(ctx, location)
}
