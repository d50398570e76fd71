package merger

import (
	"fmt"

	"github.com/viant/docmerge/reflection"
)

// Merger reorganizes the modules of a project in place
type Merger interface {
	Execute() error
}

// New creates the merger for mode; it returns nil for ModeOff
func New(mode Mode, project *reflection.Project, opts ...Option) (Merger, error) {
	switch mode {
	case ModeOff:
		return nil, nil
	case ModeProject:
		return NewProjectMerger(project, opts...), nil
	case ModeModule, ModeModuleCategory:
		return NewModuleMerger(project, mode.KeyFunc(), opts...), nil
	}
	return nil, fmt.Errorf("failed to create merger: %w: %q", ErrUnknownMode, mode)
}
