package plugin

import (
	"fmt"

	"github.com/viant/docmerge/merger"
	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap"
)

// Strategy is the host entry point strategy
type Strategy string

const (
	StrategyResolve  Strategy = "resolve"
	StrategyExpand   Strategy = "expand"
	StrategyPackages Strategy = "packages"
	StrategyMerge    Strategy = "merge"
)

// Strategies lists recognized entry point strategies
var Strategies = []Strategy{StrategyResolve, StrategyExpand, StrategyPackages, StrategyMerge}

// Stage identifies the host event after which modules are merged
type Stage int

const (
	// StageResolveBegin runs once per converter, before categorization
	StageResolveBegin Stage = iota
	// StageProjectRevive runs after the host merged per-package projects, which are already categorized
	StageProjectRevive
)

// Categorized returns true if categories and groups exist when the stage fires
func (s Stage) Categorized() bool {
	return s == StageProjectRevive
}

// String returns stage name
func (s Stage) String() string {
	if s == StageProjectRevive {
		return "projectRevive"
	}
	return "resolveBegin"
}

// Plugin merges modules of a converted project
type Plugin struct {
	options Options
	logger  *zap.Logger
}

// Options returns current options
func (p *Plugin) Options() Options {
	return p.options
}

// Enabled returns true unless the merge mode is off
func (p *Plugin) Enabled() bool {
	return p.options.Mode != merger.ModeOff
}

// Bootstrap reads options once the host loaded its configuration
func (p *Plugin) Bootstrap(reader OptionReader) error {
	options, err := ReadOptions(reader)
	if err != nil {
		return fmt.Errorf("failed to bootstrap plugin: %w", err)
	}
	p.options = options
	p.logger.Debug("plugin options", zap.String("mode", string(options.Mode)), zap.Bool("renameDefaults", options.RenameDefaults))
	return nil
}

// ConvergenceStage returns the stage at which modules are merged for the entry point strategy.
// Strategies running one converter per package merge once the host combined their projects.
func (p *Plugin) ConvergenceStage(strategy Strategy) Stage {
	switch strategy {
	case StrategyMerge, StrategyPackages:
		return StageProjectRevive
	}
	return StageResolveBegin
}

// DeclarationCreated restores the original name of a default export
func (p *Plugin) DeclarationCreated(ctx ConversionContext, id reflection.ID) {
	if !p.Enabled() || !p.options.RenameDefaults {
		return
	}
	node := ctx.Node(id)
	if node == nil || node.Name != defaultName || !node.Kind.Is(renameKinds) {
		return
	}
	if name, ok := TryGetOriginalName(ctx, id); ok {
		p.logger.Debug("renamed default export", zap.String("name", name), zap.Stringer("kind", node.Kind))
		node.Name = name
	}
}

// ConversionComplete merges modules according to the configured mode
func (p *Plugin) ConversionComplete(project *reflection.Project, categorized bool) error {
	if !p.Enabled() {
		return nil
	}
	m, err := merger.New(p.options.Mode, project, merger.WithLogger(p.logger), merger.WithCategorized(categorized))
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	return m.Execute()
}

// New creates a plugin with default options
func New(opts ...Option) *Plugin {
	ret := &Plugin{options: DefaultOptions(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
