package plugin

import (
	"fmt"

	"github.com/viant/docmerge/merger"
	"go.uber.org/zap"
)

// Option names read from the host configuration
const (
	OptionMergeMode      = "mergeModulesMergeMode"
	OptionRenameDefaults = "mergeModulesRenameDefaults"
)

// Defaults applied when an option is not set
const (
	DefaultMergeMode      = merger.ModeProject
	DefaultRenameDefaults = true
)

// OptionReader reads plugin options from the host key-value store
type OptionReader interface {
	GetString(key string) string
	GetBool(key string) bool
	IsSet(key string) bool
}

// Options represents plugin settings
type Options struct {
	Mode           merger.Mode `yaml:"mergeModulesMergeMode"`
	RenameDefaults bool        `yaml:"mergeModulesRenameDefaults"`
}

// DefaultOptions returns options used before bootstrap
func DefaultOptions() Options {
	return Options{Mode: DefaultMergeMode, RenameDefaults: DefaultRenameDefaults}
}

// ReadOptions reads options from reader, falling back to defaults for unset keys
func ReadOptions(reader OptionReader) (Options, error) {
	ret := DefaultOptions()
	if reader == nil {
		return ret, nil
	}
	if reader.IsSet(OptionMergeMode) {
		mode, err := merger.ParseMode(reader.GetString(OptionMergeMode))
		if err != nil {
			return ret, fmt.Errorf("invalid %v: %w", OptionMergeMode, err)
		}
		ret.Mode = mode
	}
	if reader.IsSet(OptionRenameDefaults) {
		ret.RenameDefaults = reader.GetBool(OptionRenameDefaults)
	}
	return ret, nil
}

// Option configures the plugin
type Option func(p *Plugin)

// WithLogger sets plugin logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithOptions sets plugin options, bypassing Bootstrap
func WithOptions(options Options) Option {
	return func(p *Plugin) {
		p.options = options
	}
}
