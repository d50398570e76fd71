package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/viant/docmerge/merger"
	"github.com/viant/docmerge/plugin"
)

const (
	// FileName is the config file name looked up in the working directory, without extension
	FileName = "docmerge"
	// EnvPrefix prefixes environment overrides, e.g. DOCMERGE_MERGEMODULESMERGEMODE
	EnvPrefix = "DOCMERGE"
)

// Config keys besides plugin options
const (
	KeyEntryPointStrategy = "entryPointStrategy"
	KeyOutput             = "output"
	KeyVerbose            = "verbose"
	KeySkipTests          = "skipTests"
)

// Config represents docmerge settings
type Config struct {
	MergeMode          string `mapstructure:"mergeModulesMergeMode" yaml:"mergeModulesMergeMode"`
	RenameDefaults     bool   `mapstructure:"mergeModulesRenameDefaults" yaml:"mergeModulesRenameDefaults"`
	EntryPointStrategy string `mapstructure:"entryPointStrategy" yaml:"entryPointStrategy"`
	Output             string `mapstructure:"output" yaml:"output,omitempty"`
	Verbose            bool   `mapstructure:"verbose" yaml:"verbose"`
	SkipTests          bool   `mapstructure:"skipTests" yaml:"skipTests"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	ConfigFile string // explicit config file; must exist when set
	Dir        string // directory searched for docmerge.yaml when ConfigFile is empty
	// Overrides take precedence over the file and the environment, e.g. values of command line flags
	Overrides map[string]string
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	return &Config{
		MergeMode:          string(plugin.DefaultMergeMode),
		RenameDefaults:     plugin.DefaultRenameDefaults,
		EntryPointStrategy: string(plugin.StrategyResolve),
		SkipTests:          true,
	}
}

// Load reads defaults, the config file, environment and explicit overrides, then validates the result. The returned store is handed to
// the plugin bootstrap and to command flag bindings.
func Load(opts LoadOptions) (*Config, *viper.Viper, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault(plugin.OptionMergeMode, defaults.MergeMode)
	v.SetDefault(plugin.OptionRenameDefaults, defaults.RenameDefaults)
	v.SetDefault(KeyEntryPointStrategy, defaults.EntryPointStrategy)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyVerbose, defaults.Verbose)
	v.SetDefault(KeySkipTests, defaults.SkipTests)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}
	for key, value := range opts.Overrides {
		v.Set(key, value)
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if _, err := merger.ParseMode(c.MergeMode); err != nil {
		return fmt.Errorf("invalid %v: %w", plugin.OptionMergeMode, err)
	}
	if !slices.Contains(plugin.Strategies, plugin.Strategy(strings.TrimSpace(c.EntryPointStrategy))) {
		return fmt.Errorf("invalid %v: %q, expected one of %v", KeyEntryPointStrategy, c.EntryPointStrategy, plugin.Strategies)
	}
	return nil
}

// Strategy returns the entry point strategy
func (c *Config) Strategy() plugin.Strategy {
	return plugin.Strategy(strings.TrimSpace(c.EntryPointStrategy))
}
