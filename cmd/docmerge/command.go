package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/docmerge/config"
	"github.com/viant/docmerge/converter"
	"github.com/viant/docmerge/pipeline"
	"github.com/viant/docmerge/plugin"
	"github.com/viant/docmerge/reflection"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds state shared by commands
type app struct {
	configFile string
	cfg        *config.Config
	store      *viper.Viper
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "docmerge",
		Short:         "Merge documentation modules of a project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default: ./docmerge.yaml)")
	flags.BoolP(config.KeyVerbose, "v", false, "enable verbose logging")
	flags.String("mode", string(plugin.DefaultMergeMode), "merge mode: off, project, module or module-category")
	flags.Bool("rename-defaults", plugin.DefaultRenameDefaults, "rename default exports to their original name")
	flags.String("strategy", string(plugin.StrategyResolve), "entry point strategy: resolve, expand, packages or merge")

	root.AddCommand(a.mergeCommand(), a.modulesCommand())
	return root
}

// setup loads configuration, applies flags set on the command line and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	bindings := map[string]string{
		config.KeyVerbose: config.KeyVerbose,
		"mode":            plugin.OptionMergeMode,
		"rename-defaults": plugin.OptionRenameDefaults,
		"strategy":        config.KeyEntryPointStrategy,
		config.KeyOutput:  config.KeyOutput,
	}
	overrides := map[string]string{}
	for flag, key := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	cfg, store, err := config.Load(config.LoadOptions{ConfigFile: a.configFile, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg, a.store = cfg, store

	logConfig := zap.NewProductionConfig()
	if cfg.Verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if a.logger, err = logConfig.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) mergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <path>",
		Short: "Convert a project, merge its modules and print the resulting tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pipeline.New(a.cfg, a.store, a.logger)
			project, err := p.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := p.Write(cmd.Context(), project)
			if err != nil {
				return err
			}
			if a.cfg.Output == "" {
				_, err = cmd.OutOrStdout().Write(data)
			}
			return err
		},
	}
	cmd.Flags().StringP(config.KeyOutput, "o", "", "output file or URL (default: stdout)")
	return cmd
}

func (a *app) modulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules <path>",
		Short: "List modules discovered in a project before merging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := converter.NewFactory(&reflection.Config{SkipTests: a.cfg.SkipTests})
			project, err := factory.Convert(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, module := range reflection.FindModules(project, project.Root()) {
				node := project.Node(module)
				depth := 0
				for parent := node.Parent; parent != project.Root() && parent != reflection.NoID; parent = project.Node(parent).Parent {
					depth++
				}
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%*s%s\n", depth*2, "", node.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
