package commands

import (
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/app"
	"tableflip.dev/questlog/pkg/commands/options"
	"tableflip.dev/questlog/pkg/config"
	"tableflip.dev/questlog/pkg/logging"
	"tableflip.dev/questlog/pkg/source"
)

// environment is resolved once per invocation, before any command runs.
type environment struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
}

func (e *environment) load() error {
	cfg, err := config.Load(e.v)
	if err != nil {
		return err
	}
	options.ApplyColor(cfg.Color, os.Stdout)
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = logger
	logger.Debug("config resolved",
		zap.String("document", cfg.Document),
		zap.Int("year", cfg.Year),
		zap.String("config_file", e.v.ConfigFileUsed()))
	return nil
}

func (e *environment) session(logger *zap.Logger) *app.Session {
	return &app.Session{
		Renderer: app.Renderer{TargetYear: e.cfg.Year},
		Loader:   &source.Loader{Logger: logger},
		Logger:   logger,
	}
}

func (e *environment) sync() {
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

func New() *cobra.Command {
	env := &environment{v: config.New()}

	cmd := &cobra.Command{
		Use:   "questlog",
		Short: base.Wrap80("Browse a quest log: character stats, a month selector and the timeline of completed days."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			env.sync()
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddDocumentArgs(cmd, env.v)

	addCommands(cmd, env)
	return cmd
}

func addCommands(topLevel *cobra.Command, env *environment) {
	addShow(topLevel, env)
	addSections(topLevel, env)
	addUI(topLevel, env)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
