package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/logging"
	"tableflip.dev/missioncontrol/pkg/store"
)

var (
	output = &options.OutputOptions{}
	global = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mission",
		Short: options.Wrap80("Mission control for a small trading operation: tasks, milestones, memory notes and the agent roster, in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddGlobalArgs(cmd, global)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addTasks(topLevel)
	addCalendar(topLevel)
	addMemory(topLevel)
	addAgents(topLevel)
	addTeam(topLevel)
	addOffice(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// environment is what every command needs to build its runner.
type environment struct {
	Config  store.Config
	Service *dashboard.Service
	Logger  *zap.Logger
	close   func()
}

func (e *environment) Close() {
	if e.close != nil {
		e.close()
	}
}

func load() (*environment, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	clock := cfg.Clock()
	if global.Clock != "" {
		if clock, err = store.ParseClock(global.Clock); err != nil {
			return nil, err
		}
	}
	logger, closer, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	svc := dashboard.New(store.Fixed(store.Now(clock)), clock, logger)
	logger.Debug("environment loaded", zap.String("clock", string(clock)), zap.String("vault_root", cfg.VaultRoot()))
	return &environment{Config: cfg, Service: svc, Logger: logger, close: closer}, nil
}
