package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/runner/agents"
)

func addAgents(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List the sub-agents and their skills",
		Example: `
mission agents
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := agents.Agents{Service: env.Service, JSON: output.JSON}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
