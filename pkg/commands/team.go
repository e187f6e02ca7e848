package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/runner/team"
)

func addTeam(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show founders and agents",
		Example: `
mission team
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := team.Team{Service: env.Service, JSON: output.JSON}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
