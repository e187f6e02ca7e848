package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/runner/office"
)

func addOffice(topLevel *cobra.Command) {
	oo := &options.OfficeOptions{}

	cmd := &cobra.Command{
		Use:   "office",
		Short: "Show desks, agent progress and the activity feed",
		Example: `
mission office
mission office --select 3
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := office.Office{
				Service: env.Service,
				Select:  oo.Select,
				JSON:    output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOfficeArgs(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("select", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return agentCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
