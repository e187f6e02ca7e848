package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/runner/tasks"
)

func addTasks(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the task board",
		Example: `
mission tasks
mission tasks --status progress
mission tasks --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := tasks.Tasks{
				Service: env.Service,
				Status:  to.Status,
				JSON:    output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("status", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"backlog", "progress", "done"}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
