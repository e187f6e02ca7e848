package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/runner/memory"
)

func addMemory(topLevel *cobra.Command) {
	mo := &options.MemoryOptions{}

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Search memory notes",
		Example: `
mission memory
mission memory --query condor
mission memory --tag Strategy --tag Alert
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := memory.List{
				Service: env.Service,
				Query:   mo.Query,
				Tags:    mo.Tags,
				JSON:    output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMemoryArgs(cmd, mo)
	_ = cmd.RegisterFlagCompletionFunc("tag", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)
	addMemoryShow(cmd)
	topLevel.AddCommand(cmd)
}

func addMemoryShow(parent *cobra.Command) {
	style := "auto"

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render one memory note as markdown",
		Example: `
mission memory show 1
mission memory show 3 --style light
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return memoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := memory.Show{
				Service: env.Service,
				ID:      args[0],
				Style:   style,
				JSON:    output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&style, "style", style,
		`Markdown style: "auto", "dark", "light", "notty" or "ascii".`)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
