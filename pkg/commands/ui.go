package commands

import (
	"context"

	"github.com/spf13/cobra"

	tuiapp "tableflip.dev/missioncontrol/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
mission ui
mission ui --clock system
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}
			defer env.Close()
			return tuiapp.Run(context.Background(), env.Service)
		},
	}

	topLevel.AddCommand(cmd)
}
