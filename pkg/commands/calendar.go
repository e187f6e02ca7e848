package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month of milestones and what is coming up",
		Example: `
mission calendar
mission calendar --month 2026-03
mission calendar --shift -1 --window 2w
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()
			s := calendar.Calendar{
				Service: env.Service,
				Month:   co.Month,
				Shift:   co.Shift,
				Window:  co.Window,
				JSON:    output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
