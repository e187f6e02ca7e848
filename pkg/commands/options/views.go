package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are persistent flags on the root command.
type GlobalOptions struct {
	Clock string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.Clock, "clock", "",
		`Override the configured clock, "demo" or "system".`)
}

// TaskOptions selects board columns.
type TaskOptions struct {
	Status string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Only show one column: backlog, progress or done.")
}

// CalendarOptions choose the displayed month and the agenda window.
type CalendarOptions struct {
	Month  string
	Shift  int
	Window string
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to show, example: --month="2026-02". Defaults to today's month.`)
	cmd.Flags().IntVar(&o.Shift, "shift", 0,
		"Move the displayed month by N months, negative for earlier.")
	cmd.Flags().StringVar(&o.Window, "window", "",
		`Upcoming window, example: --window="1w2d". Defaults to one week.`)
}

// MemoryOptions filter the memory list.
type MemoryOptions struct {
	Query string
	Tags  []string
}

func AddMemoryArgs(cmd *cobra.Command, o *MemoryOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Case-insensitive text to match in title or content.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Only show memories carrying any of these tags.")
}

// OfficeOptions select a desk.
type OfficeOptions struct {
	Select string
}

func AddOfficeArgs(cmd *cobra.Command, o *OfficeOptions) {
	cmd.Flags().StringVar(&o.Select, "select", "",
		"Agent id to show in the detail pane.")
}
