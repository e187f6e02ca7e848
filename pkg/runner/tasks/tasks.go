// Package tasks prints the kanban board.
package tasks

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/printers"
	"tableflip.dev/missioncontrol/pkg/task"
)

type Tasks struct {
	Service *dashboard.Service
	// Status limits output to one column when set.
	Status string
	JSON   bool
	Out    io.Writer
}

type column struct {
	Status task.Status `json:"status"`
	Title  string      `json:"title"`
	Tasks  []task.Task `json:"tasks"`
}

func (n *Tasks) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tasks, no service")
	}
	board, err := n.Service.TaskBoard(ctx)
	if err != nil {
		return err
	}

	statuses := task.Statuses()
	if n.Status != "" {
		s, err := task.ParseStatus(n.Status)
		if err != nil {
			return err
		}
		statuses = []task.Status{s}
	}

	if n.JSON {
		cols := make([]column, 0, len(statuses))
		for _, s := range statuses {
			tasks := board.Column(s)
			if tasks == nil {
				tasks = []task.Task{}
			}
			cols = append(cols, column{Status: s, Title: s.Title(), Tasks: tasks})
		}
		return options.PrintJSON(n.Out, cols)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Board(board, statuses...)
	return nil
}
