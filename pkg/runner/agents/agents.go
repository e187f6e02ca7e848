// Package agents prints the sub-agent roster.
package agents

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/printers"
)

type Agents struct {
	Service *dashboard.Service
	JSON    bool
	Out     io.Writer
}

func (n *Agents) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list sub-agents, no service")
	}
	subs, err := n.Service.SubAgents(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return options.PrintJSON(n.Out, struct {
			Active    int              `json:"active"`
			SubAgents []agent.SubAgent `json:"subAgents"`
		}{Active: agent.ActiveCount(subs), SubAgents: subs})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.SubAgents(subs)
	return nil
}
