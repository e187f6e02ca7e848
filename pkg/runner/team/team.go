// Package team prints the founders and the agents.
package team

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/printers"
	roster "tableflip.dev/missioncontrol/pkg/team"
)

type Team struct {
	Service *dashboard.Service
	JSON    bool
	Out     io.Writer
}

func (n *Team) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list team, no service")
	}
	founders, agents, err := n.Service.Team(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return options.PrintJSON(n.Out, struct {
			Founders []roster.Member `json:"founders"`
			Agents   []roster.Member `json:"agents"`
		}{Founders: founders, Agents: agents})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Team(founders, agents)
	return nil
}
