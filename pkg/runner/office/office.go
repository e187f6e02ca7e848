// Package office prints the desk board and the activity feed.
package office

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/printers"
)

var ErrUnknownAgent = errors.New("office: no agent with that id")

type Office struct {
	Service *dashboard.Service
	// Select is the agent id shown in the detail pane.
	Select string
	JSON   bool
	Out    io.Writer
}

type report struct {
	Agents   []agent.Agent `json:"agents"`
	Selected *agent.Agent  `json:"selected,omitempty"`
	Feed     []agent.Agent `json:"feed"`
}

func (n *Office) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show office, no service")
	}
	o, err := n.Service.Office(ctx)
	if err != nil {
		return err
	}
	if n.Select != "" {
		o = n.Service.ToggleAgent(o, n.Select)
		if _, ok := o.Selected(); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAgent, n.Select)
		}
	}

	if n.JSON {
		r := report{Agents: o.Agents(), Feed: o.Feed()}
		if r.Feed == nil {
			r.Feed = []agent.Agent{}
		}
		if sel, ok := o.Selected(); ok {
			r.Selected = &sel
		}
		return options.PrintJSON(n.Out, r)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Office(o)
	return nil
}
