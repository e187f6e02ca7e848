// Package memory lists, filters and renders memory notes.
package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	mem "tableflip.dev/missioncontrol/pkg/memory"
	"tableflip.dev/missioncontrol/pkg/printers"
)

var ErrNotFound = errors.New("memory: no such note")

type List struct {
	Service *dashboard.Service
	Query   string
	Tags    []string
	JSON    bool
	Out     io.Writer
}

// Browser applies the query and tag flags.
func (n *List) Browser(ctx context.Context) (mem.Browser, error) {
	b, err := n.Service.MemoryBrowser(ctx)
	if err != nil {
		return mem.Browser{}, err
	}
	b = b.Search(n.Query)
	for _, t := range n.Tags {
		t = strings.TrimSpace(t)
		if t == "" || b.Selected(t) {
			continue
		}
		b = n.Service.ToggleMemoryTag(b, t)
	}
	return b, nil
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list memories, no service")
	}
	b, err := n.Browser(ctx)
	if err != nil {
		return err
	}
	visible := b.Visible()

	if n.JSON {
		if visible == nil {
			visible = []mem.Record{}
		}
		return options.PrintJSON(n.Out, struct {
			Tags     []string     `json:"tags"`
			Memories []mem.Record `json:"memories"`
		}{Tags: b.TagUniverse(), Memories: visible})
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Memories(visible)
	return nil
}

// Show renders one note as markdown.
type Show struct {
	Service *dashboard.Service
	ID      string
	// Style is a glamour standard style name such as "dark" or "notty".
	// Empty or "auto" picks one from the terminal.
	Style string
	Width int
	JSON  bool
	Out   io.Writer
}

func (n *Show) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show memory, no service")
	}
	b, err := n.Service.MemoryBrowser(ctx)
	if err != nil {
		return err
	}
	r, ok := mem.Find(b.Records(), n.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, n.ID)
	}
	if n.JSON {
		return options.PrintJSON(n.Out, r)
	}

	style := n.style()
	width := n.Width
	if width <= 0 {
		width = printers.DefaultWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(mem.Markdown(r))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(n.out(), out)
	return err
}

func (n *Show) style() string {
	if n.Style != "" && n.Style != "auto" {
		return n.Style
	}
	if n.Out != nil || !isatty.IsTerminal(os.Stdout.Fd()) {
		return "notty"
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
