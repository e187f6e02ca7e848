package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/glyph"
	"tableflip.dev/missioncontrol/pkg/memory"
	"tableflip.dev/missioncontrol/pkg/task"
	"tableflip.dev/missioncontrol/pkg/team"
)

// DefaultWidth is the wrap width for free text.
const DefaultWidth = 80

type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) wrap(text, indent string) string {
	w := pp.width() - len(indent)
	if w < 20 {
		w = 20
	}
	lines := strings.Split(wordwrap.String(strings.TrimSpace(text), w), "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Board prints each column of b, or only the given statuses.
func (pp *PrettyPrint) Board(b task.Board, only ...task.Status) {
	statuses := only
	if len(statuses) == 0 {
		statuses = task.Statuses()
	}
	y := color.New(color.FgHiYellow, color.Faint)
	for _, s := range statuses {
		col := b.Column(s)
		pp.TitleWithCount(s.Title(), len(col), "task")
		if len(col) == 0 {
			pp.none()
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = uint(pp.width())
		for _, t := range col {
			title := t.Title
			if t.Status == task.Done {
				title = glyph.Strike(title)
			}
			tbl.AddRow(glyph.Task(t.Status), glyph.Priority(t.Priority), title, t.Assignee, t.DueLabel(), y.Sprint(t.ID))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
}

// Memories prints the record list.
func (pp *PrettyPrint) Memories(records []memory.Record) {
	pp.TitleWithCount("Memory", len(records), "note")
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(pp.out(), " %s\n\n", memory.EmptyMessage)
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	cyan := color.New(color.FgCyan)
	for _, r := range records {
		_, _ = bold.Fprintf(pp.out(), "%s  %s\n", r.ID, r.Title)
		_, _ = faint.Fprintf(pp.out(), "   %s · %s\n", r.Date, r.Source)
		_, _ = fmt.Fprintln(pp.out(), pp.wrap(r.Body, "   "))
		if len(r.Tags) > 0 {
			_, _ = cyan.Fprintf(pp.out(), "   #%s\n", strings.Join(r.Tags, " #"))
		}
		pp.NewLine()
	}
}

// SubAgents prints the roster with the active count in the heading.
func (pp *PrettyPrint) SubAgents(subs []agent.SubAgent) {
	pp.Title(fmt.Sprintf("Sub-Agents (%d active)", agent.ActiveCount(subs)))
	if len(subs) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, s := range subs {
		_, _ = bold.Fprintf(pp.out(), "%s  %s\n", s.Name, glyph.SubAgent(s.Status))
		_, _ = fmt.Fprintln(pp.out(), pp.wrap(s.Description, "   "))
		_, _ = faint.Fprintf(pp.out(), "   skills: %s\n", strings.Join(s.Skills, ", "))
		_, _ = faint.Fprintf(pp.out(), "   last active: %s\n", s.LastActive.Format("Jan 2, 2006 15:04"))
		pp.NewLine()
	}
}

// Team prints founders and agents as two tables.
func (pp *PrettyPrint) Team(founders, agents []team.Member) {
	pp.members("Founders", founders)
	pp.members("Agents", agents)
}

func (pp *PrettyPrint) members(title string, members []team.Member) {
	pp.TitleWithCount(title, len(members), "member")
	if len(members) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 40
	tbl.AddRow("", bold.Sprint("Name"), bold.Sprint("Role"), bold.Sprint("Status"), bold.Sprint("Responsibilities"))
	for _, m := range members {
		tbl.AddRow(m.Avatar, m.Name, m.Role, glyph.Member(m.Status).String(), strings.Join(m.Responsibilities, ", "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Office prints each desk, the selected agent's detail and the feed.
func (pp *PrettyPrint) Office(o agent.Office) {
	pp.TitleWithCount("Office", len(o.Agents()), "desk")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range o.Agents() {
		marker := " "
		if o.IsSelected(a.ID) {
			marker = ">"
		}
		tbl.AddRow(marker, fmt.Sprintf("desk %d", a.Desk), a.Avatar, a.Name, glyph.Desk(a).String(), agent.Bar(a.Progress, 10), agent.Percent(a.Progress))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	if sel, ok := o.Selected(); ok {
		bold := color.New(color.Bold)
		_, _ = bold.Fprintf(pp.out(), "%s %s\n", sel.Avatar, sel.Name)
		_, _ = fmt.Fprintf(pp.out(), "   %s\n", glyph.Desk(sel))
		_, _ = fmt.Fprintln(pp.out(), pp.wrap(sel.Activity, "   "))
		_, _ = fmt.Fprintf(pp.out(), "   %s %s\n", agent.Bar(sel.Progress, 20), agent.Percent(sel.Progress))
		pp.NewLine()
	}

	feed := o.Feed()
	pp.TitleWithCount("Activity", len(feed), "agent")
	if len(feed) == 0 {
		pp.none()
		return
	}
	for _, a := range feed {
		_, _ = fmt.Fprintf(pp.out(), "%s %s: %s\n", a.Avatar, a.Name, a.Activity)
	}
	pp.NewLine()
}
