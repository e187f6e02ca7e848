// Package memory holds the dashboard's memory notes and the browser state used
// to search them.
package memory

import (
	"fmt"
	"strings"

	"tableflip.dev/missioncontrol/pkg/filter"
)

// Record is one memory note.
type Record struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Body   string   `json:"content"`
	Tags   []string `json:"tags"`
	Date   string   `json:"timestamp"`
	Source string   `json:"source"`
}

// FilterItem implements filter.Filterable.
func (r Record) FilterItem() filter.Item {
	return filter.Item{Title: r.Title, Body: r.Body, Tags: r.Tags}
}

// Markdown renders the record as a small markdown document.
func Markdown(r Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "%s\n\n", r.Body)
	if len(r.Tags) > 0 {
		tags := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			tags = append(tags, "`"+t+"`")
		}
		fmt.Fprintf(&b, "**Tags:** %s\n\n", strings.Join(tags, " "))
	}
	fmt.Fprintf(&b, "_%s, %s_\n", r.Date, r.Source)
	return b.String()
}

// Find returns the record with id.
func Find(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
