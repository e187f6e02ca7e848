// Package filter selects text and tag bearing records by a free-text query and
// a set of selected tags.
package filter

import (
	"sort"
	"strings"
)

// Item is the searchable view of a record.
type Item struct {
	Title string
	Body  string
	Tags  []string
}

// Filterable is implemented by records that can be searched.
type Filterable interface {
	FilterItem() Item
}

// Query is the filter state: free text plus the selected tags. The zero
// Query matches everything.
type Query struct {
	Text string
	Tags []string
}

// Matches reports whether item passes both the text and the tag predicate.
func (q Query) Matches(item Item) bool {
	return q.matchesText(item) && q.matchesTags(item)
}

func (q Query) matchesText(item Item) bool {
	if q.Text == "" {
		return true
	}
	needle := strings.ToLower(q.Text)
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Body), needle)
}

// matchesTags is an OR across the selected tags.
func (q Query) matchesTags(item Item) bool {
	if len(q.Tags) == 0 {
		return true
	}
	for _, want := range q.Tags {
		for _, have := range item.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Has reports whether tag is selected.
func (q Query) Has(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Toggle selects tag if it is not selected and deselects it otherwise.
func (q Query) Toggle(tag string) Query {
	out := Query{Text: q.Text, Tags: make([]string, 0, len(q.Tags)+1)}
	found := false
	for _, t := range q.Tags {
		if t == tag {
			found = true
			continue
		}
		out.Tags = append(out.Tags, t)
	}
	if !found {
		out.Tags = append(out.Tags, tag)
	}
	return out
}

// WithText replaces the free-text part of the query.
func (q Query) WithText(text string) Query {
	out := Query{Text: text, Tags: append([]string(nil), q.Tags...)}
	return out
}

// Clear drops every selected tag and keeps the text.
func (q Query) Clear() Query {
	return Query{Text: q.Text}
}

// Apply returns the records matching q, in their input order.
func Apply[T Filterable](records []T, q Query) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q.Matches(r.FilterItem()) {
			out = append(out, r)
		}
	}
	return out
}

// Tags returns the sorted, deduplicated union of tags across records. Call it
// on the full record set so the tag controls are stable while filtering.
func Tags[T Filterable](records []T) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		for _, t := range r.FilterItem().Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
