package memory

import "tableflip.dev/missioncontrol/pkg/filter"

// EmptyMessage is shown when no record matches the current query.
const EmptyMessage = "No memories found"

// Browser is the memory view's state: the full record set and the active
// query. Methods return a new Browser.
type Browser struct {
	records []Record
	tags    []string
	query   filter.Query
}

// NewBrowser builds a browser over records with an empty query. The tag
// universe is computed once from the full set.
func NewBrowser(records []Record) Browser {
	all := append([]Record(nil), records...)
	return Browser{records: all, tags: filter.Tags(all)}
}

// Query returns the active filter.
func (b Browser) Query() filter.Query { return b.query }

// Records returns every record, ignoring the query.
func (b Browser) Records() []Record { return append([]Record(nil), b.records...) }

// Visible returns the records matching the active query, in order.
func (b Browser) Visible() []Record {
	return filter.Apply(b.records, b.query)
}

// TagUniverse is the sorted tag list for the filter controls. It does not
// depend on the query.
func (b Browser) TagUniverse() []string {
	return append([]string(nil), b.tags...)
}

// Search replaces the free-text query.
func (b Browser) Search(text string) Browser {
	b.query = b.query.WithText(text)
	return b
}

// ToggleTag flips the selection state of tag.
func (b Browser) ToggleTag(tag string) Browser {
	b.query = b.query.Toggle(tag)
	return b
}

// ClearTags deselects every tag.
func (b Browser) ClearTags() Browser {
	b.query = b.query.Clear()
	return b
}

// Selected reports whether tag is part of the query.
func (b Browser) Selected(tag string) bool { return b.query.Has(tag) }
