package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rec struct {
	id    string
	title string
	body  string
	tags  []string
}

func (r rec) FilterItem() Item { return Item{Title: r.title, Body: r.body, Tags: r.tags} }

func ids(rs []rec) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.id)
	}
	return out
}

var records = []rec{
	{id: "1", title: "Iron Condor", body: "475 trades", tags: []string{"A", "B"}},
	{id: "2", title: "Pivot", body: "Crypto grid REJECTED", tags: []string{"B", "C"}},
	{id: "3", title: "Progress", body: "gate 1a passed", tags: []string{"C"}},
}

func TestApplyEmptyInput(t *testing.T) {
	if got := Apply([]rec{}, Query{Text: "x"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := Apply[rec](nil, Query{}); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %v", got)
	}
}

func TestApplyZeroQueryKeepsOrder(t *testing.T) {
	got := ids(Apply(records, Query{}))
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "or across tags", query: Query{Tags: []string{"A", "C"}}, want: []string{"1", "2", "3"}},
		{name: "single tag", query: Query{Tags: []string{"A"}}, want: []string{"1"}},
		{name: "shared tag", query: Query{Tags: []string{"B"}}, want: []string{"1", "2"}},
		{name: "unknown tag", query: Query{Tags: []string{"Z"}}, want: []string{}},
		{name: "title case insensitive", query: Query{Text: "iRoN"}, want: []string{"1"}},
		{name: "body case insensitive", query: Query{Text: "rejected"}, want: []string{"2"}},
		{name: "body substring", query: Query{Text: "GATE 1"}, want: []string{"3"}},
		{name: "text and tags", query: Query{Text: "r", Tags: []string{"C"}}, want: []string{"2", "3"}},
		{name: "text excludes tag match", query: Query{Text: "condor", Tags: []string{"C"}}, want: []string{}},
		{name: "no match", query: Query{Text: "nothing here"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(records, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected records (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTagsSortedUnion(t *testing.T) {
	got := Tags(records)
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Fatalf("unexpected tags (-want +got):\n%s", diff)
	}
	if got := Tags([]rec{}); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}

func TestToggle(t *testing.T) {
	q := Query{Text: "gate"}
	q = q.Toggle("B")
	q = q.Toggle("A")
	if diff := cmp.Diff([]string{"B", "A"}, q.Tags); diff != "" {
		t.Fatalf("unexpected tags (-want +got):\n%s", diff)
	}
	if !q.Has("A") || q.Has("C") {
		t.Fatalf("unexpected membership: %v", q.Tags)
	}

	off := q.Toggle("B")
	if diff := cmp.Diff([]string{"A"}, off.Tags); diff != "" {
		t.Fatalf("unexpected tags after removal (-want +got):\n%s", diff)
	}
	if len(q.Tags) != 2 {
		t.Fatalf("Toggle must not modify the receiver: %v", q.Tags)
	}
	if off.Text != "gate" {
		t.Fatalf("Toggle must keep the text, got %q", off.Text)
	}
	if cleared := q.Clear(); len(cleared.Tags) != 0 || cleared.Text != "gate" {
		t.Fatalf("unexpected cleared query: %+v", cleared)
	}
}

func TestToggleNeverChangesTagUniverse(t *testing.T) {
	before := Tags(records)
	q := Query{}.Toggle("A")
	visible := Apply(records, q)
	if len(visible) != 1 {
		t.Fatalf("expected one visible record, got %d", len(visible))
	}
	if diff := cmp.Diff(before, Tags(records)); diff != "" {
		t.Fatalf("tag universe changed (-want +got):\n%s", diff)
	}
}

func TestWithTextCopiesTags(t *testing.T) {
	q := Query{Tags: []string{"A"}}
	next := q.WithText("iron")
	next.Tags[0] = "Z"
	if q.Tags[0] != "A" {
		t.Fatalf("WithText must not share the tag slice")
	}
}
