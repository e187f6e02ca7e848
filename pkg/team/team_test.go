package team

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPartition(t *testing.T) {
	roster := []Member{
		{ID: "1", Kind: Founder},
		{ID: "3", Kind: Agent},
		{ID: "2", Kind: Founder},
		{ID: "4", Kind: Agent},
		{ID: "5", Kind: "contractor"},
	}
	founders, agents := Partition(roster)

	ids := func(ms []Member) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}
	if diff := cmp.Diff([]string{"1", "2"}, ids(founders)); diff != "" {
		t.Fatalf("unexpected founders (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"3", "4"}, ids(agents)); diff != "" {
		t.Fatalf("unexpected agents (-want +got):\n%s", diff)
	}
}
