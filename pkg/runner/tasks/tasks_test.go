package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/store"
)

func service() *dashboard.Service {
	return &dashboard.Service{
		Catalog: store.Fixed(nil),
		Now:     func() time.Time { return store.DemoDate },
	}
}

func TestTasksJSON(t *testing.T) {
	var buf bytes.Buffer
	r := Tasks{Service: service(), JSON: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var cols []struct {
		Status string            `json:"status"`
		Tasks  []json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(buf.Bytes(), &cols); err != nil {
		t.Fatalf("bad json: %v\n%s", err, buf.String())
	}
	if len(cols) != 3 || cols[0].Status != "backlog" || len(cols[0].Tasks) != 3 || len(cols[2].Tasks) != 0 {
		t.Fatalf("unexpected columns: %s", buf.String())
	}
}

func TestTasksStatusFilter(t *testing.T) {
	var buf bytes.Buffer
	r := Tasks{Service: service(), Status: "in progress", JSON: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var cols []struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(buf.Bytes(), &cols); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(cols) != 1 || cols[0].Status != "progress" {
		t.Fatalf("expected only the progress column, got %s", buf.String())
	}

	r.Status = "someday"
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestTasksNoService(t *testing.T) {
	if err := (&Tasks{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without a service")
	}
}
