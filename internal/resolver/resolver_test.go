package resolver

import (
	"context"
	"errors"
	"testing"

	"fieldforce/internal/domain/workforce"
)

func projectList(ids ...string) []workforce.Project {
	out := make([]workforce.Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, workforce.Project{ID: id, ManagerID: "user-pm-001"})
	}
	return out
}

func TestCurrentTokenResolvesToFirstProject(t *testing.T) {
	r := New()

	step := r.Observe(CurrentToken)
	if step.Action != ActionFetchProjects {
		t.Fatalf("first step = %v, want fetch", step.Action)
	}
	if r.State() != StateResolving {
		t.Fatalf("state = %v, want resolving", r.State())
	}

	r.ProjectsFetched(projectList("PRJ-001", "PRJ-002"))

	step = r.Observe(CurrentToken)
	if step.Action != ActionRedirect || step.ProjectID != "PRJ-001" {
		t.Fatalf("step = %+v, want redirect to PRJ-001", step)
	}

	step = r.Observe("PRJ-001")
	if step.Action != ActionRender || step.ProjectID != "PRJ-001" {
		t.Fatalf("step = %+v, want render PRJ-001", step)
	}
	if r.State() != StateResolved {
		t.Fatalf("state = %v, want resolved", r.State())
	}
}

func TestAbsentTokenBehavesLikeCurrent(t *testing.T) {
	r := New()
	r.ProjectsFetched(projectList("PRJ-007"))

	step := r.Observe("")
	if step.Action != ActionRedirect || step.ProjectID != "PRJ-007" {
		t.Fatalf("step = %+v", step)
	}
}

func TestRemovedActiveProjectReResolves(t *testing.T) {
	r := New()
	r.ProjectsFetched(projectList("PRJ-001", "PRJ-002"))

	if step := r.Observe("PRJ-002"); step.Action != ActionRender {
		t.Fatalf("step = %+v, want render", step)
	}

	// The active project disappears from a fresh fetch.
	r.ProjectsFetched(projectList("PRJ-003", "PRJ-004"))

	step := r.Observe("PRJ-002")
	if step.Action != ActionRedirect || step.ProjectID != "PRJ-003" {
		t.Fatalf("step = %+v, want redirect to PRJ-003", step)
	}

	if step := r.Observe("PRJ-003"); step.Action != ActionRender || step.ProjectID != "PRJ-003" {
		t.Fatalf("step = %+v, want render PRJ-003", step)
	}
}

func TestEmptyListParksUnresolved(t *testing.T) {
	r := New()
	r.ProjectsFetched(nil)

	step := r.Observe(CurrentToken)
	if step.Action != ActionShowEmpty {
		t.Fatalf("step = %+v, want empty state", step)
	}
	if r.State() != StateUnresolved {
		t.Fatalf("state = %v, want unresolved", r.State())
	}

	// Repeated observations stay parked rather than erroring.
	if step := r.Observe(CurrentToken); step.Action != ActionShowEmpty {
		t.Fatalf("second step = %+v", step)
	}
}

type fakeLister struct {
	projects []workforce.Project
	err      error
	calls    int
}

func (f *fakeLister) ListProjectsForManager(_ context.Context, _ string) ([]workforce.Project, error) {
	f.calls++
	return f.projects, f.err
}

func TestResolveDrivesToRender(t *testing.T) {
	r := New()
	lister := &fakeLister{projects: projectList("PRJ-001", "PRJ-002")}

	step, err := r.Resolve(context.Background(), lister, "user-pm-001", CurrentToken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if step.Action != ActionRender || step.ProjectID != "PRJ-001" {
		t.Fatalf("step = %+v", step)
	}
	if lister.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", lister.calls)
	}
}

func TestResolveSurfacesEmptyState(t *testing.T) {
	r := New()
	lister := &fakeLister{}

	step, err := r.Resolve(context.Background(), lister, "user-pm-001", CurrentToken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if step.Action != ActionShowEmpty {
		t.Fatalf("step = %+v", step)
	}
}

func TestResolvePropagatesFetchErrors(t *testing.T) {
	r := New()
	boom := errors.New("backend down")
	lister := &fakeLister{err: boom}

	_, err := r.Resolve(context.Background(), lister, "user-pm-001", CurrentToken)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if r.State() != StateUnresolved {
		t.Fatalf("state after failed fetch = %v", r.State())
	}
}
