// Package resolver turns the ambiguous "current" project token in a PM's
// dashboard route into a concrete project id, and keeps the route pinned to
// a live project when the manager's project list changes.
package resolver

import (
	"context"

	"fieldforce/internal/domain/workforce"
)

// CurrentToken is the route placeholder that stands for "whatever project
// this manager should land on".
const CurrentToken = "current"

type State int

const (
	// StateUnresolved: the route token is absent or "current" and no
	// concrete id has been picked yet.
	StateUnresolved State = iota
	// StateResolving: a project list fetch is in flight.
	StateResolving
	// StateResolved: a validated project id is active.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	}
	return "unknown"
}

type Action int

const (
	// ActionFetchProjects asks the caller to fetch the manager's project
	// list and report it back via ProjectsFetched.
	ActionFetchProjects Action = iota
	// ActionRedirect asks the caller to replace the route with ProjectID.
	ActionRedirect
	// ActionRender means ProjectID is valid for the current route; load
	// its dashboard.
	ActionRender
	// ActionShowEmpty means the manager has no projects. Render the empty
	// state, not an error.
	ActionShowEmpty
)

// Step is what the caller should do next, produced by Observe.
type Step struct {
	Action    Action
	ProjectID string
}

// Resolver is a small state machine. It performs no I/O itself; the caller
// owns fetching and navigation, including any staleness checks when a view
// has been torn down mid-fetch.
type Resolver struct {
	state   State
	fetched bool
	ids     []string
}

func New() *Resolver {
	return &Resolver{state: StateUnresolved}
}

func (r *Resolver) State() State {
	return r.state
}

// ProjectsFetched records a freshly fetched project list. List order is
// authoritative; the resolver never sorts.
func (r *Resolver) ProjectsFetched(projects []workforce.Project) {
	r.fetched = true
	r.ids = r.ids[:0]
	for _, p := range projects {
		r.ids = append(r.ids, p.ID)
	}
	if r.state == StateResolving {
		r.state = StateUnresolved
	}
}

// Observe resolves the route token against the last fetched list and
// reports the next step. Call it again after acting on the step.
func (r *Resolver) Observe(token string) Step {
	if !r.fetched {
		r.state = StateResolving
		return Step{Action: ActionFetchProjects}
	}
	if len(r.ids) == 0 {
		// An empty list parks the machine in Unresolved indefinitely.
		r.state = StateUnresolved
		return Step{Action: ActionShowEmpty}
	}
	if token == "" || token == CurrentToken {
		r.state = StateUnresolved
		return Step{Action: ActionRedirect, ProjectID: r.ids[0]}
	}
	if !r.contains(token) {
		// The active project fell out of the list; re-resolve to the
		// list's first entry.
		r.state = StateUnresolved
		return Step{Action: ActionRedirect, ProjectID: r.ids[0]}
	}
	r.state = StateResolved
	return Step{Action: ActionRender, ProjectID: token}
}

func (r *Resolver) contains(id string) bool {
	for _, known := range r.ids {
		if known == id {
			return true
		}
	}
	return false
}

// ProjectLister is the slice of the data access layer the resolver driver
// needs.
type ProjectLister interface {
	ListProjectsForManager(ctx context.Context, managerID string) ([]workforce.Project, error)
}

// Resolve drives the machine to a terminal step for one navigation event:
// it fetches the manager's projects when needed and follows redirects until
// the route is concrete. The returned step is ActionRender or
// ActionShowEmpty.
func (r *Resolver) Resolve(ctx context.Context, lister ProjectLister, managerID, token string) (Step, error) {
	for {
		step := r.Observe(token)
		switch step.Action {
		case ActionFetchProjects:
			projects, err := lister.ListProjectsForManager(ctx, managerID)
			if err != nil {
				r.state = StateUnresolved
				return Step{}, err
			}
			r.ProjectsFetched(projects)
		case ActionRedirect:
			token = step.ProjectID
		default:
			return step, nil
		}
	}
}
