// Package dashboard owns the query state of one sales chart and the
// lifecycle around loading it: which controls are set, whether a load
// is in flight, and what the chart should currently show. Intents
// describe user input, a pure reducer maps them onto the next state,
// and a controller executes the resulting loads and renders.
package dashboard

import (
	"fmt"

	"github.com/salesboard/salesboard/internal/chart"
	"github.com/salesboard/salesboard/internal/filters"
	"github.com/salesboard/salesboard/internal/loader"
	"github.com/salesboard/salesboard/internal/models"
)

// Phase classifies the dashboard lifecycle.
type Phase string

const (
	// PhaseUnconfigured means no shop id is set; no load can run.
	PhaseUnconfigured Phase = "unconfigured"
	// PhaseIdle means a shop is configured but nothing was loaded yet.
	PhaseIdle Phase = "idle"
	// PhaseLoading means a load is in flight.
	PhaseLoading Phase = "loading"
	// PhaseReady means the last load succeeded and rows are present.
	PhaseReady Phase = "ready"
	// PhaseError means the last load failed; any earlier data is kept.
	PhaseError Phase = "error"
)

// State is the complete dashboard state as one value. The reducer
// takes and returns it; nothing mutates it in place behind a caller's
// back. Data and Registry are replaced wholesale on a successful load
// and left untouched by a failed one.
type State struct {
	Query     models.Query
	Phase     Phase
	Data      *loader.Result
	Registry  *filters.Registry
	Status    string
	LastError string
}

// NewState returns the starting state for a query. With no shop set
// the dashboard is unconfigured and says so on the status surface.
func NewState(q models.Query) State {
	st := State{
		Query:    q,
		Phase:    PhaseIdle,
		Registry: filters.New(),
		Status:   "no data loaded",
	}
	if q.Shop == "" {
		st.Phase = PhaseUnconfigured
		st.Status = statusUnconfigured
	}
	return st
}

const statusUnconfigured = "no shop configured"

// StatusFor summarizes a successful load for the status surface.
func StatusFor(res *loader.Result) string {
	s := fmt.Sprintf("loaded %d rows", len(res.Rows))
	if res.Currency != "" {
		s += " · " + res.Currency
	}
	if res.Timezone != "" {
		s += " · " + res.Timezone
	}
	return s
}

// Snapshot is a read-only view of the dashboard handed to callers.
// The chart description is rebuilt from the state on every snapshot.
type Snapshot struct {
	Phase          Phase
	Query          models.Query
	Status         string
	LastError      string
	Keys           []string
	Chips          []filters.Chip
	FiltersVisible bool
	RowCount       int
	Currency       string
	Timezone       string
	Description    chart.Description
}

// snapshot renders the externally visible view of a state.
func snapshot(st State) Snapshot {
	snap := Snapshot{
		Phase:     st.Phase,
		Query:     st.Query,
		Status:    st.Status,
		LastError: st.LastError,
	}
	if st.Registry != nil {
		snap.Chips = st.Registry.Chips()
		snap.FiltersVisible = st.Registry.Visible()
	}
	if st.Data == nil {
		snap.Description = chart.Build(nil, nil, nil, st.Query, "")
		return snap
	}
	snap.Keys = append([]string(nil), st.Data.Keys...)
	snap.RowCount = len(st.Data.Rows)
	snap.Currency = st.Data.Currency
	snap.Timezone = st.Data.Timezone

	var sel map[string]bool
	if st.Registry != nil {
		sel = st.Registry.EffectiveSelection()
	}
	snap.Description = chart.Build(st.Data.Rows, st.Data.Keys, sel, st.Query, st.Data.Currency)
	return snap
}
