package dashboard

import "github.com/salesboard/salesboard/internal/models"

// Intent is one unit of user input. Controls that change what to ask
// the backend reduce to a reload; controls that only change how the
// loaded rows are drawn reduce to a render.
type Intent interface {
	isIntent()
}

// SetDateRange changes the inclusive date window.
type SetDateRange struct {
	Start string
	End   string
}

// SetGroupBy changes the backend aggregation dimension.
type SetGroupBy struct {
	GroupBy models.GroupBy
}

// SetMetric switches between revenue and unit counts.
type SetMetric struct {
	Metric models.Metric
}

// SetChartType switches between stacked bars and lines.
type SetChartType struct {
	ChartType models.ChartType
}

// SetShowOrders toggles the secondary order-count axis.
type SetShowOrders struct {
	Show bool
}

// ToggleSeries flips one filter chip.
type ToggleSeries struct {
	Key string
}

// SelectAllSeries checks every filter chip.
type SelectAllSeries struct{}

// SelectNoSeries unchecks every filter chip.
type SelectNoSeries struct{}

// Reload re-runs the current query unchanged.
type Reload struct{}

func (SetDateRange) isIntent()    {}
func (SetGroupBy) isIntent()      {}
func (SetMetric) isIntent()       {}
func (SetChartType) isIntent()    {}
func (SetShowOrders) isIntent()   {}
func (ToggleSeries) isIntent()    {}
func (SelectAllSeries) isIntent() {}
func (SelectNoSeries) isIntent()  {}
func (Reload) isIntent()          {}

// Effect is the reducer's decision about what must happen after an
// intent is applied.
type Effect int

const (
	// EffectNone means nothing beyond the state change itself.
	EffectNone Effect = iota
	// EffectReload means the query changed in a way that requires a
	// fresh backend fetch.
	EffectReload
	// EffectRender means the loaded rows must be redrawn with the new
	// display settings; no network activity.
	EffectRender
)

// Reduce applies one intent to a state and returns the next state
// plus the required effect. It is pure: the given state is never
// mutated, and filter changes operate on a cloned registry.
//
// Render effects are only produced once data exists; before the first
// successful load there is nothing to redraw, and the changed setting
// simply rides along into the next load. Reloads never happen here,
// the controller runs them, so the phase is untouched.
func Reduce(st State, it Intent) (State, Effect) {
	switch it := it.(type) {
	case SetDateRange:
		st.Query.StartDate = it.Start
		st.Query.EndDate = it.End
		return st, EffectReload
	case SetGroupBy:
		st.Query.GroupBy = it.GroupBy
		return st, EffectReload
	case SetMetric:
		st.Query.Metric = it.Metric
		return st, EffectReload
	case Reload:
		return st, EffectReload
	case SetChartType:
		st.Query.ChartType = it.ChartType
		return st, renderEffect(st)
	case SetShowOrders:
		st.Query.ShowOrders = it.Show
		return st, renderEffect(st)
	case ToggleSeries:
		if st.Registry == nil || !st.Registry.Visible() {
			return st, EffectNone
		}
		reg := st.Registry.Clone()
		if !reg.Toggle(it.Key) {
			return st, EffectNone
		}
		st.Registry = reg
		return st, renderEffect(st)
	case SelectAllSeries:
		if st.Registry == nil || !st.Registry.Visible() {
			return st, EffectNone
		}
		reg := st.Registry.Clone()
		reg.SelectAll()
		st.Registry = reg
		return st, renderEffect(st)
	case SelectNoSeries:
		if st.Registry == nil || !st.Registry.Visible() {
			return st, EffectNone
		}
		reg := st.Registry.Clone()
		reg.SelectNone()
		st.Registry = reg
		return st, renderEffect(st)
	}
	return st, EffectNone
}

func renderEffect(st State) Effect {
	if st.Data == nil {
		return EffectNone
	}
	return EffectRender
}
