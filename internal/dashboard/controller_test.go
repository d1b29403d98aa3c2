package dashboard_test

import (
	"context"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/salesboard/salesboard/internal/dashboard"
	"github.com/salesboard/salesboard/internal/loader"
	"github.com/salesboard/salesboard/internal/models"
)

type loaderFunc func(ctx context.Context, q models.Query) (*loader.Result, error)

func (f loaderFunc) Load(ctx context.Context, q models.Query) (*loader.Result, error) {
	return f(ctx, q)
}

func controllerQuery() models.Query {
	return models.Query{
		Shop:      "demo-shop",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		GroupBy:   models.GroupByCategory,
		Metric:    models.MetricRevenue,
		ChartType: models.ChartBar,
	}
}

func resultWithKeys(keys ...string) *loader.Result {
	series := make(map[string]float64, len(keys))
	for i, k := range keys {
		series[k] = float64(i + 1)
	}
	rows := []models.Row{{Date: "2024-01-01", Series: series, Totals: models.Aggregates{Orders: 2}}}
	return &loader.Result{Rows: rows, Keys: models.SeriesKeys(rows), Currency: "EUR", Timezone: "Europe/Lisbon"}
}

func TestControllerRefresh(t *testing.T) {
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		return resultWithKeys("Apparel", "Toys"), nil
	})
	c := dashboard.New(fake, controllerQuery())

	snap := c.Refresh(context.Background())

	if snap.Phase != dashboard.PhaseReady {
		t.Fatalf("expected phase ready, got %s", snap.Phase)
	}
	if want := []string{"Apparel", "Toys"}; !reflect.DeepEqual(snap.Keys, want) {
		t.Errorf("expected keys %v, got %v", want, snap.Keys)
	}
	if !snap.FiltersVisible || len(snap.Chips) != 2 {
		t.Errorf("expected 2 visible chips, got visible=%t chips=%v", snap.FiltersVisible, snap.Chips)
	}
	for _, chip := range snap.Chips {
		if !chip.Checked {
			t.Errorf("expected chip %s checked after a load", chip.Key)
		}
	}
	if snap.Status != "loaded 1 rows · EUR · Europe/Lisbon" {
		t.Errorf("unexpected status %q", snap.Status)
	}
	if len(snap.Description.Traces) != 2 {
		t.Errorf("expected 2 traces, got %d", len(snap.Description.Traces))
	}
}

func TestControllerEmptyDataset(t *testing.T) {
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		return &loader.Result{Rows: []models.Row{}, Keys: []string{}}, nil
	})
	c := dashboard.New(fake, controllerQuery())

	snap := c.Refresh(context.Background())

	if snap.Phase != dashboard.PhaseReady {
		t.Fatalf("expected phase ready, got %s", snap.Phase)
	}
	if snap.Status != "loaded 0 rows" {
		t.Errorf("expected a zero-row status, got %q", snap.Status)
	}
	if len(snap.Chips) != 0 || len(snap.Description.Traces) != 0 {
		t.Errorf("expected an empty chart and no chips, got %d chips, %d traces",
			len(snap.Chips), len(snap.Description.Traces))
	}
}

// A failed load must leave rows, keys and selection exactly as they
// were; only the classification and status move.
func TestControllerFailureKeepsPreviousData(t *testing.T) {
	var fail atomic.Bool
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		if fail.Load() {
			return nil, &loader.NetworkError{StatusCode: 502, Body: "bad gateway"}
		}
		return resultWithKeys("Apparel", "Toys"), nil
	})
	c := dashboard.New(fake, controllerQuery())
	c.Refresh(context.Background())
	c.Dispatch(context.Background(), dashboard.ToggleSeries{Key: "Toys"})

	fail.Store(true)
	snap := c.Dispatch(context.Background(), dashboard.Reload{})

	if snap.Phase != dashboard.PhaseError {
		t.Fatalf("expected phase error, got %s", snap.Phase)
	}
	if want := []string{"Apparel", "Toys"}; !reflect.DeepEqual(snap.Keys, want) {
		t.Errorf("expected previous keys retained, got %v", snap.Keys)
	}
	if len(snap.Description.Traces) != 1 {
		t.Errorf("expected the partial selection to survive, got %d traces", len(snap.Description.Traces))
	}
	if snap.LastError == "" || snap.Status == "" {
		t.Error("expected the failure to reach the status surface")
	}
}

// Changing the date range after a partial selection must reset the
// selection to exactly the new key set.
func TestControllerReloadResetsSelection(t *testing.T) {
	var second atomic.Bool
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		if second.Load() {
			return resultWithKeys("A", "D"), nil
		}
		return resultWithKeys("A", "B", "C"), nil
	})
	c := dashboard.New(fake, controllerQuery())
	c.Refresh(context.Background())
	c.Dispatch(context.Background(), dashboard.ToggleSeries{Key: "B"})
	c.Dispatch(context.Background(), dashboard.ToggleSeries{Key: "C"})

	second.Store(true)
	snap := c.Dispatch(context.Background(), dashboard.SetDateRange{Start: "2024-02-01", End: "2024-02-29"})

	if want := []string{"A", "D"}; !reflect.DeepEqual(snap.Keys, want) {
		t.Fatalf("expected keys %v, got %v", want, snap.Keys)
	}
	for _, chip := range snap.Chips {
		if !chip.Checked {
			t.Errorf("expected chip %s checked after the rebuild", chip.Key)
		}
	}
	if len(snap.Description.Traces) != 2 {
		t.Errorf("expected both new keys drawn, got %d traces", len(snap.Description.Traces))
	}
}

func TestControllerRenderOnlyIssuesNoRequest(t *testing.T) {
	var calls atomic.Int64
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		calls.Add(1)
		return resultWithKeys("Apparel", "Toys"), nil
	})
	c := dashboard.New(fake, controllerQuery())
	c.Refresh(context.Background())

	c.Dispatch(context.Background(), dashboard.SetChartType{ChartType: models.ChartLine})
	c.Dispatch(context.Background(), dashboard.SetShowOrders{Show: true})
	snap := c.Dispatch(context.Background(), dashboard.ToggleSeries{Key: "Toys"})

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly 1 backend request, got %d", n)
	}
	if snap.Phase != dashboard.PhaseReady {
		t.Errorf("expected render-only intents to keep phase ready, got %s", snap.Phase)
	}
	// Apparel as a line plus the orders overlay.
	if len(snap.Description.Traces) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(snap.Description.Traces))
	}
	if snap.Description.Traces[0].Type != "scatter" {
		t.Errorf("expected the new chart type to be drawn, got %q", snap.Description.Traces[0].Type)
	}
	if snap.Description.Traces[1].YAxis != "y2" {
		t.Errorf("expected the orders overlay on y2, got %q", snap.Description.Traces[1].YAxis)
	}
}

func TestControllerUnconfigured(t *testing.T) {
	var calls atomic.Int64
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		calls.Add(1)
		return resultWithKeys("A"), nil
	})
	q := controllerQuery()
	q.Shop = ""
	c := dashboard.New(fake, q)

	snap := c.Refresh(context.Background())

	if snap.Phase != dashboard.PhaseUnconfigured {
		t.Fatalf("expected phase unconfigured, got %s", snap.Phase)
	}
	if snap.Status != "no shop configured" {
		t.Errorf("unexpected status %q", snap.Status)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no request without a shop, got %d", n)
	}
}

func TestControllerNonCategoricalHidesFilters(t *testing.T) {
	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		rows := []models.Row{{Date: "2024-01-01", Series: map[string]float64{"revenue": 9.5}}}
		return &loader.Result{Rows: rows, Keys: models.SeriesKeys(rows)}, nil
	})
	q := controllerQuery()
	q.GroupBy = models.GroupByDate
	c := dashboard.New(fake, q)

	snap := c.Refresh(context.Background())

	if snap.FiltersVisible || len(snap.Chips) != 0 {
		t.Errorf("expected a hidden filter surface, got visible=%t chips=%v", snap.FiltersVisible, snap.Chips)
	}
	if len(snap.Description.Traces) != 1 {
		t.Errorf("expected every key drawn while hidden, got %d traces", len(snap.Description.Traces))
	}
}

// When reloads overlap, the most recently issued request owns the
// state; an earlier request finishing later is thrown away.
func TestControllerStaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int64

	fake := loaderFunc(func(ctx context.Context, q models.Query) (*loader.Result, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return resultWithKeys("Stale"), nil
		}
		return resultWithKeys("Fresh"), nil
	})
	c := dashboard.New(fake, controllerQuery())

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Dispatch(context.Background(), dashboard.Reload{})
	}()
	<-started

	snap := c.Dispatch(context.Background(), dashboard.Reload{})
	if want := []string{"Fresh"}; !reflect.DeepEqual(snap.Keys, want) {
		t.Fatalf("expected the newer response applied, got %v", snap.Keys)
	}

	close(release)
	<-done

	final := c.Snapshot()
	if want := []string{"Fresh"}; !reflect.DeepEqual(final.Keys, want) {
		t.Errorf("expected the stale response discarded, got %v", final.Keys)
	}
	if final.Phase != dashboard.PhaseReady {
		t.Errorf("expected phase ready, got %s", final.Phase)
	}
}
