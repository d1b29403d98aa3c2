package dashboard

import (
	"context"
	"sync"

	"github.com/salesboard/salesboard/internal/filters"
	"github.com/salesboard/salesboard/internal/loader"
	"github.com/salesboard/salesboard/internal/models"
)

// Loader fetches sales rows for a query. *loader.Client implements it;
// tests substitute fakes.
type Loader interface {
	Load(ctx context.Context, q models.Query) (*loader.Result, error)
}

// Controller owns one dashboard's state and runs the loads the
// reducer asks for. Dispatch is safe for concurrent use; loads run
// with the state lock released, so render-only intents and snapshots
// stay responsive while a fetch is in flight.
type Controller struct {
	loader Loader

	mu  sync.Mutex
	st  State
	seq uint64 // tag of the most recently issued load
}

// New returns a controller for the given starting query. No load runs
// until Refresh or a reload-causing intent.
func New(l Loader, q models.Query) *Controller {
	return &Controller{loader: l, st: NewState(q)}
}

// Snapshot returns the current externally visible state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.st)
}

// Refresh runs the current query. It blocks until the load settles
// and returns the resulting snapshot.
func (c *Controller) Refresh(ctx context.Context) Snapshot {
	c.mu.Lock()
	q, seq, ok := c.beginLoadLocked()
	c.mu.Unlock()
	if ok {
		c.finishLoad(ctx, q, seq)
	}
	return c.Snapshot()
}

// Dispatch applies one intent. Reload-causing intents block until the
// load settles; render-only intents return immediately with the
// redrawn snapshot.
func (c *Controller) Dispatch(ctx context.Context, it Intent) Snapshot {
	c.mu.Lock()
	next, eff := Reduce(c.st, it)
	c.st = next
	if eff != EffectReload {
		snap := snapshot(c.st)
		c.mu.Unlock()
		return snap
	}
	q, seq, ok := c.beginLoadLocked()
	c.mu.Unlock()
	if ok {
		c.finishLoad(ctx, q, seq)
	}
	return c.Snapshot()
}

// beginLoadLocked moves the state into the loading phase and hands
// out the load's sequence tag. A missing shop is a configuration
// error: no request may be issued and the status surface says so.
func (c *Controller) beginLoadLocked() (models.Query, uint64, bool) {
	if c.st.Query.Shop == "" {
		c.st.Phase = PhaseUnconfigured
		c.st.Status = statusUnconfigured
		return models.Query{}, 0, false
	}
	c.seq++
	c.st.Phase = PhaseLoading
	c.st.Status = "loading"
	return c.st.Query, c.seq, true
}

// finishLoad runs the fetch without holding the lock, then folds the
// outcome back in. A result whose tag is no longer the newest issued
// one is discarded untouched: overlapping reloads are resolved in
// favor of the most recently issued request, never by arrival order.
func (c *Controller) finishLoad(ctx context.Context, q models.Query, seq uint64) {
	res, err := c.loader.Load(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	if err != nil {
		// Previous rows, keys and selection stay exactly as they
		// were; only the classification and status change.
		c.st.Phase = PhaseError
		c.st.LastError = err.Error()
		c.st.Status = "load failed: " + err.Error()
		return
	}

	reg := filters.New()
	if c.st.Query.GroupBy.IsCategorical() {
		reg.Rebuild(res.Keys)
		reg.SetVisible(true)
	}
	c.st.Data = res
	c.st.Registry = reg
	c.st.Phase = PhaseReady
	c.st.LastError = ""
	c.st.Status = StatusFor(res)
}
