// Package filters tracks which series keys are currently shown on the
// chart. Each key gets one chip; unchecking a chip hides its trace
// without touching the loaded rows.
package filters

// Chip is a single user-toggleable filter bound to one series key.
type Chip struct {
	Key     string `json:"key"`
	Checked bool   `json:"checked"`
}

// Registry holds the ordered chip list for the current key set and
// whether the filter surface is shown at all. The selection is always
// a subset of the keys given to Rebuild.
type Registry struct {
	chips   []Chip
	index   map[string]int
	visible bool
}

// New returns an empty, hidden registry. It shows nothing until
// Rebuild is called with the keys of a loaded dataset.
func New() *Registry {
	return &Registry{index: map[string]int{}}
}

// Rebuild replaces the chip list with one checked chip per key. Any
// previous selection is discarded, even for keys that survive the
// rebuild. Keys are kept in the order given; duplicates are dropped.
func (r *Registry) Rebuild(keys []string) {
	r.chips = make([]Chip, 0, len(keys))
	r.index = make(map[string]int, len(keys))
	for _, k := range keys {
		if _, ok := r.index[k]; ok {
			continue
		}
		r.index[k] = len(r.chips)
		r.chips = append(r.chips, Chip{Key: k, Checked: true})
	}
}

// Toggle flips one chip's checked state. Unknown keys are a no-op;
// the return value reports whether anything changed.
func (r *Registry) Toggle(key string) bool {
	i, ok := r.index[key]
	if !ok {
		return false
	}
	r.chips[i].Checked = !r.chips[i].Checked
	return true
}

// SelectAll checks every chip.
func (r *Registry) SelectAll() {
	for i := range r.chips {
		r.chips[i].Checked = true
	}
}

// SelectNone unchecks every chip. The chart then draws no series
// traces; the chips stay on screen so the user can re-select.
func (r *Registry) SelectNone() {
	for i := range r.chips {
		r.chips[i].Checked = false
	}
}

// Selection returns the checked keys as a set. The map is a fresh
// copy on every call.
func (r *Registry) Selection() map[string]bool {
	sel := make(map[string]bool, len(r.chips))
	for _, c := range r.chips {
		if c.Checked {
			sel[c.Key] = true
		}
	}
	return sel
}

// EffectiveSelection returns the selection rendering should honor:
// nil while the surface is hidden, which the renderer reads as "all
// keys".
func (r *Registry) EffectiveSelection() map[string]bool {
	if !r.visible {
		return nil
	}
	return r.Selection()
}

// SetVisible shows or hides the whole filter surface. Hiding does not
// disturb chip state; a hidden registry simply has no effect on
// rendering.
func (r *Registry) SetVisible(v bool) {
	r.visible = v
}

// Visible reports whether the filter surface is shown.
func (r *Registry) Visible() bool {
	return r.visible
}

// Chips returns a copy of the chip list for display.
func (r *Registry) Chips() []Chip {
	out := make([]Chip, len(r.chips))
	copy(out, r.chips)
	return out
}

// Clone returns an independent copy of the registry. Mutating either
// copy never affects the other.
func (r *Registry) Clone() *Registry {
	out := &Registry{
		chips:   make([]Chip, len(r.chips)),
		index:   make(map[string]int, len(r.index)),
		visible: r.visible,
	}
	copy(out.chips, r.chips)
	for k, i := range r.index {
		out.index[k] = i
	}
	return out
}

// Len returns the number of chips.
func (r *Registry) Len() int {
	return len(r.chips)
}
