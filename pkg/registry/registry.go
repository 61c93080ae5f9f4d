// Package registry tracks which stateful widgets were declared during the
// current frame.
//
// Immediate-mode UIs have no teardown call: a widget that should disappear
// simply stops being declared. The registry turns that silence into a
// checked condition — each frame collects the identities of every declared
// text field, slider, and focusable, and the frame-boundary reconciliation
// compares the cross-frame slots (focus, active drag) against these sets,
// retracting any slot whose owner was not seen.
//
// All storage is allocated once at construction to a fixed capacity and
// never grows. Exceeding a capacity is a degraded-but-safe condition, never
// a fault: the registration is dropped, the widget simply loses stale-state
// protection for that frame, and the condition is reported once per frame
// through the optional callback.
package registry

import "github.com/go-ember/ember/pkg/identity"

// Category identifies a class of stateful widget tracked per frame.
type Category int

const (
	// CategoryTextField tracks text input widgets.
	CategoryTextField Category = iota
	// CategorySlider tracks slider widgets (masked identities).
	CategorySlider
	// CategoryFocusable tracks keyboard-focusable widgets.
	CategoryFocusable

	numCategories
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryTextField:
		return "textfield"
	case CategorySlider:
		return "slider"
	case CategoryFocusable:
		return "focusable"
	default:
		return "unknown"
	}
}

// DefaultCapacity is the per-category capacity used when Config leaves it
// zero.
const DefaultCapacity = 64

// Config sizes a Registry at construction.
type Config struct {
	// Capacity is the maximum number of identities tracked per category
	// per frame. Zero selects DefaultCapacity.
	Capacity int

	// OnDegraded, if set, is invoked the first time a category overflows
	// in a given frame.
	OnDegraded func(Category)
}

// Registry is the per-frame presence set for each stateful widget category.
// It is owned by a single goroutine for the duration of a frame; no locking.
type Registry struct {
	sets       [numCategories][]identity.ID
	degraded   [numCategories]bool
	frame      uint64
	onDegraded func(Category)
}

// New creates a registry with fixed per-category capacity. No allocation
// happens after construction.
func New(cfg Config) *Registry {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Registry{onDegraded: cfg.OnDegraded}
	for i := range r.sets {
		r.sets[i] = make([]identity.ID, 0, capacity)
	}
	return r
}

// BeginFrame clears every category set, clears the degraded flags, and
// increments the frame counter. Immediately after BeginFrame every count is
// zero.
func (r *Registry) BeginFrame() {
	r.Reset()
	r.frame++
}

// Reset clears all category sets without advancing the frame counter. This
// is the explicit bulk clear for host-level teardown.
func (r *Registry) Reset() {
	for i := range r.sets {
		r.sets[i] = r.sets[i][:0]
		r.degraded[i] = false
	}
}

// Register adds id to the category's set for the current frame and reports
// whether it was newly added. Registering the same identity twice in one
// frame is idempotent. The sentinel identity is ignored. When the category
// is full the registration is silently dropped and the degraded flag is set.
func (r *Registry) Register(cat Category, id identity.ID) bool {
	if cat < 0 || cat >= numCategories || id == identity.None {
		return false
	}
	set := r.sets[cat]
	for _, existing := range set {
		if existing == id {
			return false
		}
	}
	if len(set) == cap(set) {
		if !r.degraded[cat] {
			r.degraded[cat] = true
			if r.onDegraded != nil {
				r.onDegraded(cat)
			}
		}
		return false
	}
	r.sets[cat] = append(set, id)
	return true
}

// IsRegistered reports whether id was registered in the category this
// frame.
func (r *Registry) IsRegistered(cat Category, id identity.ID) bool {
	if cat < 0 || cat >= numCategories || id == identity.None {
		return false
	}
	for _, existing := range r.sets[cat] {
		if existing == id {
			return true
		}
	}
	return false
}

// Count returns the number of identities registered in the category this
// frame.
func (r *Registry) Count(cat Category) int {
	if cat < 0 || cat >= numCategories {
		return 0
	}
	return len(r.sets[cat])
}

// FrameNumber returns the monotonic frame counter.
func (r *Registry) FrameNumber() uint64 {
	return r.frame
}

// Degraded reports whether the category overflowed its capacity this frame.
func (r *Registry) Degraded(cat Category) bool {
	if cat < 0 || cat >= numCategories {
		return false
	}
	return r.degraded[cat]
}
