// File: internal/tour/registry.go
package tour

import (
	"net/url"
)

// Registry maps literal trigger values to walkthroughs. The trigger value is
// always passed in explicitly by the caller; the engine never reads ambient
// state to pick a tour.
type Registry struct {
	byKey map[string]Walkthrough
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Walkthrough)}
}

// Register adds a walkthrough under its key. A later registration with the
// same key replaces the earlier one.
func (r *Registry) Register(w Walkthrough) {
	if _, exists := r.byKey[w.Key]; !exists {
		r.order = append(r.order, w.Key)
	}
	r.byKey[w.Key] = w
}

// Lookup returns the walkthrough for a trigger value. Unrecognized values
// select nothing.
func (r *Registry) Lookup(key string) (Walkthrough, bool) {
	w, ok := r.byKey[key]
	return w, ok
}

// Walkthroughs returns the registered walkthroughs in registration order.
func (r *Registry) Walkthroughs() []Walkthrough {
	out := make([]Walkthrough, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out
}

// TriggerFromURL extracts the trigger value from the named query parameter of
// rawURL. An unparseable URL or absent parameter yields the empty string,
// which no registry key matches.
func TriggerFromURL(rawURL, param string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(param)
}
