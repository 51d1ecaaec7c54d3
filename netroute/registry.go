package netroute

import "sync"

// Registry maps net names to their latest Route.
// Iteration follows first-insertion order; re-routing a name replaces the
// entry in place. All methods are safe for concurrent use, and every value
// handed out is a copy.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	routes map[string]Route
}

func newRegistry() *Registry {
	return &Registry{routes: make(map[string]Route)}
}

// put stores r under r.Net, replacing any previous entry.
func (reg *Registry) put(r Route) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.routes[r.Net]; !ok {
		reg.order = append(reg.order, r.Net)
	}
	reg.routes[r.Net] = r.Clone()
}

// Get returns the route stored for name.
func (reg *Registry) Get(name string) (Route, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.routes[name]
	if !ok {
		return Route{}, false
	}
	return r.Clone(), true
}

// Routes returns a snapshot of every stored route in insertion order.
func (reg *Registry) Routes() []Route {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	out := make([]Route, 0, len(reg.order))
	for _, name := range reg.order {
		out = append(out, reg.routes[name].Clone())
	}
	return out
}

// Names returns the stored net names in insertion order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return append([]string(nil), reg.order...)
}

// Len returns the number of stored routes.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return len(reg.order)
}
