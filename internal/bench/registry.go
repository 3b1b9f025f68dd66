package bench

import "sync"

var (
	registryMu sync.Mutex
	registry   []Case
)

// Register adds a case to the package registry. Case packages call it
// from init, the same way database/sql drivers register themselves.
func Register(c Case) {
	if c == nil {
		panic("bench: Register case is nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, c)
}

// Registered returns the registered cases in registration order.
func Registered() []Case {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Case, len(registry))
	copy(out, registry)
	return out
}
