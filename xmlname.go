// Package xmlname provides interned qualified names for XML document models.
//
// A Registry produces exactly one *Namespace handle per distinct namespace
// URI and exactly one *Name handle per distinct (namespace, local name) pair.
// Because handles are canonical, name equality is pointer identity: comparing
// two names never compares strings, and handles work directly as map keys.
//
// Registries are explicit rather than a package-level singleton so that
// applications can share one registry process-wide while tests build isolated
// ones. Handles from different registries are never equal.
package xmlname

import "sync"

// Registry interns namespace and qualified-name handles.
//
// All methods are safe for concurrent use. Entries are never evicted; callers
// are expected to draw from a bounded vocabulary of names rather than
// generate unbounded unique strings.
type Registry struct {
	mu         sync.RWMutex
	namespaces map[string]*Namespace
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{namespaces: make(map[string]*Namespace)}
}

// Namespace returns the canonical handle for uri, creating it on first
// request. The empty string denotes "no namespace". The URI is an opaque
// identifier; no syntax validation is performed and the call never fails.
//
// Every call with an equal uri returns the same handle for the lifetime of
// the registry, including concurrent first requests.
func (r *Registry) Namespace(uri string) *Namespace {
	r.mu.RLock()
	ns, ok := r.namespaces[uri]
	r.mu.RUnlock()
	if ok {
		return ns
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ns, ok := r.namespaces[uri]; ok {
		return ns
	}
	ns = newNamespace(uri)
	r.namespaces[uri] = ns
	return ns
}
