package xmlname

import (
	"hash/fnv"
	"sync"

	"github.com/jacoelho/xmlname/internal/ncname"
)

// Namespace is the canonical handle for a namespace URI.
//
// Handles are created exclusively by a Registry. Within one registry, two
// handles denote the same namespace iff they are the same pointer. A handle
// is immutable and owns the cache of qualified names scoped to it.
type Namespace struct {
	uri  string
	hash uint64

	mu    sync.RWMutex
	names map[string]*Name
}

func newNamespace(uri string) *Namespace {
	return &Namespace{
		uri:   uri,
		hash:  hashString(uri),
		names: make(map[string]*Name),
	}
}

// URI returns the namespace URI.
func (ns *Namespace) URI() string {
	return ns.uri
}

// String returns the namespace URI.
func (ns *Namespace) String() string {
	return ns.uri
}

// IsEmpty reports whether the handle denotes "no namespace".
func (ns *Namespace) IsEmpty() bool {
	return ns.uri == ""
}

// Equal reports whether other is the same interned namespace.
func (ns *Namespace) Equal(other *Namespace) bool {
	return ns == other
}

// Hash returns the precomputed hash of the namespace URI.
func (ns *Namespace) Hash() uint64 {
	return ns.hash
}

// Name returns the canonical handle for local scoped to the namespace,
// creating it on first request. local must be a valid NCName; otherwise an
// *InvalidLocalNameError is returned.
//
// Every call with an equal local name returns the same handle for the
// lifetime of the namespace, including concurrent first requests.
func (ns *Namespace) Name(local string) (*Name, error) {
	ns.mu.RLock()
	n, ok := ns.names[local]
	ns.mu.RUnlock()
	if ok {
		return n, nil
	}

	// validate only on a miss; cached handles were validated at insert
	if !ncname.Valid(local) {
		return nil, &InvalidLocalNameError{Local: local}
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()
	if n, ok := ns.names[local]; ok {
		return n, nil
	}
	n = &Name{
		ns:    ns,
		local: local,
		hash:  ns.hash ^ hashString(local),
	}
	ns.names[local] = n
	return n, nil
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
