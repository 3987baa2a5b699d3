package xmlname

// Name is the canonical handle for a qualified (namespace URI, local name)
// pair.
//
// Handles are created exclusively through a Namespace, so within one registry
// two names are semantically equal iff they are the same pointer. That makes
// comparison O(1) and lets names serve directly as map keys.
type Name struct {
	ns    *Namespace
	local string
	hash  uint64
}

// Namespace returns the interned namespace the name is scoped to.
func (n *Name) Namespace() *Namespace {
	return n.ns
}

// Local returns the local part of the name.
func (n *Name) Local() string {
	return n.local
}

// Equal reports whether other is the same interned name.
func (n *Name) Equal(other *Name) bool {
	return n == other
}

// Hash returns the hash precomputed at creation as the XOR of the namespace
// hash and the local-name hash. It is stable for the lifetime of the handle
// and consistent with equality.
func (n *Name) Hash() uint64 {
	return n.hash
}

// String returns the name as an expanded name: {namespaceURI}localName, or
// the bare local name when the namespace is empty.
func (n *Name) String() string {
	if n.ns.IsEmpty() {
		return n.local
	}
	return "{" + n.ns.uri + "}" + n.local
}
