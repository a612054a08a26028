// Package namespace models the fixed collection of names pre-bound in a
// runtime scope. A Namespace is a read-only registry once populated:
// enumeration is deterministic (lexicographic, deduplicated) so repeated
// inspection runs are reproducible.
package namespace

import (
	"sort"

	"github.com/jward/taxon/internal/object"
)

// Resolver defers binding a name to its object until enumeration time.
// A resolver that errors marks the name stale; stale names are dropped from
// the enumeration, never surfaced as failures.
type Resolver func() (object.Object, error)

// Binding is one enumerated (name, object) pair.
type Binding struct {
	Name   string
	Object object.Object
}

// Namespace is a named registry of inspectable objects.
type Namespace struct {
	name     string
	bound    map[string]object.Object
	deferred map[string]Resolver
}

// New creates an empty Namespace. The name doubles as the default origin
// module for members that do not declare one.
func New(name string) *Namespace {
	return &Namespace{
		name:     name,
		bound:    make(map[string]object.Object),
		deferred: make(map[string]Resolver),
	}
}

// Name returns the namespace's module name.
func (n *Namespace) Name() string { return n.name }

// Register binds name to an already-resolved object. Re-registering a name
// replaces the previous binding.
func (n *Namespace) Register(name string, obj object.Object) {
	delete(n.deferred, name)
	n.bound[name] = obj
}

// RegisterResolver binds name to a deferred resolver.
func (n *Namespace) RegisterResolver(name string, r Resolver) {
	delete(n.bound, name)
	n.deferred[name] = r
}

// Names returns every registered name, deduplicated and lexicographically
// sorted. Deferred names are included even if their resolver would fail;
// only Enumerate drops stale names.
func (n *Namespace) Names() []string {
	names := make([]string, 0, len(n.bound)+len(n.deferred))
	for name := range n.bound {
		names = append(names, name)
	}
	for name := range n.deferred {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the object bound to name. The second result is false when
// the name is unknown or its resolver fails.
func (n *Namespace) Resolve(name string) (object.Object, bool) {
	if obj, ok := n.bound[name]; ok {
		return obj, true
	}
	if r, ok := n.deferred[name]; ok {
		obj, err := r()
		if err != nil {
			return nil, false
		}
		return obj, true
	}
	return nil, false
}

// Enumerate resolves every registered name in sorted order. Names whose
// resolver fails are dropped; a single stale entry must not abort the run.
func (n *Namespace) Enumerate() []Binding {
	names := n.Names()
	bindings := make([]Binding, 0, len(names))
	for _, name := range names {
		obj, ok := n.Resolve(name)
		if !ok {
			continue
		}
		bindings = append(bindings, Binding{Name: name, Object: obj})
	}
	return bindings
}
