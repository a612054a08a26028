// Package object defines the reflection facade the classifier operates on.
// An Object exposes exactly the type facts the classification rules need:
// type identity, supertype-chain membership, callability, attribute listing,
// and documentation. Two implementations exist: Entity, a hand-authored
// metadata record for namespace members that are not first-class values at
// runtime, and the live-value adapter returned by FromValue.
package object

import "sort"

// Object is the minimal capability surface for one inspectable namespace
// member. Implementations must be read-only: no method may mutate the
// underlying entity.
type Object interface {
	// TypeName is the runtime-type name of the object itself ("type" for
	// type objects, "func" or a signature for callables, the value's own
	// type name otherwise).
	TypeName() string

	// Module is the origin package of the object. Empty when the object
	// does not declare one; callers default it to the namespace's module.
	Module() string

	// IsType reports whether the object is itself a type rather than an
	// instance.
	IsType() bool

	// IsCallable reports whether the object can be invoked. Type objects
	// that support instantiation are callable.
	IsCallable() bool

	// SubtypeOf reports whether the named type appears in this object's
	// supertype chain. Always false for non-types.
	SubtypeOf(name string) bool

	// Supertypes is the linearized supertype chain from the type itself
	// (first element) to the universal base type (last element), in the
	// runtime's own resolution order, without deduplication. Empty for
	// non-types.
	Supertypes() []string

	// AttributeNames is the sorted list of the type's own attribute names
	// (methods and fields). Empty for non-types.
	AttributeNames() []string

	// Doc is the raw documentation text, or "" when none exists.
	Doc() string

	// Repr is the printable representation of the object.
	Repr() string
}

// Entity is a hand-authored Object. The builtin universe is populated with
// Entities because its members (predeclared types, functions, and constants)
// cannot be taken as values and inspected through reflect.
type Entity struct {
	RuntimeType string   // runtime-type name of the entity itself
	Origin      string   // declaring package
	Type        bool     // the entity is a type, not an instance
	Callable    bool
	Chain       []string // supertype chain, most-derived first
	Attrs       []string // own attribute names
	Docs        string
	Value       string   // printable representation
}

func (e *Entity) TypeName() string { return e.RuntimeType }
func (e *Entity) Module() string   { return e.Origin }
func (e *Entity) IsType() bool     { return e.Type }
func (e *Entity) IsCallable() bool { return e.Callable }
func (e *Entity) Doc() string      { return e.Docs }
func (e *Entity) Repr() string     { return e.Value }

func (e *Entity) SubtypeOf(name string) bool {
	if !e.Type {
		return false
	}
	for _, s := range e.Chain {
		if s == name {
			return true
		}
	}
	return false
}

func (e *Entity) Supertypes() []string {
	if !e.Type {
		return nil
	}
	out := make([]string, len(e.Chain))
	copy(out, e.Chain)
	return out
}

func (e *Entity) AttributeNames() []string {
	if !e.Type {
		return nil
	}
	out := make([]string, len(e.Attrs))
	copy(out, e.Attrs)
	sort.Strings(out)
	return out
}
