package taxon

import (
	"github.com/jward/taxon/internal/namespace"
	"github.com/jward/taxon/internal/object"
)

// Public type aliases for internal types used in the Engine API. These are
// Go type aliases (=) — identical to the internal types at compile time, so
// external consumers can build custom namespaces without importing internal
// packages.

type Object = object.Object
type Entity = object.Entity
type Namespace = namespace.Namespace
type Binding = namespace.Binding
type Resolver = namespace.Resolver

// NewNamespace creates an empty custom namespace.
func NewNamespace(name string) *Namespace { return namespace.New(name) }

// FromValue adapts a live Go value into an inspectable Object.
func FromValue(v any, opts ...object.Option) Object { return object.FromValue(v, opts...) }

// WithDoc attaches documentation to an object built with FromValue.
func WithDoc(doc string) object.Option { return object.WithDoc(doc) }

// WithModule overrides the origin module of an object built with FromValue.
func WithModule(module string) object.Option { return object.WithModule(module) }

// Category is the closed set of classification outcomes. Every inspected
// object is assigned exactly one Category.
type Category string

const (
	CategoryFunction  Category = "Function"
	CategoryClass     Category = "Class"
	CategoryException Category = "ExceptionClass"
	CategoryConstant  Category = "Constant"
	CategoryOther     Category = "Other"
)

// Categories is the fixed enumeration order used by summaries and the
// describe-all listing.
var Categories = []Category{
	CategoryFunction,
	CategoryClass,
	CategoryException,
	CategoryConstant,
	CategoryOther,
}

// Description is the immutable, category-tagged record built for one
// namespace member. Category-specific fields are zero-valued for the
// categories that do not use them.
type Description struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	TypeName string   `json:"type"`
	Module   string   `json:"module,omitempty"`
	Callable bool     `json:"callable"`
	Doc      string   `json:"doc,omitempty"`

	// Function: the protocol method this builtin delegates to, when the
	// name appears in the association table. Absence is not an error.
	ProtocolMethod string `json:"protocol_method,omitempty"`

	// Class and ExceptionClass: the full linearized supertype chain and
	// the method partition. Method lists are display-capped; the counts
	// record the true totals.
	Supertypes         []string `json:"supertypes,omitempty"`
	PublicMethods      []string `json:"public_methods,omitempty"`
	PublicMethodCount  int      `json:"public_method_count,omitempty"`
	SpecialMethods     []string `json:"special_methods,omitempty"`
	SpecialMethodCount int      `json:"special_method_count,omitempty"`

	// Constant and Other: printable representation. Constants also carry
	// the explanatory note from the sentinel table; a stub description
	// reuses Note for its failure marker.
	Repr string `json:"repr,omitempty"`
	Note string `json:"note,omitempty"`
}

// CategoryCount pairs a category with its member count.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Summary reports total and per-category counts, in fixed Category order.
type Summary struct {
	Namespace string          `json:"namespace"`
	Total     int             `json:"total"`
	Counts    []CategoryCount `json:"counts"`
}
