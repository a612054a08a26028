package taxon

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jward/taxon/internal/namespace"
)

// Caller-visible miss outcomes. Both are recoverable: the caller decides how
// to present them. Test with errors.Is.
var (
	ErrNameNotFound    = errors.New("name not found in namespace")
	ErrUnknownCategory = errors.New("unknown category label")
)

const (
	defaultMaxDocLines   = 3
	defaultMethodListCap = 10
	defaultCacheSize     = 256
)

// Engine runs the inspection pipeline over one namespace: enumerate, then
// classify into an Index, then build per-object descriptions on demand
// through an LRU cache. The pipeline is read-only, single-threaded, and
// idempotent: repeated Inspect calls over an unchanged namespace yield
// identical results.
type Engine struct {
	ns            *namespace.Namespace
	maxDocLines   int
	methodListCap int
	cacheSize     int
	cache         *lru.Cache[string, *Description]
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDocLines bounds the documentation excerpt to n lines.
func WithMaxDocLines(n int) Option {
	return func(e *Engine) { e.maxDocLines = n }
}

// WithMethodListCap bounds the displayed method lists of class descriptions
// to n names each. The recorded counts always reflect the true totals.
func WithMethodListCap(n int) Option {
	return func(e *Engine) { e.methodListCap = n }
}

// WithCacheSize sets the description cache capacity.
func WithCacheSize(n int) Option {
	return func(e *Engine) { e.cacheSize = n }
}

// New creates an Engine over the given namespace.
func New(ns *Namespace, opts ...Option) *Engine {
	e := &Engine{
		ns:            ns,
		maxDocLines:   defaultMaxDocLines,
		methodListCap: defaultMethodListCap,
		cacheSize:     defaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheSize <= 0 {
		e.cacheSize = defaultCacheSize
	}
	// lru.New only errors on a non-positive size, which is guarded above.
	e.cache, _ = lru.New[string, *Description](e.cacheSize)
	return e
}

// Index is the sole output of one classification pass: every enumerated name
// in lexicographic order, the category-indexed name lists, and the resolved
// objects for later description queries. It is an explicit value threaded
// through the query API, not ambient state; rerunning Inspect builds a fresh
// one.
type Index struct {
	namespace  string
	names      []string
	byCategory map[Category][]string
	objects    map[string]Object
}

// Inspect enumerates the namespace and classifies every resolved object.
// Names whose resolution fails are dropped by the enumerator; everything
// else receives exactly one category.
func (e *Engine) Inspect() *Index {
	idx := &Index{
		namespace:  e.ns.Name(),
		byCategory: make(map[Category][]string),
		objects:    make(map[string]Object),
	}
	for _, b := range e.ns.Enumerate() {
		cat := Classify(b.Name, b.Object)
		idx.names = append(idx.names, b.Name)
		idx.byCategory[cat] = append(idx.byCategory[cat], b.Name)
		idx.objects[b.Name] = b.Object
	}
	return idx
}

// Summary reports the total object count and the per-category counts in
// fixed Category enumeration order.
func (idx *Index) Summary() Summary {
	s := Summary{Namespace: idx.namespace, Total: len(idx.names)}
	for _, cat := range Categories {
		s.Counts = append(s.Counts, CategoryCount{Category: cat, Count: len(idx.byCategory[cat])})
	}
	return s
}

// AllNames returns every classified name in lexicographic order.
func (idx *Index) AllNames() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)
	return out
}

// ParseCategory validates a category label against the fixed set. Labels are
// case-sensitive and matched exactly.
func ParseCategory(label string) (Category, error) {
	for _, cat := range Categories {
		if string(cat) == label {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}

// Names returns the ordered names assigned to the labeled category, or an
// ErrUnknownCategory miss for a label outside the fixed set.
func (idx *Index) Names(label string) ([]string, error) {
	cat, err := ParseCategory(label)
	if err != nil {
		return nil, err
	}
	names := idx.byCategory[cat]
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Describe returns the description for one name, building and caching it on
// first use. A name absent from the index is an ErrNameNotFound miss.
func (e *Engine) Describe(idx *Index, name string) (*Description, error) {
	obj, ok := idx.objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	if d, ok := e.cache.Get(name); ok {
		return d, nil
	}
	d := e.buildDescription(name, obj, Classify(name, obj))
	e.cache.Add(name, d)
	return d, nil
}

// DescribeAll returns every description, grouped in fixed Category order and
// lexicographic within each category.
func (e *Engine) DescribeAll(idx *Index) []*Description {
	out := make([]*Description, 0, len(idx.names))
	for _, cat := range Categories {
		for _, name := range idx.byCategory[cat] {
			d, err := e.Describe(idx, name)
			if err != nil {
				continue // unreachable: every indexed name resolves
			}
			out = append(out, d)
		}
	}
	return out
}
