package object

import (
	"fmt"
	"reflect"
	"sort"
)

// UniversalBase is the name every supertype chain terminates at.
const UniversalBase = "any"

// ExceptionBase is the base exception type of this runtime: any type whose
// chain reaches it, or that satisfies it as an interface, files as an
// exception type.
const ExceptionBase = "error"

var errorInterface = reflect.TypeOf((*error)(nil)).Elem()

// Option configures the live-value adapter returned by FromValue.
type Option func(*value)

// WithDoc attaches documentation text. Go values carry no documentation at
// runtime, so the namespace supplies it at registration time. Absent doc is
// the empty string.
func WithDoc(doc string) Option {
	return func(v *value) { v.doc = doc }
}

// WithModule overrides the origin package reported for the object.
func WithModule(module string) Option {
	return func(v *value) { v.module = module }
}

// FromValue adapts a live Go value into an Object via package reflect.
// A reflect.Type argument becomes a type object; anything else is inspected
// as an instance.
func FromValue(v any, opts ...Option) Object {
	obj := &value{}
	if t, ok := v.(reflect.Type); ok {
		obj.typ = t
	} else if v != nil {
		obj.val = reflect.ValueOf(v)
	}
	for _, opt := range opts {
		opt(obj)
	}
	return obj
}

// value is the reflect-backed Object implementation.
type value struct {
	typ    reflect.Type  // non-nil when the object is itself a type
	val    reflect.Value // invalid when typ is set or the value is nil
	doc    string
	module string
}

func (o *value) TypeName() string {
	if o.typ != nil {
		return "type"
	}
	if !o.val.IsValid() {
		return "nil"
	}
	t := o.val.Type()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func (o *value) Module() string {
	if o.module != "" {
		return o.module
	}
	if o.typ != nil {
		return o.typ.PkgPath()
	}
	if !o.val.IsValid() {
		return ""
	}
	return o.val.Type().PkgPath()
}

func (o *value) IsType() bool { return o.typ != nil }

func (o *value) IsCallable() bool {
	if o.typ != nil {
		return true // type objects support instantiation
	}
	return o.val.IsValid() && o.val.Kind() == reflect.Func
}

func (o *value) SubtypeOf(name string) bool {
	if o.typ == nil {
		return false
	}
	if name == UniversalBase {
		return true
	}
	for _, s := range o.Supertypes() {
		if s == name {
			return true
		}
	}
	// Interface satisfaction counts as subtyping for the base error type.
	if name == ExceptionBase {
		return o.typ.Implements(errorInterface) ||
			(o.typ.Kind() != reflect.Interface && reflect.PointerTo(o.typ).Implements(errorInterface))
	}
	return false
}

// Supertypes walks the embedded-type graph in declaration order, the order
// the runtime itself uses for method promotion. Each type appears once: a
// type already on the chain is not descended into again, which both mirrors
// how method promotion resolves depth ties and terminates self-referential
// embeddings.
func (o *value) Supertypes() []string {
	if o.typ == nil {
		return nil
	}
	seen := map[reflect.Type]bool{o.typ: true}
	chain := []string{typeLabel(o.typ)}
	chain = appendEmbedded(chain, o.typ, seen)
	return append(chain, UniversalBase)
}

func appendEmbedded(chain []string, t reflect.Type, seen map[reflect.Type]bool) []string {
	if t.Kind() != reflect.Struct {
		return chain
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if seen[ft] {
			continue
		}
		seen[ft] = true
		chain = append(chain, typeLabel(ft))
		chain = appendEmbedded(chain, ft, seen)
	}
	return chain
}

// AttributeNames merges the method sets of T and *T with T's field names.
// Pointer-receiver methods would otherwise be invisible on the value type.
func (o *value) AttributeNames() []string {
	if o.typ == nil {
		return nil
	}
	seen := make(map[string]bool)
	collect := func(t reflect.Type) {
		for i := 0; i < t.NumMethod(); i++ {
			seen[t.Method(i).Name] = true
		}
	}
	collect(o.typ)
	if o.typ.Kind() != reflect.Interface {
		collect(reflect.PointerTo(o.typ))
	}
	if o.typ.Kind() == reflect.Struct {
		for i := 0; i < o.typ.NumField(); i++ {
			seen[o.typ.Field(i).Name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o *value) Doc() string { return o.doc }

func (o *value) Repr() string {
	if o.typ != nil {
		return o.typ.String()
	}
	if !o.val.IsValid() {
		return "nil"
	}
	return fmt.Sprintf("%v", o.val.Interface())
}

func typeLabel(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
