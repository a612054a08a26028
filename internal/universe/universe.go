// Package universe ships the builtin namespace: a hand-authored model of the
// predeclared identifiers every Go program sees without importing anything.
// Predeclared types, functions, and constants are not first-class values at
// runtime, so their metadata is authored here rather than recovered through
// reflect. The set is closed and small, which keeps the authored table
// maintainable.
package universe

import (
	"github.com/jward/taxon/internal/namespace"
	"github.com/jward/taxon/internal/object"
)

// ModuleName is the origin module recorded for every predeclared identifier,
// matching the pseudo-package the toolchain documents them under.
const ModuleName = "builtin"

// Builtin returns a freshly populated namespace of the predeclared universe
// scope. Each call builds a new Namespace so callers may mutate their copy
// (for tests) without affecting others.
func Builtin() *namespace.Namespace {
	ns := namespace.New(ModuleName)
	for name, e := range entries {
		ns.Register(name, e)
	}
	return ns
}

// concrete returns an entry for an instantiable predeclared type.
func concrete(name, doc string) *object.Entity {
	return &object.Entity{
		RuntimeType: "type",
		Origin:      ModuleName,
		Type:        true,
		Callable:    true,
		Chain:       []string{name, object.UniversalBase},
		Docs:        doc,
		Value:       name,
	}
}

// iface returns an entry for a predeclared interface type, which cannot be
// instantiated directly.
func iface(name, doc string, attrs ...string) *object.Entity {
	chain := []string{name, object.UniversalBase}
	if name == object.UniversalBase {
		chain = []string{name}
	}
	return &object.Entity{
		RuntimeType: "type",
		Origin:      ModuleName,
		Type:        true,
		Callable:    false,
		Chain:       chain,
		Attrs:       attrs,
		Docs:        doc,
		Value:       name,
	}
}

// fn returns an entry for a predeclared function.
func fn(name, doc string) *object.Entity {
	return &object.Entity{
		RuntimeType: "func",
		Origin:      ModuleName,
		Callable:    true,
		Docs:        doc,
		Value:       name,
	}
}

// konst returns an entry for a predeclared constant or zero-value sentinel.
func konst(name, typeName, repr, doc string) *object.Entity {
	return &object.Entity{
		RuntimeType: typeName,
		Origin:      ModuleName,
		Docs:        doc,
		Value:       repr,
	}
}

var entries = map[string]*object.Entity{
	// Boolean, numeric, and string types.
	"bool":       concrete("bool", "The set of boolean truth values, true and false."),
	"byte":       concrete("byte", "Alias for uint8. Used, by convention, to distinguish byte values from 8-bit unsigned integers."),
	"complex64":  concrete("complex64", "The set of all complex numbers with float32 real and imaginary parts."),
	"complex128": concrete("complex128", "The set of all complex numbers with float64 real and imaginary parts."),
	"float32":    concrete("float32", "The set of all IEEE 754 32-bit floating-point numbers."),
	"float64":    concrete("float64", "The set of all IEEE 754 64-bit floating-point numbers."),
	"int":        concrete("int", "A signed integer type that is at least 32 bits in size. It is a distinct type, not an alias for int32 or int64."),
	"int8":       concrete("int8", "The set of all signed 8-bit integers, -128 through 127."),
	"int16":      concrete("int16", "The set of all signed 16-bit integers, -32768 through 32767."),
	"int32":      concrete("int32", "The set of all signed 32-bit integers, -2147483648 through 2147483647."),
	"int64":      concrete("int64", "The set of all signed 64-bit integers, -9223372036854775808 through 9223372036854775807."),
	"rune":       concrete("rune", "Alias for int32. Used, by convention, to distinguish character values from integer values."),
	"string":     concrete("string", "The set of all strings of 8-bit bytes, conventionally but not necessarily UTF-8 encoded.\n\nStrings are immutable: once created, the contents of a string cannot be changed."),
	"uint":       concrete("uint", "An unsigned integer type that is at least 32 bits in size. It is a distinct type, not an alias for uint32 or uint64."),
	"uint8":      concrete("uint8", "The set of all unsigned 8-bit integers, 0 through 255."),
	"uint16":     concrete("uint16", "The set of all unsigned 16-bit integers, 0 through 65535."),
	"uint32":     concrete("uint32", "The set of all unsigned 32-bit integers, 0 through 4294967295."),
	"uint64":     concrete("uint64", "The set of all unsigned 64-bit integers, 0 through 18446744073709551615."),
	"uintptr":    concrete("uintptr", "An integer type large enough to hold the bit pattern of any pointer."),

	// Interface types. error is the base exception type of this runtime.
	"any":        iface("any", "The interface satisfied by all types. Alias for the empty interface."),
	"comparable": iface("comparable", "The interface implemented by all comparable types. It may only be used as a type parameter constraint, not as the type of a variable."),
	"error":      iface("error", "The conventional interface for representing an error condition, with the nil value representing no error.", "Error"),

	// Predeclared functions.
	"append":  fn("append", "Appends elements to the end of a slice and returns the resulting slice.\n\nIf the slice has sufficient capacity, the destination is resliced in place; otherwise a new underlying array is allocated."),
	"cap":     fn("cap", "Returns the capacity of its argument, according to its type: the maximum a slice can reach on reslicing, the element count of an array, or the channel buffer capacity."),
	"clear":   fn("clear", "Deletes or zeroes all elements in a map, slice, or type parameter referring to one."),
	"close":   fn("close", "Closes a channel, which must be bidirectional or send-only. After the last sent value is received, receives yield the zero value without blocking."),
	"complex": fn("complex", "Constructs a complex value from two floating-point values of identical size."),
	"copy":    fn("copy", "Copies elements from a source slice into a destination slice (or bytes from a string), returning the number of elements copied."),
	"delete":  fn("delete", "Deletes the element with the specified key from a map. If the map is nil or there is no such element, delete is a no-op."),
	"imag":    fn("imag", "Returns the imaginary part of a complex value."),
	"len":     fn("len", "Returns the length of its argument, according to its type: string bytes, array or slice elements, map keys, or values queued in a channel."),
	"make":    fn("make", "Allocates and initializes an object of type slice, map, or channel. Unlike new, make returns the type itself, not a pointer to it.\n\nThe size arguments depend on the type: slice length and optional capacity, map size hint, or channel buffer capacity."),
	"max":     fn("max", "Returns the largest of a fixed number of arguments of ordered types."),
	"min":     fn("min", "Returns the smallest of a fixed number of arguments of ordered types."),
	"new":     fn("new", "Allocates memory for a value of the given type, zeroes it, and returns a pointer to it."),
	"panic":   fn("panic", "Stops normal execution of the current goroutine, running deferred functions outward until recovered or the program crashes."),
	"print":   fn("print", "Formats its arguments in an implementation-specific way and writes the result to standard error. Useful for bootstrapping and debugging; not guaranteed to stay in the language."),
	"println": fn("println", "Like print, but adds spaces between operands and a trailing newline."),
	"real":    fn("real", "Returns the real part of a complex value."),
	"recover": fn("recover", "Manages behavior of a panicking goroutine. Inside a deferred function, recover stops the panic and returns the value passed to panic."),

	// Singleton constants. Identity, not structural equality, is the basis
	// of comparison for these names.
	"true":  konst("true", "bool", "true", "The boolean truth value, 1 == 1."),
	"false": konst("false", "bool", "false", "The boolean falsehood value, 1 != 1."),
	"iota":  konst("iota", "untyped int", "0", "The untyped integer ordinal of the current const specification within its const block, starting at zero."),
	"nil":   konst("nil", "untyped nil", "nil", "The zero value for a pointer, channel, func, interface, map, or slice type."),
}
