package taxon

import "github.com/jward/taxon/internal/object"

// Classify assigns exactly one Category to a resolved object. The rule chain
// is evaluated in fixed precedence; first match wins:
//
//  1. The name is bound to a known singleton sentinel → Constant.
//  2. The object is a type and a subtype of the base exception type →
//     ExceptionClass.
//  3. The object is a type → Class.
//  4. The object is callable (but not a type) → Function.
//  5. Otherwise → Other.
//
// Rule 2 must run strictly before rule 3: an exception type is also a type,
// and checking the general case first would file every exception as a plain
// Class. Likewise type-ness is checked before callability, since type
// objects that support instantiation are callable too.
func Classify(name string, obj Object) Category {
	if _, ok := SentinelNote(name); ok {
		return CategoryConstant
	}
	if obj.IsType() {
		if obj.SubtypeOf(object.ExceptionBase) {
			return CategoryException
		}
		return CategoryClass
	}
	if obj.IsCallable() {
		return CategoryFunction
	}
	return CategoryOther
}
