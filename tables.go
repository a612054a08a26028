package taxon

// Static lookup data consumed by the classifier and descriptors. These
// tables are declarative configuration, kept apart from the rule chain so
// they can be extended without touching control flow.

// protocolAssociations maps a builtin function name to the single interface
// method it delegates to. Functions absent from the table simply omit the
// association; absence is not an error.
var protocolAssociations = map[string]string{
	"len":   "Len",
	"cap":   "Cap",
	"close": "Close",
}

// ProtocolMethodFor returns the protocol method associated with a builtin
// function name, if any.
func ProtocolMethodFor(name string) (string, bool) {
	m, ok := protocolAssociations[name]
	return m, ok
}

// sentinelNotes documents the singleton constants, keyed by bound name. The
// namespace binds each of these names to a single runtime value whose
// identity, not structural equality, is the basis of comparison. Membership
// in this table is classification rule 1.
var sentinelNotes = map[string]string{
	"true":  "Singleton truth value. Every occurrence denotes the same untyped boolean constant; comparison is by identity.",
	"false": "Singleton falsehood value. Every occurrence denotes the same untyped boolean constant; comparison is by identity.",
	"nil":   "The no-value sentinel. nil compares equal only to itself and to zero-valued nilable types; it has no type of its own.",
	"iota":  "Positional sentinel inside const blocks. Its identity is fixed; only its ordinal meaning varies with position.",
}

// SentinelNote returns the explanatory note for a sentinel name, and whether
// the name denotes a sentinel at all.
func SentinelNote(name string) (string, bool) {
	note, ok := sentinelNotes[name]
	return note, ok
}

// protocolMethods is the fixed set of well-known interface method names.
// An exported attribute with one of these names files into the special
// (protocol) partition of a class description; syntax or standard-library
// machinery invokes these implicitly (fmt looks for String and Error, sort
// for Len/Less/Swap, io for Read/Write/Close, errors for Unwrap/Is/As).
var protocolMethods = map[string]bool{
	"String":        true,
	"GoString":      true,
	"Error":         true,
	"Format":        true,
	"Len":           true,
	"Less":          true,
	"Swap":          true,
	"Cap":           true,
	"Close":         true,
	"Read":          true,
	"Write":         true,
	"Unwrap":        true,
	"Is":            true,
	"As":            true,
	"Equal":         true,
	"Compare":       true,
	"MarshalJSON":   true,
	"UnmarshalJSON": true,
	"MarshalText":   true,
	"UnmarshalText": true,
}
