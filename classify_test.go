package taxon

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/taxon/internal/universe"
)

// parseError is a synthetic exception type: a type that also satisfies the
// base exception interface.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

type widget struct{}

func (widget) Show() {}

func TestClassify_ExceptionBeforeClass(t *testing.T) {
	// An exception type is also a type; rule 2 must win over rule 3.
	obj := FromValue(reflect.TypeOf(parseError{}))
	require.True(t, obj.IsType())
	require.True(t, obj.SubtypeOf("error"))

	assert.Equal(t, CategoryException, Classify("parseError", obj))
}

func TestClassify_TypeBeforeCallable(t *testing.T) {
	// Type objects are callable too; type-ness is checked first.
	obj := FromValue(reflect.TypeOf(widget{}))
	require.True(t, obj.IsCallable())

	assert.Equal(t, CategoryClass, Classify("widget", obj))
}

func TestClassify_Function(t *testing.T) {
	obj := FromValue(func(s string) int { return len(s) })
	assert.Equal(t, CategoryFunction, Classify("strlen", obj))
}

func TestClassify_Other(t *testing.T) {
	obj := FromValue(42)
	assert.Equal(t, CategoryOther, Classify("answer", obj))
}

func TestClassify_SentinelWinsOverEverything(t *testing.T) {
	// Rule 1 matches on the bound name; even a type bound to a sentinel
	// name files as Constant.
	obj := FromValue(reflect.TypeOf(widget{}))
	assert.Equal(t, CategoryConstant, Classify("nil", obj))
}

func TestClassify_PartitionsNamespace(t *testing.T) {
	// Every enumerated name gets exactly one category; the buckets cover
	// the namespace with no overlap and no omission.
	e := New(universe.Builtin())
	idx := e.Inspect()

	seen := make(map[string]Category)
	total := 0
	for _, cat := range Categories {
		names, err := idx.Names(string(cat))
		require.NoError(t, err)
		total += len(names)
		for _, name := range names {
			prev, dup := seen[name]
			require.False(t, dup, "%s assigned to both %s and %s", name, prev, cat)
			seen[name] = cat
		}
	}

	all := idx.AllNames()
	assert.Equal(t, len(all), total)
	for _, name := range all {
		assert.Contains(t, seen, name)
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(string(cat))
		require.NoError(t, err)
		assert.Equal(t, cat, got)
	}

	// Labels are case-sensitive and matched exactly.
	_, err := ParseCategory("function")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	_, err = ParseCategory("Exception Class")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
