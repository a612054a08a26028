package taxon

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gadget struct {
	Visible bool
	label   string
}

func (gadget) Show()          {}
func (gadget) Hide()          {}
func (gadget) String() string { return "gadget" }
func (*gadget) Reset()        {}

// explodingObject simulates an object with corrupt metadata: supertype
// extraction panics.
type explodingObject struct{}

func (explodingObject) TypeName() string         { return "type" }
func (explodingObject) Module() string           { return "demo" }
func (explodingObject) IsType() bool             { return true }
func (explodingObject) IsCallable() bool         { return true }
func (explodingObject) SubtypeOf(string) bool    { return false }
func (explodingObject) Supertypes() []string     { panic("corrupt metadata") }
func (explodingObject) AttributeNames() []string { return nil }
func (explodingObject) Doc() string              { return "" }
func (explodingObject) Repr() string             { return "" }

func newTestEngine(t *testing.T, ns *Namespace, opts ...Option) *Engine {
	t.Helper()
	return New(ns, opts...)
}

func TestPartitionAttributes_RoundTrip(t *testing.T) {
	obj := FromValue(reflect.TypeOf(gadget{}))
	attrs := obj.AttributeNames()
	require.NotEmpty(t, attrs)

	public, special := partitionAttributes(attrs)

	// Reconstruct the discarded set and check the three groups partition
	// the full attribute set with no duplicates across groups.
	inPublic := make(map[string]bool)
	for _, name := range public {
		inPublic[name] = true
	}
	inSpecial := make(map[string]bool)
	for _, name := range special {
		require.False(t, inPublic[name], "%s in both partitions", name)
		inSpecial[name] = true
	}

	var discarded []string
	for _, name := range attrs {
		if !inPublic[name] && !inSpecial[name] {
			discarded = append(discarded, name)
		}
	}

	assert.Equal(t, len(attrs), len(public)+len(special)+len(discarded))
	assert.Equal(t, []string{"Hide", "Reset", "Show", "Visible"}, public)
	assert.Equal(t, []string{"String"}, special)
	assert.Equal(t, []string{"label"}, discarded)
}

func TestDescribe_MethodListCap(t *testing.T) {
	ns := NewNamespace("demo")
	ns.Register("gadget", FromValue(reflect.TypeOf(gadget{})))

	e := newTestEngine(t, ns, WithMethodListCap(2))
	idx := e.Inspect()

	d, err := e.Describe(idx, "gadget")
	require.NoError(t, err)
	assert.Equal(t, CategoryClass, d.Category)

	// Displayed list is capped; the count records the true total.
	assert.Equal(t, []string{"Hide", "Reset"}, d.PublicMethods)
	assert.Equal(t, 4, d.PublicMethodCount)
	assert.Equal(t, []string{"String"}, d.SpecialMethods)
	assert.Equal(t, 1, d.SpecialMethodCount)
}

func TestDescribe_ModuleDefaultsToNamespace(t *testing.T) {
	ns := NewNamespace("demo")
	ns.Register("answer", FromValue(42))

	e := newTestEngine(t, ns)
	idx := e.Inspect()

	d, err := e.Describe(idx, "answer")
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, d.Category)
	assert.Equal(t, "demo", d.Module)
	assert.Equal(t, "42", d.Repr)
}

func TestDescribe_StubOnFailure(t *testing.T) {
	ns := NewNamespace("demo")
	ns.Register("broken", explodingObject{})
	ns.Register("answer", FromValue(42))

	e := newTestEngine(t, ns)
	idx := e.Inspect()

	// The broken item degrades to a stub; it does not abort the batch.
	d, err := e.Describe(idx, "broken")
	require.NoError(t, err)
	assert.Equal(t, "broken", d.Name)
	assert.Equal(t, CategoryClass, d.Category)
	assert.Contains(t, d.Note, "inspection failed")

	all := e.DescribeAll(idx)
	assert.Len(t, all, 2)
}

func TestDescribe_FunctionDoc(t *testing.T) {
	ns := NewNamespace("demo")
	ns.Register("greet", FromValue(func() {}, WithDoc("Greets the caller.\nSecond line.\n\nDropped paragraph.")))

	e := newTestEngine(t, ns, WithMaxDocLines(2))
	idx := e.Inspect()

	d, err := e.Describe(idx, "greet")
	require.NoError(t, err)
	assert.Equal(t, CategoryFunction, d.Category)
	assert.True(t, d.Callable)
	assert.Equal(t, "Greets the caller. Second line.", d.Doc)
	assert.Empty(t, d.ProtocolMethod)
}

func TestCapList(t *testing.T) {
	names := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, capList(names, 2))
	assert.Equal(t, names, capList(names, 3))
	assert.Equal(t, names, capList(names, 10))
	assert.Equal(t, names, capList(names, 0)) // non-positive disables the cap
}
