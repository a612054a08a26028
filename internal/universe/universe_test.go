package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/taxon/internal/object"
)

func TestBuiltin_CoversUniverseScope(t *testing.T) {
	ns := Builtin()
	assert.Equal(t, ModuleName, ns.Name())

	names := ns.Names()
	assert.Len(t, names, len(entries))

	for _, want := range []string{"append", "bool", "error", "false", "iota", "len", "nil", "string", "true", "uintptr"} {
		assert.Contains(t, names, want)
	}
}

func TestBuiltin_ErrorIsBaseExceptionType(t *testing.T) {
	ns := Builtin()
	obj, ok := ns.Resolve("error")
	require.True(t, ok)

	assert.True(t, obj.IsType())
	assert.True(t, obj.SubtypeOf(object.ExceptionBase))
	assert.False(t, obj.IsCallable()) // interface types are not instantiable
	assert.Equal(t, []string{"error", "any"}, obj.Supertypes())
	assert.Equal(t, []string{"Error"}, obj.AttributeNames())
}

func TestBuiltin_TypeChainsEndAtUniversalBase(t *testing.T) {
	ns := Builtin()
	for _, name := range ns.Names() {
		obj, ok := ns.Resolve(name)
		require.True(t, ok, name)
		if !obj.IsType() {
			continue
		}
		chain := obj.Supertypes()
		require.NotEmpty(t, chain, name)
		assert.Equal(t, name, chain[0], "chain of %s must start with itself", name)
		assert.Equal(t, object.UniversalBase, chain[len(chain)-1], "chain of %s must end at the universal base", name)
	}
}

func TestBuiltin_FunctionsAreCallableNonTypes(t *testing.T) {
	ns := Builtin()
	for _, name := range []string{"append", "len", "make", "panic", "recover"} {
		obj, ok := ns.Resolve(name)
		require.True(t, ok, name)
		assert.False(t, obj.IsType(), name)
		assert.True(t, obj.IsCallable(), name)
		assert.Equal(t, "func", obj.TypeName(), name)
		assert.NotEmpty(t, obj.Doc(), name)
	}
}

func TestBuiltin_EveryEntryDeclaresOrigin(t *testing.T) {
	ns := Builtin()
	for _, b := range ns.Enumerate() {
		assert.Equal(t, ModuleName, b.Object.Module(), b.Name)
	}
}

func TestBuiltin_CopiesAreIndependent(t *testing.T) {
	first := Builtin()
	second := Builtin()

	first.Register("extra", &object.Entity{RuntimeType: "string", Value: "x"})

	assert.Contains(t, first.Names(), "extra")
	assert.NotContains(t, second.Names(), "extra")
}
