package managed

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe carries one method per shape the resolver has to understand.
type probe struct{}

func (probe) Value() int                 { return 1 }
func (probe) ValueWithArgs(a, b int) int { return a + b }
func (probe) DoWithArg(string)           {}
func (probe) Fail() error                { return nil }
func (probe) ValueAndErr() (int, error)  { return 0, nil }
func (*probe) Do()                       {}

//
// -----------------------------------------------------------------------------
// TypeName / TypeNameOf
// -----------------------------------------------------------------------------

// TestTypeName_Named verifies named types render as pkgpath.Type.
func TestTypeName_Named(t *testing.T) {
	t.Parallel()

	name := TypeName(reflect.TypeOf(probe{}))
	assert.Equal(t, "github.com/kvisser/beanscope/managed.probe", name)
}

// TestTypeName_PointerStripped verifies pointer indirection does not change the name.
func TestTypeName_PointerStripped(t *testing.T) {
	t.Parallel()

	direct := TypeName(reflect.TypeOf(probe{}))
	viaPtr := TypeName(reflect.TypeOf(&probe{}))
	viaPtrPtr := TypeName(reflect.TypeOf(new(*probe)))

	assert.Equal(t, direct, viaPtr)
	assert.Equal(t, direct, viaPtrPtr)
}

// TestTypeName_Builtin verifies types without a package path fall back to their string form.
func TestTypeName_Builtin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", TypeName(reflect.TypeOf(42)))
}

// TestTypeNameOf_Nil verifies a nil value yields an empty name.
func TestTypeNameOf_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", TypeNameOf(nil))
}

// TestTypeNameOf_Value verifies TypeNameOf matches TypeName of the value's type.
func TestTypeNameOf_Value(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeName(reflect.TypeOf(probe{})), TypeNameOf(&probe{}))
}

//
// -----------------------------------------------------------------------------
// ShapeOf (via Resolve, the way callers reach it)
// -----------------------------------------------------------------------------

// TestResolve_Shapes verifies parameter counts and return categories for every
// method shape: zero/many params crossed with value/void-like returns.
func TestResolve_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		member       string
		numParams    int
		returnsValue bool
	}{
		{"Value", 0, true},
		{"ValueWithArgs", 2, true},
		{"Do", 0, false},
		{"DoWithArg", 1, false},
		{"Fail", 0, false}, // error-only result is void-like
		{"ValueAndErr", 0, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.member, func(t *testing.T) {
			t.Parallel()

			members, err := Resolve(reflect.TypeOf(probe{}), []Decl{{Name: tc.member, Description: "d"}})
			require.NoError(t, err)
			require.Len(t, members, 1)

			assert.Equal(t, tc.member, members[0].Name)
			assert.Equal(t, "d", members[0].Description)
			assert.Equal(t, tc.numParams, members[0].NumParams)
			assert.Equal(t, tc.returnsValue, members[0].ReturnsValue)
		})
	}
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve_PointerReceiverFromValueType verifies pointer-receiver methods
// resolve even when the declared type is the value type.
func TestResolve_PointerReceiverFromValueType(t *testing.T) {
	t.Parallel()

	members, err := Resolve(reflect.TypeOf(probe{}), []Decl{{Name: "Do"}})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Do", members[0].Name)
}

// TestResolve_PointerType verifies resolution works when given a pointer type.
func TestResolve_PointerType(t *testing.T) {
	t.Parallel()

	members, err := Resolve(reflect.TypeOf(&probe{}), []Decl{{Name: "Value"}})
	require.NoError(t, err)
	require.Len(t, members, 1)
}

// TestResolve_MissingMember verifies an unknown member fails with MemberAccessError.
func TestResolve_MissingMember(t *testing.T) {
	t.Parallel()

	_, err := Resolve(reflect.TypeOf(probe{}), []Decl{{Name: "Nope"}})
	require.Error(t, err)

	var accessErr MemberAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, "Nope", accessErr.Member)
	assert.Equal(t, TypeName(reflect.TypeOf(probe{})), accessErr.Type)
	assert.Contains(t, accessErr.Error(), `"Nope"`)
}

// TestResolve_EmptyDeclName verifies an empty member name fails fast.
func TestResolve_EmptyDeclName(t *testing.T) {
	t.Parallel()

	_, err := Resolve(reflect.TypeOf(probe{}), []Decl{{Name: ""}})
	assert.ErrorIs(t, err, ErrEmptyDeclName)
}

// TestResolve_NilType verifies a nil type fails with ErrNilComponent.
func TestResolve_NilType(t *testing.T) {
	t.Parallel()

	_, err := Resolve(nil, []Decl{{Name: "Value"}})
	assert.ErrorIs(t, err, ErrNilComponent)
}

// TestResolve_NoDecls verifies resolving zero declarations yields zero members.
func TestResolve_NoDecls(t *testing.T) {
	t.Parallel()

	members, err := Resolve(reflect.TypeOf(probe{}), nil)
	require.NoError(t, err)
	assert.Empty(t, members)
}

// TestResolve_AbortsOnFirstFailure verifies no partial result is produced when
// a later declaration is broken.
func TestResolve_AbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	members, err := Resolve(reflect.TypeOf(probe{}), []Decl{
		{Name: "Value"},
		{Name: "Nope"},
	})
	require.Error(t, err)
	assert.Nil(t, members)
}
