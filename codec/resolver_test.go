package codec

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KatrinaE/fixie-sub000/errors"
	"github.com/KatrinaE/fixie-sub000/groups"
)

// resolveBody tokenizes a pipe-delimited body fragment and resolves it.
func resolveBody(t *testing.T, msgType, body string) (Tree, error) {
	t.Helper()
	tokens, err := Tokenize([]byte(body))
	require.NoError(t, err)
	return NewResolver(nil).Resolve(tokens, msgType)
}

func TestResolve_FlatScalars(t *testing.T) {
	tree, err := resolveBody(t, "D", "55=AAPL|54=1|44=150.25|")
	require.NoError(t, err)

	want := Tree{
		Scalar{55, "AAPL"},
		Scalar{54, "1"},
		Scalar{44, "150.25"},
	}
	assert.Equal(t, want, tree)
}

func TestResolve_UnknownTagTolerated(t *testing.T) {
	tree, err := resolveBody(t, "D", "55=AAPL|20001=custom|")
	require.NoError(t, err)

	v, ok := tree.Field(20001)
	require.True(t, ok)
	assert.Equal(t, "custom", v)
}

func TestResolve_PartyGroup(t *testing.T) {
	tree, err := resolveBody(t, "D",
		"453=2|448=TRADER1|447=D|452=1|448=DESK22|447=D|452=24|55=MSFT|")
	require.NoError(t, err)

	require.Len(t, tree, 2)

	g := tree.Group(453)
	require.NotNil(t, g)
	require.Len(t, g.Entries, 2)

	first := g.Entries[0]
	assert.Equal(t, Entry{
		Scalar{448, "TRADER1"},
		Scalar{447, "D"},
		Scalar{452, "1"},
	}, first)

	id, ok := g.Entries[1].Field(448)
	require.True(t, ok)
	assert.Equal(t, "DESK22", id)

	// The field after the group lands back at top level.
	sym, ok := tree.Field(55)
	require.True(t, ok)
	assert.Equal(t, "MSFT", sym)
}

func TestResolve_GroupCountFidelity(t *testing.T) {
	for n := 0; n <= 4; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var b strings.Builder
			fmt.Fprintf(&b, "453=%d|", n)
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "448=PARTY%d|452=1|", i)
			}
			b.WriteString("55=MSFT|")

			tree, err := resolveBody(t, "D", b.String())
			require.NoError(t, err)

			g := tree.Group(453)
			require.NotNil(t, g)
			assert.Len(t, g.Entries, n)
		})
	}
}

func TestResolve_GroupCountShortfall(t *testing.T) {
	_, err := resolveBody(t, "D", "453=3|448=TRADER1|452=1|55=MSFT|")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrGroupCountMismatch))

	var mismatch *GroupCountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, uint32(453), mismatch.CountTag)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 1, mismatch.Actual)
}

func TestResolve_GroupCountShortfallAtEOF(t *testing.T) {
	_, err := resolveBody(t, "D", "453=2|448=TRADER1|452=1|")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrGroupCountMismatch))
}

func TestResolve_CountSatisfiedClosesGroup(t *testing.T) {
	// Only one entry declared; the second 448 is no longer part of the
	// group and surfaces as a top-level scalar.
	tree, err := resolveBody(t, "D", "453=1|448=TRADER1|452=1|448=STRAY|")
	require.NoError(t, err)

	g := tree.Group(453)
	require.NotNil(t, g)
	assert.Len(t, g.Entries, 1)

	v, ok := tree.Field(448)
	require.True(t, ok)
	assert.Equal(t, "STRAY", v)
}

func TestResolve_InvalidGroupCount(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-numeric", "453=abc|448=TRADER1|"},
		{"negative", "453=-1|448=TRADER1|"},
		{"empty", "453=|448=TRADER1|"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := resolveBody(t, "D", test.body)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidGroupCount))

			var bad *InvalidGroupCountError
			require.True(t, errors.As(err, &bad))
			assert.Equal(t, uint32(453), bad.CountTag)
		})
	}
}

func TestResolve_NestedGroupContainment(t *testing.T) {
	tree, err := resolveBody(t, "D",
		"453=1|448=TRADER1|802=2|523=SUB1|803=1|523=SUB2|803=2|447=D|55=MSFT|")
	require.NoError(t, err)

	outer := tree.Group(453)
	require.NotNil(t, outer)
	require.Len(t, outer.Entries, 1)

	entry := outer.Entries[0]
	inner := entry.Group(802)
	require.NotNil(t, inner, "PartySubIDs should nest inside the Parties entry")
	require.Len(t, inner.Entries, 2)

	sub, ok := inner.Entries[1].Field(523)
	require.True(t, ok)
	assert.Equal(t, "SUB2", sub)

	// Inner entries never leak into the outer entry's scalars.
	_, leaked := entry.Field(523)
	assert.False(t, leaked)

	// The member after the nested group still belongs to the outer entry.
	src, ok := entry.Field(447)
	require.True(t, ok)
	assert.Equal(t, "D", src)
}

func TestResolve_MultiLevelPopAtEOF(t *testing.T) {
	tree, err := resolveBody(t, "D", "453=1|448=TRADER1|802=1|523=SUB1|")
	require.NoError(t, err)

	outer := tree.Group(453)
	require.NotNil(t, outer)
	inner := outer.Entries[0].Group(802)
	require.NotNil(t, inner)
	assert.Len(t, inner.Entries, 1)
}

func TestResolve_AmbiguousNestedGroup(t *testing.T) {
	// 802 is subordinate to PartyID(448); opening it before any 448 in the
	// entry violates the parent constraint.
	_, err := resolveBody(t, "D", "453=1|802=1|523=SUB1|")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAmbiguousNestedGroup))

	var ambiguous *AmbiguousNestedGroupError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, uint32(802), ambiguous.CountTag)
	assert.Equal(t, uint32(448), ambiguous.ParentTag)
}

func TestResolve_MessageScopedGroup(t *testing.T) {
	body := "552=2|54=1|11=ORD1|38=100|54=2|11=ORD2|38=200|55=MSFT|"

	// In a NewOrderCross the sides form a group.
	tree, err := resolveBody(t, "s", body)
	require.NoError(t, err)
	g := tree.Group(552)
	require.NotNil(t, g)
	require.Len(t, g.Entries, 2)
	ord, ok := g.Entries[1].Field(11)
	require.True(t, ok)
	assert.Equal(t, "ORD2", ord)

	// In a NewOrderSingle tag 552 is not a recognized count field and the
	// same tokens degrade to flat scalars.
	flat, err := resolveBody(t, "D", body)
	require.NoError(t, err)
	assert.Nil(t, flat.Group(552))
	v, ok := flat.Field(552)
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestResolve_SiblingGroups(t *testing.T) {
	tree, err := resolveBody(t, "W",
		"453=1|448=MKT|452=1|268=2|269=0|270=100.5|269=1|270=100.7|55=MSFT|")
	require.NoError(t, err)

	require.NotNil(t, tree.Group(453))
	md := tree.Group(268)
	require.NotNil(t, md)
	assert.Len(t, md.Entries, 2)
}

func TestResolve_ZeroCountGroup(t *testing.T) {
	tree, err := resolveBody(t, "D", "453=0|55=MSFT|")
	require.NoError(t, err)

	g := tree.Group(453)
	require.NotNil(t, g)
	assert.Len(t, g.Entries, 0)

	sym, ok := tree.Field(55)
	require.True(t, ok)
	assert.Equal(t, "MSFT", sym)
}

func TestResolve_CustomRegistry(t *testing.T) {
	reg, err := groups.NewRegistry(groups.Def{Spec: groups.Spec{
		CountTag:     7000,
		DelimiterTag: 7001,
		MemberTags:   []uint32{7001, 7002},
	}})
	require.NoError(t, err)

	tokens, err := Tokenize([]byte("7000=1|7001=a|7002=b|"))
	require.NoError(t, err)

	tree, err := NewResolver(reg).Resolve(tokens, "D")
	require.NoError(t, err)
	g := tree.Group(7000)
	require.NotNil(t, g)
	require.Len(t, g.Entries, 1)
}
