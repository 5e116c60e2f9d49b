// Package chain_test verifies aggregate construction, validation and lookup.
package chain_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bateman/chain"
	"github.com/stretchr/testify/require"
)

// twoNuclides is the minimal A→B network reused across tests:
// A decays to B (10 s half-life), B captures into the untracked sink.
func twoNuclides() []chain.Nuclide {
	return []chain.Nuclide{
		{
			Name:     "A",
			HalfLife: 10,
			Decay:    []chain.DecayMode{{Target: "B", Kind: "beta-", Branch: 1.0}},
		},
		{
			Name:      "B",
			Reactions: []chain.ReactionPath{{Kind: "(n,gamma)", Target: chain.Sink}},
		},
	}
}

// TestNew_IndexAssignment verifies positional, document-order indexing.
func TestNew_IndexAssignment(t *testing.T) {
	c, err := chain.New(twoNuclides(), []string{"(n,gamma)"}, nil)
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{"A", "B"}, c.Names())

	i, err := c.Index("A")
	require.NoError(t, err)
	require.Zero(t, i)
	i, err = c.Index("B")
	require.NoError(t, err)
	require.Equal(t, 1, i)

	nuc, err := c.ByName("A")
	require.NoError(t, err)
	require.Equal(t, 10.0, nuc.HalfLife)
	require.Equal(t, -1, nuc.YieldIndex)
	require.Same(t, c.At(0), nuc)
}

// TestNew_ValidationErrors covers the load-time referential checks.
func TestNew_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		nucs []chain.Nuclide
		want error
	}{
		{
			"DuplicateName",
			[]chain.Nuclide{{Name: "A"}, {Name: "A"}},
			chain.ErrDuplicateNuclide,
		},
		{
			"DanglingDecayTarget",
			[]chain.Nuclide{{Name: "A", HalfLife: 1,
				Decay: []chain.DecayMode{{Target: "Missing", Kind: "alpha", Branch: 1}}}},
			chain.ErrUnknownTarget,
		},
		{
			"DanglingReactionTarget",
			[]chain.Nuclide{{Name: "A",
				Reactions: []chain.ReactionPath{{Kind: "(n,2n)", Target: "Missing"}}}},
			chain.ErrUnknownTarget,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chain.New(tc.nucs, nil, nil)
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestNew_SinkAndFissionTargetsSkipValidation verifies the two target
// sentinels never trip referential checks.
func TestNew_SinkAndFissionTargetsSkipValidation(t *testing.T) {
	nucs := []chain.Nuclide{
		{
			Name:     "A",
			HalfLife: 2,
			Decay:    []chain.DecayMode{{Target: chain.Sink, Kind: "beta-", Branch: 0.3}},
			Reactions: []chain.ReactionPath{
				{Kind: chain.ReactionFission}, // empty target, by contract
				{Kind: "(n,gamma)", Target: chain.Sink},
			},
		},
	}
	_, err := chain.New(nucs, []string{chain.ReactionFission, "(n,gamma)"}, nil)
	require.NoError(t, err)
}

// TestNew_YieldLinking verifies YieldIndex back-linking and yield axis
// validation.
func TestNew_YieldLinking(t *testing.T) {
	nucs := []chain.Nuclide{
		{Name: "F", Reactions: []chain.ReactionPath{{Kind: chain.ReactionFission}}, FissionQ: 200e6},
		{Name: "P"},
		{Name: "Q"},
	}
	y, err := chain.NewFissionYields(
		[]string{"Q", "P"}, []float64{0.0253}, []string{"F"},
		[]float64{0.1, 0.9},
	)
	require.NoError(t, err)

	c, err := chain.New(nucs, []string{chain.ReactionFission}, y)
	require.NoError(t, err)
	require.Equal(t, 2, c.FissionProducts())

	q, err := c.ByName("Q")
	require.NoError(t, err)
	require.Zero(t, q.YieldIndex)
	p, err := c.ByName("P")
	require.NoError(t, err)
	require.Equal(t, 1, p.YieldIndex)
	f, err := c.ByName("F")
	require.NoError(t, err)
	require.Equal(t, -1, f.YieldIndex)

	// Unknown product axis entry fails construction.
	bad, err := chain.NewFissionYields([]string{"Nope"}, []float64{0.0253}, []string{"F"}, []float64{0.5})
	require.NoError(t, err)
	_, err = chain.New(nucs, nil, bad)
	require.ErrorIs(t, err, chain.ErrUnknownProduct)

	// Unknown precursor axis entry fails construction.
	bad, err = chain.NewFissionYields([]string{"P"}, []float64{0.0253}, []string{"Nope"}, []float64{0.5})
	require.NoError(t, err)
	_, err = chain.New(nucs, nil, bad)
	require.ErrorIs(t, err, chain.ErrUnknownProduct)
}

// TestChain_UnknownNuclide verifies lookup failures surface the sentinel.
func TestChain_UnknownNuclide(t *testing.T) {
	c, err := chain.New(twoNuclides(), nil, nil)
	require.NoError(t, err)

	_, err = c.ByName("Xe135")
	require.ErrorIs(t, err, chain.ErrUnknownNuclide)
	_, err = c.Index("Xe135")
	require.ErrorIs(t, err, chain.ErrUnknownNuclide)
}

// TestChain_CopiesAreIsolated verifies accessor copies cannot mutate the
// frozen aggregate.
func TestChain_CopiesAreIsolated(t *testing.T) {
	c, err := chain.New(twoNuclides(), []string{"(n,gamma)"}, nil)
	require.NoError(t, err)

	kinds := c.ReactionKinds()
	kinds[0] = "clobbered"
	require.Equal(t, []string{"(n,gamma)"}, c.ReactionKinds())

	names := c.Names()
	names[0] = "clobbered"
	require.Equal(t, []string{"A", "B"}, c.Names())
}
