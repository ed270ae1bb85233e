package reaction_test

import (
	"testing"

	"github.com/sbinet/hadrx/balance"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/reaction"
	"github.com/sbinet/hadrx/rng"
	"github.com/sbinet/hadrx/stringproc"
	"github.com/sbinet/hadrx/xsection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hyperonRow mirrors the unexported hyperonChannels table in
// baryonmeson.go, enough to exercise every row of ypiXX/nkStrangenessExchange
// from outside the package without reaching into its internals.
type hyperonRow struct {
	hyperon, pion pdg.Code
	nucleon, kaon pdg.Code
	forward       func(float64) float64
}

var hyperonRows = []hyperonRow{
	{pdg.SigmaP, pdg.PiM, pdg.P, pdg.KM, xsection.KMinusPPiMinusSigmaPlus},
	{pdg.SigmaM, pdg.PiP, pdg.P, pdg.KM, xsection.KMinusPPiPlusSigmaMinus},
	{pdg.SigmaZ, pdg.PiZ, pdg.P, pdg.KM, xsection.KMinusPPiZeroSigmaZero},
	{pdg.Lambda, pdg.PiZ, pdg.P, pdg.KM, xsection.KMinusPPiZeroLambda},
	{pdg.SigmaM, pdg.PiZ, pdg.N, pdg.KM, xsection.KMinusNPiZeroSigmaMinus},
	{pdg.Lambda, pdg.PiM, pdg.N, pdg.KM, xsection.KMinusNPiMinusLambda},
}

// TestYpiXXReversesEveryHyperonChannel exercises every row of the
// strangeness-exchange table's reverse direction, not just the K- p
// row the end-to-end tests already cover.
func TestYpiXXReversesEveryHyperonChannel(t *testing.T) {
	reg := particle.NewRegistry()
	const sqrtS = 1.7

	for _, row := range hyperonRows {
		hyperon := reg.Find(row.hyperon)
		pion := reg.Find(row.pion)
		nucleon := reg.Find(row.nucleon)
		kaon := reg.Find(row.kaon)

		policy := reaction.Policy{Included2to2: reaction.Included2to2{reaction.StrangenessExchange: true}}
		branches, err := reaction.BuildChannels(reg, hyperon, pion, sqrtS, policy, &stringproc.Reference{}, rng.New(1))
		require.NoError(t, err)
		require.Len(t, branches, 1, "row %s %s", row.hyperon, row.pion)

		br := branches[0]
		assert.Equal(t, []pdg.Code{nucleon.PDG, kaon.PDG}, br.Products)
		r := balance.Stable(sqrtS*sqrtS, hyperon, pion, nucleon, kaon)
		want := row.forward(sqrtS) / r
		assert.InDelta(t, want, br.WeightMb, 1e-9*want)
	}
}

// TestDeltaKXXProducesNucleonKPlus exercises deltak_xx's R-K
// detailed-balance reverse (the "Delta+kaon -> KDelta reverse"
// rule): Delta+ K+ reverses to the charge-matching nucleon, here p K+.
func TestDeltaKXXProducesNucleonKPlus(t *testing.T) {
	reg := particle.NewRegistry()
	deltaP := reg.Find(pdg.DeltaP)
	kp := reg.Find(pdg.KP)

	policy := reaction.Policy{Included2to2: reaction.Included2to2{reaction.KNToKDelta: true}}
	branches, err := reaction.BuildChannels(reg, deltaP, kp, 2.0, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)

	var found *reaction.Branch
	for _, br := range branches {
		if br.Kind == reaction.KindTwoToTwo && br.Products[0] == pdg.P && br.Products[1] == pdg.KP {
			found = br
		}
	}
	require.NotNil(t, found, "expected a p K+ branch from deltak_xx")
	assert.Greater(t, found.WeightMb, 0.0)
}
