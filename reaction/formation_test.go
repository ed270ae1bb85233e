package reaction_test

import (
	"testing"

	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/reaction"
	"github.com/sbinet/hadrx/rng"
	"github.com/sbinet/hadrx/stringproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTwoToOnePiMinusPFormsDeltaZero exercises formation's charge/baryon
// gate and its exact Breit-Wigner weight for an incoming pair distinct
// from the pi+ p case the end-to-end tests already cover.
func TestTwoToOnePiMinusPFormsDeltaZero(t *testing.T) {
	reg := particle.NewRegistry()
	pim := reg.Find(pdg.PiM)
	p := reg.Find(pdg.P)
	deltaZ := reg.Find(pdg.DeltaZ)
	const sqrtS = 1.5

	policy := reaction.Policy{ElasticParameter: 0, TwoToOne: true}
	branches, err := reaction.BuildChannels(reg, pim, p, sqrtS, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)

	var found *reaction.Branch
	for _, br := range branches {
		if br.Kind == reaction.KindTwoToOne && br.Products[0] == pdg.DeltaZ {
			found = br
		}
	}
	require.NotNil(t, found, "expected a Delta0 formation branch")
	assert.InDelta(t, expectedFormationWeight(deltaZ, pim, p, sqrtS), found.WeightMb, 1e-9)
}

// TestTwoToOneSkipsNucleonPairs is formation's charge/baryon and BRNPi
// gate from the other side: a nucleon-nucleon pair never couples to any
// resonance in this table, since GetPartialInWidth only models the
// nucleon+pion decay channel.
func TestTwoToOneSkipsNucleonPairs(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)

	policy := reaction.Policy{ElasticParameter: 0, TwoToOne: true}
	branches, err := reaction.BuildChannels(reg, p, p, 2.2, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)

	for _, br := range branches {
		assert.NotEqual(t, reaction.KindTwoToOne, br.Kind, "nucleon pair should not form a resonance")
	}
}
