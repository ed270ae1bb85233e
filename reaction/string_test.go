package reaction_test

import (
	"testing"

	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/reaction"
	"github.com/sbinet/hadrx/rng"
	"github.com/sbinet/hadrx/stringproc"
	"github.com/sbinet/hadrx/xsection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildChannelsUsesStringsAboveCrossoverThreshold exercises the
// deterministic half of the crossover window: above center+halfWidth
// the pair always crosses over to strings, so pp at
// sqrt(s)=6.0 should yield only string branches, never two-to-one or
// two-to-two ones, regardless of the random draw.
func TestBuildChannelsUsesStringsAboveCrossoverThreshold(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)

	policy := reaction.Policy{
		TwoToOne:      true,
		Included2to2:  reaction.Included2to2{reaction.NNToNR: true},
		StringsSwitch: true,
	}
	branches, err := reaction.BuildChannels(reg, p, p, 6.0, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	require.NotEmpty(t, branches)

	for _, br := range branches {
		assert.True(t, br.Kind == reaction.KindStringSoft || br.Kind == reaction.KindStringHard,
			"unexpected branch kind %v above the crossover threshold", br.Kind)
	}
}

// TestBuildChannelsPiPlusPStringBudgetUsesPionParametrization pins the
// pair dispatch of the string budget: a pi+ p pair above its crossover
// window draws its total from piplusp_high_energy, not from the
// nucleon-nucleon parametrization. With no elastic branch the soft and
// hard string weights must sum back to exactly that total.
func TestBuildChannelsPiPlusPStringBudgetUsesPionParametrization(t *testing.T) {
	reg := particle.NewRegistry()
	pip := reg.Find(pdg.PiP)
	p := reg.Find(pdg.P)
	const sqrtS = 3.5

	policy := reaction.Policy{StringsSwitch: true}
	branches, err := reaction.BuildChannels(reg, pip, p, sqrtS, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	require.NotEmpty(t, branches)

	for _, br := range branches {
		assert.True(t, br.Kind == reaction.KindStringSoft || br.Kind == reaction.KindStringHard,
			"unexpected branch kind %v in the pion-nucleon string regime", br.Kind)
	}
	want := xsection.PiPlusPHighEnergy(sqrtS * sqrtS)
	assert.InDelta(t, want, reaction.TotalWeight(branches), 1e-9*want)
	assert.NotEqual(t, xsection.PPHighEnergy(sqrtS*sqrtS), reaction.TotalWeight(branches))
}

// TestBuildChannelsNeverUsesStringsBelowCrossoverThreshold exercises the
// opposite deterministic edge: at or below center-halfWidth, decide_string
// always returns false, so no string branch should appear even though
// StringsSwitch is on.
func TestBuildChannelsNeverUsesStringsBelowCrossoverThreshold(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)

	policy := reaction.Policy{
		TwoToOne:      true,
		Included2to2:  reaction.Included2to2{reaction.NNToNR: true},
		StringsSwitch: true,
	}
	branches, err := reaction.BuildChannels(reg, p, p, 3.9, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	require.NotEmpty(t, branches)

	for _, br := range branches {
		assert.NotEqual(t, reaction.KindStringSoft, br.Kind)
		assert.NotEqual(t, reaction.KindStringHard, br.Kind)
	}
}
