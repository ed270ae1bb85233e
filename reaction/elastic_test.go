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

// TestBuildChannelsElasticParameterOverrideUsedVerbatim checks that a
// non-negative ElasticParameter replaces the parametrized cross section
// verbatim, regardless of species.
func TestBuildChannelsElasticParameterOverrideUsedVerbatim(t *testing.T) {
	reg := particle.NewRegistry()
	kp := reg.Find(pdg.KP)
	p := reg.Find(pdg.P)

	policy := reaction.Policy{
		ElasticParameter: 5.0,
		Included2to2:     reaction.Included2to2{reaction.Elastic: true},
	}
	branches, err := reaction.BuildChannels(reg, kp, p, 2.0, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, reaction.KindElastic, branches[0].Kind)
	assert.Equal(t, 5.0, branches[0].WeightMb)
}

// TestBuildChannelsElasticBelowLowSNNCutExcluded exercises the
// same-sign-nucleon low-energy cutoff: below LowSNNCut, no elastic
// branch is produced even though the Elastic bit is set.
func TestBuildChannelsElasticBelowLowSNNCutExcluded(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)

	policy := reaction.Policy{
		ElasticParameter: -1,
		Included2to2:     reaction.Included2to2{reaction.Elastic: true},
		LowSNNCut:        3.0,
	}
	branches, err := reaction.BuildChannels(reg, p, p, 2.0, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	assert.Empty(t, branches)
}

// TestBuildChannelsElasticDispatchesKaonNucleonBackground exercises
// elastic_parametrization's kaon/nucleon dispatch table: K+ p and K- n
// should route to the background cross sections keyed on the
// charge-conjugate-aware effective kaon, not swap with each other.
func TestBuildChannelsElasticDispatchesKaonNucleonBackground(t *testing.T) {
	reg := particle.NewRegistry()
	kp := reg.Find(pdg.KP)
	km := reg.Find(pdg.KM)
	p := reg.Find(pdg.P)
	n := reg.Find(pdg.N)
	const sqrtS = 2.0
	s := sqrtS * sqrtS

	policy := reaction.Policy{
		ElasticParameter: -1,
		Included2to2:     reaction.Included2to2{reaction.Elastic: true},
	}

	kpP, err := reaction.BuildChannels(reg, kp, p, sqrtS, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	require.Len(t, kpP, 1)
	assert.Equal(t, xsection.KPlusPElasticBackground(s), kpP[0].WeightMb)

	kmN, err := reaction.BuildChannels(reg, km, n, sqrtS, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)
	require.Len(t, kmN, 1)
	assert.Equal(t, xsection.KMinusNElasticBackground(s), kmN[0].WeightMb)
}
