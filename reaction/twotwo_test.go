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

// TestTwoToTwoRoutesNucleonNucleusPairsToDnXX is a regression test for
// twoToTwo's pair-class router: a light nucleus carries Baryon==2, so
// without checking IsNucleus first, n d would wrongly match the generic
// baryon-baryon case and be routed into nucleon-pair production instead
// of the dedicated nucleon+nucleus path.
func TestTwoToTwoRoutesNucleonNucleusPairsToDnXX(t *testing.T) {
	reg := particle.NewRegistry()
	n := reg.Find(pdg.N)
	d := reg.Find(pdg.Deuteron)

	policy := reaction.Policy{Included2to2: reaction.Included2to2{reaction.NNToNR: true}}
	branches, err := reaction.BuildChannels(reg, n, d, 3.0, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)

	var sawNDPrime bool
	for _, br := range branches {
		if br.Kind == reaction.KindTwoToTwo && len(br.Products) == 2 &&
			br.Products[0] == pdg.N && br.Products[1] == pdg.DPrime {
			sawNDPrime = true
		}
	}
	assert.True(t, sawNDPrime, "n d should route through dnXX and yield an n d' branch")
}

// TestDnXXIgnoresIncludedBitset pins down that the nucleon+nucleus
// path checks no individual 2-to-2 bit: an n d' branch appears even
// when the only enabled bit is unrelated.
func TestDnXXIgnoresIncludedBitset(t *testing.T) {
	reg := particle.NewRegistry()
	n := reg.Find(pdg.N)
	d := reg.Find(pdg.Deuteron)

	policy := reaction.Policy{Included2to2: reaction.Included2to2{reaction.KNToKN: true}}
	branches, err := reaction.BuildChannels(reg, n, d, 3.0, policy, &stringproc.Reference{}, rng.New(1))
	require.NoError(t, err)

	var sawNDPrime bool
	for _, br := range branches {
		if br.Kind == reaction.KindTwoToTwo && len(br.Products) == 2 &&
			br.Products[0] == pdg.N && br.Products[1] == pdg.DPrime {
			sawNDPrime = true
		}
	}
	assert.True(t, sawNDPrime, "dn_xx should fire regardless of which 2-to-2 bit is set")
}
