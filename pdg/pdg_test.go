package pdg_test

import (
	"testing"

	"github.com/sbinet/hadrx/pdg"
	"github.com/stretchr/testify/assert"
)

func TestAntiparticleSign(t *testing.T) {
	assert.Equal(t, 1, pdg.P.AntiparticleSign())
	assert.Equal(t, -1, (-pdg.P).AntiparticleSign())
	assert.Equal(t, 0, pdg.PiZ.AntiparticleSign())
}

func TestIsAntiparticleOf(t *testing.T) {
	assert.True(t, (-pdg.P).IsAntiparticleOf(pdg.P))
	assert.False(t, pdg.P.IsAntiparticleOf(pdg.P))
	assert.False(t, pdg.N.IsAntiparticleOf(pdg.P))
}

func TestSpeciesPredicates(t *testing.T) {
	assert.True(t, pdg.P.IsNucleon())
	assert.True(t, (-pdg.N).IsNucleon())
	assert.True(t, pdg.PiP.IsPion())
	assert.True(t, pdg.KM.IsKaon())
	assert.True(t, pdg.DeltaPP.IsDelta())
	assert.True(t, pdg.Lambda.IsHyperon())
	assert.True(t, pdg.Deuteron.IsNucleus())
	assert.True(t, pdg.Deuteron.IsDeuteron())
	assert.False(t, pdg.P.IsDelta())
}

func TestPack(t *testing.T) {
	k1 := pdg.Pack(pdg.KM, pdg.P)
	k2 := pdg.Pack(pdg.KM, pdg.N)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, pdg.Pack(pdg.KM, pdg.P))
}
