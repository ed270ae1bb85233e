package particle_test

import (
	"testing"

	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFind(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)
	require.NotNil(t, p)
	assert.Equal(t, "p", p.Name)
	assert.True(t, p.IsStable())
	assert.True(t, p.IsNucleon())
}

func TestRegistryTryFindMissing(t *testing.T) {
	reg := particle.NewRegistry()
	_, ok := reg.TryFind(pdg.Code(999999))
	assert.False(t, ok)
}

func TestRegistryFindPanicsOnMissing(t *testing.T) {
	reg := particle.NewRegistry()
	assert.Panics(t, func() { reg.Find(pdg.Code(999999)) })
}

func TestListNucleonsExcludesAntiparticles(t *testing.T) {
	reg := particle.NewRegistry()
	for _, n := range reg.ListNucleons() {
		assert.GreaterOrEqual(t, n.AntiparticleSign(), 0)
	}
	for _, n := range reg.ListAntiNucleons() {
		assert.Less(t, n.AntiparticleSign(), 0)
	}
}

func TestDeltaSpectralFunctionPeaksAtPole(t *testing.T) {
	reg := particle.NewRegistry()
	delta := reg.Find(pdg.DeltaPP)
	atPole := delta.SpectralFunction(delta.Mass)
	offPole := delta.SpectralFunction(delta.Mass + 0.5)
	assert.Greater(t, atPole, offPole)
}

func TestMultipletIntegralNRPositiveAboveThreshold(t *testing.T) {
	reg := particle.NewRegistry()
	delta := reg.Find(pdg.DeltaPP)
	integral := delta.Multiplet().IntegralNR(3.0, particle.NucleonMass)
	assert.Greater(t, integral, 0.0)
}

func TestMultipletIntegralNRZeroBelowThreshold(t *testing.T) {
	reg := particle.NewRegistry()
	delta := reg.Find(pdg.DeltaPP)
	integral := delta.Multiplet().IntegralNR(1.0, particle.NucleonMass)
	assert.Equal(t, 0.0, integral)
}

func TestGetPartialInWidthOnlyForNPi(t *testing.T) {
	reg := particle.NewRegistry()
	delta := reg.Find(pdg.DeltaPP)
	p := reg.Find(pdg.P)
	pip := reg.Find(pdg.PiP)
	k := reg.Find(pdg.KP)

	assert.Greater(t, delta.GetPartialInWidth(1.5, p, pip), 0.0)
	assert.Equal(t, 0.0, delta.GetPartialInWidth(1.5, p, k))
}
