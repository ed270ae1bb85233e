// Package balance implements the three detailed-balance ratio helpers
// (stable-stable, resonance-kaon, resonance-resonance). They are the
// only legitimate way the reaction kernel synthesizes a reverse cross
// section from a forward parametrization; each is a stateless, pure
// function over particle.Type descriptors and the kinematics package's
// momentum helper.
package balance

import (
	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/particle"
)

func deltaEq(a, b *particle.Type) float64 {
	if a.Equal(b) {
		return 1
	}
	return 0
}

func spinSymFactor(a, b, c, d *particle.Type) float64 {
	spinFactor := float64(c.Spin2+1) * float64(d.Spin2+1) /
		(float64(a.Spin2+1) * float64(b.Spin2+1))
	symFactor := (1 + deltaEq(a, b)) / (1 + deltaEq(c, d))
	return spinFactor * symFactor
}

// Stable computes R = sigma(AB->CD) / sigma(CD->AB) for four stable
// species: the ratio of outgoing to incoming squared center-of-momentum
// momenta, weighted by spin multiplicities and identical-particle
// symmetry factors.
func Stable(s float64, a, b, c, d *particle.Type) float64 {
	momentumFactor := kinematics.PCMSqrFromS(s, c.Mass, d.Mass) /
		kinematics.PCMSqrFromS(s, a.Mass, b.Mass)
	return spinSymFactor(a, b, c, d) * momentumFactor
}

// RK computes the detailed-balance factor where a is an unstable
// resonance, b is a kaon, and c, d are stable. pcm is the incoming (a, b)
// center-of-momentum momentum at sqrtS, and integralRK is
// a.Multiplet().IntegralRK(sqrtS, b.Mass): the forward mass integral over a's
// spectral function replaces the single incoming momentum factor of the
// stable-stable case.
func RK(sqrtS, pcm float64, a, b, c, d *particle.Type, integralRK float64) float64 {
	momentumFactor := kinematics.PCMSqr(sqrtS, c.Mass, d.Mass) / (pcm * integralRK)
	return spinSymFactor(a, b, c, d) * momentumFactor
}

// RR computes the detailed-balance factor where both a and b are
// unstable resonances and c, d are stable. pcm is the incoming (a, b)
// center-of-momentum momentum at sqrtS, and integralRR is
// a.Multiplet().IntegralRR(b.Multiplet(), sqrtS): the forward double mass
// integral over both spectral functions replaces the incoming momentum
// factor.
func RR(sqrtS, pcm float64, a, b, c, d *particle.Type, integralRR float64) float64 {
	momentumFactor := kinematics.PCMSqr(sqrtS, c.Mass, d.Mass) / (pcm * integralRR)
	return spinSymFactor(a, b, c, d) * momentumFactor
}
