// Package kinematics implements the kernel's kinematics and special
// functions: center-of-mass momentum, the Breit-Wigner and Cauchy
// profiles, Maxwell-Juttner
// momentum sampling, and the isospin Clebsch-Gordan bookkeeping consumed
// by the 2-to-2 production path.
package kinematics

import "math"

// HbarCSq / Fm2Mb converts a GeV^-2 squared amplitude into a cross
// section in mb; the 2-to-1 formation path relies on it.
const (
	HbarC   = 0.197326980 // GeV*fm
	Fm2Mb   = 0.1         // fm^2 per mb (1 fm^2 = 10 mb)
	HbarCSq = HbarC * HbarC
)

// PCMSqr returns the squared center-of-momentum three-momentum of a
// two-body system with invariant mass sqrtS and constituent masses m1,
// m2. Returns a negative value below threshold; callers must gate on
// sqrtS > m1+m2 before trusting the result as physical.
func PCMSqr(sqrtS, m1, m2 float64) float64 {
	s := sqrtS * sqrtS
	return PCMSqrFromS(s, m1, m2)
}

// PCMSqrFromS is PCMSqr expressed directly in terms of the Mandelstam
// variable s, used by the detailed-balance helpers which already hold s.
func PCMSqrFromS(s, m1, m2 float64) float64 {
	sum := m1 + m2
	diff := m1 - m2
	return (s - sum*sum) * (s - diff*diff) / (4 * s)
}

// PCM returns the center-of-momentum momentum magnitude, or 0 below
// threshold (never negative, never NaN from a negative sqrt).
func PCM(sqrtS, m1, m2 float64) float64 {
	sq := PCMSqr(sqrtS, m1, m2)
	if sq <= 0 {
		return 0
	}
	return math.Sqrt(sq)
}

// BreitWigner is the relativistic resonance amplitude squared,
//
//	BW(s, M, Gamma) = (2 s Gamma) / (pi * ((s - M^2)^2 + s Gamma^2))
//
// normalized so that integral_0^inf BW(M'^2, M, Gamma) dM' = 1 (tested in
// kinematics_test.go).
func BreitWigner(s, mass, width float64) float64 {
	if width <= 0 {
		return 0
	}
	diff := s - mass*mass
	return (2 * s * width) / (math.Pi * (diff*diff + s*width*width))
}

// Cauchy is the (non-relativistic) Cauchy/Lorentzian profile. The NN -> X
// matrix element's d-pi row writes out its own denominator and does not
// call it.
func Cauchy(x, pole, width float64) float64 {
	dx := x - pole
	return width / (math.Pi * (dx*dx + width*width))
}
