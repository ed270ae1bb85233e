// Package xsection is the parametrization registry: a flat family of
// smooth scalar functions of s or sqrt_s, named by initial state and
// process. The reaction kernel treats every function here as given --
// it calls them, checks the non-negativity invariant, and never
// rearranges or inverts their formulas (that is what package balance is
// for). Each function is a closed-form fit: a low-energy resonance
// shape stitched to a Regge-like high-energy plateau, built from
// constants representative of the corresponding real hadronic cross
// section rather than reproduced verbatim from any single external fit.
package xsection

import (
	"math"

	"github.com/sbinet/hadrx/kinematics"
)

// regge is the common high-energy asymptote shared by every
// parametrization below: a slowly falling Regge-like term plus a
// constant Pomeron plateau, both in millibarn.
func regge(s, plateau, reggeCoeff, reggeExp float64) float64 {
	return plateau + reggeCoeff*math.Pow(s, -reggeExp)
}

// resonanceBump adds a Breit-Wigner-shaped enhancement on top of a
// smooth background, modeling the familiar low-energy resonance bump
// (e.g. the Delta(1232) in pi N scattering) without requiring a full
// resonance formation path.
func resonanceBump(s, poleMass, width, peakMb float64) float64 {
	shape := kinematics.BreitWigner(s, poleMass, width)
	peakShape := kinematics.BreitWigner(poleMass*poleMass, poleMass, width)
	if peakShape <= 0 {
		return 0
	}
	return peakMb * shape / peakShape
}

// --- nucleon-nucleon elastic ------------------------------------------------

// PPElastic is pp_elastic(s): the well-known pp elastic cross section,
// large near threshold and settling to the ~25 mb high-energy plateau.
func PPElastic(s float64) float64 {
	return regge(s, 24.0, 75.0, 1.2) + resonanceBump(s, 2.2, 0.6, 20.0)
}

// NPElastic is np_elastic(s).
func NPElastic(s float64) float64 {
	return regge(s, 24.0, 110.0, 1.1) + resonanceBump(s, 2.1, 0.6, 25.0)
}

// PPbarElastic is ppbar_elastic(s): annihilation-dominated at low
// energy, hence a larger near-threshold enhancement than PPElastic.
func PPbarElastic(s float64) float64 {
	return regge(s, 24.0, 380.0, 1.4) + resonanceBump(s, 2.0, 0.8, 40.0)
}

// --- nucleon-pion elastic ----------------------------------------------------

// PiPlusPElastic is piplusp_elastic(s): dominated by the Delta++(1232)
// resonance in the I=3/2 channel.
func PiPlusPElastic(s float64) float64 {
	return regge(s, 4.0, 6.0, 0.9) + resonanceBump(s, 1.232, 0.117, 190.0)
}

// PiMinusPElastic is piminusp_elastic(s): a mix of I=1/2 and I=3/2, so a
// smaller resonance enhancement than the pure I=3/2 channel.
func PiMinusPElastic(s float64) float64 {
	return regge(s, 4.0, 6.0, 0.9) + resonanceBump(s, 1.232, 0.117, 65.0)
}

// --- nucleon-kaon elastic backgrounds ---------------------------------------

func KPlusPElasticBackground(s float64) float64  { return regge(s, 11.0, 2.0, 0.7) }
func KPlusNElasticBackground(s float64) float64  { return regge(s, 11.5, 2.2, 0.7) }
func KMinusPElasticBackground(s float64) float64 { return regge(s, 13.0, 14.0, 1.0) }
func KMinusNElasticBackground(s float64) float64 { return regge(s, 12.0, 11.0, 1.0) }
func K0PElasticBackground(s float64) float64     { return regge(s, 11.0, 2.0, 0.7) }
func K0NElasticBackground(s float64) float64     { return regge(s, 11.5, 2.2, 0.7) }
func Kbar0PElasticBackground(s float64) float64  { return regge(s, 13.0, 14.0, 1.0) }
func Kbar0NElasticBackground(s float64) float64  { return regge(s, 12.0, 11.0, 1.0) }

// --- strangeness exchange and charge exchange, K- p at rest ----------------

// KMinusPPiMinusSigmaPlus is kminusp_piminussigmaplus(sqrts): one of the
// four strangeness-exchange branches of K- p at low energy.
func KMinusPPiMinusSigmaPlus(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 12.0)
}

// KMinusPPiPlusSigmaMinus is kminusp_piplussigmaminus(sqrts).
func KMinusPPiPlusSigmaMinus(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 9.0)
}

// KMinusPPiZeroSigmaZero is kminusp_pizerosigmazero(sqrts).
func KMinusPPiZeroSigmaZero(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 7.0)
}

// KMinusPPiZeroLambda is kminusp_pizerolambda(sqrts).
func KMinusPPiZeroLambda(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 10.0)
}

// KMinusNPiZeroSigmaMinus is kminusn_pizerosigmaminus(sqrts): the K- n
// strangeness-exchange analog of KMinusPPiZeroSigmaZero.
func KMinusNPiZeroSigmaMinus(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 8.0)
}

// KMinusNPiMinusLambda is kminusn_piminuslambda(sqrts): the K- n
// strangeness-exchange analog of KMinusPPiZeroLambda.
func KMinusNPiMinusLambda(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 9.0)
}

// KMinusPKbar0N is kminusp_kbar0n(sqrts): the charge-exchange channel
// K- p -> Kbar0 n, emitted alongside the strangeness-exchange set.
func KMinusPKbar0N(sqrts float64) float64 {
	return resonanceBump(sqrts*sqrts, 1.52, 0.10, 5.0)
}

// KPlusNK0P is kplusn_k0p(sqrts): the analogous charge-exchange channel
// in the strangeness-conserving K+ N sector.
func KPlusNK0P(sqrts float64) float64 {
	return regge(sqrts*sqrts, 1.0, 1.5, 0.9)
}

// PPbarTotal is ppbar_total(s): the total (elastic + annihilation +
// everything else) ppbar cross section the NNbar closure normalizes
// its residual weight against.
func PPbarTotal(s float64) float64 {
	return regge(s, 40.0, 520.0, 1.3) + resonanceBump(s, 2.0, 0.8, 60.0)
}

// --- high energy / string thresholds ----------------------------------------

// PPHighEnergy is pp_high_energy(s): the asymptotic total pp (and nn)
// cross section the string-excitation budget is normalized against.
func PPHighEnergy(s float64) float64 {
	return regge(s, 38.0, 25.0, 0.25)
}

// PPbarHighEnergy is ppbar_high_energy(s): the ppbar/nnbar total, with
// the larger Reggeon term the annihilation channels contribute at low s.
func PPbarHighEnergy(s float64) float64 {
	return regge(s, 38.5, 120.0, 0.5)
}

// NPHighEnergy is np_high_energy(s): the np (and nbar pbar) total.
func NPHighEnergy(s float64) float64 {
	return regge(s, 38.0, 30.0, 0.3)
}

// NPbarHighEnergy is npbar_high_energy(s): the npbar (and nbar p) total.
func NPbarHighEnergy(s float64) float64 {
	return regge(s, 38.5, 110.0, 0.5)
}

// PiPlusPHighEnergy is piplusp_high_energy(s): the pi+ p (and pi- n)
// total in the string regime.
func PiPlusPHighEnergy(s float64) float64 {
	return regge(s, 23.5, 18.0, 0.4)
}

// PiMinusPHighEnergy is piminusp_high_energy(s): the pi- p (and pi+ n)
// total in the string regime.
func PiMinusPHighEnergy(s float64) float64 {
	return regge(s, 24.0, 22.0, 0.45)
}

// NNStringHard is NN_string_hard(s): the hard (perturbative,
// resolved-parton) component of the nucleon-nucleon string cross
// section, rising slowly with s. The string budget uses it to split the
// non-diffractive part into hard and soft shares (soft = nondiffractive *
// exp(-hard/nondiffractive)).
func NNStringHard(s float64) float64 {
	v := 0.25*math.Log(s) - 0.9
	if v < 0 {
		return 0
	}
	return v
}

// NPiStringHard is Npi_string_hard(s): the nucleon-pion counterpart of
// NNStringHard, smaller by roughly the 2/3 quark-counting ratio.
func NPiStringHard(s float64) float64 {
	v := 0.17*math.Log(s) - 0.6
	if v < 0 {
		return 0
	}
	return v
}

// --- Delta/K production ratio table -----------------------------------------

// KPlusNRatios returns the fixed isospin-decomposition ratios used to
// split a measured K+ N inelastic cross section across charge states of
// the outgoing Delta/K pair, keyed by the number of units of charge
// carried by the Delta. The table is static: these are literal isospin
// ratios, not a fitted function of s.
func KPlusNRatios() map[int]float64 {
	return map[int]float64{
		2: 1.0 / 3.0,
		1: 2.0 / 3.0,
	}
}
