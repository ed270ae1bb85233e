package reaction

import (
	"math"

	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/xsection"
)

const reallySmall = 1e-8

// buildElastic includes an elastic branch iff the Elastic bit is set
// and the pair is not two same-sign nucleons below the low-energy
// cutoff. Returns nil, nil when no branch should be appended.
func buildElastic(a, b *particle.Type, sqrtS float64, p Policy) (*Branch, error) {
	if !p.Included2to2.has(Elastic) {
		return nil, nil
	}
	bothNucleons := a.IsNucleon() && b.IsNucleon()
	sameSign := a.AntiparticleSign() == b.AntiparticleSign()
	if bothNucleons && sameSign && sqrtS < p.LowSNNCut {
		return nil, nil
	}

	var xs float64
	if p.ElasticParameter >= 0 {
		xs = p.ElasticParameter
	} else {
		var err error
		xs, err = elasticParametrization(a, b, sqrtS)
		if err != nil {
			return nil, err
		}
	}
	if xs <= reallySmall {
		return nil, nil
	}
	return &Branch{Products: []pdg.Code{a.PDG, b.PDG}, WeightMb: xs, Kind: KindElastic}, nil
}

// elasticParametrization dispatches to the parametrized elastic cross
// section by pair species.
func elasticParametrization(a, b *particle.Type, sqrtS float64) (float64, error) {
	s := sqrtS * sqrtS
	switch {
	case (a.IsNucleon() && b.IsPion()) || (b.IsNucleon() && a.IsPion()):
		return npiElastic(a, b, s)
	case (a.IsNucleon() && b.IsKaon()) || (b.IsNucleon() && a.IsKaon()):
		return nkElastic(a, b, s)
	case a.IsNucleon() && b.IsNucleon() && a.AntiparticleSign() == b.AntiparticleSign():
		return nnElastic(a, b, s)
	default:
		return 0, nil
	}
}

// nnElastic routes same-PDG pairs through PPElastic; this deliberately
// collapses pbar pbar onto the pp parametrization (isospin symmetry
// makes the two indistinguishable at this level).
func nnElastic(a, b *particle.Type, s float64) (float64, error) {
	var xs float64
	switch {
	case a.PDG == b.PDG:
		xs = xsection.PPElastic(s)
	case a.PDG.IsAntiparticleOf(b.PDG):
		xs = xsection.PPbarElastic(s)
	default:
		xs = xsection.NPElastic(s)
	}
	return checkPositive(xs, a, b, s)
}

func npiElastic(a, b *particle.Type, s float64) (float64, error) {
	nucleon, pion := a, b
	if !a.IsNucleon() {
		nucleon, pion = b, a
	}
	var xs float64
	plus, minus := xsection.PiPlusPElastic(s), xsection.PiMinusPElastic(s)
	sign := nucleon.AntiparticleSign()
	switch {
	case pion.PDG == pdg.PiZ:
		xs = 0.5 * (plus + minus)
	case (sign > 0) == (pion.PDG == pdg.PiP):
		xs = plus
	default:
		xs = minus
	}
	return checkPositive(xs, a, b, s)
}

func nkElastic(a, b *particle.Type, s float64) (float64, error) {
	nucleon, kaon := a, b
	if !a.IsNucleon() {
		nucleon, kaon = b, a
	}
	sign := nucleon.AntiparticleSign()
	// Antiparticle nucleons see the charge-conjugate kaon background.
	effectiveKaon := kaon.PDG
	if sign < 0 {
		effectiveKaon = -kaon.PDG
	}
	isNeutronLike := nucleon.PDG.Abs() == pdg.N
	var xs float64
	switch effectiveKaon {
	case pdg.KP:
		if isNeutronLike {
			xs = xsection.KPlusNElasticBackground(s)
		} else {
			xs = xsection.KPlusPElasticBackground(s)
		}
	case pdg.KM:
		if isNeutronLike {
			xs = xsection.KMinusNElasticBackground(s)
		} else {
			xs = xsection.KMinusPElasticBackground(s)
		}
	case pdg.KZ:
		if isNeutronLike {
			xs = xsection.K0NElasticBackground(s)
		} else {
			xs = xsection.K0PElasticBackground(s)
		}
	case pdg.KbarZ:
		if isNeutronLike {
			xs = xsection.Kbar0NElasticBackground(s)
		} else {
			xs = xsection.Kbar0PElasticBackground(s)
		}
	}
	return checkPositive(xs, a, b, s)
}

func checkPositive(xs float64, a, b *particle.Type, s float64) (float64, error) {
	if xs > 0 {
		return xs, nil
	}
	sqrtS := 0.0
	if s > 0 {
		sqrtS = math.Sqrt(s)
	}
	return 0, &KernelError{
		Kind: ErrParametrizationInvalid, NameA: a.Name, NameB: b.Name,
		Spin2A: a.Spin2, Spin2B: b.Spin2, SqrtS: sqrtS, XSection: xs,
	}
}
