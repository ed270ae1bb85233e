package reaction

import (
	"math"

	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
)

// cmMomentum is the incoming pair's center-of-momentum magnitude, used
// as the flux factor shared by the light-nucleus matrix elements below.
func cmMomentum(a, b *particle.Type, sqrtS float64) float64 {
	return kinematics.PCM(sqrtS, a.Mass, b.Mass)
}

// dnXX handles nucleon + light nucleus (d or d'): the outgoing state is
// the nucleon with the alternate light nucleus. It checks no
// Included2to2 bit: it runs whenever twoToTwo is reached, which
// BuildChannels does only when at least one bit is set.
func dnXX(reg particle.Registry, a, b *particle.Type, sqrtS float64) []*Branch {
	nucleonT, nucleusT := a, b
	if !a.IsNucleon() {
		nucleonT, nucleusT = b, a
	}
	pcm := cmMomentum(a, b, sqrtS)
	if pcm <= 0 {
		return nil
	}
	s := sqrtS * sqrtS

	var out []*Branch
	for _, produced := range reg.ListLightNuclei() {
		if produced.Equal(nucleusT) || produced.Charge != nucleusT.Charge || produced.Baryon != nucleusT.Baryon {
			continue
		}
		var me float64
		if (nucleonT.Baryon < 0) == (nucleusT.Baryon < 0) {
			tmp := sqrtS - nucleonT.MinMass - nucleusT.MinMass
			if tmp < 0 {
				tmp = 0
			}
			me = 79.0474/math.Pow(tmp, 0.7897) + 654.596*tmp
		} else {
			me = 681.4
		}
		spinFactor := float64(produced.Spin2+1) * float64(nucleonT.Spin2+1)
		xs := me * spinFactor / (s * pcm)
		if produced.IsStable() {
			xs *= kinematics.PCM(sqrtS, nucleonT.Mass, produced.Mass)
		} else {
			integral := produced.Multiplet().IntegralNR(sqrtS, nucleonT.Mass)
			if integral <= 0 {
				continue
			}
			xs *= integral
		}
		if xs > reallySmall {
			out = append(out, &Branch{
				Products: []pdg.Code{nucleonT.PDG, produced.PDG},
				WeightMb: xs,
				Kind:     KindTwoToTwo,
			})
		}
	}
	return out
}

// dpiToNN builds the pi d -> N N branches. Unlike the generic NN -> X
// production path, the matrix element here is evaluated on the incoming
// pion/deuteron pair itself, and there is no mass-integral factor since
// both outgoing nucleons are stable.
func dpiToNN(reg particle.Registry, a, b *particle.Type, sqrtS, pcm float64) []*Branch {
	s := sqrtS * sqrtS
	bothAnti := a.Baryon+b.Baryon < 0
	nucleons := reg.ListNucleons()
	if bothAnti {
		nucleons = reg.ListAntiNucleons()
	}

	var out []*Branch
	for _, nucA := range nucleons {
		for _, nucB := range nucleons {
			if nucA.Charge+nucB.Charge != a.Charge+b.Charge {
				continue
			}
			symOut := 1.0
			if nucA.Multiplet() != nil && nucA.Multiplet() == nucB.Multiplet() {
				symOut = 2.0
			}
			symIn := 1.0
			if a.Multiplet() != nil && a.Multiplet() == b.Multiplet() {
				symIn = 2.0
			}
			for _, twoI := range kinematics.IsospinRange(a.Isospin2, b.Isospin2) {
				cg2 := kinematics.IsospinCG2(a.Isospin2, twoIz(a), b.Isospin2, twoIz(b), twoI)
				if math.Abs(cg2) < reallySmall {
					continue
				}
				me := matrixElement(sqrtS, a, b, twoI)
				if me <= 0 {
					continue
				}
				spinFactor := float64(nucA.Spin2+1) * float64(nucB.Spin2+1)
				pcmFinal := kinematics.PCM(sqrtS, nucA.Mass, nucB.Mass)
				xs := cg2 * spinFactor * symIn / symOut * pcmFinal * me / (s * pcm)
				if xs > reallySmall {
					out = append(out, &Branch{
						Products: []pdg.Code{nucA.PDG, nucB.PDG},
						WeightMb: xs,
						Kind:     KindTwoToTwo,
					})
				}
			}
		}
	}
	return out
}

// dpiXX handles pion + light nucleus: either an NN pair (via the dpi
// matrix element) or the pion with the alternate light nucleus (via a
// dedicated calibrated fit). Like dnXX it checks no Included2to2 bit and
// runs whenever twoToTwo is reached.
func dpiXX(reg particle.Registry, a, b *particle.Type, sqrtS float64) []*Branch {
	pion, nucleus := a, b
	if !a.IsPion() {
		pion, nucleus = b, a
	}
	pcm := cmMomentum(a, b, sqrtS)
	if pcm <= 0 {
		return nil
	}
	var out []*Branch

	if nucleus.IsDeuteron() {
		out = append(out, dpiToNN(reg, a, b, sqrtS, pcm)...)
	}

	s := sqrtS * sqrtS
	tmp := sqrtS - a.MinMass - b.MinMass
	if tmp <= 0 {
		return out
	}
	me := 295.5 + 2.862/(0.00283735+(sqrtS-2.181)*(sqrtS-2.181)) +
		0.0672/(tmp*tmp) - 6.61753/tmp
	for _, produced := range reg.ListLightNuclei() {
		if produced.Equal(nucleus) || produced.Charge != nucleus.Charge || produced.Baryon != nucleus.Baryon {
			continue
		}
		spinFactor := float64(produced.Spin2+1) * float64(pion.Spin2+1)
		xs := me * spinFactor / (s * pcm)
		if produced.IsStable() {
			xs *= kinematics.PCM(sqrtS, pion.Mass, produced.Mass)
		} else {
			integral := produced.Multiplet().IntegralPiR(sqrtS, pion.Mass)
			if integral <= 0 {
				continue
			}
			xs *= integral
		}
		if xs > reallySmall {
			out = append(out, &Branch{
				Products: []pdg.Code{pion.PDG, produced.PDG},
				WeightMb: xs,
				Kind:     KindTwoToTwo,
			})
		}
	}
	return out
}
