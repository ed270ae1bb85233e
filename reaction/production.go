package reaction

import (
	"math"

	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
)

// twoIz returns twice the isospin z-projection via the Gell-Mann-Nishijima
// relation 2*Iz = 2*Q - (B + S), matching the particle table's (charge,
// baryon, strangeness) bookkeeping rather than a separately stored field.
func twoIz(t *particle.Type) int {
	return 2*t.Charge - t.Baryon - t.Strangeness
}

// massIntegral picks the mass integral I_12 for a (res1, res2)
// production pair from the broad product's isospin multiplet, chosen by
// whether one or both products are broad. The dpi final state
// has two sharp masses and uses a plain pCM instead.
func massIntegral(res1, res2 *particle.Type, sqrtS float64) float64 {
	switch {
	case res1.IsDeuteron() && res2.IsPion(), res2.IsDeuteron() && res1.IsPion():
		return kinematics.PCM(sqrtS, res1.Mass, res2.Mass)
	case res1.IsStable() && !res2.IsStable():
		return res2.Multiplet().IntegralNR(sqrtS, res1.Mass)
	case res2.IsStable() && !res1.IsStable():
		return res1.Multiplet().IntegralNR(sqrtS, res2.Mass)
	case !res1.IsStable() && !res2.IsStable():
		return res1.Multiplet().IntegralRR(res2.Multiplet(), sqrtS)
	default:
		return 0
	}
}

// findNNCrossSectionFromType builds the NN-initiated production
// branches: for every (res1, res2) pair drawn from the two candidate
// lists, apply charge conservation, isospin Clebsch-Gordan weighting,
// the threshold check, the matrix element, and the mass integral, in
// that order, and keep what survives.
func findNNCrossSectionFromType(a, b *particle.Type, list1, list2 []*particle.Type, sqrtS, pcm float64) []*Branch {
	s := sqrtS * sqrtS
	var out []*Branch
	for _, res1 := range list1 {
		for _, res2 := range list2 {
			if res1.Charge+res2.Charge != a.Charge+b.Charge {
				continue
			}
			for _, twoI := range kinematics.IsospinRange(a.Isospin2, b.Isospin2) {
				cg2 := kinematics.IsospinCG2(a.Isospin2, twoIz(a), b.Isospin2, twoIz(b), twoI)
				if math.Abs(cg2) < reallySmall {
					continue
				}
				lower := res1.MinMass
				upper := sqrtS - res2.Mass
				if upper-lower < 1e-3 {
					continue
				}
				me := matrixElement(sqrtS, res1, res2, twoI)
				if me <= 0 {
					continue
				}
				g := float64(res1.Spin2+1) * float64(res2.Spin2+1)
				integral := massIntegral(res1, res2, sqrtS)
				if integral <= 0 {
					continue
				}
				xs := cg2 * g * me * integral / (s * pcm)
				if xs > reallySmall {
					out = append(out, &Branch{
						Products: []pdg.Code{res1.PDG, res2.PDG},
						WeightMb: xs,
						Kind:     KindTwoToTwo,
					})
				}
			}
		}
	}
	return out
}
