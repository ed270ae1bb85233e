package reaction

import (
	"github.com/sbinet/hadrx/balance"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/xsection"
)

// nnbarClosure is the detailed-balance closure that makes NNbar
// annihilation and its reverse consistent with every other channel
// already on the list. Both directions are ordinary two-to-two
// processes; the closure must still run after every other bucket
// because the annihilation weight is defined as the residual to the
// total.
func nnbarClosure(reg particle.Registry, a, b *particle.Type, sqrtS float64, treatment NNbarTreatment, soFar []*Branch) []*Branch {
	if treatment != NNbarResonances {
		return nil
	}
	s := sqrtS * sqrtS

	if a.IsNucleon() && b.PDG == -a.PDG {
		weight := max0(xsection.PPbarTotal(s) - TotalWeight(soFar))
		if weight <= reallySmall {
			return nil
		}
		rho, okRho := reg.TryFind(pdg.RhoZ)
		h1, okH1 := reg.TryFind(pdg.H1)
		if !okRho || !okH1 {
			return nil
		}
		return []*Branch{{Products: []pdg.Code{h1.PDG, rho.PDG}, WeightMb: weight, Kind: KindTwoToTwo}}
	}

	isRhoH1 := (a.PDG == pdg.RhoZ && b.PDG == pdg.H1) || (b.PDG == pdg.RhoZ && a.PDG == pdg.H1)
	if !isRhoH1 {
		return nil
	}
	p, okP := reg.TryFind(pdg.P)
	n, okN := reg.TryFind(pdg.N)
	pbar, okPbar := reg.TryFind(-pdg.P)
	nbar, okNbar := reg.TryFind(-pdg.N)
	if !okP || !okN || !okPbar || !okNbar {
		return nil
	}
	rho, h1 := a, b
	if a.PDG == pdg.H1 {
		rho, h1 = b, a
	}
	pcm := cmMomentum(a, b, sqrtS)
	if pcm <= 0 {
		return nil
	}
	integral := rho.Multiplet().IntegralRR(h1.Multiplet(), sqrtS)
	if integral <= 0 {
		return nil
	}
	residual := max0(xsection.PPbarTotal(s) - xsection.PPbarElastic(s))
	if residual <= reallySmall {
		return nil
	}

	var out []*Branch
	for _, pair := range [][2]*particle.Type{{p, pbar}, {n, nbar}} {
		r := balance.RR(sqrtS, pcm, rho, h1, pair[0], pair[1], integral)
		if r <= 0 {
			continue
		}
		weight := r * residual
		if weight > reallySmall {
			out = append(out, &Branch{
				Products: []pdg.Code{pair[0].PDG, pair[1].PDG},
				WeightMb: weight,
				Kind:     KindTwoToTwo,
			})
		}
	}
	return out
}
