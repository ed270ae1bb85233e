package reaction

import (
	"math"

	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
)

// twoToTwo routes a pair to its 2-to-2 channel family by species class:
// nucleus-involving pairs, baryon-baryon, then baryon-meson.
func twoToTwo(reg particle.Registry, a, b *particle.Type, sqrtS float64, included Included2to2) ([]*Branch, error) {
	switch {
	// Nucleus-involving pairs are checked ahead of the generic
	// baryon-baryon case: a light nucleus carries Baryon==2, so it would
	// otherwise also match IsBaryon()&&IsBaryon() and be misrouted into
	// the nucleon-pair production path.
	case a.IsNucleus() || b.IsNucleus():
		switch {
		case (a.IsNucleon() && b.IsNucleus()) || (b.IsNucleon() && a.IsNucleus()):
			return dnXX(reg, a, b, sqrtS), nil
		case (a.IsDeuteron() || a.IsDPrime()) && b.IsPion(),
			(b.IsDeuteron() || b.IsDPrime()) && a.IsPion():
			return dpiXX(reg, a, b, sqrtS), nil
		}

	case a.IsBaryon() && b.IsBaryon():
		if a.IsNucleon() && b.IsNucleon() && a.AntiparticleSign() == b.AntiparticleSign() {
			return nnXX(reg, a, b, sqrtS, included)
		}
		return bbXXExceptNN(reg, a, b, sqrtS, included)

	case (a.IsBaryon() && b.IsMeson()) || (a.IsMeson() && b.IsBaryon()):
		switch {
		case (a.IsNucleon() && b.IsKaon()) || (b.IsNucleon() && a.IsKaon()):
			return nkXX(reg, a, b, sqrtS, included), nil
		case (a.IsHyperon() && b.IsPion()) || (b.IsHyperon() && a.IsPion()):
			return ypiXX(reg, a, b, sqrtS, included), nil
		case (a.IsDelta() && b.IsKaon()) || (b.IsDelta() && a.IsKaon()):
			return deltakXX(reg, a, b, sqrtS, included), nil
		}
	}
	return nil, nil
}

// nnXX builds the NN -> NR, NN -> DeltaR, and NN -> dpi channels.
func nnXX(reg particle.Registry, a, b *particle.Type, sqrtS float64, included Included2to2) ([]*Branch, error) {
	pcm := kinematics.PCM(sqrtS, a.Mass, b.Mass)
	if pcm <= 0 {
		return nil, nil
	}
	bothAnti := a.AntiparticleSign() < 0 && b.AntiparticleSign() < 0

	var out []*Branch
	baryonRes := reg.ListBaryonResonances()

	if included.has(NNToNR) {
		nucOrAnti := reg.ListNucleons()
		if bothAnti {
			nucOrAnti = reg.ListAntiNucleons()
		}
		out = append(out, findNNCrossSectionFromType(a, b, baryonRes, nucOrAnti, sqrtS, pcm)...)
	}
	if included.has(NNToDR) {
		deltaOrAnti := reg.ListDeltas()
		if bothAnti {
			deltaOrAnti = reg.ListAntiDeltas()
		}
		out = append(out, findNNCrossSectionFromType(a, b, baryonRes, deltaOrAnti, sqrtS, pcm)...)
	}

	// NN -> d pi / Nbar Nbar -> dbar pi
	deuteron, okD := reg.TryFind(pdg.Deuteron)
	antiDeuteron, okAD := reg.TryFind(-pdg.Deuteron)
	pim, okPim := reg.TryFind(pdg.PiM)
	pi0, okPi0 := reg.TryFind(pdg.PiZ)
	pip, okPip := reg.TryFind(pdg.PiP)
	if okD && okAD && okPim && okPi0 && okPip {
		nucleusList := []*particle.Type{deuteron}
		if bothAnti {
			nucleusList = []*particle.Type{antiDeuteron}
		}
		pions := []*particle.Type{pim, pi0, pip}
		out = append(out, findNNCrossSectionFromType(a, b, nucleusList, pions, sqrtS, pcm)...)
	}
	return out, nil
}

// bbXXExceptNN handles baryon-baryon pairs that are not two same-sign
// nucleons: they route through the reverse absorption matrix element.
func bbXXExceptNN(reg particle.Registry, a, b *particle.Type, sqrtS float64, included Included2to2) ([]*Branch, error) {
	sameSign := a.AntiparticleSign() == b.AntiparticleSign()
	anyNucleus := a.IsNucleus() || b.IsNucleus()
	if !sameSign && !anyNucleus {
		return nil, nil
	}
	antiParticles := a.AntiparticleSign() == -1

	switch {
	case a.IsNucleon() || b.IsNucleon():
		if included.has(NNToNR) {
			return barBarToNucNuc(reg, a, b, sqrtS, antiParticles), nil
		}
	case a.IsDelta() || b.IsDelta():
		if included.has(NNToDR) {
			return barBarToNucNuc(reg, a, b, sqrtS, antiParticles), nil
		}
	}
	return nil, nil
}

// barBarToNucNuc is the reverse of NN -> NR/DR, absorbing a resonance
// pair back into two nucleons.
func barBarToNucNuc(reg particle.Registry, a, b *particle.Type, sqrtS float64, antiParticles bool) []*Branch {
	s := sqrtS * sqrtS
	nucleonMass := particle.NucleonMass
	pcmFinalSqr := s - 4*nucleonMass*nucleonMass
	if pcmFinalSqr <= 0 {
		return nil
	}
	pcmFinal := math.Sqrt(pcmFinalSqr) / 2

	pcmIn := kinematics.PCM(sqrtS, a.Mass, b.Mass)
	if pcmIn <= 0 {
		return nil
	}

	nucleons := reg.ListNucleons()
	if antiParticles {
		nucleons = reg.ListAntiNucleons()
	}

	symIn := 1.0
	if a.Multiplet() != nil && a.Multiplet() == b.Multiplet() {
		symIn = 2.0
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
			for _, twoI := range kinematics.IsospinRange(a.Isospin2, b.Isospin2) {
				cg2 := kinematics.IsospinCG2(a.Isospin2, twoIz(a), b.Isospin2, twoIz(b), twoI)
				if math.Abs(cg2) < reallySmall {
					continue
				}
				me := matrixElement(sqrtS, a, b, twoI)
				if me <= 0 {
					continue
				}
				g := float64(nucA.Spin2+1) * float64(nucB.Spin2+1)
				xs := cg2 * g * (symIn / symOut) * pcmFinal * me / (s * pcmIn)
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
