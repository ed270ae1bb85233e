package reaction

import (
	"github.com/sbinet/hadrx/balance"
	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/xsection"
)

// hyperonChannel is one row of the strangeness-exchange table: a
// hyperon+pion incoming pair reverses, via detailed balance, to a
// specific nucleon+kaon forward parametrization.
type hyperonChannel struct {
	hyperon, pion pdg.Code
	nucleon, kaon pdg.Code
	forward       func(sqrts float64) float64
}

var hyperonChannels = []hyperonChannel{
	{pdg.SigmaP, pdg.PiM, pdg.P, pdg.KM, xsection.KMinusPPiMinusSigmaPlus},
	{pdg.SigmaM, pdg.PiP, pdg.P, pdg.KM, xsection.KMinusPPiPlusSigmaMinus},
	{pdg.SigmaZ, pdg.PiZ, pdg.P, pdg.KM, xsection.KMinusPPiZeroSigmaZero},
	{pdg.Lambda, pdg.PiZ, pdg.P, pdg.KM, xsection.KMinusPPiZeroLambda},
	{pdg.SigmaM, pdg.PiZ, pdg.N, pdg.KM, xsection.KMinusNPiZeroSigmaMinus},
	{pdg.Lambda, pdg.PiM, pdg.N, pdg.KM, xsection.KMinusNPiMinusLambda},
}

// ypiXX builds hyperon + pion -> nucleon + kaon via detailed-balance
// inversion of the K- N strangeness-exchange table. Antiparticle pairs
// mirror the particle table through pdg.Code.Anti, which keeps
// self-conjugate codes such as pi0 unchanged.
func ypiXX(reg particle.Registry, a, b *particle.Type, sqrtS float64, included Included2to2) []*Branch {
	if !included.has(StrangenessExchange) {
		return nil
	}
	hyperon, pion := a, b
	if !a.IsHyperon() {
		hyperon, pion = b, a
	}
	sign := hyperon.AntiparticleSign()
	s := sqrtS * sqrtS

	var out []*Branch
	for _, ch := range hyperonChannels {
		wantHyperon, wantPion := ch.hyperon, ch.pion
		wantNucleon, wantKaon := ch.nucleon, ch.kaon
		if sign < 0 {
			wantHyperon, wantPion = wantHyperon.Anti(), wantPion.Anti()
			wantNucleon, wantKaon = wantNucleon.Anti(), wantKaon.Anti()
		}
		if hyperon.PDG != wantHyperon || pion.PDG != wantPion {
			continue
		}
		nucleon, ok1 := reg.TryFind(wantNucleon)
		kaon, ok2 := reg.TryFind(wantKaon)
		if !ok1 || !ok2 {
			continue
		}
		if sqrtS <= nucleon.MinMass+kaon.MinMass {
			continue
		}
		r := balance.Stable(s, hyperon, pion, nucleon, kaon)
		if r <= 0 {
			continue
		}
		xs := ch.forward(sqrtS) / r
		if xs > reallySmall {
			out = append(out, &Branch{
				Products: []pdg.Code{nucleon.PDG, kaon.PDG},
				WeightMb: xs,
				Kind:     KindTwoToTwo,
			})
		}
	}
	return out
}

// nkXX builds the K N -> pi Sigma / pi Lambda strangeness-exchange
// channels that ypiXX reverses, plus the strangeness-conserving
// K N -> K N charge-exchange channel (K- p <-> Kbar0 n and its
// mirrors); the elastic K N -> K N background and the K N -> K Delta
// channel are covered by nkElastic and deltakXX respectively. Species
// pairs outside the hard-coded tables yield no channel, not an error.
func nkXX(reg particle.Registry, a, b *particle.Type, sqrtS float64, included Included2to2) []*Branch {
	nucleon, kaon := a, b
	if !a.IsNucleon() {
		nucleon, kaon = b, a
	}

	var out []*Branch
	out = append(out, nkChargeExchange(reg, nucleon, kaon, sqrtS, included)...)
	out = append(out, nkStrangenessExchange(reg, nucleon, kaon, sqrtS, included)...)
	return out
}

// nkChargeExchange is the K N -> K N strangeness-conserving
// charge-exchange channel: K- p <-> Kbar0 n and the K+ n <-> K0 p
// mirror, gated by the KNToKN policy bit.
func nkChargeExchange(reg particle.Registry, nucleon, kaon *particle.Type, sqrtS float64, included Included2to2) []*Branch {
	if !included.has(KNToKN) {
		return nil
	}
	sign := nucleon.AntiparticleSign()
	isProtonLike := nucleon.PDG.Abs() == pdg.P
	wantKM, wantKP := pdg.KM, pdg.KP
	if sign < 0 {
		wantKM, wantKP = wantKM.Anti(), wantKP.Anti()
	}

	var outNucleon, outKaon pdg.Code
	var forward func(float64) float64
	switch {
	case isProtonLike && kaon.PDG == wantKM:
		outNucleon, outKaon, forward = pdg.N, pdg.KbarZ, xsection.KMinusPKbar0N
	case !isProtonLike && kaon.PDG == wantKP:
		outNucleon, outKaon, forward = pdg.P, pdg.KZ, xsection.KPlusNK0P
	default:
		return nil
	}
	if sign < 0 {
		outNucleon, outKaon = outNucleon.Anti(), outKaon.Anti()
	}

	nOut, ok1 := reg.TryFind(outNucleon)
	kOut, ok2 := reg.TryFind(outKaon)
	if !ok1 || !ok2 {
		return nil
	}
	if sqrtS <= nOut.MinMass+kOut.MinMass {
		return nil
	}
	xs := forward(sqrtS)
	if xs <= reallySmall {
		return nil
	}
	return []*Branch{{
		Products: []pdg.Code{nOut.PDG, kOut.PDG},
		WeightMb: xs,
		Kind:     KindTwoToTwo,
	}}
}

// nkStrangenessExchange is the K- N -> pi Y forward half of the
// hyperonChannels table that ypiXX reverses via detailed balance.
func nkStrangenessExchange(reg particle.Registry, nucleon, kaon *particle.Type, sqrtS float64, included Included2to2) []*Branch {
	if !included.has(StrangenessExchange) {
		return nil
	}
	if kaon.PDG != pdg.KM && kaon.PDG != -pdg.KM {
		return nil
	}
	sign := nucleon.AntiparticleSign()
	want := pdg.KM
	if sign < 0 {
		want = want.Anti()
	}
	if kaon.PDG != want {
		return nil
	}

	var out []*Branch
	for _, ch := range hyperonChannels {
		wantNucleon, wantKaon := ch.nucleon, ch.kaon
		wantHyperon, wantPion := ch.hyperon, ch.pion
		if sign < 0 {
			wantNucleon, wantKaon = wantNucleon.Anti(), wantKaon.Anti()
			wantHyperon, wantPion = wantHyperon.Anti(), wantPion.Anti()
		}
		if nucleon.PDG != wantNucleon {
			continue
		}
		hyperon, ok1 := reg.TryFind(wantHyperon)
		pion, ok2 := reg.TryFind(wantPion)
		if !ok1 || !ok2 {
			continue
		}
		if sqrtS <= hyperon.MinMass+pion.MinMass {
			continue
		}
		xs := ch.forward(sqrtS)
		if xs > reallySmall {
			out = append(out, &Branch{
				Products: []pdg.Code{hyperon.PDG, pion.PDG},
				WeightMb: xs,
				Kind:     KindTwoToTwo,
			})
		}
	}
	return out
}

// deltakXX builds Delta + kaon -> N + kaon via the RK detailed-balance
// helper, with the Delta multiplet's RK mass integral in the ratio. The
// forward cross section is the K+ N charge-exchange parametrization
// (KPlusNK0P); only K+ is handled, and other kaons yield no channel.
func deltakXX(reg particle.Registry, a, b *particle.Type, sqrtS float64, included Included2to2) []*Branch {
	if !included.has(KNToKDelta) {
		return nil
	}
	delta, kaon := a, b
	if !a.IsDelta() {
		delta, kaon = b, a
	}
	pcm := kinematics.PCM(sqrtS, delta.Mass, kaon.Mass)
	if pcm <= 0 {
		return nil
	}
	integral := delta.Multiplet().IntegralRK(sqrtS, kaon.Mass)
	if integral <= 0 {
		return nil
	}

	var out []*Branch
	for _, nucleon := range reg.ListNucleons() {
		if nucleon.Charge != delta.Charge {
			continue
		}
		r := balance.RK(sqrtS, pcm, delta, kaon, nucleon, kaon, integral)
		if r <= 0 {
			continue
		}
		var fwd float64
		switch kaon.PDG {
		case pdg.KP:
			fwd = xsection.KPlusNK0P(sqrtS)
		default:
			continue
		}
		xs := fwd / r
		if xs > reallySmall {
			out = append(out, &Branch{
				Products: []pdg.Code{nucleon.PDG, kaon.PDG},
				WeightMb: xs,
				Kind:     KindTwoToTwo,
			})
		}
	}
	return out
}
