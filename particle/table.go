package particle

import "github.com/sbinet/hadrx/pdg"

// NewRegistry builds the reference in-memory particle table: the stable
// ground-state hadrons plus the handful of broad resonances the reaction
// kernel's 2-to-1/2-to-2 paths are specified against. Mass, width and
// quantum numbers are the standard values quoted by the Particle Data
// Group; this is a representative subset, not an exhaustive table.
func NewRegistry() *Table {
	nucleonMult := &Multiplet{}
	antiNucleonMult := &Multiplet{}
	pionMult := &Multiplet{}
	kaonMult := &Multiplet{}
	kbarMult := &Multiplet{}
	deltaMult := &Multiplet{}
	antiDeltaMult := &Multiplet{}
	nstarMult := &Multiplet{}
	nstar1535Mult := &Multiplet{}
	deltastarMult := &Multiplet{}
	sigmaMult := &Multiplet{}
	antiSigmaMult := &Multiplet{}
	dprimeMult := &Multiplet{}
	rhoMult := &Multiplet{}
	h1Mult := &Multiplet{}

	mk := func(code pdg.Code, name string, mass, width float64, spin2, iso2, q, baryon, strange int, mult *Multiplet, brNPi float64) *Type {
		minMass := mass
		minMassSpec := mass
		if width > 0 {
			// Spectral tail extends below the pole; use pole mass
			// minus a few widths as the kinematic floor, clamped
			// to a sane positive value.
			minMassSpec = mass - 3*width
			if minMassSpec < 0.05 {
				minMassSpec = 0.05
			}
			minMass = minMassSpec
		}
		t := &Type{
			PDG: code, Name: name, Mass: mass, MinMass: minMass,
			MinMassSpec: minMassSpec, Width: width, Spin2: spin2,
			Isospin2: iso2, Charge: q, Baryon: baryon, Strangeness: strange,
			multiplet: mult, BRNPi: brNPi,
		}
		if mult != nil {
			mult.Members = append(mult.Members, t)
		}
		return t
	}

	all := []*Type{
		mk(pdg.P, "p", 0.938272, 0, 1, 1, 1, 1, 0, nucleonMult, 0),
		mk(pdg.N, "n", 0.939565, 0, 1, 1, 0, 1, 0, nucleonMult, 0),
		mk(-pdg.P, "pbar", 0.938272, 0, 1, 1, -1, -1, 0, antiNucleonMult, 0),
		mk(-pdg.N, "nbar", 0.939565, 0, 1, 1, 0, -1, 0, antiNucleonMult, 0),

		mk(pdg.PiP, "pi+", 0.139570, 0, 0, 2, 1, 0, 0, pionMult, 0),
		mk(pdg.PiZ, "pi0", 0.134977, 0, 0, 2, 0, 0, 0, pionMult, 0),
		mk(pdg.PiM, "pi-", 0.139570, 0, 0, 2, -1, 0, 0, pionMult, 0),

		mk(pdg.KP, "K+", 0.493677, 0, 0, 1, 1, 0, 1, kaonMult, 0),
		mk(pdg.KZ, "K0", 0.497611, 0, 0, 1, 0, 0, 1, kaonMult, 0),
		mk(pdg.KbarZ, "Kbar0", 0.497611, 0, 0, 1, 0, 0, -1, kbarMult, 0),
		mk(pdg.KM, "K-", 0.493677, 0, 0, 1, -1, 0, -1, kbarMult, 0),

		mk(pdg.SigmaP, "Sigma+", 1.18937, 0, 1, 2, 1, 1, -1, sigmaMult, 0),
		mk(pdg.SigmaZ, "Sigma0", 1.19264, 0, 1, 2, 0, 1, -1, sigmaMult, 0),
		mk(pdg.SigmaM, "Sigma-", 1.19745, 0, 1, 2, -1, 1, -1, sigmaMult, 0),
		mk(-pdg.SigmaP, "Sigma+bar", 1.18937, 0, 1, 2, -1, -1, 1, antiSigmaMult, 0),
		mk(-pdg.SigmaZ, "Sigma0bar", 1.19264, 0, 1, 2, 0, -1, 1, antiSigmaMult, 0),
		mk(-pdg.SigmaM, "Sigma-bar", 1.19745, 0, 1, 2, 1, -1, 1, antiSigmaMult, 0),
		mk(pdg.Lambda, "Lambda", 1.115683, 0, 1, 0, 0, 1, -1, nil, 0),
		mk(-pdg.Lambda, "Lambdabar", 1.115683, 0, 1, 0, 0, -1, 1, nil, 0),

		mk(pdg.DeltaPP, "Delta++", 1.232, 0.117, 3, 3, 2, 1, 0, deltaMult, 1.0),
		mk(pdg.DeltaP, "Delta+", 1.232, 0.117, 3, 3, 1, 1, 0, deltaMult, 1.0),
		mk(pdg.DeltaZ, "Delta0", 1.232, 0.117, 3, 3, 0, 1, 0, deltaMult, 1.0),
		mk(pdg.DeltaM, "Delta-", 1.232, 0.117, 3, 3, -1, 1, 0, deltaMult, 1.0),
		mk(-pdg.DeltaPP, "Delta--bar", 1.232, 0.117, 3, 3, -2, -1, 0, antiDeltaMult, 1.0),
		mk(-pdg.DeltaP, "Delta-bar", 1.232, 0.117, 3, 3, -1, -1, 0, antiDeltaMult, 1.0),
		mk(-pdg.DeltaZ, "Delta0bar", 1.232, 0.117, 3, 3, 0, -1, 0, antiDeltaMult, 1.0),
		mk(-pdg.DeltaM, "Delta+bar", 1.232, 0.117, 3, 3, 1, -1, 0, antiDeltaMult, 1.0),

		mk(pdg.NStar, "N*(1440)", 1.440, 0.350, 1, 1, 1, 1, 0, nstarMult, 0.6),
		mk(-pdg.NStar, "N*(1440)bar", 1.440, 0.350, 1, 1, -1, -1, 0, nstarMult, 0.6),
		mk(pdg.NStar1535, "N*(1535)", 1.535, 0.150, 1, 1, 1, 1, 0, nstar1535Mult, 0.35),
		mk(-pdg.NStar1535, "N*(1535)bar", 1.535, 0.150, 1, 1, -1, -1, 0, nstar1535Mult, 0.35),
		mk(pdg.DeltaStar, "Delta*(1600)", 1.600, 0.250, 3, 3, 1, 1, 0, deltastarMult, 0.15),
		mk(-pdg.DeltaStar, "Delta*(1600)bar", 1.600, 0.250, 3, 3, -1, -1, 0, deltastarMult, 0.15),

		mk(pdg.RhoZ, "rho0", 0.775, 0.149, 2, 2, 0, 0, 0, rhoMult, 0),
		mk(pdg.H1, "h1(1170)", 1.170, 0.360, 2, 0, 0, 0, 0, h1Mult, 0),

		mk(pdg.Deuteron, "d", 1.87561, 0, 2, 0, 1, 2, 0, nil, 0),
		mk(-pdg.Deuteron, "dbar", 1.87561, 0, 2, 0, -1, -2, 0, nil, 0),
		mk(pdg.DPrime, "d'", 2.000, 0.005, 2, 0, 1, 2, 0, dprimeMult, 0),
		mk(-pdg.DPrime, "d'bar", 2.000, 0.005, 2, 0, -1, -2, 0, dprimeMult, 0),
	}

	byCode := make(map[pdg.Code]*Type, len(all))
	for _, ty := range all {
		byCode[ty.PDG] = ty
	}
	return &Table{byCode: byCode, all: all}
}

// NucleonMass is the representative nucleon mass used wherever the
// kernel needs "the" nucleon mass rather than a specific isospin
// projection's pole mass (e.g. NN -> X* matrix-element thresholds).
const NucleonMass = 0.938272
