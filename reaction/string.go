package reaction

import (
	"math"

	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/rng"
	"github.com/sbinet/hadrx/stringproc"
	"github.com/sbinet/hadrx/xsection"
)

// Stream is the kernel-facing alias of rng.Stream, kept local so this
// package's public surface does not force every caller to import rng
// directly just to name the parameter type.
type Stream = rng.Stream

// crossoverWindow names the center and half-width of the probabilistic
// string/resonance crossover region.
type crossoverWindow struct{ center, halfWidth float64 }

var (
	nnWindow  = crossoverWindow{center: 4.5, halfWidth: 0.5}
	piNWindow = crossoverWindow{center: 2.7, halfWidth: 0.4}
)

// decideString selects the string regime: nucleon-nucleon and
// pion-nucleon pairs cross over probabilistically near a pair-specific
// threshold; every other species pair never uses strings.
func decideString(stringsSwitch bool, a, b *particle.Type, sqrtS float64, draw float64) bool {
	if !stringsSwitch {
		return false
	}
	var w crossoverWindow
	switch {
	case a.IsNucleon() && b.IsNucleon():
		w = nnWindow
	case (a.IsNucleon() && b.IsPion()) || (b.IsNucleon() && a.IsPion()):
		w = piNWindow
	default:
		return false
	}
	if sqrtS > w.center+w.halfWidth {
		return true
	}
	if sqrtS <= w.center-w.halfWidth {
		return false
	}
	prob := (sqrtS - w.center + w.halfWidth) / (2 * w.halfWidth)
	return draw < prob
}

// referenceSpecies maps a hadron to the reference species the string
// provider's table is keyed on: baryons to the proton (sign preserved),
// mesons to pi+. Excited hadrons are reduced to their ground-state
// reference before the lookup.
func referenceSpecies(t *particle.Type) pdg.Code {
	if t.IsBaryon() {
		if t.AntiparticleSign() < 0 {
			return -pdg.P
		}
		return pdg.P
	}
	return pdg.PiP
}

// highEnergy dispatches the total high-energy parametrization over the
// same pair classes decideString admits into the string regime: the
// nucleon-nucleon family split by antiparticle sign, and pion-nucleon
// split by charge pairing. Any other pair returns 0.
func highEnergy(a, b *particle.Type, s float64) float64 {
	if a.IsNucleon() && b.IsNucleon() {
		switch {
		case a.PDG == b.PDG:
			return xsection.PPHighEnergy(s) // pp, nn
		case a.PDG.IsAntiparticleOf(b.PDG):
			return xsection.PPbarHighEnergy(s) // ppbar, nnbar
		case a.AntiparticleSign()*b.AntiparticleSign() == 1:
			return xsection.NPHighEnergy(s) // np, nbar pbar
		default:
			return xsection.NPbarHighEnergy(s) // npbar, nbar p
		}
	}
	match := func(pi, nuc pdg.Code) bool {
		return (a.PDG == pi && b.PDG == nuc) || (b.PDG == pi && a.PDG == nuc)
	}
	switch {
	case match(pdg.PiP, pdg.P), match(pdg.PiM, pdg.N):
		return xsection.PiPlusPHighEnergy(s)
	case match(pdg.PiM, pdg.P), match(pdg.PiP, pdg.N):
		return xsection.PiMinusPHighEnergy(s)
	default:
		return 0
	}
}

// stringHard picks the hard parametrization by pair class: the
// nucleon-nucleon fit stands in for all baryon-baryon pairs and the
// nucleon-pion fit for baryon-meson ones.
func stringHard(a, b *particle.Type, s float64) float64 {
	if a.IsBaryon() && b.IsBaryon() {
		return xsection.NNStringHard(s)
	}
	return xsection.NPiStringHard(s)
}

// stringExcitation computes the diffractive/non-diffractive budget from
// the provider's cross sections, splits soft from hard, draws the soft
// subprocess, and emits up to two branches.
func stringExcitation(provider stringproc.Provider, stream Stream, a, b *particle.Type, sqrtS, elasticXS float64) ([]*Branch, error) {
	if provider == nil {
		return nil, &KernelError{Kind: ErrMissingStringProvider, NameA: a.Name, NameB: b.Name, SqrtS: sqrtS}
	}
	s := sqrtS * sqrtS
	total := max0(highEnergy(a, b, s) - elasticXS)

	refA, refB := referenceSpecies(a), referenceSpecies(b)
	diffr := provider.CrossSectionsDiffractive(refA, refB, sqrtS)
	ax, xb, dd := diffr[0], diffr[1], diffr[2]

	diffractive := ax + xb + dd
	nondiffAll := max0(total - diffractive)
	diffractive = total - nondiffAll
	ddFinal := max0(diffractive - (ax + xb))
	sum2 := ax + xb
	if sum2 > 0 {
		scale := (diffractive - ddFinal) / sum2
		ax *= scale
		xb *= scale
	}

	hard := stringHard(a, b, s)
	nondiffSoft := 0.0
	if nondiffAll > 0 {
		nondiffSoft = nondiffAll * math.Exp(-hard/nondiffAll)
	}
	nondiffHard := nondiffAll - nondiffSoft

	softTotal := total - nondiffHard

	// Five buckets, but the subprocess draw runs over the first four
	// only: the hard bucket is emitted unconditionally alongside.
	const softDrawSlots = 4
	weights := [5]float64{ax, xb, ddFinal, nondiffSoft, nondiffHard}
	sum := 0.0
	for _, w := range weights[:softDrawSlots] {
		sum += w
	}
	if sum > reallySmall {
		var u float64
		if stream != nil {
			u = stream.Float64()
		}
		draw := u * sum
		cum := 0.0
		chosen := -1
		for i, w := range weights[:softDrawSlots] {
			cum += w
			if draw < cum {
				chosen = i
				break
			}
		}
		if chosen < 0 {
			return nil, &KernelError{
				Kind: ErrSoftStringSubprocessUnresolved, NameA: a.Name, NameB: b.Name,
				Detail: "cumulative soft-subprocess draw did not land in any bucket",
			}
		}
		provider.SetSubproc(stringproc.Subprocess(chosen))
	}

	var out []*Branch
	if softTotal > reallySmall {
		out = append(out, &Branch{Products: []pdg.Code{a.PDG, b.PDG}, WeightMb: softTotal, Kind: KindStringSoft})
	}
	if nondiffHard > reallySmall {
		out = append(out, &Branch{Products: []pdg.Code{a.PDG, b.PDG}, WeightMb: nondiffHard, Kind: KindStringHard})
	}
	return out, nil
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
