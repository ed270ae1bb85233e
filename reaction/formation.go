package reaction

import (
	"math"

	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
)

// twoToOne scans every registered unstable species and keeps the ones
// formation allows, in registry enumeration order so the within-bucket
// ordering is deterministic.
func twoToOne(reg particle.Registry, a, b *particle.Type, sqrtS float64) []*Branch {
	pcmSqr := kinematics.PCMSqr(sqrtS, a.Mass, b.Mass)
	if pcmSqr <= 0 {
		return nil
	}
	var out []*Branch
	for _, r := range reg.ListAll() {
		if r.IsStable() {
			continue
		}
		if (!a.IsStable() && r.PDG == a.PDG) || (!b.IsStable() && r.PDG == b.PDG) {
			continue
		}
		xs := formation(r, a, b, sqrtS, pcmSqr)
		if xs > reallySmall {
			out = append(out, &Branch{Products: []pdg.Code{r.PDG}, WeightMb: xs, Kind: KindTwoToOne})
		}
	}
	return out
}

// formation is the 2-to-1 resonance formation cross section: the
// Breit-Wigner spectral weight times the partial in-width for the
// incoming channel, with spin and symmetry factors.
func formation(r, a, b *particle.Type, sqrtS, pcmSqr float64) float64 {
	if r.Charge != a.Charge+b.Charge {
		return 0
	}
	if r.Baryon != a.Baryon+b.Baryon {
		return 0
	}
	partialWidth := r.GetPartialInWidth(sqrtS, a, b)
	if partialWidth <= 0 {
		return 0
	}
	spinFactor := float64(r.Spin2+1) / (float64(a.Spin2+1) * float64(b.Spin2+1))
	symFactor := 1.0
	if a.PDG == b.PDG {
		symFactor = 2.0
	}
	spectral := r.SpectralFunction(sqrtS)
	return spinFactor * symFactor * 2 * math.Pi * math.Pi / pcmSqr * spectral *
		partialWidth * kinematics.HbarCSq / kinematics.Fm2Mb
}
