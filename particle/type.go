// Package particle is the read-only particle and isospin-multiplet data
// service the reaction kernel queries. The kernel consumes it through
// the Registry interface, but a concrete in-memory table is shipped
// here so the kernel is runnable and testable without a separate
// project providing PDG data.
package particle

import (
	"github.com/sbinet/hadrx/kinematics"
	"github.com/sbinet/hadrx/pdg"
)

// Type is the read-only particle record queried by the kernel. Equality
// between two Types is by PDG code, never by pointer or by value.
type Type struct {
	PDG         pdg.Code
	Name        string
	Mass        float64 // pole mass, GeV
	MinMass     float64 // minimum kinematic mass, GeV
	MinMassSpec float64 // minimum spectral mass, GeV
	Width       float64 // pole width, GeV; 0 for stable species
	Spin2       int     // 2J
	Isospin2    int     // 2I
	Charge      int
	Baryon      int
	Strangeness int

	multiplet *Multiplet
	// BRNPi is the approximate branching ratio into a nucleon+pion
	// final state, the only decay channel the 2-to-1 resonance
	// formation path needs a partial width for in this
	// table. Zero for species that do not couple to N pi.
	BRNPi float64
}

// Equal implements the kernel's by-identifier equality rule.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.PDG == other.PDG
}

func (t *Type) String() string { return t.Name }

func (t *Type) IsStable() bool    { return t.Width <= 0 }
func (t *Type) IsNucleon() bool   { return t.PDG.IsNucleon() }
func (t *Type) IsDelta() bool     { return t.PDG.IsDelta() }
func (t *Type) IsHyperon() bool   { return t.PDG.IsHyperon() }
func (t *Type) IsKaon() bool      { return t.PDG.IsKaon() }
func (t *Type) IsPion() bool      { return t.PDG.IsPion() }
func (t *Type) IsBaryon() bool    { return t.Baryon != 0 }
func (t *Type) IsMeson() bool     { return t.Baryon == 0 }
func (t *Type) IsNucleus() bool   { return t.PDG.IsNucleus() }
func (t *Type) IsDeuteron() bool  { return t.PDG.IsDeuteron() }
func (t *Type) IsDPrime() bool    { return t.PDG.IsDPrime() }
func (t *Type) IsNstar() bool     { return t.PDG.Abs() == pdg.NStar }
func (t *Type) IsNstar1535() bool { return t.PDG.Abs() == pdg.NStar1535 }
func (t *Type) IsDeltastar() bool { return t.PDG.Abs() == pdg.DeltaStar }

// AntiparticleSign forwards to the PDG code; pair-class routing uses it
// pervasively.
func (t *Type) AntiparticleSign() int { return t.PDG.AntiparticleSign() }

// Multiplet returns the isospin multiplet this species belongs to, or nil
// for species registered without one.
func (t *Type) Multiplet() *Multiplet { return t.multiplet }

// SpectralFunction is the normalized Breit-Wigner amplitude A_R(sqrt_s)
// used both directly by resonance formation and as the
// integrand of the mass integrals owned by Multiplet. Stable species have
// no spectral shape; callers must gate on IsStable first.
func (t *Type) SpectralFunction(sqrtS float64) float64 {
	if t.IsStable() {
		return 0
	}
	s := sqrtS * sqrtS
	return kinematics.BreitWigner(s, t.Mass, t.Width)
}

// GetPartialInWidth returns the partial in-width Gamma_in(sqrt_s, a, b
// -> R): the width for decaying back into the specific two-body channel
// (a, b), here the branching ratio times the resonance's pole width (the
// width does not vary with sqrt_s above the a+b threshold). Only
// the nucleon+pion channel is modeled (BRNPi): the full decay-mode tree
// belongs to the external particle registry, not the kernel, and every
// resonance this table forms via 2-to-1 couples to N pi.
func (t *Type) GetPartialInWidth(sqrtS float64, a, b *Type) float64 {
	if t.IsStable() || t.BRNPi <= 0 {
		return 0
	}
	nPi := (a.IsNucleon() && b.IsPion()) || (b.IsNucleon() && a.IsPion())
	if !nPi {
		return 0
	}
	if sqrtS <= a.MinMass+b.MinMass {
		return 0
	}
	return t.BRNPi * t.Width
}
