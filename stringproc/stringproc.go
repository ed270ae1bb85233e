// Package stringproc defines the external high-energy string generator
// contract the reaction kernel consumes for its string-excitation
// branches, plus a simple reference implementation
// so the kernel is runnable without a real PYTHIA-backed generator
// wired in. The kernel never executes a subprocess itself; it only
// asks for diffractive cross sections and records which bucket the
// soft-subprocess draw landed on.
package stringproc

import "github.com/sbinet/hadrx/pdg"

// Subprocess names the bucket the kernel's soft-subprocess draw landed
// on.
type Subprocess int

const (
	SingleAX Subprocess = iota
	SingleXB
	DoubleDD
	NonDiffSoft
)

// Provider is the string-provider contract consumed by the kernel.
type Provider interface {
	// CrossSectionsDiffractive returns the [AX, XB, DD] single- and
	// double-diffractive cross sections in millibarn for the pair
	// (pdgA, pdgB) at sqrtS. Baryons are mapped to protons (sign
	// preserved) and mesons to pi+ before the lookup; callers are
	// expected to have already done that mapping.
	CrossSectionsDiffractive(pdgA, pdgB pdg.Code, sqrtS float64) [3]float64
	// SetSubproc records which bucket the kernel's draw selected, so
	// the provider can generate the matching final state later.
	SetSubproc(Subprocess)
}
