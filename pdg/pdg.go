// Package pdg provides the PDG particle-code identifier and the species
// predicates the reaction kernel dispatches on.
//
// Real PDG codes are signed integers; the sign flags antiparticles for
// everything except a small set of self-conjugate mesons (pi0, rho0, ...).
// The hand-coded constants below cover exactly the species the kernel's
// tables reference -- this is not a full PDG Monte Carlo numbering
// implementation.
package pdg

import "fmt"

// Code is a PDG Monte Carlo particle code.
type Code int32

// Hand-coded codes for the species exercised by the reaction kernel's
// tables.
const (
	P         Code = 2212
	N         Code = 2112
	PiP       Code = 211
	PiZ       Code = 111
	PiM       Code = -211
	KP        Code = 321
	KZ        Code = 311
	KbarZ     Code = -311
	KM        Code = -321
	SigmaP    Code = 3222
	SigmaZ    Code = 3212
	SigmaM    Code = 3112
	Lambda    Code = 3122
	DeltaPP   Code = 2224
	DeltaP    Code = 2214
	DeltaZ    Code = 2114
	DeltaM    Code = 1114
	NStar     Code = 12212 // generic N*(1440)-class placeholder
	NStar1535 Code = 22212
	DeltaStar Code = 2222
	RhoZ      Code = 113
	H1        Code = 10223
	Deuteron  Code = 1000010020
	DPrime    Code = 1000010021 // unstable deuteron partner used for pi-d kinematics
)

// Anti returns the PDG code of the antiparticle, flipping sign except for
// the handful of self-conjugate mesons in this table.
func (c Code) Anti() Code {
	switch c {
	case PiZ, RhoZ, H1:
		return c
	case KZ:
		return KbarZ
	case KbarZ:
		return KZ
	default:
		return -c
	}
}

// AntiparticleSign returns -1, 0 or 1: the sign of the code for
// species where sign distinguishes particle from antiparticle, 0 for
// self-conjugate ones.
func (c Code) AntiparticleSign() int {
	switch c {
	case PiZ, RhoZ, H1:
		return 0
	}
	if c < 0 {
		return -1
	}
	return 1
}

// IsAntiparticleOf reports whether c is the antiparticle of other.
func (c Code) IsAntiparticleOf(other Code) bool {
	return c == other.Anti() && c != other
}

func (c Code) IsNucleon() bool {
	return c == P || c == N || c == -P || c == -N
}

func (c Code) IsPion() bool {
	return c == PiP || c == PiZ || c == PiM
}

func (c Code) IsKaon() bool {
	switch c {
	case KP, KZ, KbarZ, KM:
		return true
	}
	return false
}

func (c Code) IsDelta() bool {
	switch c.Abs() {
	case DeltaPP, DeltaP, DeltaZ, DeltaM:
		return true
	}
	return false
}

func (c Code) IsHyperon() bool {
	switch c.Abs() {
	case SigmaP, SigmaZ, SigmaM, Lambda:
		return true
	}
	return false
}

func (c Code) IsNucleus() bool {
	return c.Abs() == Deuteron || c.Abs() == DPrime
}

func (c Code) IsDeuteron() bool {
	return c.Abs() == Deuteron
}

func (c Code) IsDPrime() bool {
	return c.Abs() == DPrime
}

// Abs returns the particle code with the antiparticle sign stripped.
func (c Code) Abs() Code {
	if c < 0 {
		return -c
	}
	return c
}

func (c Code) String() string {
	names := map[Code]string{
		P: "p", N: "n", PiP: "pi+", PiZ: "pi0", PiM: "pi-",
		KP: "K+", KZ: "K0", KbarZ: "Kbar0", KM: "K-",
		SigmaP: "Sigma+", SigmaZ: "Sigma0", SigmaM: "Sigma-", Lambda: "Lambda",
		DeltaPP: "Delta++", DeltaP: "Delta+", DeltaZ: "Delta0", DeltaM: "Delta-",
		RhoZ: "rho0", H1: "h1(1170)",
		Deuteron: "d", DPrime: "d'",
	}
	if name, ok := names[c]; ok {
		return name
	}
	if c < 0 {
		if name, ok := names[-c]; ok {
			return name + "bar"
		}
	}
	return fmt.Sprintf("pdg(%d)", int32(c))
}

// Pack combines two PDG codes into a single comparable key for an
// ordered pair of species. The reaction package's dispatch does not use
// it; its switches test species predicates instead.
func Pack(a, b Code) int64 {
	return int64(a)<<32 | int64(uint32(b))
}
