package kinematics

import "math"

// Isospin quantum numbers are carried everywhere in this package as
// doubled integers (2*I, 2*Iz) so that half-integer isospins stay
// exact.

// fact is the generalized factorial via the Gamma function, valid for
// both integer and half-integer arguments -- every combination the 3j
// formula below forms (j+m, j-m, ...) is guaranteed integer whenever the
// triangle and projection rules are satisfied, but using Gamma keeps the
// implementation simple and branch-free.
func fact(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Gamma(x + 1)
}

// triangleCoeff is Delta(j1,j2,j3) from the Racah formula.
func triangleCoeff(j1, j2, j3 float64) float64 {
	num := fact(j1+j2-j3) * fact(j1-j2+j3) * fact(-j1+j2+j3)
	den := fact(j1 + j2 + j3 + 1)
	if den == 0 {
		return 0
	}
	return math.Sqrt(num / den)
}

// Wigner3j evaluates the Wigner 3-j symbol for doubled quantum numbers,
// using the Racah summation formula. Returns 0 outside the triangle rule
// or when m1+m2+m3 != 0.
func Wigner3j(twoJ1, twoJ2, twoJ3, twoM1, twoM2, twoM3 int) float64 {
	if twoM1+twoM2+twoM3 != 0 {
		return 0
	}
	if twoJ3 < absInt(twoJ1-twoJ2) || twoJ3 > twoJ1+twoJ2 {
		return 0
	}
	if absInt(twoM1) > twoJ1 || absInt(twoM2) > twoJ2 || absInt(twoM3) > twoJ3 {
		return 0
	}

	j1, j2, j3 := half(twoJ1), half(twoJ2), half(twoJ3)
	m1, m2, m3 := half(twoM1), half(twoM2), half(twoM3)

	delta := triangleCoeff(j1, j2, j3)
	if delta == 0 {
		return 0
	}

	prefactor := math.Sqrt(fact(j1+m1) * fact(j1-m1) * fact(j2+m2) *
		fact(j2-m2) * fact(j3+m3) * fact(j3-m3))

	kMin := int(math.Max(0, math.Max(j2-j3-m1, j1-j3+m2)))
	kMax := int(math.Min(j1+j2-j3, math.Min(j1-m1, j2+m2)))

	sum := 0.0
	for k := kMin; k <= kMax; k++ {
		fk := float64(k)
		denom := fact(fk) * fact(j1+j2-j3-fk) * fact(j1-m1-fk) *
			fact(j2+m2-fk) * fact(j3-j2+m1+fk) * fact(j3-j1-m2+fk)
		if denom == 0 {
			continue
		}
		term := 1.0 / denom
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}

	sign := 1.0
	if int(j1-j2+m3)%2 != 0 {
		sign = -1.0
	}
	return sign * delta * prefactor * sum
}

// IsospinCG2 returns the squared isospin Clebsch-Gordan coefficient for
// combining particles of isospin (twoI1, twoIz1) and (twoI2, twoIz2) into
// total isospin twoI3, as used by the 2-to-2 production and absorption
// paths (the 2-to-1 formation amplitude carries no isospin factor).
func IsospinCG2(twoI1, twoIz1, twoI2, twoIz2, twoI3 int) float64 {
	twoIz3 := twoIz1 + twoIz2
	w := Wigner3j(twoI1, twoI2, twoI3, twoIz1, twoIz2, -twoIz3)
	if w == 0 {
		return 0
	}
	cg := math.Sqrt(float64(twoI3+1)) * w
	sign := 1.0
	if int(half(twoI1)-half(twoI2)+half(twoIz3))%2 != 0 {
		sign = -1.0
	}
	cg *= sign
	return cg * cg
}

// IsospinRange returns every total isospin (doubled) reachable by
// combining twoI1 and twoI2, from |I1-I2| to I1+I2 in integer steps.
func IsospinRange(twoI1, twoI2 int) []int {
	lo := absInt(twoI1 - twoI2)
	hi := twoI1 + twoI2
	out := make([]int, 0, (hi-lo)/2+1)
	for v := lo; v <= hi; v += 2 {
		out = append(out, v)
	}
	return out
}

func half(x int) float64 { return float64(x) / 2 }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
