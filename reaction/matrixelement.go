package reaction

import (
	"math"

	"github.com/sbinet/hadrx/particle"
)

// matrixElement is the NN -> X matrix element table. x and y are the
// two species being produced (or, for the dpi row, the deuteron/pion
// pair itself, used directly because that process has no separate
// production-pair classification). Only the listed rows are non-zero.
func matrixElement(sqrtS float64, x, y *particle.Type, twoI int) float64 {
	mA, mB := x.Mass, y.Mass
	msqr := 2 * (mA*mA + mB*mB)
	uplmt := mA + mB + 3*(x.Width+y.Width) + 3
	if sqrtS > uplmt {
		return 0
	}
	sameSign := x.AntiparticleSign() == y.AntiparticleSign()

	switch {
	case sameSign && ((x.IsDelta() && y.IsNucleon()) || (y.IsDelta() && x.IsNucleon())):
		tmp := sqrtS - 1.104
		if tmp <= 0 {
			return 0
		}
		return 68.0 / math.Pow(tmp, 1.951)

	case sameSign && (((x.IsNstar() || x.IsNstar1535()) && y.IsNucleon()) ||
		((y.IsNstar() || y.IsNstar1535()) && x.IsNucleon())):
		switch twoI {
		case 2:
			return 7.0 / msqr
		case 0:
			v := 14.0 / msqr
			if x.IsNstar1535() || y.IsNstar1535() {
				return 6.5 * v
			}
			return v
		}
		return 0

	case sameSign && ((x.IsDeltastar() && y.IsNucleon()) || (y.IsDeltastar() && x.IsNucleon())):
		return 15.0 / msqr

	case sameSign && x.IsDelta() && y.IsDelta():
		switch twoI {
		case 2:
			return 45.0 / msqr
		case 0:
			return 120.0 / msqr
		}
		return 0

	case sameSign && ((x.IsNstar() && y.IsDelta()) || (y.IsNstar() && x.IsDelta())):
		return 7.0 / msqr

	case sameSign && ((x.IsDeltastar() && y.IsDelta()) || (y.IsDeltastar() && x.IsDelta())):
		switch twoI {
		case 2:
			return 15.0 / msqr
		case 0:
			return 25.0 / msqr
		}
		return 0

	case (x.IsDeuteron() && y.IsPion()) || (y.IsDeuteron() && x.IsPion()):
		denom := (sqrtS-2.145)*(sqrtS-2.145) + 0.065*0.065
		if denom <= 0 {
			return 0
		}
		return 0.055 / denom * (1 - math.Exp(-20*(sqrtS-2.0)))
	}
	return 0
}
