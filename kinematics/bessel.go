package kinematics

import "math"

// besselK0 is the modified Bessel function of the second kind, order 0,
// via the standard polynomial approximations (Abramowitz & Stegun
// 9.8.5/9.8.6): a small-x log-singular series below x=2, a large-x
// asymptotic series above, matched at the boundary to within the
// approximation's quoted ~1e-7 relative error.
func besselK0(x float64) float64 {
	if x <= 2 {
		y := x * x / 14.0625 // (x/3.75)^2, the argument of the I0 series
		i0 := 1 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
		t := x * x / 4
		k0 := -math.Log(x/2)*i0 + (-0.57721566 + t*(0.42278420+t*(0.23069756+t*(0.03488590+
			t*(0.00262698+t*(0.00010750+t*0.00000740))))))
		return k0
	}
	t := 2 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + t*(-0.07832358+t*(0.02189568+
		t*(-0.01062446+t*(0.00587872+t*(-0.00251540+t*0.00053208))))))
}

// besselK1 is the order-1 counterpart of besselK0, same source series.
func besselK1(x float64) float64 {
	if x <= 2 {
		y := x * x / 14.0625 // (x/3.75)^2, the argument of the I1 series
		i1 := x * (0.5 + y*(0.87890594+y*(0.51498869+y*(0.15084934+y*(0.02658733+
			y*(0.00301532+y*0.00032411))))))
		t := x * x / 4
		k1 := math.Log(x/2)*i1 + 1/x*(1+t*(0.15443144+t*(-0.67278579+t*(-0.18156897+
			t*(-0.01919402+t*(-0.00110404+t*(-0.00004686)))))))
		return k1
	}
	t := 2 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + t*(0.23498619+t*(-0.03655620+
		t*(0.01504268+t*(-0.00780353+t*(0.00325614+t*(-0.00068245)))))))
}

// BesselK1 exposes the order-1 modified Bessel function of the second
// kind, used by MeanEnergy's analytic Maxwell-Juttner mean.
func BesselK1(x float64) float64 { return besselK1(x) }

// BesselK2 is the modified Bessel function of the second kind of order
// 2, obtained from the order-0/order-1 recurrence K_{n+1}(x) = K_{n-1}(x)
// + (2n/x) K_n(x).
func BesselK2(x float64) float64 {
	return besselK0(x) + (2/x)*besselK1(x)
}
