package kinematics

import "math"

// Source is the minimal random-stream contract the kernel's specials
// need: a uniform draw on [0, 1). Satisfied by *rand.Rand and by the
// kernel's own rng.Stream.
type Source interface {
	Float64() float64
}

// densityIntegrand is the (unnormalized) Maxwell-Juttner density in
// energy: p^2 exp(-E/T) dp reexpressed in E picks up the dp/dE = E/p
// Jacobian, giving p E exp(-E/T).
func densityIntegrand(energy, momentumSqr, temperature float64) float64 {
	return math.Sqrt(momentumSqr) * energy * math.Exp(-energy/temperature)
}

// MeanEnergy returns the analytic Maxwell-Juttner mean energy
//
//	<E> = 3T + m K1(m/T) / K2(m/T)
//
// used both as the rejection-sampling proposal point and as the
// reference value the sampler's law is tested against.
func MeanEnergy(temperature, mass float64) float64 {
	x := mass / temperature
	return 3*temperature + mass*BesselK1(x)/BesselK2(x)
}

// SampleMaxwellJuttner draws a relativistic momentum magnitude whose
// density is proportional to p^2 exp(-E/T), E = sqrt(p^2+m^2), via
// rejection sampling on energy in [m, 50T] with a proposal ceiling of
// twice the density at the analytic mean energy. The factor of 2 is
// required for the ceiling to dominate the true density everywhere in
// the sampling range; a smaller factor would admit energies whose
// acceptance probability exceeds 1 and bias the sample.
func SampleMaxwellJuttner(rng Source, temperature, mass float64) float64 {
	energyAvg := MeanEnergy(temperature, mass)
	momentumAvgSqr := (energyAvg - mass) * (energyAvg + mass)
	probabilityMax := 2 * densityIntegrand(energyAvg, momentumAvgSqr, temperature)

	low, high := mass, 50*temperature
	for {
		energy := low + rng.Float64()*(high-low)
		momentumSqr := (energy - mass) * (energy + mass)
		if momentumSqr <= 0 {
			continue
		}
		density := densityIntegrand(energy, momentumSqr, temperature)
		if rng.Float64()*probabilityMax <= density {
			return math.Sqrt(momentumSqr)
		}
	}
}
