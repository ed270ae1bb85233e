package xsection_test

import (
	"math"
	"testing"

	"github.com/sbinet/hadrx/xsection"
	"github.com/stretchr/testify/assert"
)

func TestParametrizationsNonNegative(t *testing.T) {
	reg := xsection.NewRegistry()
	for _, name := range reg.Names() {
		f, _ := reg.Lookup(name)
		for _, s := range []float64{1.0, 4.0, 10.0, 100.0, 1000.0} {
			v := f(s)
			assert.GreaterOrEqualf(t, v, 0.0, "%s(%v) went negative", name, s)
			assert.False(t, math.IsNaN(v), "%s(%v) is NaN", name, s)
		}
	}
}

func TestPiPlusPElasticPeaksNearDeltaPole(t *testing.T) {
	sAtPole := 1.232 * 1.232
	sOffPole := 2.5 * 2.5
	atPole := xsection.PiPlusPElastic(sAtPole)
	offPole := xsection.PiPlusPElastic(sOffPole)
	assert.Greater(t, atPole, offPole)
}

// TestElasticMonotonicityInvariant checks that pp_elastic, np_elastic
// and ppbar_elastic never go negative, the condition the kernel's
// checkPositive gate enforces by raising a fatal error otherwise.
func TestElasticMonotonicityInvariant(t *testing.T) {
	for _, s := range []float64{1.0, 4.0, 10.0, 100.0, 1000.0, 1e6} {
		assert.GreaterOrEqual(t, xsection.PPElastic(s), 0.0)
		assert.GreaterOrEqual(t, xsection.NPElastic(s), 0.0)
		assert.GreaterOrEqual(t, xsection.PPbarElastic(s), 0.0)
	}
}

func TestNNStringHardNonNegativeAndRising(t *testing.T) {
	low := xsection.NNStringHard(16)
	high := xsection.NNStringHard(400)
	assert.GreaterOrEqual(t, low, 0.0)
	assert.Greater(t, high, low)
}
