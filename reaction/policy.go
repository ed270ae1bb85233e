// Package reaction is the hadronic reaction kernel: given an incoming
// particle pair, the collision energy, and a Policy, BuildChannels
// returns the ordered list of candidate outgoing branches and their
// cross-section weights. It is a pure function of its arguments plus
// the random draws (the string/resonance crossover decision and, in the
// string regime, the soft-subprocess choice) taken from a caller-supplied
// Stream; no other state is shared between calls,
// matching the synchronous, call-per-pair concurrency model the kernel
// is specified against.
package reaction

// IncludedReaction names one bit of the included_2to2 policy bitset.
type IncludedReaction int

const (
	Elastic IncludedReaction = iota
	NNToNR
	NNToDR
	KNToKN
	KNToKDelta
	StrangenessExchange
	numIncludedReactions
)

// Included2to2 is the fixed-size bitset of 2-to-2 reaction classes a
// Policy may enable.
type Included2to2 [numIncludedReactions]bool

func (b Included2to2) has(r IncludedReaction) bool { return b[r] }

// Any reports whether at least one 2-to-2 class is enabled.
func (b Included2to2) Any() bool {
	for _, v := range b {
		if v {
			return true
		}
	}
	return false
}

// NNbarTreatment selects how the kernel handles nucleon-antinucleon
// annihilation and its reverse.
type NNbarTreatment int

const (
	NNbarNone NNbarTreatment = iota
	NNbarResonances
	NNbarStrings
)

// Policy is the kernel's single configuration input.
type Policy struct {
	// ElasticParameter is used verbatim as the elastic cross section
	// when non-negative; a negative value means "use the parametrized
	// value for this pair type".
	ElasticParameter float64
	TwoToOne         bool
	Included2to2     Included2to2
	LowSNNCut        float64
	StringsSwitch    bool
	NNbarTreatment   NNbarTreatment

	// Logger, when non-nil, receives one diagnostic line per emitted
	// branch plus a per-call summary. It is supplied per call and never
	// stored, so concurrent callers with distinct loggers do not race.
	Logger func(format string, args ...interface{})
}
