package reaction

import (
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/stringproc"
)

// BuildChannels is the kernel's single entry point: given an incoming
// pair, the collision energy, a Policy, and a string provider, it
// returns the ordered branch list.
// It draws once from the supplied Stream for the string/resonance
// crossover decision and, when the string regime is taken, once more for
// the soft-subprocess choice, which it also reports to provider through
// SetSubproc. It touches no other state, so independent calls from
// concurrent goroutines are safe as long as each goroutine owns its own
// Stream and provider.
func BuildChannels(reg particle.Registry, a, b *particle.Type, sqrtS float64, policy Policy, provider stringproc.Provider, stream Stream) ([]*Branch, error) {
	var branches []*Branch

	elasticBranch, err := buildElastic(a, b, sqrtS, policy)
	if err != nil {
		return nil, err
	}
	if elasticBranch != nil {
		branches = append(branches, elasticBranch)
	}
	elasticXS := 0.0
	if elasticBranch != nil {
		elasticXS = elasticBranch.WeightMb
	}

	var draw float64
	if stream != nil {
		draw = stream.Float64()
	}
	useStrings := decideString(policy.StringsSwitch, a, b, sqrtS, draw)

	switch {
	case useStrings:
		strBranches, err := stringExcitation(provider, stream, a, b, sqrtS, elasticXS)
		if err != nil {
			return nil, err
		}
		branches = append(branches, strBranches...)

	default:
		if policy.TwoToOne {
			branches = append(branches, twoToOne(reg, a, b, sqrtS)...)
		}
		if policy.Included2to2.Any() {
			twoTwo, err := twoToTwo(reg, a, b, sqrtS, policy.Included2to2)
			if err != nil {
				return nil, err
			}
			branches = append(branches, twoTwo...)
		}
	}

	branches = append(branches, nnbarClosure(reg, a, b, sqrtS, policy.NNbarTreatment, branches)...)

	if policy.Logger != nil {
		for _, br := range branches {
			policy.Logger("%s %s -> %v: %s %g mb", a.Name, b.Name, br.Products, br.Kind, br.WeightMb)
		}
		policy.Logger("%s %s at sqrt(s)=%g: %d branch(es)", a.Name, b.Name, sqrtS, len(branches))
	}
	return branches, nil
}
