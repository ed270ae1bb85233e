package reaction

import "github.com/sbinet/hadrx/pdg"

// Kind names the process category a Branch belongs to; the ordering of
// these constants matches the ordering the branch list is built in
// (elastic, then 2-to-1, then 2-to-2, then string). The NN-bar closure
// branches are ordinary two-to-two processes and carry KindTwoToTwo,
// but are always appended last because their residual weight is
// computed from everything already on the list.
type Kind int

const (
	KindElastic Kind = iota
	KindTwoToOne
	KindTwoToTwo
	KindStringSoft
	KindStringHard
)

func (k Kind) String() string {
	switch k {
	case KindElastic:
		return "elastic"
	case KindTwoToOne:
		return "two_to_one"
	case KindTwoToTwo:
		return "two_to_two"
	case KindStringSoft:
		return "string_soft"
	case KindStringHard:
		return "string_hard"
	default:
		return "unknown"
	}
}

// Branch is one candidate outgoing channel with its weight in
// millibarn, the unit the whole kernel works in.
type Branch struct {
	Products []pdg.Code
	WeightMb float64
	Kind     Kind
}

// TotalWeight sums the weights of a branch list: the total cross
// section for the pair under the policy that produced the list.
func TotalWeight(branches []*Branch) float64 {
	sum := 0.0
	for _, br := range branches {
		sum += br.WeightMb
	}
	return sum
}
