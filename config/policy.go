// Package config decodes the TOML policy file the reactgen CLI loads.
// Every field carries json and toml tags side by side so the same
// structs serve both file decoding and report output.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/sbinet/hadrx/reaction"
)

// Policy is the on-disk mirror of reaction.Policy: plain data, decoded
// once at startup and converted to the kernel's own type so the kernel
// package itself never depends on an encoding format.
type Policy struct {
	ElasticParameter float64      `json:"elastic_parameter" toml:"elastic_parameter"`
	TwoToOne         bool         `json:"two_to_one" toml:"two_to_one"`
	Included2to2     Included2to2 `json:"included_2to2" toml:"included_2to2"`
	LowSNNCut        float64      `json:"low_snn_cut" toml:"low_snn_cut"`
	StringsSwitch    bool         `json:"strings_switch" toml:"strings_switch"`
	NNbarTreatment   string       `json:"nnbar_treatment" toml:"nnbar_treatment"`
}

// Included2to2 is the TOML-friendly mirror of reaction.Included2to2: a
// named boolean per reaction class rather than a positional bitset, so
// a policy file reads as a list of toggles instead of magic bit indices.
type Included2to2 struct {
	Elastic             bool `json:"elastic" toml:"elastic"`
	NNToNR              bool `json:"nn_to_nr" toml:"nn_to_nr"`
	NNToDR              bool `json:"nn_to_dr" toml:"nn_to_dr"`
	KNToKN              bool `json:"kn_to_kn" toml:"kn_to_kn"`
	KNToKDelta          bool `json:"kn_to_kdelta" toml:"kn_to_kdelta"`
	StrangenessExchange bool `json:"strangeness_exchange" toml:"strangeness_exchange"`
}

// Load decodes a TOML policy file at path into a Policy.
func Load(path string) (*Policy, error) {
	var p Policy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return &p, nil
}

// ToReactionPolicy converts the decoded TOML policy into the kernel's
// own Policy type, resolving the string-valued NNbarTreatment enum.
func (p *Policy) ToReactionPolicy() (reaction.Policy, error) {
	treatment, err := parseNNbarTreatment(p.NNbarTreatment)
	if err != nil {
		return reaction.Policy{}, err
	}
	return reaction.Policy{
		ElasticParameter: p.ElasticParameter,
		TwoToOne:         p.TwoToOne,
		Included2to2: reaction.Included2to2{
			reaction.Elastic:             p.Included2to2.Elastic,
			reaction.NNToNR:              p.Included2to2.NNToNR,
			reaction.NNToDR:              p.Included2to2.NNToDR,
			reaction.KNToKN:              p.Included2to2.KNToKN,
			reaction.KNToKDelta:          p.Included2to2.KNToKDelta,
			reaction.StrangenessExchange: p.Included2to2.StrangenessExchange,
		},
		LowSNNCut:      p.LowSNNCut,
		StringsSwitch:  p.StringsSwitch,
		NNbarTreatment: treatment,
	}, nil
}

func parseNNbarTreatment(s string) (reaction.NNbarTreatment, error) {
	switch s {
	case "", "none":
		return reaction.NNbarNone, nil
	case "resonances":
		return reaction.NNbarResonances, nil
	case "strings":
		return reaction.NNbarStrings, nil
	default:
		return 0, fmt.Errorf("config: unknown nnbar_treatment %q", s)
	}
}
