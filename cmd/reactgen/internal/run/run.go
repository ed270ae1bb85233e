// Package run wires the config, particle registry, random stream, and
// reaction kernel together for the reactgen CLI's single-pair mode.
package run

import (
	"fmt"
	"io"

	"github.com/sbinet/hadrx/config"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/reaction"
	"github.com/sbinet/hadrx/rng"
	"github.com/sbinet/hadrx/stringproc"
)

// Options configures a single reactgen invocation.
type Options struct {
	PolicyPath string
	PdgA, PdgB int
	SqrtS      float64
	Seed       int64
	Stdout     io.Writer
}

// One loads the policy, resolves the requested species, runs the
// kernel once, and prints the resulting branch list to opts.Stdout.
func One(opts Options) error {
	cfg, err := config.Load(opts.PolicyPath)
	if err != nil {
		return err
	}
	policy, err := cfg.ToReactionPolicy()
	if err != nil {
		return err
	}

	reg := particle.NewRegistry()
	a, okA := reg.TryFind(pdg.Code(opts.PdgA))
	b, okB := reg.TryFind(pdg.Code(opts.PdgB))
	if !okA || !okB {
		return fmt.Errorf("reactgen: unknown PDG code (a=%d known=%v, b=%d known=%v)", opts.PdgA, okA, opts.PdgB, okB)
	}

	stream := rng.New(opts.Seed)
	provider := &stringproc.Reference{}

	branches, err := reaction.BuildChannels(reg, a, b, opts.SqrtS, policy, provider, stream)
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Stdout, "%s %s at sqrt(s) = %.4f GeV: %d branch(es)\n", a.Name, b.Name, opts.SqrtS, len(branches))
	for _, br := range branches {
		fmt.Fprintf(opts.Stdout, "  %-12s weight=%.6g mb  products=%v\n", br.Kind, br.WeightMb, br.Products)
	}
	return nil
}
