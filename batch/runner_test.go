package batch_test

import (
	"context"
	"testing"

	"github.com/sbinet/hadrx/batch"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/pdg"
	"github.com/sbinet/hadrx/reaction"
	"github.com/sbinet/hadrx/stringproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ppPolicy() reaction.Policy {
	return reaction.Policy{
		ElasticParameter: -1,
		TwoToOne:         true,
		Included2to2: reaction.Included2to2{
			reaction.Elastic: true,
			reaction.NNToNR:  true,
		},
	}
}

func TestRunnerReturnsResultsInInputOrder(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)
	n := reg.Find(pdg.N)

	jobs := []batch.Job{
		{A: *p, B: *p, SqrtS: 2.2, Policy: ppPolicy()},
		{A: *p, B: *n, SqrtS: 2.3, Policy: ppPolicy()},
		{A: *n, B: *n, SqrtS: 2.4, Policy: ppPolicy()},
	}

	r := &batch.Runner{
		Registry: reg,
		Provider: &stringproc.Reference{},
		Workers:  2,
		Seed:     1,
	}

	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.NoError(t, res.Err)
		assert.NotEmpty(t, res.Branches)
	}
}

func TestRunnerHonorsContextCancellation(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)

	jobs := make([]batch.Job, 20)
	for i := range jobs {
		jobs[i] = batch.Job{A: *p, B: *p, SqrtS: 2.2, Policy: ppPolicy()}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &batch.Runner{Registry: reg, Provider: &stringproc.Reference{}, Workers: 4, Seed: 1}
	results, err := r.Run(ctx, jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	sawCancellation := false
	for _, res := range results {
		if res.Err != nil {
			sawCancellation = true
		}
	}
	assert.True(t, sawCancellation)
}

func TestRunnerDefaultsToOneWorker(t *testing.T) {
	reg := particle.NewRegistry()
	p := reg.Find(pdg.P)
	jobs := []batch.Job{{A: *p, B: *p, SqrtS: 2.2, Policy: ppPolicy()}}

	r := &batch.Runner{Registry: reg, Provider: &stringproc.Reference{}, Seed: 1}
	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}
