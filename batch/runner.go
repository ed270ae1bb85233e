// Package batch is the concurrent runner that drives the reaction
// kernel over many pairs at once. BuildChannels is safe to call
// concurrently for disjoint inputs, so the runner fans jobs out to a
// fixed pool of workers, each owning its own random stream.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sbinet/hadrx/metrics"
	"github.com/sbinet/hadrx/particle"
	"github.com/sbinet/hadrx/reaction"
	"github.com/sbinet/hadrx/rng"
	"github.com/sbinet/hadrx/stringproc"
)

// Job is one pair to evaluate: the two species, the collision energy,
// and the policy to apply.
type Job struct {
	A, B   particle.Type
	SqrtS  float64
	Policy reaction.Policy
}

// Result pairs a Job's index with its outcome, so callers can match
// results back to the input slice regardless of completion order.
type Result struct {
	Index    int
	Branches []*reaction.Branch
	Err      error
}

// Runner evaluates a batch of Jobs concurrently, one goroutine per
// worker and one independent rng.Stream per worker so the kernel's
// "the random provider is a sequential stream" contract is honored
// without workers racing on a shared one.
type Runner struct {
	Registry particle.Registry
	Provider stringproc.Provider
	Workers  int
	Seed     int64
	Metrics  metrics.Recorder
}

// Run evaluates every job in jobs, fanning out across Workers
// goroutines, and returns results in input order. Once ctx is cancelled,
// jobs not yet started are not evaluated and their Result carries
// ctx.Err(); in-flight jobs still complete. Run always waits for every
// job and returns one Result per job with a nil error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}
	jobc := make(chan int, len(jobs))
	resc := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		stream := rng.New(r.Seed + int64(w))
		wg.Add(1)
		go func(stream rng.Stream) {
			defer wg.Done()
			for idx := range jobc {
				select {
				case <-ctx.Done():
					resc <- Result{Index: idx, Err: ctx.Err()}
					continue
				default:
				}
				job := jobs[idx]
				start := time.Now()
				branches, err := reaction.BuildChannels(r.Registry, &job.A, &job.B, job.SqrtS, job.Policy, r.Provider, stream)
				if r.Metrics != nil {
					if err != nil {
						r.Metrics.ObserveError(errorKind(err))
					} else {
						r.Metrics.ObserveCall(len(branches), time.Since(start).Seconds())
					}
				}
				resc <- Result{Index: idx, Branches: branches, Err: err}
			}
		}(stream)
	}

	for i := range jobs {
		jobc <- i
	}
	close(jobc)

	wg.Wait()
	close(resc)

	out := make([]Result, len(jobs))
	for res := range resc {
		out[res.Index] = res
	}
	return out, nil
}

func errorKind(err error) string {
	if ke, ok := err.(*reaction.KernelError); ok {
		return ke.Kind.String()
	}
	return fmt.Sprintf("unknown: %v", err)
}
