// Package batch runs one résumé against many jobs in parallel. Each
// evaluation is an independent pure call, so the only coordination needed is
// a bounded worker pool; results land in per-index slots with no shared
// accumulator.
package batch

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/match-engine/internal/match"
	"github.com/jonathan/match-engine/internal/types"
)

// DefaultWorkers bounds the pool when the caller does not choose a size.
const DefaultWorkers = 8

// Job pairs a caller-assigned label with a job snapshot.
type Job struct {
	Label    string
	Snapshot *types.JobSnapshot
}

// Evaluation is the outcome for a single job. Exactly one of Result and Err
// is set. ID is a fresh UUID so callers can reference individual evaluations
// in logs or downstream storage.
type Evaluation struct {
	ID     string
	Label  string
	Result *types.MatchResult
	Err    error
}

// Evaluator fans one résumé out across jobs.
type Evaluator struct {
	engine  *match.Engine
	log     *zap.Logger
	workers int
}

// New builds an Evaluator. workers <= 0 selects DefaultWorkers.
func New(engine *match.Engine, log *zap.Logger, workers int) *Evaluator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{engine: engine, log: log, workers: workers}
}

// Run evaluates the résumé against every job and returns one Evaluation per
// job, in input order. Individual evaluation failures (such as a job with no
// requirements) are recorded on their Evaluation rather than aborting the
// batch; Run itself fails only when the context is canceled.
func (e *Evaluator) Run(ctx context.Context, resume *types.ResumeSnapshot, jobs []Job) ([]Evaluation, error) {
	evals := make([]Evaluation, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			eval := Evaluation{ID: uuid.NewString(), Label: j.Label}
			result, err := e.engine.EvaluateMatch(resume, j.Snapshot)
			if err != nil {
				eval.Err = err
				e.log.Warn("evaluation failed",
					zap.String("id", eval.ID),
					zap.String("label", j.Label),
					zap.Error(err),
				)
			} else {
				eval.Result = result
				e.log.Debug("evaluation done",
					zap.String("id", eval.ID),
					zap.String("label", j.Label),
					zap.Float64("score", result.Score),
				)
			}
			evals[i] = eval
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return evals, nil
}

// Ranked returns the successful evaluations sorted by score descending.
// Ties keep input order; failed evaluations are dropped.
func Ranked(evals []Evaluation) []Evaluation {
	ranked := make([]Evaluation, 0, len(evals))
	for _, ev := range evals {
		if ev.Err == nil {
			ranked = append(ranked, ev)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	return ranked
}
