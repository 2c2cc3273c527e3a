// Package batch solves many puzzle lines concurrently.
//
// Run fans the lines out to a fixed pool of workers. Each instance gets its
// own solver call, so no search state is shared between instances; outcomes
// are written by input index and come back in input order regardless of
// completion order. A bad line never aborts the batch: its error is recorded
// on its own Outcome.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/minpress/presses"
	"github.com/katalvlaran/minpress/puzzle"
)

// Options configures Run.
//
// Workers - number of concurrent solver goroutines (>= 1).
// Solver  - options forwarded to every presses.SolveButtons call.
type Options struct {
	Workers int
	Solver  []presses.Option
}

// DefaultOptions returns one worker per available CPU and default solver options.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Outcome is the result for one input line.
//
// Err is set for parse failures and for instances the solver refused
// (for example out-of-range positions); Result is then the zero value.
type Outcome struct {
	Number  int
	Result  presses.Result
	Err     error
	Elapsed time.Duration
}

// Run solves every line and returns one Outcome per line, in input order.
// A cancelled ctx is forwarded to the solver, so pending instances finish
// quickly as BudgetExceeded.
func Run(ctx context.Context, lines []puzzle.Line, opts Options) []Outcome {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	var (
		out  = make([]Outcome, len(lines))
		jobs = make(chan int, len(lines))
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx] = solveLine(ctx, lines[idx], opts.Solver)
			}
		}()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}

// solveLine runs one instance. It only touches its own Outcome.
func solveLine(ctx context.Context, line puzzle.Line, solver []presses.Option) Outcome {
	oc := Outcome{Number: line.Number}
	if line.Err != nil {
		log.Warningf("line %d: parse error: %v", line.Number, line.Err)
		oc.Err = line.Err

		return oc
	}

	start := time.Now()
	res, err := presses.SolveButtons(ctx, line.Instance.Buttons, line.Instance.Target, solver...)
	oc.Elapsed = time.Since(start)
	if err != nil {
		log.Warningf("line %d: %v", line.Number, err)
		oc.Err = err

		return oc
	}
	oc.Result = res

	if res.Status == presses.BudgetExceeded {
		log.Warningf("line %d: budget exhausted after %d steps (%s)", line.Number, res.Steps, res)
	}
	log.V(1).Infof("line %d: %s in %s", line.Number, res, oc.Elapsed)
	log.V(2).Infof("line %d: strategy=%s free=%d steps=%d", line.Number, res.Strategy, res.Free, res.Steps)

	return oc
}

// Summary aggregates a batch.
//
// Total sums only Optimal results. The slices hold the line numbers of the
// instances in each non-optimal category, in input order.
type Summary struct {
	Total        int
	Optimal      int
	Infeasible   []int
	Undetermined []int
	Failed       []int
}

// Summarize folds outcomes into a Summary.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, oc := range outcomes {
		switch {
		case oc.Err != nil:
			s.Failed = append(s.Failed, oc.Number)
		case oc.Result.Status == presses.Optimal:
			s.Optimal++
			s.Total += oc.Result.Sum
		case oc.Result.Status == presses.Infeasible:
			s.Infeasible = append(s.Infeasible, oc.Number)
		default:
			s.Undetermined = append(s.Undetermined, oc.Number)
		}
	}

	return s
}
