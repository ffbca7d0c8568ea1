package batch

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

// Options controls a batch run
type Options struct {
	// Workers bounds the number of records designed at once. Zero or less
	// uses one worker per CPU.
	Workers  int
	Defaults Defaults
	Logger   *log.Logger
}

// Result is the outcome of one record. Exactly one of Design and Err is set.
type Result struct {
	Index  int
	Record Record
	Input  footing.DesignInput
	Design *footing.FootingDesign
	Err    error
}

// OK reports whether the record produced a design
func (r Result) OK() bool {
	return r.Err == nil && r.Design != nil
}

// Run designs every record concurrently. Results keep the input order and a
// failing record never stops the others. The returned error is only set when
// ctx is cancelled.
func Run(ctx context.Context, records []Record, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = designOne(i, rec, opts.Defaults, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func designOne(i int, rec Record, def Defaults, logger *log.Logger) Result {
	res := Result{Index: i, Record: rec}
	label := rec.Label(i)

	in, err := Normalize(rec, def)
	if err != nil {
		logger.Warn("rejected record", "id", label, "err", err)
		res.Err = err
		return res
	}
	if in.ID == "" {
		in.ID = label
	}
	res.Input = in

	d, err := footing.Size(in)
	if err != nil {
		logger.Warn("design failed", "id", label, "err", err)
		res.Err = err
		return res
	}
	logger.Debug("designed footing", "id", label, "size", d.String(), "iterations", d.Iterations)
	res.Design = d
	return res
}

// Summary counts designed and failed records
func Summary(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
