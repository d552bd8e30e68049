package calculator

import (
	"context"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"outrunner/model"
)

// SweepKV evaluates one design per target KV with at most workers designs in
// flight. Results are in the order of kvs. The first failing design cancels
// the rest of the batch.
func (c *Calculator) SweepKV(ctx context.Context, params model.Params, kvs []float64, workers int) ([]model.MotorDesign, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	designs := make([]model.MotorDesign, len(kvs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, kv := range kvs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := params
			p.TargetKV = kv
			d, err := c.CalculateMotorDesign(p)
			if err != nil {
				return fmt.Errorf("sweep kv %v: %w", kv, err)
			}
			designs[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"designs": len(designs),
		"workers": workers,
	}).Debug("kv sweep finished")
	return designs, nil
}

// SweepKV runs a sweep on the default Calculator.
func SweepKV(ctx context.Context, params model.Params, kvs []float64, workers int) ([]model.MotorDesign, error) {
	return defaultCalculator.SweepKV(ctx, params, kvs, workers)
}

// KVRange expands [from, to] by step into a list of target KVs.
func KVRange(from, to, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, &InvalidParameterError{Field: "kvStep", Constraint: "greater than 0", Value: step}
	}
	if to < from {
		return nil, &InvalidParameterError{Field: "kvTo", Constraint: "not less than kvFrom", Value: to}
	}
	n := int((to-from)/step+1e-9) + 1
	kvs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		kvs = append(kvs, from+float64(i)*step)
	}
	return kvs, nil
}
