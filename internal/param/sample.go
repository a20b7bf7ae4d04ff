package param

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Sample draws a consistent joint sample for the given root parameters and
// every hyperparameter reachable from them. The result maps each involved
// parameter's fully-qualified name to its drawn value.
//
// The walk is depth-first and memoized by name: a parameter shared by
// multiple branches is drawn exactly once, and a hyperparameter is always
// drawn strictly before any value depending on it. A cyclic dependency
// fails fast with ErrCycle. Each call produces an independent mapping.
func Sample(rng *rand.Rand, roots ...*Parameter) (Values, error) {
	out := make(Values)
	active := make(map[string]bool)
	for _, p := range roots {
		if err := sampleOne(rng, p, out, active); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// sampleOne draws p after recursively drawing the direct sub-parameters of
// its prior. The active set tracks the current recursion stack by name, so
// a revisit means a cycle.
func sampleOne(rng *rand.Rand, p *Parameter, out Values, active map[string]bool) error {
	if _, done := out[p.name]; done {
		return nil
	}
	if active[p.name] {
		return fmt.Errorf("parameter %q: %w", p.name, ErrCycle)
	}
	active[p.name] = true
	defer delete(active, p.name)

	for _, key := range p.prior.paramOrder {
		hyper, ok := p.prior.params[key].(*Parameter)
		if !ok {
			continue // constants are never sampled
		}
		if err := sampleOne(rng, hyper, out, active); err != nil {
			return err
		}
	}

	value, err := p.Sample(rng, out)
	if err != nil {
		return err
	}
	out[p.name] = value
	return nil
}
