package param

import "errors"

var (
	// ErrNoSampler is returned when Sample is called on a parameter that
	// was built without a sampler.
	ErrNoSampler = errors.New("no sampler provided")

	// ErrValueGiven is returned when the sampling context already supplies
	// a value under the parameter's own name.
	ErrValueGiven = errors.New("value already given while sampling")

	// ErrCycle is returned by the sampling driver when the hyperparameter
	// graph contains a cyclic dependency.
	ErrCycle = errors.New("cyclic parameter dependency")
)
