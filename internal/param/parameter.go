package param

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Sampler draws variates for a parameter. It receives an explicit random
// source and the same resolved keyword set the density function would have
// been given, with the parameter's vector size under "size" (0 = scalar).
type Sampler func(rng *rand.Rand, kw map[string]any) (any, error)

// ParamSpec is an immutable, uninstantiated template for a Parameter: a
// prior function spec, an optional sampler, a vector size (0 = scalar), and
// a display name. The same spec may be instantiated under many names.
type ParamSpec struct {
	prior    *FuncSpec
	sampler  Sampler
	size     int
	typeName string
}

// NewParamSpec builds a parameter spec. prior supplies the density; sampler
// may be nil for parameters that are evaluated but never drawn.
func NewParamSpec(prior *FuncSpec, sampler Sampler, size int, typeName string) *ParamSpec {
	return &ParamSpec{prior: prior, sampler: sampler, size: size, typeName: typeName}
}

// Size returns the spec's vector size, 0 meaning scalar.
func (s *ParamSpec) Size() int { return s.size }

// Instantiate binds the spec to a concrete fully-qualified name. The prior
// function spec is instantiated under the same name, which names any
// hyperparameters top-down (e.g. "sig_a" for slot "a" under "sig").
func (s *ParamSpec) Instantiate(name string) (*Parameter, error) {
	prior, err := s.prior.Instantiate(name, nil)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}
	return &Parameter{
		name:     name,
		prior:    prior,
		size:     s.size,
		sampler:  s.sampler,
		typeName: s.typeName,
	}, nil
}

// Parameter is a named random variable: a prior Function bound to the
// parameter's name, an optional sampler, and an optional vector size.
// Instances are topology-immutable after instantiation.
type Parameter struct {
	name     string
	prior    *Function
	size     int
	sampler  Sampler
	typeName string
}

// Name returns the parameter's fully-qualified name.
func (p *Parameter) Name() string { return p.name }

// Size returns the vector size, 0 meaning scalar.
func (p *Parameter) Size() int { return p.size }

// Prior returns the instantiated prior function.
func (p *Parameter) Prior() *Function { return p.prior }

// Bind implements the idempotent rebinding contract: an instance asked to
// bind to a new candidate name returns itself unchanged, so composition
// code can treat not-yet-named and already-named values uniformly.
func (p *Parameter) Bind(string) *Parameter { return p }

// PDF evaluates the prior density. When value is nil it is taken from ctx
// under the parameter's own name. An elementwise vector prior returns
// per-component densities, which are reduced by product; a joint density
// (e.g. full-covariance normal) is already scalar and passes through.
func (p *Parameter) PDF(value any, ctx Values) (float64, error) {
	res, err := p.evalPrior(value, ctx)
	if err != nil {
		return 0, err
	}
	switch r := res.(type) {
	case float64:
		return r, nil
	case []float64:
		return floats.Prod(r), nil
	default:
		return 0, fmt.Errorf("parameter %q: prior returned non-numeric %T", p.name, res)
	}
}

// LogPDF evaluates the natural log of the prior density, summing
// per-component log-densities for elementwise vector priors.
func (p *Parameter) LogPDF(value any, ctx Values) (float64, error) {
	res, err := p.evalPrior(value, ctx)
	if err != nil {
		return 0, err
	}
	switch r := res.(type) {
	case float64:
		return math.Log(r), nil
	case []float64:
		sum := 0.0
		for _, v := range r {
			sum += math.Log(v)
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("parameter %q: prior returned non-numeric %T", p.name, res)
	}
}

func (p *Parameter) evalPrior(value any, ctx Values) (any, error) {
	if value == nil {
		if v, ok := ctx[p.name]; ok {
			value = v
		}
	}
	return p.prior.Evaluate(ctx, value)
}

// Sample draws a value for the parameter. It is a configuration error to
// sample without an attached sampler, and a usage error for ctx to already
// hold a value under the parameter's own name. The sampler is substituted
// for the density function via the prior's resolution machinery, so it
// receives exactly the hyperparameters the density would have received.
func (p *Parameter) Sample(rng *rand.Rand, ctx Values) (any, error) {
	if p.sampler == nil {
		return nil, fmt.Errorf("parameter %q: %w", p.name, ErrNoSampler)
	}
	if _, ok := ctx[p.name]; ok {
		return nil, fmt.Errorf("parameter %q: %w", p.name, ErrValueGiven)
	}

	draw := func(args []any, kw map[string]any) (any, error) {
		return p.sampler(rng, kw)
	}
	return p.prior.EvaluateWith(draw, ctx, Kwargs{"size": p.size})
}

// Params returns the flattened free-parameter list: the parameter itself,
// followed by every non-constant parameter appearing recursively in its
// prior. Duplicates from shared hyperparameters are permitted.
func (p *Parameter) Params() []*Parameter {
	return append([]*Parameter{p}, p.prior.Params()...)
}

func (p *Parameter) String() string {
	if p.size > 0 {
		return fmt.Sprintf("%s:%s[%d]", p.name, p.typeName, p.size)
	}
	return fmt.Sprintf("%s:%s", p.name, p.typeName)
}

// ConstSpec is the uninstantiated template for a Constant.
type ConstSpec struct {
	value any
}

// NewConstSpec builds a spec for a fixed, non-fittable value.
func NewConstSpec(value any) *ConstSpec {
	return &ConstSpec{value: value}
}

// Instantiate binds the spec to a name.
func (s *ConstSpec) Instantiate(name string) *Constant {
	return &Constant{name: name, value: s.value}
}

// Constant is a named, fixed value. It never appears in a flattened
// free-parameter list and cannot be resampled; it exists to let a model
// keyword be hard-fixed instead of estimated.
type Constant struct {
	name  string
	value any
}

// Name returns the constant's fully-qualified name.
func (c *Constant) Name() string { return c.name }

// Value returns the fixed value.
func (c *Constant) Value() any { return c.value }

// Bind returns the constant unchanged; see Parameter.Bind.
func (c *Constant) Bind(string) *Constant { return c }

func (c *Constant) String() string {
	return fmt.Sprintf("%s:Constant=%v", c.name, c.value)
}

// Unique removes duplicates from a flattened parameter list, preserving
// first-seen order. Shared hyperparameters appear once.
func Unique(params []*Parameter) []*Parameter {
	seen := make(map[string]bool, len(params))
	out := make([]*Parameter, 0, len(params))
	for _, p := range params {
		if !seen[p.name] {
			seen[p.name] = true
			out = append(out, p)
		}
	}
	return out
}
