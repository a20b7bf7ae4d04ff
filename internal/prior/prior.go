package prior

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/vk/priorgrid/internal/dist"
	"github.com/vk/priorgrid/internal/param"
)

// Uniform returns a parameter spec with a flat prior on [pmin, pmax].
// pmin and pmax may be numbers, specs, or already-built instances; size 0
// declares a scalar parameter, a positive size an elementwise vector.
func Uniform(pmin, pmax any, size int) *param.ParamSpec {
	spec := param.NewFuncSpec(uniformPrior, "", param.Kwargs{"pmin": pmin, "pmax": pmax})
	name := fmt.Sprintf("Uniform(pmin=%v, pmax=%v)", pmin, pmax)
	return param.NewParamSpec(spec, uniformSampler, size, name)
}

var uniformPrior = &param.Callable{
	Args: []string{"value"},
	Keys: []string{"pmin", "pmax"},
	Fn: func(args []any, kw map[string]any) (any, error) {
		return dist.UniformPDF(args[0], kw["pmin"], kw["pmax"])
	},
}

func uniformSampler(rng *rand.Rand, kw map[string]any) (any, error) {
	return dist.UniformRVS(rng, kw["pmin"], kw["pmax"], sizeHint(kw))
}

// Normal returns a parameter spec with a normal prior. sigma may be a
// scalar, a vector of per-component standard deviations, or a full
// covariance matrix; vector values under a non-scalar sigma are treated
// jointly.
func Normal(mu, sigma any, size int) *param.ParamSpec {
	spec := param.NewFuncSpec(normalPrior, "", param.Kwargs{"mu": mu, "sigma": sigma})
	name := fmt.Sprintf("Normal(mu=%v, sigma=%v)", mu, sigma)
	return param.NewParamSpec(spec, normalSampler, size, name)
}

var normalPrior = &param.Callable{
	Args: []string{"value"},
	Keys: []string{"mu", "sigma"},
	Fn: func(args []any, kw map[string]any) (any, error) {
		return dist.NormalPDF(args[0], kw["mu"], kw["sigma"])
	},
}

func normalSampler(rng *rand.Rand, kw map[string]any) (any, error) {
	return dist.NormalRVS(rng, kw["mu"], kw["sigma"], sizeHint(kw))
}

// User builds a parameter spec from a caller-supplied density function spec
// and optional sampler, giving arbitrary priors the same spec/instance
// machinery as the built-in families.
func User(density *param.FuncSpec, sampler param.Sampler, size int) *param.ParamSpec {
	return param.NewParamSpec(density, sampler, size, "User")
}

// Constant returns a spec for a fixed, non-fittable value.
func Constant(value any) *param.ConstSpec {
	return param.NewConstSpec(value)
}

func sizeHint(kw map[string]any) int {
	if s, ok := kw["size"].(int); ok {
		return s
	}
	return 0
}
