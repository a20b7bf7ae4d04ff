package prior

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/vk/priorgrid/internal/dist"
	"github.com/vk/priorgrid/internal/param"
)

// ErrBounds is returned by the LinearExp density and sampler when the
// bounds do not satisfy pmin < pmax.
var ErrBounds = errors.New("linearexp prior requires pmin < pmax")

// LinearExp returns a parameter spec with pdf(x) proportional to 10^x on
// [pmin, pmax]. Both the density and the sampler validate pmin < pmax
// before touching the distribution layer.
func LinearExp(pmin, pmax any, size int) *param.ParamSpec {
	spec := param.NewFuncSpec(linearExpPrior, "", param.Kwargs{"pmin": pmin, "pmax": pmax})
	name := fmt.Sprintf("LinearExp(pmin=%v, pmax=%v)", pmin, pmax)
	return param.NewParamSpec(spec, linearExpSampler, size, name)
}

var linearExpPrior = &param.Callable{
	Args: []string{"value"},
	Keys: []string{"pmin", "pmax"},
	Fn: func(args []any, kw map[string]any) (any, error) {
		return linearExpPDF(args[0], kw["pmin"], kw["pmax"])
	},
}

func linearExpPDF(value, pmin, pmax any) (any, error) {
	if err := checkBounds(pmin, pmax); err != nil {
		return nil, err
	}

	if dist.Dim(value) == 0 {
		v, err := dist.AsScalar(value)
		if err != nil {
			return nil, fmt.Errorf("linearexp pdf: %w", err)
		}
		lo, err := dist.AsScalar(pmin)
		if err != nil {
			return nil, fmt.Errorf("linearexp pdf: pmin: %w", err)
		}
		hi, err := dist.AsScalar(pmax)
		if err != nil {
			return nil, fmt.Errorf("linearexp pdf: pmax: %w", err)
		}
		return linearExpDensity(v, lo, hi), nil
	}

	vec := value.([]float64)
	lo, err := dist.AsVector(pmin, len(vec))
	if err != nil {
		return nil, fmt.Errorf("linearexp pdf: pmin: %w", err)
	}
	hi, err := dist.AsVector(pmax, len(vec))
	if err != nil {
		return nil, fmt.Errorf("linearexp pdf: pmax: %w", err)
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = linearExpDensity(v, lo[i], hi[i])
	}
	return out, nil
}

func linearExpDensity(v, lo, hi float64) float64 {
	if v < lo || v > hi {
		return 0
	}
	return math.Ln10 * math.Pow(10, v) / (math.Pow(10, hi) - math.Pow(10, lo))
}

func linearExpSampler(rng *rand.Rand, kw map[string]any) (any, error) {
	if err := checkBounds(kw["pmin"], kw["pmax"]); err != nil {
		return nil, err
	}

	// draw uniformly in linear space and map back to the exponent
	draw, err := dist.UniformRVS(rng, pow10(kw["pmin"]), pow10(kw["pmax"]), sizeHint(kw))
	if err != nil {
		return nil, fmt.Errorf("linearexp sampler: %w", err)
	}
	switch d := draw.(type) {
	case float64:
		return math.Log10(d), nil
	case []float64:
		out := make([]float64, len(d))
		for i, v := range d {
			out[i] = math.Log10(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("linearexp sampler: unexpected draw type %T", draw)
	}
}

func pow10(v any) any {
	switch x := v.(type) {
	case []float64:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = math.Pow(10, e)
		}
		return out
	default:
		if s, err := dist.AsScalar(v); err == nil {
			return math.Pow(10, s)
		}
		return v
	}
}

// checkBounds verifies pmin < pmax for every broadcast pair of bounds.
func checkBounds(pmin, pmax any) error {
	los, ok := pmin.([]float64)
	if !ok {
		lo, err := dist.AsScalar(pmin)
		if err != nil {
			return fmt.Errorf("linearexp: pmin: %w", err)
		}
		los = []float64{lo}
	}
	his, ok := pmax.([]float64)
	if !ok {
		hi, err := dist.AsScalar(pmax)
		if err != nil {
			return fmt.Errorf("linearexp: pmax: %w", err)
		}
		his = []float64{hi}
	}

	n := len(los)
	if len(his) > n {
		n = len(his)
	}
	for i := 0; i < n; i++ {
		lo := los[i%len(los)]
		hi := his[i%len(his)]
		if lo >= hi {
			return fmt.Errorf("pmin %v, pmax %v: %w", pmin, pmax, ErrBounds)
		}
	}
	return nil
}
