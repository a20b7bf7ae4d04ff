package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformPDF evaluates the elementwise uniform density on [pmin, pmax].
// Scalar values give a scalar density; vector values give per-component
// densities, with scalar or equal-length vector bounds broadcast across
// components.
func UniformPDF(value, pmin, pmax any) (any, error) {
	if Dim(value) == 0 {
		v, err := AsScalar(value)
		if err != nil {
			return nil, fmt.Errorf("uniform pdf: %w", err)
		}
		lo, hi, err := scalarBounds(pmin, pmax)
		if err != nil {
			return nil, fmt.Errorf("uniform pdf: %w", err)
		}
		return distuv.Uniform{Min: lo, Max: hi}.Prob(v), nil
	}

	vec := value.([]float64)
	lo, err := AsVector(pmin, len(vec))
	if err != nil {
		return nil, fmt.Errorf("uniform pdf: pmin: %w", err)
	}
	hi, err := AsVector(pmax, len(vec))
	if err != nil {
		return nil, fmt.Errorf("uniform pdf: pmax: %w", err)
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = distuv.Uniform{Min: lo[i], Max: hi[i]}.Prob(v)
	}
	return out, nil
}

// UniformRVS draws from the uniform distribution on [pmin, pmax]. With
// size 0 and scalar bounds a single scalar is drawn; vector bounds or a
// positive size yield a vector of independent component draws.
func UniformRVS(rng *rand.Rand, pmin, pmax any, size int) (any, error) {
	n := size
	if n == 0 {
		if Dim(pmin) == 1 {
			n = len(pmin.([]float64))
		} else if Dim(pmax) == 1 {
			n = len(pmax.([]float64))
		}
	}

	if n == 0 {
		lo, hi, err := scalarBounds(pmin, pmax)
		if err != nil {
			return nil, fmt.Errorf("uniform rvs: %w", err)
		}
		return distuv.Uniform{Min: lo, Max: hi, Src: rng}.Rand(), nil
	}

	lo, err := AsVector(pmin, n)
	if err != nil {
		return nil, fmt.Errorf("uniform rvs: pmin: %w", err)
	}
	hi, err := AsVector(pmax, n)
	if err != nil {
		return nil, fmt.Errorf("uniform rvs: pmax: %w", err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = distuv.Uniform{Min: lo[i], Max: hi[i], Src: rng}.Rand()
	}
	return out, nil
}

func scalarBounds(pmin, pmax any) (float64, float64, error) {
	lo, err := AsScalar(pmin)
	if err != nil {
		return 0, 0, fmt.Errorf("pmin: %w", err)
	}
	hi, err := AsScalar(pmax)
	if err != nil {
		return 0, 0, fmt.Errorf("pmax: %w", err)
	}
	return lo, hi, nil
}
