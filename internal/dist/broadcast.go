package dist

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dim reports the broadcast rank of a numeric argument: 0 for scalars,
// 1 for vectors, 2 for matrices.
func Dim(v any) int {
	switch v.(type) {
	case [][]float64, *mat.SymDense, mat.Symmetric:
		return 2
	case []float64:
		return 1
	default:
		return 0
	}
}

// AsScalar coerces the common numeric types to float64.
func AsScalar(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected scalar, got %T", v)
	}
}

// AsVector returns the length-n []float64 form of v, broadcasting a scalar
// to n copies. A vector argument must already have length n.
func AsVector(v any, n int) ([]float64, error) {
	if vec, ok := v.([]float64); ok {
		if len(vec) != n {
			return nil, fmt.Errorf("expected vector of length %d, got %d", n, len(vec))
		}
		return vec, nil
	}
	s, err := AsScalar(v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s
	}
	return out, nil
}

// Covariance builds the n-by-n covariance matrix described by sigma: a
// scalar gives sigma^2 times the identity, a vector the diagonal of its
// squares, and a matrix is used as the covariance directly.
func Covariance(sigma any, n int) (*mat.SymDense, error) {
	switch s := sigma.(type) {
	case *mat.SymDense:
		if s.SymmetricDim() != n {
			return nil, fmt.Errorf("covariance dimension %d does not match %d", s.SymmetricDim(), n)
		}
		return s, nil
	case [][]float64:
		if len(s) != n {
			return nil, fmt.Errorf("covariance dimension %d does not match %d", len(s), n)
		}
		cov := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			if len(s[i]) != n {
				return nil, fmt.Errorf("covariance row %d has length %d, want %d", i, len(s[i]), n)
			}
			for j := i; j < n; j++ {
				cov.SetSym(i, j, s[i][j])
			}
		}
		return cov, nil
	case []float64:
		if len(s) != n {
			return nil, fmt.Errorf("sigma vector length %d does not match %d", len(s), n)
		}
		cov := mat.NewSymDense(n, nil)
		for i, sd := range s {
			cov.SetSym(i, i, sd*sd)
		}
		return cov, nil
	default:
		sd, err := AsScalar(sigma)
		if err != nil {
			return nil, err
		}
		cov := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			cov.SetSym(i, i, sd*sd)
		}
		return cov, nil
	}
}
