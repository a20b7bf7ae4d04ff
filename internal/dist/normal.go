package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalPDF evaluates the normal density at value. sigma may be a scalar
// standard deviation, a vector holding the square roots of the covariance
// diagonal, or a full covariance matrix. A vector value yields a single
// joint density, not per-component densities.
func NormalPDF(value, mu, sigma any) (any, error) {
	if Dim(value) == 0 && Dim(mu) == 0 && Dim(sigma) == 0 {
		v, err := AsScalar(value)
		if err != nil {
			return nil, fmt.Errorf("normal pdf: %w", err)
		}
		m, sd, err := scalarMoments(mu, sigma)
		if err != nil {
			return nil, fmt.Errorf("normal pdf: %w", err)
		}
		return distuv.Normal{Mu: m, Sigma: sd}.Prob(v), nil
	}

	vec, ok := value.([]float64)
	if !ok {
		return nil, fmt.Errorf("normal pdf: vector hyperparameters require a vector value, got %T", value)
	}
	nd, err := jointNormal(mu, sigma, len(vec), nil)
	if err != nil {
		return nil, fmt.Errorf("normal pdf: %w", err)
	}
	return nd.Prob(vec), nil
}

// NormalRVS draws from the normal distribution. A scalar mu with positive
// size yields size independent univariate draws; a vector mu (which must
// match the requested size) or a non-scalar sigma yields one jointly-normal
// vector.
func NormalRVS(rng *rand.Rand, mu, sigma any, size int) (any, error) {
	if muVec, ok := mu.([]float64); ok && len(muVec) != size {
		return nil, fmt.Errorf("normal rvs: mu length %d does not match parameter size %d", len(muVec), size)
	}

	if Dim(mu) == 0 && Dim(sigma) == 0 {
		m, sd, err := scalarMoments(mu, sigma)
		if err != nil {
			return nil, fmt.Errorf("normal rvs: %w", err)
		}
		d := distuv.Normal{Mu: m, Sigma: sd, Src: rng}
		if size == 0 {
			return d.Rand(), nil
		}
		out := make([]float64, size)
		for i := range out {
			out[i] = d.Rand()
		}
		return out, nil
	}

	n := size
	if n == 0 {
		return nil, fmt.Errorf("normal rvs: vector hyperparameters require a positive size")
	}
	nd, err := jointNormal(mu, sigma, n, rng)
	if err != nil {
		return nil, fmt.Errorf("normal rvs: %w", err)
	}
	return nd.Rand(nil), nil
}

func jointNormal(mu, sigma any, n int, src rand.Source) (*distmv.Normal, error) {
	muVec, err := AsVector(mu, n)
	if err != nil {
		return nil, fmt.Errorf("mu: %w", err)
	}
	cov, err := Covariance(sigma, n)
	if err != nil {
		return nil, fmt.Errorf("sigma: %w", err)
	}
	nd, ok := distmv.NewNormal(muVec, cov, src)
	if !ok {
		return nil, fmt.Errorf("covariance is not positive definite")
	}
	return nd, nil
}

func scalarMoments(mu, sigma any) (float64, float64, error) {
	m, err := AsScalar(mu)
	if err != nil {
		return 0, 0, fmt.Errorf("mu: %w", err)
	}
	sd, err := AsScalar(sigma)
	if err != nil {
		return 0, 0, fmt.Errorf("sigma: %w", err)
	}
	return m, sd, nil
}
