package hclmodel

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/vk/priorgrid/internal/param"
)

const sampleModel = `
parameter "efac" {
  prior = "uniform"
  pmin  = 0.1
  pmax  = 5.0
}

parameter "x" {
  prior = "normal"
  sigma = 1

  hyper "mu" {
    prior = "uniform"
    pmin  = -1
    pmax  = 1
  }
}

parameter "log10_A" {
  prior = "linearexp"
  pmin  = -18
  pmax  = -12
}
`

func TestLoad(t *testing.T) {
	roots, err := NewLoader().Load(context.Background(), []byte(sampleModel), "model.hcl")
	require.NoError(t, err)
	require.Len(t, roots, 3)

	assert.Equal(t, "efac", roots[0].Name())
	assert.Equal(t, "x", roots[1].Name())
	assert.Equal(t, "log10_A", roots[2].Name())

	// the hyper block became a top-down named hyperparameter
	params := roots[1].Params()
	require.Len(t, params, 2)
	assert.Equal(t, "x_mu", params[1].Name())
}

func TestLoadedModelEvaluates(t *testing.T) {
	roots, err := NewLoader().Load(context.Background(), []byte(sampleModel), "model.hcl")
	require.NoError(t, err)

	pdf, err := roots[0].PDF(1.0, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1/4.9, pdf, 1e-12)

	pdf, err = roots[1].PDF(0.0, param.Values{"x_mu": 0.0})
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), pdf, 1e-12)
}

func TestLoadedModelSamples(t *testing.T) {
	roots, err := NewLoader().Load(context.Background(), []byte(sampleModel), "model.hcl")
	require.NoError(t, err)

	out, err := param.Sample(rand.New(rand.NewSource(21)), roots...)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Contains(t, out, "efac")
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "x_mu")
	assert.Contains(t, out, "log10_A")

	mu := out["x_mu"].(float64)
	assert.GreaterOrEqual(t, mu, -1.0)
	assert.LessOrEqual(t, mu, 1.0)
}

func TestLoadVectorParameter(t *testing.T) {
	src := `
parameter "v" {
  prior = "uniform"
  size  = 3
  pmin  = 0
  pmax  = 1
}
`
	roots, err := NewLoader().Load(context.Background(), []byte(src), "model.hcl")
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, 3, roots[0].Size())

	out, err := param.Sample(rand.New(rand.NewSource(1)), roots[0])
	require.NoError(t, err)
	require.Len(t, out["v"].([]float64), 3)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown prior family", func(t *testing.T) {
		src := `
parameter "x" {
  prior = "cauchy"
}
`
		_, err := NewLoader().Load(context.Background(), []byte(src), "model.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown prior family")
	})

	t.Run("missing required argument", func(t *testing.T) {
		src := `
parameter "x" {
  prior = "uniform"
  pmin  = 0
}
`
		_, err := NewLoader().Load(context.Background(), []byte(src), "model.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pmax")
	})

	t.Run("slot bound twice", func(t *testing.T) {
		src := `
parameter "x" {
  prior = "uniform"
  pmin  = 0
  pmax  = 1

  hyper "pmin" {
    prior = "uniform"
    pmin  = 0
    pmax  = 1
  }
}
`
		_, err := NewLoader().Load(context.Background(), []byte(src), "model.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bound both")
	})

	t.Run("malformed source", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), []byte(`parameter "x" {`), "model.hcl")
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleModel), 0o644))

	roots, err := NewLoader().LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, roots, 3)

	_, err = NewLoader().LoadFile(context.Background(), filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)
}
