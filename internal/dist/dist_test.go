package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestUniformPDF(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		pdf, err := UniformPDF(0.5, 0.0, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, pdf)

		pdf, err = UniformPDF(-1.0, 0.0, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, pdf)
	})

	t.Run("vector value with scalar bounds", func(t *testing.T) {
		pdf, err := UniformPDF([]float64{0.2, 0.5, 0.8}, 0.0, 2.0)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.5, 0.5}, pdf)
	})

	t.Run("vector bounds", func(t *testing.T) {
		pdf, err := UniformPDF([]float64{0.5, 1.5}, []float64{0.0, 1.0}, []float64{1.0, 2.0})
		require.NoError(t, err)
		assert.Equal(t, []float64{1.0, 1.0}, pdf)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := UniformPDF([]float64{0.5, 1.5}, []float64{0.0}, 1.0)
		assert.Error(t, err)
	})
}

func TestUniformRVS(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	t.Run("scalar draw", func(t *testing.T) {
		v, err := UniformRVS(rng, 2.0, 3.0, 0)
		require.NoError(t, err)
		f := v.(float64)
		assert.GreaterOrEqual(t, f, 2.0)
		assert.Less(t, f, 3.0)
	})

	t.Run("sized vector draw", func(t *testing.T) {
		v, err := UniformRVS(rng, 0.0, 1.0, 4)
		require.NoError(t, err)
		vec := v.([]float64)
		require.Len(t, vec, 4)
		for _, f := range vec {
			assert.GreaterOrEqual(t, f, 0.0)
			assert.Less(t, f, 1.0)
		}
	})

	t.Run("vector bounds imply size", func(t *testing.T) {
		v, err := UniformRVS(rng, []float64{0.0, 10.0}, []float64{1.0, 11.0}, 0)
		require.NoError(t, err)
		vec := v.([]float64)
		require.Len(t, vec, 2)
		assert.Less(t, vec[0], 1.0)
		assert.GreaterOrEqual(t, vec[1], 10.0)
	})
}

func TestNormalPDF(t *testing.T) {
	t.Run("standard normal at zero", func(t *testing.T) {
		pdf, err := NormalPDF(0.0, 0.0, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 1/math.Sqrt(2*math.Pi), pdf.(float64), 1e-12)
	})

	t.Run("joint density for a vector value", func(t *testing.T) {
		pdf, err := NormalPDF([]float64{0.0, 0.0}, 0.0, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 1/(2*math.Pi), pdf.(float64), 1e-12)
	})

	t.Run("full covariance matrix", func(t *testing.T) {
		cov := [][]float64{{1.0, 0.0}, {0.0, 1.0}}
		pdf, err := NormalPDF([]float64{0.0, 0.0}, 0.0, cov)
		require.NoError(t, err)
		assert.InDelta(t, 1/(2*math.Pi), pdf.(float64), 1e-12)
	})

	t.Run("sigma vector is the sqrt of the diagonal", func(t *testing.T) {
		pdf, err := NormalPDF([]float64{0.0}, 0.0, []float64{2.0})
		require.NoError(t, err)
		assert.InDelta(t, 1/(2*math.Sqrt(2*math.Pi)), pdf.(float64), 1e-12)
	})
}

func TestNormalRVS(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	t.Run("scalar draw", func(t *testing.T) {
		v, err := NormalRVS(rng, 0.0, 1.0, 0)
		require.NoError(t, err)
		_, ok := v.(float64)
		assert.True(t, ok)
	})

	t.Run("iid vector draw", func(t *testing.T) {
		v, err := NormalRVS(rng, 0.0, 1.0, 5)
		require.NoError(t, err)
		require.Len(t, v.([]float64), 5)
	})

	t.Run("joint vector draw", func(t *testing.T) {
		v, err := NormalRVS(rng, []float64{0.0, 100.0}, 1.0, 2)
		require.NoError(t, err)
		vec := v.([]float64)
		require.Len(t, vec, 2)
		assert.Less(t, vec[0], 50.0)
		assert.Greater(t, vec[1], 50.0)
	})

	t.Run("mu length must match size", func(t *testing.T) {
		_, err := NormalRVS(rng, []float64{0.0, 0.0, 0.0}, 1.0, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})
}

func TestCovariance(t *testing.T) {
	t.Run("scalar sigma", func(t *testing.T) {
		cov, err := Covariance(2.0, 3)
		require.NoError(t, err)
		assert.Equal(t, 4.0, cov.At(0, 0))
		assert.Equal(t, 0.0, cov.At(0, 1))
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Covariance([]float64{1.0, 2.0}, 3)
		assert.Error(t, err)
	})
}

func TestBroadcastHelpers(t *testing.T) {
	assert.Equal(t, 0, Dim(1.5))
	assert.Equal(t, 1, Dim([]float64{1.0}))
	assert.Equal(t, 2, Dim([][]float64{{1.0}}))

	s, err := AsScalar(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s)

	v, err := AsVector(2.0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0, 2.0, 2.0}, v)

	_, err = AsVector([]float64{1.0}, 3)
	assert.Error(t, err)
}
