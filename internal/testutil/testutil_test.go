package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// recordingT captures failures so failure paths can be asserted without
// failing the enclosing test.
type recordingT struct {
	testing.TB
	failed bool
}

func (r *recordingT) Helper()                           {}
func (r *recordingT) Errorf(format string, args ...any) { r.failed = true }

func TestAssertMatrixNear(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	t.Run("within tolerance", func(t *testing.T) {
		b := mat.NewDense(2, 2, []float64{1, 2, 3, 4 + 1e-12})
		rec := &recordingT{TB: t}
		AssertMatrixNear(rec, a, b, 0)
		assert.False(t, rec.failed)
	})

	t.Run("value mismatch", func(t *testing.T) {
		b := mat.NewDense(2, 2, []float64{1, 2, 3, 5})
		rec := &recordingT{TB: t}
		AssertMatrixNear(rec, a, b, 1e-6)
		assert.True(t, rec.failed)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		b := mat.NewDense(2, 1, []float64{1, 3})
		rec := &recordingT{TB: t}
		AssertMatrixNear(rec, a, b, 0)
		assert.True(t, rec.failed)
	})

	t.Run("nil against matrix", func(t *testing.T) {
		rec := &recordingT{TB: t}
		AssertMatrixNear(rec, nil, a, 0)
		assert.True(t, rec.failed)
	})

	t.Run("typed nil against matrix", func(t *testing.T) {
		rec := &recordingT{TB: t}
		AssertMatrixNear(rec, (*mat.Dense)(nil), a, 0)
		assert.True(t, rec.failed)
	})

	t.Run("nil against typed nil", func(t *testing.T) {
		rec := &recordingT{TB: t}
		AssertMatrixNear(rec, nil, (*mat.Dense)(nil), 0)
		assert.False(t, rec.failed)
	})
}

func TestAssertPointsNear(t *testing.T) {
	t.Parallel()

	got := mat.NewDense(3, 2, []float64{
		1, 4,
		2, 5,
		3, 6,
	})

	rec := &recordingT{TB: t}
	AssertPointsNear(rec, got, [][3]float64{{1, 2, 3}, {4, 5, 6}}, 0)
	assert.False(t, rec.failed)

	rec = &recordingT{TB: t}
	AssertPointsNear(rec, got, [][3]float64{{1, 2, 3}, {4, 5, 7}}, 0)
	assert.True(t, rec.failed)

	rec = &recordingT{TB: t}
	AssertPointsNear(rec, got, nil, 0)
	assert.True(t, rec.failed)
}
