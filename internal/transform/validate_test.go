package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// scenarioTransform is Translation(4,0,0)·RotateY(π/2)·RotateZ(π/2).
func scenarioTransform(t *testing.T) *mat.Dense {
	t.Helper()
	h, err := Compose(Translation(4, 0, 0), RotateY(math.Pi/2), RotateZ(math.Pi/2))
	require.NoError(t, err)
	return h
}

func TestIsHomogeneousTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    mat.Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"rotation about Z", FromRowMajor([16]float64{0, -1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}), true},
		{"translation", Translation(1, -2, 3), true},
		{"uniformly scaled representation", FromRowMajor([16]float64{2, 0, 0, 2, 0, 2, 0, 4, 0, 0, 2, 6, 0, 0, 0, 2}), true},
		{"negative scale factor", FromRowMajor([16]float64{-1, 0, 0, 0, 0, -1, 0, 0, 0, 0, -1, 0, 0, 0, 0, -1}), true},
		{"reflection is orthogonal", FromRowMajor([16]float64{-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}), true},
		{"scaled rotation block", FromRowMajor([16]float64{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1}), false},
		{"zero scale", FromRowMajor([16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0}), false},
		{"bad last row", FromRowMajor([16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1}), false},
		{"shear", FromRowMajor([16]float64{1, 0.5, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}), false},
		{"3x3", mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), false},
		{"4x3", mat.NewDense(4, 3, nil), false},
		{"nil", nil, false},
		{"typed nil", (*mat.Dense)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHomogeneousTransform(tt.h))
		})
	}
}

func TestIsHomogeneousTransform_MutatedScenario(t *testing.T) {
	t.Parallel()

	h := scenarioTransform(t)
	require.True(t, IsHomogeneousTransform(h))

	h.Set(1, 2, 0.5)
	assert.False(t, IsHomogeneousTransform(h))
}

func TestIsHomogeneousTransform_BuildersAreValid(t *testing.T) {
	t.Parallel()

	builders := map[string]*mat.Dense{
		"euler":       Euler(0.1, 0.2, 0.3),
		"rpy":         RPY(-1, 2, -3),
		"cylindrical": Cylindrical(1, 2, 3),
		"spherical":   Spherical(0.4, 0.5, 6),
		"dh":          DH(0.3, 0.1, 0.7, math.Pi/2),
		"scenario":    scenarioTransform(t),
	}
	for name, h := range builders {
		assert.True(t, IsHomogeneousTransform(h), name)
		assert.Equal(t, []float64{0, 0, 0, 1}, mat.Row(nil, 3, h), name)
	}
}

func TestIsHomogeneousTransformTol(t *testing.T) {
	t.Parallel()

	h := RotateX(0.3)
	h.Set(1, 1, h.At(1, 1)+1e-6)

	assert.False(t, IsHomogeneousTransform(h))
	assert.False(t, IsHomogeneousTransformTol(h, 1e-9))
	assert.True(t, IsHomogeneousTransformTol(h, 1e-3))
}

func TestValidate_ReportsFirstFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		h     mat.Matrix
		issue string
	}{
		{"wrong shape", mat.NewDense(2, 2, nil), "matrix must be 4x4, got 2x2"},
		{"nil", nil, "matrix must be 4x4, got nil"},
		{"typed nil", (*mat.Dense)(nil), "matrix must be 4x4, got nil"},
		// zero scale is reported before the bad bottom row
		{"zero scale", FromRowMajor([16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0}), "scale factor is zero"},
		{"bottom row", FromRowMajor([16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 3, 0, 1}), "bottom row must start with [0 0 0], got [0 3 0]"},
		{"not orthogonal", FromRowMajor([16]float64{1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}), "rotation block is not orthogonal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.h, DefaultOrthogonalityTolerance)
			assert.False(t, result.Valid)
			assert.Equal(t, []string{tt.issue}, result.Issues)
		})
	}

	ok := Validate(Identity(), DefaultOrthogonalityTolerance)
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Issues)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	h := FromRowMajor([16]float64{2, 0, 0, 1, 0, 2, 0, 1, 0, 0, 2, 1, 0, 0, 0, 2})
	before := mat.DenseCopyOf(h)
	Validate(h, DefaultOrthogonalityTolerance)
	assert.True(t, mat.Equal(h, before))
}
