package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Translation returns the transform offsetting points by (a, b, c) with no
// rotation.
func Translation(a, b, c float64) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, a,
		0, 1, 0, b,
		0, 0, 1, c,
		0, 0, 0, 1,
	})
}

// TranslationVector is Translation with the offset given as a 3x1 matrix.
func TranslationVector(t mat.Matrix) (*mat.Dense, error) {
	if !hasShape(t, 3, 1) {
		return nil, fmt.Errorf("%w: translation must be 3x1, got %s", ErrInvalidArgument, shapeOf(t))
	}
	return Translation(t.At(0, 0), t.At(1, 0), t.At(2, 0)), nil
}

// TranslateX returns the translation by v along the X axis.
func TranslateX(v float64) *mat.Dense { return Translation(v, 0, 0) }

// TranslateY returns the translation by v along the Y axis.
func TranslateY(v float64) *mat.Dense { return Translation(0, v, 0) }

// TranslateZ returns the translation by v along the Z axis.
func TranslateZ(v float64) *mat.Dense { return Translation(0, 0, v) }
