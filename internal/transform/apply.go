package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Apply transforms every column of the 3xN point set p by h and returns the
// resulting 3xN point set. Each column is homogenised with w=1, multiplied
// by h, then divided by its transformed w. A zero w in any column fails the
// whole call with ErrDivideByZero.
func Apply(h, p mat.Matrix) (*mat.Dense, error) {
	if !hasShape(h, 4, 4) {
		return nil, fmt.Errorf("%w: transform must be 4x4, got %s", ErrInvalidArgument, shapeOf(h))
	}
	if isNil(p) {
		return nil, fmt.Errorf("%w: point set is nil", ErrInvalidArgument)
	}
	rows, n := p.Dims()
	if rows != 3 {
		return nil, fmt.Errorf("%w: point set must have 3 rows, got %d", ErrInvalidArgument, rows)
	}

	hom := mat.NewDense(4, n, nil)
	for j := 0; j < n; j++ {
		hom.Set(0, j, p.At(0, j))
		hom.Set(1, j, p.At(1, j))
		hom.Set(2, j, p.At(2, j))
		hom.Set(3, j, 1)
	}

	var moved mat.Dense
	moved.Mul(h, hom)

	out := mat.NewDense(3, n, nil)
	for j := 0; j < n; j++ {
		w := moved.At(3, j)
		if w == 0 {
			return nil, fmt.Errorf("%w: point %d has zero homogeneous scale", ErrDivideByZero, j)
		}
		out.Set(0, j, moved.At(0, j)/w)
		out.Set(1, j, moved.At(1, j)/w)
		out.Set(2, j, moved.At(2, j)/w)
	}
	return out, nil
}

// ApplyToPoint transforms the single point (x, y, z) by h.
func ApplyToPoint(h mat.Matrix, x, y, z float64) (*mat.VecDense, error) {
	out, err := Apply(h, mat.NewDense(3, 1, []float64{x, y, z}))
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(3, []float64{out.At(0, 0), out.At(1, 0), out.At(2, 0)}), nil
}
