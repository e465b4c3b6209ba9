package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Rotation returns the transform rotating by theta radians about the axis
// (x, y, z). The axis need not be unit length but must be non-zero.
func Rotation(x, y, z, theta float64) (*mat.Dense, error) {
	return axisAngle([]float64{x, y, z}, theta)
}

// RotationVector is Rotation with the axis given as a 3x1 matrix.
func RotationVector(axis mat.Matrix, theta float64) (*mat.Dense, error) {
	if !hasShape(axis, 3, 1) {
		return nil, fmt.Errorf("%w: rotation axis must be 3x1, got %s", ErrInvalidArgument, shapeOf(axis))
	}
	return axisAngle([]float64{axis.At(0, 0), axis.At(1, 0), axis.At(2, 0)}, theta)
}

// RotateX returns the rotation by a radians about the X axis.
func RotateX(a float64) *mat.Dense { return mustAxisAngle(1, 0, 0, a) }

// RotateY returns the rotation by a radians about the Y axis.
func RotateY(a float64) *mat.Dense { return mustAxisAngle(0, 1, 0, a) }

// RotateZ returns the rotation by a radians about the Z axis.
func RotateZ(a float64) *mat.Dense { return mustAxisAngle(0, 0, 1, a) }

func mustAxisAngle(x, y, z, theta float64) *mat.Dense {
	r, err := axisAngle([]float64{x, y, z}, theta)
	if err != nil {
		panic(err)
	}
	return r
}

// axisAngle applies Rodrigues' formula to the normalised axis.
func axisAngle(axis []float64, theta float64) (*mat.Dense, error) {
	norm := floats.Norm(axis, 2)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: rotation axis must be finite and non-zero, got %v", ErrInvalidArgument, axis)
	}
	u := make([]float64, 3)
	floats.ScaleTo(u, 1/norm, axis)
	x, y, z := u[0], u[1], u[2]

	c, s := math.Cos(theta), math.Sin(theta)
	t := 1 - c

	return mat.NewDense(4, 4, []float64{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}), nil
}
