package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultOrthogonalityTolerance is the absolute tolerance used when checking
// that R·Rᵀ and Rᵀ·R equal the identity.
const DefaultOrthogonalityTolerance = 1e-9

// ValidationResult contains the outcome of Validate.
type ValidationResult struct {
	Valid  bool
	Issues []string
}

// IsHomogeneousTransform reports whether h is a rigid-body homogeneous
// transform, using DefaultOrthogonalityTolerance.
func IsHomogeneousTransform(h mat.Matrix) bool {
	return Validate(h, DefaultOrthogonalityTolerance).Valid
}

// IsHomogeneousTransformTol is IsHomogeneousTransform with a caller-chosen
// orthogonality tolerance.
func IsHomogeneousTransformTol(h mat.Matrix, tol float64) bool {
	return Validate(h, tol).Valid
}

// Validate checks h in order and stops at the first failure:
// 1. h is 4x4
// 2. the scale element h[3][3] is non-zero
// 3. the bottom row is [0 0 0 scale]
// 4. the upper-left 3x3 block divided by scale is orthogonal within tol
func Validate(h mat.Matrix, tol float64) ValidationResult {
	result := ValidationResult{Issues: make([]string, 0)}

	if !hasShape(h, 4, 4) {
		result.Issues = append(result.Issues, fmt.Sprintf("matrix must be 4x4, got %s", shapeOf(h)))
		return result
	}

	scale := h.At(3, 3)
	if scale == 0 {
		result.Issues = append(result.Issues, "scale factor is zero")
		return result
	}

	if h.At(3, 0) != 0 || h.At(3, 1) != 0 || h.At(3, 2) != 0 {
		result.Issues = append(result.Issues, fmt.Sprintf("bottom row must start with [0 0 0], got [%g %g %g]",
			h.At(3, 0), h.At(3, 1), h.At(3, 2)))
		return result
	}

	r := mat.NewDense(3, 3, nil)
	r.Scale(1/scale, mat.DenseCopyOf(h).Slice(0, 3, 0, 3))

	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	var rrt, rtr mat.Dense
	rrt.Mul(r, r.T())
	rtr.Mul(r.T(), r)
	if !mat.EqualApprox(&rrt, eye, tol) || !mat.EqualApprox(&rtr, eye, tol) {
		result.Issues = append(result.Issues, "rotation block is not orthogonal")
		return result
	}

	result.Valid = true
	return result
}
