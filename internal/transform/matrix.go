package transform

import (
	"fmt"
	"math"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// snapEpsilon is the magnitude below which Cylindrical and Spherical
// results are rounded to exactly zero.
const snapEpsilon = 1e-15

// Identity returns a new 4x4 identity transform.
func Identity() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// FromRowMajor builds a 4x4 transform from a row-major pose array
// (m00, m01, m02, m03, m10, ...).
func FromRowMajor(t [16]float64) *mat.Dense {
	data := make([]float64, 16)
	copy(data, t[:])
	return mat.NewDense(4, 4, data)
}

// RowMajor flattens a 4x4 transform into a row-major pose array.
func RowMajor(h mat.Matrix) ([16]float64, error) {
	var t [16]float64
	if !hasShape(h, 4, 4) {
		return t, fmt.Errorf("%w: transform must be 4x4, got %s", ErrInvalidArgument, shapeOf(h))
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i*4+j] = h.At(i, j)
		}
	}
	return t, nil
}

// Points builds a 3xN point set whose columns are the given points.
// It returns nil when no points are given since gonum has no empty matrix.
func Points(pts ...[3]float64) *mat.Dense {
	if len(pts) == 0 {
		return nil
	}
	p := mat.NewDense(3, len(pts), nil)
	for j, pt := range pts {
		p.Set(0, j, pt[0])
		p.Set(1, j, pt[1])
		p.Set(2, j, pt[2])
	}
	return p
}

// Columns returns the points of a 3xN point set. Matrices that do not
// have three rows yield nil.
func Columns(p mat.Matrix) [][3]float64 {
	if isNil(p) {
		return nil
	}
	r, c := p.Dims()
	if r != 3 {
		return nil
	}
	out := make([][3]float64, c)
	for j := 0; j < c; j++ {
		out[j] = [3]float64{p.At(0, j), p.At(1, j), p.At(2, j)}
	}
	return out
}

// Compose multiplies 4x4 transforms left to right, so Compose(A, B, C)
// is A·B·C. With no operands it returns the identity.
func Compose(ms ...mat.Matrix) (*mat.Dense, error) {
	for i, m := range ms {
		if !hasShape(m, 4, 4) {
			return nil, fmt.Errorf("%w: operand %d must be 4x4, got %s", ErrInvalidArgument, i, shapeOf(m))
		}
	}
	return product(ms...), nil
}

// product is Compose without shape checks, for builders whose operands are
// known to be 4x4.
func product(ms ...mat.Matrix) *mat.Dense {
	out := Identity()
	for _, m := range ms {
		var next mat.Dense
		next.Mul(out, m)
		out = &next
	}
	return out
}

// snap rounds entries within snapEpsilon of zero to exactly zero.
func snap(m *mat.Dense) *mat.Dense {
	m.Apply(func(_, _ int, v float64) float64 {
		if math.Abs(v) < snapEpsilon {
			return 0
		}
		return v
	}, m)
	return m
}

// isNil reports whether m is a nil interface or wraps a nil pointer, such
// as the (*mat.Dense)(nil) returned by Points().
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func hasShape(m mat.Matrix, rows, cols int) bool {
	if isNil(m) {
		return false
	}
	r, c := m.Dims()
	return r == rows && c == cols
}

func shapeOf(m mat.Matrix) string {
	if isNil(m) {
		return "nil"
	}
	r, c := m.Dims()
	return fmt.Sprintf("%dx%d", r, c)
}
