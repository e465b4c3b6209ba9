// Package testutil provides shared test assertions for transforms and
// point sets.
//
// Helpers take testing.TB so they work from tests and benchmarks alike.
package testutil

import (
	"fmt"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the absolute tolerance used by the Near helpers when
// callers pass zero.
const DefaultTolerance = 1e-9

// AssertMatrixNear checks that got and want have the same shape and agree
// elementwise within tol.
func AssertMatrixNear(t testing.TB, got, want mat.Matrix, tol float64) {
	t.Helper()
	if tol == 0 {
		tol = DefaultTolerance
	}
	if gotNil, wantNil := isNil(got), isNil(want); gotNil || wantNil {
		if gotNil != wantNil {
			t.Errorf("matrix nil = %v, want nil = %v", gotNil, wantNil)
		}
		return
	}
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Errorf("matrix shape = %dx%d, want %dx%d", gr, gc, wr, wc)
		return
	}
	if !mat.EqualApprox(got, want, tol) {
		t.Errorf("matrix mismatch (tol %g):\ngot:\n%v\nwant:\n%v", tol, format(got), format(want))
	}
}

// AssertPointsNear checks that the 3xN point set got has the given columns
// within tol.
func AssertPointsNear(t testing.TB, got mat.Matrix, want [][3]float64, tol float64) {
	t.Helper()
	if len(want) == 0 {
		t.Errorf("AssertPointsNear needs at least one expected point")
		return
	}
	w := mat.NewDense(3, len(want), nil)
	for j, p := range want {
		w.Set(0, j, p[0])
		w.Set(1, j, p[1])
		w.Set(2, j, p[2])
	}
	AssertMatrixNear(t, got, w, tol)
}

func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func format(m mat.Matrix) fmt.Formatter {
	return mat.Formatted(m, mat.Prefix(""), mat.Squeeze())
}
