package transform

import "gonum.org/v1/gonum/mat"

// DHParams holds the Denavit-Hartenberg parameters of one link.
type DHParams struct {
	Theta float64 // joint angle about the previous Z axis (radians)
	D     float64 // offset along the previous Z axis
	A     float64 // link length along the new X axis
	Alpha float64 // link twist about the new X axis (radians)
}

// DH returns the link transform RotateZ(theta)·TranslateZ(d)·TranslateX(a)·RotateX(alpha).
func DH(theta, d, a, alpha float64) *mat.Dense {
	return product(RotateZ(theta), TranslateZ(d), TranslateX(a), RotateX(alpha))
}

// Transform returns the link transform for p.
func (p DHParams) Transform() *mat.Dense {
	return DH(p.Theta, p.D, p.A, p.Alpha)
}

// DHChain returns the base-to-tip transform of a serial chain, the ordered
// product of each link's transform. An empty chain yields the identity.
func DHChain(links []DHParams) *mat.Dense {
	ms := make([]mat.Matrix, len(links))
	for i, l := range links {
		ms[i] = l.Transform()
	}
	return product(ms...)
}
