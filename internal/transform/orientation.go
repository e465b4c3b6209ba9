package transform

import "gonum.org/v1/gonum/mat"

// Euler returns the Z-X-Z Euler orientation RotateZ(phi)·RotateX(theta)·RotateZ(psi).
func Euler(phi, theta, psi float64) *mat.Dense {
	return product(RotateZ(phi), RotateX(theta), RotateZ(psi))
}

// RPY returns the roll-pitch-yaw orientation RotateZ(phi)·RotateY(theta)·RotateX(psi).
func RPY(phi, theta, psi float64) *mat.Dense {
	return product(RotateZ(phi), RotateY(theta), RotateX(psi))
}

// Cylindrical returns the pure translation to the point with cylindrical
// coordinates (r, phi, z). The trailing RotateZ(-phi) cancels the leading
// rotation so orientation is preserved.
func Cylindrical(z, phi, r float64) *mat.Dense {
	return snap(product(TranslateZ(z), RotateZ(phi), TranslateX(r), RotateZ(-phi)))
}

// Spherical returns the pure translation to the point at distance r,
// azimuth alpha and polar angle beta.
func Spherical(alpha, beta, r float64) *mat.Dense {
	return snap(product(RotateZ(alpha), RotateY(beta), TranslateZ(r), RotateY(-beta), RotateZ(-alpha)))
}
