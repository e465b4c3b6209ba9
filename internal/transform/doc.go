// Package transform builds and applies 3D homogeneous transforms.
//
// Responsibilities: rotation and translation primitives, composite
// orientation builders (Z-X-Z Euler, roll-pitch-yaw), cylindrical and
// spherical frame converters, Denavit-Hartenberg link transforms,
// rigid-transform validation and point-set application.
// Key types: *mat.Dense (4x4 transforms, 3xN point sets), DHParams,
// ValidationResult.
//
// Every function is pure: inputs are never mutated and results are freshly
// allocated, so the package is safe for concurrent use.
package transform
