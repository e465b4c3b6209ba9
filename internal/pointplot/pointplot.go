// Package pointplot renders 3xN point sets as 2D scatter plots, either as
// PNG images (gonum/plot) or as standalone HTML pages (go-echarts).
//
// Points are projected onto one of the coordinate planes before plotting.
package pointplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Plane selects the coordinate plane points are projected onto.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// String returns the plane's axis pair, e.g. "XY".
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane parses "xy", "xz" or "yz" (any case).
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("unknown plane %q (want xy, xz or yz)", s)
}

// rows returns the point-set rows plotted on the horizontal and vertical axes.
func (p Plane) rows() (h, v int) {
	switch p {
	case PlaneXZ:
		return 0, 2
	case PlaneYZ:
		return 1, 2
	default:
		return 0, 1
	}
}

func (p Plane) labels() (h, v string) {
	s := p.String()
	if len(s) != 2 {
		return "X", "Y"
	}
	return s[:1], s[1:]
}

// Series is one named 3xN point set.
type Series struct {
	Name   string
	Points mat.Matrix
}

// Options controls rendering.
type Options struct {
	Title        string
	Plane        Plane
	WidthInches  float64 // PNG only; zero means 8
	HeightInches float64 // PNG only; zero means 8
}

func (o Options) size() (w, h float64) {
	w, h = o.WidthInches, o.HeightInches
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 8
	}
	return w, h
}

// project returns the plotted coordinates of every column of s.Points.
func project(s Series, plane Plane) ([][2]float64, error) {
	if s.Points == nil {
		return nil, fmt.Errorf("series %q has no points", s.Name)
	}
	r, c := s.Points.Dims()
	if r != 3 {
		return nil, fmt.Errorf("series %q must have 3 rows, got %d", s.Name, r)
	}
	hr, vr := plane.rows()
	out := make([][2]float64, c)
	for j := 0; j < c; j++ {
		out[j] = [2]float64{s.Points.At(hr, j), s.Points.At(vr, j)}
	}
	return out, nil
}

var palette = []color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	{R: 0x31, G: 0x68, B: 0x8e, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
	{R: 0x1f, G: 0x9e, B: 0x89, A: 0xff},
}

func seriesColor(i int) color.RGBA {
	return palette[i%len(palette)]
}
