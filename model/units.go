package model

import "math"

// UnitsToMM is the size of one plotter unit in millimetres.
const UnitsToMM = 0.025

// ToMM converts a point from plotter units to millimetres.
func ToMM(p Point) Point {
	return p.Mul(UnitsToMM)
}

// FromMM converts a point in millimetres back to plotter units, rounding
// to the nearest integer unit.
func FromMM(p Point) Point {
	return Point{
		X: math.Round(p.X / UnitsToMM),
		Y: math.Round(p.Y / UnitsToMM),
	}
}
