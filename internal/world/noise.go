package world

import "math"

// Hash constants for the lattice PRNG. These are part of the world's
// identity: changing them generates a different world everywhere, so they
// are fixed code constants rather than configuration.
const (
	noiseHashA = 12.9898
	noiseHashB = 78.233
	noiseHashC = 43758.5453
)

// PseudoRandom deterministically hashes an integer lattice point into [0, 1).
func PseudoRandom(ix, iy float64) float64 {
	v := math.Sin(ix*noiseHashA+iy*noiseHashB) * noiseHashC
	return v - math.Floor(v)
}

// smoothstep applies the cubic easing t^2*(3-2t).
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Noise computes 2D value noise at (x, y) in [0, 1): the four lattice
// hashes surrounding the point, bilinearly interpolated with smoothstep
// easing on both axes. Pure and allocation-free.
func Noise(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	fx := smoothstep(x - x0)
	fy := smoothstep(y - y0)

	v00 := PseudoRandom(x0, y0)
	v10 := PseudoRandom(x0+1, y0)
	v01 := PseudoRandom(x0, y0+1)
	v11 := PseudoRandom(x0+1, y0+1)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}
