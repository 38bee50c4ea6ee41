// SPDX-License-Identifier: Unlicense OR MIT

/*
Package stick implements the vector math behind virtual joysticks.

A drag offset is limited to a disc with Clamp and converted to a
normalized direction with Normalize. Damper eases a direction over
successive frames.
*/
package stick

import (
	"math"

	"gioui.org/f32"
)

// Vector is a joystick direction. Both components are in the range
// [-1, 1]; Forward is positive when the stick is pushed up and Turn is
// positive when the stick is pushed right.
type Vector struct {
	Forward float32
	Turn    float32
}

// Disc is a drag area of fixed radius. The zero Disc has no extent and
// clamps every offset to the origin.
type Disc struct {
	radius  float32
	radius2 float32
}

// NewDisc returns the disc of radius r.
func NewDisc(r float32) Disc {
	if r < 0 {
		r = 0
	}
	return Disc{radius: r, radius2: r * r}
}

// Radius returns the radius of the disc.
func (d Disc) Radius() float32 {
	return d.radius
}

// Clamp limits p to the disc. Offsets inside the disc are returned
// unchanged; offsets outside are scaled to lie on its edge.
func (d Disc) Clamp(p f32.Point) f32.Point {
	l2 := p.X*p.X + p.Y*p.Y
	if l2 <= d.radius2 {
		return p
	}
	l := float32(math.Sqrt(float64(l2)))
	return p.Mul(d.radius / l)
}

// Normalize maps a clamped offset in screen coordinates to a Vector.
// Screen Y grows downwards, so pushing up gives a positive Forward.
func (d Disc) Normalize(p f32.Point) Vector {
	if d.radius == 0 {
		return Vector{}
	}
	return Vector{
		Forward: -p.Y / d.radius,
		Turn:    p.X / d.radius,
	}
}

// Len returns the length of v.
func (v Vector) Len() float32 {
	return float32(math.Hypot(float64(v.Forward), float64(v.Turn)))
}

// Damper eases a Vector towards a target. Each call to Step moves Turn
// by the fraction Rotation of the remaining distance and Forward by the
// fraction Move. Fractions outside (0, 1] disable damping for that
// component.
type Damper struct {
	Rotation float32
	Move     float32

	v Vector
}

// settleEpsilon is the distance below which a damped component snaps
// to its target.
const settleEpsilon = 1e-3

// Step advances the damped vector one frame towards target and returns
// it.
func (d *Damper) Step(target Vector) Vector {
	d.v.Turn = ease(d.v.Turn, target.Turn, d.Rotation)
	d.v.Forward = ease(d.v.Forward, target.Forward, d.Move)
	return d.v
}

// Value returns the damped vector without advancing it.
func (d *Damper) Value() Vector {
	return d.v
}

// Settled reports whether the damped vector equals target.
func (d *Damper) Settled(target Vector) bool {
	return d.v == target
}

// Reset sets the damped vector to v.
func (d *Damper) Reset(v Vector) {
	d.v = v
}

func ease(cur, target, k float32) float32 {
	if k <= 0 || k >= 1 {
		return target
	}
	cur += (target - cur) * k
	if abs(target-cur) < settleEpsilon {
		return target
	}
	return cur
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
