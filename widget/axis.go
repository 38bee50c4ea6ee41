// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"gioui.org/vpad/stick"
)

const (
	// DefaultMaxRadius is the drag radius of an Axis.
	DefaultMaxRadius unit.Dp = 40
	// DefaultRotationDamping is the damping applied to Turn.
	DefaultRotationDamping = 0.06
	// DefaultMoveDamping is the damping applied to Forward.
	DefaultMoveDamping = 0.01
)

// AxisConfig configures an Axis. Zero fields select the defaults.
type AxisConfig struct {
	// Placement positions the knob at rest. By default the knob is
	// MaxRadius wide and anchored to the bottom left corner, MaxRadius
	// away from the edges.
	Placement Placement
	// MaxRadius is the farthest the knob can be dragged from its
	// origin.
	MaxRadius unit.Dp
	// RotationDamping is the fraction of the remaining distance the
	// smoothed Turn moves each frame.
	RotationDamping float32
	// MoveDamping is the fraction of the remaining distance the
	// smoothed Forward moves each frame.
	MoveDamping float32
}

// Axis is a virtual joystick. Dragging its knob reports a direction
// proportional to the drag distance, limited to MaxRadius. Releasing
// the knob snaps it back to its origin.
type Axis struct {
	control

	maxRadius unit.Dp
	// disc is the drag disc in pixels, updated when the metric
	// changes.
	disc   stick.Disc
	damper stick.Damper

	drag gesture.Drag
	// start is the pointer position of the press that began the
	// active drag.
	start  f32.Point
	offset f32.Point
	value  stick.Vector
}

func newAxis(id ID, cfg AxisConfig) *Axis {
	if cfg.MaxRadius <= 0 {
		cfg.MaxRadius = DefaultMaxRadius
	}
	if cfg.RotationDamping <= 0 {
		cfg.RotationDamping = DefaultRotationDamping
	}
	if cfg.MoveDamping <= 0 {
		cfg.MoveDamping = DefaultMoveDamping
	}
	return &Axis{
		control: control{
			id:        id,
			placement: cfg.Placement.withDefaults(DefaultAxisPlacement(cfg.MaxRadius)),
		},
		maxRadius: cfg.MaxRadius,
		damper: stick.Damper{
			Rotation: cfg.RotationDamping,
			Move:     cfg.MoveDamping,
		},
	}
}

// DefaultAxisPlacement returns the placement of an Axis with the
// given drag radius and a zero Placement: a knob maxRadius wide,
// anchored to the bottom left corner maxRadius away from the edges.
func DefaultAxisPlacement(maxRadius unit.Dp) Placement {
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	return Placement{
		Anchor: layout.SW,
		Inset:  layout.UniformInset(maxRadius),
		Size:   maxRadius,
	}
}

// MaxRadius returns the drag radius of the axis.
func (a *Axis) MaxRadius() unit.Dp {
	return a.maxRadius
}

// Damping returns the rotation and move damping of the axis.
func (a *Axis) Damping() (rotation, move float32) {
	return a.damper.Rotation, a.damper.Move
}

// Dragging reports whether a pointer is dragging the knob.
func (a *Axis) Dragging() bool {
	return a.drag.Dragging()
}

// Offset returns the displacement of the knob from its origin, in
// pixels. It is zero when the axis is at rest.
func (a *Axis) Offset() f32.Point {
	return a.offset
}

// Value returns the direction reported by the most recent MoveEvent.
func (a *Axis) Value() stick.Vector {
	return a.value
}

// Smoothed returns Value damped by the configured rotation and move
// damping. It advances once per call to Layout.
func (a *Axis) Smoothed() stick.Vector {
	return a.damper.Value()
}

// Update the axis state and report the next move, if any.
func (a *Axis) Update(gtx layout.Context) (MoveEvent, bool) {
	if r := float32(gtx.Dp(a.maxRadius)); r != a.disc.Radius() {
		a.disc = stick.NewDisc(r)
	}
	for {
		e, ok := a.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			a.start = e.Position
			a.offset = f32.Point{}
		case pointer.Drag:
			a.offset = a.disc.Clamp(e.Position.Sub(a.start))
			return a.move(), true
		case pointer.Release, pointer.Cancel:
			a.offset = f32.Point{}
			return a.move(), true
		}
	}
	return MoveEvent{}, false
}

func (a *Axis) move() MoveEvent {
	a.value = a.disc.Normalize(a.offset)
	return MoveEvent{ID: a.id, Vector: a.value}
}

// Layout the axis. The input area is the circle inscribed in
// gtx.Constraints.Min, the knob at rest. The knob widget is laid out
// with the same constraints and offset by the drag displacement.
func (a *Axis) Layout(gtx layout.Context, knob layout.Widget) layout.Dimensions {
	for {
		_, ok := a.Update(gtx)
		if !ok {
			break
		}
	}
	if !a.damper.Settled(a.value) {
		a.damper.Step(a.value)
		gtx.Execute(op.InvalidateCmd{})
	}

	size := gtx.Constraints.Min
	area := clip.Ellipse{Max: size}.Push(gtx.Ops)
	pointer.CursorGrab.Add(gtx.Ops)
	a.drag.Add(gtx.Ops)
	area.Pop()

	off := image.Pt(
		int(math.Round(float64(a.offset.X))),
		int(math.Round(float64(a.offset.Y))),
	)
	defer op.Offset(off).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	knob(gtx)
	return layout.Dimensions{Size: size}
}
