// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"math"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"

	"gioui.org/vpad/stick"
	"gioui.org/vpad/widget"
)

// topLeft places a 40x40 knob at the origin of the pad.
var topLeft = widget.Placement{Anchor: layout.NW, Size: 40}

func press(x, y float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Press,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(x, y),
	}
}

func move(x, y float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Move,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(x, y),
	}
}

func release(x, y float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Release,
		Source:   pointer.Mouse,
		Position: f32.Pt(x, y),
	}
}

func TestAxisDefaults(t *testing.T) {
	var pad widget.Pad
	a := pad.Axis(widget.AxisConfig{})
	if r := a.MaxRadius(); r != widget.DefaultMaxRadius {
		t.Errorf("max radius %v, want %v", r, widget.DefaultMaxRadius)
	}
	rot, mov := a.Damping()
	if rot != widget.DefaultRotationDamping || mov != widget.DefaultMoveDamping {
		t.Errorf("damping (%v, %v), want (%v, %v)", rot, mov, widget.DefaultRotationDamping, widget.DefaultMoveDamping)
	}
	a = pad.Axis(widget.AxisConfig{MaxRadius: -3, RotationDamping: -1})
	if r := a.MaxRadius(); r != widget.DefaultMaxRadius {
		t.Errorf("negative radius gave %v", r)
	}
}

func TestAxisWithinRadius(t *testing.T) {
	var pad widget.Pad
	a := pad.Axis(widget.AxisConfig{Placement: topLeft})
	h := newHarness(&pad, image.Pt(200, 200))

	tests := []f32.Point{
		{X: 10, Y: 0},
		{X: 0, Y: -20},
		{X: -12, Y: 30},
		{X: 28, Y: 28},
		{X: 0, Y: 40},
	}
	evs := moves(t, h.events(press(20, 20)))
	if len(evs) != 0 {
		t.Fatalf("press reported %v", evs)
	}
	for _, d := range tests {
		evs := moves(t, h.events(move(20+d.X, 20+d.Y)))
		if len(evs) != 1 {
			t.Fatalf("drag by %v reported %d events", d, len(evs))
		}
		e := evs[0]
		if e.ID != a.ID() {
			t.Errorf("event ID %d, want %d", e.ID, a.ID())
		}
		want := stick.Vector{Forward: -d.Y / 40, Turn: d.X / 40}
		if !nearVector(e.Vector, want) {
			t.Errorf("drag by %v reported %+v, want %+v", d, e.Vector, want)
		}
		if a.Offset() != d {
			t.Errorf("drag by %v moved the knob by %v", d, a.Offset())
		}
	}
}

func TestAxisClamp(t *testing.T) {
	var pad widget.Pad
	a := pad.Axis(widget.AxisConfig{Placement: topLeft})
	h := newHarness(&pad, image.Pt(400, 400))

	h.events(press(20, 20))
	evs := moves(t, h.events(move(100, 20)))
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if e := evs[0]; e.Turn != 1 || e.Forward != 0 {
		t.Errorf("drag by (80, 0) reported %+v, want {Forward:0 Turn:1}", e.Vector)
	}
	if got := a.Offset(); got != f32.Pt(40, 0) {
		t.Errorf("knob moved by %v, want (40, 0)", got)
	}

	for _, p := range []f32.Point{{X: 300, Y: 300}, {X: 20, Y: 390}, {X: 390, Y: 0}} {
		evs := moves(t, h.events(move(p.X, p.Y)))
		if len(evs) != 1 {
			t.Fatalf("got %d events, want 1", len(evs))
		}
		if l := evs[0].Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("drag to %v reported length %v, want 1", p, l)
		}
	}
}

func TestAxisRelease(t *testing.T) {
	var pad widget.Pad
	a := pad.Axis(widget.AxisConfig{Placement: topLeft})
	h := newHarness(&pad, image.Pt(200, 200))

	h.events(press(20, 20), move(35, 5))
	if a.Offset() == (f32.Point{}) || !a.Dragging() {
		t.Fatal("axis not dragged")
	}
	evs := moves(t, h.events(release(35, 5)))
	if len(evs) != 1 {
		t.Fatalf("release reported %d events, want 1", len(evs))
	}
	if v := evs[0].Vector; v.Forward != 0 || v.Turn != 0 {
		t.Errorf("release reported %+v, want zero", v)
	}
	if a.Offset() != (f32.Point{}) || a.Dragging() {
		t.Errorf("knob at %v after release, want origin", a.Offset())
	}
	if a.Value() != (stick.Vector{}) {
		t.Errorf("value %+v after release", a.Value())
	}
	// Moving after the release reports nothing.
	if evs := h.events(move(50, 50)); len(evs) != 0 {
		t.Errorf("move after release reported %v", evs)
	}
}

func TestAxisPressOutside(t *testing.T) {
	var pad widget.Pad
	pad.Axis(widget.AxisConfig{Placement: topLeft})
	h := newHarness(&pad, image.Pt(200, 200))

	if evs := h.events(press(150, 150), move(160, 150), release(160, 150)); len(evs) != 0 {
		t.Errorf("drag outside the knob reported %v", evs)
	}
}

func TestAxisSecondaryButton(t *testing.T) {
	var pad widget.Pad
	pad.Axis(widget.AxisConfig{Placement: topLeft})
	h := newHarness(&pad, image.Pt(200, 200))

	p := press(20, 20)
	p.Buttons = pointer.ButtonSecondary
	m := move(30, 20)
	m.Buttons = pointer.ButtonSecondary
	if evs := h.events(p, m); len(evs) != 0 {
		t.Errorf("secondary button drag reported %v", evs)
	}
}

func TestAxisConcurrentDrags(t *testing.T) {
	var pad widget.Pad
	left := pad.Axis(widget.AxisConfig{Placement: topLeft})
	right := pad.Axis(widget.AxisConfig{Placement: widget.Placement{Anchor: layout.NE, Size: 40}})
	h := newHarness(&pad, image.Pt(200, 200))

	touch := func(kind pointer.Kind, id pointer.ID, x, y float32) pointer.Event {
		return pointer.Event{
			Kind:      kind,
			Source:    pointer.Touch,
			PointerID: id,
			Position:  f32.Pt(x, y),
		}
	}
	h.events(
		touch(pointer.Press, 1, 20, 20),
		touch(pointer.Press, 2, 180, 20),
	)
	evs := moves(t, h.events(
		touch(pointer.Move, 1, 20, 40),
		touch(pointer.Move, 2, 160, 20),
	))
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if got, want := left.Value(), (stick.Vector{Forward: -0.5}); !nearVector(got, want) {
		t.Errorf("left axis %+v, want %+v", got, want)
	}
	if got, want := right.Value(), (stick.Vector{Turn: -0.5}); !nearVector(got, want) {
		t.Errorf("right axis %+v, want %+v", got, want)
	}

	// Releasing one pointer leaves the other drag active.
	h.events(touch(pointer.Release, 1, 20, 40))
	if left.Dragging() || !right.Dragging() {
		t.Errorf("dragging left=%v right=%v after releasing the left pointer", left.Dragging(), right.Dragging())
	}
	if left.Offset() != (f32.Point{}) {
		t.Errorf("left knob at %v, want origin", left.Offset())
	}
	if right.Offset() != f32.Pt(-20, 0) {
		t.Errorf("right knob at %v, want (-20, 0)", right.Offset())
	}
}

func TestAxisSmoothed(t *testing.T) {
	var pad widget.Pad
	a := pad.Axis(widget.AxisConfig{
		Placement:       topLeft,
		RotationDamping: 0.5,
		MoveDamping:     0.25,
	})
	h := newHarness(&pad, image.Pt(200, 200))

	h.events(press(20, 20), move(60, 20))
	if a.Smoothed() != (stick.Vector{}) {
		t.Fatalf("smoothed value moved before layout: %+v", a.Smoothed())
	}
	h.frame()
	if got := a.Smoothed().Turn; got != 0.5 {
		t.Errorf("smoothed turn after one frame %v, want 0.5", got)
	}
	for i := 0; i < 100; i++ {
		h.frame()
	}
	if got := a.Smoothed(); got != a.Value() {
		t.Errorf("smoothed %+v did not settle at %+v", got, a.Value())
	}
}

func nearVector(a, b stick.Vector) bool {
	const eps = 1e-5
	return math.Abs(float64(a.Forward-b.Forward)) < eps && math.Abs(float64(a.Turn-b.Turn)) < eps
}
