// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
)

// Control is an *Axis or a *Button registered on a Pad.
type Control interface {
	// ID returns the identifier assigned by the Pad.
	ID() ID
	// Placement returns the position of the control in its pad.
	Placement() Placement
	// Bounds returns the area covered by the control during the most
	// recent Pad.Layout, in the coordinates of the pad.
	Bounds() image.Rectangle

	update(gtx layout.Context) (Event, bool)
	setBounds(r image.Rectangle)
}

// control is the state shared by all controls.
type control struct {
	id        ID
	placement Placement
	bounds    image.Rectangle
}

// Pad is a set of virtual controls sharing one screen area. Each
// control registered on a Pad receives the next ID, starting from 0.
// The zero Pad is empty and ready to use.
type Pad struct {
	controls []Control
}

// Axis registers a new Axis.
func (p *Pad) Axis(cfg AxisConfig) *Axis {
	a := newAxis(p.nextID(), cfg)
	p.controls = append(p.controls, a)
	return a
}

// Button registers a new Button.
func (p *Pad) Button(cfg ButtonConfig) *Button {
	b := newButton(p.nextID(), cfg)
	p.controls = append(p.controls, b)
	return b
}

func (p *Pad) nextID() ID {
	return ID(len(p.controls))
}

// Controls returns the registered controls in ID order.
func (p *Pad) Controls() []Control {
	return p.controls
}

// Control returns the control with the given ID, or nil.
func (p *Pad) Control(id ID) Control {
	if id < 0 || int(id) >= len(p.controls) {
		return nil
	}
	return p.controls[id]
}

// Update the state of every control and report the next event, if
// any. Events of lower IDs are reported first.
func (p *Pad) Update(gtx layout.Context) (Event, bool) {
	for _, c := range p.controls {
		if e, ok := c.update(gtx); ok {
			return e, true
		}
	}
	return nil, false
}

// Layout positions every control inside gtx.Constraints.Max and lays
// it out with w. The constraints passed to w are exactly the size of
// the control.
func (p *Pad) Layout(gtx layout.Context, w func(gtx layout.Context, c Control) layout.Dimensions) layout.Dimensions {
	for _, c := range p.controls {
		pl := c.Placement()
		sz := gtx.Dp(pl.Size)
		size := image.Pt(sz, sz)
		org := pl.origin(gtx, size)
		c.setBounds(image.Rectangle{Min: org, Max: org.Add(size)})

		t := op.Offset(org).Push(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(size)
		w(cgtx, c)
		t.Pop()
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (c *control) ID() ID {
	return c.id
}

func (c *control) Placement() Placement {
	return c.placement
}

func (c *control) Bounds() image.Rectangle {
	return c.bounds
}

func (c *control) setBounds(r image.Rectangle) {
	c.bounds = r
}

func (a *Axis) update(gtx layout.Context) (Event, bool) {
	e, ok := a.Update(gtx)
	if !ok {
		return nil, false
	}
	return e, true
}

func (b *Button) update(gtx layout.Context) (Event, bool) {
	e, ok := b.Update(gtx)
	if !ok {
		return nil, false
	}
	return e, true
}
