// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/vpad/stick"
	"gioui.org/vpad/widget"
	vmaterial "gioui.org/vpad/widget/material"
)

// runWindow opens the demo window and blocks until it is closed.
func runWindow(s settings) error {
	l, err := loadLayout(s.Layout)
	if err != nil {
		return err
	}
	d := new(demo)
	if _, err := l.Apply(&d.pad); err != nil {
		return err
	}
	d.pause = d.pad.Button(widget.ButtonConfig{
		Placement: widget.Placement{
			Anchor: layout.NE,
			Inset:  layout.UniformInset(12),
			Size:   40,
		},
		Label: "P",
	})
	d.verbose = s.Verbose

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title(s.Title),
			app.Size(unit.Dp(s.Width), unit.Dp(s.Height)),
		)
		if err := d.loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// demo steers a marker with the first axis of the pad. Buttons flash
// the marker; the pause button freezes it.
type demo struct {
	pad     widget.Pad
	pause   *widget.Button
	verbose bool

	paused  bool
	flash   bool
	pos     f32.Point
	heading float64
	last    time.Time
}

const (
	// turnSpeed is in radians per second at full Turn.
	turnSpeed = 3
	// moveSpeed is in dp per second at full Forward.
	moveSpeed = 240
)

func (d *demo) loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	pauseIcon, err := giowidget.NewIcon(icons.AVPause)
	if err != nil {
		return err
	}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := d.pad.Update(gtx)
				if !ok {
					break
				}
				d.handle(ev)
			}

			paint.Fill(gtx.Ops, th.Palette.Bg)
			d.step(gtx)
			d.layoutMarker(gtx, th)
			d.layoutStatus(gtx, th)
			pad := vmaterial.Pad(th, &d.pad)
			pad.Icons = map[widget.ID]*giowidget.Icon{d.pause.ID(): pauseIcon}
			pad.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (d *demo) handle(e widget.Event) {
	if d.verbose {
		log.Printf("%s", describe(e))
	}
	be, ok := e.(widget.ButtonEvent)
	if !ok {
		return
	}
	switch {
	case be.ID == d.pause.ID():
		if be.Kind == widget.KindPress {
			d.paused = !d.paused
		}
	default:
		d.flash = be.Kind == widget.KindPress
	}
}

// axis returns the first axis of the pad, or nil.
func (d *demo) axis() *widget.Axis {
	for _, c := range d.pad.Controls() {
		if a, ok := c.(*widget.Axis); ok {
			return a
		}
	}
	return nil
}

// step moves the marker by the smoothed direction of the first axis.
func (d *demo) step(gtx layout.Context) {
	now := gtx.Now
	dt := now.Sub(d.last).Seconds()
	d.last = now
	if dt > 0.1 {
		dt = 0.1
	}
	a := d.axis()
	if a == nil || d.paused {
		return
	}
	v := a.Smoothed()
	if v == (stick.Vector{}) {
		return
	}
	d.heading += float64(v.Turn) * turnSpeed * dt
	dist := float64(v.Forward) * moveSpeed * dt
	d.pos = d.pos.Add(f32.Pt(
		float32(math.Sin(d.heading)*dist),
		float32(-math.Cos(d.heading)*dist),
	))
	gtx.Execute(op.InvalidateCmd{})
}

func (d *demo) layoutMarker(gtx layout.Context, th *material.Theme) {
	size := gtx.Constraints.Max
	r := gtx.Dp(12)
	// Wrap the marker around the window.
	px := f32.Pt(d.pos.X*gtx.Metric.PxPerDp, d.pos.Y*gtx.Metric.PxPerDp)
	c := image.Pt(
		wrap(size.X/2+int(px.X), size.X),
		wrap(size.Y/2+int(px.Y), size.Y),
	)
	col := th.Palette.ContrastBg
	if d.flash {
		col = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	}
	body := clip.Ellipse{Min: c.Sub(image.Pt(r, r)), Max: c.Add(image.Pt(r, r))}
	paint.FillShape(gtx.Ops, col, body.Op(gtx.Ops))

	// The nose points along the heading.
	nose := image.Pt(
		c.X+int(math.Sin(d.heading)*float64(r)*1.5),
		c.Y-int(math.Cos(d.heading)*float64(r)*1.5),
	)
	nr := r / 3
	tip := clip.Ellipse{Min: nose.Sub(image.Pt(nr, nr)), Max: nose.Add(image.Pt(nr, nr))}
	paint.FillShape(gtx.Ops, col, tip.Op(gtx.Ops))
}

func (d *demo) layoutStatus(gtx layout.Context, th *material.Theme) layout.Dimensions {
	var status string
	if a := d.axis(); a != nil {
		v, s := a.Value(), a.Smoothed()
		status = fmt.Sprintf("forward %+.2f  turn %+.2f  (smoothed %+.2f %+.2f)",
			v.Forward, v.Turn, s.Forward, s.Turn)
	}
	for _, c := range d.pad.Controls() {
		if b, ok := c.(*widget.Button); ok && b.Pressed() {
			status += "  " + b.Label()
		}
	}
	if d.paused {
		status += "  paused"
	}
	return layout.UniformInset(12).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.Body2(th, status).Layout(gtx)
	})
}

func wrap(v, n int) int {
	if n <= 0 {
		return v
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func describe(e widget.Event) string {
	switch e := e.(type) {
	case widget.MoveEvent:
		return fmt.Sprintf("axis %d: forward %+.3f turn %+.3f", e.ID, e.Forward, e.Turn)
	case widget.ButtonEvent:
		return fmt.Sprintf("button %d: %v", e.ID, e.Kind)
	default:
		return fmt.Sprintf("%#v", e)
	}
}
