// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	giomaterial "gioui.org/widget/material"
	"golang.org/x/image/colornames"

	"gioui.org/vpad/widget"
)

// AxisStyle draws an Axis as a knob over a translucent base disc
// marking the drag radius.
type AxisStyle struct {
	// Base is the color of the disc the knob moves in.
	Base color.NRGBA
	// Knob is the color of the knob at rest.
	Knob color.NRGBA
	// Active is the color of the knob while dragged.
	Active color.NRGBA
	Axis   *widget.Axis
}

// Axis returns the style of a.
func Axis(th *giomaterial.Theme, a *widget.Axis) AxisStyle {
	return AxisStyle{
		Base:   withAlpha(colornames.Lightslategray, 0x50),
		Knob:   withAlpha(colornames.White, 0xa0),
		Active: mulAlpha(th.Palette.ContrastBg, 0xd0),
		Axis:   a,
	}
}

func (a AxisStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Min
	r := gtx.Dp(a.Axis.MaxRadius())
	c := image.Pt(size.X/2, size.Y/2)
	base := clip.Ellipse{
		Min: c.Sub(image.Pt(r, r)),
		Max: c.Add(image.Pt(r, r)),
	}
	paint.FillShape(gtx.Ops, a.Base, base.Op(gtx.Ops))

	return a.Axis.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		col := a.Knob
		if a.Axis.Dragging() {
			col = a.Active
		}
		sz := gtx.Constraints.Min
		paint.FillShape(gtx.Ops, col, clip.Ellipse{Max: sz}.Op(gtx.Ops))
		return layout.Dimensions{Size: sz}
	})
}

// withAlpha returns the opaque color c with alpha a.
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// mulAlpha scales the alpha of c by a/255.
func mulAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(a) / 0xff)
	return c
}
