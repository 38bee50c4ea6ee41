// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"
	"golang.org/x/image/colornames"

	"gioui.org/vpad/widget"
)

// ButtonStyle draws a Button as a disc with its label centered.
type ButtonStyle struct {
	Text string
	// Color is the text and icon color.
	Color      color.NRGBA
	Background color.NRGBA
	// Pressed is the background while the button is held down.
	Pressed  color.NRGBA
	TextSize unit.Sp
	// Icon, if set, is drawn instead of Text.
	Icon   *giowidget.Icon
	Button *widget.Button

	th *giomaterial.Theme
}

// Button returns the style of b.
func Button(th *giomaterial.Theme, b *widget.Button) ButtonStyle {
	return ButtonStyle{
		Text:       b.Label(),
		Color:      th.Palette.ContrastFg,
		Background: withAlpha(colornames.Steelblue, 0xb0),
		Pressed:    withAlpha(colornames.Midnightblue, 0xd0),
		TextSize:   th.TextSize * 1.5,
		Button:     b,
		th:         th,
	}
}

func (b ButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	return b.Button.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		bg := b.Background
		if b.Button.Pressed() {
			bg = b.Pressed
		}
		size := gtx.Constraints.Min
		paint.FillShape(gtx.Ops, bg, clip.Ellipse{Max: size}.Op(gtx.Ops))
		layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			if b.Icon != nil {
				gtx.Constraints.Min = size.Div(2)
				gtx.Constraints.Max = gtx.Constraints.Min
				return b.Icon.Layout(gtx, b.Color)
			}
			l := giomaterial.Label(b.th, b.TextSize, b.Text)
			l.Color = b.Color
			l.Alignment = text.Middle
			l.MaxLines = 1
			return l.Layout(gtx)
		})
		return layout.Dimensions{Size: size}
	})
}
