// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"gioui.org/layout"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"

	"gioui.org/vpad/widget"
)

// PadStyle draws every control of a Pad with the default styles.
type PadStyle struct {
	Pad *widget.Pad
	// Icons replaces the labels of buttons by icons, keyed by button
	// ID.
	Icons map[widget.ID]*giowidget.Icon

	th *giomaterial.Theme
}

// Pad returns the style of p.
func Pad(th *giomaterial.Theme, p *widget.Pad) PadStyle {
	return PadStyle{Pad: p, th: th}
}

func (p PadStyle) Layout(gtx layout.Context) layout.Dimensions {
	return p.Pad.Layout(gtx, func(gtx layout.Context, c widget.Control) layout.Dimensions {
		switch c := c.(type) {
		case *widget.Axis:
			return Axis(p.th, c).Layout(gtx)
		case *widget.Button:
			b := Button(p.th, c)
			b.Icon = p.Icons[c.ID()]
			return b.Layout(gtx)
		default:
			return layout.Dimensions{}
		}
	})
}
