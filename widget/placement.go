// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
)

// Placement positions a control inside the area of its Pad. The zero
// Placement selects the default placement of the control kind.
type Placement struct {
	// Anchor is the corner, edge or center of the pad area the control
	// is attached to. The zero Anchor, NW, reads only the Top and Left
	// insets; with a Right inset and no Left inset the control is
	// attached to the east edge instead, and with a Bottom inset and no
	// Top inset to the south edge.
	Anchor layout.Direction
	// Inset is the distance from the anchored edges.
	Inset layout.Inset
	// Size is the diameter of the control. Zero selects the default
	// size of the control kind.
	Size unit.Dp
}

// withDefaults returns p with zero fields replaced from def and the
// anchor of an unanchored placement resolved from its insets.
func (p Placement) withDefaults(def Placement) Placement {
	if p == (Placement{}) {
		return def
	}
	if p.Size <= 0 {
		p.Size = def.Size
	}
	if p.Anchor == layout.NW {
		p.Anchor = anchorOf(p.Inset)
	}
	return p
}

// anchorOf returns the corner named by the edges set in in.
func anchorOf(in layout.Inset) layout.Direction {
	east := in.Right > 0 && in.Left <= 0
	south := in.Bottom > 0 && in.Top <= 0
	switch {
	case east && south:
		return layout.SE
	case east:
		return layout.NE
	case south:
		return layout.SW
	default:
		return layout.NW
	}
}

// origin returns the top-left corner of a control of the given size
// inside gtx.Constraints.Max.
func (p Placement) origin(gtx layout.Context, size image.Point) image.Point {
	area := gtx.Constraints.Max
	top, bottom := gtx.Dp(p.Inset.Top), gtx.Dp(p.Inset.Bottom)
	left, right := gtx.Dp(p.Inset.Left), gtx.Dp(p.Inset.Right)
	var pt image.Point
	switch p.Anchor {
	case layout.NW, layout.W, layout.SW:
		pt.X = left
	case layout.NE, layout.E, layout.SE:
		pt.X = area.X - size.X - right
	default:
		pt.X = (area.X - size.X + left - right) / 2
	}
	switch p.Anchor {
	case layout.NW, layout.N, layout.NE:
		pt.Y = top
	case layout.SW, layout.S, layout.SE:
		pt.Y = area.Y - size.Y - bottom
	default:
		pt.Y = (area.Y - size.Y + top - bottom) / 2
	}
	return pt
}
