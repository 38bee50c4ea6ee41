// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws the controls of package widget in the style
// of the Gio material theme.
//
// The stateful controls live in a widget.Pad, while the styles in this
// package are created each frame to draw them:
//
//	var pad widget.Pad
//	stick := pad.Axis(widget.AxisConfig{})
//	fire := pad.Button(widget.ButtonConfig{Label: "F"})
//
//	th := material.NewTheme()
//	vmaterial.Pad(th, &pad).Layout(gtx)
//
// Axis and Button styles may also be laid out on their own, and their
// fields changed before layout:
//
//	style := vmaterial.Button(th, fire)
//	style.Background = color.NRGBA{R: 0xc0, A: 0xff}
//	style.Layout(gtx)
package material
