// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements virtual game controls: a draggable
// joystick, Axis, and a press-and-release Button. Controls are
// registered on a Pad, which positions them and reports their events.
// Widgets contain persistent state and process user events; the
// widget/material package implements drawing of them.
package widget
