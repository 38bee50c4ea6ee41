// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"

	"gioui.org/vpad/widget"
)

const twoSticks = `
controls:
  - kind: axis
    anchor: sw
    inset: {left: 30, bottom: 30}
    max_radius: 50
    rotation_damping: 0.1
  - kind: Axis
    anchor: SE
    inset: {right: 30, bottom: 30}
  - kind: button
    anchor: nw
    label: Y
`

func TestDecode(t *testing.T) {
	l, err := Decode(strings.NewReader(twoSticks))
	if err != nil {
		t.Fatal(err)
	}
	var pad widget.Pad
	controls, err := l.Apply(&pad)
	if err != nil {
		t.Fatal(err)
	}
	if len(controls) != 3 {
		t.Fatalf("got %d controls, want 3", len(controls))
	}

	left, ok := controls[0].(*widget.Axis)
	if !ok {
		t.Fatalf("control 0 is %T, want *widget.Axis", controls[0])
	}
	if r := left.MaxRadius(); r != 50 {
		t.Errorf("max radius %v, want 50", r)
	}
	if rot, mov := left.Damping(); rot != 0.1 || mov != widget.DefaultMoveDamping {
		t.Errorf("damping (%v, %v), want (0.1, %v)", rot, mov, widget.DefaultMoveDamping)
	}
	want := widget.Placement{
		Anchor: layout.SW,
		Inset:  layout.Inset{Left: 30, Bottom: 30},
		Size:   50,
	}
	if pl := left.Placement(); pl != want {
		t.Errorf("placement %+v, want %+v", pl, want)
	}

	right := controls[1].(*widget.Axis)
	if r := right.MaxRadius(); r != widget.DefaultMaxRadius {
		t.Errorf("default max radius %v", r)
	}
	if a := right.Placement().Anchor; a != layout.SE {
		t.Errorf("anchor %v, want SE", a)
	}

	b, ok := controls[2].(*widget.Button)
	if !ok {
		t.Fatalf("control 2 is %T, want *widget.Button", controls[2])
	}
	if b.Label() != "Y" {
		t.Errorf("label %q, want Y", b.Label())
	}
	// An explicit top left anchor is kept.
	if pl := b.Placement(); pl.Anchor != layout.NW || pl.Size != widget.DefaultButtonSize {
		t.Errorf("button placement %+v", pl)
	}
	for i, c := range controls {
		if c.ID() != widget.ID(i) {
			t.Errorf("control %d has ID %d", i, c.ID())
		}
	}
}

const unanchored = `
controls:
  - kind: button
    inset: {right: 30, bottom: 30}
  - kind: axis
    inset: {right: 30, bottom: 30}
  - kind: axis
    inset: {left: 10, bottom: 10}
  - kind: button
    inset: {right: 10}
  - kind: button
    size: 20
`

func TestDecodeUnanchored(t *testing.T) {
	l, err := Decode(strings.NewReader(unanchored))
	if err != nil {
		t.Fatal(err)
	}
	var pad widget.Pad
	controls, err := l.Apply(&pad)
	if err != nil {
		t.Fatal(err)
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(400, 300)),
	}
	pad.Layout(gtx, func(gtx layout.Context, c widget.Control) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	})

	tests := []struct {
		anchor layout.Direction
		bounds image.Rectangle
	}{
		{layout.SE, image.Rect(314, 214, 370, 270)},
		{layout.SE, image.Rect(330, 230, 370, 270)},
		{layout.SW, image.Rect(10, 250, 50, 290)},
		{layout.NE, image.Rect(334, 0, 390, 56)},
		// Without insets the size is the only change from the default.
		{layout.SE, image.Rect(360, 260, 380, 280)},
	}
	for i, test := range tests {
		c := controls[i]
		if a := c.Placement().Anchor; a != test.anchor {
			t.Errorf("control %d: anchor %v, want %v", i, a, test.anchor)
		}
		if b := c.Bounds(); b != test.bounds {
			t.Errorf("control %d: bounds %v, want %v", i, b, test.bounds)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		doc  string
		want error
	}{
		{"controls:\n  - kind: trigger\n", ErrUnknownKind},
		{"controls:\n  - kind: axis\n    anchor: middle\n", ErrUnknownAnchor},
	}
	for _, test := range tests {
		_, err := Decode(strings.NewReader(test.doc))
		if !errors.Is(err, test.want) {
			t.Errorf("Decode(%q) returned %v, want %v", test.doc, err, test.want)
		}
	}
	if _, err := Decode(strings.NewReader("controls:\n  - kind: axis\n    radius: 3\n")); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestDecodeEmpty(t *testing.T) {
	l, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Controls) != 0 {
		t.Errorf("empty document has %d controls", len(l.Controls))
	}
}

func TestDefault(t *testing.T) {
	var pad widget.Pad
	controls, err := Default().Apply(&pad)
	if err != nil {
		t.Fatal(err)
	}
	if len(controls) != 2 {
		t.Fatalf("got %d controls, want 2", len(controls))
	}
	a := controls[0].(*widget.Axis)
	if pl := a.Placement(); pl.Anchor != layout.SW || pl.Size != widget.DefaultMaxRadius {
		t.Errorf("default axis placement %+v", pl)
	}
	if b := controls[1].(*widget.Button); b.Label() != "A" {
		t.Errorf("default button label %q", b.Label())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(twoSticks), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Controls) != 3 {
		t.Errorf("got %d controls, want 3", len(l.Controls))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file returned %v", err)
	}
}
