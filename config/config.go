// SPDX-License-Identifier: Unlicense OR MIT

// Package config reads pad layouts from YAML files.
//
// A layout lists the controls of a pad in registration order:
//
//	controls:
//	  - kind: axis
//	    anchor: sw
//	    max_radius: 50
//	  - kind: button
//	    anchor: se
//	    label: B
//	    inset: {right: 30, bottom: 30}
//
// Omitted fields select the defaults of package widget. A control
// without an anchor is attached to the edges its inset names.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gopkg.in/yaml.v3"

	"gioui.org/vpad/widget"
)

var (
	// ErrUnknownKind is returned for controls that are neither axes
	// nor buttons.
	ErrUnknownKind = errors.New("unknown control kind")
	// ErrUnknownAnchor is returned for anchors that don't name a
	// corner, an edge or the center.
	ErrUnknownAnchor = errors.New("unknown anchor")
)

// Kind names a control kind in layout files.
const (
	KindAxis   = "axis"
	KindButton = "button"
)

// Layout describes the controls of a pad.
type Layout struct {
	Controls []Control `yaml:"controls"`
}

// Control describes one control. Fields that don't apply to the kind
// are ignored.
type Control struct {
	Kind   string  `yaml:"kind"`
	Anchor string  `yaml:"anchor"`
	Inset  Inset   `yaml:"inset"`
	Size   float32 `yaml:"size"`

	MaxRadius       float32 `yaml:"max_radius"`
	RotationDamping float32 `yaml:"rotation_damping"`
	MoveDamping     float32 `yaml:"move_damping"`

	Label string `yaml:"label"`
}

// Inset is the distance of a control from the edges of the pad, in
// dp.
type Inset struct {
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
}

var anchors = map[string]layout.Direction{
	"nw":     layout.NW,
	"n":      layout.N,
	"ne":     layout.NE,
	"e":      layout.E,
	"se":     layout.SE,
	"s":      layout.S,
	"sw":     layout.SW,
	"w":      layout.W,
	"center": layout.Center,
}

// Default returns the layout of a single joystick and an "A" button.
func Default() *Layout {
	return &Layout{
		Controls: []Control{
			{Kind: KindAxis},
			{Kind: KindButton, Label: "A"},
		},
	}
}

// Load reads the layout file at path.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode reads and validates a layout.
func Decode(r io.Reader) (*Layout, error) {
	l := new(Layout)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the kind and anchor of every control.
func (l *Layout) Validate() error {
	for i, c := range l.Controls {
		switch strings.ToLower(c.Kind) {
		case KindAxis, KindButton:
		default:
			return fmt.Errorf("config: control %d: %w %q", i, ErrUnknownKind, c.Kind)
		}
		if _, err := c.placement(); err != nil {
			return fmt.Errorf("config: control %d: %w", i, err)
		}
	}
	return nil
}

// Apply registers the controls of l on p, in order, and returns them.
func (l *Layout) Apply(p *widget.Pad) ([]widget.Control, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var controls []widget.Control
	for _, c := range l.Controls {
		pl, _ := c.placement()
		switch strings.ToLower(c.Kind) {
		case KindAxis:
			controls = append(controls, p.Axis(widget.AxisConfig{
				Placement:       pl,
				MaxRadius:       unit.Dp(c.MaxRadius),
				RotationDamping: c.RotationDamping,
				MoveDamping:     c.MoveDamping,
			}))
		case KindButton:
			controls = append(controls, p.Button(widget.ButtonConfig{
				Placement: pl,
				Label:     c.Label,
			}))
		}
	}
	return controls, nil
}

// placement converts the position of c. Without an anchor, a control
// is attached to the edges its insets name, or placed like the default
// control of its kind when it has no insets either.
func (c Control) placement() (widget.Placement, error) {
	pl := widget.Placement{
		Inset: layout.Inset{
			Top:    unit.Dp(c.Inset.Top),
			Bottom: unit.Dp(c.Inset.Bottom),
			Left:   unit.Dp(c.Inset.Left),
			Right:  unit.Dp(c.Inset.Right),
		},
		Size: unit.Dp(c.Size),
	}
	if c.Anchor == "" && pl.Inset == (layout.Inset{}) {
		def := c.defaultPlacement()
		if pl.Size > 0 {
			def.Size = pl.Size
		}
		return def, nil
	}
	if c.Anchor != "" {
		d, ok := anchors[strings.ToLower(c.Anchor)]
		if !ok {
			return widget.Placement{}, fmt.Errorf("%w %q", ErrUnknownAnchor, c.Anchor)
		}
		pl.Anchor = d
	}
	if pl.Size <= 0 {
		// A zero size would turn an explicit top left placement
		// into the default placement.
		pl.Size = c.defaultSize()
	}
	return pl, nil
}

func (c Control) defaultPlacement() widget.Placement {
	if strings.ToLower(c.Kind) == KindButton {
		return widget.DefaultButtonPlacement()
	}
	return widget.DefaultAxisPlacement(unit.Dp(c.MaxRadius))
}

func (c Control) defaultSize() unit.Dp {
	return c.defaultPlacement().Size
}
