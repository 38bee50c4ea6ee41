// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// DefaultButtonSize is the diameter of a Button.
const DefaultButtonSize unit.Dp = 56

// ButtonConfig configures a Button. Zero fields select the defaults.
type ButtonConfig struct {
	// Placement positions the button. By default the button is
	// anchored to the bottom right corner, 20dp away from the edges.
	Placement Placement
	// Label is the letter drawn on the button. It defaults to "A".
	Label string
}

// Button is a round button reporting presses and releases.
type Button struct {
	control

	label   string
	pressed bool
	// pid is the pointer holding the button down.
	pid pointer.ID
}

func newButton(id ID, cfg ButtonConfig) *Button {
	if cfg.Label == "" {
		cfg.Label = "A"
	}
	return &Button{
		control: control{
			id:        id,
			placement: cfg.Placement.withDefaults(DefaultButtonPlacement()),
		},
		label: cfg.Label,
	}
}

// DefaultButtonPlacement returns the placement of a Button with a zero
// Placement.
func DefaultButtonPlacement() Placement {
	return Placement{
		Anchor: layout.SE,
		Inset:  layout.UniformInset(20),
		Size:   DefaultButtonSize,
	}
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Pressed reports whether a pointer is holding the button down.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Update the button state and report the next press or release, if
// any. Only the pointer that pressed the button can release it.
func (b *Button) Update(gtx layout.Context) (ButtonEvent, bool) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: b,
			Kinds:  pointer.Press | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if b.pressed {
				break
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
				break
			}
			b.pressed = true
			b.pid = e.PointerID
			return ButtonEvent{ID: b.id, Kind: KindPress, Source: e.Source}, true
		case pointer.Release, pointer.Cancel:
			if !b.pressed || b.pid != e.PointerID {
				break
			}
			b.pressed = false
			return ButtonEvent{ID: b.id, Kind: KindRelease, Source: e.Source}, true
		}
	}
	return ButtonEvent{}, false
}

// Layout the button and process its events. The input area is the
// circle inscribed in the dimensions of w.
func (b *Button) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	for {
		_, ok := b.Update(gtx)
		if !ok {
			break
		}
	}
	m := op.Record(gtx.Ops)
	dims := w(gtx)
	c := m.Stop()
	defer clip.Ellipse{Max: dims.Size}.Push(gtx.Ops).Pop()
	pointer.CursorPointer.Add(gtx.Ops)
	event.Op(gtx.Ops, b)
	c.Add(gtx.Ops)
	return dims
}
