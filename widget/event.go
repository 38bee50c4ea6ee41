// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"gioui.org/io/pointer"

	"gioui.org/vpad/stick"
)

// ID identifies a control within its Pad.
type ID int

// Event is a MoveEvent or a ButtonEvent.
type Event interface {
	ImplementsEvent()
}

// MoveEvent reports the direction of an Axis after a drag or a
// release. The embedded Vector is zero after a release.
type MoveEvent struct {
	ID ID
	stick.Vector
}

// ButtonEvent reports a press or a release of a Button.
type ButtonEvent struct {
	ID     ID
	Kind   ButtonKind
	Source pointer.Source
}

// ButtonKind is the kind of a ButtonEvent.
type ButtonKind uint8

const (
	// KindPress is reported when a pointer presses the button.
	KindPress ButtonKind = iota
	// KindRelease is reported when the pressing pointer is released
	// or cancelled.
	KindRelease
)

func (k ButtonKind) String() string {
	switch k {
	case KindPress:
		return "Press"
	case KindRelease:
		return "Release"
	default:
		return fmt.Sprintf("ButtonKind(%d)", uint8(k))
	}
}

func (MoveEvent) ImplementsEvent()   {}
func (ButtonEvent) ImplementsEvent() {}
