// SPDX-License-Identifier: Unlicense OR MIT

// Package replay drives a widget.Pad with scripted pointer input,
// without a window.
package replay

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gopkg.in/yaml.v3"

	"gioui.org/vpad/widget"
)

var (
	// ErrNoControl is returned for steps targeting a control the pad
	// doesn't have.
	ErrNoControl = errors.New("no such control")
	// ErrUnknownStep is returned for steps that are not press, move
	// or release.
	ErrUnknownStep = errors.New("unknown step")
)

// Script is a sequence of pointer steps.
type Script struct {
	// Width and Height are the size of the pad area in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Interval is the time between steps. It defaults to one frame at
	// 60 Hz.
	Interval time.Duration `yaml:"interval"`
	Steps    []Step        `yaml:"steps"`
}

// Step is a pointer event at a position relative to the center of
// a control.
type Step struct {
	// Kind is press, move or release.
	Kind    string     `yaml:"kind"`
	Control widget.ID  `yaml:"control"`
	X       float32    `yaml:"x"`
	Y       float32    `yaml:"y"`
	Pointer pointer.ID `yaml:"pointer"`
	// Touch selects a touch pointer instead of the mouse.
	Touch bool `yaml:"touch"`
}

// Frame is the outcome of one step.
type Frame struct {
	Time   time.Duration
	Step   Step
	Events []widget.Event
}

const defaultInterval = time.Second / 60

// Load reads the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a script.
func Decode(r io.Reader) (*Script, error) {
	s := new(Script)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("replay: %w", err)
	}
	for i, st := range s.Steps {
		if _, err := st.kind(); err != nil {
			return nil, fmt.Errorf("replay: step %d: %w", i, err)
		}
	}
	return s, nil
}

func (s Step) kind() (pointer.Kind, error) {
	switch strings.ToLower(s.Kind) {
	case "press":
		return pointer.Press, nil
	case "move":
		return pointer.Move, nil
	case "release":
		return pointer.Release, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownStep, s.Kind)
	}
}

// Run lays out pad in an area of the script size and plays the steps,
// one frame each. It returns the events reported after every step.
// Controls are laid out without drawing.
func Run(pad *widget.Pad, s *Script) ([]Frame, error) {
	size := image.Pt(s.Width, s.Height)
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(800, 600)
	}
	interval := s.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	var r input.Router
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(size),
		Source:      r.Source(),
	}
	frame := func(now time.Duration) {
		gtx.Reset()
		gtx.Now = time.Time{}.Add(now)
		pad.Layout(gtx, layoutControl)
		r.Frame(gtx.Ops)
	}

	frame(0)
	frames := make([]Frame, 0, len(s.Steps))
	var buttons pointer.Buttons
	for i, st := range s.Steps {
		now := time.Duration(i+1) * interval
		c := pad.Control(st.Control)
		if c == nil {
			return frames, fmt.Errorf("replay: step %d: %w %d", i, ErrNoControl, st.Control)
		}
		kind, err := st.kind()
		if err != nil {
			return frames, fmt.Errorf("replay: step %d: %w", i, err)
		}
		e := pointer.Event{
			Kind:      kind,
			Source:    pointer.Mouse,
			PointerID: st.Pointer,
			Time:      now,
			Position:  center(c.Bounds()).Add(f32.Pt(st.X, st.Y)),
		}
		if st.Touch {
			e.Source = pointer.Touch
		} else {
			switch kind {
			case pointer.Press:
				buttons = pointer.ButtonPrimary
			case pointer.Release:
				buttons = 0
			}
			e.Buttons = buttons
		}
		r.Queue(e)

		f := Frame{Time: now, Step: st}
		for {
			ev, ok := pad.Update(gtx)
			if !ok {
				break
			}
			f.Events = append(f.Events, ev)
		}
		frames = append(frames, f)
		frame(now)
	}
	return frames, nil
}

func center(r image.Rectangle) f32.Point {
	return f32.Pt(float32(r.Min.X+r.Max.X)/2, float32(r.Min.Y+r.Max.Y)/2)
}

func layoutControl(gtx layout.Context, c widget.Control) layout.Dimensions {
	switch c := c.(type) {
	case *widget.Axis:
		return c.Layout(gtx, empty)
	case *widget.Button:
		return c.Layout(gtx, empty)
	default:
		return layout.Dimensions{}
	}
}

func empty(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{Size: gtx.Constraints.Min}
}
