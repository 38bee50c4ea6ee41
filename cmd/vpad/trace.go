// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"gioui.org/vpad/internal/replay"
	"gioui.org/vpad/widget"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace script.yaml",
		Short: "replay a pointer script and plot the axis output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			return runTrace(cmd.OutOrStdout(), s, args[0])
		},
	}
	cmd.Flags().Int("plot-width", 72, "plot width in columns")
	cmd.Flags().Int("plot-height", 12, "plot height in rows")
	return cmd
}

// axisTrace is the output of one axis, sampled after every step.
type axisTrace struct {
	forward, turn []float64
	moves         int
	clamped       int
}

// buttonTrace counts the events of one button.
type buttonTrace struct {
	label             string
	presses, releases int
}

func runTrace(w io.Writer, s settings, path string) error {
	l, err := loadLayout(s.Layout)
	if err != nil {
		return err
	}
	script, err := replay.Load(path)
	if err != nil {
		return err
	}
	var pad widget.Pad
	if _, err := l.Apply(&pad); err != nil {
		return err
	}
	frames, err := replay.Run(&pad, script)
	if err != nil {
		return err
	}

	axes := make(map[widget.ID]*axisTrace)
	buttons := make(map[widget.ID]*buttonTrace)
	for _, c := range pad.Controls() {
		switch c := c.(type) {
		case *widget.Axis:
			axes[c.ID()] = new(axisTrace)
		case *widget.Button:
			buttons[c.ID()] = &buttonTrace{label: c.Label()}
		}
	}
	for _, f := range frames {
		for _, e := range f.Events {
			if s.Verbose {
				log.Printf("%v: %s", f.Time, describe(e))
			}
			switch e := e.(type) {
			case widget.MoveEvent:
				t := axes[e.ID]
				t.moves++
				// Values are normalized, so only clamped drags reach
				// length 1.
				if e.Len() >= 1-1e-5 {
					t.clamped++
				}
			case widget.ButtonEvent:
				b := buttons[e.ID]
				switch e.Kind {
				case widget.KindPress:
					b.presses++
				case widget.KindRelease:
					b.releases++
				}
			}
		}
		for id, t := range axes {
			v := pad.Control(id).(*widget.Axis).Value()
			t.forward = append(t.forward, float64(v.Forward))
			t.turn = append(t.turn, float64(v.Turn))
		}
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %d steps", path, len(frames))))
	for _, id := range sortedIDs(axes) {
		t := axes[id]
		fmt.Fprintln(w)
		if len(t.forward) > 0 {
			graph := asciigraph.PlotMany([][]float64{t.forward, t.turn},
				asciigraph.Height(s.Plot.Height),
				asciigraph.Width(s.Plot.Width),
				asciigraph.LowerBound(-1),
				asciigraph.UpperBound(1),
				asciigraph.SeriesColors(asciigraph.Green, asciigraph.Blue),
				asciigraph.Caption(fmt.Sprintf("axis %d: forward (green), turn (blue)", id)),
			)
			fmt.Fprintln(w, graph)
		}
		fmt.Fprintln(w, field("moves", t.moves), field("clamped", t.clamped))
	}
	for _, id := range sortedIDs(buttons) {
		b := buttons[id]
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("button %d %q", id, b.label)),
			field("presses", b.presses), field("releases", b.releases))
	}
	return nil
}

func field(name string, v int) string {
	return labelStyle.Render(name+":") + " " + valueStyle.Render(fmt.Sprint(v))
}

func sortedIDs[T any](m map[widget.ID]T) []widget.ID {
	ids := make([]widget.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
