// SPDX-License-Identifier: Unlicense OR MIT

// Command vpad shows virtual joystick controls in a window and
// replays scripted drags against them.
//
// Usage:
//
//	vpad [--layout pad.yaml] [--verbose]
//	vpad trace [--layout pad.yaml] script.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vpad",
		Short:         "virtual joystick and button controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			return runWindow(s)
		},
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "settings file (default $XDG_CONFIG_HOME/vpad/config.yaml)")
	flags.String("layout", "", "pad layout file")
	flags.Bool("verbose", false, "log every control event")
	root.Flags().String("title", "vpad", "window title")
	root.Flags().Int("width", 800, "window width in dp")
	root.Flags().Int("height", 480, "window height in dp")

	root.AddCommand(newTraceCmd())
	return root
}
