package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:   "raycast",
		Short: "Ray cast a shaded room in your terminal",
		Long: `raycast renders a small room of triangles by casting one ray per pixel.

Use "view" to walk around it in the terminal, or "snapshot" to write a
single frame to a PNG file. A glTF model can be dropped into the room with
--model.`,
		Example: `
# Walk around the room:
raycast view

# Look at a model:
raycast view --model duck.glb

# Render the default frame at 1920x1080:
raycast snapshot -o room.png

# Render a smaller frame from another angle:
raycast snapshot -o corner.png --width 640 --height 360 --yaw 45 --pitch -10`,
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")

	root.AddCommand(
		newViewCmd(&cfg),
		newSnapshotCmd(&cfg),
	)
	return root
}
