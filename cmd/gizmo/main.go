package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/assets"
)

var (
	modelsDir string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "gizmo",
	Short: "Inspect, export and replay the transform gizmo",
	Long: `gizmo works with the handle models of the transform gizmo.
It lists the per-mode part tables, exports the built-in handles as glTF,
and replays scripted cursor input against a gizmo to print its deltas.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modelsDir, "models", "", "load handle meshes from .glb files under this directory instead of the built-in shapes")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log per-mesh and per-drag detail")
}

// newLogger logs to w at info level, or debug level with --debug.
func newLogger(w io.Writer) gizmo.Logger {
	level := gizmo.LevelInfo
	if debug {
		level = gizmo.LevelDebug
	}
	return gizmo.NewWriterLogger(w, "gizmo", level)
}

func meshProvider() gizmo.MeshProvider {
	if modelsDir != "" {
		return assets.GLTFProvider{Root: modelsDir}
	}
	return assets.ProceduralProvider{}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
