package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gekko3d/gizmo"
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the model parts of every gizmo mode",
	Args:  cobra.NoArgs,
	RunE:  runParts,
}

func init() {
	rootCmd.AddCommand(partsCmd)
}

func runParts(cmd *cobra.Command, args []string) error {
	reg, err := gizmo.LoadModelRegistry(meshProvider(), gizmo.DefaultManifest(), newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, mode := range []gizmo.Mode{gizmo.ModeTranslate, gizmo.ModeRotate, gizmo.ModeScale} {
		fmt.Fprintf(out, "%s:\n", mode)
		for i, part := range reg.Parts(mode) {
			fmt.Fprintf(out, "  %d  %-8s %-4s %-22s %4d tris  %s\n",
				i, part.Name, part.Axes, part.Mesh.Path, len(part.Mesh.Surface.Triangles), partFlags(part))
		}
	}

	fmt.Fprintf(out, "\nMeshes (%d):\n", len(reg.Meshes()))
	for _, m := range reg.Meshes() {
		b := m.Surface.Bounds
		fmt.Fprintf(out, "  %-22s %s  min %s max %s\n", m.Path, m.ID, formatVec(b.Min), formatVec(b.Max))
	}
	return nil
}

func partFlags(p gizmo.ModelPart) string {
	var flags []string
	if p.RayCastEnabled {
		flags = append(flags, "pick")
	}
	if p.IsBillboard {
		flags = append(flags, "billboard")
	}
	if p.Transparent {
		flags = append(flags, "transparent")
	}
	return strings.Join(flags, ",")
}
