package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gekko3d/gizmo/assets"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the built-in handle meshes as .glb files",
	Long: `Write every built-in handle mesh to <dir>/<path>.glb. The result can be
edited in a modelling tool and loaded back with --models <dir>.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := args[0]
	log := newLogger(cmd.ErrOrStderr())
	provider := assets.ProceduralProvider{}

	for _, name := range assets.ProceduralNames() {
		surf, err := provider.LoadSurface(name)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, filepath.FromSlash(name)+".glb")
		if err := assets.WriteGLB(path, filepath.Base(name), surf); err != nil {
			return err
		}
		log.Debugf("exported %s (%d triangles)", path, len(surf.Triangles))
	}
	log.Infof("exported %d meshes to %s", len(assets.ProceduralNames()), dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d meshes to %s\n", len(assets.ProceduralNames()), dir)
	return nil
}
