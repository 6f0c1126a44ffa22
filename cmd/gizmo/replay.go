package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/geom"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Drive a gizmo with scripted cursor samples",
	Long: `Replay a YAML script of cursor samples against a gizmo and print the
selection, delta and total after every sample.

  viewport: {width: 1280, height: 720}
  camera:   {eye: [0, 0, 5], target: [0, 0, 0], fov: 60}
  gizmo:    {mode: translate, space: world, position: [0, 0, 0]}
  config:   {rotate_sensitivity: 90}
  samples:
    - {x: 580, y: 360}
    - {x: 580, y: 360, down: true}
    - {x: 700, y: 360, down: true}
    - {x: 700, y: 360}`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

type replayScript struct {
	Viewport struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`
	Camera  cameraSpec   `yaml:"camera"`
	Gizmo   gizmoSpec    `yaml:"gizmo"`
	Config  gizmo.Config `yaml:"config"`
	Samples []sampleSpec `yaml:"samples"`
}

type cameraSpec struct {
	Eye    mgl32.Vec3 `yaml:"eye"`
	Target mgl32.Vec3 `yaml:"target"`
	Fov    float32    `yaml:"fov"`
}

type gizmoSpec struct {
	Mode     string     `yaml:"mode"`
	Space    string     `yaml:"space"`
	Position mgl32.Vec3 `yaml:"position"`
	Rotation struct {
		Axis  mgl32.Vec3 `yaml:"axis"`
		Angle float32    `yaml:"angle"` // degrees
	} `yaml:"rotation"`
	SizeSteps int  `yaml:"size_steps"`
	Wrap      bool `yaml:"wrap"`
}

type sampleSpec struct {
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	Down bool    `yaml:"down"`
}

func parseScript(data []byte) (*replayScript, error) {
	s := &replayScript{Config: gizmo.DefaultConfig()}
	s.Viewport.Width, s.Viewport.Height = 1280, 720
	s.Camera.Eye = mgl32.Vec3{0, 0, 5}
	s.Camera.Fov = 60
	s.Gizmo.Mode = "translate"

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", s.Viewport.Width, s.Viewport.Height)
	}
	return s, nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	script, err := parseScript(data)
	if err != nil {
		return err
	}
	_, err = runScript(script, meshProvider(), newLogger(cmd.ErrOrStderr()), cmd.OutOrStdout())
	return err
}

// printWarper reports cursor teleports instead of moving a real cursor.
type printWarper struct {
	out io.Writer
}

func (w printWarper) WarpCursor(x, y float64) {
	fmt.Fprintf(w.out, "     warp to (%.0f, %.0f)\n", x, y)
}

func runScript(s *replayScript, provider gizmo.MeshProvider, log gizmo.Logger, out io.Writer) (*gizmo.Gizmo, error) {
	mode, err := gizmo.ParseMode(s.Gizmo.Mode)
	if err != nil {
		return nil, err
	}
	space, err := gizmo.ParseTransformSpace(s.Gizmo.Space)
	if err != nil {
		return nil, err
	}

	reg, err := gizmo.LoadModelRegistry(provider, gizmo.DefaultManifest(), log)
	if err != nil {
		return nil, err
	}
	g, err := gizmo.New(reg, gizmo.Options{Config: s.Config, Logger: log, Warper: printWarper{out: out}})
	if err != nil {
		return nil, err
	}

	w, h := s.Viewport.Width, s.Viewport.Height
	cam := gizmo.NewPerspectiveCamera(s.Camera.Eye, s.Camera.Target, float32(w)/float32(h))
	cam.FovY = s.Camera.Fov

	g.SetPosition(s.Gizmo.Position)
	if s.Gizmo.Rotation.Axis.Len() > 0 {
		g.SetLocalRotation(mgl32.QuatRotate(mgl32.DegToRad(s.Gizmo.Rotation.Angle), s.Gizmo.Rotation.Axis.Normalize()))
	}
	g.SetMode(mode)
	g.SetTransformSpace(space)
	g.EnableCursorWrap(s.Gizmo.Wrap)
	for i := 0; i < s.Gizmo.SizeSteps; i++ {
		g.IncrementSize()
	}
	for i := 0; i > s.Gizmo.SizeSteps; i-- {
		g.DecrementSize()
	}

	fmt.Fprintf(out, "%s gizmo, %s space, %dx%d viewport\n", g.Mode(), g.TransformSpace(), w, h)
	for i, sample := range s.Samples {
		frame := gizmo.Frame{
			Input: gizmo.Input{
				Ray:     geom.ScreenRay(sample.X, sample.Y, w, h, cam.ViewMatrix(), cam.ProjectionMatrix()),
				CursorX: sample.X,
				CursorY: sample.Y,
				Width:   w,
				Height:  h,
			},
			Camera:     cam,
			ButtonDown: sample.Down,
		}
		moved := g.ProcessInput(frame)
		fmt.Fprintf(out, "%3d  (%4.0f,%4.0f) %-4s %-4s %s\n",
			i, sample.X, sample.Y, buttonLabel(sample.Down), g.SelectedAxes(), readout(g, moved))
	}

	fmt.Fprintf(out, "position %s  rotation %s  scale %s\n",
		formatVec(g.Position()), formatQuat(g.Rotation()), formatVec(g.TotalScale()))
	return g, nil
}

func buttonLabel(down bool) string {
	if down {
		return "down"
	}
	return "up"
}

func readout(g *gizmo.Gizmo, moved bool) string {
	if !g.IsTransforming() {
		return ""
	}
	state := "drag"
	if moved {
		state = "moved"
	}
	switch g.Mode() {
	case gizmo.ModeTranslate:
		return fmt.Sprintf("%-5s delta %s total %s", state, formatVec(g.DeltaTranslation()), formatVec(g.TotalTranslation()))
	case gizmo.ModeRotate:
		return fmt.Sprintf("%-5s delta %s total %s deg", state, formatQuat(g.DeltaRotation()), formatVec(g.TotalRotation()))
	case gizmo.ModeScale:
		return fmt.Sprintf("%-5s delta %s total %s", state, formatVec(g.DeltaScale()), formatVec(g.TotalScale()))
	}
	return state
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X(), v.Y(), v.Z())
}

func formatQuat(q mgl32.Quat) string {
	return fmt.Sprintf("[%.4f (%.4f, %.4f, %.4f)]", q.W, q.V.X(), q.V.Y(), q.V.Z())
}
