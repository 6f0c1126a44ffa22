package gizmo

import "github.com/go-gl/mathgl/mgl32"

// Config holds the tuning constants of the gizmo. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// RayThickness is how close (in handle mesh units) a ray may pass to a
	// triangle edge and still pick it.
	RayThickness float32 `yaml:"ray_thickness"`
	// BoundsMargin grows every part's bounds for the broad phase.
	BoundsMargin float32 `yaml:"bounds_margin"`
	// EdgeOnThreshold rejects translate samples whose drag plane is nearly
	// edge-on to the camera.
	EdgeOnThreshold float32 `yaml:"edge_on_threshold"`

	RotateSensitivity float32 `yaml:"rotate_sensitivity"` // degrees per clip-space unit
	ScaleSensitivity  float32 `yaml:"scale_sensitivity"`

	// ScreenScale converts camera distance into the gizmo's visual size.
	ScreenScale    float32 `yaml:"screen_scale"`
	SizeStepFactor float32 `yaml:"size_step_factor"`
	MaxSizeSteps   int     `yaml:"max_size_steps"`

	// Forward is the axis billboard parts face along before they are turned
	// toward the camera.
	Forward mgl32.Vec3 `yaml:"forward"`
}

func DefaultConfig() Config {
	return Config{
		RayThickness:      0.05,
		BoundsMargin:      1.0,
		EdgeOnThreshold:   0.02,
		RotateSensitivity: 180,
		ScaleSensitivity:  5,
		ScreenScale:       0.1,
		SizeStepFactor:    1.3,
		MaxSizeSteps:      4,
		Forward:           mgl32.Vec3{0, 0, 1},
	}
}

// Options configure a Gizmo at construction.
type Options struct {
	Config Config
	Logger Logger
	// Warper teleports the hardware cursor when cursor wrap is enabled.
	Warper CursorWarper
}
