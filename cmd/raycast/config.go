package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/models"
	"github.com/taigrr/raycast/pkg/render"
	"github.com/taigrr/raycast/pkg/scene"
)

// Configuration errors, matched with errors.Is.
var (
	ErrInvalidSize   = errors.New("invalid image size")
	ErrInvalidFOV    = errors.New("field of view must be between 0 and 180 degrees")
	ErrInvalidPitch  = errors.New("pitch must be between -90 and 90 degrees")
	ErrInvalidBands  = errors.New("band count must not be negative")
	ErrInvalidFPS    = errors.New("target FPS must be positive")
	ErrInvalidFitBox = errors.New("model size must be positive")
)

// modelAnchor is where a loaded model is centered: in front of the default
// camera, resting near the floor.
var modelAnchor = math3d.V3(3, -1, 0)

// Config holds every command line setting.
type Config struct {
	Width  int
	Height int

	X, Y, Z float64
	Yaw     float64
	Pitch   float64
	FOV     float64

	Bands      int
	Props      bool
	Model      string
	ModelSize  float64
	ModelYaw   float64
	ModelPitch float64
	ModelRoll  float64
	Output     string
	FPS        int

	LogLevel string
	LogFile  string
}

func defaultConfig() Config {
	return Config{
		Width:     1920,
		Height:    1080,
		FOV:       90,
		ModelSize: 2,
		Output:    "frame.png",
		FPS:       60,
		LogLevel:  "info",
	}
}

// addSceneFlags registers the flags shared by every rendering command.
func addSceneFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.X, "x", cfg.X, "camera x position")
	fs.Float64Var(&cfg.Y, "y", cfg.Y, "camera y position")
	fs.Float64Var(&cfg.Z, "z", cfg.Z, "camera z position")
	fs.Float64Var(&cfg.Yaw, "yaw", cfg.Yaw, "camera yaw in degrees (0 looks down +X)")
	fs.Float64Var(&cfg.Pitch, "pitch", cfg.Pitch, "camera pitch in degrees")
	fs.Float64Var(&cfg.FOV, "fov", cfg.FOV, "vertical field of view in degrees")
	fs.IntVar(&cfg.Bands, "bands", cfg.Bands, "row bands rendered in parallel (0 = one per CPU)")
	fs.BoolVar(&cfg.Props, "props", cfg.Props, "add a ball and a cylinder to the room")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "glTF/GLB model to place in the room")
	fs.Float64Var(&cfg.ModelSize, "model-size", cfg.ModelSize, "largest dimension of the placed model")
	fs.Float64Var(&cfg.ModelYaw, "model-yaw", cfg.ModelYaw, "model rotation around Y in degrees")
	fs.Float64Var(&cfg.ModelPitch, "model-pitch", cfg.ModelPitch, "model rotation around X in degrees")
	fs.Float64Var(&cfg.ModelRoll, "model-roll", cfg.ModelRoll, "model rotation around Z in degrees")
}

// ValidateCamera checks the settings that reach the renderer.
func (c Config) ValidateCamera() error {
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("%w: %v", ErrInvalidFOV, c.FOV)
	}
	if !(c.Pitch > -90 && c.Pitch < 90) {
		return fmt.Errorf("%w: %v", ErrInvalidPitch, c.Pitch)
	}
	if c.Bands < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBands, c.Bands)
	}
	if c.Model != "" && !(c.ModelSize > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFitBox, c.ModelSize)
	}
	return nil
}

// Validate checks a snapshot configuration.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return c.ValidateCamera()
}

// Camera returns the configured starting pose.
func (c Config) Camera() render.Camera {
	return render.Camera{
		Position: math3d.V3(c.X, c.Y, c.Z),
		Yaw:      c.Yaw,
		Pitch:    c.Pitch,
		FOV:      c.FOV,
	}
}

// modelPlacement moves a mesh fitted at the origin to modelAnchor with the
// configured orientation.
func (c Config) modelPlacement() math3d.Mat4 {
	return math3d.Place(modelAnchor, math3d.Orient(c.ModelYaw, c.ModelPitch, c.ModelRoll), 1)
}

// BuildScene assembles the demo room plus the optional props and model.
func (c Config) BuildScene(logger *log.Logger) (*scene.Scene, error) {
	room := scene.DefaultRoom()

	if c.Props {
		scene.AddBall(room, math3d.V3(2, -1, -3), 1, 16, 8)
		scene.AddCylinder(room, math3d.V3(3, -2, 3), 0.5, 2, 12)
	}

	if c.Model != "" {
		mesh, err := models.LoadGLB(c.Model)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		mesh.Fit(math3d.Zero3(), c.ModelSize)
		mesh.Transform(c.modelPlacement())
		mesh.AddTo(room)

		logger.Info("model loaded",
			"file", mesh.Name,
			"vertices", mesh.VertexCount(),
			"triangles", mesh.TriangleCount())
	}

	degenerate := 0
	for _, s := range room.Surfaces() {
		if s.Degenerate() {
			degenerate++
		}
	}
	lo, hi, _ := room.Bounds()
	logger.Debug("scene built",
		"surfaces", room.Len(),
		"degenerate", degenerate,
		"min", lo,
		"max", hi)

	return room, nil
}
