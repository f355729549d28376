package main

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/taigrr/raycast/pkg/math3d"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidSize},
		{"zero fov", func(c *Config) { c.FOV = 0 }, ErrInvalidFOV},
		{"straight fov", func(c *Config) { c.FOV = 180 }, ErrInvalidFOV},
		{"pitch at pole", func(c *Config) { c.Pitch = 90 }, ErrInvalidPitch},
		{"pitch below pole", func(c *Config) { c.Pitch = -90 }, ErrInvalidPitch},
		{"near pole", func(c *Config) { c.Pitch = 89.9 }, nil},
		{"negative bands", func(c *Config) { c.Bands = -2 }, ErrInvalidBands},
		{"flat model box", func(c *Config) { c.Model = "a.glb"; c.ModelSize = 0 }, ErrInvalidFitBox},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestConfigCamera(t *testing.T) {
	cfg := defaultConfig()
	cfg.X, cfg.Y, cfg.Z = 1, 2, 3
	cfg.Yaw, cfg.Pitch = 45, -10

	cam := cfg.Camera()
	if cam.Position != math3d.V3(1, 2, 3) || cam.Yaw != 45 || cam.Pitch != -10 || cam.FOV != 90 {
		t.Errorf("camera = %+v", cam)
	}
}

func TestBuildScene(t *testing.T) {
	logger := log.New(io.Discard)

	cfg := defaultConfig()
	scn, err := cfg.BuildScene(logger)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	if scn.Len() != 20 {
		t.Errorf("room has %d surfaces, want 20", scn.Len())
	}

	cfg.Props = true
	scn, err = cfg.BuildScene(logger)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	// Ball: 2*16*8 triangles, cylinder: 4*12.
	if want := 20 + 256 + 48; scn.Len() != want {
		t.Errorf("room with props has %d surfaces, want %d", scn.Len(), want)
	}

	cfg.Model = "/nonexistent/model.glb"
	if _, err := cfg.BuildScene(logger); err == nil {
		t.Error("expected an error for a missing model")
	}
}

func TestModelPlacement(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll float64
		in, want         math3d.Vec3
	}{
		{"upright", 0, 0, 0, math3d.V3(0, 1, 0), math3d.V3(0, 1, 0)},
		{"pitched", 0, 90, 0, math3d.V3(0, 1, 0), math3d.V3(0, 0, 1)},
		{"rolled", 0, 0, 90, math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)},
		{"turned", 90, 0, 0, math3d.V3(1, 0, 0), math3d.V3(0, 0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.ModelYaw, cfg.ModelPitch, cfg.ModelRoll = tc.yaw, tc.pitch, tc.roll

			got := cfg.modelPlacement().MulVec3(tc.in)
			if want := modelAnchor.Add(tc.want); !got.ApproxEqual(want, 1e-12) {
				t.Errorf("placed %v at %v, want %v", tc.in, got, want)
			}
		})
	}
}

func TestSceneFlagsOrientModel(t *testing.T) {
	cfg := defaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSceneFlags(fs, &cfg)

	if err := fs.Parse([]string{"--model-yaw=10", "--model-pitch=20", "--model-roll=-30"}); err != nil {
		t.Fatal(err)
	}
	if cfg.ModelYaw != 10 || cfg.ModelPitch != 20 || cfg.ModelRoll != -30 {
		t.Errorf("orientation = %v/%v/%v, want 10/20/-30", cfg.ModelYaw, cfg.ModelPitch, cfg.ModelRoll)
	}
}
