package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/raycast/pkg/control"
	"github.com/taigrr/raycast/pkg/render"
)

// cellLookScale converts mouse travel in terminal cells to the pixel-sized
// steps the controller's sensitivity is tuned for.
const cellLookScale = 10

var crosshairColor = render.PackRGB(255, 255, 255)

func newViewCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Walk around the room in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The terminal is busy drawing, so logs only go to a file.
			logger, closer, err := openLogger(*cfg, io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			return runView(cmd.Context(), *cfg, logger)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frames per second")
	addSceneFlags(fs, cfg)

	return cmd
}

// termSize is the latest terminal size reported by the event loop.
type termSize struct {
	mu            sync.Mutex
	width, height int
	changed       bool
}

func (s *termSize) set(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = w, h
	s.changed = true
}

// get returns the size and whether it changed since the last call.
func (s *termSize) get() (w, h int, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, s.changed = s.changed, false
	return s.width, s.height, changed
}

// screen is the part of uv.Terminal the viewer sets up and tears down.
type screen interface {
	Start() error
	EnterAltScreen()
	ExitAltScreen()
	HideCursor()
	ShowCursor()
	Resize(width, height int) error
	Shutdown(ctx context.Context) error
}

// openScreen starts term in the alt screen with mouse tracking written to
// out. The returned cleanup restores the terminal. When openScreen fails
// after the terminal started, cleanup has already run.
func openScreen(term screen, out io.Writer, width, height int, logger *log.Logger) (func(), error) {
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	cleanup := func() {
		fmt.Fprint(out, "\x1b[?1003l")
		fmt.Fprint(out, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			logger.Warn("terminal shutdown", "err", err)
		}
	}

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		cleanup()
		return nil, fmt.Errorf("resize terminal: %w", err)
	}

	// Enable mouse mode
	fmt.Fprint(out, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(out, "\x1b[?1006h") // Enable SGR extended mouse mode

	return cleanup, nil
}

func runView(ctx context.Context, cfg Config, logger *log.Logger) error {
	if err := cfg.ValidateCamera(); err != nil {
		return err
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, cfg.FPS)
	}

	scn, err := cfg.BuildScene(logger)
	if err != nil {
		return err
	}

	// Create terminal
	term := uv.DefaultTerminal()
	term.SetLogger(logger)

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	cleanup, err := openScreen(term, os.Stdout, width, height, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	size := &termSize{width: width, height: height}

	speeds := control.DefaultSpeeds()
	ctrl := control.NewController(cfg.Camera(), speeds)
	smoother := control.NewSmoother(cfg.FPS)
	fps := control.NewFPSCounter()
	renderer := render.NewRenderer(
		render.WithBands(cfg.Bands),
		render.WithLogger(logger),
	)

	title := "room"
	if cfg.Model != "" {
		title = filepath.Base(cfg.Model)
	}
	overlay := &hud{title: title, surfaces: scn.Len()}
	sink := render.NewTerminalSink(term)
	sink.Overlay = overlay

	var hudMu sync.Mutex
	toggleHUD := func() {
		hudMu.Lock()
		defer hudMu.Unlock()
		overlay.show = !overlay.show
	}

	logger.Info("viewer started",
		"size", [2]int{width, height},
		"surfaces", scn.Len(),
		"fps", cfg.FPS)

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				size.set(ev.Width, ev.Height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					cancel()
					return
				case ev.MatchString("?", "shift+/"):
					toggleHUD()
				default:
					if cmd := commandFor(ev); cmd != control.None {
						logger.Debug("key", "command", cmd.String())
						ctrl.Apply(cmd)
					}
				}

			case uv.MouseClickEvent:
				if ev.Button == uv.MouseLeft {
					mouseDown = true
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					ctrl.Look(dx*cellLookScale, dy*cellLookScale)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					ctrl.Apply(control.ZoomIn)
				case uv.MouseWheelDown:
					ctrl.Apply(control.ZoomOut)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(cfg.FPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			logger.Info("viewer stopped")
			return nil
		default:
		}

		now := time.Now()

		w, h, resized := size.get()
		if resized {
			term.Erase()
			if err := term.Resize(w, h); err != nil {
				cleanup()
				return fmt.Errorf("resize terminal: %w", err)
			}
			logger.Debug("terminal resized", "size", [2]int{w, h})
		}
		if w <= 0 || h <= 0 {
			time.Sleep(targetDuration)
			continue
		}

		// Two pixel rows per terminal row
		pose := smoother.Update(ctrl.Pose())
		cb := renderer.Render(scn, pose, w, h*2)
		cb.DrawCrosshair(1, crosshairColor)

		hit, onHit := pose.CastAngles(scn, pose.Yaw, pose.Pitch)

		hudMu.Lock()
		overlay.fps = fps.Tick()
		overlay.stats = renderer.LastStats()
		overlay.pose = pose
		overlay.setTarget(hit, onHit)
		err := sink.Present(cb)
		hudMu.Unlock()
		if err != nil {
			cleanup()
			return fmt.Errorf("present frame: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
