package render

import (
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/raycast/pkg/scene"
)

// fallbackBands is used when the runtime reports no usable parallelism.
const fallbackBands = 4

// FrameStats describes the most recent frame.
type FrameStats struct {
	Width    int
	Height   int
	Bands    int
	Hits     int
	Duration time.Duration
}

// Renderer casts one primary ray per pixel and shades the nearest hit.
//
// Rows are split into contiguous bands rendered concurrently. Every pixel is
// a pure function of the scene, camera and its coordinates, so the output is
// identical for any band count.
//
// A Renderer owns the buffer it returns and overwrites it on the next call
// with the same dimensions. It is not safe for concurrent use.
type Renderer struct {
	bands  int
	shader Shader
	sky    uint32
	ground uint32
	logger *log.Logger

	buf   *ColorBuffer
	stats FrameStats
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBands fixes the number of row bands. Values below 1 select the
// runtime default.
func WithBands(n int) Option {
	return func(r *Renderer) {
		r.bands = n
	}
}

// WithShader replaces the default shading.
func WithShader(s Shader) Option {
	return func(r *Renderer) {
		r.shader = s
	}
}

// WithBackground sets the colors used where no surface is hit.
func WithBackground(sky, ground uint32) Option {
	return func(r *Renderer) {
		r.sky = sky
		r.ground = ground
	}
}

// WithLogger sets the logger used for per-frame debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a renderer with the default shading and background.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		shader: DefaultShader(),
		sky:    SkyColor,
		ground: GroundColor,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderFrame renders a single frame into a freshly allocated buffer.
func RenderFrame(scn *scene.Scene, cam Camera, width, height int) *ColorBuffer {
	return NewRenderer().Render(scn, cam, width, height)
}

// DefaultBands returns the number of bands used when none is configured.
func DefaultBands() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return fallbackBands
	}
	return n
}

// Bands splits height rows into n contiguous half-open [start, end) ranges.
// Each band gets height/n rows and the last one absorbs the remainder.
// n is clamped to [1, height] so that no band is empty.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	rows := height / n
	bands := make([][2]int, n)
	for i := range bands {
		start := i * rows
		end := start + rows
		if i == n-1 {
			end = height
		}
		bands[i] = [2]int{start, end}
	}
	return bands
}

// Render draws scn as seen from cam into a width x height buffer.
// The caller must pass positive dimensions and a camera whose pitch and FOV
// are inside their valid ranges.
func (r *Renderer) Render(scn *scene.Scene, cam Camera, width, height int) *ColorBuffer {
	start := time.Now()

	if r.buf == nil || r.buf.Width != width || r.buf.Height != height {
		r.buf = NewColorBuffer(width, height)
	}
	buf := r.buf
	buf.FillBackground(r.sky, r.ground)

	vp := cam.Viewport(width, height)

	n := r.bands
	if n < 1 {
		n = DefaultBands()
	}
	bands := Bands(height, n)
	hits := make([]int, len(bands))

	var g errgroup.Group
	for i, band := range bands {
		g.Go(func() error {
			hits[i] = r.renderBand(scn, vp, buf, band[0], band[1])
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, h := range hits {
		total += h
	}
	r.stats = FrameStats{
		Width:    width,
		Height:   height,
		Bands:    len(bands),
		Hits:     total,
		Duration: time.Since(start),
	}
	r.logger.Debug("frame rendered",
		"size", [2]int{width, height},
		"bands", r.stats.Bands,
		"hits", total,
		"elapsed", r.stats.Duration)

	return buf
}

// renderBand shades rows [y0, y1) and returns the number of pixels that hit
// a surface. Bands write disjoint rows of buf.
func (r *Renderer) renderBand(scn *scene.Scene, vp Viewport, buf *ColorBuffer, y0, y1 int) int {
	hits := 0
	for y := y0; y < y1; y++ {
		row := buf.Row(y)
		for x := range row {
			ray := vp.Ray(x, y)
			hit, ok := scn.NearestHit(ray)
			if !ok {
				continue
			}
			row[x] = r.shader.Shade(hit.Surface.Normal(), ray.Direction, hit.Distance)
			hits++
		}
	}
	return hits
}

// LastStats returns statistics for the most recent Render call.
func (r *Renderer) LastStats() FrameStats {
	return r.stats
}
