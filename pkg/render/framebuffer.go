// Package render turns a scene and a camera pose into packed ARGB frames.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Background colors, packed as 0xAARRGGBB.
const (
	SkyColor    uint32 = 0xFF1A1A2E
	GroundColor uint32 = 0xFF3A3A3A
)

// ColorBuffer is a row-major grid of packed 0xAARRGGBB pixels.
type ColorBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewColorBuffer creates a zeroed buffer with the given dimensions.
func NewColorBuffer(width, height int) *ColorBuffer {
	width, height = max(width, 0), max(height, 0)
	return &ColorBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// FillBackground paints the upper half of the buffer (rows y < Height/2)
// with sky and the rest with ground.
func (cb *ColorBuffer) FillBackground(sky, ground uint32) {
	horizon := cb.Height / 2
	for y := 0; y < cb.Height; y++ {
		c := ground
		if y < horizon {
			c = sky
		}
		row := cb.Row(y)
		for x := range row {
			row[x] = c
		}
	}
}

// Row returns the pixels of row y. Writes go straight into the buffer.
func (cb *ColorBuffer) Row(y int) []uint32 {
	return cb.Pixels[y*cb.Width : (y+1)*cb.Width]
}

// Set sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (cb *ColorBuffer) Set(x, y int, c uint32) {
	if x < 0 || x >= cb.Width || y < 0 || y >= cb.Height {
		return
	}
	cb.Pixels[y*cb.Width+x] = c
}

// At returns the pixel at (x, y), or 0 if out of bounds.
func (cb *ColorBuffer) At(x, y int) uint32 {
	if x < 0 || x >= cb.Width || y < 0 || y >= cb.Height {
		return 0
	}
	return cb.Pixels[y*cb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (cb *ColorBuffer) DrawLine(x0, y0, x1, y1 int, c uint32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		cb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCrosshair draws a small plus sign centered on the buffer.
func (cb *ColorBuffer) DrawCrosshair(size int, c uint32) {
	cx, cy := cb.Width/2, cb.Height/2
	cb.DrawLine(cx-size, cy, cx+size, cy, c)
	cb.DrawLine(cx, cy-size, cx, cy+size, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// PackRGB packs an opaque color as 0xAARRGGBB.
func PackRGB(r, g, b uint8) uint32 {
	return 0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed 0xAARRGGBB pixel into its channels.
func Unpack(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// ToImage converts the buffer to an image.RGBA.
func (cb *ColorBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cb.Width, cb.Height))
	for y := 0; y < cb.Height; y++ {
		for x := 0; x < cb.Width; x++ {
			img.SetRGBA(x, y, Unpack(cb.Pixels[y*cb.Width+x]))
		}
	}
	return img
}

// SavePNG writes the buffer to path as a PNG image.
func (cb *ColorBuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, cb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
