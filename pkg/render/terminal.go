package render

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock is the upper half block. Its foreground paints the top pixel
// and its background the bottom one.
const halfBlock = "▀"

// Draw paints the buffer onto scr, two pixel rows per terminal row.
// The buffer height should be twice the height of area.
func (cb *ColorBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= cb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= cb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: pixelColor(cb.At(x, topY)),
					Bg: pixelColor(cb.At(x, botY)),
				},
			})
		}
	}
}

// pixelColor converts a packed pixel to a cell color. Fully transparent
// pixels map to the terminal default.
func pixelColor(p uint32) color.Color {
	c := Unpack(p)
	if c.A == 0 {
		return nil
	}
	return c
}

// Display is the part of a terminal a TerminalSink needs.
type Display interface {
	Draw(d uv.Drawable)
	Display() error
}

// TerminalSink presents frames on a terminal using half-block cells.
type TerminalSink struct {
	Term Display

	// Overlay, if set, is drawn over each frame before it is displayed.
	Overlay uv.Drawable
}

// NewTerminalSink creates a sink drawing onto term.
func NewTerminalSink(term Display) *TerminalSink {
	return &TerminalSink{Term: term}
}

// Present draws the frame and flushes it to the terminal.
func (s *TerminalSink) Present(cb *ColorBuffer) error {
	s.Term.Draw(cb)
	if s.Overlay != nil {
		s.Term.Draw(s.Overlay)
	}
	if err := s.Term.Display(); err != nil {
		return fmt.Errorf("display frame: %w", err)
	}
	return nil
}
