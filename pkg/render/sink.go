package render

import "fmt"

// Sink consumes finished frames. The buffer is only valid until the next
// frame is rendered into it.
type Sink interface {
	Present(cb *ColorBuffer) error
}

// PNGSink writes each frame to Path, replacing the previous one.
type PNGSink struct {
	Path string
}

// Present encodes the frame as PNG.
func (s PNGSink) Present(cb *ColorBuffer) error {
	if err := cb.SavePNG(s.Path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
