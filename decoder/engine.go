package decoder

import (
	"fmt"
	"io"

	"github.com/opd-ai/yuvcore/format"
	"github.com/sirupsen/logrus"
)

// Engine decodes a stream of frames for one geometry and format selection.
// It owns a FrameBuffer that is reused while the geometry stays the same.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	geom  format.Geometry
	dec   Decoder
	frame *FrameBuffer
	count uint64
}

// NewEngine computes the geometry for width x height in format id, picks the
// layout strategy and allocates the frame buffers.
func NewEngine(width, height int, id format.ID) (*Engine, error) {
	e := &Engine{}
	if err := e.configure(width, height, id); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) configure(width, height int, id format.ID) error {
	desc, err := format.Lookup(id)
	if err != nil {
		return err
	}
	geom, err := format.Compute(width, height, desc)
	if err != nil {
		return err
	}
	dec, err := New(desc)
	if err != nil {
		return err
	}
	if err := dec.Validate(geom); err != nil {
		return fmt.Errorf("%s %dx%d: %w", desc.Name, width, height, err)
	}

	if e.frame == nil {
		fb, err := NewFrameBuffer(geom)
		if err != nil {
			return err
		}
		e.frame = fb
	} else if err := e.frame.Reset(geom); err != nil {
		return err
	}

	e.geom = geom
	e.dec = dec

	logrus.WithFields(logrus.Fields{
		"function":   "Engine.configure",
		"format":     desc.Name,
		"family":     dec.Family().String(),
		"width":      width,
		"height":     height,
		"frame_size": geom.FrameSize,
		"raw_size":   geom.RawSize,
		"bit_depth":  desc.BitDepth(),
	}).Info("Configured decoder")

	for _, w := range geom.Warnings() {
		logrus.WithFields(logrus.Fields{
			"function": "Engine.configure",
			"format":   desc.Name,
			"width":    width,
			"height":   height,
		}).Warn(w.Message)
	}

	return nil
}

// Decode reads the next frame from r. The returned FrameBuffer is owned by
// the engine and overwritten by the next call.
func (e *Engine) Decode(r io.Reader) (*FrameBuffer, error) {
	if e.frame == nil {
		return nil, fmt.Errorf("%w: engine closed", ErrAllocationFailure)
	}
	if err := e.dec.Decode(r, e.frame); err != nil {
		return nil, err
	}
	e.count++

	logrus.WithFields(logrus.Fields{
		"function": "Engine.Decode",
		"format":   e.geom.Format.Name,
		"frame":    e.count,
	}).Debug("Decoded frame")

	return e.frame, nil
}

// Configure switches to a new frame size and format in one step.
func (e *Engine) Configure(width, height int, id format.ID) error {
	return e.configure(width, height, id)
}

// Resize switches to a new frame size, keeping the format.
func (e *Engine) Resize(width, height int) error {
	return e.configure(width, height, e.geom.Format.ID)
}

// SetFormat switches to a new format, keeping the frame size.
func (e *Engine) SetFormat(id format.ID) error {
	return e.configure(e.geom.Width, e.geom.Height, id)
}

// Geometry returns the current geometry.
func (e *Engine) Geometry() format.Geometry {
	return e.geom
}

// Frame returns the frame buffer. Its contents are meaningful only while
// Valid reports true.
func (e *Engine) Frame() *FrameBuffer {
	return e.frame
}

// Family returns the layout family of the current format.
func (e *Engine) Family() Family {
	return e.dec.Family()
}

// Warnings returns the geometry diagnostics of the current selection.
func (e *Engine) Warnings() []format.Warning {
	return e.geom.Warnings()
}

// Close releases the frame buffers.
func (e *Engine) Close() error {
	if e.frame != nil {
		e.frame.Release()
		e.frame = nil
	}
	return nil
}
