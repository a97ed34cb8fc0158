package yuvcore

import (
	"errors"
	"fmt"

	"github.com/opd-ai/yuvcore/decoder"
	"github.com/opd-ai/yuvcore/format"
	"github.com/opd-ai/yuvcore/metrics"
	"github.com/opd-ai/yuvcore/source"
	"github.com/sirupsen/logrus"
)

// stream is one dump and the engine that decodes it.
type stream struct {
	src    *source.Source
	engine *decoder.Engine
}

func openStream(path string, width, height int, id format.ID) (*stream, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	engine, err := decoder.NewEngine(width, height, id)
	if err != nil {
		src.Close()
		return nil, err
	}
	return &stream{src: src, engine: engine}, nil
}

func (s *stream) close() error {
	return errors.Join(s.engine.Close(), s.src.Close())
}

// Viewer steps through one dump, or through two in diff mode.
//
// A Viewer is not safe for concurrent use.
type Viewer struct {
	opts Options

	main *stream
	diff *stream

	diffFrame *decoder.FrameBuffer
	score     metrics.Score
	hasScore  bool

	// frame is the 1-based number of the last decoded frame, 0 before the
	// first step.
	frame    int
	swap     bool
	warnings []format.Warning
}

// New validates opts, opens the dumps and prepares the engines.
func New(opts *Options) (*Viewer, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	id, err := opts.ResolveFormat()
	if err != nil {
		return nil, err
	}

	v := &Viewer{opts: *opts, swap: opts.SwapChroma}

	v.main, err = openStream(opts.Path, opts.Width, opts.Height, id)
	if err != nil {
		return nil, err
	}
	if opts.DiffPath != "" {
		v.diff, err = openStream(opts.DiffPath, opts.Width, opts.Height, id)
		if err != nil {
			v.main.close()
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":  "New",
		"path":      opts.Path,
		"diff_path": opts.DiffPath,
		"format":    id.String(),
		"width":     opts.Width,
		"height":    opts.Height,
	}).Info("Viewer created")

	v.checkInput()
	return v, nil
}

// checkInput reports geometry misalignment and dumps that are not a whole
// number of frames.
func (v *Viewer) checkInput() {
	g := v.main.engine.Geometry()
	warnings := g.Warnings()

	for _, s := range v.streams() {
		size := s.src.Size()
		if size < 0 {
			continue
		}
		if w, ok := g.CheckSourceSize(size); ok {
			w.Message = fmt.Sprintf("%s: %s", s.src.Path(), w.Message)
			warnings = append(warnings, w)
		}
	}

	v.warnings = warnings
	for _, w := range warnings {
		logrus.WithFields(logrus.Fields{
			"function": "Viewer.checkInput",
			"format":   g.Format.Name,
			"width":    g.Width,
			"height":   g.Height,
		}).Warn(w.Message)

		if v.opts.OnWarning != nil {
			v.opts.OnWarning(w)
		}
	}
}

func (v *Viewer) streams() []*stream {
	if v.diff == nil {
		return []*stream{v.main}
	}
	return []*stream{v.main, v.diff}
}

// Next decodes the frame at the current position. In diff mode it returns
// the difference frame. On failure, including the decoder.ErrShortRead that
// marks the end of a dump, every dump is moved back to the start of the
// frame that failed, so the dumps never drift apart.
func (v *Viewer) Next() (*decoder.FrameBuffer, error) {
	fb, err := v.next()
	if err != nil {
		return nil, v.restorePosition(err)
	}
	v.frame++
	v.logStep()
	return fb, nil
}

func (v *Viewer) next() (*decoder.FrameBuffer, error) {
	fb, err := v.main.engine.Decode(v.main.src)
	if err != nil {
		return nil, err
	}
	fb.SetChromaSwap(v.swap)

	if v.diff == nil {
		return fb, nil
	}

	other, err := v.diff.engine.Decode(v.diff.src)
	if err != nil {
		return nil, fmt.Errorf("diff source: %w", err)
	}
	score, err := metrics.PSNR(fb, other)
	if err != nil {
		return nil, err
	}

	if v.diffFrame == nil {
		v.diffFrame, err = metrics.Difference(fb, other)
	} else {
		err = metrics.DifferenceInto(v.diffFrame, fb, other)
	}
	if err != nil {
		return nil, err
	}

	v.score, v.hasScore = score, true
	return v.diffFrame, nil
}

// restorePosition seeks every dump to the start of frame v.frame+1 and
// returns cause, joined with any seek failure.
func (v *Viewer) restorePosition(cause error) error {
	offset := v.main.engine.Geometry().FrameOffset(v.frame + 1)
	for _, s := range v.streams() {
		if err := s.src.SeekTo(offset); err != nil {
			return errors.Join(cause, err)
		}
	}
	return cause
}

func (v *Viewer) logStep() {
	fields := logrus.Fields{
		"function": "Viewer.Next",
		"frame":    v.frame,
	}
	if v.hasScore {
		fields["psnr"] = v.score.String()
	}
	logrus.WithFields(fields).Debug("Stepped to frame")
}

// SeekFrame decodes frame n (1-based).
func (v *Viewer) SeekFrame(n int) (*decoder.FrameBuffer, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFrameOutOfRange, n)
	}
	offset := v.main.engine.Geometry().FrameOffset(n)
	for _, s := range v.streams() {
		if err := s.src.SeekTo(offset); err != nil {
			return nil, err
		}
	}
	v.frame = n - 1
	return v.Next()
}

// Prev decodes the frame before the last decoded one. On the first frame it
// decodes the first frame again.
func (v *Viewer) Prev() (*decoder.FrameBuffer, error) {
	return v.SeekFrame(max(1, v.frame-1))
}

// Rewind positions every dump at its start. The next call to Next decodes
// frame 1.
func (v *Viewer) Rewind() error {
	for _, s := range v.streams() {
		if err := s.src.SeekTo(0); err != nil {
			return err
		}
	}
	v.frame = 0
	v.hasScore = false
	return nil
}

// Resize switches to a new frame size, reallocating every frame buffer, and
// rewinds.
func (v *Viewer) Resize(width, height int) error {
	if err := v.reconfigure(func(e *decoder.Engine) error {
		return e.Resize(width, height)
	}); err != nil {
		return err
	}
	v.opts.Width, v.opts.Height = width, height

	logrus.WithFields(logrus.Fields{
		"function": "Viewer.Resize",
		"width":    width,
		"height":   height,
	}).Info("Resized")

	v.checkInput()
	return v.Rewind()
}

// SetFormat switches to format id and rewinds.
func (v *Viewer) SetFormat(id format.ID) error {
	if err := v.reconfigure(func(e *decoder.Engine) error {
		return e.SetFormat(id)
	}); err != nil {
		return err
	}
	v.opts.Format = id

	logrus.WithFields(logrus.Fields{
		"function": "Viewer.SetFormat",
		"format":   id.String(),
	}).Info("Changed format")

	v.checkInput()
	return v.Rewind()
}

// reconfigure applies change to every engine. When one engine fails, the
// engines already changed, and the failing one, go back to the previous
// geometry so main and diff always agree.
func (v *Viewer) reconfigure(change func(*decoder.Engine) error) error {
	prev := v.main.engine.Geometry()
	streams := v.streams()

	for i, s := range streams {
		err := change(s.engine)
		if err == nil {
			continue
		}
		for _, done := range streams[:i+1] {
			if rerr := done.engine.Configure(prev.Width, prev.Height, prev.Format.ID); rerr != nil {
				return errors.Join(err, rerr)
			}
		}
		return err
	}

	v.diffFrame = nil
	return nil
}

// ToggleChromaSwap exchanges the Cb and Cr views of the current and every
// following frame and returns the new state.
func (v *Viewer) ToggleChromaSwap() bool {
	v.swap = !v.swap
	v.main.engine.Frame().SetChromaSwap(v.swap)
	return v.swap
}

// PSNR returns the luma PSNR of the last decoded pair in diff mode.
func (v *Viewer) PSNR() (metrics.Score, error) {
	if v.diff == nil {
		return metrics.Score{}, ErrNoDiffSource
	}
	if !v.hasScore {
		return metrics.Score{}, ErrNoFrame
	}
	return v.score, nil
}

// Frame returns the last decoded source frame, or nil before the first step.
// In diff mode this is the frame of the main dump, not the difference.
func (v *Viewer) Frame() *decoder.FrameBuffer {
	fb := v.main.engine.Frame()
	if v.frame == 0 || fb == nil || !fb.Valid() {
		return nil
	}
	return fb
}

// FrameNumber returns the 1-based number of the last decoded frame, 0 before
// the first step.
func (v *Viewer) FrameNumber() int {
	return v.frame
}

// FrameCount returns the number of whole frames in the main dump, or -1 when
// the dump is compressed.
func (v *Viewer) FrameCount() int64 {
	size := v.main.src.Size()
	if size < 0 {
		return -1
	}
	return v.main.engine.Geometry().FrameCount(size)
}

// Geometry returns the current frame geometry.
func (v *Viewer) Geometry() format.Geometry {
	return v.main.engine.Geometry()
}

// Warnings returns the diagnostics of the last input check.
func (v *Viewer) Warnings() []format.Warning {
	return append([]format.Warning(nil), v.warnings...)
}

// Close releases the engines and closes the dumps.
func (v *Viewer) Close() error {
	var errs []error
	for _, s := range v.streams() {
		errs = append(errs, s.close())
	}
	return errors.Join(errs...)
}
