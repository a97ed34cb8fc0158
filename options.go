package yuvcore

import (
	"fmt"
	"path/filepath"

	"github.com/opd-ai/yuvcore/format"
	"github.com/opd-ai/yuvcore/limits"
)

// WarningCallback receives non-fatal input diagnostics.
type WarningCallback func(w format.Warning)

// Options configures a Viewer.
type Options struct {
	// Path is the dump to decode.
	Path string
	// DiffPath, when set, enables diff mode against a second dump.
	DiffPath string

	Width  int
	Height int

	// Format is used when FormatName is empty and FormatFromPath is false.
	Format format.ID
	// FormatName is matched against the registry name tokens, so both
	// "nv21" and "clip_1080p_nv21" select NV21.
	FormatName string
	// FormatFromPath guesses the format from the base name of Path when
	// FormatName is empty.
	FormatFromPath bool

	// SwapChroma starts with the Cb and Cr views exchanged.
	SwapChroma bool

	OnWarning WarningCallback
}

// NewOptions returns options for a CIF (352x288) YV12 dump.
func NewOptions() *Options {
	return &Options{
		Width:  352,
		Height: 288,
		Format: format.YV12,
	}
}

// ResolveFormat returns the format the options select.
func (o *Options) ResolveFormat() (format.ID, error) {
	switch {
	case o.FormatName != "":
		return format.FindByNameToken(o.FormatName)
	case o.FormatFromPath:
		return format.FindByNameToken(filepath.Base(o.Path))
	default:
		if _, err := format.Lookup(o.Format); err != nil {
			return 0, err
		}
		return o.Format, nil
	}
}

// Validate checks the options before any file is opened.
func (o *Options) Validate() error {
	if o.Path == "" {
		return ErrNoSource
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", format.ErrInvalidGeometry, o.Width, o.Height)
	}
	if err := limits.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	_, err := o.ResolveFormat()
	return err
}
