// Package format describes the on-disk layouts of headerless YUV frame dumps.
//
// Raw dumps carry no header, so the caller always supplies the width, the
// height and the layout out-of-band. This package holds the static table of
// supported layouts and the arithmetic that turns a layout plus dimensions
// into plane sizes.
//
// # Descriptors
//
// Every supported layout has a [Descriptor] looked up by its integer [ID]:
//
//	desc, err := format.Lookup(format.NV12)
//	if err != nil {
//	    return err // ErrUnsupportedFormat
//	}
//
// Descriptors also carry name tokens so a filename can be mapped to a layout.
// The longest matching token wins, so "yv1210" beats "yv12":
//
//	id, err := format.FindByNameToken("foreman_yv1210_352x288.yuv")
//	// id == format.YV1210
//
// # Geometry
//
// [Compute] derives the plane sizes and the number of source bytes that make
// up one frame:
//
//	geom, err := format.Compute(1920, 1080, desc)
//	// geom.LumaSize == 1920*1080
//	// geom.RawSize  == bytes to read per frame
//
// Dimensions that are not multiples of 16 are reported in
// [Geometry.Warnings] but never rejected.
package format
