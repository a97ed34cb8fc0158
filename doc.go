// Package yuvcore steps through raw YUV frame dumps and decodes each frame
// into canonical Y, Cb and Cr planes ready for display.
//
// The decoding engine lives in the subpackages; this package is the caller
// facade that ties a dump on disk to an engine and adds the navigation and
// inspection features of a viewer.
//
// # Getting Started
//
//	options := yuvcore.NewOptions()
//	options.Path = "foreman_cif.yuv"
//	options.Width, options.Height = 352, 288
//	options.FormatName = "i420"
//	options.OnWarning = func(w format.Warning) {
//	    fmt.Fprintln(os.Stderr, "warning:", w)
//	}
//
//	viewer, err := yuvcore.New(options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer viewer.Close()
//
//	for {
//	    frame, err := viewer.Next()
//	    if errors.Is(err, decoder.ErrShortRead) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    show(frame.YCbCr())
//	}
//
// # Navigation
//
// Frames are numbered from 1. [Viewer.Next] decodes the frame at the current
// position, [Viewer.Prev] and [Viewer.SeekFrame] jump to a frame number and
// [Viewer.Rewind] goes back to the start. Frame n starts at byte offset
// (n-1)*RawSize of the dump.
//
// # Diff Mode
//
// When Options.DiffPath is set, every step decodes one frame from each dump
// with the same geometry and format and returns the difference frame from
// the metrics package. [Viewer.PSNR] reports the luma PSNR of the pair.
//
// # Diagnostics
//
// Width or height off the 16-pixel macroblock grid and dump sizes that are
// not a whole number of frames usually mean the caller passed the wrong
// geometry. They are logged and handed to Options.OnWarning, and decoding
// continues. [Viewer.Macroblock] is stricter and refuses unaligned widths.
package yuvcore
