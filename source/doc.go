// Package source opens raw YUV dumps as sequential, forward-seekable byte
// streams.
//
// Plain files are read and seeked directly. Dumps compressed with zstd or
// gzip are detected by their magic bytes and decompressed on the fly; a
// backward seek on a compressed dump reopens the stream and skips forward,
// so stepping back through a long compressed file is linear in its length.
//
//	src, err := source.Open("foreman_352x288.yuv.zst")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	frame, err := engine.Decode(src)
package source
