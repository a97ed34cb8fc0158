package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
)

// Compression identifies the container of a dump.
type Compression uint8

const (
	// CompressionNone is a plain concatenation of frames.
	CompressionNone Compression = iota
	// CompressionZstd is a zstd stream.
	CompressionZstd
	// CompressionGzip is a gzip stream.
	CompressionGzip
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	gzipMagic = []byte{0x1F, 0x8B}
)

// Detect classifies a stream by its leading bytes.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// Source is a dump opened for frame-by-frame reading. It is not safe for
// concurrent use.
type Source struct {
	path string
	file *os.File
	comp Compression
	size int64

	r     io.Reader
	close func() error
	pos   int64
}

// Open opens the dump at path and detects its compression.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	head := make([]byte, len(zstdMagic))
	n, err := f.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("reading %s header: %w", path, err)
	}

	s := &Source{
		path: path,
		file: f,
		comp: Detect(head[:n]),
		size: -1,
	}
	if s.comp == CompressionNone {
		s.size = info.Size()
	}
	if err := s.rewind(); err != nil {
		f.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "source.Open",
		"path":        path,
		"compression": s.comp.String(),
		"file_size":   info.Size(),
	}).Info("Opened source")

	return s, nil
}

// rewind positions the stream at its first byte, restarting the
// decompressor for compressed dumps.
func (s *Source) rewind() error {
	if s.close != nil {
		if err := s.close(); err != nil {
			return err
		}
		s.close = nil
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	s.pos = 0

	switch s.comp {
	case CompressionZstd:
		dec, err := zstd.NewReader(s.file,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			return fmt.Errorf("opening zstd stream: %w", err)
		}
		s.r = dec
		s.close = func() error {
			dec.Close()
			return nil
		}
	case CompressionGzip:
		zr, err := gzip.NewReader(s.file)
		if err != nil {
			return fmt.Errorf("opening gzip stream: %w", err)
		}
		s.r = zr
		s.close = zr.Close
	default:
		s.r = s.file
	}
	return nil
}

// Read reads decompressed bytes at the current position.
func (s *Source) Read(p []byte) (int, error) {
	if s.file == nil {
		return 0, ErrClosed
	}
	n, err := s.r.Read(p)
	s.pos += int64(n)
	return n, err
}

// SeekTo moves to the absolute decompressed offset. Seeking past the end is
// not an error; the next Read reports io.EOF.
func (s *Source) SeekTo(offset int64) error {
	if s.file == nil {
		return ErrClosed
	}
	if offset < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeOffset, offset)
	}

	if s.comp == CompressionNone {
		if _, err := s.file.Seek(offset, io.SeekStart); err != nil {
			return err
		}
		s.pos = offset
		return nil
	}

	if offset < s.pos {
		logrus.WithFields(logrus.Fields{
			"function": "Source.SeekTo",
			"path":     s.path,
			"from":     s.pos,
			"to":       offset,
		}).Debug("Reopening compressed stream for backward seek")

		if err := s.rewind(); err != nil {
			return err
		}
	}

	n, err := io.CopyN(io.Discard, s.r, offset-s.pos)
	s.pos += n
	if err != nil && err != io.EOF {
		return fmt.Errorf("skipping to offset %d: %w", offset, err)
	}
	return nil
}

// Offset returns the current decompressed position.
func (s *Source) Offset() int64 {
	return s.pos
}

// Size returns the decompressed length, or -1 when it is not known without
// reading the whole stream.
func (s *Source) Size() int64 {
	return s.size
}

// Compression returns the detected container.
func (s *Source) Compression() Compression {
	return s.comp
}

// Path returns the path the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// Close releases the decompressor and the file.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	var err error
	if s.close != nil {
		err = s.close()
		s.close = nil
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	s.file = nil
	s.r = nil
	return err
}
