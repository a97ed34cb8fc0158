package metrics

import (
	"encoding/hex"

	"github.com/opd-ai/yuvcore/decoder"
	"golang.org/x/crypto/blake2b"
)

// Digest is a BLAKE2b-256 hash of the canonical planes of a frame.
type Digest [blake2b.Size256]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Fingerprint hashes the luma, Cb and Cr planes of fb in that order. Two
// frames with equal fingerprints decoded to the same picture.
func Fingerprint(fb *decoder.FrameBuffer) (Digest, error) {
	var d Digest
	if fb == nil || !fb.Valid() {
		return d, ErrInvalidFrame
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return d, err
	}
	h.Write(fb.Luma())
	h.Write(fb.Cb())
	h.Write(fb.Cr())
	copy(d[:], h.Sum(nil))
	return d, nil
}
