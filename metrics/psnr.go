package metrics

import (
	"fmt"
	"math"

	"github.com/opd-ai/yuvcore/decoder"
	"github.com/sirupsen/logrus"
)

// peak is the largest 8-bit sample value.
const peak = 255.0

// Score is a luma PSNR result.
type Score struct {
	// Value is the PSNR in dB, +Inf for identical frames.
	Value float64
	// MSE is the mean squared luma difference.
	MSE float64
	// Identical is set when MSE is exactly zero.
	Identical bool
}

func (s Score) String() string {
	if s.Identical {
		return "identical"
	}
	return fmt.Sprintf("%.2f dB", s.Value)
}

// PSNR computes 10*log10(255^2/MSE) over the luma planes of a and b.
func PSNR(a, b *decoder.FrameBuffer) (Score, error) {
	if err := checkPair(a, b); err != nil {
		return Score{}, err
	}

	mse := meanSquaredError(a.Luma(), b.Luma())
	if mse == 0 {
		return Score{Value: math.Inf(1), Identical: true}, nil
	}

	s := Score{
		Value: 10 * math.Log10(peak*peak/mse),
		MSE:   mse,
	}

	logrus.WithFields(logrus.Fields{
		"function": "PSNR",
		"mse":      mse,
		"psnr":     s.Value,
	}).Debug("Computed luma PSNR")

	return s, nil
}

func meanSquaredError(a, b []byte) float64 {
	var sum uint64
	for i := range a {
		d := int64(a[i]) - int64(b[i])
		sum += uint64(d * d)
	}
	return float64(sum) / float64(len(a))
}

func checkPair(a, b *decoder.FrameBuffer) error {
	if a == nil || b == nil || !a.Valid() || !b.Valid() {
		return ErrInvalidFrame
	}
	ga, gb := a.Geometry(), b.Geometry()
	if !ga.Equal(gb) {
		return fmt.Errorf("%w: %s vs %s", ErrGeometryMismatch, ga, gb)
	}
	return nil
}
