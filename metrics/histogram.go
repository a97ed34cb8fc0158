package metrics

import "github.com/opd-ai/yuvcore/decoder"

// Bins counts occurrences of each 8-bit sample value.
type Bins [256]int

// Total returns the number of counted samples.
func (b *Bins) Total() int {
	n := 0
	for _, c := range b {
		n += c
	}
	return n
}

// Mean returns the average sample value, or 0 for an empty histogram.
func (b *Bins) Mean() float64 {
	n, sum := 0, 0
	for v, c := range b {
		n += c
		sum += v * c
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Histograms holds one histogram per canonical plane.
type Histograms struct {
	Luma Bins
	Cb   Bins
	Cr   Bins
}

// Histogram counts the sample values of each canonical plane of fb.
func Histogram(fb *decoder.FrameBuffer) (Histograms, error) {
	var h Histograms
	if fb == nil || !fb.Valid() {
		return h, ErrInvalidFrame
	}
	count(&h.Luma, fb.Luma())
	count(&h.Cb, fb.Cb())
	count(&h.Cr, fb.Cr())
	return h, nil
}

func count(b *Bins, p []byte) {
	for _, v := range p {
		b[v]++
	}
}
