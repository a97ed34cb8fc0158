// Package metrics compares and summarizes decoded frames.
//
// [PSNR] scores two frames on the luma plane only. Identical frames are not
// an error; the score reports Identical and an infinite value:
//
//	score, err := metrics.PSNR(a, b)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(score) // "identical" or "38.41 dB"
//
// [Difference] builds a frame that visualizes per-pixel luma divergence
// around mid-grey with neutral chroma. [Histogram] and [Fingerprint] are
// per-frame summaries used for reporting and for spotting repeated frames.
package metrics
