package buffer

import "github.com/cwbudde/algo-sigkit/dsp/core"

func frameCount[T any](op string, buf []T, numFrames, numChannels int) int {
	if numFrames < 0 || numChannels < 0 {
		panic("buffer: " + op + ": negative frame or channel count")
	}
	n := numFrames * numChannels
	if len(buf) < n {
		panic("buffer: " + op + ": buffer shorter than numFrames*numChannels")
	}
	return n
}

// Deinterleave converts the first numFrames*numChannels elements of buf
// from frame-major layout (all channels of frame 0, then frame 1, ...) to
// channel-major layout (all frames of channel 0, then channel 1, ...).
func Deinterleave[T core.Scalar](buf []T, numFrames, numChannels int) {
	n := frameCount("Deinterleave", buf, numFrames, numChannels)
	if n == 0 {
		return
	}

	tmp := GetScratch[T](n)
	defer PutScratch(tmp)
	src := tmp.Samples()
	copy(src, buf[:n])

	for ch := 0; ch < numChannels; ch++ {
		plane := buf[ch*numFrames : (ch+1)*numFrames]
		for i := range plane {
			plane[i] = src[i*numChannels+ch]
		}
	}
}

// Interleave is the inverse of Deinterleave: it converts channel-major
// layout back to frame-major layout in place.
func Interleave[T core.Scalar](buf []T, numFrames, numChannels int) {
	n := frameCount("Interleave", buf, numFrames, numChannels)
	if n == 0 {
		return
	}

	tmp := GetScratch[T](n)
	defer PutScratch(tmp)
	src := tmp.Samples()
	copy(src, buf[:n])

	for ch := 0; ch < numChannels; ch++ {
		plane := src[ch*numFrames : (ch+1)*numFrames]
		for i, v := range plane {
			buf[i*numChannels+ch] = v
		}
	}
}
