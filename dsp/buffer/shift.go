package buffer

import "github.com/cwbudde/algo-sigkit/dsp/core"

// CircularShift rotates the contents of buf to the right by numPositions;
// negative values rotate to the left. Shifts larger than the buffer wrap
// around, so for a length of 6 a shift of 8 moves by 2.
//
// Only min(|numPositions| mod len, len) elements of scratch are used; the
// remainder is moved within buf.
func CircularShift[T core.Scalar](buf []T, numPositions int) {
	length := len(buf)
	if length == 0 || numPositions == 0 {
		return
	}

	na := numPositions % length
	if na < 0 {
		na = -na
	}
	if na == 0 {
		return
	}

	tmp := GetScratch[T](na)
	defer PutScratch(tmp)
	saved := tmp.Samples()

	if numPositions < 0 {
		copy(saved, buf[:na])
		copy(buf, buf[na:])
		copy(buf[length-na:], saved)
		return
	}

	copy(saved, buf[length-na:])
	copy(buf[na:], buf[:length-na])
	copy(buf, saved)
}
