// Package frame adapts go-audio PCM buffers to the planar slices the
// numeric packages operate on.
//
// go-audio stores samples frame-major (L R L R ...). Planes reorders the
// data in place so that each channel occupies one contiguous run and
// returns a slice per channel; Restore undoes it. FromInt and ToInt move
// between integer PCM and full-scale float samples.
package frame

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-sigkit/dsp/buffer"
	"github.com/go-audio/audio"
)

// DefaultBitDepth is assumed for integer buffers that do not record their
// source bit depth.
const DefaultBitDepth = 16

// Errors returned by the adapters.
var (
	ErrNilBuffer    = errors.New("frame: nil buffer")
	ErrNoFormat     = errors.New("frame: buffer has no channel format")
	ErrPartialFrame = errors.New("frame: sample count is not a multiple of the channel count")
)

func layout(buf *audio.FloatBuffer) (frames, channels int, err error) {
	if buf == nil {
		return 0, 0, ErrNilBuffer
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return 0, 0, ErrNoFormat
	}
	channels = buf.Format.NumChannels
	if len(buf.Data)%channels != 0 {
		return 0, 0, ErrPartialFrame
	}
	return len(buf.Data) / channels, channels, nil
}

// Planes reorders buf.Data from interleaved to channel-major in place and
// returns one slice per channel aliasing buf.Data. Until Restore is called
// buf.Data is not valid interleaved PCM.
func Planes(buf *audio.FloatBuffer) ([][]float64, error) {
	frames, channels, err := layout(buf)
	if err != nil {
		return nil, err
	}

	buffer.Deinterleave(buf.Data, frames, channels)

	planes := make([][]float64, channels)
	for ch := range planes {
		start := ch * frames
		planes[ch] = buf.Data[start : start+frames : start+frames]
	}
	return planes, nil
}

// Restore interleaves channel-major data produced by Planes back into
// frame-major order.
func Restore(buf *audio.FloatBuffer) error {
	frames, channels, err := layout(buf)
	if err != nil {
		return err
	}
	buffer.Interleave(buf.Data, frames, channels)
	return nil
}

// unsignedBitDepth is the only PCM depth stored as unsigned samples
// centred on 1<<(depth-1).
const unsignedBitDepth = 8

func pcmOffset(bitDepth int) int {
	if bitDepth == unsignedBitDepth {
		return 1 << (unsignedBitDepth - 1)
	}
	return 0
}

func fullScale(bitDepth int) float64 {
	if bitDepth <= 0 {
		bitDepth = DefaultBitDepth
	}
	return math.Ldexp(1, bitDepth-1)
}

// FromInt converts integer PCM to float samples in [-1, 1) by dividing by
// 2^(bitDepth-1). 8-bit samples are unsigned and are re-centred on zero
// first. A zero SourceBitDepth is read as DefaultBitDepth.
func FromInt(buf *audio.IntBuffer) *audio.FloatBuffer {
	if buf == nil {
		return nil
	}
	scale := 1 / fullScale(buf.SourceBitDepth)
	offset := pcmOffset(buf.SourceBitDepth)
	out := &audio.FloatBuffer{
		Format: buf.Format,
		Data:   make([]float64, len(buf.Data)),
	}
	for i, v := range buf.Data {
		out.Data[i] = float64(v - offset)
	}
	buffer.Scale(out.Data, scale)
	return out
}

// ToInt converts float samples to integer PCM of the given bit depth,
// rounding to nearest and clipping to the representable range. 8-bit
// output is shifted into the unsigned range [0, 255].
func ToInt(buf *audio.FloatBuffer, bitDepth int) *audio.IntBuffer {
	if buf == nil {
		return nil
	}
	if bitDepth <= 0 {
		bitDepth = DefaultBitDepth
	}
	fs := fullScale(bitDepth)

	tmp := buffer.GetScratch[float64](len(buf.Data))
	defer buffer.PutScratch(tmp)
	scaled := tmp.Samples()
	copy(scaled, buf.Data)
	buffer.Scale(scaled, fs)
	buffer.Clip(scaled, -fs, fs-1)

	out := &audio.IntBuffer{
		Format:         buf.Format,
		Data:           make([]int, len(scaled)),
		SourceBitDepth: bitDepth,
	}
	offset := pcmOffset(bitDepth)
	for i, v := range scaled {
		out.Data[i] = int(math.Round(v)) + offset
	}
	return out
}
