package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sigkit/dsp/filter/direct"
	"github.com/cwbudde/algo-sigkit/dsp/frame"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

type container int

const (
	containerWAV container = iota
	containerAIFF
)

var (
	errUnknownContainer = errors.New("unsupported file extension (want .wav, .aif or .aiff)")
	errInvalidFile      = errors.New("not a valid PCM file")
)

const wavFormatPCM = 1

func containerFor(path string) (container, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return containerWAV, nil
	case ".aif", ".aiff":
		return containerAIFF, nil
	}
	return 0, fmt.Errorf("%s: %w", path, errUnknownContainer)
}

type pcmDecoder interface {
	IsValidFile() bool
	FullPCMBuffer() (*audio.IntBuffer, error)
}

type pcmEncoder interface {
	Write(buf *audio.IntBuffer) error
	Close() error
}

// readPCM decodes the whole file. SourceBitDepth of the result is always
// set.
func readPCM(path string) (*audio.IntBuffer, error) {
	kind, err := containerFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		dec      pcmDecoder
		bitDepth func() int
	)
	switch kind {
	case containerWAV:
		d := wav.NewDecoder(f)
		dec, bitDepth = d, func() int { return int(d.BitDepth) }
	case containerAIFF:
		d := aiff.NewDecoder(f)
		dec, bitDepth = d, func() int { return int(d.BitDepth) }
	}

	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, errInvalidFile)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("%s: %w", path, frame.ErrNoFormat)
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = bitDepth()
	}
	return buf, nil
}

func writePCM(path string, buf *audio.IntBuffer) (err error) {
	kind, err := containerFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var enc pcmEncoder
	switch kind {
	case containerWAV:
		enc = wav.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, wavFormatPCM)
	case containerAIFF:
		enc = aiff.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

type fileInfo struct {
	channels   int
	frames     int
	sampleRate int
	bitDepth   int
}

// filterFile applies c forward and backward to every channel of in and
// writes the result to out with the same format.
func filterFile(in, out string, c direct.Coefficients[float64], opts ...direct.Option) (fileInfo, error) {
	src, err := readPCM(in)
	if err != nil {
		return fileInfo{}, err
	}

	fb := frame.FromInt(src)
	planes, err := frame.Planes(fb)
	if err != nil {
		return fileInfo{}, fmt.Errorf("%s: %w", in, err)
	}
	for _, p := range planes {
		direct.BiDirectional(p, p, c, opts...)
	}
	if err := frame.Restore(fb); err != nil {
		return fileInfo{}, err
	}

	dst := frame.ToInt(fb, src.SourceBitDepth)
	if err := writePCM(out, dst); err != nil {
		return fileInfo{}, err
	}

	info := fileInfo{
		channels:   src.Format.NumChannels,
		sampleRate: src.Format.SampleRate,
		bitDepth:   src.SourceBitDepth,
	}
	if len(planes) > 0 {
		info.frames = len(planes[0])
	}
	return info, nil
}
