// Package wavenc is the thin WAV-encoding facade the decode orchestrator
// calls to write a materialized Waveform back out to disk or to an
// in-memory buffer. Grounded on the teacher's use of gopxl/beep as the
// audio-codec dependency throughout internal/player; beep's wav.Encode is
// the natural encode-side counterpart to the wav.Decode this module's
// decode package already depends on.
package wavenc

import (
	"bytes"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/go-musicfox/wavecore/werrors"
)

// sliceStreamer adapts an interleaved float32 buffer into a beep.Streamer.
// beep's frame type is a fixed [2]float64 pair, so - like the decode
// package's beepSource - this facade is limited to mono and stereo
// buffers; see the package's doc comment on Encode for the consequence.
type sliceStreamer struct {
	samples     []float32
	numChannels int
	pos         int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	totalFrames := len(s.samples) / s.numChannels
	for n = 0; n < len(samples) && s.pos < totalFrames; n++ {
		base := s.pos * s.numChannels
		samples[n][0] = float64(s.samples[base])
		if s.numChannels > 1 {
			samples[n][1] = float64(s.samples[base+1])
		} else {
			samples[n][1] = samples[n][0]
		}
		s.pos++
	}
	return n, n > 0
}

func (s *sliceStreamer) Err() error { return nil }

// Encode renders an interleaved float32 buffer as a WAV byte buffer.
//
// beep.Streamer frames are fixed at two channels, so numChannels must be
// 1 or 2; any other channel count fails with UnknownEncodeError rather
// than silently dropping channels.
func Encode(frameRateHz uint32, numChannels uint16, interleavedSamples []float32) ([]byte, error) {
	if numChannels == 0 || numChannels > 2 {
		return nil, werrors.NewUnknownEncodeError()
	}
	streamer := &sliceStreamer{samples: interleavedSamples, numChannels: int(numChannels)}
	format := beep.Format{SampleRate: beep.SampleRate(frameRateHz), NumChannels: int(numChannels), Precision: 4}

	var buf bytes.Buffer
	if err := wav.Encode(&buf, streamer, format); err != nil {
		return nil, werrors.NewUnknownEncodeError()
	}
	return buf.Bytes(), nil
}

// EncodeFile writes an interleaved float32 buffer to filename as a WAV
// file.
func EncodeFile(filename string, frameRateHz uint32, numChannels uint16, interleavedSamples []float32) error {
	data, err := Encode(frameRateHz, numChannels, interleavedSamples)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return werrors.NewUnknownEncodeError()
	}
	return nil
}
