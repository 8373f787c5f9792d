package wavecore

import (
	"testing"

	"github.com/go-musicfox/wavecore/source"
	"github.com/go-musicfox/wavecore/werrors"
	"github.com/stretchr/testify/assert"
)

func TestFromFramesOfSilence(t *testing.T) {
	w := FromFramesOfSilence(44100, 2, 44100)
	assert.Equal(t, uint64(44100), w.NumFrames())
	assert.Equal(t, uint16(2), w.NumChannels())
	assert.Equal(t, uint32(44100), w.FrameRateHz())
	assert.Equal(t, w.DurationEstimate().Seconds(), 1.0)
	for _, v := range w.ToInterleavedSamples() {
		assert.Equal(t, float32(0), v)
	}
}

func TestFromMillisecondsOfSilence(t *testing.T) {
	w := FromMillisecondsOfSilence(44100, 2, 1000)
	assert.Equal(t, uint64(44100), w.NumFrames())
}

func TestNewDerivesNumFrames(t *testing.T) {
	w := New(44100, 3, make([]float32, 15))
	assert.Equal(t, uint64(5), w.NumFrames())
}

func TestGetSampleBoundsChecked(t *testing.T) {
	w := New(44100, 2, []float32{1, 2, 3, 4})
	v, ok := w.GetSample(0, 1)
	assert.True(t, ok)
	assert.Equal(t, float32(2), v)
	_, ok = w.GetSample(2, 0)
	assert.False(t, ok)
	_, ok = w.GetSample(0, 5)
	assert.False(t, ok)
}

func TestWaveformSourceRoundTrips(t *testing.T) {
	w := New(44100, 1, []float32{1, 2, 3})
	got := source.Collect(w.Source())
	assert.Equal(t, []float32{1, 2, 3}, got)
}

// sliceSource is a minimal source.Source test double over a fixed buffer,
// used to exercise the decode orchestrator (fromSource) without a real
// codec decoder.
type sliceSource struct {
	samples     []float32
	frameRateHz uint32
	numChannels uint16
	cursor      int
}

func (s *sliceSource) FrameRateHz() uint32 { return s.frameRateHz }
func (s *sliceSource) NumChannels() uint16 { return s.numChannels }
func (s *sliceSource) NumFramesEstimate() (uint64, bool) {
	return uint64(len(s.samples)-s.cursor) / uint64(s.numChannels), true
}
func (s *sliceSource) SizeHint() (uint64, uint64, bool) {
	n := uint64(len(s.samples) - s.cursor)
	return n, n, true
}
func (s *sliceSource) Next() (float32, bool) {
	if s.cursor >= len(s.samples) {
		return 0, false
	}
	v := s.samples[s.cursor]
	s.cursor++
	return v, true
}

func newSliceSource(frameRateHz uint32, numChannels uint16, samples []float32) *sliceSource {
	return &sliceSource{samples: samples, frameRateHz: frameRateHz, numChannels: numChannels}
}

func TestFromSourceDefaultArgsPassesThrough(t *testing.T) {
	src := newSliceSource(44100, 2, []float32{1, 2, 3, 4})
	w, err := fromSource(WaveformArgs{}, src, 44100, 2)
	assert.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, w.ToInterleavedSamples())
	assert.Equal(t, uint16(2), w.NumChannels())
}

func TestFromSourceRejectsStartAfterEnd(t *testing.T) {
	src := newSliceSource(44100, 2, []float32{1, 2})
	_, err := fromSource(WaveformArgs{StartTimeMilliseconds: 2000, EndTimeMilliseconds: 1000}, src, 44100, 2)
	assert.Error(t, err)
	werr, ok := err.(*werrors.Error)
	assert.True(t, ok)
	assert.Equal(t, werrors.WrongTimeOffset, werr.Kind)
}

func TestFromSourceRejectsBothPadModes(t *testing.T) {
	src := newSliceSource(44100, 1, []float32{1})
	_, err := fromSource(WaveformArgs{EndTimeMilliseconds: 1000, ZeroPadEnding: true, RepeatPadEnding: true}, src, 44100, 1)
	assert.Error(t, err)
}

func TestFromSourceRejectsZeroPadWithoutEnd(t *testing.T) {
	src := newSliceSource(44100, 1, []float32{1})
	_, err := fromSource(WaveformArgs{ZeroPadEnding: true}, src, 44100, 1)
	assert.Error(t, err)
}

func TestFromSourceRejectsMonoChannelAndConvertToMono(t *testing.T) {
	src := newSliceSource(44100, 2, []float32{1, 2})
	_, err := fromSource(WaveformArgs{NumChannels: 1, ConvertToMono: true}, src, 44100, 2)
	assert.Error(t, err)
}

func TestFromSourceRejectsTooManyChannels(t *testing.T) {
	src := newSliceSource(44100, 2, []float32{1, 2})
	_, err := fromSource(WaveformArgs{NumChannels: 5}, src, 44100, 2)
	assert.Error(t, err)
}

func TestFromSourceZeroPadsToRequestedLength(t *testing.T) {
	// source rate 1000hz, so 1000ms = 1000 frames; request 0..2000ms =>
	// take 2000 frames but only 1 frame is available.
	src := newSliceSource(1000, 1, []float32{9})
	args := WaveformArgs{EndTimeMilliseconds: 2000, ZeroPadEnding: true}
	w, err := fromSource(args, src, 1000, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2000), w.NumFrames())
	assert.Equal(t, float32(9), w.ToInterleavedSamples()[0])
	assert.Equal(t, float32(0), w.ToInterleavedSamples()[1])
}

func TestFromSourceRepeatPadsTilingFromStart(t *testing.T) {
	src := newSliceSource(1000, 1, []float32{1, 2, 3})
	args := WaveformArgs{EndTimeMilliseconds: 7, RepeatPadEnding: true}
	w, err := fromSource(args, src, 1000, 1)
	assert.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 1, 2, 3, 1}, w.ToInterleavedSamples())
}

func TestFromSourceConvertToMonoReducesChannels(t *testing.T) {
	src := newSliceSource(44100, 2, []float32{0, 10, 10, 20})
	w, err := fromSource(WaveformArgs{ConvertToMono: true}, src, 44100, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint16(1), w.NumChannels())
	assert.Equal(t, []float32{5, 15}, w.ToInterleavedSamples())
}

func TestFromSourceResamplesWhenRateDiffers(t *testing.T) {
	src := newSliceSource(1000, 1, make([]float32, 1000))
	w, err := fromSource(WaveformArgs{FrameRateHz: 2000}, src, 1000, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint32(2000), w.FrameRateHz())
	assert.Equal(t, uint64(2000), w.NumFrames())
}

func TestExtensionOf(t *testing.T) {
	assert.Equal(t, "mp3", extensionOf("/a/b/song.mp3"))
	assert.Equal(t, "", extensionOf("/a/b/song"))
	assert.Equal(t, "flac", extensionOf("song.flac"))
}
