// Package wavecore is an audio-decoding and waveform-processing library.
// It ingests compressed audio (MP3, FLAC, WAV, Ogg/Vorbis) from files,
// byte buffers, or arbitrary readable streams, and produces a fully
// materialized interleaved float32 waveform, optionally trimmed, channel-
// selected, downmixed, padded, and resampled along the way.
//
// Grounded on the teacher's internal/player package (which wraps the same
// gopxl/beep decode stack this package's decode subpackage builds on) and
// generalized into a standalone decode-and-transform library rather than a
// playback engine.
package wavecore

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/go-musicfox/wavecore/decode"
	"github.com/go-musicfox/wavecore/internal/logx"
	"github.com/go-musicfox/wavecore/resample"
	"github.com/go-musicfox/wavecore/source"
	"github.com/go-musicfox/wavecore/wavenc"
	"github.com/go-musicfox/wavecore/werrors"
)

// Waveform is a fully materialized, owned interleaved float32 buffer with
// a frame rate and channel count. It is immutable after construction
// except for whole-buffer replacement via Resample/ResampleByMode.
type Waveform struct {
	interleavedSamples []float32
	frameRateHz        uint32
	numChannels        uint16
	numFrames          uint64
}

// New constructs a Waveform directly from an interleaved sample buffer.
// numFrames is derived as len(interleavedSamples) / numChannels.
func New(frameRateHz uint32, numChannels uint16, interleavedSamples []float32) *Waveform {
	return &Waveform{
		interleavedSamples: interleavedSamples,
		frameRateHz:        frameRateHz,
		numChannels:        numChannels,
		numFrames:          uint64(len(interleavedSamples)) / uint64(numChannels),
	}
}

// FromInterleavedSamples is an alias for New matching the decode
// orchestrator's naming for the non-decoding construction path.
func FromInterleavedSamples(frameRateHz uint32, numChannels uint16, interleavedSamples []float32) *Waveform {
	return New(frameRateHz, numChannels, interleavedSamples)
}

// FromFramesOfSilence builds a silent Waveform of the given frame count.
func FromFramesOfSilence(frameRateHz uint32, numChannels uint16, numFrames uint64) *Waveform {
	return &Waveform{
		interleavedSamples: make([]float32, uint64(numChannels)*numFrames),
		frameRateHz:        frameRateHz,
		numChannels:        numChannels,
		numFrames:          numFrames,
	}
}

// FromMillisecondsOfSilence builds a silent Waveform of the given duration.
func FromMillisecondsOfSilence(frameRateHz uint32, numChannels uint16, durationMilliseconds uint64) *Waveform {
	return FromFramesOfSilence(frameRateHz, numChannels, millisecondsToFrames(durationMilliseconds, frameRateHz))
}

// FromFile decodes audio from a filesystem path under args.
func FromFile(filename string, args WaveformArgs) (*Waveform, error) {
	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, werrors.NewFileNotFound(filename)
		}
		return nil, werrors.NewUnknownIOError()
	}
	if info.IsDir() {
		return nil, werrors.NewFilenameIsADirectory(filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, werrors.NewUnknownIOError()
	}
	defer f.Close()

	return fromReadSeekCloser(f, extensionOf(filename), "", args)
}

// FromEncodedBytes decodes audio already held in memory, using optional
// file-extension/MIME hints to assist the probe.
func FromEncodedBytes(data []byte, fileExtension, mimeType string, args WaveformArgs) (*Waveform, error) {
	rsc, err := decode.SeekableFrom(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer rsc.Close()
	return fromReadSeekCloser(rsc, fileExtension, mimeType, args)
}

// FromReader decodes audio from an arbitrary finite stream, read fully
// into memory since every codec backend here requires a seekable source.
func FromReader(r io.Reader, args WaveformArgs) (*Waveform, error) {
	return FromReaderWithHint(r, "", "", args)
}

// FromReaderWithHint is FromReader with explicit probe hints.
func FromReaderWithHint(r io.Reader, fileExtension, mimeType string, args WaveformArgs) (*Waveform, error) {
	rsc, err := decode.SeekableFrom(r)
	if err != nil {
		return nil, err
	}
	defer rsc.Close()
	return fromReadSeekCloser(rsc, fileExtension, mimeType, args)
}

func fromReadSeekCloser(rsc io.ReadSeekCloser, fileExtension, mimeType string, args WaveformArgs) (*Waveform, error) {
	src, frameRateHz, numChannels, err := decode.Open(rsc, decode.Options{
		FileExtension: fileExtension,
		MIMEType:      mimeType,
		Backend:       args.DecodingBackend,
	})
	if err != nil {
		logx.Logger().Debug("decode open failed", logx.Error(err))
		return nil, err
	}
	return fromSource(args, src, frameRateHz, numChannels)
}

// fromSource is the decode orchestrator: it validates args, builds the
// transform chain around src in the fixed order skip -> take -> select ->
// mono, collects the result, pads it, and resamples it.
func fromSource(args WaveformArgs, src source.Source, originalFrameRateHz uint32, originalNumChannels uint16) (*Waveform, error) {
	if args.StartTimeMilliseconds != 0 && args.EndTimeMilliseconds != 0 &&
		args.StartTimeMilliseconds >= args.EndTimeMilliseconds {
		return nil, werrors.NewWrongTimeOffset(args.StartTimeMilliseconds, args.EndTimeMilliseconds)
	}
	if args.ZeroPadEnding && args.RepeatPadEnding {
		return nil, werrors.NewCannotSetZeroPadEndingAndRepeatPadEnding()
	}
	if args.ZeroPadEnding && args.EndTimeMilliseconds == 0 {
		return nil, werrors.NewCannotZeroPadWithoutSpecifiedLength()
	}
	if args.RepeatPadEnding && args.EndTimeMilliseconds == 0 {
		return nil, werrors.NewCannotRepeatPadWithoutSpecifiedLength()
	}
	if args.NumChannels == 1 && args.ConvertToMono {
		return nil, werrors.NewWrongNumChannelsAndMono()
	}
	if uint16(args.NumChannels) > originalNumChannels {
		return nil, werrors.NewWrongNumChannels(uint32(args.NumChannels), uint32(originalNumChannels))
	}

	selectedNumChannels := originalNumChannels
	if args.NumChannels != 0 {
		selectedNumChannels = args.NumChannels
	}
	outputNumChannels := selectedNumChannels
	if args.ConvertToMono {
		outputNumChannels = 1
	}

	startFrameIdx := millisecondsToFrames(args.StartTimeMilliseconds, originalFrameRateHz)
	endFrameIdx := millisecondsToFrames(args.EndTimeMilliseconds, originalFrameRateHz)
	var takeFrames uint64
	if endFrameIdx > startFrameIdx {
		takeFrames = endFrameIdx - startFrameIdx
	}

	if startFrameIdx != 0 {
		src = source.SkipFrames(src, startFrameIdx)
	}
	if takeFrames != 0 {
		src = source.TakeFrames(src, takeFrames)
	}
	if selectedNumChannels != originalNumChannels {
		src = source.SelectFirstChannels(src, selectedNumChannels)
	}
	if args.ConvertToMono {
		src = source.ConvertToMono(src)
	}

	interleavedSamples := source.Collect(src)

	if (args.ZeroPadEnding || args.RepeatPadEnding) && endFrameIdx > startFrameIdx {
		expectedLen := (endFrameIdx - startFrameIdx) * uint64(outputNumChannels)
		actualLen := uint64(len(interleavedSamples))
		if expectedLen > actualLen {
			switch {
			case args.ZeroPadEnding:
				interleavedSamples = append(interleavedSamples, make([]float32, expectedLen-actualLen)...)
			case args.RepeatPadEnding && actualLen > 0:
				padding := expectedLen - actualLen
				for i := uint64(0); i < padding; i++ {
					interleavedSamples = append(interleavedSamples, interleavedSamples[i%actualLen])
				}
			}
		}
	}

	outputFrameRateHz := originalFrameRateHz
	if args.FrameRateHz != 0 && args.FrameRateHz != originalFrameRateHz {
		outputFrameRateHz = args.FrameRateHz
		resampled, err := resample.Resample(originalFrameRateHz, outputFrameRateHz, outputNumChannels, interleavedSamples, args.ResampleMode)
		if err != nil {
			return nil, err
		}
		interleavedSamples = resampled
	}

	return New(outputFrameRateHz, outputNumChannels, interleavedSamples), nil
}

func extensionOf(filename string) string {
	for i := len(filename) - 1; i >= 0 && filename[i] != '/' && filename[i] != '\\'; i-- {
		if filename[i] == '.' {
			return filename[i+1:]
		}
	}
	return ""
}

// FrameRateHz returns the waveform's frame rate.
func (w *Waveform) FrameRateHz() uint32 { return w.frameRateHz }

// NumChannels returns the waveform's channel count.
func (w *Waveform) NumChannels() uint16 { return w.numChannels }

// NumFrames returns the total number of decoded frames.
func (w *Waveform) NumFrames() uint64 { return w.numFrames }

// NumFramesEstimate implements source.Signal: for a materialized Waveform
// the estimate is exact.
func (w *Waveform) NumFramesEstimate() (uint64, bool) { return w.numFrames, true }

// NumSamples returns len(ToInterleavedSamples()).
func (w *Waveform) NumSamples() uint64 { return uint64(len(w.interleavedSamples)) }

// ToInterleavedSamples returns the waveform's underlying buffer.
func (w *Waveform) ToInterleavedSamples() []float32 { return w.interleavedSamples }

// DurationEstimate returns the waveform's exact duration.
func (w *Waveform) DurationEstimate() time.Duration {
	return framesToDuration(w.numFrames, w.frameRateHz)
}

// GetSample returns the sample at (frameIdx, channelIdx), or false if out
// of bounds.
func (w *Waveform) GetSample(frameIdx uint64, channelIdx uint16) (float32, bool) {
	if frameIdx >= w.numFrames || channelIdx >= w.numChannels {
		return 0, false
	}
	return w.interleavedSamples[frameIdx*uint64(w.numChannels)+uint64(channelIdx)], true
}

// Source re-emits the waveform as a read-only source.Source over its own
// buffer, for composing with further transform stages.
func (w *Waveform) Source() source.Source {
	return source.NewWaveformSource(w.frameRateHz, w.numChannels, w.interleavedSamples)
}

// Resample resamples the waveform to frameRateHz using the default
// engine, returning a new Waveform.
func (w *Waveform) Resample(frameRateHz uint32) (*Waveform, error) {
	return w.ResampleByMode(frameRateHz, resample.ModeDefault)
}

// ResampleByMode resamples the waveform to frameRateHz using the named
// engine, returning a new Waveform.
func (w *Waveform) ResampleByMode(frameRateHz uint32, mode resample.Mode) (*Waveform, error) {
	samples, err := resample.Resample(w.frameRateHz, frameRateHz, w.numChannels, w.interleavedSamples, mode)
	if err != nil {
		return nil, err
	}
	return New(frameRateHz, w.numChannels, samples), nil
}

// ToWAVBuffer encodes the waveform as a 32-bit float WAV byte buffer.
func (w *Waveform) ToWAVBuffer() ([]byte, error) {
	return wavenc.Encode(w.frameRateHz, w.numChannels, w.interleavedSamples)
}

// ToWAVFile writes the waveform to filename as a WAV file.
func (w *Waveform) ToWAVFile(filename string) error {
	return wavenc.EncodeFile(filename, w.frameRateHz, w.numChannels, w.interleavedSamples)
}
