package wavecore

import (
	"github.com/go-musicfox/wavecore/decode"
	"github.com/go-musicfox/wavecore/resample"
)

// WaveformArgs configures how FromFile, FromReader, and the other decode
// entry points turn encoded input into a Waveform. The zero value decodes
// audio as-is: original rate, all channels, no trimming, no padding.
type WaveformArgs struct {
	// StartTimeMilliseconds discards any audio before this offset. 0
	// decodes from the beginning.
	StartTimeMilliseconds uint64
	// EndTimeMilliseconds discards any audio after this offset. 0 decodes
	// through to the end.
	EndTimeMilliseconds uint64
	// FrameRateHz resamples the decoded audio to this rate. 0 preserves
	// the source's original rate.
	FrameRateHz uint32
	// NumChannels selects the first N channels. 0 keeps all of them.
	NumChannels uint16
	// ConvertToMono averages the selected channels into one. Mutually
	// exclusive with NumChannels == 1.
	ConvertToMono bool
	// ZeroPadEnding pads the output with silence so its duration is
	// exactly EndTimeMilliseconds - StartTimeMilliseconds. Requires
	// EndTimeMilliseconds to be set; mutually exclusive with
	// RepeatPadEnding.
	ZeroPadEnding bool
	// RepeatPadEnding tiles the decoded audio from its start to fill the
	// requested duration. Requires EndTimeMilliseconds to be set;
	// mutually exclusive with ZeroPadEnding.
	RepeatPadEnding bool
	// ResampleMode selects the resampling engine used when FrameRateHz
	// differs from the source rate.
	ResampleMode resample.Mode
	// DecodingBackend selects the decoder family.
	DecodingBackend decode.Backend
}

// WithStartTimeMilliseconds returns a copy of args with StartTimeMilliseconds set.
func (args WaveformArgs) WithStartTimeMilliseconds(v uint64) WaveformArgs {
	args.StartTimeMilliseconds = v
	return args
}

// WithEndTimeMilliseconds returns a copy of args with EndTimeMilliseconds set.
func (args WaveformArgs) WithEndTimeMilliseconds(v uint64) WaveformArgs {
	args.EndTimeMilliseconds = v
	return args
}

// WithFrameRateHz returns a copy of args with FrameRateHz set.
func (args WaveformArgs) WithFrameRateHz(v uint32) WaveformArgs {
	args.FrameRateHz = v
	return args
}

// WithNumChannels returns a copy of args with NumChannels set.
func (args WaveformArgs) WithNumChannels(v uint16) WaveformArgs {
	args.NumChannels = v
	return args
}

// WithConvertToMono returns a copy of args with ConvertToMono set.
func (args WaveformArgs) WithConvertToMono(v bool) WaveformArgs {
	args.ConvertToMono = v
	return args
}

// WithZeroPadEnding returns a copy of args with ZeroPadEnding set.
func (args WaveformArgs) WithZeroPadEnding(v bool) WaveformArgs {
	args.ZeroPadEnding = v
	return args
}

// WithRepeatPadEnding returns a copy of args with RepeatPadEnding set.
func (args WaveformArgs) WithRepeatPadEnding(v bool) WaveformArgs {
	args.RepeatPadEnding = v
	return args
}

// WithResampleMode returns a copy of args with ResampleMode set.
func (args WaveformArgs) WithResampleMode(v resample.Mode) WaveformArgs {
	args.ResampleMode = v
	return args
}

// WithDecodingBackend returns a copy of args with DecodingBackend set.
func (args WaveformArgs) WithDecodingBackend(v decode.Backend) WaveformArgs {
	args.DecodingBackend = v
	return args
}
