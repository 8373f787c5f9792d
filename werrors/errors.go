// Package werrors defines the closed error taxonomy shared by every
// wavecore package. It intentionally does not define an open/extensible
// error type: every error a caller can receive from this module is one of
// the Kinds enumerated below, the same closed-variant-set design the
// decoding core it's modeled after uses for its own error enum.
package werrors

import "fmt"

// Kind identifies one member of wavecore's closed error taxonomy.
type Kind int

const (
	// Configuration errors, detected before any decoding work begins.
	FeatureNotCompiled Kind = iota
	WrongTimeOffset
	WrongNumChannels
	WrongNumChannelsAndMono
	CannotZeroPadWithoutSpecifiedLength
	CannotRepeatPadWithoutSpecifiedLength
	CannotSetZeroPadEndingAndRepeatPadEnding

	// Decoding errors.
	UnknownDecodingBackend
	NoSuitableAudioStreams
	UnknownInputEncoding
	UnknownDecodeError
	UnknownDecodeErrorWithMessage

	// Encoding errors.
	UnknownEncodeError

	// Resampling errors.
	ResamplingError
	ResamplingErrorWithMessage
	WrongFrameRate
	WrongFrameRateRatio

	// Source composition errors.
	CannotAppendSourcesWithDifferentNumChannels
	CannotAppendSourcesWithDifferentFrameRates

	// I/O errors.
	FilenameIsADirectory
	FileNotFound
	UnknownIOError
)

// Error is the single error type returned by every wavecore operation.
// Its Kind field is a closed enum; callers should switch on it (after
// errors.As into an *Error where the error may be wrapped) rather than
// matching on Error() strings. Error has no Is method, and each constructor
// below returns a new pointer, so errors.Is against a constructor's result
// does not match.
type Error struct {
	Kind Kind

	// Payload fields. Only the ones relevant to Kind are populated; the
	// rest are left at their zero value.
	Name    string
	U64A    uint64
	U64B    uint64
	U32A    uint32
	U32B    uint32
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case FeatureNotCompiled:
		return fmt.Sprintf("feature not compiled into this build: %s", e.Name)
	case WrongTimeOffset:
		return fmt.Sprintf("wrong time offset: start=%d end=%d", e.U64A, e.U64B)
	case WrongNumChannels:
		return fmt.Sprintf("wrong number of channels: requested=%d actual=%d", e.U32A, e.U32B)
	case WrongNumChannelsAndMono:
		return "cannot set num_channels=1 and convert_to_mono=true at the same time"
	case CannotZeroPadWithoutSpecifiedLength:
		return "cannot zero-pad the ending without specifying end_time_milliseconds"
	case CannotRepeatPadWithoutSpecifiedLength:
		return "cannot repeat-pad the ending without specifying end_time_milliseconds"
	case CannotSetZeroPadEndingAndRepeatPadEnding:
		return "cannot set zero_pad_ending and repeat_pad_ending at the same time"
	case UnknownDecodingBackend:
		return fmt.Sprintf("unknown decoding backend: %d", e.U32A)
	case NoSuitableAudioStreams:
		return fmt.Sprintf("no suitable audio streams found (tracks found: %d)", e.U32A)
	case UnknownInputEncoding:
		return "could not detect the encoding of the given input"
	case UnknownDecodeError:
		return "an unknown error occurred while decoding audio"
	case UnknownDecodeErrorWithMessage:
		return fmt.Sprintf("decode error: %s", e.Message)
	case UnknownEncodeError:
		return "an unknown error occurred while encoding audio"
	case ResamplingError:
		return "an unknown error occurred while resampling audio"
	case ResamplingErrorWithMessage:
		return fmt.Sprintf("resampling error: %s", e.Message)
	case WrongFrameRate:
		return fmt.Sprintf("cannot resample from %d hz to %d hz", e.U32A, e.U32B)
	case WrongFrameRateRatio:
		return fmt.Sprintf("frame rate ratio between %d hz and %d hz exceeds the 256x limit", e.U32A, e.U32B)
	case CannotAppendSourcesWithDifferentNumChannels:
		return fmt.Sprintf("cannot append sources with different channel counts: %d != %d", e.U32A, e.U32B)
	case CannotAppendSourcesWithDifferentFrameRates:
		return fmt.Sprintf("cannot append sources with different frame rates: %d != %d", e.U32A, e.U32B)
	case FilenameIsADirectory:
		return fmt.Sprintf("expected a file but got a directory: %s", e.Name)
	case FileNotFound:
		return fmt.Sprintf("file not found: %s", e.Name)
	case UnknownIOError:
		return "an unknown I/O error occurred"
	default:
		return "unknown wavecore error"
	}
}

func NewFeatureNotCompiled(name string) *Error { return &Error{Kind: FeatureNotCompiled, Name: name} }

func NewWrongTimeOffset(start, end uint64) *Error {
	return &Error{Kind: WrongTimeOffset, U64A: start, U64B: end}
}

func NewWrongNumChannels(requested, actual uint32) *Error {
	return &Error{Kind: WrongNumChannels, U32A: requested, U32B: actual}
}

func NewWrongNumChannelsAndMono() *Error { return &Error{Kind: WrongNumChannelsAndMono} }

func NewCannotZeroPadWithoutSpecifiedLength() *Error {
	return &Error{Kind: CannotZeroPadWithoutSpecifiedLength}
}

func NewCannotRepeatPadWithoutSpecifiedLength() *Error {
	return &Error{Kind: CannotRepeatPadWithoutSpecifiedLength}
}

func NewCannotSetZeroPadEndingAndRepeatPadEnding() *Error {
	return &Error{Kind: CannotSetZeroPadEndingAndRepeatPadEnding}
}

func NewUnknownDecodingBackend(tag uint32) *Error {
	return &Error{Kind: UnknownDecodingBackend, U32A: tag}
}

func NewNoSuitableAudioStreams(tracksFound uint32) *Error {
	return &Error{Kind: NoSuitableAudioStreams, U32A: tracksFound}
}

func NewUnknownInputEncoding() *Error { return &Error{Kind: UnknownInputEncoding} }

func NewUnknownDecodeError() *Error { return &Error{Kind: UnknownDecodeError} }

// NewUnknownDecodeErrorWithMessage promotes a dynamic decode-error message
// into the closed taxonomy. Go strings are already process-static constant
// data once allocated, so - unlike the Rust original, which interns the
// message into a `&'static str` arena - no separate promotion step is
// needed; the message is simply captured by value.
func NewUnknownDecodeErrorWithMessage(msg string) *Error {
	return &Error{Kind: UnknownDecodeErrorWithMessage, Message: msg}
}

func NewUnknownEncodeError() *Error { return &Error{Kind: UnknownEncodeError} }

func NewResamplingError() *Error { return &Error{Kind: ResamplingError} }

func NewResamplingErrorWithMessage(msg string) *Error {
	return &Error{Kind: ResamplingErrorWithMessage, Message: msg}
}

func NewWrongFrameRate(in, out uint32) *Error {
	return &Error{Kind: WrongFrameRate, U32A: in, U32B: out}
}

func NewWrongFrameRateRatio(in, out uint32) *Error {
	return &Error{Kind: WrongFrameRateRatio, U32A: in, U32B: out}
}

func NewCannotAppendSourcesWithDifferentNumChannels(a, b uint32) *Error {
	return &Error{Kind: CannotAppendSourcesWithDifferentNumChannels, U32A: a, U32B: b}
}

func NewCannotAppendSourcesWithDifferentFrameRates(a, b uint32) *Error {
	return &Error{Kind: CannotAppendSourcesWithDifferentFrameRates, U32A: a, U32B: b}
}

func NewFilenameIsADirectory(path string) *Error {
	return &Error{Kind: FilenameIsADirectory, Name: path}
}

func NewFileNotFound(path string) *Error { return &Error{Kind: FileNotFound, Name: path} }

func NewUnknownIOError() *Error { return &Error{Kind: UnknownIOError} }
