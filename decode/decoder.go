package decode

import (
	"bufio"
	"bytes"
	"io"

	"github.com/go-musicfox/wavecore/source"
	"github.com/go-musicfox/wavecore/werrors"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	pkgerrors "github.com/pkg/errors"
)

// Options carries the probe hints and backend selection Open needs.
type Options struct {
	FileExtension string
	MIMEType      string
	Backend       Backend
}

type nopSeekCloser struct {
	io.ReadSeeker
}

func (nopSeekCloser) Close() error { return nil }

// SeekableFrom materializes an arbitrary finite io.Reader into an
// io.ReadSeekCloser, reading it fully into memory. Stream input (§6) has
// no seek guarantee, but every codec backend here needs one (to rewind
// after probing and, for FLAC/WAV, to honor their own seek tables), so a
// generic stream is buffered once at the entry boundary.
func SeekableFrom(r io.Reader) (io.ReadSeekCloser, error) {
	if rsc, ok := r.(io.ReadSeekCloser); ok {
		return rsc, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, werrors.NewUnknownIOError()
	}
	return nopSeekCloser{bytes.NewReader(data)}, nil
}

// Open probes r, builds the codec-appropriate decoder, and returns a
// source.Source over its interleaved samples plus the source's native
// frame rate and channel count. r must already be seekable; callers
// holding a plain stream should pass it through SeekableFrom first.
func Open(r io.ReadSeekCloser, opts Options) (source.Source, uint32, uint16, error) {
	backend, err := resolveBackend(opts.Backend)
	if err != nil {
		return nil, 0, 0, err
	}

	br := bufio.NewReader(r)
	c, sniffErr := resolveCodec(br, opts.FileExtension, opts.MIMEType)
	if sniffErr != nil {
		return nil, 0, 0, werrors.NewUnknownDecodeErrorWithMessage(sniffErr.Error())
	}
	if c == codecUnknown {
		return nil, 0, 0, werrors.NewUnknownInputEncoding()
	}

	var gapless gaplessInfo
	if c == codecMP3 {
		gapless = readGaplessInfo(r)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, 0, 0, werrors.NewUnknownIOError()
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		decErr   error
	)
	switch {
	case c == codecMP3 && backend == BackendFFmpegFamily:
		streamer, format, decErr = decodeMiniMP3(r)
	case c == codecMP3:
		streamer, format, decErr = mp3.Decode(r)
	case c == codecFLAC:
		streamer, format, decErr = flac.Decode(r)
	case c == codecWAV:
		streamer, format, decErr = wav.Decode(r)
	case c == codecVorbis:
		foundVorbis, tracksFound, probeErr := probeOggVorbisTrack(r)
		if probeErr != nil {
			return nil, 0, 0, werrors.NewUnknownIOError()
		}
		if !foundVorbis {
			return nil, 0, 0, werrors.NewNoSuitableAudioStreams(uint32(tracksFound))
		}
		streamer, format, decErr = vorbis.Decode(r)
	default:
		return nil, 0, 0, werrors.NewUnknownInputEncoding()
	}
	if decErr != nil {
		return nil, 0, 0, werrors.NewUnknownDecodeErrorWithMessage(pkgerrors.Cause(decErr).Error())
	}
	if format.SampleRate == 0 || format.NumChannels == 0 {
		return nil, 0, 0, werrors.NewUnknownInputEncoding()
	}

	bs := newBeepSource(streamer, format)
	var src source.Source = bs

	// Gapless decoding: trim the encoder's priming delay and trailing
	// padding frames the Xing/LAME tag reports, per §4.4.
	if gapless.found && (gapless.delayFrames > 0 || gapless.paddingFrames > 0) {
		src = source.SkipFrames(src, gapless.delayFrames)
		if n, ok := bs.NumFramesEstimate(); ok {
			total := n - gapless.delayFrames - gapless.paddingFrames
			src = source.TakeFrames(src, total)
		}
	}

	return src, uint32(format.SampleRate), uint16(format.NumChannels), nil
}

// beepSource adapts a beep.StreamSeekCloser (which produces fixed-width
// [2]float64 frames) into the single-sample-at-a-time source.Source this
// module's transform pipeline expects.
type beepSource struct {
	streamer    beep.StreamSeekCloser
	frameRateHz uint32
	numChannels uint16

	buf     [512][2]float64
	bufLen  int
	bufPos  int
	channel int
	done    bool
}

func newBeepSource(streamer beep.StreamSeekCloser, format beep.Format) *beepSource {
	return &beepSource{
		streamer:    streamer,
		frameRateHz: uint32(format.SampleRate),
		numChannels: uint16(format.NumChannels),
	}
}

func (s *beepSource) FrameRateHz() uint32 { return s.frameRateHz }
func (s *beepSource) NumChannels() uint16 { return s.numChannels }

func (s *beepSource) NumFramesEstimate() (uint64, bool) {
	n := s.streamer.Len()
	if n <= 0 {
		return 0, false
	}
	return uint64(n), true
}

func (s *beepSource) SizeHint() (uint64, uint64, bool) {
	n, ok := s.NumFramesEstimate()
	if !ok {
		return 0, 0, false
	}
	total := n * uint64(s.numChannels)
	return total, total, true
}

// Err surfaces the codec's latched fatal error, if any, after Next has
// returned false. Any failure other than plain exhaustion is promoted to
// UnknownDecodeError, per §4.4's error policy.
func (s *beepSource) Err() error {
	if err := s.streamer.Err(); err != nil {
		return werrors.NewUnknownDecodeError()
	}
	return nil
}

func (s *beepSource) Next() (float32, bool) {
	for s.bufPos >= s.bufLen {
		if s.done {
			return 0, false
		}
		n, ok := s.streamer.Stream(s.buf[:])
		s.bufLen = n
		s.bufPos = 0
		s.channel = 0
		if !ok {
			s.done = true
			if n == 0 {
				return 0, false
			}
		}
	}
	frame := s.buf[s.bufPos]
	var v float64
	if s.channel == 0 {
		v = frame[0]
	} else {
		v = frame[1]
	}
	s.channel++
	if s.channel >= int(s.numChannels) {
		s.channel = 0
		s.bufPos++
	}
	return float32(v), true
}
