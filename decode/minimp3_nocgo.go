//go:build !cgo

package decode

import (
	"io"

	"github.com/go-musicfox/wavecore/werrors"

	"github.com/gopxl/beep"
)

// decodeMiniMP3 stands in for the cgo minimp3 backend on builds where cgo
// is unavailable. MP3 input requested through BackendFFmpegFamily in such a
// build reports FeatureNotCompiled; other codecs never reach this function.
func decodeMiniMP3(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return nil, beep.Format{}, werrors.NewFeatureNotCompiled("ffmpeg-family")
}
