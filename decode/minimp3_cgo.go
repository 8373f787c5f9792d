//go:build cgo

package decode

import (
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/minimp3"
	minimp3pkg "github.com/tosone/minimp3"
)

// decodeMiniMP3 is the ffmpeg-family MP3 backend, built on the cgo
// minimp3 binding. Grounded directly on the teacher's
// internal/player/beep_decoder.go BeepMiniMp3Decoder branch.
func decodeMiniMP3(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	minimp3pkg.BufferSize = 1024 * 50
	return minimp3.Decode(r)
}
