package decode

import (
	"bytes"
	"io"

	"github.com/bogem/id3v2/v2"
	"github.com/icza/bitio"
)

// gaplessInfo holds the encoder-delay/padding pair a LAME/Xing header
// reports, in source-rate frames.
type gaplessInfo struct {
	delayFrames   uint64
	paddingFrames uint64
	found         bool
}

// mpegFrameHeaderInfo decodes a 4-byte MPEG-1/2 Layer III frame header into
// its bitrate, sample rate, padding bit, MPEG version and channel mode; the
// version and channel mode are what locate the Xing/LAME tag behind the
// side-information block that immediately follows the header. ok is false
// for a header without a sync word, a non-Layer-III header, or a reserved
// bitrate/sample-rate index.
func mpegFrameHeaderInfo(header uint32) (bitrateKbps int, sampleRateHz int, padding int, mpeg1 bool, stereo bool, ok bool) {
	if header&0xFFE00000 != 0xFFE00000 {
		return 0, 0, 0, false, false, false
	}
	versionBits := (header >> 19) & 0x3
	layerBits := (header >> 17) & 0x3
	if layerBits != 0x1 { // Layer III
		return 0, 0, 0, false, false, false
	}
	bitrateIdx := (header >> 12) & 0xF
	sampleRateIdx := (header >> 10) & 0x3
	paddingBit := (header >> 9) & 0x1
	channelMode := (header >> 6) & 0x3

	mpeg1 = versionBits == 0x3
	stereo = channelMode != 0x3

	bitrateTableV1 := [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	bitrateTableV2 := [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
	sampleRateTableV1 := [4]int{44100, 48000, 32000, 0}
	sampleRateTableV2 := [4]int{22050, 24000, 16000, 0}

	if mpeg1 {
		bitrateKbps = bitrateTableV1[bitrateIdx]
		sampleRateHz = sampleRateTableV1[sampleRateIdx]
	} else {
		bitrateKbps = bitrateTableV2[bitrateIdx]
		sampleRateHz = sampleRateTableV2[sampleRateIdx]
	}
	if bitrateKbps == 0 || sampleRateHz == 0 {
		return 0, 0, 0, false, false, false
	}
	return bitrateKbps, sampleRateHz, int(paddingBit), mpeg1, stereo, true
}

// sideInfoLen is the number of bytes between the frame header and the
// Xing/LAME tag for Layer III frames, which depends only on MPEG version
// and channel mode.
func sideInfoLen(mpeg1, stereo bool) int {
	switch {
	case mpeg1 && stereo:
		return 32
	case mpeg1 && !stereo:
		return 17
	case !mpeg1 && stereo:
		return 17
	default:
		return 9
	}
}

// readGaplessInfo scans the first MPEG frame of an MP3 stream for a
// Xing/Info header and, when present, the trailing LAME extension that
// reports encoder-delay and padding frame counts. It tolerates a leading
// ID3v2 tag (skipped by its declared size) and returns found=false rather
// than an error when no Xing/LAME tag is present - an MP3 with no such tag
// simply has no gapless information to honor.
func readGaplessInfo(r io.ReadSeeker) gaplessInfo {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return gaplessInfo{}
	}
	offset := id3v2TagSize(r)
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return gaplessInfo{}
	}

	head := make([]byte, 4)
	searchLimit := 8192
	for searched := 0; searched < searchLimit; searched++ {
		if _, err := io.ReadFull(r, head[:1]); err != nil {
			return gaplessInfo{}
		}
		if head[0] != 0xFF {
			continue
		}
		if _, err := io.ReadFull(r, head[1:4]); err != nil {
			return gaplessInfo{}
		}
		hdr := uint32(head[0])<<24 | uint32(head[1])<<16 | uint32(head[2])<<8 | uint32(head[3])
		_, _, _, mpeg1, stereo, ok := mpegFrameHeaderInfo(hdr)
		if !ok {
			continue
		}

		tagBuf := make([]byte, sideInfoLen(mpeg1, stereo)+4+4+100+4+9+36)
		n, _ := io.ReadFull(r, tagBuf)
		tagBuf = tagBuf[:n]
		return parseXingLame(tagBuf, sideInfoLen(mpeg1, stereo))
	}
	return gaplessInfo{}
}

// parseXingLame expects buf to start immediately after an MPEG frame
// header, with the Xing/Info 4-byte tag located sideInfo bytes in.
func parseXingLame(buf []byte, sideInfo int) gaplessInfo {
	if len(buf) < sideInfo+8 {
		return gaplessInfo{}
	}
	magic := buf[sideInfo : sideInfo+4]
	if string(magic) != "Xing" && string(magic) != "Info" {
		return gaplessInfo{}
	}
	r := bitio.NewReader(bytes.NewReader(buf[sideInfo+4:]))
	flags, err := r.ReadBits(32)
	if err != nil {
		return gaplessInfo{}
	}
	if flags&0x1 != 0 { // frames field present
		if _, err := r.ReadBits(32); err != nil {
			return gaplessInfo{}
		}
	}
	if flags&0x2 != 0 { // bytes field present
		if _, err := r.ReadBits(32); err != nil {
			return gaplessInfo{}
		}
	}
	if flags&0x4 != 0 { // TOC present
		if _, err := r.ReadBits(8 * 100); err != nil {
			return gaplessInfo{}
		}
	}
	if flags&0x8 != 0 { // quality indicator present
		if _, err := r.ReadBits(32); err != nil {
			return gaplessInfo{}
		}
	}

	// LAME extension: 9-byte encoder id, then a run of fixed-width fields
	// up to the 3-byte encoder-delay/padding pair 21 bytes in.
	if _, err := r.ReadBits(8 * 9); err != nil {
		return gaplessInfo{}
	}
	skipBytes := []uint8{1, 1, 4, 2, 2, 1, 1} // revision/vbr, lowpass, peak, radio-rg, audiophile-rg, flags/ath, bitrate
	for _, nBytes := range skipBytes {
		if _, err := r.ReadBits(uint8(8 * nBytes)); err != nil {
			return gaplessInfo{}
		}
	}
	delay, err := r.ReadBits(12)
	if err != nil {
		return gaplessInfo{}
	}
	padding, err := r.ReadBits(12)
	if err != nil {
		return gaplessInfo{}
	}
	return gaplessInfo{delayFrames: delay, paddingFrames: padding, found: true}
}

// id3v2TagSize returns the number of bytes occupied by a leading ID3v2
// tag, or 0 if the stream does not begin with one. This module only needs
// the tag's length (to skip past it to the first MPEG frame), not its
// individual text frames, so frame parsing is disabled.
func id3v2TagSize(r io.ReadSeeker) int64 {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0
	}
	tag, err := id3v2.ParseReader(r, id3v2.Options{Parse: false})
	if err != nil || tag == nil {
		r.Seek(0, io.SeekStart)
		return 0
	}
	return int64(tag.Size())
}
