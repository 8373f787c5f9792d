package decode

import "io"

// vorbisIdentHeader is the 7-byte signature opening a Vorbis identification
// header packet: packet type 1 followed by the ASCII string "vorbis".
var vorbisIdentHeader = [7]byte{0x01, 'v', 'o', 'r', 'b', 'i', 's'}

// probeOggVorbisTrack scans the leading beginning-of-stream pages of an Ogg
// container for a logical bitstream carrying a Vorbis identification
// header - the step corresponding to spec §4.4's "selects the default
// audio track" for a multi-track container. Ogg is the only container this
// package decodes that can multiplex more than one logical bitstream
// (WAV/FLAC/MP3 each carry exactly one implicit stream), so it is the only
// place a "no suitable audio stream" condition can legitimately arise here:
// a stream sniffed as Ogg by its container magic bytes may still turn out
// to multiplex only non-Vorbis logical streams (Opus, Theora, Speex, ...),
// none of which this decoder can use.
//
// Ogg page layout (RFC 3533): 4-byte capture pattern "OggS", 1-byte
// version, 1-byte header_type_flag (bit 0x02 marks beginning-of-stream),
// 8-byte granule position, 4-byte serial number, 4-byte sequence number,
// 4-byte checksum, 1-byte segment count, then that many segment-length
// bytes, then the page's payload. Every logical stream's first page is a
// beginning-of-stream page, and those pages are conventionally grouped at
// the start of the file before any data page, so this stops at the first
// non-BOS page.
func probeOggVorbisTrack(r io.ReadSeeker) (foundVorbis bool, tracksFound int, err error) {
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return false, 0, seekErr
	}
	defer r.Seek(0, io.SeekStart)

	header := make([]byte, 27)
	const maxPages = 32
	for page := 0; page < maxPages; page++ {
		if _, readErr := io.ReadFull(r, header); readErr != nil {
			break
		}
		if string(header[0:4]) != "OggS" {
			break
		}
		headerType := header[5]
		segCount := int(header[26])

		segTable := make([]byte, segCount)
		if _, readErr := io.ReadFull(r, segTable); readErr != nil {
			break
		}
		payloadLen := 0
		for _, seg := range segTable {
			payloadLen += int(seg)
		}

		if headerType&0x02 == 0 {
			break // no longer in the leading run of beginning-of-stream pages
		}
		tracksFound++

		peekLen := payloadLen
		if peekLen > len(vorbisIdentHeader) {
			peekLen = len(vorbisIdentHeader)
		}
		sig := make([]byte, peekLen)
		if _, readErr := io.ReadFull(r, sig); readErr != nil {
			break
		}
		if peekLen == len(vorbisIdentHeader) && [7]byte(sig) == vorbisIdentHeader {
			foundVorbis = true
		}
		if _, seekErr := r.Seek(int64(payloadLen-peekLen), io.SeekCurrent); seekErr != nil {
			break
		}
	}

	return foundVorbis, tracksFound, nil
}
