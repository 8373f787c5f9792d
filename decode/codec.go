package decode

import (
	"bufio"
	"strings"
)

// codec identifies the container/codec pair a probe resolved to.
type codec int

const (
	codecUnknown codec = iota
	codecMP3
	codecFLAC
	codecWAV
	codecVorbis
)

// sniff inspects the leading bytes of a stream for a recognizable magic
// number. Content sniffing takes priority over any caller-supplied
// extension hint, so a mislabeled file extension never prevents a
// successful decode - per the probe's contract in §4.4.
func sniff(br *bufio.Reader) (codec, error) {
	peek, err := br.Peek(12)
	if err != nil && len(peek) == 0 {
		return codecUnknown, err
	}

	switch {
	case len(peek) >= 4 && string(peek[:4]) == "fLaC":
		return codecFLAC, nil
	case len(peek) >= 4 && string(peek[:4]) == "OggS":
		return codecVorbis, nil
	case len(peek) >= 12 && string(peek[:4]) == "RIFF" && string(peek[8:12]) == "WAVE":
		return codecWAV, nil
	case len(peek) >= 3 && string(peek[:3]) == "ID3":
		return codecMP3, nil
	case len(peek) >= 2 && peek[0] == 0xFF && peek[1]&0xE0 == 0xE0:
		return codecMP3, nil
	}
	return codecUnknown, nil
}

// fromExtension maps a file-extension hint (with or without a leading dot)
// to a codec. An unrecognized extension yields codecUnknown rather than an
// error - the caller falls back to content sniffing.
func fromExtension(ext string) codec {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "mp3":
		return codecMP3
	case "flac":
		return codecFLAC
	case "wav", "wave":
		return codecWAV
	case "ogg", "oga":
		return codecVorbis
	default:
		return codecUnknown
	}
}

// resolveCodec combines content sniffing with the extension/MIME hints,
// preferring the sniffed result whenever one is found.
func resolveCodec(br *bufio.Reader, ext, mime string) (codec, error) {
	sniffed, err := sniff(br)
	if err != nil {
		return codecUnknown, err
	}
	if sniffed != codecUnknown {
		return sniffed, nil
	}
	if c := fromExtension(ext); c != codecUnknown {
		return c, nil
	}
	switch strings.ToLower(mime) {
	case "audio/mpeg", "audio/mp3":
		return codecMP3, nil
	case "audio/flac", "audio/x-flac":
		return codecFLAC, nil
	case "audio/wav", "audio/wave", "audio/x-wav":
		return codecWAV, nil
	case "audio/ogg", "audio/vorbis":
		return codecVorbis, nil
	}
	return codecUnknown, nil
}
