package resample

import (
	"sync"

	"github.com/go-musicfox/wavecore/internal/kaisergen"
)

var (
	kaiserOnce   sync.Once
	kaiserWindow []float32
	kaiserDiff   []float32
)

// kaiserTable lazily builds the process-wide Kaiser window table exactly
// once (the "library-initialization latch" pattern §5 and §9 call for,
// applied here to table construction rather than a C library registry).
func kaiserTable() ([]float32, []float32) {
	kaiserOnce.Do(func() {
		kaiserWindow, kaiserDiff = kaisergen.Table()
	})
	return kaiserWindow, kaiserDiff
}

// Sinc resamples an interleaved multi-channel buffer using a Kaiser-
// windowed polyphase sinc filter, following the original's
// backend/resample/babycat_sinc.rs algorithm: a precomputed table indexed
// by fractional position, linearly interpolated between entries, with
// independent left- and right-wing accumulation per output frame.
func Sinc(inputFrameRateHz, outputFrameRateHz uint32, numChannels uint16, input []float32) ([]float32, error) {
	if err := ValidateArgs(inputFrameRateHz, outputFrameRateHz, uint32(numChannels)); err != nil {
		return nil, err
	}

	channels := int(numChannels)
	sampleRatio := float32(outputFrameRateHz) / float32(inputFrameRateHz)

	numOutputFrames := NumOutputFrames(len(input), inputFrameRateHz, outputFrameRateHz, uint32(numChannels))
	output := make([]float32, numOutputFrames*channels)

	window, diff := kaiserTable()

	// When downsampling, pre-scale the table by the ratio to enforce the
	// new Nyquist cutoff; never mutate the shared table in place.
	if sampleRatio < 1.0 {
		scaled := make([]float32, len(window))
		for i, v := range window {
			scaled[i] = v * sampleRatio
		}
		window = scaled
	}

	const precision = kaisergen.Precision
	sincResample(input, output, channels, float64(outputFrameRateHz)/float64(inputFrameRateHz), window, diff, precision)

	return output, nil
}

func sincResample(inAudio, outAudio []float32, numChannels int, sampleRatio float64, interpWin, interpDelta []float32, numTable int) {
	scale := sampleRatio
	if scale > 1.0 {
		scale = 1.0
	}

	timeIncrement := 1.0 / sampleRatio
	indexStep := int(scale * float64(numTable))

	nWin := len(interpWin)
	nInFrames := len(inAudio) / numChannels
	nOutFrames := len(outAudio) / numChannels

	for outFrameIdx := 0; outFrameIdx < nOutFrames; outFrameIdx++ {
		timeRegister := timeIncrement * float64(outFrameIdx)
		inFrameIdx := int(timeRegister)

		frac := scale * fract(timeRegister)
		indexFrac := frac * float64(numTable)
		offset := int(indexFrac)
		eta := float32(fract(indexFrac))

		iMax := inFrameIdx + 1
		if indexStep > 0 {
			if wingMax := (nWin - offset) / indexStep; wingMax < iMax {
				iMax = wingMax
			}
		}
		for i := 0; i < iMax; i++ {
			idx := offset + i*indexStep
			weight := interpWin[idx] + eta*interpDelta[idx]
			for ch := 0; ch < numChannels; ch++ {
				outIdx := outFrameIdx*numChannels + ch
				inIdx := (inFrameIdx-i)*numChannels + ch
				outAudio[outIdx] += weight * inAudio[inIdx]
			}
		}

		// Right wing of the response.
		fracR := scale - frac
		indexFracR := fracR * float64(numTable)
		offsetR := int(indexFracR)
		etaR := float32(fract(indexFracR))

		kMax := nInFrames - inFrameIdx - 1
		if indexStep > 0 {
			if wingMax := (nWin - offsetR) / indexStep; wingMax < kMax {
				kMax = wingMax
			}
		}
		for k := 0; k < kMax; k++ {
			idx := offsetR + k*indexStep
			weight := interpWin[idx] + etaR*interpDelta[idx]
			for ch := 0; ch < numChannels; ch++ {
				outIdx := outFrameIdx*numChannels + ch
				inIdx := (inFrameIdx+k+1)*numChannels + ch
				outAudio[outIdx] += weight * inAudio[inIdx]
			}
		}
	}
}

func fract(f float64) float64 {
	return f - float64(int64(f))
}
