package resample

import "math"

// lanczosSupport is the kernel's half-width "a", matching the original's
// fixed support of 5.
const lanczosSupport = 5

// lanczosKernel evaluates L(x, a): 1 at x=0, sinc(x)*sinc(x/a) (that is,
// a*sin(pi*x)*sin(pi*x/a) / (pi*x)^2) within the support, 0 outside it.
func lanczosKernel(x float64, a int) float64 {
	if x == 0 {
		return 1
	}
	af := float64(a)
	if math.Abs(x) >= af {
		return 0
	}
	piX := math.Pi * x
	return af * math.Sin(piX) * math.Sin(piX/af) / (piX * piX)
}

// Lanczos resamples an interleaved multi-channel buffer using windowed-sinc
// interpolation with a fixed support half-width of 5, computing each output
// sample as the sum of input[i] * L(t-i, a) over the valid neighborhood of
// the fractional input position t = outIdx * inRate / outRate.
func Lanczos(inputFrameRateHz, outputFrameRateHz uint32, numChannels uint16, input []float32) ([]float32, error) {
	if err := ValidateArgs(inputFrameRateHz, outputFrameRateHz, uint32(numChannels)); err != nil {
		return nil, err
	}

	channels := int(numChannels)
	numInputFrames := len(input) / channels
	numOutputFrames := NumOutputFrames(len(input), inputFrameRateHz, outputFrameRateHz, uint32(numChannels))
	output := make([]float32, numOutputFrames*channels)

	inRate := float64(inputFrameRateHz)
	outRate := float64(outputFrameRateHz)

	for outIdx := 0; outIdx < numOutputFrames; outIdx++ {
		t := float64(outIdx) * inRate / outRate
		center := int(math.Floor(t))

		lo := center - lanczosSupport + 1
		hi := center + lanczosSupport
		if lo < 0 {
			lo = 0
		}
		if hi > numInputFrames-1 {
			hi = numInputFrames - 1
		}

		for i := lo; i <= hi; i++ {
			weight := lanczosKernel(t-float64(i), lanczosSupport)
			if weight == 0 {
				continue
			}
			w := float32(weight)
			for ch := 0; ch < channels; ch++ {
				output[outIdx*channels+ch] += w * at(input, i, ch, channels)
			}
		}
	}

	return output, nil
}
