package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func outputFrameCount(buf []float32, channels int) int {
	return len(buf) / channels
}

func TestNumOutputFramesFormula(t *testing.T) {
	cases := []struct {
		inputLen             int
		inRate, outRate, chs uint32
	}{
		{2000, 44100, 48000, 2},
		{441, 44100, 22050, 1},
		{1000, 8000, 44100, 2},
		{9973, 44100, 44100, 3},
	}
	for _, c := range cases {
		got := NumOutputFrames(c.inputLen, c.inRate, c.outRate, c.chs)
		want := int(math.Ceil(math.Ceil(float64(c.inputLen)*float64(c.outRate)/float64(c.inRate)) / float64(c.chs)))
		assert.Equal(t, want, got)
	}
}

func TestSincOutputFrameCountMatchesFormula(t *testing.T) {
	input := make([]float32, 2000)
	for i := range input {
		input[i] = float32(math.Sin(float64(i)))
	}
	out, err := Sinc(44100, 48000, 2, input)
	assert.NoError(t, err)
	want := NumOutputFrames(len(input), 44100, 48000, 2)
	assert.Equal(t, want, outputFrameCount(out, 2))
}

func TestLanczosOutputFrameCountMatchesFormula(t *testing.T) {
	input := make([]float32, 2000)
	for i := range input {
		input[i] = float32(math.Sin(float64(i)))
	}
	out, err := Lanczos(44100, 22050, 2, input)
	assert.NoError(t, err)
	want := NumOutputFrames(len(input), 44100, 22050, 2)
	assert.Equal(t, want, outputFrameCount(out, 2))
}

func TestResampleAtSameRateYieldsSameFrameCount(t *testing.T) {
	input := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for _, mode := range []Mode{ModeSinc, ModeLanczos} {
		out, err := Resample(44100, 44100, 2, input, mode)
		assert.NoError(t, err)
		assert.Equal(t, len(input), len(out))
	}
}

func TestValidateArgsRejectsZeroRate(t *testing.T) {
	err := ValidateArgs(0, 44100, 2)
	assert.Error(t, err)
}

func TestValidateArgsRejectsExtremeRatio(t *testing.T) {
	err := ValidateArgs(1, 44100*10, 2)
	assert.Error(t, err)
}

func TestSincUpsampleProducesFiniteOutput(t *testing.T) {
	input := make([]float32, 500)
	for i := range input {
		input[i] = float32(math.Sin(float64(i) * 0.1))
	}
	out, err := Sinc(8000, 44100, 1, input)
	assert.NoError(t, err)
	for _, v := range out {
		assert.False(t, math.IsNaN(float64(v)))
		assert.False(t, math.IsInf(float64(v), 0))
	}
}

func TestResampleDefaultModeUsesSinc(t *testing.T) {
	input := []float32{0, 1, 0, -1, 0, 1, 0, -1}
	want, err := Sinc(44100, 22050, 1, input)
	assert.NoError(t, err)
	got, err := Resample(44100, 22050, 1, input, ModeDefault)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
