package wavenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeProducesRIFFHeader(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 0.25}
	data, err := Encode(44100, 1, samples)
	assert.NoError(t, err)
	assert.True(t, len(data) > 12)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestEncodeRejectsMoreThanStereo(t *testing.T) {
	_, err := Encode(44100, 3, []float32{0, 0, 0})
	assert.Error(t, err)
}

func TestSliceStreamerStereo(t *testing.T) {
	s := &sliceStreamer{samples: []float32{0.1, 0.2, 0.3, 0.4}, numChannels: 2}
	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.1, buf[0][0], 1e-6)
	assert.InDelta(t, 0.2, buf[0][1], 1e-6)
	assert.InDelta(t, 0.3, buf[1][0], 1e-6)
	assert.InDelta(t, 0.4, buf[1][1], 1e-6)
}
