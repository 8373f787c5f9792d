package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-musicfox/wavecore"
	"github.com/stretchr/testify/assert"
)

func TestFromFilesPreservesInputOrderAndIsolatesErrors(t *testing.T) {
	dir := t.TempDir()

	good, err := wavecore.FromMillisecondsOfSilence(44100, 2, 10).ToWAVBuffer()
	assert.NoError(t, err)
	goodPath := filepath.Join(dir, "a.wav")
	assert.NoError(t, os.WriteFile(goodPath, good, 0o644))

	missingPath := filepath.Join(dir, "does-not-exist.wav")

	results := FromFiles([]string{goodPath, missingPath}, wavecore.WaveformArgs{}, Args{NumWorkers: 2})

	assert.Len(t, results, 2)
	assert.Equal(t, goodPath, results[0].Name)
	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Result)

	assert.Equal(t, missingPath, results[1].Name)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)
}

func TestFromFilesDefaultsWorkerCount(t *testing.T) {
	results := FromFiles(nil, wavecore.WaveformArgs{}, Args{})
	assert.Empty(t, results)
}
