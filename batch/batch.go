// Package batch runs N single-file decodes in parallel, a thin external
// collaborator over the single-file decode contract the root package
// exposes. Grounded on the original's backend/batch.rs (a rayon-backed
// thread pool); reimplemented here over golang.org/x/sync/errgroup,
// which the teacher's go.mod already depends on.
package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-musicfox/wavecore"
)

// NamedResult pairs an input filename with either its decoded Waveform or
// the error encountered decoding it.
type NamedResult struct {
	Name   string
	Result *wavecore.Waveform
	Err    error
}

// Args configures a batch run. NumWorkers <= 0 defaults to the number of
// logical CPUs.
type Args struct {
	NumWorkers int
}

// FromFiles decodes each of filenames under args in parallel, limited to
// args.NumWorkers concurrent decodes (or runtime.NumCPU() if unset).
// Results are returned in filename-input order regardless of completion
// order; an error decoding one file does not abort the others.
func FromFiles(filenames []string, args wavecore.WaveformArgs, batchArgs Args) []NamedResult {
	numWorkers := batchArgs.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	results := make([]NamedResult, len(filenames))
	g := new(errgroup.Group)
	g.SetLimit(numWorkers)

	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			w, err := wavecore.FromFile(filename, args)
			results[i] = NamedResult{Name: filename, Result: w, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
