package source

import "math"

// gain multiplies each sample by 10^(dbfs/20). Grounded on source/gain.rs.
type gain struct {
	upstream Source
	factor   float32
}

// Gain applies a gain in decibels relative to full scale to every sample.
func Gain(upstream Source, dbfs float64) Source {
	factor := float32(math.Pow(10, dbfs/20))
	return &gain{upstream: upstream, factor: factor}
}

func (g *gain) FrameRateHz() uint32               { return g.upstream.FrameRateHz() }
func (g *gain) NumChannels() uint16               { return g.upstream.NumChannels() }
func (g *gain) NumFramesEstimate() (uint64, bool) { return g.upstream.NumFramesEstimate() }
func (g *gain) SizeHint() (uint64, uint64, bool)  { return g.upstream.SizeHint() }

func (g *gain) Next() (float32, bool) {
	v, ok := g.upstream.Next()
	if !ok {
		return 0, false
	}
	return v * g.factor, true
}

// scale multiplies each sample by a constant. Grounded on source/scale.rs.
type scale struct {
	upstream Source
	factor   float32
}

// Scale multiplies every sample by a constant factor.
func Scale(upstream Source, factor float32) Source {
	return &scale{upstream: upstream, factor: factor}
}

func (s *scale) FrameRateHz() uint32               { return s.upstream.FrameRateHz() }
func (s *scale) NumChannels() uint16               { return s.upstream.NumChannels() }
func (s *scale) NumFramesEstimate() (uint64, bool) { return s.upstream.NumFramesEstimate() }
func (s *scale) SizeHint() (uint64, uint64, bool)   { return s.upstream.SizeHint() }

func (s *scale) Next() (float32, bool) {
	v, ok := s.upstream.Next()
	if !ok {
		return 0, false
	}
	return v * s.factor, true
}
