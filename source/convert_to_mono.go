package source

// convertToMono consumes exactly C upstream samples per call (one frame)
// and emits their arithmetic mean. If any of the C pulls hits EOF, it emits
// EOF without partially emitting a sample. Grounded on
// source/convert_to_mono.rs.
type convertToMono struct {
	upstream    Source
	numChannels int
	numChanF32  float32
}

// ConvertToMono averages each upstream frame's channels into one sample.
func ConvertToMono(upstream Source) Source {
	n := int(upstream.NumChannels())
	return &convertToMono{upstream: upstream, numChannels: n, numChanF32: float32(n)}
}

func (c *convertToMono) FrameRateHz() uint32 { return c.upstream.FrameRateHz() }
func (c *convertToMono) NumChannels() uint16 { return 1 }

func (c *convertToMono) NumFramesEstimate() (uint64, bool) {
	return c.upstream.NumFramesEstimate()
}

func (c *convertToMono) SizeHint() (lower, upper uint64, upperOK bool) {
	lo, up, ok := c.upstream.SizeHint()
	lower = lo / uint64(c.numChannels)
	if ok {
		return lower, up / uint64(c.numChannels), true
	}
	return lower, 0, false
}

func (c *convertToMono) Next() (float32, bool) {
	var sum float32
	for i := 0; i < c.numChannels; i++ {
		v, ok := c.upstream.Next()
		if !ok {
			return 0, false
		}
		sum += v
	}
	return sum / c.numChanF32, true
}
