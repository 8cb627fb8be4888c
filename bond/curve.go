package bond

import (
	"fmt"
	"sort"
)

// PillarCurve is a DiscountCurve defined by zero rates at a set of
// time pillars, linearly interpolated in time and flat-extrapolated
// beyond the first and last pillar.
type PillarCurve struct {
	times []float64
	rates []float64
}

// NewPillarCurve builds a curve from parallel pillar slices. Pillars
// are sorted by time; at least one pillar is required and times must
// be distinct and non-negative.
func NewPillarCurve(times, zeroRates []float64) (*PillarCurve, error) {
	if len(times) == 0 || len(times) != len(zeroRates) {
		return nil, fmt.Errorf("NewPillarCurve: need equal nonempty pillar slices, got %d times and %d rates", len(times), len(zeroRates))
	}

	type pillar struct{ t, r float64 }
	pillars := make([]pillar, len(times))
	for i := range times {
		if times[i] < 0 {
			return nil, fmt.Errorf("NewPillarCurve: pillar time %g must be non-negative", times[i])
		}
		pillars[i] = pillar{times[i], zeroRates[i]}
	}
	sort.Slice(pillars, func(i, j int) bool { return pillars[i].t < pillars[j].t })

	c := &PillarCurve{
		times: make([]float64, len(pillars)),
		rates: make([]float64, len(pillars)),
	}
	for i, p := range pillars {
		if i > 0 && p.t == c.times[i-1] {
			return nil, fmt.Errorf("NewPillarCurve: duplicate pillar time %g", p.t)
		}
		c.times[i] = p.t
		c.rates[i] = p.r
	}
	return c, nil
}

// ZeroRate returns the interpolated zero rate at t.
func (c *PillarCurve) ZeroRate(t float64) float64 {
	n := len(c.times)
	if t <= c.times[0] {
		return c.rates[0]
	}
	if t >= c.times[n-1] {
		return c.rates[n-1]
	}

	// First pillar with time >= t.
	i := sort.SearchFloat64s(c.times, t)
	t0, t1 := c.times[i-1], c.times[i]
	r0, r1 := c.rates[i-1], c.rates[i]
	w := (t - t0) / (t1 - t0)
	return r0 + w*(r1-r0)
}
