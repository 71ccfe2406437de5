package geometry

// Projection is the interval a shape occupies along an axis.
type Projection struct {
	Min float64
	Max float64
}

// NewProjection builds a projection, ordering the bounds so Min <= Max.
func NewProjection(a, b float64) Projection {
	if a > b {
		a, b = b, a
	}
	return Projection{Min: a, Max: b}
}

// IsOverlapping reports whether one of p's bounds lies inside other.
// Only p's endpoints are tested: a p that strictly contains other is not
// reported as overlapping.
func (p Projection) IsOverlapping(other Projection) bool {
	return p.Min >= other.Min && p.Min <= other.Max ||
		p.Max >= other.Min && p.Max <= other.Max
}

// Overlap returns the penetration depth between p and other, or -1 if they
// are separated. p.Max-other.Min is preferred when it is non-negative.
func (p Projection) Overlap(other Projection) float64 {
	if !p.IsOverlapping(other) {
		return -1
	}

	overlap1 := p.Max - other.Min
	overlap2 := other.Max - p.Min

	switch {
	case overlap1 >= 0:
		return overlap1
	case overlap2 >= 0:
		return overlap2
	default:
		return -1
	}
}
