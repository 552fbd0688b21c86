package container

const (
	// HeightFt and WidthFt are the outer dimensions shared by every container.
	HeightFt = 8.5
	WidthFt  = 8.0

	// InsulationOverheadCubicFt is the volume refrigeration equipment takes away.
	InsulationOverheadCubicFt = 100.0
)

// body is the overridable step behind Container.Volume.
type body interface {
	computeVolume(lengthFt float64) float64
}

type dryBody struct{}

func (dryBody) computeVolume(lengthFt float64) float64 {
	return HeightFt * WidthFt * lengthFt
}

// insulatedBody subtracts the insulation overhead from the body it wraps.
// Very short containers would go negative; their usable volume is zero.
type insulatedBody struct {
	inner body
}

func (b insulatedBody) computeVolume(lengthFt float64) float64 {
	return max(b.inner.computeVolume(lengthFt)-InsulationOverheadCubicFt, 0)
}
