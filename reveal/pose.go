package reveal

// Pose is one endpoint of a reveal animation: a vertical offset in cells
// and an opacity in [0,1]. The rendering layer maps opacity onto color
// blending since terminals have no alpha channel.
type Pose struct {
	OffsetY float64
	Opacity float64
}

// Lerp interpolates between two poses at fraction t
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		OffsetY: p.OffsetY + (to.OffsetY-p.OffsetY)*t,
		Opacity: p.Opacity + (to.Opacity-p.Opacity)*t,
	}
}

// HiddenBelow is the standard hidden pose: shifted down, fully transparent
func HiddenBelow(offset float64) Pose {
	return Pose{OffsetY: offset, Opacity: 0}
}

// Resting is the standard visible pose: in place, fully opaque
func Resting() Pose {
	return Pose{OffsetY: 0, Opacity: 1}
}
