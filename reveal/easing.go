package reveal

// Easing maps normalized progress [0,1] to an eased fraction [0,1].
// Curves must be monotonic and hit 0 at 0 and 1 at 1 so a sequencer
// reaches its visible pose exactly when its duration elapses.
type Easing func(t float64) float64

// Linear applies no easing
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOutCubic decelerates toward the end; the default reveal curve
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutQuad decelerates gently toward the end
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

// EaseInOutSmooth accelerates then decelerates (smoothstep)
func EaseInOutSmooth(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
