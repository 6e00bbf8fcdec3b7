package vmath

// Easing curves map normalized tween progress [0,1] to an output fraction.
// Inputs outside the range are clamped by the timeline before application.

// EaseLinear is the identity curve
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates toward the target: 1 - (1-t)^3
// The retargeting and camera tracks both run on this curve
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
