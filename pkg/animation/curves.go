package animation

import "math"

// Easing curves transform linear transition progress into natural-feeling
// motion.
//
// Each curve takes a progress value t in [0, 1] and returns a transformed
// value. Callers integrate elapsed time themselves (the engine is
// frame-stepped with an explicit delta) and pass the clamped ratio here.
//
// [EaseOutBack] is the track-snap curve: it decelerates into the target with
// a slight overshoot. [EaseInExpo] and [Impulse] drive the press-flash
// feedback on buttons.

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// EaseOutBack decelerates into the target and overshoots slightly before
// settling. Output exceeds 1 in the middle of the curve; endpoints are
// exactly 0 and 1.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// EaseInExpo starts imperceptibly and accelerates hard at the end. Used to
// fade the press flash back to the resting color.
func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// EaseOutCubic starts quickly and decelerates smoothly.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Impulse rises sharply to 1 early in the interval and decays back toward
// zero, producing the momentary scale dip of a press flash. Peak is at
// t = 0.25.
func Impulse(t float64) float64 {
	h := 4 * t
	return h * math.Exp(1-h)
}

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ClampUnit clamps a value to the range [0, 1].
func ClampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
