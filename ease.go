package zenith

import "github.com/tanema/gween/ease"

// easings maps the engine's easing names to gween functions. The bare family
// names and the PowerN aliases resolve to their ease-out variant.
var easings = map[string]ease.TweenFunc{
	"Linear": ease.Linear,
	"Power0": ease.Linear,
	"Power1": ease.OutQuad,
	"Power2": ease.OutCubic,
	"Power3": ease.OutQuart,
	"Power4": ease.OutQuint,

	"Quad":           ease.OutQuad,
	"Quad.easeIn":    ease.InQuad,
	"Quad.easeOut":   ease.OutQuad,
	"Quad.easeInOut": ease.InOutQuad,

	"Cubic":           ease.OutCubic,
	"Cubic.easeIn":    ease.InCubic,
	"Cubic.easeOut":   ease.OutCubic,
	"Cubic.easeInOut": ease.InOutCubic,

	"Quart":           ease.OutQuart,
	"Quart.easeIn":    ease.InQuart,
	"Quart.easeOut":   ease.OutQuart,
	"Quart.easeInOut": ease.InOutQuart,

	"Quint":           ease.OutQuint,
	"Quint.easeIn":    ease.InQuint,
	"Quint.easeOut":   ease.OutQuint,
	"Quint.easeInOut": ease.InOutQuint,

	"Sine":           ease.OutSine,
	"Sine.easeIn":    ease.InSine,
	"Sine.easeOut":   ease.OutSine,
	"Sine.easeInOut": ease.InOutSine,

	"Expo":           ease.OutExpo,
	"Expo.easeIn":    ease.InExpo,
	"Expo.easeOut":   ease.OutExpo,
	"Expo.easeInOut": ease.InOutExpo,

	"Circ":           ease.OutCirc,
	"Circ.easeIn":    ease.InCirc,
	"Circ.easeOut":   ease.OutCirc,
	"Circ.easeInOut": ease.InOutCirc,

	"Elastic":           ease.OutElastic,
	"Elastic.easeIn":    ease.InElastic,
	"Elastic.easeOut":   ease.OutElastic,
	"Elastic.easeInOut": ease.InOutElastic,

	"Back":           ease.OutBack,
	"Back.easeIn":    ease.InBack,
	"Back.easeOut":   ease.OutBack,
	"Back.easeInOut": ease.InOutBack,

	"Bounce":           ease.OutBounce,
	"Bounce.easeIn":    ease.InBounce,
	"Bounce.easeOut":   ease.OutBounce,
	"Bounce.easeInOut": ease.InOutBounce,
}

// EaseByName returns the easing function registered under name. Unknown
// names fall back to ease.Linear and report ok=false.
func EaseByName(name string) (fn ease.TweenFunc, ok bool) {
	fn, ok = easings[name]
	if !ok {
		return ease.Linear, false
	}
	return fn, true
}

// applyEase maps a normalized progress value through fn.
func applyEase(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
