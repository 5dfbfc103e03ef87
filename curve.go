package scene

import "github.com/tanema/gween/ease"

// Curve maps animation progress t in [0, FM1] to an eased progress in
// the same range. Linear (CurveLinear) is the identity and the default
// when an AnimationInfo leaves Curve nil.
type Curve func(t Fixed) Fixed

// fromEase bridges a gween ease.TweenFunc (b, c, d are begin/change/
// duration in the tweening library's own convention) into a Curve over
// Q15.16 progress, by evaluating the easing function at begin=0,
// change=1, duration=1 and converting through float32.
func fromEase(fn ease.TweenFunc) Curve {
	return func(t Fixed) Fixed {
		tf := float32(t) / float32(FM1)
		vf := fn(tf, 0, 1, 1)
		return Fixed(vf * float32(FM1))
	}
}

// Named curves, bridged from the teacher's tweening/easing dependency.
var (
	CurveLinear      Curve = func(t Fixed) Fixed { return t }
	CurveInQuad            = fromEase(ease.InQuad)
	CurveOutQuad           = fromEase(ease.OutQuad)
	CurveInOutQuad         = fromEase(ease.InOutQuad)
	CurveInCubic           = fromEase(ease.InCubic)
	CurveOutCubic          = fromEase(ease.OutCubic)
	CurveInOutCubic        = fromEase(ease.InOutCubic)
	CurveInBack            = fromEase(ease.InBack)
	CurveOutBack           = fromEase(ease.OutBack)
	CurveOutBounce         = fromEase(ease.OutBounce)
	CurveOutElastic        = fromEase(ease.OutElastic)
)
