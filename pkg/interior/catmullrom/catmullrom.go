// Package catmullrom evaluates Catmull-Rom spline segments. The path
// timing engine uses it solely to estimate segment arc length by
// sampling.
package catmullrom

import "github.com/go-gl/mathgl/mgl32"

// Point evaluates the segment through control points p0..p3 at t in
// [0,1]. The curve passes through p1 at t=0 and p2 at t=1:
//
//	C(t) = 0.5 * ((-p0+3p1-3p2+p3)t^3 + (2p0-5p1+4p2-p3)t^2 + (-p0+p2)t + 2p1)
func Point(p0, p1, p2, p3 mgl32.Vec3, t float32) mgl32.Vec3 {
	t2 := t * t
	t3 := t2 * t

	a := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(t3)
	b := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	c := p2.Sub(p0).Mul(t)
	d := p1.Mul(2)

	return a.Add(b).Add(c).Add(d).Mul(0.5)
}

// ArcLength approximates the length of the segment between p1 and p2 by
// sampling the curve at steps uniform parameter increments and summing
// consecutive sample distances.
func ArcLength(p0, p1, p2, p3 mgl32.Vec3, steps int) float32 {
	if steps < 1 {
		steps = 1
	}

	var length float32

	prev := Point(p0, p1, p2, p3, 0)

	for i := 1; i <= steps; i++ {
		cur := Point(p0, p1, p2, p3, float32(i)/float32(steps))
		length += cur.Sub(prev).Len()
		prev = cur
	}

	return length
}
