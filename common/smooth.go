package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerper is implemented by any value that can blend linearly toward another value of the same type.
// LerpSmooth delegates the blend to Lerp, so new vector/color/rotation types only need this method.
type Lerper[T any] interface {
	// Lerp returns the value a fraction t of the way from the receiver to other.
	//
	// Parameters:
	//   - other: the value at t = 1
	//   - t: blend fraction in [0, 1]
	//
	// Returns:
	//   - T: the blended value
	Lerp(other T, t float32) T
}

// SmoothFactor returns the fraction of the remaining distance covered by an exponential approach
// over delta seconds: clamp(1 - e^(-delta*lerpSpeed), 0, 1).
//
// Parameters:
//   - lerpSpeed: approach rate in 1/seconds (larger is snappier)
//   - delta: elapsed time in seconds
//
// Returns:
//   - float32: blend fraction in [0, 1]
func SmoothFactor(lerpSpeed, delta float32) float32 {
	t := 1 - math.Exp(-float64(delta)*float64(lerpSpeed))
	return Clamp(float32(t), 0, 1)
}

// LerpSmooth moves a toward b by the frame-rate independent fraction SmoothFactor(lerpSpeed, delta).
// One call with delta d gives the same result as two calls with d/2 toward the same target.
// A zero fraction returns a unchanged and a saturated fraction returns b exactly.
//
// Parameters:
//   - a: current value
//   - b: target value
//   - lerpSpeed: approach rate in 1/seconds
//   - delta: elapsed time in seconds
//
// Returns:
//   - T: the new value
func LerpSmooth[T Lerper[T]](a, b T, lerpSpeed, delta float32) T {
	t := SmoothFactor(lerpSpeed, delta)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a.Lerp(b, t)
}

// LerpSmoothf is the scalar form of LerpSmooth.
//
// Parameters:
//   - a: current value
//   - b: target value
//   - lerpSpeed: approach rate in 1/seconds
//   - delta: elapsed time in seconds
//
// Returns:
//   - float32: the new value
func LerpSmoothf(a, b, lerpSpeed, delta float32) float32 {
	return float32(LerpSmooth(Scalar(a), Scalar(b), lerpSpeed, delta))
}

// Lerpf blends two scalars: a*(1-t) + b*t.
func Lerpf(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// Smoothstep returns the cubic Hermite ease of x between edge0 and edge1, clamped to [0, 1].
// If the edges coincide it returns 0 below the edge and 1 at or above it.
//
// Parameters:
//   - edge0: value mapped to 0
//   - edge1: value mapped to 1
//   - x: input value
//
// Returns:
//   - float32: eased value in [0, 1]
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Scalar is a float32 that satisfies Lerper.
type Scalar float32

func (s Scalar) Lerp(other Scalar, t float32) Scalar {
	return Scalar(Lerpf(float32(s), float32(other), t))
}

// Vec3 is an mgl32.Vec3 that satisfies Lerper.
type Vec3 mgl32.Vec3

func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	a := mgl32.Vec3(v)
	return Vec3(a.Add(mgl32.Vec3(other).Sub(a).Mul(t)))
}

// Color is a linear RGBA color that satisfies Lerper. Channels blend independently.
type Color [4]float32

func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		Lerpf(c[0], other[0], t),
		Lerpf(c[1], other[1], t),
		Lerpf(c[2], other[2], t),
		Lerpf(c[3], other[3], t),
	}
}

// Quat is an mgl32.Quat that satisfies Lerper using normalized linear interpolation.
type Quat mgl32.Quat

func (q Quat) Lerp(other Quat, t float32) Quat {
	return Quat(mgl32.QuatNlerp(mgl32.Quat(q), mgl32.Quat(other), t))
}

// Slerp interpolates between two vectors by rotating the direction of a toward b by a fraction t
// of the angle between them while interpolating the length linearly.
// Collinear or zero-length inputs reduce to a straight linear interpolation.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - t: blend fraction
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func Slerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	lenA, lenB := a.Len(), b.Len()
	if lenA == 0 || lenB == 0 {
		return mgl32.Vec3(Vec3(a).Lerp(Vec3(b), t))
	}
	dirA := a.Mul(1 / lenA)
	dirB := b.Mul(1 / lenB)
	axis := dirA.Cross(dirB)
	if axis.Len() < 1e-6 {
		return mgl32.Vec3(Vec3(a).Lerp(Vec3(b), t))
	}
	angle := float32(math.Acos(float64(Clamp(dirA.Dot(dirB), -1, 1))))
	rot := mgl32.QuatRotate(angle*t, axis.Normalize())
	return rot.Rotate(dirA).Mul(Lerpf(lenA, lenB, t))
}
