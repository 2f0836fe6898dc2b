package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length under which vectors are treated as exactly zero.
const Epsilon = 1e-5

var (
	axisX       = mgl32.Vec3{1, 0, 0}
	axisY       = mgl32.Vec3{0, 1, 0}
	axisZ       = mgl32.Vec3{0, 0, 1}
	localFwd    = mgl32.Vec3{0, 0, -1}
	zeroVec3    = mgl32.Vec3{}
	defaultAxis = axisZ
)

// Transform is a world-space position and orientation. Forward is local -Z.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// NewTransform returns an identity transform placed at pos.
func NewTransform(pos mgl32.Vec3) Transform {
	return Transform{Translation: pos, Rotation: mgl32.QuatIdent()}
}

// Forward returns the direction the transform is facing.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(localFwd)
}

// LocalX returns the transform's right axis.
func (t Transform) LocalX() mgl32.Vec3 {
	return t.Rotation.Rotate(axisX)
}

// LookAt rotates the transform so Forward points at target, keeping the
// local Y axis as close to up as possible.
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	back := normalizeOr(t.Translation.Sub(target), defaultAxis)
	right := up.Cross(back)
	if isApproxZero(right) {
		right = anyOrthonormal(up)
	}
	right = right.Normalize()
	newUp := back.Cross(right)
	t.Rotation = mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, newUp, back).Mat4()).Normalize()
}

// RotateAround orbits the transform around pivot by q, rotating its
// orientation by the same amount.
func (t *Transform) RotateAround(pivot mgl32.Vec3, q mgl32.Quat) {
	t.Translation = pivot.Add(q.Rotate(t.Translation.Sub(pivot)))
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// ViewMatrix returns the world-to-view matrix for the transform.
func (t Transform) ViewMatrix() mgl32.Mat4 {
	rot := t.Rotation.Normalize().Inverse().Mat4()
	return rot.Mul4(mgl32.Translate3D(-t.Translation.X(), -t.Translation.Y(), -t.Translation.Z()))
}

func isApproxZero(v mgl32.Vec3) bool {
	return v.Len() < Epsilon
}

func isApproxZero2(v mgl32.Vec2) bool {
	return v.Len() < Epsilon
}

// collapseApproxZero snaps float noise to an exact zero vector.
func collapseApproxZero(v mgl32.Vec3) mgl32.Vec3 {
	if isApproxZero(v) {
		return zeroVec3
	}
	return v
}

func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if isApproxZero(v) {
		return fallback
	}
	return v.Normalize()
}

func angleBetween(a, b mgl32.Vec3) float32 {
	denom := float32(math.Sqrt(float64(a.LenSqr() * b.LenSqr())))
	if denom == 0 {
		return 0
	}
	cos := mgl32.Clamp(a.Dot(b)/denom, -1, 1)
	return float32(math.Acos(float64(cos)))
}

// anyOrthonormal returns some unit vector perpendicular to the unit vector v.
func anyOrthonormal(v mgl32.Vec3) mgl32.Vec3 {
	sign := float32(1)
	if math.Signbit(float64(v.Z())) {
		sign = -1
	}
	a := -1 / (sign + v.Z())
	b := v.X() * v.Y() * a
	return mgl32.Vec3{b, sign + v.Y()*v.Y()*a, -v.Y()}
}

// slerpShortest interpolates along the shorter arc between from and to.
func slerpShortest(from, to mgl32.Quat, amount float32) mgl32.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	if amount >= 1 {
		return to.Normalize()
	}
	if amount <= 0 {
		return from.Normalize()
	}
	return mgl32.QuatSlerp(from, to, amount).Normalize()
}
