package vecviz

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Behavior is a piece of scene logic that gets updated once per frame, usually to read some Arrows and to set others
// (or some text) from the result.
type Behavior interface {
	Update(dt float64)
}

// formatFloat formats a value the way it'd be shown to a user: the shortest representation that round-trips at single
// precision, with a '.' decimal separator regardless of locale. Very large or small values switch to exponent form.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 32)
}

func allSet(arrows ...*Arrow) bool {
	for _, a := range arrows {
		if a == nil {
			return false
		}
	}
	return true
}

// VectorBasics shows the dot product of two Arrows as text and the cross product of two Arrows as a third.
type VectorBasics struct {
	DotV1, DotV2 *Arrow
	DotText      string // Set on Update to DotV1 · DotV2

	CrossV1, CrossV2 *Arrow
	CrossV3          *Arrow // Set on Update to CrossV1 x CrossV2
}

func (vb *VectorBasics) Update(dt float64) {

	if allSet(vb.DotV1, vb.DotV2) {
		vb.DotText = formatFloat(vb.DotV1.Vector().Dot(vb.DotV2.Vector()))
	}

	if allSet(vb.CrossV1, vb.CrossV2, vb.CrossV3) {
		vb.CrossV3.SetAsVector(vb.CrossV1.Vector().Cross(vb.CrossV2.Vector()))
	}

}

func (vb *VectorBasics) Text() string {
	if vb.DotText == "" {
		return ""
	}
	return "Dot: " + vb.DotText
}

// ProjectionAndReflect sets one Arrow to the projection of another onto a normal, and a second one to the reflection of an
// incoming direction off of a plane.
type ProjectionAndReflect struct {
	ProjectV1       *Arrow
	ProjectV2Normal *Arrow
	ProjectV3       *Arrow // Set on Update to ProjectV1 projected onto ProjectV2Normal

	ReflectV1InDirect *Arrow
	ReflectV2InNormal *Arrow
	ReflectV3         *Arrow // Set on Update to ReflectV1InDirect reflected off of the plane with ReflectV2InNormal as its normal
}

func (pr *ProjectionAndReflect) Update(dt float64) {

	if allSet(pr.ProjectV1, pr.ProjectV2Normal, pr.ProjectV3) {
		pr.ProjectV3.SetAsVector(pr.ProjectV1.Vector().Project(pr.ProjectV2Normal.Vector()))
	}

	if allSet(pr.ReflectV1InDirect, pr.ReflectV2InNormal, pr.ReflectV3) {
		pr.ReflectV3.SetAsVector(pr.ReflectV1InDirect.Vector().Reflect(pr.ReflectV2InNormal.Vector()))
	}

}

// VectorAngle shows the unsigned angle and the signed angle (around Axis) between two Arrows, in degrees.
type VectorAngle struct {
	Angle1, Angle2 *Arrow
	Axis           *Arrow
	Result         string // Set on Update to "Angle: <degrees>\nSignedAngle: <degrees>"
}

func (va *VectorAngle) Update(dt float64) {

	if !allSet(va.Angle1, va.Angle2, va.Axis) {
		return
	}

	a, b := va.Angle1.Vector(), va.Angle2.Vector()

	angle := ToDegrees(a.Angle(b))
	signed := ToDegrees(a.SignedAngle(b, va.Axis.Vector()))

	va.Result = "Angle: " + formatFloat(angle) + "\nSignedAngle: " + formatFloat(signed)

}

func (va *VectorAngle) Text() string {
	return va.Result
}

// Playground demonstrates both directions of the orientation mapping. UpObj and RightObj are pointed along DirectionForUp and
// DirectionForRight, treating them as models that point up (WorldUp) and right (WorldRight) at rest. RotationForUp and
// RotationForRight are read back out of the current rotations of RotationUpObj and RotationRightObj, treated the same way.
type Playground struct {
	UpObj             *Arrow
	RightObj          *Arrow
	DirectionForUp    Vector
	DirectionForRight Vector

	RotationUpObj    *Arrow
	RotationRightObj *Arrow
	RotationForUp    Vector // Set on Update
	RotationForRight Vector // Set on Update
}

func (pg *Playground) Update(dt float64) {

	// A zero-length input direction leaves the object where it is.
	if pg.UpObj != nil {
		if rotation, err := RotationFromDirection(pg.DirectionForUp, WorldUp); err == nil {
			pg.UpObj.Rotation = rotation
		}
	}

	if pg.RightObj != nil {
		if rotation, err := RotationFromDirection(pg.DirectionForRight, WorldRight); err == nil {
			pg.RightObj.Rotation = rotation
		}
	}

	if pg.RotationRightObj != nil {
		pg.RotationForRight = DirectionFromRotation(pg.RotationRightObj.Rotation, WorldRight)
	}

	if pg.RotationUpObj != nil {
		pg.RotationForUp = DirectionFromRotation(pg.RotationUpObj.Rotation, WorldUp)
	}

}

// Text returns the values read out of the rotation objects, for display.
func (pg *Playground) Text() string {
	return fmt.Sprintf("Rotation for up: %s\nRotation for right: %s", pg.RotationForUp, pg.RotationForRight)
}

// Sweep continuously swings an Arrow around an axis, taking Duration seconds per full turn and easing each turn with Easing.
type Sweep struct {
	Target   *Arrow
	Axis     Vector
	Duration float32       // Seconds per full turn; defaults to 4 if zero or less
	Easing   ease.TweenFunc // Defaults to ease.Linear if nil

	tween *gween.Tween
	base  Quaternion
}

// NewSweep creates a Sweep that turns the target Arrow around the axis given once every duration seconds.
func NewSweep(target *Arrow, axis Vector, duration float32, easing ease.TweenFunc) *Sweep {
	return &Sweep{
		Target:   target,
		Axis:     axis,
		Duration: duration,
		Easing:   easing,
	}
}

func (sweep *Sweep) Update(dt float64) {

	if sweep.Target == nil {
		return
	}

	if sweep.tween == nil {

		easing := sweep.Easing
		if easing == nil {
			easing = ease.Linear
		}

		sweep.tween = gween.New(0, 2*math.Pi, sweep.duration(), easing)
		sweep.base = sweep.Target.Rotation

	}

	angle, finished := sweep.tween.Update(float32(dt))

	// Carry the time past the end of the turn over into the next one.
	if finished {
		angle, _ = sweep.tween.Set(float32(math.Mod(float64(sweep.tween.Overflow), float64(sweep.duration()))))
	}

	sweep.Target.Rotation = NewAxisAngle(sweep.Axis, float64(angle)).ToQuaternion().Mult(sweep.base).Normalized()

}

func (sweep *Sweep) duration() float32 {
	if sweep.Duration <= 0 {
		return 4
	}
	return sweep.Duration
}

// Reset puts the target Arrow back to the rotation it had when the Sweep started, and restarts the Sweep on the next Update.
func (sweep *Sweep) Reset() {
	if sweep.tween != nil && sweep.Target != nil {
		sweep.Target.Rotation = sweep.base
	}
	sweep.tween = nil
}
