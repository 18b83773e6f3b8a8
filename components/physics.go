package components

import (
	"github.com/automoto/degauss/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AirSpeed is the vertical locomotion state. It is either Grounded or InAir.
type AirSpeed interface {
	airSpeed()
}

// Grounded holds the slope the character is standing on. Angle is in radians; SlopeQuat maps
// flat-ground motion onto the slope.
type Grounded struct {
	Angle     float64
	SlopeQuat mgl64.Quat
}

// InAir holds the signed vertical speed in units per second (up is positive).
type InAir struct {
	Speed float64
}

func (Grounded) airSpeed() {}
func (InAir) airSpeed()    {}

// NewGrounded is a fresh grounded state on flat ground.
func NewGrounded() Grounded {
	return Grounded{Angle: 0, SlopeQuat: mgl64.QuatIdent()}
}

// WallCollision is a one-slot mailbox for a contact normal. The collision stage posts into it
// and the ground follower takes from it; Take empties the slot.
type WallCollision struct {
	normal mgl64.Vec3
	full   bool
}

// Post stores n, replacing any normal not yet taken.
func (w *WallCollision) Post(n mgl64.Vec3) {
	w.normal = n
	w.full = true
}

// Take returns the stored normal and empties the mailbox.
func (w *WallCollision) Take() (mgl64.Vec3, bool) {
	n, ok := w.normal, w.full
	w.normal, w.full = mgl64.Vec3{}, false
	return n, ok
}

// Pending reports whether a normal is waiting.
func (w *WallCollision) Pending() bool { return w.full }

// PhysicsData is the per-character movement state carried between ticks. GroundSpeed and
// GroundDirection live in the character's local ground plane; GroundCastDirection is the
// world-space direction the ground probe sweeps, Down unless wall running. CeilingRunQuat is set
// only while the cast points Up after running up a wall onto a ceiling.
type PhysicsData struct {
	GroundSpeed         mgl64.Vec2
	GroundDirection     mgl64.Vec2
	GroundCastDirection mgl64.Vec3
	AirSpeed            AirSpeed
	WallRunning         bool
	WallCollision       WallCollision
	OverallRotation     mgl64.Quat
	CeilingRunQuat      *mgl64.Quat
}

// NewPhysicsData returns the spawn state, facing +X: falling from rest, or standing on flat
// ground.
func NewPhysicsData(grounded bool) PhysicsData {
	var air AirSpeed = InAir{Speed: 0}
	if grounded {
		air = NewGrounded()
	}
	return PhysicsData{
		GroundDirection:     mgl64.Vec2{1, 0},
		GroundCastDirection: gamemath.Down,
		AirSpeed:            air,
		OverallRotation:     mgl64.QuatIdent(),
	}
}

// IsGrounded reports whether the state is Grounded.
func (p *PhysicsData) IsGrounded() bool {
	_, ok := p.AirSpeed.(Grounded)
	return ok
}

var Physics = donburi.NewComponentType[PhysicsData]()
