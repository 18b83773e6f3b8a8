package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/spatial"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view projects world points into one half of the screen. The top view looks down -Y with +Z
// toward the bottom of the screen; the side view looks along +Z.
type view struct {
	originX, originY float64
	center           mgl64.Vec3
	scale            float64
	side             bool
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	d := p.Sub(v.center)
	if v.side {
		return float32(v.originX + d[0]*v.scale), float32(v.originY - d[1]*v.scale)
	}
	return float32(v.originX + d[0]*v.scale), float32(v.originY + d[2]*v.scale)
}

func (v view) line(screen *ebiten.Image, a, b mgl64.Vec3, c color.Color) {
	x0, y0 := v.project(a)
	x1, y1 := v.project(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
}

// DrawDebug draws colliders, character probes and state in a top view and a side view.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	env, ok := getEnvironment(ecs)
	if !ok {
		return
	}
	var center mgl64.Vec3
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		center = components.Camera.Get(cameraEntry).Position
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	scale := config.C.PixelsPerUnit
	views := []view{
		{originX: width / 4, originY: height / 2, center: center, scale: scale},
		{originX: 3 * width / 4, originY: height / 2, center: center, scale: scale, side: true},
	}
	vector.StrokeLine(screen, float32(width/2), 0, float32(width/2), float32(height), 1, config.Grey, false)

	for _, c := range env.Colliders() {
		clr := colliderColor(c.Layer)
		for _, v := range views {
			drawCollider(screen, v, c, clr)
		}
	}

	line := 0
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) || !e.HasComponent(components.Physics) {
			return
		}
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)
		for _, v := range views {
			drawCharacterProbes(screen, v, e, body, physics)
		}
		ebitenutil.DebugPrintAt(screen, characterSummary(e, body, physics), 8, 8+line*16)
		line++
	})
}

func colliderColor(layer spatial.Layer) color.Color {
	switch {
	case layer&spatial.LayerCharacter != 0:
		return config.LightBlue
	case layer&spatial.LayerDynamic != 0:
		return config.Orange
	}
	return config.White
}

func drawCollider(screen *ebiten.Image, v view, c spatial.Collider, clr color.Color) {
	switch s := c.Shape.(type) {
	case spatial.Sphere:
		x, y := v.project(c.Position)
		vector.StrokeCircle(screen, x, y, float32(s.Radius*v.scale), 1, clr, true)
	case spatial.Box:
		corners := boxCorners(c.Position, c.Rotation, s.HalfExtents)
		for i := 0; i < 8; i++ {
			for bit := 1; bit < 8; bit <<= 1 {
				if j := i | bit; j != i {
					v.line(screen, corners[i], corners[j], clr)
				}
			}
		}
	}
}

func boxCorners(pos mgl64.Vec3, rot mgl64.Quat, half mgl64.Vec3) [8]mgl64.Vec3 {
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		local := half
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) == 0 {
				local[axis] = -local[axis]
			}
		}
		out[i] = pos.Add(rot.Rotate(local))
	}
	return out
}

func drawCharacterProbes(screen *ebiten.Image, v view, e *donburi.Entry, body *components.BodyData, physics *components.PhysicsData) {
	if !config.Debug.DrawProbes {
		return
	}
	pos := body.Position
	v.line(screen, pos, pos.Add(physics.GroundCastDirection), config.Yellow)
	v.line(screen, pos, pos.Add(body.LinearVelocity.Mul(0.1)), config.Green)

	if !e.HasComponent(components.FloorInfo) {
		return
	}
	floor := components.FloorInfo.Get(e)
	for _, p := range []*mgl64.Vec3{floor.FrontContact, floor.BackContact} {
		if p == nil {
			continue
		}
		x, y := v.project(*p)
		vector.FillCircle(screen, x, y, 2, config.Red, true)
	}
	if floor.NearObstacle {
		x, y := v.project(pos)
		vector.StrokeCircle(screen, x, y, 6, 1, config.Purple, true)
	}
}

func characterSummary(e *donburi.Entry, body *components.BodyData, physics *components.PhysicsData) string {
	state := "?"
	switch s := physics.AirSpeed.(type) {
	case components.Grounded:
		state = fmt.Sprintf("grounded angle=%.1f", mgl64.RadToDeg(s.Angle))
	case components.InAir:
		state = fmt.Sprintf("in air speed=%.2f", s.Speed)
	}
	anim := ""
	if e.HasComponent(components.Animation) {
		anim = components.Animation.Get(e).State.String()
	}
	return fmt.Sprintf("%v pos=(%.2f %.2f %.2f) gs=%.2f %s wall=%v %s",
		e.Entity(), body.Position[0], body.Position[1], body.Position[2],
		physics.GroundSpeed.Len(), state, physics.WallRunning, anim)
}
