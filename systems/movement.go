package systems

import (
	stdmath "math"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement steps every player toward its target, one axis at a time,
// and advances facing and the walk cycle.
func UpdateMovement(e *ecs.ECS) {
	w := e.World
	ballPos := *components.Position.Get(mustBall(w))

	for _, p := range playersBySlot(w) {
		pos := components.Position.Get(p)
		target := components.Target.Get(p)
		anim := components.Animation.Get(p)

		delta := target.Position.Sub(*pos)
		desired := anim.Facing
		if delta.X == 0 && delta.Y == 0 {
			anim.Frame = 0
			if toBall := ballPos.Sub(*pos); toBall.X != 0 || toBall.Y != 0 {
				desired = gamemath.VecToAngle(toBall)
			}
		} else {
			step := gamemath.ClampLength(delta, target.Speed)
			nx, ny := pos.X+step.X, pos.Y+step.Y
			allowX := gamemath.AllowMovement(nx, pos.Y)
			allowY := gamemath.AllowMovement(pos.X, ny)
			if allowX {
				pos.X = nx
			}
			if allowY {
				pos.Y = ny
			}
			advance := stdmath.Min(step.Magnitude(), cfg.Player.MaxWalkAdvance)
			anim.Frame = stdmath.Mod(anim.Frame+advance, cfg.Player.WalkCycle)
			desired = gamemath.VecToAngle(step)
		}
		anim.Facing = gamemath.StepFacing(anim.Facing, desired)
		syncBody(p)
	}
}
