package factory

import (
	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBall spawns the ball at rest.
func CreateBall(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	components.Position.SetValue(ball, pos)
	components.Ball.SetValue(ball, components.BallData{State: components.Free{}})
	components.Timer.SetValue(ball, 0)

	size := 2 * cfg.Ball.CaptureRadius
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvBall)
	obj.Data = ball
	components.Body.SetValue(ball, components.BodyData{Object: obj})
	mustSpace(ecs).Add(obj)

	return ball
}
