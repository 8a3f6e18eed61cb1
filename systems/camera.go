package systems

import (
	"github.com/automoto/substitute-soccer/components"
	"github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/gamemath"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the camera focus toward the ball and keeps the viewport
// inside the level.
func UpdateCamera(e *ecs.ECS) {
	match := mustMatch(e.World)
	ballPos := *components.Position.Get(mustBall(e.World))

	step := gamemath.ClampLength(ballPos.Sub(match.Camera), config.Camera.MaxStep)
	match.Camera = ClampFocus(match.Camera.Add(step))
}

// ClampFocus restricts a camera centre so the screen never shows past the
// level edge.
func ClampFocus(focus math.Vec2) math.Vec2 {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := config.Field.LevelW
	levelHeight := config.Field.LevelH

	focus.X = gamemath.Clamp(focus.X, screenWidth/2, levelWidth-screenWidth/2)
	focus.Y = gamemath.Clamp(focus.Y, screenHeight/2, levelHeight-screenHeight/2)
	return focus
}
