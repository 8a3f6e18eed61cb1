package factory

import (
	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/gamemath"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Broad-phase box sizes. The ball box is twice the capture radius so any
// player able to take the ball shares a cell with it.
const (
	playerBodySize = 16
)

func CreatePlayer(ecs *ecs.ECS, slot, team int, home, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Position.SetValue(player, pos)
	components.Home.SetValue(player, home)
	components.Team.SetValue(player, team)
	components.Slot.SetValue(player, slot)
	components.Timer.SetValue(player, 0)
	components.Peer.SetValue(player, donburi.Null)
	components.Target.SetValue(player, components.TargetData{Position: pos, Speed: cfg.Player.DefaultSpeed})
	components.Animation.SetValue(player, components.AnimationData{
		Facing: gamemath.VecToAngle(math.Vec2{Y: attackDir(team)}),
	})
	components.Mark.SetValue(player, components.MarkData{Kind: components.MarkPlayer, Player: donburi.Null})
	components.Lead.Get(player).Clear()

	obj := resolv.NewObject(pos.X-playerBodySize/2, pos.Y-playerBodySize/2, playerBodySize, playerBodySize, tags.ResolvPlayer)
	obj.Data = player
	components.Body.SetValue(player, components.BodyData{Object: obj})
	mustSpace(ecs).Add(obj)

	return player
}

func attackDir(team int) float64 {
	if team == 0 {
		return -1
	}
	return 1
}
