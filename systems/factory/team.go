package factory

import (
	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTeam spawns the persistent per-team state. The active player is
// filled in by ResetMatch.
func CreateTeam(ecs *ecs.ECS, team int, human bool) *donburi.Entry {
	entry := archetypes.Team.Spawn(ecs)
	components.TeamInfo.SetValue(entry, components.TeamInfoData{
		Team:   team,
		Human:  human,
		Active: donburi.Null,
	})
	components.Controls.SetValue(entry, components.ControlsData{})
	return entry
}
