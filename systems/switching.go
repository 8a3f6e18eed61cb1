package systems

import (
	"github.com/automoto/substitute-soccer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTeamSwitching hands a team's control to the player nearest the ball
// when its shoot control is pressed without a kick. While the ball is owned,
// players ahead of it count as half as far away.
func UpdateTeamSwitching(e *ecs.ECS) {
	w := e.World
	match := mustMatch(w)
	teams := teamInfos(w)
	ball := mustBall(w)
	ballPos := *components.Position.Get(ball)
	owned := ballOwner(w, ball) != nil
	players := playersBySlot(w)

	for team, entry := range teams {
		if !components.Controls.Get(entry).Shoot || match.Shot[team] {
			continue
		}
		var weight func(*donburi.Entry) float64
		if owned {
			dir := attackDir(team)
			weight = func(p *donburi.Entry) float64 {
				if (components.Position.Get(p).Y-ballPos.Y)*dir > 0 {
					return 0.5
				}
				return 1
			}
		}
		if best := nearest(teamPlayers(players, team), ballPos, weight); best != nil {
			components.TeamInfo.Get(entry).Active = best.Entity()
		}
	}
}
