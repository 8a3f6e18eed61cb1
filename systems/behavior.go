package systems

import (
	"sort"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateBehaviors assigns every player's mark and lead for this tick. With no
// ball owner everyone marks their peer and nobody leads.
func UpdateBehaviors(e *ecs.ECS) {
	w := e.World
	players := playersBySlot(w)
	for _, p := range players {
		components.Mark.SetValue(p, components.MarkData{
			Kind:   components.MarkPlayer,
			Player: *components.Peer.Get(p),
		})
		components.Lead.Get(p).Clear()
	}

	owner := ballOwner(w, mustBall(w))
	if owner == nil {
		return
	}

	match := mustMatch(w)
	preset := match.Preset()
	ownerTeam := *components.Team.Get(owner)
	defending := teamPlayers(players, 1-ownerTeam)
	goal := goalPoint(ownerTeam)

	if preset.GoalieEnabled {
		assignGoalie(w, owner, defending, goal)
	}

	humanActive := donburi.Null
	if info := components.TeamInfo.Get(teamInfos(w)[1-ownerTeam]); info.Human {
		humanActive = info.Active
	}

	ownerPos := *components.Position.Get(owner)
	candidates := make([]*donburi.Entry, 0, len(defending))
	for _, p := range defending {
		if *components.Timer.Get(p) != 0 || p.Entity() == humanActive {
			continue
		}
		if components.Mark.Get(p).Kind != components.MarkPlayer {
			continue
		}
		candidates = append(candidates, p)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		di := components.Position.Get(candidates[i]).Distance(ownerPos)
		dj := components.Position.Get(candidates[j]).Distance(ownerPos)
		return di < dj
	})

	var upfield, downfield []*donburi.Entry
	dir := attackDir(ownerTeam)
	for _, p := range candidates {
		if (components.Position.Get(p).Y-ownerPos.Y)*dir > 0 {
			upfield = append(upfield, p)
		} else {
			downfield = append(downfield, p)
		}
	}

	for rank, p := range interleaveLeads(upfield, downfield) {
		lead := components.Lead.Get(p)
		lead.Rank = rank
		switch {
		case rank == 0:
			lead.Distance, lead.HasDistance = cfg.Player.LeadDistance1, true
		case rank == 1 && preset.SecondLeadEnabled:
			lead.Distance, lead.HasDistance = cfg.Player.LeadDistance2, true
		}
	}
}

// assignGoalie sends the defender nearest the threatened goal back to guard
// it. The owner's peer takes over whoever the goalie was marking.
func assignGoalie(w donburi.World, owner *donburi.Entry, defending []*donburi.Entry, goal math.Vec2) {
	goalie := nearest(defending, goal, nil)
	if goalie == nil {
		return
	}
	previous := *components.Mark.Get(goalie)
	if peer := *components.Peer.Get(owner); w.Valid(peer) {
		components.Mark.SetValue(w.Entry(peer), previous)
	}
	components.Mark.SetValue(goalie, components.MarkData{
		Kind: components.MarkGoal,
		Goal: goal,
	})
}

// interleaveLeads alternates upfield and downfield candidates, nearest
// first. Both lists are padded with two empty slots and paired off, so the
// ranking stops two places past the shorter list.
func interleaveLeads[T any](upfield, downfield []T) []T {
	n := min(len(upfield), len(downfield)) + 2
	out := make([]T, 0, len(upfield)+len(downfield))
	for i := 0; i < n; i++ {
		if i < len(upfield) {
			out = append(out, upfield[i])
		}
		if i < len(downfield) {
			out = append(out, downfield[i])
		}
	}
	return out
}
