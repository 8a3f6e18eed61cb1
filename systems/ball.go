package systems

import (
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/gamemath"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateBall moves the ball, hands it to whoever reaches it and lets the
// owner shoot or pass.
func UpdateBall(e *ecs.ECS) {
	w := e.World
	ball := mustBall(w)

	moveBall(w, ball)
	syncBody(ball)
	acquire(w, ball)
	evaluateShot(w, ball)
}

func moveBall(w donburi.World, ball *donburi.Entry) {
	pos := components.Position.Get(ball)
	data := components.Ball.Get(ball)

	switch st := data.State.(type) {
	case components.Free:
		bx, by := gamemath.BallBounds(*pos)
		v := st.Velocity
		pos.X, v.X = gamemath.BounceStep(pos.X, v.X, bx.Min, bx.Max, cfg.Ball.Drag)
		pos.Y, v.Y = gamemath.BounceStep(pos.Y, v.Y, by.Min, by.Max, cfg.Ball.Drag)
		data.State = components.Free{Velocity: v}

	case components.Dribbled:
		if !w.Valid(st.Owner) {
			data.State = components.Free{}
			return
		}
		owner := w.Entry(st.Owner)
		ownerPos := *components.Position.Get(owner)
		facing := gamemath.AngleToVec(components.Animation.Get(owner).Facing)
		anchor := math.Vec2{
			X: ownerPos.X + cfg.Ball.DribbleDistX*facing.X,
			Y: ownerPos.Y + cfg.Ball.DribbleDistY*facing.Y,
		}
		nx, ny := ease(pos.X, anchor.X), ease(pos.Y, anchor.Y)
		if gamemath.OnPitch(nx, ny) {
			pos.X, pos.Y = nx, ny
			return
		}
		components.Timer.SetValue(owner, cfg.Player.LossCooldown)
		data.State = components.Free{Velocity: facing.MulScalar(cfg.Ball.LooseKickSpeed)}
	}
}

// ease halves the gap to the anchor, snapping once it is under a pixel.
func ease(current, anchor float64) float64 {
	d := anchor - current
	if d > -1 && d < 1 {
		return anchor
	}
	return (current + anchor) / 2
}

// acquire gives the ball to any eligible player touching it. Players are
// scanned in slot order and a later match overrides an earlier one.
func acquire(w donburi.World, ball *donburi.Entry) {
	candidates := touchingPlayers(ball)
	if len(candidates) == 0 {
		return
	}

	match := mustMatch(w)
	teams := teamInfos(w)
	data := components.Ball.Get(ball)
	ballPos := *components.Position.Get(ball)
	owner := ballOwner(w, ball)

	for _, p := range playersBySlot(w) {
		if !candidates[p.Entity()] {
			continue
		}
		team := *components.Team.Get(p)
		if owner != nil && *components.Team.Get(owner) == team {
			continue
		}
		if *components.Timer.Get(p) != 0 {
			continue
		}
		if components.Position.Get(p).Distance(ballPos) > cfg.Ball.CaptureRadius {
			continue
		}

		if owner != nil {
			components.Timer.SetValue(owner, cfg.Player.LossCooldown)
		}
		data.State = components.Dribbled{Owner: p.Entity()}
		components.TeamInfo.Get(teams[team]).Active = p.Entity()
		components.Timer.SetValue(ball, match.Preset().HoldoffTimer)
		match.Kickoff = donburi.Null
		owner = p

		if match.Log != nil {
			match.Log.Debug("possession", "team", team, "slot", *components.Slot.Get(p), "tick", match.Tick)
		}
	}
}

// touchingPlayers uses the broad phase to find players whose bodies share a
// cell with the ball's capture box.
func touchingPlayers(ball *donburi.Entry) map[donburi.Entity]bool {
	body := components.Body.Get(ball)
	if body.Object == nil || body.Space == nil {
		return nil
	}
	collision := body.Check(0, 0, tags.ResolvPlayer)
	if collision == nil {
		return nil
	}
	found := make(map[donburi.Entity]bool, len(collision.Objects))
	for _, obj := range collision.Objects {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			found[entry.Entity()] = true
		}
	}
	return found
}

// shotCandidate is a pass receiver, or the goal when player is nil.
type shotCandidate struct {
	player *donburi.Entry
	point  math.Vec2
}

// evaluateShot picks the owner's aim point and kicks when the owner's
// controller asks for it.
func evaluateShot(w donburi.World, ball *donburi.Entry) {
	owner := ballOwner(w, ball)
	if owner == nil {
		return
	}

	match := mustMatch(w)
	teams := teamInfos(w)
	team := *components.Team.Get(owner)
	info := components.TeamInfo.Get(teams[team])
	players := playersBySlot(w)

	choice, ok := chooseShot(owner, players, !info.Human)
	if ok {
		match.ShootTarget, match.HasShootTarget = choice.point, true
	}

	var shoot bool
	if info.Human {
		shoot = components.Controls.Get(teams[team]).Shoot
	} else {
		ownerPos := *components.Position.Get(owner)
		shoot = *components.Timer.Get(ball) == 0 && ok &&
			(choice.point.Y-ownerPos.Y)*attackDir(team) > 0
	}
	if !shoot {
		return
	}

	kick(w, ball, owner, players, info, choice, ok)
	match.Shot[team] = true
}

// chooseShot returns the nearest teammate or goal inside the owner's forward
// cone and shot range. Computer owners also skip targets with an opponent
// standing closer along the line to that target.
func chooseShot(owner *donburi.Entry, players []*donburi.Entry, checkBlocked bool) (shotCandidate, bool) {
	team := *components.Team.Get(owner)
	ownerPos := *components.Position.Get(owner)
	facing := gamemath.AngleToVec(components.Animation.Get(owner).Facing)

	var opponents []math.Vec2
	candidates := make([]shotCandidate, 0, len(players)/2+1)
	for _, p := range players {
		switch {
		case *components.Team.Get(p) != team:
			if checkBlocked {
				opponents = append(opponents, *components.Position.Get(p))
			}
		case p.Entity() != owner.Entity():
			candidates = append(candidates, shotCandidate{player: p, point: *components.Position.Get(p)})
		}
	}
	candidates = append(candidates, shotCandidate{point: goalPoint(team)})

	var best shotCandidate
	bestDist, found := 0.0, false
	for _, c := range candidates {
		dir, d := gamemath.SafeNormalise(c.point.Sub(ownerPos))
		if d <= 0 || d > cfg.Ball.ShotRange || dir.Dot(&facing) <= cfg.Ball.ShotCone {
			continue
		}
		if found && d >= bestDist {
			continue
		}
		if shotBlocked(ownerPos, dir, d, opponents) {
			continue
		}
		best, bestDist, found = c, d, true
	}
	return best, found
}

// shotBlocked reports whether an opponent stands nearer than dist along dir.
func shotBlocked(from, dir math.Vec2, dist float64, opponents []math.Vec2) bool {
	for _, o := range opponents {
		odir, od := gamemath.SafeNormalise(o.Sub(from))
		if od > 0 && od < dist && odir.Dot(&dir) > cfg.Ball.ShotCone {
			return true
		}
	}
	return false
}

// kick releases the ball toward the chosen target, or straight ahead when
// there is none, and hands the team's control to the expected receiver.
func kick(w donburi.World, ball, owner *donburi.Entry, players []*donburi.Entry, info *components.TeamInfoData, choice shotCandidate, hasTarget bool) {
	ballPos := *components.Position.Get(ball)
	facing := gamemath.AngleToVec(components.Animation.Get(owner).Facing)
	team := *components.Team.Get(owner)

	dir := facing
	switch {
	case hasTarget && choice.player != nil:
		info.Active = choice.player.Entity()
		aim := choice.point
		if info.Human {
			dir = leadDirection(aim, facing, ballPos)
		} else if d, l := gamemath.SafeNormalise(aim.Sub(ballPos)); l > 0 {
			dir = d
		}
	case hasTarget:
		if d, l := gamemath.SafeNormalise(choice.point.Sub(ballPos)); l > 0 {
			dir = d
		}
	default:
		ahead := ballPos.Add(facing.MulScalar(cfg.Ball.FallbackAhead))
		if receiver := nearest(teamPlayers(players, team), ahead, nil); receiver != nil {
			info.Active = receiver.Entity()
		}
	}

	components.Timer.SetValue(owner, cfg.Player.KickCooldown)
	components.Ball.Get(ball).State = components.Free{
		Velocity: dir.MulScalar(cfg.Ball.KickStrength),
	}
}

// leadDirection aims a pass ahead of a running receiver. The lead grows with
// the ball's travel time to the leading point and is refined a fixed number
// of times.
func leadDirection(target, facing, ballPos math.Vec2) math.Vec2 {
	dir := facing
	lead := 0.0
	for i := 0; i < cfg.Ball.LeadIterations; i++ {
		point := target.Add(facing.MulScalar(lead))
		d, l := gamemath.SafeNormalise(point.Sub(ballPos))
		if l > 0 {
			dir = d
		}
		lead = cfg.Player.HumanWithoutBall * float64(gamemath.Steps(l))
	}
	return dir
}
