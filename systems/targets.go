package systems

import (
	stdmath "math"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// maxInterceptTicks bounds the trajectory search for a ball that somehow
// never slows down.
const maxInterceptTicks = 1000

// UpdateTargets writes each player's movement goal and speed for this tick.
func UpdateTargets(e *ecs.ECS) {
	w := e.World
	match := mustMatch(w)
	teams := teamInfos(w)
	ball := mustBall(w)
	ballPos := *components.Position.Get(ball)
	owner := ballOwner(w, ball)

	for _, p := range playersBySlot(w) {
		pos := *components.Position.Get(p)
		team := *components.Team.Get(p)
		info := components.TeamInfo.Get(teams[team])

		if match.Kickoff != donburi.Null && match.Kickoff != p.Entity() {
			components.Target.SetValue(p, components.TargetData{Position: pos, Speed: cfg.Player.DefaultSpeed})
			continue
		}

		if info.Human && info.Active == p.Entity() {
			move := components.Controls.Get(teams[team]).Move
			move = gamemath.ClampLength(move.MulScalar(cfg.Player.HumanInputMagnitude), cfg.Player.HumanInputMagnitude)
			speed := cfg.Player.HumanWithoutBall
			if owner != nil && owner.Entity() == p.Entity() {
				speed = cfg.Player.HumanWithBallSpeed
			}
			components.Target.SetValue(p, components.TargetData{Position: pos.Add(move), Speed: speed})
			continue
		}

		target := components.TargetData{
			Position: *components.Home.Get(p),
			Speed:    cfg.Player.DefaultSpeed,
		}
		switch {
		case owner == nil:
			target = interceptTarget(ball, pos)
			if match.Intercepts != nil {
				match.Intercepts[p.Entity()] = target.Position
			}
		case owner.Entity() == p.Entity():
			// Dribbling players hold their home target.
		case *components.Team.Get(owner) == team:
			supportTarget(&target, team, ballPos)
		default:
			defendTarget(w, &target, p, owner, info.Human, teams, ballPos)
		}
		components.Target.SetValue(p, target)
	}
}

// supportTarget moves a teammate of the owner halfway toward a point ahead of
// the ball when the play is near their home.
func supportTarget(target *components.TargetData, team int, ballPos math.Vec2) {
	if stdmath.Abs(ballPos.Y-target.Position.Y) >= cfg.Player.ActiveRange {
		return
	}
	ahead := math.Vec2{X: ballPos.X, Y: ballPos.Y + attackDir(team)*cfg.Player.SupportAhead}
	target.Position = gamemath.Midpoint(target.Position, ahead)
}

// defendTarget handles a player whose opponent has the ball: lead players
// cut off the owner's path, the rest mark.
func defendTarget(w donburi.World, target *components.TargetData, p, owner *donburi.Entry, human bool, teams [2]*donburi.Entry, ballPos math.Vec2) {
	lead := components.Lead.Get(p)
	if lead.HasDistance {
		ownerPos := *components.Position.Get(owner)
		facing := gamemath.AngleToVec(components.Animation.Get(owner).Facing)
		predicted := ownerPos.Add(facing.MulScalar(lead.Distance))
		f := cfg.Field
		target.Position = math.Vec2{
			X: gamemath.Clamp(predicted.X, f.AIMinX, f.AIMaxX),
			Y: gamemath.Clamp(predicted.Y, f.AIMinY, f.AIMaxY),
		}
		target.Speed = cfg.Player.LeadBaseSpeed
		if components.TeamInfo.Get(teams[*components.Team.Get(owner)]).Human {
			target.Speed += mustMatch(w).Preset().SpeedBoost
		}
		return
	}

	mark := components.Mark.Get(p)
	markPos, ok := markPoint(w, mark)
	if !ok || stdmath.Abs(markPos.Y-ballPos.Y) >= cfg.Player.ActiveRange {
		return
	}
	if human {
		target.Position = ballPos
		return
	}
	dir, dist := gamemath.SafeNormalise(ballPos.Sub(markPos))
	offset := dist / 2
	if mark.Kind == components.MarkGoal {
		offset = stdmath.Min(dist, cfg.Player.GoalMarkOffset)
	}
	target.Position = markPos.Add(dir.MulScalar(offset))
}

// markPoint resolves a mark to a field position.
func markPoint(w donburi.World, mark *components.MarkData) (math.Vec2, bool) {
	if mark.Kind == components.MarkGoal {
		return mark.Goal, true
	}
	if !w.Valid(mark.Player) {
		return math.Vec2{}, false
	}
	return *components.Position.Get(w.Entry(mark.Player)), true
}

// interceptTarget runs the free ball forward until the player could reach it
// in the same number of ticks, or until it has all but stopped.
func interceptTarget(ball *donburi.Entry, pos math.Vec2) components.TargetData {
	bp := *components.Position.Get(ball)
	bv, _ := components.Ball.Get(ball).Velocity()
	b := cfg.Ball
	for t := 1; t <= maxInterceptTicks; t++ {
		bp = bp.Add(bv)
		bv = bv.MulScalar(b.Drag)
		reach := cfg.Player.InterceptSpeed*float64(t) + b.CaptureRadius
		if bp.Distance(pos) < reach || bv.Magnitude() < b.StopSpeed {
			break
		}
	}
	return components.TargetData{Position: bp, Speed: cfg.Player.InterceptSpeed}
}
