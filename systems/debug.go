package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/fonts"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawDebug overlays the planner state enabled in cfg.Debug.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	d := cfg.Debug
	if !d.ShowTargets && !d.ShowLeads && !d.ShowPeers && !d.ShowShootTarget && !d.ShowBodies {
		return
	}

	match := mustMatch(e.World)
	off := viewOffset(e, screen)
	toScreen := func(p math.Vec2) (float32, float32) {
		s := p.Add(off)
		return float32(s.X), float32(s.Y)
	}

	for _, entry := range playersBySlot(e.World) {
		px, py := toScreen(*components.Position.Get(entry))

		if d.ShowTargets {
			tx, ty := toScreen(components.Target.Get(entry).Position)
			vector.StrokeLine(screen, px, py, tx, ty, 1, cfg.Cyan, false)
			vector.FillRect(screen, tx-2, ty-2, 4, 4, cfg.Cyan, false)
			if ip, ok := match.Intercepts[entry.Entity()]; ok {
				ix, iy := toScreen(ip)
				vector.StrokeCircle(screen, ix, iy, 4, 1, cfg.Magenta, false)
			}
		}

		if d.ShowPeers {
			peer := e.World.Entry(*components.Peer.Get(entry))
			qx, qy := toScreen(*components.Position.Get(peer))
			vector.StrokeLine(screen, px, py, qx, qy, 1, color.RGBA{R: 255, G: 255, B: 255, A: 80}, false)
		}

		if d.ShowLeads {
			if lead := components.Lead.Get(entry); lead.Rank != components.NoRank {
				label := fmt.Sprintf("L%d", lead.Rank)
				text.Draw(screen, label, fonts.Small.Get(), int(px)-6, int(py)-12, cfg.Yellow)
			}
		}
	}

	if d.ShowShootTarget && match.HasShootTarget {
		sx, sy := toScreen(match.ShootTarget)
		vector.StrokeCircle(screen, sx, sy, 8, 2, cfg.Red, false)
	}

	if d.ShowBodies {
		drawBodies(e, screen, off)
	}
}

func drawBodies(e *ecs.ECS, screen *ebiten.Image, off math.Vec2) {
	for entry := range components.Body.Iter(e.World) {
		obj := components.Body.Get(entry).Object
		c := cfg.Cyan
		if entry.HasComponent(tags.Ball) {
			c = cfg.Green
		}
		x := float32(obj.X + off.X)
		y := float32(obj.Y + off.Y)
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
	}
}
