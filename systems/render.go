package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/substitute-soccer/assets"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/gamemath"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

const (
	playerRadius  = 8
	ballRadius    = 5
	stripeHeight  = 100
	lineWidth     = 2
	centreRadius  = 90
	shadowOffsetY = 3
)

// viewOffset maps field space to screen space for the current camera focus.
func viewOffset(e *ecs.ECS, screen *ebiten.Image) math.Vec2 {
	focus := mustMatch(e.World).Camera
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return math.Vec2{X: float64(width)/2 - focus.X, Y: float64(height)/2 - focus.Y}
}

// DrawPitch renders the grass, the markings and both goals.
func DrawPitch(e *ecs.ECS, screen *ebiten.Image) {
	match := mustMatch(e.World)
	layout := match.Layout
	off := viewOffset(e, screen)

	screen.Fill(cfg.DarkGreen)

	for y := 0.0; y < layout.Height; y += 2 * stripeHeight {
		vector.FillRect(screen, float32(off.X), float32(y+off.Y), float32(layout.Width), stripeHeight, cfg.PitchGreen, false)
	}

	p := layout.Pitch
	vector.StrokeRect(screen, float32(p.X+off.X), float32(p.Y+off.Y), float32(p.W), float32(p.H), lineWidth, cfg.White, false)

	midY := float32(p.Y + p.H/2 + off.Y)
	vector.StrokeLine(screen, float32(p.X+off.X), midY, float32(p.X+p.W+off.X), midY, lineWidth, cfg.White, false)
	vector.StrokeCircle(screen, float32(p.X+p.W/2+off.X), midY, centreRadius, lineWidth, cfg.White, true)
	vector.FillCircle(screen, float32(p.X+p.W/2+off.X), midY, 3, cfg.White, true)

	for _, g := range layout.Goals {
		vector.FillRect(screen, float32(g.X+off.X), float32(g.Y+off.Y), float32(g.W), float32(g.H), color.RGBA{R: 220, G: 220, B: 220, A: 120}, false)
		vector.StrokeRect(screen, float32(g.X+off.X), float32(g.Y+off.Y), float32(g.W), float32(g.H), lineWidth, cfg.White, false)
	}
}

// NewDrawEntities returns a renderer for players and the ball, sorted so that
// lower entities draw on top. A nil texture set draws plain shapes.
func NewDrawEntities(textures *assets.Textures) func(*ecs.ECS, *ebiten.Image) {
	var sprites []*donburi.Entry
	return func(e *ecs.ECS, screen *ebiten.Image) {
		off := viewOffset(e, screen)

		sprites = sprites[:0]
		for entry := range tags.Player.Iter(e.World) {
			sprites = append(sprites, entry)
		}
		if ball, ok := tags.Ball.First(e.World); ok {
			sprites = append(sprites, ball)
		}
		sort.SliceStable(sprites, func(i, j int) bool {
			return components.Position.Get(sprites[i]).Y < components.Position.Get(sprites[j]).Y
		})

		var active [2]donburi.Entity
		for _, info := range teamInfos(e.World) {
			if info != nil {
				data := components.TeamInfo.Get(info)
				active[data.Team] = data.Active
			}
		}

		for _, entry := range sprites {
			pos := components.Position.Get(entry).Add(off)
			if entry.HasComponent(tags.Ball) {
				drawBall(screen, textures, pos)
				continue
			}
			if team := *components.Team.Get(entry); active[team] == entry.Entity() {
				vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), playerRadius+4, 1, cfg.Yellow, true)
			}
			drawPlayer(screen, textures, entry, pos)
		}
	}
}

func drawPlayer(screen *ebiten.Image, textures *assets.Textures, entry *donburi.Entry, pos math.Vec2) {
	team := *components.Team.Get(entry)
	anim := components.Animation.Get(entry)

	if textures != nil {
		img := textures.Player(team, anim.Facing, anim.FrameIndex(cfg.Player.WalkCycle))
		drawCentred(screen, img, pos)
		return
	}

	vector.FillCircle(screen, float32(pos.X), float32(pos.Y+shadowOffsetY), playerRadius, cfg.BlackOverlay, true)
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), playerRadius, cfg.TeamColors[team], true)

	dir := gamemath.AngleToVec(anim.Facing)
	tip := pos.Add(dir.MulScalar(playerRadius + 3))
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), lineWidth, cfg.White, true)
}

func drawBall(screen *ebiten.Image, textures *assets.Textures, pos math.Vec2) {
	if textures != nil {
		drawCentred(screen, textures.Ball(), pos)
		return
	}
	vector.FillCircle(screen, float32(pos.X+1), float32(pos.Y+shadowOffsetY), ballRadius, cfg.BlackOverlay, true)
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), ballRadius, cfg.White, true)
}

func drawCentred(screen *ebiten.Image, img *ebiten.Image, pos math.Vec2) {
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	b := img.Bounds()
	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, drawOp)
}
