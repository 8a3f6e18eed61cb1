package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/substitute-soccer/config"
	"github.com/lafriks/go-tiled"
)

// Object group names in the pitch map.
const (
	groupStarts = "PlayerStart"
	groupPitch  = "Pitch"
	groupGoals  = "Goals"
)

// Load parses a TMX file into a Layout. It takes an fs.FS so callers can pass
// the embedded assets or an os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupStarts:
			for _, o := range og.Objects {
				layout.Starts = append(layout.Starts, StartPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("startIndex"),
				})
			}
		case groupPitch:
			if len(og.Objects) > 0 {
				layout.Pitch = rectOf(og.Objects[0])
			}
		case groupGoals:
			for _, o := range og.Objects {
				layout.Goals = append(layout.Goals, rectOf(o))
			}
		}
	}

	if len(layout.Starts) != len(config.Field.StartPositions) {
		return nil, fmt.Errorf("%s: want %d start points, got %d",
			tmxPath, len(config.Field.StartPositions), len(layout.Starts))
	}

	sort.Slice(layout.Starts, func(i, j int) bool {
		return layout.Starts[i].Index < layout.Starts[j].Index
	})
	sort.Slice(layout.Goals, func(i, j int) bool {
		return layout.Goals[i].Y < layout.Goals[j].Y
	})

	return layout, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Default builds the layout from the compiled-in field configuration.
func Default() *Layout {
	f := config.Field
	layout := &Layout{
		Width:  f.LevelW,
		Height: f.LevelH,
		Pitch: Rect{
			X: f.HalfLevelW() - f.HalfPitchW,
			Y: f.HalfLevelH() - f.HalfPitchH,
			W: 2 * f.HalfPitchW,
			H: 2 * f.HalfPitchH,
		},
	}
	goalX := f.HalfLevelW() - f.HalfGoalW()
	layout.Goals = []Rect{
		{X: goalX, Y: layout.Pitch.Y - f.GoalDepth, W: f.GoalWidth, H: f.GoalDepth},
		{X: goalX, Y: layout.Pitch.Y + layout.Pitch.H, W: f.GoalWidth, H: f.GoalDepth},
	}
	for i, p := range f.StartPositions {
		layout.Starts = append(layout.Starts, StartPoint{X: p[0], Y: p[1], Index: i})
	}
	return layout
}
