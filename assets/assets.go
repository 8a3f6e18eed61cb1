package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/automoto/substitute-soccer/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// PitchLevel is the path of the pitch map inside the embedded assets.
const PitchLevel = "levels/pitch.tmx"

// ErrTextureNotFound is wrapped by texture loading errors for a missing key.
var ErrTextureNotFound = errors.New("texture not found")

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// MustLoadLayout parses the embedded pitch map.
func MustLoadLayout() *leveldata.Layout {
	layout, err := leveldata.Load(assetFS, PitchLevel)
	if err != nil {
		panic(err)
	}
	return layout
}

// Sprite frames per facing and facings per team.
const (
	Facings         = 8
	FramesPerFacing = 8
)

// PlayerKey names the sprite for a team, facing octant and walk frame.
func PlayerKey(team, facing, frame int) string {
	return fmt.Sprintf("team%d/dir%d_%d.png", team, facing, frame)
}

// BallKey names the ball sprite.
const BallKey = "ball.png"

// TextureKeys lists every sprite a texture directory must provide.
func TextureKeys() []string {
	keys := make([]string, 0, 2*Facings*FramesPerFacing+1)
	for team := 0; team < 2; team++ {
		for facing := 0; facing < Facings; facing++ {
			for frame := 0; frame < FramesPerFacing; frame++ {
				keys = append(keys, PlayerKey(team, facing, frame))
			}
		}
	}
	return append(keys, BallKey)
}

// Textures holds the decoded sprite images, keyed by TextureKeys.
type Textures struct {
	images map[string]*ebiten.Image
}

// LoadTextures reads every texture key from fsys. A missing key fails the
// whole load with an error naming it.
func LoadTextures(fsys fs.FS) (*Textures, error) {
	keys := TextureKeys()
	for _, key := range keys {
		if _, err := fs.Stat(fsys, key); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load texture %q: %w", key, ErrTextureNotFound)
			}
			return nil, fmt.Errorf("load texture %q: %w", key, err)
		}
	}

	t := &Textures{images: make(map[string]*ebiten.Image, len(keys))}
	for _, key := range keys {
		imgBytes, err := fs.ReadFile(fsys, key)
		if err != nil {
			return nil, fmt.Errorf("load texture %q: %w", key, err)
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			return nil, fmt.Errorf("decode texture %q: %w", key, err)
		}
		t.images[key] = img
	}
	return t, nil
}

// Player returns the sprite for a player pose.
func (t *Textures) Player(team, facing, frame int) *ebiten.Image {
	return t.images[PlayerKey(team, facing, frame)]
}

// Ball returns the ball sprite.
func (t *Textures) Ball() *ebiten.Image {
	return t.images[BallKey]
}

var pixel *ebiten.Image

// Pixel returns a 1x1 white image for drawing tinted primitives.
func Pixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}
