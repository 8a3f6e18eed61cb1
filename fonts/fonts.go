package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face from the Go fonts.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 14); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, gobold.TTF, 20); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 36); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, 11)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
