// pkg/render/fonts.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор начертаний для заголовка, номера уровня и подсказок
type Fonts struct {
	Title font.Face
	Level font.Face
	Hint  font.Face
}

// LoadFonts разбирает встроенный Go Regular и создаёт начертания нужных размеров.
func LoadFonts(titleSize, levelSize, hintSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	newFace := func(size float64) (font.Face, error) {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create %vpt face: %w", size, err)
		}
		return face, nil
	}

	f := &Fonts{}
	if f.Title, err = newFace(titleSize); err != nil {
		return nil, err
	}
	if f.Level, err = newFace(levelSize); err != nil {
		return nil, err
	}
	if f.Hint, err = newFace(hintSize); err != nil {
		return nil, err
	}
	return f, nil
}
