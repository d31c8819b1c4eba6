package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/platformkit/internal/render"
)

// EbitenFont implements render.Font on top of a text/v2 face.
type EbitenFont struct {
	face text.Face
}

// NewBasicFont returns the fixed 7x13 bitmap font.
func NewBasicFont() *EbitenFont {
	return &EbitenFont{face: text.NewGoXFace(basicfont.Face7x13)}
}

// NewTTFFont parses a TrueType or OpenType font and returns it at size pixels.
func NewTTFFont(ttf []byte, size float64) (*EbitenFont, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &EbitenFont{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// NewGoRegularFont returns the embedded Go Regular font at size pixels.
func NewGoRegularFont(size float64) (*EbitenFont, error) {
	return NewTTFFont(goregular.TTF, size)
}

// Measure returns the width and height of str.
func (f *EbitenFont) Measure(str string) (width, height float64) {
	return text.Measure(str, f.face, f.LineHeight())
}

// LineHeight is ascent plus descent plus line gap.
func (f *EbitenFont) LineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

var _ render.Font = (*EbitenFont)(nil)
