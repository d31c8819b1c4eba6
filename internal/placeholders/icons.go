// Package placeholders draws stand-in art so the game runs without an
// artist's assets: the three arrow icons of the on-screen controller.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"
)

// IconSize is the width and height of a generated icon in pixels.
const IconSize = 32

// Direction is the way an arrow points.
type Direction int

const (
	Left Direction = iota
	Right
	Up
)

// ColorPalette defines the icon colors.
var ColorPalette = struct {
	Background color.RGBA
	Arrow      color.RGBA
}{
	Background: color.RGBA{40, 40, 45, 160}, // Translucent dark gray
	Arrow:      color.RGBA{230, 230, 230, 255},
}

// CreateArrowIcon draws an arrow pointing dir on a rounded backdrop.
func CreateArrowIcon(dir Direction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))

	// Make background transparent
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	fillCircle(img, ColorPalette.Background)

	s := float32(IconSize)
	z := vector.NewRasterizer(IconSize, IconSize)
	switch dir {
	case Left:
		z.MoveTo(s*0.25, s*0.5)
		z.LineTo(s*0.7, s*0.22)
		z.LineTo(s*0.7, s*0.78)
	case Right:
		z.MoveTo(s*0.75, s*0.5)
		z.LineTo(s*0.3, s*0.22)
		z.LineTo(s*0.3, s*0.78)
	case Up:
		z.MoveTo(s*0.5, s*0.25)
		z.LineTo(s*0.78, s*0.7)
		z.LineTo(s*0.22, s*0.7)
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), &image.Uniform{ColorPalette.Arrow}, image.Point{})

	return img
}

// fillCircle fills the largest circle that fits in img.
func fillCircle(img *image.RGBA, col color.RGBA) {
	center := IconSize / 2
	radius := IconSize/2 - 1

	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			dx := x - center
			dy := y - center
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, col)
			}
		}
	}
}

// IconNames maps each direction to the file it is saved as.
type IconNames struct {
	Left  string
	Right string
	Up    string
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateIcons writes the three arrow icons into dir, creating it if
// needed, and returns the paths written.
func GenerateIcons(dir string, names IconNames) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	icons := []struct {
		name string
		dir  Direction
	}{
		{names.Left, Left},
		{names.Right, Right},
		{names.Up, Up},
	}

	var written []string
	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := SavePNG(CreateArrowIcon(icon.dir), path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
