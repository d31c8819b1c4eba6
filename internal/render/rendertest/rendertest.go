// Package rendertest provides recording implementations of the render
// interfaces so game code can be tested without a window or GPU.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/platformkit/internal/render"
)

// DrawCall records one DrawImage call on an Image.
type DrawCall struct {
	Src    *Image
	X, Y   float64
	ScaleX float64
	ScaleY float64
}

// TextCall records one Renderer.DrawText call.
type TextCall struct {
	Dst   render.Image
	Text  string
	X, Y  float64
	Color color.Color
}

// Image is an in-memory render.Image that records what was drawn onto it.
type Image struct {
	Name          string
	Width, Height int
	Draws         []DrawCall
	DisposeCount  int
}

// NewImage returns a named image of the given size.
func NewImage(name string, width, height int) *Image {
	return &Image{Name: name, Width: width, Height: height}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.Width, i.Height) }
func (i *Image) Size() (width, height int) { return i.Width, i.Height }
func (i *Image) Fill(clr color.Color) {}
func (i *Image) Clear() {}
func (i *Image) Dispose() { i.DisposeCount++ }
func (i *Image) IsDisposed() bool { return i.DisposeCount > 0 }
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src.(*Image), ScaleX: 1, ScaleY: 1}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			call.X, call.Y = g.TX, g.TY
			call.ScaleX, call.ScaleY = g.SX, g.SY
		}
	}
	i.Draws = append(i.Draws, call)
}

// GeoM is a scale-then-translate matrix, which is all the game code composes.
type GeoM struct {
	SX, SY float64
	TX, TY float64
}

// NewGeoM returns an identity matrix.
func NewGeoM() *GeoM {
	return &GeoM{SX: 1, SY: 1}
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Reset() {
	*g = GeoM{SX: 1, SY: 1}
}

// Font is a monospace font: every rune is CharWidth wide.
type Font struct {
	CharWidth float64
	Height    float64
}

// Measure returns len(runes)*CharWidth by Height.
func (f *Font) Measure(text string) (width, height float64) {
	return float64(len([]rune(text))) * f.CharWidth, f.Height
}

// LineHeight returns Height.
func (f *Font) LineHeight() float64 {
	return f.Height
}

// FixedFont always reports the same width, whatever the text.
type FixedFont struct {
	Width  float64
	Height float64
}

func (f *FixedFont) Measure(string) (width, height float64) { return f.Width, f.Height }
func (f *FixedFont) LineHeight() float64 { return f.Height }

// Renderer records text calls and hands out recording images.
type Renderer struct {
	Texts []TextCall
	Rects int
}

func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage("", width, height)
}

func (r *Renderer) NewGeoM() render.GeoM {
	return NewGeoM()
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Rects++
}

func (r *Renderer) DrawText(dst render.Image, text string, font render.Font, x, y float64, clr color.Color) {
	r.Texts = append(r.Texts, TextCall{Dst: dst, Text: text, X: x, Y: y, Color: clr})
}

// Pointer is the raw state of one pointer slot.
type Pointer struct {
	Active bool
	X, Y   int
}

// Input is a scripted render.InputManager.
type Input struct {
	Keys     map[render.Key]bool
	Just     map[render.Key]bool
	Pointers []Pointer
}

// NewInput returns an input with nothing pressed.
func NewInput() *Input {
	return &Input{Keys: map[render.Key]bool{}, Just: map[render.Key]bool{}}
}

// Touch makes slot active at (x, y), growing the slot list as needed.
func (in *Input) Touch(slot, x, y int) {
	for len(in.Pointers) <= slot {
		in.Pointers = append(in.Pointers, Pointer{})
	}
	in.Pointers[slot] = Pointer{Active: true, X: x, Y: y}
}

// Release clears every key and pointer.
func (in *Input) Release() {
	in.Keys = map[render.Key]bool{}
	in.Just = map[render.Key]bool{}
	in.Pointers = nil
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Keys[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }

func (in *Input) IsPointerActive(slot int) bool {
	return slot < len(in.Pointers) && in.Pointers[slot].Active
}

func (in *Input) PointerPosition(slot int) (x, y int) {
	if slot >= len(in.Pointers) {
		return 0, 0
	}
	return in.Pointers[slot].X, in.Pointers[slot].Y
}

// Loader serves Images by name and records what was loaded.
type Loader struct {
	Images map[string]*Image
	Loaded []string
}

// NewLoader returns a loader that serves a square image of size for each name.
func NewLoader(size int, names ...string) *Loader {
	l := &Loader{Images: map[string]*Image{}}
	for _, n := range names {
		l.Images[n] = NewImage(n, size, size)
	}
	return l
}

func (l *Loader) LoadImage(name string) (render.Image, error) {
	img, ok := l.Images[name]
	if !ok {
		return nil, fmt.Errorf("asset %s not found", name)
	}
	l.Loaded = append(l.Loaded, name)
	return img, nil
}

var (
	_ render.Image          = (*Image)(nil)
	_ render.Renderer       = (*Renderer)(nil)
	_ render.Font           = (*Font)(nil)
	_ render.InputManager   = (*Input)(nil)
	_ render.ResourceLoader = (*Loader)(nil)
)
