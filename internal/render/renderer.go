// Package render draws the visible scene surface with ebiten.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/worldofwater/waterworld/internal/scene"
)

const (
	lineSpacing  = 1.2 // multiple of the font size
	frameWidth   = 2
	minBlurScale = 2
	statusHeight = 18
)

// Renderer paints a store's visible surface. It keeps the offscreen images
// used by the background blur between frames.
type Renderer struct {
	Fonts *Fonts

	back  *ebiten.Image // background layer, before blurring
	small *ebiten.Image // downsampled background
}

// NewRenderer creates a renderer using fonts for labels.
func NewRenderer(fonts *Fonts) *Renderer {
	return &Renderer{Fonts: fonts}
}

// Draw renders the visible surface of store onto dst. The background layer
// is blurred while the surface has a blur radius set.
func (r *Renderer) Draw(dst *ebiten.Image, store *scene.Store) {
	surf := store.Visible()
	if surf == nil {
		return
	}
	dst.Fill(surf.Background)

	list := store.DrawList(surf)
	i := 0
	if radius := store.Blur(surf); radius > 0 {
		back := r.target(&r.back, dst.Bounds().Dx(), dst.Bounds().Dy())
		for ; i < len(list) && list[i].Layer == scene.LayerBackground; i++ {
			r.drawNode(back, list[i])
		}
		r.blur(dst, back, radius)
	}
	for ; i < len(list); i++ {
		r.drawNode(dst, list[i])
	}
}

// DrawStatus writes a single line of text along the bottom edge of dst.
func (r *Renderer) DrawStatus(dst *ebiten.Image, s string) {
	if s == "" {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, float32(h-statusHeight), float32(w), statusHeight, color.RGBA{A: 160}, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, float64(h-statusHeight+2))
	op.ColorScale.ScaleWithColor(scene.Palette[scene.ColorWhite])
	text.Draw(dst, s, r.Fonts.Status(), op)
}

// target returns *img cleared and sized w x h, reallocating on resize.
func (r *Renderer) target(img **ebiten.Image, w, h int) *ebiten.Image {
	if *img == nil || (*img).Bounds() != image.Rect(0, 0, w, h) {
		if *img != nil {
			(*img).Deallocate()
		}
		*img = ebiten.NewImage(w, h)
	}
	(*img).Clear()
	return *img
}

// blur approximates a gaussian of the given radius by sampling src down and
// back up with linear filtering.
func (r *Renderer) blur(dst, src *ebiten.Image, radius float64) {
	k := math.Max(minBlurScale, radius/4)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	sw := max(1, int(float64(w)/k))
	sh := max(1, int(float64(h)/k))
	small := r.target(&r.small, sw, sh)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
	small.DrawImage(src, op)

	op = &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	dst.DrawImage(small, op)
}

func (r *Renderer) drawNode(dst *ebiten.Image, d scene.Drawable) {
	clr := fade(d.Color, d.Alpha)
	switch d.Shape {
	case scene.ShapeRect:
		w, h := d.Size.X*d.Scale, d.Size.Y*d.Scale
		vector.DrawFilledRect(dst, float32(d.Pos.X-w/2), float32(d.Pos.Y-h/2), float32(w), float32(h), clr, true)
	case scene.ShapeCircle:
		vector.DrawFilledCircle(dst, float32(d.Pos.X), float32(d.Pos.Y), float32(d.Radius*d.Scale), clr, true)
	case scene.ShapeImage:
		r.drawPlaceholder(dst, d, clr)
	case scene.ShapeLabel:
		r.drawLabel(dst, d.Text, d.Pos, d.FontSize*d.Scale, d.Bold, d.Align, clr)
	}
}

// drawPlaceholder stands in for a picture: a tinted frame with the
// picture's name in the middle.
func (r *Renderer) drawPlaceholder(dst *ebiten.Image, d scene.Drawable, clr color.RGBA) {
	w, h := d.Size.X*d.Scale, d.Size.Y*d.Scale
	x, y := float32(d.Pos.X-w/2), float32(d.Pos.Y-h/2)
	vector.DrawFilledRect(dst, x, y, float32(w), float32(h), fade(d.Color, d.Alpha*0.25), true)
	vector.StrokeRect(dst, x, y, float32(w), float32(h), frameWidth, clr, true)
	r.drawLabel(dst, d.Text, d.Pos, d.FontSize*d.Scale, false, scene.AlignCenter, clr)
}

// drawLabel sets s with its vertical middle on at. Centred labels are
// centred horizontally on at; left-aligned ones start there.
func (r *Renderer) drawLabel(dst *ebiten.Image, s string, at scene.Vec, size float64, bold bool, align scene.Align, clr color.RGBA) {
	if s == "" || size <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size * lineSpacing
	op.SecondaryAlign = text.AlignCenter
	if align == scene.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, r.Fonts.Face(size, bold), op)
}

// fade scales c by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
