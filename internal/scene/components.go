package scene

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"
	"github.com/worldofwater/waterworld/internal/curio"
)

// Vec is a point or size in surface pixels, y growing downwards.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul scales v by k.
func (v Vec) Mul(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Lerp interpolates between v and o at t in [0,1].
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Layer groups nodes for drawing and blur.
type Layer uint8

const (
	LayerBackground Layer = iota // blurred while a surface has a filter
	LayerForeground              // titles, buttons, open content
	LayerOverlay                 // ignores the camera (transition covers)
)

// Shape selects how a node is drawn and hit-tested.
type Shape uint8

const (
	ShapeNone   Shape = iota // groups and cameras
	ShapeRect                // filled rectangle centred on the position
	ShapeCircle              // filled circle centred on the position
	ShapeLabel               // text, anchored per Align
	ShapeImage               // image reference drawn as a framed placeholder
)

// Align anchors a label horizontally.
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
)

// Transform is a node's placement relative to its parent.
type Transform struct {
	Pos   Vec
	Scale float64
}

// Look is everything the drawer needs besides placement.
type Look struct {
	Shape    Shape
	Layer    Layer
	Color    color.RGBA
	Size     Vec     // rect and image extents
	Radius   float64 // circles
	Text     string  // labels; image caption
	FontSize float64
	Bold     bool
	Align    Align
	Image    string
	Alpha    float64
	order    uint64
}

// Owner binds a node to its surface.
type Owner struct {
	Surface int
}

// Parent links a node to the node it is positioned in.
type Parent struct {
	Of ecs.Entity
}

// Clickable marks a node as a hit-test target.
type Clickable struct {
	Target curio.HitTarget
}
