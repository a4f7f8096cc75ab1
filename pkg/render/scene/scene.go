// Package scene turns a project into a flat list of drawing elements.
//
// The model lives in a bottom-left-origin, Y-up millimeter space. A
// Scene lives in a top-left-origin, Y-down pixel space sized for one
// output surface. Build performs the flip and the aspect-preserving
// scale once, so every sink (SVG, PNG, PDF, print, JSON) draws the same
// layout from the same element list.
//
// Depth is faked with a 45 degree offset projection: each rectangle
// gets a top and a side face whose extent grows with the component's
// physical depth, capped so deep carcasses do not dominate the page.
package scene

import (
	"fmt"

	"github.com/jammo/wardrobe/pkg/config"
	"github.com/jammo/wardrobe/pkg/geometry"
	"github.com/jammo/wardrobe/pkg/model"
)

// Element is one drawing primitive. The set is closed; sinks dispatch
// with a type switch.
type Element interface {
	isElement()
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y, W, H  float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dashed      bool
	ID          string
	Class       string
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	Dashed         bool
}

// Circle is a filled circle, used for knob handles.
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Point is a polygon vertex in pixel space.
type Point struct {
	X, Y float64
}

// Polygon is a filled closed shape, used for depth faces.
type Polygon struct {
	Points      []Point
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Text is a centered label.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Fill    string
}

func (Rect) isElement()    {}
func (Line) isElement()    {}
func (Circle) isElement()  {}
func (Polygon) isElement() {}
func (Text) isElement()    {}

// Scene is a fully-resolved drawing in pixel space.
type Scene struct {
	Width    float64
	Height   float64
	Scale    float64
	Elements []Element
}

// Option configures scene building.
type Option func(*builder)

// WithSize sets the output canvas size in pixels.
func WithSize(w, h float64) Option {
	return func(b *builder) { b.width, b.height = w, h }
}

// WithMargin sets the canvas margin in pixels.
func WithMargin(m float64) Option {
	return func(b *builder) { b.margin = m }
}

// WithColors overrides the drawing palette.
func WithColors(c config.ColorConfig) Option {
	return func(b *builder) { b.colors = c }
}

// WithSelection highlights the component with the given ID.
func WithSelection(id string) Option {
	return func(b *builder) { b.selected = id }
}

// WithLabels toggles component labels (on by default).
func WithLabels(show bool) Option {
	return func(b *builder) { b.labels = show }
}

// WithGrid overlays grid lines at the given model-space spacing in
// millimeters. Zero or negative spacing disables the grid.
func WithGrid(spacing float64) Option {
	return func(b *builder) { b.grid = spacing }
}

type builder struct {
	width    float64
	height   float64
	margin   float64
	colors   config.ColorConfig
	selected string
	labels   bool
	grid     float64

	scale float64
	out   []Element
}

const (
	outlineStroke   = "#333333"
	selectionStroke = "#0066CC"
	detailStroke    = "#8B7355"
	railStroke      = "#666666"
	shelfEdgeStroke = "#8B6914"
	dashStroke      = "#999999"

	resizeHandlePx = 10
	labelSizePx    = 13
)

// Build lays out the whole project for one output surface.
func Build(p *model.Project, opts ...Option) *Scene {
	b := &builder{
		width:  1600,
		height: 900,
		margin: 40,
		colors: config.Default().Colors,
		labels: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	frameOff := geometry.DepthOffset(p.Frame.Depth, geometry.FrameDepthFactor, geometry.DepthOffsetCap)
	contentW := p.Frame.Width + frameOff
	contentH := p.Frame.Height + frameOff
	b.scale = geometry.ScaleToFit(contentW, contentH, b.width, b.height, b.margin)

	b.out = append(b.out, Rect{
		X: 0, Y: 0, W: b.width, H: b.height,
		Fill: b.colors.Background,
	})

	b.buildFrame(p.Frame)
	if b.grid > 0 {
		b.buildGrid(p.Frame)
	}
	for _, c := range p.Components {
		b.buildComponent(c)
	}

	return &Scene{
		Width:    b.width,
		Height:   b.height,
		Scale:    b.scale,
		Elements: b.out,
	}
}

// px converts a model-space point to pixel space. Model Y points up;
// the canvas Y points down.
func (b *builder) px(x, y float64) (float64, float64) {
	return b.margin + x*b.scale, b.height - b.margin - y*b.scale
}

// pxRect converts a model-space rectangle to its pixel-space top-left
// form.
func (b *builder) pxRect(x, y, w, h float64) (float64, float64, float64, float64) {
	left, top := b.px(x, y+h)
	return left, top, w * b.scale, h * b.scale
}

// depthFaces adds the top and right faces of the offset projection for
// a rectangle already in pixel space. offPx is the projected depth
// extent in pixels; up-and-right on a Y-down canvas is (+off, -off).
func (b *builder) depthFaces(x, y, w, h, offPx float64, topFill, sideFill string) {
	if offPx <= 0 {
		return
	}
	b.out = append(b.out,
		Polygon{
			Points: []Point{
				{x, y}, {x + offPx, y - offPx},
				{x + w + offPx, y - offPx}, {x + w, y},
			},
			Fill:   topFill,
			Stroke: outlineStroke,
		},
		Polygon{
			Points: []Point{
				{x + w, y}, {x + w + offPx, y - offPx},
				{x + w + offPx, y + h - offPx}, {x + w, y + h},
			},
			Fill:   sideFill,
			Stroke: outlineStroke,
		},
	)
}

func (b *builder) buildFrame(f model.WardrobeFrame) {
	x, y, w, h := b.pxRect(0, 0, f.Width, f.Height)
	offPx := geometry.DepthOffset(f.Depth, geometry.FrameDepthFactor, geometry.DepthOffsetCap) * b.scale

	b.depthFaces(x, y, w, h, offPx, b.colors.Panel, shade(b.colors.Panel))

	b.out = append(b.out, Rect{
		X: x, Y: y, W: w, H: h,
		Fill:        "#FFFFFF",
		Stroke:      outlineStroke,
		StrokeWidth: 3,
		ID:          "frame",
	})

	// Side panels, plinth, and top clearance band.
	px, py, pw, ph := b.pxRect(0, 0, f.PanelThickness, f.Height)
	b.out = append(b.out, Rect{X: px, Y: py, W: pw, H: ph, Fill: b.colors.Panel, Stroke: outlineStroke, StrokeWidth: 1})

	px, py, pw, ph = b.pxRect(f.Width-f.PanelThickness, 0, f.PanelThickness, f.Height)
	b.out = append(b.out, Rect{X: px, Y: py, W: pw, H: ph, Fill: b.colors.Panel, Stroke: outlineStroke, StrokeWidth: 1})

	px, py, pw, ph = b.pxRect(0, 0, f.Width, f.BaseHeight)
	b.out = append(b.out, Rect{X: px, Y: py, W: pw, H: ph, Fill: b.colors.Frame, Stroke: outlineStroke, StrokeWidth: 1})

	x1, y1 := b.px(0, f.Height-f.TopClearance)
	x2, _ := b.px(f.Width, 0)
	b.out = append(b.out, Line{X1: x1, Y1: y1, X2: x2, Y2: y1, Stroke: dashStroke, StrokeWidth: 1, Dashed: true})
}

// buildGrid draws dashed snap lines across the frame interior.
func (b *builder) buildGrid(f model.WardrobeFrame) {
	for gx := b.grid; gx < f.Width; gx += b.grid {
		x1, y1 := b.px(gx, f.Height)
		_, y2 := b.px(gx, 0)
		b.out = append(b.out, Line{X1: x1, Y1: y1, X2: x1, Y2: y2, Stroke: dashStroke, StrokeWidth: 0.5, Dashed: true})
	}
	for gy := b.grid; gy < f.Height; gy += b.grid {
		x1, y1 := b.px(0, gy)
		x2, _ := b.px(f.Width, gy)
		b.out = append(b.out, Line{X1: x1, Y1: y1, X2: x2, Y2: y1, Stroke: dashStroke, StrokeWidth: 0.5, Dashed: true})
	}
}

func (b *builder) buildComponent(c *model.Component) {
	mx, my, mw, mh := c.Bounds()
	x, y, w, h := b.pxRect(mx, my, mw, mh)
	offPx := geometry.DepthOffset(c.Dimensions.Depth, geometry.ComponentDepthFactor, geometry.DepthOffsetCap) * b.scale

	fill := c.Color
	if fill == "" {
		fill = b.fillFor(c.Type)
	}

	b.depthFaces(x, y, w, h, offPx, fill, shade(fill))

	face := Rect{
		X: x, Y: y, W: w, H: h,
		Fill:        fill,
		Stroke:      outlineStroke,
		StrokeWidth: 2,
		ID:          "component-" + c.ID,
		Class:       "component",
	}
	if c.ID == b.selected {
		face.Stroke = selectionStroke
		face.StrokeWidth = 3
	}
	b.out = append(b.out, face)

	switch c.Type {
	case model.TypeDrawerUnit:
		b.drawDrawers(c, x, y, w, h)
	case model.TypeHangingSpace:
		b.drawRails(c, x, y, w, h)
	case model.TypeShelf:
		b.drawShelfEdge(x, y, w, h)
	case model.TypeOverhead:
		b.drawDoors(c, x, y, w, h)
	}

	if b.labels {
		if label := c.DisplayLabel(); label != "" {
			b.out = append(b.out, Text{
				X: x + w/2, Y: y + h/2,
				Content: label,
				Size:    labelSizePx,
				Fill:    outlineStroke,
			})
		}
	}

	if c.ID == b.selected {
		b.drawResizeHandles(x, y, w, h)
	}
}

// drawDrawers stacks division lines bottom-up per the stored height
// split and centers a handle on each drawer front.
func (b *builder) drawDrawers(c *model.Component, x, y, w, h float64) {
	if c.Drawer == nil {
		return
	}
	bottom := y + h
	for _, dh := range c.Drawer.DrawerHeights {
		hPx := dh * b.scale
		top := bottom - hPx
		b.out = append(b.out, Line{X1: x, Y1: top, X2: x + w, Y2: top, Stroke: detailStroke, StrokeWidth: 1})

		handleY := top + hPx/2
		switch c.Drawer.HandleStyle {
		case model.HandleKnob:
			b.out = append(b.out, Circle{CX: x + w/2, CY: handleY, R: 5 * b.scale, Fill: detailStroke})
		case model.HandleNone:
		default:
			handleW := 40 * b.scale
			if c.Drawer.HandleStyle == model.HandleRecessed {
				handleW = 10 * b.scale
			}
			b.out = append(b.out, Rect{
				X: x + w/2 - handleW/2, Y: handleY - 3*b.scale,
				W: handleW, H: 6 * b.scale,
				Fill: detailStroke,
			})
		}
		bottom = top
	}
}

// drawRails draws the rail at its stored height (clamped inside the
// component), end supports up to the top edge, and a second rail 450 mm
// below for double-rail spaces.
func (b *builder) drawRails(c *model.Component, x, y, w, h float64) {
	if c.Hanging == nil {
		return
	}
	inset := 20 * b.scale

	railY := y + h - c.Hanging.RailHeight*b.scale
	if railY < y {
		railY = y + 50*b.scale
	}

	b.out = append(b.out,
		Line{X1: x + inset, Y1: railY, X2: x + w - inset, Y2: railY, Stroke: railStroke, StrokeWidth: 3},
		Line{X1: x + inset, Y1: railY, X2: x + inset, Y2: y, Stroke: railStroke, StrokeWidth: 3},
		Line{X1: x + w - inset, Y1: railY, X2: x + w - inset, Y2: y, Stroke: railStroke, StrokeWidth: 3},
	)

	if c.Hanging.RailType == model.RailDouble {
		rail2 := railY + 450*b.scale
		if rail2 > y+h {
			rail2 = y + h - 50*b.scale
		}
		b.out = append(b.out, Line{X1: x + inset, Y1: rail2, X2: x + w - inset, Y2: rail2, Stroke: railStroke, StrokeWidth: 3})
	}
}

func (b *builder) drawShelfEdge(x, y, w, h float64) {
	b.out = append(b.out, Line{X1: x, Y1: y + h, X2: x + w, Y2: y + h, Stroke: shelfEdgeStroke, StrokeWidth: 2})
}

// drawDoors splits the front into equal doors, puts a handle on each,
// and dashes the internal shelf line when present.
func (b *builder) drawDoors(c *model.Component, x, y, w, h float64) {
	if c.Overhead == nil || c.Overhead.DoorCount < 1 {
		return
	}
	doorW := w / float64(c.Overhead.DoorCount)
	for i := 1; i < c.Overhead.DoorCount; i++ {
		dx := x + float64(i)*doorW
		b.out = append(b.out, Line{X1: dx, Y1: y, X2: dx, Y2: y + h, Stroke: detailStroke, StrokeWidth: 2})
	}
	for i := 0; i < c.Overhead.DoorCount; i++ {
		cx := x + (float64(i)+0.5)*doorW
		b.out = append(b.out, Rect{
			X: cx - 5*b.scale, Y: y + h/2 - 15*b.scale,
			W: 10 * b.scale, H: 30 * b.scale,
			Fill: detailStroke,
		})
	}
	if c.Overhead.HasShelf {
		b.out = append(b.out, Line{
			X1: x + 5*b.scale, Y1: y + h/2,
			X2: x + w - 5*b.scale, Y2: y + h/2,
			Stroke: dashStroke, StrokeWidth: 1, Dashed: true,
		})
	}
}

func (b *builder) drawResizeHandles(x, y, w, h float64) {
	hs := float64(resizeHandlePx)
	corners := [][2]float64{
		{x, y}, {x + w - hs, y},
		{x, y + h - hs}, {x + w - hs, y + h - hs},
	}
	for _, p := range corners {
		b.out = append(b.out, Rect{X: p[0], Y: p[1], W: hs, H: hs, Fill: selectionStroke})
	}
}

func (b *builder) fillFor(t model.ComponentType) string {
	switch t {
	case model.TypeDrawerUnit:
		return b.colors.Drawer
	case model.TypeHangingSpace:
		return "#F5F0E6"
	case model.TypeShelf:
		return b.colors.Shelf
	case model.TypeOverhead:
		return b.colors.Door
	case model.TypeDivider:
		return b.colors.Divider
	default:
		return b.colors.Panel
	}
}

// shade darkens a hex color for side faces. Unparseable colors come
// back unchanged.
func shade(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	var r, g, bl int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &bl); err != nil {
		return hex
	}
	dim := func(v int) int { return v * 70 / 100 }
	return fmt.Sprintf("#%02X%02X%02X", dim(r), dim(g), dim(bl))
}
