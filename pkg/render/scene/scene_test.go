package scene

import (
	"math"
	"testing"

	"github.com/jammo/wardrobe/pkg/geometry"
	"github.com/jammo/wardrobe/pkg/model"
)

// findComponentRect returns the face rectangle for a component ID.
func findComponentRect(s *Scene, id string) (Rect, bool) {
	for _, el := range s.Elements {
		if r, ok := el.(Rect); ok && r.ID == "component-"+id {
			return r, true
		}
	}
	return Rect{}, false
}

func TestBuildFlipsYAxis(t *testing.T) {
	p := model.NewProject()
	shelf := model.NewShelf("Shelf", model.WithPosition(0, 0))
	p.AddComponent(shelf)

	s := Build(p, WithSize(1600, 900), WithMargin(40))

	r, ok := findComponentRect(s, shelf.ID)
	if !ok {
		t.Fatal("shelf face not in scene")
	}

	// A component at model Y=0 sits at the bottom of the canvas: its
	// pixel bottom edge is height - margin.
	wantBottom := s.Height - 40
	if got := r.Y + r.H; math.Abs(got-wantBottom) > 1e-9 {
		t.Errorf("bottom edge = %v, want %v", got, wantBottom)
	}

	// Moving the component up in model space moves it up (smaller Y)
	// on the canvas.
	p2 := model.NewProject()
	high := model.NewShelf("High", model.WithPosition(0, 2000))
	p2.AddComponent(high)
	s2 := Build(p2, WithSize(1600, 900), WithMargin(40))
	r2, ok := findComponentRect(s2, high.ID)
	if !ok {
		t.Fatal("high shelf face not in scene")
	}
	if r2.Y >= r.Y {
		t.Errorf("higher model Y did not move the face up: %v >= %v", r2.Y, r.Y)
	}
}

func TestBuildScaleMatchesKernel(t *testing.T) {
	p := model.NewProject()

	s := Build(p, WithSize(1600, 900), WithMargin(40))

	off := geometry.DepthOffset(p.Frame.Depth, geometry.FrameDepthFactor, geometry.DepthOffsetCap)
	want := geometry.ScaleToFit(p.Frame.Width+off, p.Frame.Height+off, 1600, 900, 40)
	if s.Scale != want {
		t.Errorf("Scale = %v, want %v", s.Scale, want)
	}
}

func TestDepthOffsetCapLimitsProjection(t *testing.T) {
	p := model.NewProject()
	p.Frame.Depth = 1000 // 0.12 * 1000 exceeds the 80 mm cap

	s := Build(p, WithSize(1600, 900), WithMargin(40))

	want := geometry.ScaleToFit(
		p.Frame.Width+geometry.DepthOffsetCap,
		p.Frame.Height+geometry.DepthOffsetCap,
		1600, 900, 40,
	)
	if s.Scale != want {
		t.Errorf("Scale = %v, want %v (capped offset)", s.Scale, want)
	}

	// The frame's top face rises exactly the capped offset above the
	// outline. The first polygon in the scene is that top face.
	var frame Rect
	for _, el := range s.Elements {
		if r, ok := el.(Rect); ok && r.ID == "frame" {
			frame = r
			break
		}
	}
	var topFace Polygon
	for _, el := range s.Elements {
		if poly, ok := el.(Polygon); ok {
			topFace = poly
			break
		}
	}
	if len(topFace.Points) != 4 {
		t.Fatal("frame top face not in scene")
	}
	offPx := geometry.DepthOffsetCap * s.Scale
	if got := frame.Y - topFace.Points[1].Y; math.Abs(got-offPx) > 1e-9 {
		t.Errorf("top face offset = %v px, want %v", got, offPx)
	}
}

func TestDrawerDivisionsAndHandles(t *testing.T) {
	p := model.NewProject()
	d := model.NewDrawerUnit("Drawers", model.WithDrawerCount(4))
	p.AddComponent(d)

	s := Build(p)

	var lines, handleRects int
	for _, el := range s.Elements {
		switch e := el.(type) {
		case Line:
			if e.Stroke == detailStroke {
				lines++
			}
		case Rect:
			if e.Fill == detailStroke {
				handleRects++
			}
		}
	}
	if lines != 4 {
		t.Errorf("drawer division lines = %d, want 4", lines)
	}
	if handleRects != 4 {
		t.Errorf("bar handles = %d, want 4", handleRects)
	}
}

func TestDoubleRailClampsInsideComponent(t *testing.T) {
	p := model.NewProject()
	// Short space with a tall stored rail height: the rail clamps near
	// the top and the second rail clamps near the bottom.
	h := model.NewHangingSpace("H",
		model.WithSize(600, 300, 580),
		model.WithRailHeight(1700),
		model.WithRailType(model.RailDouble),
	)
	p.AddComponent(h)

	s := Build(p)
	r, ok := findComponentRect(s, h.ID)
	if !ok {
		t.Fatal("hanging face not in scene")
	}

	for _, el := range s.Elements {
		if l, ok := el.(Line); ok && l.Stroke == railStroke {
			if l.Y1 < r.Y-1e-9 || l.Y1 > r.Y+r.H+1e-9 {
				t.Errorf("rail line at Y=%v outside face [%v, %v]", l.Y1, r.Y, r.Y+r.H)
			}
		}
	}
}

func TestSelectionHighlight(t *testing.T) {
	p := model.NewProject()
	a := model.NewShelf("A")
	bComp := model.NewShelf("B", model.WithPosition(900, 0))
	p.AddComponent(a)
	p.AddComponent(bComp)

	s := Build(p, WithSelection(bComp.ID))

	ra, _ := findComponentRect(s, a.ID)
	rb, _ := findComponentRect(s, bComp.ID)
	if ra.Stroke == selectionStroke {
		t.Error("unselected component has selection stroke")
	}
	if rb.Stroke != selectionStroke {
		t.Errorf("selected stroke = %q, want %q", rb.Stroke, selectionStroke)
	}

	var handles int
	for _, el := range s.Elements {
		if r, ok := el.(Rect); ok && r.Fill == selectionStroke {
			handles++
		}
	}
	if handles != 4 {
		t.Errorf("resize handles = %d, want 4", handles)
	}
}

func TestDepthFacesPresent(t *testing.T) {
	p := model.NewProject()
	p.AddComponent(model.NewDrawerUnit("D"))

	s := Build(p)

	var polys int
	for _, el := range s.Elements {
		if _, ok := el.(Polygon); ok {
			polys++
		}
	}
	// Two faces for the frame, two for the component.
	if polys != 4 {
		t.Errorf("depth face polygons = %d, want 4", polys)
	}
}

func TestGridOverlay(t *testing.T) {
	p := model.NewProject()
	p.Frame.Width = 100
	p.Frame.Height = 50

	countDashed := func(s *Scene) int {
		n := 0
		for _, el := range s.Elements {
			if l, ok := el.(Line); ok && l.Dashed && l.Stroke == dashStroke && l.StrokeWidth == 0.5 {
				n++
			}
		}
		return n
	}

	if got := countDashed(Build(p)); got != 0 {
		t.Errorf("grid lines without WithGrid = %d, want 0", got)
	}

	// 100x50 frame at 25 mm spacing: verticals at 25/50/75, horizontal
	// at 25. Lines on the frame edges are not drawn.
	if got := countDashed(Build(p, WithGrid(25))); got != 4 {
		t.Errorf("grid lines = %d, want 4", got)
	}
}

func TestComponentColorOverride(t *testing.T) {
	p := model.NewProject()
	c := model.NewShelf("S", model.WithColor("#123456"))
	p.AddComponent(c)

	s := Build(p)
	r, ok := findComponentRect(s, c.ID)
	if !ok {
		t.Fatal("shelf face not in scene")
	}
	if r.Fill != "#123456" {
		t.Errorf("Fill = %q, want explicit color", r.Fill)
	}
}

func TestShade(t *testing.T) {
	if got := shade("#FF0000"); got != "#B20000" {
		t.Errorf("shade(#FF0000) = %q, want #B20000", got)
	}
	if got := shade("not-a-color"); got != "not-a-color" {
		t.Errorf("shade passthrough = %q", got)
	}
}
