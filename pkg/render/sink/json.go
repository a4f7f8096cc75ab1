package sink

import (
	"encoding/json"

	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/render/scene"
)

type jsonLayout struct {
	CanvasWidth  float64     `json:"canvas_width"`
	CanvasHeight float64     `json:"canvas_height"`
	Scale        float64     `json:"scale"`
	Frame        jsonFrame   `json:"frame"`
	Blocks       []jsonBlock `json:"blocks"`
}

type jsonFrame struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Depth          float64 `json:"depth"`
	PanelThickness float64 `json:"panel_thickness"`
	InternalWidth  float64 `json:"internal_width"`
	InternalHeight float64 `json:"internal_height"`
}

type jsonBlock struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	Name   string   `json:"name"`
	Label  string   `json:"label,omitempty"`
	Locked bool     `json:"locked,omitempty"`
	MM     jsonRect `json:"mm"`
	Px     jsonRect `json:"px"`
}

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RenderJSON exports the computed layout as a pretty-printed JSON
// document: each component in both millimeter model space and the
// pixel space of the built scene. This is the interchange format for
// external tools that want positions without parsing SVG.
func RenderJSON(p *model.Project, s *scene.Scene, margin float64) ([]byte, error) {
	out := jsonLayout{
		CanvasWidth:  s.Width,
		CanvasHeight: s.Height,
		Scale:        s.Scale,
		Frame: jsonFrame{
			Width:          p.Frame.Width,
			Height:         p.Frame.Height,
			Depth:          p.Frame.Depth,
			PanelThickness: p.Frame.PanelThickness,
			InternalWidth:  p.Frame.InternalWidth(),
			InternalHeight: p.Frame.InternalHeight(),
		},
		Blocks: make([]jsonBlock, 0, len(p.Components)),
	}

	for _, c := range p.Components {
		x, y, w, h := c.Bounds()
		pxRect := jsonRect{
			X: margin + x*s.Scale,
			Y: s.Height - margin - (y+h)*s.Scale,
			W: w * s.Scale,
			H: h * s.Scale,
		}
		out.Blocks = append(out.Blocks, jsonBlock{
			ID:     c.ID,
			Type:   string(c.Type),
			Name:   c.Name,
			Label:  c.Label,
			Locked: c.Locked,
			MM:     jsonRect{X: x, Y: y, W: w, H: h},
			Px:     pxRect,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
