package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/render/scene"
)

func testProject() *model.Project {
	p := model.NewProject()
	p.AddComponent(model.NewDrawerUnit("Drawers", model.WithPosition(18, 100)))
	p.AddComponent(model.NewHangingSpace("Hanging", model.WithPosition(650, 100)))
	return p
}

func TestRenderSVGStructure(t *testing.T) {
	p := testProject()
	s := scene.Build(p, scene.WithSize(1600, 900), scene.WithMargin(40))

	svg := string(RenderSVG(s))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}
	if !strings.Contains(svg, `viewBox="0 0 1600.0 900.0"`) {
		t.Error("missing viewBox")
	}
	if !strings.Contains(svg, `id="frame"`) {
		t.Error("frame rect not rendered")
	}
	for _, c := range p.Components {
		if !strings.Contains(svg, `id="component-`+c.ID+`"`) {
			t.Errorf("component %s not rendered", c.ID)
		}
	}
	if !strings.Contains(svg, ".component:hover") {
		t.Error("hover style missing")
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	p := model.NewProject()
	p.AddComponent(model.NewShelf("Socks & <Ties>"))

	s := scene.Build(p)
	svg := string(RenderSVG(s))

	if !strings.Contains(svg, "Socks &amp; &lt;Ties&gt;") {
		t.Error("label not escaped")
	}
	if strings.Contains(svg, "<Ties>") {
		t.Error("raw angle brackets leaked into markup")
	}
}

func TestRenderSVGDashedLines(t *testing.T) {
	p := model.NewProject()
	p.AddComponent(model.NewOverhead("O", model.WithHasShelf(true)))

	s := scene.Build(p)
	svg := string(RenderSVG(s))

	if !strings.Contains(svg, `stroke-dasharray="6,4"`) {
		t.Error("dashed stroke missing")
	}
}

func TestRenderPrintPageOrientation(t *testing.T) {
	// Wide frame: landscape page, swapped A4 dimensions.
	wide := model.NewProject()
	svg := string(RenderPrint(wide, ""))
	if !strings.Contains(svg, `viewBox="0 0 1122.5 793.7"`) {
		t.Errorf("landscape viewBox missing:\n%s", svg[:200])
	}

	// Tall frame: portrait.
	tall := model.NewProject()
	tall.Frame.Width = 1200
	tall.Frame.Height = 2400
	svg = string(RenderPrint(tall, ""))
	if !strings.Contains(svg, `viewBox="0 0 793.7 1122.5"`) {
		t.Errorf("portrait viewBox missing:\n%s", svg[:200])
	}
}

func TestRenderPrintTitleBlock(t *testing.T) {
	p := model.NewProject()

	with := string(RenderPrint(p, "Master Bedroom"))
	if !strings.Contains(with, ">Master Bedroom</text>") {
		t.Error("title text missing")
	}

	without := string(RenderPrint(p, ""))
	if strings.Contains(without, "font-weight") {
		t.Error("title block rendered without a title")
	}
}

func TestRenderJSONLayout(t *testing.T) {
	p := testProject()
	s := scene.Build(p, scene.WithSize(1600, 900), scene.WithMargin(40))

	data, err := RenderJSON(p, s, 40)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		CanvasWidth float64 `json:"canvas_width"`
		Scale       float64 `json:"scale"`
		Frame       struct {
			InternalWidth float64 `json:"internal_width"`
		} `json:"frame"`
		Blocks []struct {
			ID string  `json:"id"`
			MM struct{ X, Y, W, H float64 }
			Px struct{ X, Y, W, H float64 }
		} `json:"blocks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.CanvasWidth != 1600 {
		t.Errorf("canvas_width = %v", out.CanvasWidth)
	}
	if out.Scale != s.Scale {
		t.Errorf("scale = %v, want %v", out.Scale, s.Scale)
	}
	if out.Frame.InternalWidth != p.Frame.InternalWidth() {
		t.Errorf("internal_width = %v", out.Frame.InternalWidth)
	}
	if len(out.Blocks) != len(p.Components) {
		t.Errorf("blocks = %d, want %d", len(out.Blocks), len(p.Components))
	}
	for i, blk := range out.Blocks {
		if blk.ID != p.Components[i].ID {
			t.Errorf("block %d id = %q, want order preserved", i, blk.ID)
		}
	}
}
