package catalog

import (
	"testing"

	"github.com/jammo/wardrobe/pkg/errors"
	"github.com/jammo/wardrobe/pkg/model"
)

func TestBuiltinTemplateCount(t *testing.T) {
	c := New()
	if got := len(c.All()); got != 11 {
		t.Errorf("len(All()) = %d, want 11", got)
	}
}

func TestGetKnownAndUnknown(t *testing.T) {
	c := New()

	tpl, ok := c.Get("4-Drawer Unit")
	if !ok {
		t.Fatal("4-Drawer Unit not found")
	}
	if tpl.Type != model.TypeDrawerUnit {
		t.Errorf("Type = %v, want drawer unit", tpl.Type)
	}
	if tpl.Width != 600 || tpl.Height != 800 || tpl.Depth != 500 {
		t.Errorf("dims = %vx%vx%v", tpl.Width, tpl.Height, tpl.Depth)
	}

	if _, ok := c.Get("Corner Carousel"); ok {
		t.Error("unknown template reported found")
	}
}

func TestByType(t *testing.T) {
	c := New()

	tests := []struct {
		typ  model.ComponentType
		want int
	}{
		{model.TypeDrawerUnit, 3},
		{model.TypeHangingSpace, 3},
		{model.TypeShelf, 2},
		{model.TypeOverhead, 3},
		{model.TypeDivider, 0},
	}
	for _, tt := range tests {
		got := c.ByType(tt.typ)
		if len(got) != tt.want {
			t.Errorf("ByType(%v) returned %d templates, want %d", tt.typ, len(got), tt.want)
		}
		for _, tpl := range got {
			if tpl.Type != tt.typ {
				t.Errorf("ByType(%v) returned template of type %v", tt.typ, tpl.Type)
			}
		}
	}
}

func TestCreateComponentFromTemplate(t *testing.T) {
	c := New()

	tpl, _ := c.Get("5-Drawer Unit (Narrow)")
	comp, err := CreateComponent(tpl)
	if err != nil {
		t.Fatalf("CreateComponent: %v", err)
	}

	if comp.Type != model.TypeDrawerUnit {
		t.Errorf("Type = %v", comp.Type)
	}
	if comp.Name != "5-Drawer Unit (Narrow)" {
		t.Errorf("Name = %q", comp.Name)
	}
	if comp.Dimensions != (model.Dimensions{Width: 450, Height: 750, Depth: 500}) {
		t.Errorf("Dimensions = %+v", comp.Dimensions)
	}
	if comp.Drawer == nil {
		t.Fatal("drawer attributes missing")
	}
	if comp.Drawer.DrawerCount != 5 {
		t.Errorf("DrawerCount = %d, want 5", comp.Drawer.DrawerCount)
	}
	if comp.Drawer.HandleStyle != model.HandleKnob {
		t.Errorf("HandleStyle = %q, want knob", comp.Drawer.HandleStyle)
	}
	if len(comp.Drawer.DrawerHeights) != 5 {
		t.Errorf("DrawerHeights has %d entries, want 5", len(comp.Drawer.DrawerHeights))
	}
	for _, h := range comp.Drawer.DrawerHeights {
		if h != 150 {
			t.Errorf("drawer height = %v, want 150", h)
		}
	}
}

func TestCreateComponentPropertyBags(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		check func(t *testing.T, comp *model.Component)
	}{
		{
			name: "Double Hanging",
			check: func(t *testing.T, comp *model.Component) {
				if comp.Hanging == nil {
					t.Fatal("hanging attributes missing")
				}
				if comp.Hanging.RailType != model.RailDouble {
					t.Errorf("RailType = %q", comp.Hanging.RailType)
				}
				if comp.Hanging.ClothingType != model.ClothingHalfLength {
					t.Errorf("ClothingType = %q", comp.Hanging.ClothingType)
				}
			},
		},
		{
			name: "Lift-Up Overhead",
			check: func(t *testing.T, comp *model.Component) {
				if comp.Overhead == nil {
					t.Fatal("overhead attributes missing")
				}
				if comp.Overhead.DoorType != model.DoorLiftUp {
					t.Errorf("DoorType = %q", comp.Overhead.DoorType)
				}
				if comp.Overhead.DoorCount != 1 {
					t.Errorf("DoorCount = %d", comp.Overhead.DoorCount)
				}
				if comp.Overhead.HasShelf {
					t.Error("HasShelf = true, want false")
				}
			},
		},
		{
			name: "Wide Shelf",
			check: func(t *testing.T, comp *model.Component) {
				if comp.Shelf == nil {
					t.Fatal("shelf attributes missing")
				}
				if !comp.Shelf.Adjustable {
					t.Error("Adjustable = false")
				}
				if comp.Dimensions.Width != 1200 {
					t.Errorf("Width = %v", comp.Dimensions.Width)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, ok := c.Get(tt.name)
			if !ok {
				t.Fatalf("template %q not found", tt.name)
			}
			comp, err := CreateComponent(tpl)
			if err != nil {
				t.Fatalf("CreateComponent: %v", err)
			}
			tt.check(t, comp)
		})
	}
}

func TestCreateComponentUnknownType(t *testing.T) {
	_, err := CreateComponent(Template{Name: "Mystery", Type: model.ComponentType("CAROUSEL")})
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if errors.GetCode(err) != errors.ErrCodeUnknownComponentType {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownComponentType)
	}
}
