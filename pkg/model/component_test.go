package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFactoryDefaults(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Component
		wantType ComponentType
		wantDims Dimensions
	}{
		{
			name:     "drawer unit",
			build:    func() *Component { return NewDrawerUnit("Drawers") },
			wantType: TypeDrawerUnit,
			wantDims: Dimensions{Width: 600, Height: 800, Depth: 500},
		},
		{
			name:     "hanging space",
			build:    func() *Component { return NewHangingSpace("Hanging") },
			wantType: TypeHangingSpace,
			wantDims: Dimensions{Width: 800, Height: 1800, Depth: 580},
		},
		{
			name:     "shelf",
			build:    func() *Component { return NewShelf("Shelf") },
			wantType: TypeShelf,
			wantDims: Dimensions{Width: 800, Height: 18, Depth: 500},
		},
		{
			name:     "overhead",
			build:    func() *Component { return NewOverhead("Overhead") },
			wantType: TypeOverhead,
			wantDims: Dimensions{Width: 800, Height: 400, Depth: 580},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build()
			if c.ID == "" {
				t.Error("factory did not assign an ID")
			}
			if c.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", c.Type, tt.wantType)
			}
			if c.Dimensions != tt.wantDims {
				t.Errorf("Dimensions = %v, want %v", c.Dimensions, tt.wantDims)
			}
		})
	}
}

func TestFactoryIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := NewShelf("Shelf")
		if seen[c.ID] {
			t.Fatalf("duplicate ID %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestDrawerHeightsEqualSplit(t *testing.T) {
	c := NewDrawerUnit("Drawers", WithSize(600, 900, 500), WithDrawerCount(4))

	want := []float64{225, 225, 225, 225}
	if diff := cmp.Diff(want, c.Drawer.DrawerHeights); diff != "" {
		t.Errorf("DrawerHeights mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawerHeightsExplicitOverride(t *testing.T) {
	heights := []float64{300, 250, 250}
	c := NewDrawerUnit("Drawers", WithDrawerHeights(heights))

	if diff := cmp.Diff(heights, c.Drawer.DrawerHeights); diff != "" {
		t.Errorf("DrawerHeights mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawerHeightsPreservedOnResize(t *testing.T) {
	c := NewDrawerUnit("Drawers")
	before := append([]float64(nil), c.Drawer.DrawerHeights...)

	// A later height edit does not re-derive the stored split.
	c.Dimensions.Height = 1200

	if diff := cmp.Diff(before, c.Drawer.DrawerHeights); diff != "" {
		t.Errorf("DrawerHeights changed on resize (-want +got):\n%s", diff)
	}
}

func TestSetDrawerCountRederivesHeights(t *testing.T) {
	c := NewDrawerUnit("Drawers", WithSize(600, 1000, 500))

	c.SetDrawerCount(5)

	if c.Drawer.DrawerCount != 5 {
		t.Errorf("DrawerCount = %d, want 5", c.Drawer.DrawerCount)
	}
	want := []float64{200, 200, 200, 200, 200}
	if diff := cmp.Diff(want, c.Drawer.DrawerHeights); diff != "" {
		t.Errorf("DrawerHeights mismatch (-want +got):\n%s", diff)
	}

	// Invalid counts are ignored.
	c.SetDrawerCount(0)
	if c.Drawer.DrawerCount != 5 {
		t.Errorf("DrawerCount = %d after SetDrawerCount(0), want 5", c.Drawer.DrawerCount)
	}
}

func TestVariantOptionsIgnoredOnWrongVariant(t *testing.T) {
	c := NewShelf("Shelf", WithDrawerCount(9), WithRailHeight(100), WithDoorCount(7))

	if c.Drawer != nil || c.Hanging != nil || c.Overhead != nil {
		t.Error("foreign variant attributes attached to a shelf")
	}
	if c.Shelf == nil {
		t.Fatal("shelf attributes missing")
	}
}

func TestBaseOptions(t *testing.T) {
	c := NewHangingSpace("Hanging",
		WithID("fixed-id"),
		WithPosition(100, 200),
		WithColor("#F5F0E6"),
		WithLabel("His side"),
		WithNotes("double check rail stock"),
		WithLocked(true),
		WithRailType(RailDouble),
		WithClothingType(ClothingHalfLength),
	)

	if c.ID != "fixed-id" {
		t.Errorf("ID = %q, want fixed-id", c.ID)
	}
	if c.Position != (Position{X: 100, Y: 200}) {
		t.Errorf("Position = %v", c.Position)
	}
	if !c.Locked {
		t.Error("Locked not applied")
	}
	if c.Hanging.RailType != RailDouble || c.Hanging.ClothingType != ClothingHalfLength {
		t.Errorf("hanging attrs = %+v", c.Hanging)
	}
}

func TestDisplayLabel(t *testing.T) {
	c := NewShelf("Shelf A")
	if got := c.DisplayLabel(); got != "Shelf A" {
		t.Errorf("DisplayLabel() = %q, want name", got)
	}
	c.Label = "Sweaters"
	if got := c.DisplayLabel(); got != "Sweaters" {
		t.Errorf("DisplayLabel() = %q, want label", got)
	}
}

func TestClone(t *testing.T) {
	orig := NewDrawerUnit("Drawers", WithDrawerCount(4))
	clone := orig.Clone()

	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	// Deep copy: mutating the clone's variant data leaves the original alone.
	clone.Drawer.DrawerHeights[0] = 999
	clone.Drawer.DrawerCount = 1
	if orig.Drawer.DrawerHeights[0] == 999 || orig.Drawer.DrawerCount == 1 {
		t.Error("clone shares drawer attributes with the original")
	}
}

func TestComponentTypeValid(t *testing.T) {
	for _, valid := range []ComponentType{
		TypeFrame, TypeDrawerUnit, TypeHangingSpace, TypeShelf, TypeOverhead, TypeDivider,
	} {
		if !valid.Valid() {
			t.Errorf("%v reported invalid", valid)
		}
	}
	if ComponentType("CORNER_UNIT").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestInternalFrameDimensions(t *testing.T) {
	f := DefaultFrame()

	if got := f.InternalWidth(); got != 4800-2*18 {
		t.Errorf("InternalWidth() = %v, want %v", got, 4800-2*18)
	}
	if got := f.InternalHeight(); got != 2400-50-100 {
		t.Errorf("InternalHeight() = %v, want %v", got, 2400-50-100)
	}
}
