// Package catalog provides the built-in library of component templates.
//
// A Catalog is constructed once at startup with New and passed to
// whatever needs it; it is read-only after construction. Templates bind
// a component type, nominal dimensions, and a property bag that the
// factory dispatch forwards as overrides.
package catalog

import (
	"sort"

	"github.com/jammo/wardrobe/pkg/errors"
	"github.com/jammo/wardrobe/pkg/model"
)

// Template is a named, preconfigured set of defaults used to
// instantiate a new component.
type Template struct {
	Name        string
	Description string
	Type        model.ComponentType
	Width       float64
	Height      float64
	Depth       float64
	Properties  map[string]any
}

// Catalog is a fixed registry of templates keyed by name.
type Catalog struct {
	templates map[string]Template
	order     []string
}

// New builds the catalog with the built-in template table.
func New() *Catalog {
	c := &Catalog{templates: make(map[string]Template)}
	for _, t := range builtinTemplates() {
		c.templates[t.Name] = t
		c.order = append(c.order, t.Name)
	}
	return c
}

// Get returns the template with the given name.
func (c *Catalog) Get(name string) (Template, bool) {
	t, ok := c.templates[name]
	return t, ok
}

// All returns every template in registration order.
func (c *Catalog) All() []Template {
	out := make([]Template, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.templates[name])
	}
	return out
}

// ByType returns the templates of one component type, sorted by name.
func (c *Catalog) ByType(t model.ComponentType) []Template {
	var out []Template
	for _, name := range c.order {
		if tpl := c.templates[name]; tpl.Type == t {
			out = append(out, tpl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all template names in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// CreateComponent instantiates a component from a template, dispatching
// on the template's type and forwarding the property bag as factory
// overrides. Unknown or bare types are the catalog's only failure mode.
func CreateComponent(tpl Template) (*model.Component, error) {
	opts := []model.Option{
		model.WithSize(tpl.Width, tpl.Height, tpl.Depth),
	}
	opts = append(opts, propertyOptions(tpl.Properties)...)

	switch tpl.Type {
	case model.TypeDrawerUnit:
		return model.NewDrawerUnit(tpl.Name, opts...), nil
	case model.TypeHangingSpace:
		return model.NewHangingSpace(tpl.Name, opts...), nil
	case model.TypeShelf:
		return model.NewShelf(tpl.Name, opts...), nil
	case model.TypeOverhead:
		return model.NewOverhead(tpl.Name, opts...), nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownComponentType,
			"unknown component type: %s", tpl.Type)
	}
}

// propertyOptions maps known property-bag keys to factory options.
// Unknown keys are ignored; options for a foreign variant are no-ops by
// construction.
func propertyOptions(props map[string]any) []model.Option {
	var opts []model.Option
	for key, val := range props {
		switch key {
		case "drawer_count":
			if n, ok := asInt(val); ok {
				opts = append(opts, model.WithDrawerCount(n))
			}
		case "drawer_heights":
			if hs, ok := val.([]float64); ok {
				opts = append(opts, model.WithDrawerHeights(hs))
			}
		case "handle_style":
			if s, ok := val.(string); ok {
				opts = append(opts, model.WithHandleStyle(s))
			}
		case "rail_height":
			if f, ok := asFloat(val); ok {
				opts = append(opts, model.WithRailHeight(f))
			}
		case "rail_type":
			if s, ok := val.(string); ok {
				opts = append(opts, model.WithRailType(s))
			}
		case "clothing_type":
			if s, ok := val.(string); ok {
				opts = append(opts, model.WithClothingType(s))
			}
		case "adjustable":
			if b, ok := val.(bool); ok {
				opts = append(opts, model.WithAdjustable(b))
			}
		case "shelf_thickness":
			if f, ok := asFloat(val); ok {
				opts = append(opts, model.WithShelfThickness(f))
			}
		case "load_capacity":
			if f, ok := asFloat(val); ok {
				opts = append(opts, model.WithLoadCapacity(f))
			}
		case "door_type":
			if s, ok := val.(string); ok {
				opts = append(opts, model.WithDoorType(s))
			}
		case "door_count":
			if n, ok := asInt(val); ok {
				opts = append(opts, model.WithDoorCount(n))
			}
		case "has_shelf":
			if b, ok := val.(bool); ok {
				opts = append(opts, model.WithHasShelf(b))
			}
		}
	}
	return opts
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// builtinTemplates is the fixed template table.
func builtinTemplates() []Template {
	return []Template{
		{
			Name:        "4-Drawer Unit",
			Description: "Standard 4-drawer unit with bar handles",
			Type:        model.TypeDrawerUnit,
			Width:       600, Height: 800, Depth: 500,
			Properties: map[string]any{"drawer_count": 4, "handle_style": model.HandleBar},
		},
		{
			Name:        "3-Drawer Unit (Deep)",
			Description: "3-drawer unit with deeper drawers",
			Type:        model.TypeDrawerUnit,
			Width:       600, Height: 750, Depth: 500,
			Properties: map[string]any{"drawer_count": 3, "handle_style": model.HandleBar},
		},
		{
			Name:        "5-Drawer Unit (Narrow)",
			Description: "Narrow 5-drawer unit for accessories",
			Type:        model.TypeDrawerUnit,
			Width:       450, Height: 750, Depth: 500,
			Properties: map[string]any{"drawer_count": 5, "handle_style": model.HandleKnob},
		},
		{
			Name:        "Full-Length Hanging",
			Description: "Full-length hanging for coats and dresses",
			Type:        model.TypeHangingSpace,
			Width:       800, Height: 1800, Depth: 580,
			Properties: map[string]any{"rail_type": model.RailSingle, "clothing_type": model.ClothingFullLength},
		},
		{
			Name:        "Double Hanging",
			Description: "Two rails for shirts and pants",
			Type:        model.TypeHangingSpace,
			Width:       800, Height: 1800, Depth: 580,
			Properties: map[string]any{"rail_type": model.RailDouble, "clothing_type": model.ClothingHalfLength},
		},
		{
			Name:        "Shirt Hanging",
			Description: "Single rail for shirts",
			Type:        model.TypeHangingSpace,
			Width:       600, Height: 1000, Depth: 580,
			Properties: map[string]any{"rail_type": model.RailSingle, "clothing_type": model.ClothingShirts},
		},
		{
			Name:        "Standard Shelf",
			Description: "Standard adjustable shelf",
			Type:        model.TypeShelf,
			Width:       800, Height: 18, Depth: 500,
			Properties: map[string]any{"adjustable": true, "shelf_thickness": 18.0},
		},
		{
			Name:        "Wide Shelf",
			Description: "Wide shelf for folded items",
			Type:        model.TypeShelf,
			Width:       1200, Height: 18, Depth: 500,
			Properties: map[string]any{"adjustable": true, "shelf_thickness": 18.0},
		},
		{
			Name:        "Overhead Cabinet (2 Door)",
			Description: "Two-door overhead storage cabinet",
			Type:        model.TypeOverhead,
			Width:       800, Height: 400, Depth: 580,
			Properties: map[string]any{"door_type": model.DoorHinged, "door_count": 2, "has_shelf": true},
		},
		{
			Name:        "Lift-Up Overhead",
			Description: "Overhead with lift-up door",
			Type:        model.TypeOverhead,
			Width:       600, Height: 350, Depth: 580,
			Properties: map[string]any{"door_type": model.DoorLiftUp, "door_count": 1, "has_shelf": false},
		},
		{
			Name:        "Wide Overhead (3 Door)",
			Description: "Three-door overhead cabinet",
			Type:        model.TypeOverhead,
			Width:       1200, Height: 400, Depth: 580,
			Properties: map[string]any{"door_type": model.DoorHinged, "door_count": 3, "has_shelf": true},
		},
	}
}
