// Package model defines the wardrobe planner's domain entities: the
// component variants placed inside a frame, the frame itself, project
// metadata, and the project aggregate that owns them.
//
// # Coordinate space
//
// All lengths are millimeters. Positions are frame-relative with the
// origin at the frame's bottom-left corner and Y increasing upward.
// Render surfaces flip into their own Y-down pixel space; the model
// never does.
//
// # Components
//
// Component is a closed tagged hierarchy: one struct carries the base
// record shared by every kind, plus at most one non-nil variant
// attribute struct selected by the Type tag. Code that cares about a
// variant switches on Type rather than type-asserting.
//
// Components are created only through the New* factories, which assign
// defaults and a fresh ID. Identity is the ID alone; it never changes
// after creation.
package model

import (
	"github.com/google/uuid"
)

// ComponentType discriminates the component variants.
type ComponentType string

// The closed set of component types.
const (
	TypeFrame        ComponentType = "FRAME"
	TypeDrawerUnit   ComponentType = "DRAWER_UNIT"
	TypeHangingSpace ComponentType = "HANGING_SPACE"
	TypeShelf        ComponentType = "SHELF"
	TypeOverhead     ComponentType = "OVERHEAD"
	TypeDivider      ComponentType = "DIVIDER"
)

// Valid reports whether t is a member of the closed type set.
func (t ComponentType) Valid() bool {
	switch t {
	case TypeFrame, TypeDrawerUnit, TypeHangingSpace, TypeShelf, TypeOverhead, TypeDivider:
		return true
	}
	return false
}

// Dimensions of a component in millimeters. All positive by convention;
// the type itself does not enforce it.
type Dimensions struct {
	Width  float64
	Height float64
	Depth  float64
}

// Position of a component within the frame, in millimeters from the
// frame's bottom-left corner, Y up.
type Position struct {
	X float64
	Y float64
}

// Handle styles for drawer units.
const (
	HandleBar      = "bar"
	HandleKnob     = "knob"
	HandleRecessed = "recessed"
	HandleNone     = "none"
)

// Rail types for hanging spaces.
const (
	RailSingle = "single"
	RailDouble = "double"
)

// Clothing types for hanging spaces.
const (
	ClothingFullLength = "full_length"
	ClothingHalfLength = "half_length"
	ClothingShirts     = "shirts"
)

// Door types for overhead cabinets.
const (
	DoorHinged  = "hinged"
	DoorLiftUp  = "lift_up"
	DoorSliding = "sliding"
)

// DrawerAttrs holds the drawer-unit variant fields.
// DrawerHeights is derived once at creation as an equal split of the
// unit height; a later height change leaves the stored split untouched.
// SetDrawerCount is the one operation that re-derives it.
type DrawerAttrs struct {
	DrawerCount   int
	DrawerHeights []float64
	HandleStyle   string
}

// HangingAttrs holds the hanging-space variant fields. RailHeight is
// measured from the component's bottom edge.
type HangingAttrs struct {
	RailHeight   float64
	RailType     string
	ClothingType string
}

// ShelfAttrs holds the shelf variant fields. LoadCapacity is a
// descriptive label in kilograms, not a computed limit.
type ShelfAttrs struct {
	Adjustable     bool
	ShelfThickness float64
	LoadCapacity   float64
}

// OverheadAttrs holds the overhead-cabinet variant fields.
type OverheadAttrs struct {
	DoorType  string
	DoorCount int
	HasShelf  bool
}

// Component is one placed furniture item. The base fields are shared by
// every variant; exactly one of the variant attribute pointers is
// non-nil for the four rich types, and all are nil for a bare component
// (FRAME, DIVIDER, or a downgraded unknown type from an old file).
type Component struct {
	ID         string
	Type       ComponentType
	Name       string
	Dimensions Dimensions
	Position   Position
	Color      string
	Label      string
	Notes      string
	Locked     bool

	Drawer   *DrawerAttrs
	Hanging  *HangingAttrs
	Shelf    *ShelfAttrs
	Overhead *OverheadAttrs
}

// Bounds returns the component's footprint in model space.
func (c *Component) Bounds() (x, y, w, h float64) {
	return c.Position.X, c.Position.Y, c.Dimensions.Width, c.Dimensions.Height
}

// DisplayLabel returns the label if set, otherwise the name.
func (c *Component) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// Clone returns a deep copy of the component, including variant
// attributes. The copy keeps the same ID; callers that need a distinct
// identity must assign one.
func (c *Component) Clone() *Component {
	out := *c
	if c.Drawer != nil {
		d := *c.Drawer
		d.DrawerHeights = append([]float64(nil), c.Drawer.DrawerHeights...)
		out.Drawer = &d
	}
	if c.Hanging != nil {
		h := *c.Hanging
		out.Hanging = &h
	}
	if c.Shelf != nil {
		s := *c.Shelf
		out.Shelf = &s
	}
	if c.Overhead != nil {
		o := *c.Overhead
		out.Overhead = &o
	}
	return &out
}

// SetDrawerCount changes the drawer count and re-derives the height
// split as count equal shares of the current unit height. It is a no-op
// for non-drawer components or a count below one.
func (c *Component) SetDrawerCount(count int) {
	if c.Drawer == nil || count < 1 {
		return
	}
	c.Drawer.DrawerCount = count
	c.Drawer.DrawerHeights = equalSplit(c.Dimensions.Height, count)
}

func equalSplit(total float64, n int) []float64 {
	heights := make([]float64, n)
	share := total / float64(n)
	for i := range heights {
		heights[i] = share
	}
	return heights
}

// Option mutates a component under construction. Variant options apply
// only when the matching attribute struct is present and are otherwise
// ignored.
type Option func(*Component)

// WithID overrides the generated component ID. Used by the codec to
// restore persisted identity.
func WithID(id string) Option { return func(c *Component) { c.ID = id } }

// WithSize sets width, height, and depth in millimeters.
func WithSize(w, h, d float64) Option {
	return func(c *Component) { c.Dimensions = Dimensions{Width: w, Height: h, Depth: d} }
}

// WithPosition sets the frame-relative position in millimeters.
func WithPosition(x, y float64) Option {
	return func(c *Component) { c.Position = Position{X: x, Y: y} }
}

// WithColor sets the fill color (hex string).
func WithColor(color string) Option { return func(c *Component) { c.Color = color } }

// WithLabel sets the display label drawn on the component.
func WithLabel(label string) Option { return func(c *Component) { c.Label = label } }

// WithNotes sets free-form notes.
func WithNotes(notes string) Option { return func(c *Component) { c.Notes = notes } }

// WithLocked marks the component immovable in editors.
func WithLocked(locked bool) Option { return func(c *Component) { c.Locked = locked } }

// WithDrawerCount sets the number of drawers on a drawer unit.
func WithDrawerCount(n int) Option {
	return func(c *Component) {
		if c.Drawer != nil {
			c.Drawer.DrawerCount = n
		}
	}
}

// WithDrawerHeights sets an explicit drawer height split.
func WithDrawerHeights(heights []float64) Option {
	return func(c *Component) {
		if c.Drawer != nil {
			c.Drawer.DrawerHeights = append([]float64(nil), heights...)
		}
	}
}

// WithHandleStyle sets the drawer handle style.
func WithHandleStyle(style string) Option {
	return func(c *Component) {
		if c.Drawer != nil {
			c.Drawer.HandleStyle = style
		}
	}
}

// WithRailHeight sets the rail height from the component's bottom.
func WithRailHeight(h float64) Option {
	return func(c *Component) {
		if c.Hanging != nil {
			c.Hanging.RailHeight = h
		}
	}
}

// WithRailType sets single or double rails.
func WithRailType(t string) Option {
	return func(c *Component) {
		if c.Hanging != nil {
			c.Hanging.RailType = t
		}
	}
}

// WithClothingType sets the intended clothing length.
func WithClothingType(t string) Option {
	return func(c *Component) {
		if c.Hanging != nil {
			c.Hanging.ClothingType = t
		}
	}
}

// WithAdjustable marks a shelf height-adjustable.
func WithAdjustable(adjustable bool) Option {
	return func(c *Component) {
		if c.Shelf != nil {
			c.Shelf.Adjustable = adjustable
		}
	}
}

// WithShelfThickness sets the shelf board thickness.
func WithShelfThickness(t float64) Option {
	return func(c *Component) {
		if c.Shelf != nil {
			c.Shelf.ShelfThickness = t
		}
	}
}

// WithLoadCapacity sets the descriptive load capacity in kilograms.
func WithLoadCapacity(kg float64) Option {
	return func(c *Component) {
		if c.Shelf != nil {
			c.Shelf.LoadCapacity = kg
		}
	}
}

// WithDoorType sets the overhead door mechanism.
func WithDoorType(t string) Option {
	return func(c *Component) {
		if c.Overhead != nil {
			c.Overhead.DoorType = t
		}
	}
}

// WithDoorCount sets the number of overhead doors.
func WithDoorCount(n int) Option {
	return func(c *Component) {
		if c.Overhead != nil {
			c.Overhead.DoorCount = n
		}
	}
}

// WithHasShelf toggles the internal shelf of an overhead cabinet.
func WithHasShelf(has bool) Option {
	return func(c *Component) {
		if c.Overhead != nil {
			c.Overhead.HasShelf = has
		}
	}
}

// NewDrawerUnit creates a drawer unit with a fresh ID and the nominal
// 600x800x500 size, three drawers, and bar handles. If no explicit
// height split is given, the drawers share the final height equally.
func NewDrawerUnit(name string, opts ...Option) *Component {
	c := &Component{
		ID:         uuid.NewString(),
		Type:       TypeDrawerUnit,
		Name:       name,
		Dimensions: Dimensions{Width: 600, Height: 800, Depth: 500},
		Drawer: &DrawerAttrs{
			DrawerCount: 3,
			HandleStyle: HandleBar,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.Drawer.DrawerHeights) == 0 && c.Drawer.DrawerCount > 0 {
		c.Drawer.DrawerHeights = equalSplit(c.Dimensions.Height, c.Drawer.DrawerCount)
	}
	return c
}

// NewHangingSpace creates a hanging space with a fresh ID and the
// nominal 800x1800x580 size, a single full-length rail at 1700 mm.
func NewHangingSpace(name string, opts ...Option) *Component {
	c := &Component{
		ID:         uuid.NewString(),
		Type:       TypeHangingSpace,
		Name:       name,
		Dimensions: Dimensions{Width: 800, Height: 1800, Depth: 580},
		Hanging: &HangingAttrs{
			RailHeight:   1700,
			RailType:     RailSingle,
			ClothingType: ClothingFullLength,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewShelf creates a shelf with a fresh ID and the nominal 800x18x500
// size, adjustable, 18 mm board, 30 kg descriptive capacity.
func NewShelf(name string, opts ...Option) *Component {
	c := &Component{
		ID:         uuid.NewString(),
		Type:       TypeShelf,
		Name:       name,
		Dimensions: Dimensions{Width: 800, Height: 18, Depth: 500},
		Shelf: &ShelfAttrs{
			Adjustable:     true,
			ShelfThickness: 18,
			LoadCapacity:   30,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewOverhead creates an overhead cabinet with a fresh ID and the
// nominal 800x400x580 size, two hinged doors, and an internal shelf.
func NewOverhead(name string, opts ...Option) *Component {
	c := &Component{
		ID:         uuid.NewString(),
		Type:       TypeOverhead,
		Name:       name,
		Dimensions: Dimensions{Width: 800, Height: 400, Depth: 580},
		Overhead: &OverheadAttrs{
			DoorType:  DoorHinged,
			DoorCount: 2,
			HasShelf:  true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewBareComponent creates a component of the given type with no variant
// attributes. Used for dividers and for downgrading unknown type
// discriminators at load time.
func NewBareComponent(t ComponentType, name string, opts ...Option) *Component {
	c := &Component{
		ID:   uuid.NewString(),
		Type: t,
		Name: name,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
