package model

// WardrobeFrame is the outer carcass enclosing all components. External
// dimensions are stored; the usable internal space is derived.
type WardrobeFrame struct {
	Width          float64
	Height         float64
	Depth          float64
	PanelThickness float64
	TopClearance   float64
	BaseHeight     float64
}

// DefaultFrame returns the application default carcass: 4800x2400x600
// with 18 mm panels, 50 mm top clearance, and a 100 mm plinth.
func DefaultFrame() WardrobeFrame {
	return WardrobeFrame{
		Width:          4800,
		Height:         2400,
		Depth:          600,
		PanelThickness: 18,
		TopClearance:   50,
		BaseHeight:     100,
	}
}

// InternalWidth is the usable width after both side panels.
func (f WardrobeFrame) InternalWidth() float64 {
	return f.Width - 2*f.PanelThickness
}

// InternalHeight is the usable height between the plinth and the top
// clearance.
func (f WardrobeFrame) InternalHeight() float64 {
	return f.Height - f.TopClearance - f.BaseHeight
}
