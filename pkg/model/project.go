package model

// CurrentVersion is the document version written by this build. The
// codec rejects anything outside its supported set at load time.
const CurrentVersion = "1.0"

// UnitSystem selects the display unit system. Storage is always
// millimeters regardless.
type UnitSystem string

// The supported unit systems.
const (
	UnitMetric   UnitSystem = "METRIC"
	UnitImperial UnitSystem = "IMPERIAL"
)

// Valid reports whether u is a known unit system.
func (u UnitSystem) Valid() bool {
	return u == UnitMetric || u == UnitImperial
}

// Project is the aggregate root: frame, metadata, the ordered component
// collection, and opaque view state. Component order is insertion order,
// which is also z-order and list-display order.
//
// A Project is owned by exactly one context at a time. Nothing here is
// safe for concurrent mutation; concurrent editors must serialize their
// writes through a single owner.
type Project struct {
	Version    string
	Metadata   ProjectMetadata
	UnitSystem UnitSystem
	Frame      WardrobeFrame
	Components []*Component

	// View state, stored and round-tripped but never interpreted here.
	ZoomLevel      float64
	ScrollPosition [2]float64
}

// NewProject creates an empty project with application defaults.
func NewProject() *Project {
	return &Project{
		Version:    CurrentVersion,
		Metadata:   NewMetadata(),
		UnitSystem: UnitMetric,
		Frame:      DefaultFrame(),
		ZoomLevel:  1.0,
	}
}

// AddComponent appends c to the collection and touches ModifiedDate.
// No duplicate-ID check is performed; the factories guarantee fresh IDs,
// and callers that bypass them own the uniqueness invariant.
func (p *Project) AddComponent(c *Component) {
	p.Components = append(p.Components, c)
	p.touch()
}

// InsertComponentAt inserts c at index i, clamped to the valid range,
// and touches ModifiedDate. Used to restore a removed component at its
// original z-order.
func (p *Project) InsertComponentAt(i int, c *Component) {
	if i < 0 {
		i = 0
	}
	if i > len(p.Components) {
		i = len(p.Components)
	}
	p.Components = append(p.Components, nil)
	copy(p.Components[i+1:], p.Components[i:])
	p.Components[i] = c
	p.touch()
}

// RemoveComponent removes the first component with the given ID and
// touches ModifiedDate. Returns nil if no component matches.
func (p *Project) RemoveComponent(id string) *Component {
	for i, c := range p.Components {
		if c.ID == id {
			p.Components = append(p.Components[:i], p.Components[i+1:]...)
			p.touch()
			return c
		}
	}
	return nil
}

// GetComponent returns the first component with the given ID, or nil.
func (p *Project) GetComponent(id string) *Component {
	for _, c := range p.Components {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// IndexOf returns the position of the component with the given ID in
// z-order, or -1.
func (p *Project) IndexOf(id string) int {
	for i, c := range p.Components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// touch updates ModifiedDate. Only structural mutations (add/remove)
// call this; direct field edits deliberately do not.
func (p *Project) touch() {
	p.Metadata.ModifiedDate = Timestamp()
}
