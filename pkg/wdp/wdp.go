// Package wdp implements the .wdp project file format.
//
// A .wdp file is a single JSON document carrying the full project:
// version tag, metadata, unit system, frame, the ordered component list,
// and view state. Encode and Decode map between the document and the
// model aggregate; Save and Load add the file-level conventions
// (extension normalization, byte-for-byte backups, error codes).
//
// Only version "1.0" documents are accepted. Decoding runs its checks
// in a fixed order: parse, then version membership, then per-field
// reconstruction. A version or parse failure never produces a partial
// project; callers keep whatever they had.
package wdp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jammo/wardrobe/pkg/errors"
	"github.com/jammo/wardrobe/pkg/model"
)

// Extension is the canonical project file extension.
const Extension = ".wdp"

// supportedVersions is the set of document versions Decode accepts.
var supportedVersions = map[string]bool{
	"1.0": true,
}

// Document shapes. Required fields are pointers so a missing key is
// distinguishable from a zero value.

type document struct {
	Version    *string           `json:"version"`
	Metadata   metadataRecord    `json:"metadata"`
	UnitSystem string            `json:"unit_system"`
	Frame      *frameRecord      `json:"frame"`
	Components []componentRecord `json:"components"`
	ViewState  viewStateRecord   `json:"view_state"`
}

// Defaultable metadata fields are pointers too: an absent key falls back
// to the fresh-project value, but an empty string the user saved is kept.
type metadataRecord struct {
	ProjectName   *string `json:"project_name"`
	ClientName    string  `json:"client_name"`
	ClientAddress string  `json:"client_address"`
	ClientPhone   string  `json:"client_phone"`
	Notes         string  `json:"notes"`
	CreatedDate   *string `json:"created_date"`
	ModifiedDate  *string `json:"modified_date"`
}

type frameRecord struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Depth          float64 `json:"depth"`
	PanelThickness float64 `json:"panel_thickness"`
	TopClearance   float64 `json:"top_clearance"`
	BaseHeight     float64 `json:"base_height"`
}

type dimensionsRecord struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
	Depth  *float64 `json:"depth"`
}

type positionRecord struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// componentRecord flattens the base fields and every variant's fields
// into one object, discriminated by component_type. Variant fields are
// omitted for components of other types.
type componentRecord struct {
	ID            *string           `json:"id"`
	ComponentType *string           `json:"component_type"`
	Name          *string           `json:"name"`
	Dimensions    *dimensionsRecord `json:"dimensions"`
	Position      *positionRecord   `json:"position"`
	Color         string            `json:"color,omitempty"`
	Label         string            `json:"label,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Locked        bool              `json:"locked"`

	// DRAWER_UNIT
	DrawerCount   *int      `json:"drawer_count,omitempty"`
	DrawerHeights []float64 `json:"drawer_heights,omitempty"`
	HandleStyle   *string   `json:"handle_style,omitempty"`

	// HANGING_SPACE
	RailHeight   *float64 `json:"rail_height,omitempty"`
	RailType     *string  `json:"rail_type,omitempty"`
	ClothingType *string  `json:"clothing_type,omitempty"`

	// SHELF
	Adjustable     *bool    `json:"adjustable,omitempty"`
	ShelfThickness *float64 `json:"shelf_thickness,omitempty"`
	LoadCapacity   *float64 `json:"load_capacity,omitempty"`

	// OVERHEAD
	DoorType  *string `json:"door_type,omitempty"`
	DoorCount *int    `json:"door_count,omitempty"`
	HasShelf  *bool   `json:"has_shelf,omitempty"`
}

type viewStateRecord struct {
	ZoomLevel      float64    `json:"zoom_level"`
	ScrollPosition [2]float64 `json:"scroll_position"`
}

// Encode serializes the project to an indented JSON document.
func Encode(p *model.Project) ([]byte, error) {
	doc := document{
		Version: &p.Version,
		Metadata: metadataRecord{
			ProjectName:   &p.Metadata.ProjectName,
			ClientName:    p.Metadata.ClientName,
			ClientAddress: p.Metadata.ClientAddress,
			ClientPhone:   p.Metadata.ClientPhone,
			Notes:         p.Metadata.Notes,
			CreatedDate:   &p.Metadata.CreatedDate,
			ModifiedDate:  &p.Metadata.ModifiedDate,
		},
		UnitSystem: string(p.UnitSystem),
		Frame: &frameRecord{
			Width:          p.Frame.Width,
			Height:         p.Frame.Height,
			Depth:          p.Frame.Depth,
			PanelThickness: p.Frame.PanelThickness,
			TopClearance:   p.Frame.TopClearance,
			BaseHeight:     p.Frame.BaseHeight,
		},
		Components: make([]componentRecord, 0, len(p.Components)),
		ViewState: viewStateRecord{
			ZoomLevel:      p.ZoomLevel,
			ScrollPosition: p.ScrollPosition,
		},
	}

	for _, c := range p.Components {
		doc.Components = append(doc.Components, encodeComponent(c))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode project")
	}
	return buf.Bytes(), nil
}

func encodeComponent(c *model.Component) componentRecord {
	id, typ, name := c.ID, string(c.Type), c.Name
	rec := componentRecord{
		ID:            &id,
		ComponentType: &typ,
		Name:          &name,
		Dimensions: &dimensionsRecord{
			Width:  &c.Dimensions.Width,
			Height: &c.Dimensions.Height,
			Depth:  &c.Dimensions.Depth,
		},
		Position: &positionRecord{
			X: &c.Position.X,
			Y: &c.Position.Y,
		},
		Color:  c.Color,
		Label:  c.Label,
		Notes:  c.Notes,
		Locked: c.Locked,
	}

	switch {
	case c.Drawer != nil:
		rec.DrawerCount = &c.Drawer.DrawerCount
		rec.DrawerHeights = c.Drawer.DrawerHeights
		rec.HandleStyle = &c.Drawer.HandleStyle
	case c.Hanging != nil:
		rec.RailHeight = &c.Hanging.RailHeight
		rec.RailType = &c.Hanging.RailType
		rec.ClothingType = &c.Hanging.ClothingType
	case c.Shelf != nil:
		rec.Adjustable = &c.Shelf.Adjustable
		rec.ShelfThickness = &c.Shelf.ShelfThickness
		rec.LoadCapacity = &c.Shelf.LoadCapacity
	case c.Overhead != nil:
		rec.DoorType = &c.Overhead.DoorType
		rec.DoorCount = &c.Overhead.DoorCount
		rec.HasShelf = &c.Overhead.HasShelf
	}
	return rec
}

// Decode parses a JSON document into a fully-populated project.
//
// Checks run in order: malformed JSON fails with INVALID_FORMAT, a
// version outside the supported set fails with UNSUPPORTED_VERSION, and
// a missing required field fails with MISSING_FIELD naming the field.
// An unknown component_type does not fail the document; that entry is
// downgraded to a bare component without variant attributes.
func Decode(data []byte) (*model.Project, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse project document")
	}

	if doc.Version == nil {
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: version")
	}
	if !supportedVersions[*doc.Version] {
		return nil, errors.New(errors.ErrCodeUnsupportedVersion, "unsupported file version: %s", *doc.Version)
	}

	p := model.NewProject()
	p.Version = *doc.Version

	if doc.Metadata.ProjectName != nil {
		p.Metadata.ProjectName = *doc.Metadata.ProjectName
	}
	p.Metadata.ClientName = doc.Metadata.ClientName
	p.Metadata.ClientAddress = doc.Metadata.ClientAddress
	p.Metadata.ClientPhone = doc.Metadata.ClientPhone
	p.Metadata.Notes = doc.Metadata.Notes
	if doc.Metadata.CreatedDate != nil {
		p.Metadata.CreatedDate = *doc.Metadata.CreatedDate
	}
	if doc.Metadata.ModifiedDate != nil {
		p.Metadata.ModifiedDate = *doc.Metadata.ModifiedDate
	}

	if doc.UnitSystem != "" {
		us := model.UnitSystem(doc.UnitSystem)
		if !us.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown unit system: %s", doc.UnitSystem)
		}
		p.UnitSystem = us
	}

	if doc.Frame != nil {
		p.Frame = model.WardrobeFrame{
			Width:          doc.Frame.Width,
			Height:         doc.Frame.Height,
			Depth:          doc.Frame.Depth,
			PanelThickness: doc.Frame.PanelThickness,
			TopClearance:   doc.Frame.TopClearance,
			BaseHeight:     doc.Frame.BaseHeight,
		}
	}

	p.Components = make([]*model.Component, 0, len(doc.Components))
	for _, rec := range doc.Components {
		c, err := decodeComponent(rec)
		if err != nil {
			return nil, err
		}
		p.Components = append(p.Components, c)
	}

	p.ZoomLevel = doc.ViewState.ZoomLevel
	if p.ZoomLevel == 0 {
		p.ZoomLevel = 1.0
	}
	p.ScrollPosition = doc.ViewState.ScrollPosition

	return p, nil
}

func decodeComponent(rec componentRecord) (*model.Component, error) {
	switch {
	case rec.ID == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: id")
	case rec.ComponentType == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: component_type")
	case rec.Name == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: name")
	case rec.Dimensions == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: dimensions")
	case rec.Dimensions.Width == nil || rec.Dimensions.Height == nil || rec.Dimensions.Depth == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: dimensions")
	case rec.Position == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: position")
	case rec.Position.X == nil || rec.Position.Y == nil:
		return nil, errors.New(errors.ErrCodeMissingField, "missing required field: position")
	}

	base := []model.Option{
		model.WithID(*rec.ID),
		model.WithSize(*rec.Dimensions.Width, *rec.Dimensions.Height, *rec.Dimensions.Depth),
		model.WithPosition(*rec.Position.X, *rec.Position.Y),
		model.WithColor(rec.Color),
		model.WithLabel(rec.Label),
		model.WithNotes(rec.Notes),
		model.WithLocked(rec.Locked),
	}

	typ := model.ComponentType(*rec.ComponentType)
	switch typ {
	case model.TypeDrawerUnit:
		opts := base
		if rec.DrawerCount != nil {
			opts = append(opts, model.WithDrawerCount(*rec.DrawerCount))
		}
		if rec.DrawerHeights != nil {
			opts = append(opts, model.WithDrawerHeights(rec.DrawerHeights))
		}
		if rec.HandleStyle != nil {
			opts = append(opts, model.WithHandleStyle(*rec.HandleStyle))
		}
		return model.NewDrawerUnit(*rec.Name, opts...), nil

	case model.TypeHangingSpace:
		opts := base
		if rec.RailHeight != nil {
			opts = append(opts, model.WithRailHeight(*rec.RailHeight))
		}
		if rec.RailType != nil {
			opts = append(opts, model.WithRailType(*rec.RailType))
		}
		if rec.ClothingType != nil {
			opts = append(opts, model.WithClothingType(*rec.ClothingType))
		}
		return model.NewHangingSpace(*rec.Name, opts...), nil

	case model.TypeShelf:
		opts := base
		if rec.Adjustable != nil {
			opts = append(opts, model.WithAdjustable(*rec.Adjustable))
		}
		if rec.ShelfThickness != nil {
			opts = append(opts, model.WithShelfThickness(*rec.ShelfThickness))
		}
		if rec.LoadCapacity != nil {
			opts = append(opts, model.WithLoadCapacity(*rec.LoadCapacity))
		}
		return model.NewShelf(*rec.Name, opts...), nil

	case model.TypeOverhead:
		opts := base
		if rec.DoorType != nil {
			opts = append(opts, model.WithDoorType(*rec.DoorType))
		}
		if rec.DoorCount != nil {
			opts = append(opts, model.WithDoorCount(*rec.DoorCount))
		}
		if rec.HasShelf != nil {
			opts = append(opts, model.WithHasShelf(*rec.HasShelf))
		}
		return model.NewOverhead(*rec.Name, opts...), nil

	default:
		// Unknown discriminators downgrade to the base shape instead of
		// failing the whole document. Variant fields are discarded; the
		// raw type tag survives the round trip.
		return model.NewBareComponent(typ, *rec.Name, base...), nil
	}
}

// Save writes the project to path, normalizing the extension to .wdp
// and touching ModifiedDate first. If the target already exists, its
// bytes are copied to a sibling .wdp.bak before the new content is
// written. Parent directories are created as needed.
func Save(p *model.Project, path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		path += Extension
	}

	p.Metadata.ModifiedDate = model.Timestamp()

	data, err := Encode(p)
	if err != nil {
		return "", err
	}

	if prev, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".bak", prev, 0o644); err != nil {
			return "", wrapWriteError(err, path+".bak")
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", wrapWriteError(err, dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", wrapWriteError(err, path)
	}
	return path, nil
}

// Load reads and decodes the project at path.
func Load(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		if os.IsPermission(err) {
			return nil, errors.Wrap(errors.ErrCodePermissionDenied, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Decode(data)
}

func wrapWriteError(err error, path string) error {
	if os.IsPermission(err) {
		return errors.Wrap(errors.ErrCodePermissionDenied, err, "cannot write to %s", path)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
}
