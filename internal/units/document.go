package units

// Document is the ambient unit context of the geometry host. Geometry
// coordinates are always expressed in the document unit.
type Document struct {
	Unit Unit
}

// MetricDocument is a document modelled in meters.
var MetricDocument = Document{Unit: M}

func (d Document) unit() Unit {
	if d.Unit == "" {
		return M
	}
	return d.Unit
}

// MetersPerUnit returns the length of one document unit in meters.
func (d Document) MetersPerUnit() float64 {
	sc, ok := scales[d.unit()]
	if !ok || sc.family != familyLength {
		return 1
	}
	return sc.factor
}

// FromMeters converts a length in meters to document units.
func (d Document) FromMeters(v float64) float64 {
	return v / d.MetersPerUnit()
}

// ToMeters converts a length in document units to meters.
func (d Document) ToMeters(v float64) float64 {
	return v * d.MetersPerUnit()
}

// AreaToM2 converts an area in squared document units to m².
func (d Document) AreaToM2(v float64) float64 {
	f := d.MetersPerUnit()
	return v * f * f
}

// VolumeToM3 converts a volume in cubed document units to m³.
func (d Document) VolumeToM3(v float64) float64 {
	f := d.MetersPerUnit()
	return v * f * f * f
}

// Validate checks the document unit is a length.
func (d Document) Validate() error {
	sc, ok := scales[d.unit()]
	if !ok || sc.family != familyLength {
		return &InvalidQuantityError{Field: "document_unit", Input: string(d.Unit), Reason: "not a length unit"}
	}
	return nil
}
