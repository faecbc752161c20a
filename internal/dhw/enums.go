package dhw

import (
	"fmt"
	"strings"
)

// Material is a hot-water pipe material.
type Material int

const (
	CopperM Material = iota
	CopperL
	CopperK
	CpvcCtsSdr
	CpvcSch40
	Pex
	Pe
	PexCtsSdr
)

var materialNames = [...]string{
	CopperM:    "COPPER_M",
	CopperL:    "COPPER_L",
	CopperK:    "COPPER_K",
	CpvcCtsSdr: "CPVC_CTS_SDR",
	CpvcSch40:  "CPVC_SCH_40",
	Pex:        "PEX",
	Pe:         "PE",
	PexCtsSdr:  "PEX_CTS_SDR",
}

func (m Material) String() string {
	if m < 0 || int(m) >= len(materialNames) {
		return fmt.Sprintf("Material(%d)", int(m))
	}
	return materialNames[m]
}

// ParseMaterial accepts the canonical names, case and separator insensitive,
// or the 1-based index used by the catalogue ("1-COPPER_M" style prefixes
// are accepted too).
func ParseMaterial(s string) (Material, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i, name := range materialNames {
		if key == name || strings.HasSuffix(key, "_"+name) || key == fmt.Sprint(i+1) {
			return Material(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Material) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Material) UnmarshalText(b []byte) error {
	v, err := ParseMaterial(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Quality is the workmanship of pipe insulation.
type Quality int

const (
	QualityNone Quality = iota
	QualityModerate
	QualityGood
)

func (q Quality) String() string {
	switch q {
	case QualityNone:
		return "none"
	case QualityModerate:
		return "moderate"
	case QualityGood:
		return "good"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "1", "1-none":
		return QualityNone, nil
	case "moderate", "2", "2-moderate":
		return QualityModerate, nil
	case "good", "3", "3-good":
		return QualityGood, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

func (q Quality) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (q *Quality) UnmarshalText(b []byte) error {
	v, err := ParseQuality(string(b))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
