// Package export prepares and runs the external writer that turns a model
// file into a WUFI-Passive XML document.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gophb/internal/validate"
)

var ErrSettings = errors.New("invalid export settings")

// MergeFaces is either off, on with the model tolerance, or on with an
// explicit tolerance.
type MergeFaces struct {
	Enabled   bool
	Tolerance float64
}

// ParseMergeFaces reads "true"/"false" or a tolerance. A tolerance of 0 is
// off.
func ParseMergeFaces(s string) (MergeFaces, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MergeFaces{}, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return MergeFaces{Enabled: b}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return MergeFaces{}, fmt.Errorf("%w: merge_faces %q is neither a boolean nor a tolerance", ErrSettings, s)
	}
	return MergeFaces{Enabled: f > 0, Tolerance: f}, nil
}

func (m MergeFaces) String() string {
	if m.Enabled && m.Tolerance > 0 {
		return strconv.FormatFloat(m.Tolerance, 'g', -1, 64)
	}
	return strconv.FormatBool(m.Enabled)
}

func (m MergeFaces) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MergeFaces) UnmarshalText(b []byte) error {
	v, err := ParseMergeFaces(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Settings control how the writer groups and merges model objects.
type Settings struct {
	GroupComponents         bool       `json:"group_components" yaml:"group_components"`
	MergeFaces              MergeFaces `json:"merge_faces" yaml:"merge_faces"`
	MergeSpacesByERV        bool       `json:"merge_spaces_by_erv" yaml:"merge_spaces_by_erv"`
	MergeExhaustVentDevices bool       `json:"merge_exhaust_vent_devices" yaml:"merge_exhaust_vent_devices"`
	LogLevel                int        `json:"log_level" yaml:"log_level" validate:"oneof=0 10 20 30 40 50"`
}

func DefaultSettings() Settings {
	return Settings{GroupComponents: true, LogLevel: 0}
}

// Validate checks the log level.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrSettings, err)
	}
	return nil
}

// Args are the settings in the writer's positional order.
func (s Settings) Args() []string {
	return []string{
		strconv.FormatBool(s.GroupComponents),
		s.MergeFaces.String(),
		strconv.FormatBool(s.MergeSpacesByERV),
		strconv.FormatBool(s.MergeExhaustVentDevices),
		strconv.Itoa(s.LogLevel),
	}
}
